package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

//go:generate mockgen -source=client.go -destination=mocks/client_mock.go -package=mocks

const (
	clientsTable = "relatorio_cadastro_clientes"
)

var clientColumns = []string{
	"id",
	"name",
	"act_fb",
	"id_google",
	"roda_facebook",
	"roda_google",
	"link_grupo",
	"tipo_conversao",
	"ultimo_relatorio_fb",
	"ultimo_relatorio_google",
	"ultimo_envio_whatsapp",
}

type ClientRepository interface {
	ListActiveClients(ctx context.Context, platform domain.Platform) ([]*domain.Client, error)
	GetClientByID(ctx context.Context, clientID int64) (*domain.Client, error)
	UpdateLastSynced(ctx context.Context, clientID int64, platform domain.Platform, syncedAt time.Time) error
}

// DeliveryMarker é uma capacidade opcional do cadastro de clientes para registrar
// o envio de relatórios por WhatsApp.
type DeliveryMarker interface {
	MarkDelivered(ctx context.Context, clientID int64, platform domain.Platform, deliveredAt time.Time) error
}

type clientRepository struct {
	conn postgres.Queryer
}

func NewClientRepository(conn postgres.Queryer) ClientRepository {
	return &clientRepository{
		conn: conn,
	}
}

var (
	_ ClientRepository = (*clientRepository)(nil)
	_ DeliveryMarker   = (*clientRepository)(nil)
)

// ListActiveClients busca todos os clientes e filtra localmente pela flag da
// plataforma, já que a coluna aceita valores em formatos variados.
func (r *clientRepository) ListActiveClients(ctx context.Context, platform domain.Platform) ([]*domain.Client, error) {
	if _, err := activationColumn(platform); err != nil {
		return nil, err
	}

	query, args, err := squirrel.
		Select(clientColumns...).
		From(clientsTable).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	total := 0
	clients := make([]*domain.Client, 0)
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
		}
		total++

		if client.IsActiveOn(platform) {
			clients = append(clients, client)
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"platform": platform,
		"total":    total,
		"ativos":   len(clients),
	}).Debug("Clientes ativos carregados")

	return clients, nil
}

func (r *clientRepository) GetClientByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	query, args, err := squirrel.
		Select(clientColumns...).
		From(clientsTable).
		Where(squirrel.Eq{"id": clientID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	client, err := scanClient(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
	}

	return client, nil
}

func (r *clientRepository) UpdateLastSynced(ctx context.Context, clientID int64, platform domain.Platform, syncedAt time.Time) error {
	column, err := lastSyncedColumn(platform)
	if err != nil {
		return err
	}

	return r.updateTimestamp(ctx, clientID, column, syncedAt)
}

func (r *clientRepository) MarkDelivered(ctx context.Context, clientID int64, _ domain.Platform, deliveredAt time.Time) error {
	return r.updateTimestamp(ctx, clientID, "ultimo_envio_whatsapp", deliveredAt)
}

func (r *clientRepository) updateTimestamp(ctx context.Context, clientID int64, column string, ts time.Time) error {
	query, args, err := squirrel.
		Update(clientsTable).
		Set(column, ts).
		Where(squirrel.Eq{"id": clientID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrClientNotFound
	}

	return nil
}

func scanClient(row rowScanner) (*domain.Client, error) {
	c := &domain.Client{}
	var (
		facebookID     sql.NullString
		googleID       sql.NullString
		whatsAppGroup  sql.NullString
		conversionType sql.NullString
		runsFacebook   any
		runsGoogle     any
	)

	err := row.Scan(
		&c.ID,
		&c.Name,
		&facebookID,
		&googleID,
		&runsFacebook,
		&runsGoogle,
		&whatsAppGroup,
		&conversionType,
		&c.LastFacebookSyncAt,
		&c.LastGoogleSyncAt,
		&c.LastWhatsAppSentAt,
	)
	if err != nil {
		return nil, err
	}

	c.FacebookAccountID = strings.TrimSpace(facebookID.String)
	c.GoogleCustomerID = domain.NormalizeCustomerID(googleID.String)
	c.FacebookEnabled = parseActivationFlag(runsFacebook)
	c.GoogleEnabled = parseActivationFlag(runsGoogle)
	c.WhatsAppGroup = strings.TrimSpace(whatsAppGroup.String)
	c.ConversionType = domain.NormalizeConversionType(conversionType.String)

	return c, nil
}

// parseActivationFlag aceita true, 1, 1.0, "true", "True" e "1"
func parseActivationFlag(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case int64:
		return v == 1
	case int:
		return v == 1
	case float64:
		return v == 1.0
	case []byte:
		return isTruthyString(string(v))
	case string:
		return isTruthyString(v)
	default:
		return false
	}
}

func isTruthyString(value string) bool {
	switch value {
	case "true", "True", "1":
		return true
	default:
		return false
	}
}

func activationColumn(platform domain.Platform) (string, error) {
	switch platform {
	case domain.PlatformFacebook:
		return "roda_facebook", nil
	case domain.PlatformGoogle:
		return "roda_google", nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedPlatform, platform)
	}
}

func lastSyncedColumn(platform domain.Platform) (string, error) {
	switch platform {
	case domain.PlatformFacebook:
		return "ultimo_relatorio_fb", nil
	case domain.PlatformGoogle:
		return "ultimo_relatorio_google", nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedPlatform, platform)
	}
}
