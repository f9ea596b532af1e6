package history

import (
	"os"
	"path/filepath"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Store guarda o histórico das execuções da rotina diária
type Store interface {
	SaveReport(report *domain.SyncReport) (string, error)
	SaveError(record domain.SyncErrorRecord) (string, error)
	LoadReport(day time.Time) (*domain.SyncReport, error)
}

// SaveFailure grava o registro de erro de uma execução abortada antes de concluir
func SaveFailure(store Store, cause error, startedAt, failedAt time.Time) (string, error) {
	return store.SaveError(domain.SyncErrorRecord{
		Timestamp:       failedAt,
		Error:           cause.Error(),
		DurationSeconds: failedAt.Sub(startedAt).Seconds(),
		Success:         false,
	})
}

// FileStore grava um arquivo JSON por dia. Uma nova execução no mesmo dia
// sobrescreve o arquivo anterior.
type FileStore struct {
	dir string
	now func() time.Time
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{
		dir: dir,
		now: time.Now,
	}
}

func (s *FileStore) SaveReport(report *domain.SyncReport) (string, error) {
	path := filepath.Join(s.dir, reportFilename(s.now()))
	if err := s.write(path, report); err != nil {
		return "", err
	}

	logrus.WithField("file", path).Info("Histórico salvo")
	return path, nil
}

func (s *FileStore) SaveError(record domain.SyncErrorRecord) (string, error) {
	path := filepath.Join(s.dir, errorFilename(s.now()))
	if err := s.write(path, record); err != nil {
		return "", err
	}

	logrus.WithField("file", path).Info("Erro salvo no histórico")
	return path, nil
}

func (s *FileStore) LoadReport(day time.Time) (*domain.SyncReport, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, reportFilename(day)))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler histórico")
	}

	var report domain.SyncReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar histórico")
	}

	return &report, nil
}

// write usa arquivo temporário e rename para nunca deixar um JSON pela metade
func (s *FileStore) write(path string, payload any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Wrap(err, "erro ao criar diretório de histórico")
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return errors.Wrap(err, "erro ao serializar histórico")
	}

	tmp, err := os.CreateTemp(s.dir, ".history-*")
	if err != nil {
		return errors.Wrap(err, "erro ao criar arquivo temporário")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "erro ao escrever histórico")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "erro ao fechar histórico")
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrap(err, "erro ao mover histórico")
	}

	return nil
}

func reportFilename(day time.Time) string {
	return "daily_update_" + day.Format(time.DateOnly) + ".json"
}

func errorFilename(day time.Time) string {
	return "daily_update_ERROR_" + day.Format(time.DateOnly) + ".json"
}
