package syncing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-report-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestDeduplicator_FilterNew(t *testing.T) {
	ctx := context.Background()

	t.Run("lista vazia não consulta o banco", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockCampaignDayRepository(ctrl)

		d := NewDeduplicator(NewExistenceOracle(store, nil))

		result := d.FilterNew(ctx, nil, "act_1")

		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("mantém a ordem e remove os já gravados", func(t *testing.T) {
		existing := facebookDay("act_1", "c2", "2025-01-01")
		store := newMemoryStore(domain.PlatformFacebook, existing)
		d := NewDeduplicator(NewExistenceOracle(store, nil))

		input := []domain.CampaignDayRecord{
			facebookDay("act_1", "c1", "2025-01-01"),
			facebookDay("act_1", "c2", "2025-01-01"),
			facebookDay("act_1", "c3", "2025-01-01"),
		}

		result := d.FilterNew(ctx, input, "act_1")

		assert.Equal(t, []domain.CampaignDayRecord{input[0], input[2]}, result)
	})

	t.Run("erro na consulta classifica como novo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockCampaignDayRepository(ctrl)
		store.EXPECT().Platform().Return(domain.PlatformGoogle).AnyTimes()
		store.EXPECT().FindByKey(gomock.Any(), domain.NaturalKey{AccountID: "1234567890", CampaignID: "9", Date: "2025-01-01"}).
			Return(nil, errors.New("timeout"))

		d := NewDeduplicator(NewExistenceOracle(store, nil))
		record := googleDay("1234567890", "9", "2025-01-01")

		result := d.FilterNew(ctx, []domain.CampaignDayRecord{record}, "1234567890")

		assert.Equal(t, []domain.CampaignDayRecord{record}, result)
	})

	t.Run("chave incompleta segue adiante sem consulta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockCampaignDayRepository(ctrl)

		d := NewDeduplicator(NewExistenceOracle(store, nil))
		record := facebookDay("act_1", "", "2025-01-01")

		result := d.FilterNew(ctx, []domain.CampaignDayRecord{record}, "")

		assert.Len(t, result, 1)
	})

	t.Run("usa a conta informada na consulta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockCampaignDayRepository(ctrl)
		store.EXPECT().FindByKey(gomock.Any(), domain.NaturalKey{AccountID: "act_99", CampaignID: "c1", Date: "2025-01-01"}).
			Return(facebookDay("act_99", "c1", "2025-01-01"), nil)

		d := NewDeduplicator(NewExistenceOracle(store, nil))

		result := d.FilterNew(ctx, []domain.CampaignDayRecord{facebookDay("99", "c1", "2025-01-01")}, "act_99")

		assert.Empty(t, result)
	})

	t.Run("duplicatas no mesmo lote não são removidas", func(t *testing.T) {
		store := newMemoryStore(domain.PlatformFacebook)
		d := NewDeduplicator(NewExistenceOracle(store, nil))

		input := []domain.CampaignDayRecord{
			facebookDay("act_1", "c1", "2025-01-01"),
			facebookDay("act_1", "c1", "2025-01-01"),
		}

		assert.Len(t, d.FilterNew(ctx, input, "act_1"), 2)
	})
}
