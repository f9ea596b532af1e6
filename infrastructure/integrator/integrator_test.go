package integrator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

func TestValidateDateRange(t *testing.T) {
	now := time.Date(2025, 1, 20, 15, 30, 0, 0, time.UTC)
	day := func(s string) time.Time {
		d, _ := time.Parse(time.DateOnly, s)
		return d
	}

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		maxDays int
		wantErr bool
	}{
		{name: "período válido", start: day("2025-01-01"), end: day("2025-01-19"), maxDays: 60},
		{name: "termina hoje", start: day("2025-01-10"), end: day("2025-01-20"), maxDays: 60},
		{name: "exatamente no limite", start: day("2024-11-21"), end: day("2025-01-20"), maxDays: 60},
		{name: "um dia acima do limite", start: day("2024-11-20"), end: day("2025-01-20"), maxDays: 60, wantErr: true},
		{name: "google aceita 90 dias", start: day("2024-10-22"), end: day("2025-01-20"), maxDays: 90},
		{name: "início após fim", start: day("2025-01-15"), end: day("2025-01-10"), maxDays: 60, wantErr: true},
		{name: "fim no futuro", start: day("2025-01-15"), end: day("2025-01-21"), maxDays: 60, wantErr: true},
		{name: "datas vazias", maxDays: 60, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDateRange(tt.start, tt.end, now, tt.maxDays)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
				return
			}
			assert.NoError(t, err)
		})
	}
}
