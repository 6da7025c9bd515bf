package payroll_test

import (
	"testing"
	"time"

	"school-admin/internal/payroll"
	payrollerrors "school-admin/internal/payroll/errors"

	"github.com/stretchr/testify/assert"
)

func TestResolvePeriodLabel(t *testing.T) {
	cfg := defaultConfig()

	tests := []struct {
		name    string
		payDate time.Time
		want    string
		wantErr bool
	}{
		{
			name:    "first pay day",
			payDate: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
			want:    "First Biweekly June 2024",
		},
		{
			name:    "second pay day",
			payDate: time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
			want:    "Second Biweekly June 2024",
		},
		{
			name:    "last day of a 31-day month",
			payDate: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			want:    "Second Biweekly January 2024",
		},
		{
			name:    "february last day on leap year",
			payDate: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
			want:    "Second Biweekly February 2024",
		},
		{
			name:    "february last day off leap year",
			payDate: time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC),
			want:    "Second Biweekly February 2023",
		},
		{
			name:    "mid-period date rejected",
			payDate: time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := payroll.ResolvePeriodLabel(tt.payDate, cfg)
			if tt.wantErr {
				assert.Error(t, err)
				var target error = payrollerrors.InvalidPayDate(cfg.FirstPayDay, cfg.SecondPayDay)
				assert.Equal(t, target.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolvePeriodLabel_CustomPayDays(t *testing.T) {
	cfg := defaultConfig()
	cfg.FirstPayDay = 10
	cfg.SecondPayDay = 25

	got, err := payroll.ResolvePeriodLabel(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), cfg)
	assert.NoError(t, err)
	assert.Equal(t, "First Biweekly March 2024", got)

	// Day 15 is no longer a pay day under this configuration.
	_, err = payroll.ResolvePeriodLabel(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), cfg)
	assert.Error(t, err)
}
