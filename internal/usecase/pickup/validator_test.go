package pickup

import (
	"testing"
	"time"

	domainPickup "postal-pickup-api/internal/domain/pickup"

	"github.com/stretchr/testify/assert"
)

func TestValidatePickupDate(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		date    time.Time
		wantErr bool
	}{
		{"tomorrow", now.AddDate(0, 0, 1), false},
		{"one minute ahead", now.Add(time.Minute), false},
		{"equal to now", now, true},
		{"earlier today", now.Add(-6 * time.Hour), true},
		{"yesterday", now.AddDate(0, 0, -1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePickupDate(tt.date, now)
			if tt.wantErr {
				assert.ErrorIs(t, err, domainPickup.ErrPastPickupDate)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEstimateDelivery(t *testing.T) {
	pickupDate := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		priority domainPickup.Priority
		wantDays int
	}{
		{domainPickup.PriorityStandard, 5},
		{domainPickup.PriorityExpress, 2},
		{domainPickup.PriorityUrgent, 1},
		{domainPickup.Priority("unknown"), 5},
	}

	for _, tt := range tests {
		t.Run(string(tt.priority), func(t *testing.T) {
			got := EstimateDelivery(pickupDate, tt.priority)
			assert.Equal(t, pickupDate.AddDate(0, 0, tt.wantDays), got)
		})
	}
}
