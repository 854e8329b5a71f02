package pickup

import (
	"time"

	domainPickup "postal-pickup-api/internal/domain/pickup"

	appErrors "postal-pickup-api/pkg/errors"
)

// ValidatePickupDate rejects preferred pickup dates that are not strictly
// in the future. A date equal to now fails.
func ValidatePickupDate(date, now time.Time) error {
	if !date.After(now) {
		return appErrors.NewAppError(
			appErrors.CodePastPickupDate,
			"Preferred pickup date cannot be in the past",
			domainPickup.ErrPastPickupDate,
		)
	}
	return nil
}

// deliveryLeadDays is how many days after pickup the item is expected to
// arrive, per priority.
var deliveryLeadDays = map[domainPickup.Priority]int{
	domainPickup.PriorityStandard: 5,
	domainPickup.PriorityExpress:  2,
	domainPickup.PriorityUrgent:   1,
}

// EstimateDelivery projects a delivery date from the preferred pickup date
// and priority.
func EstimateDelivery(pickupDate time.Time, priority domainPickup.Priority) time.Time {
	days, ok := deliveryLeadDays[priority]
	if !ok {
		days = deliveryLeadDays[domainPickup.PriorityStandard]
	}
	return pickupDate.AddDate(0, 0, days)
}
