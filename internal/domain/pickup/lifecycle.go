package pickup

import (
	"fmt"
	"time"
)

// Fixed timeline strings, kept verbatim for customer-facing history.
const (
	timelineSubmittedStatus = "Request submitted"
	timelineSubmittedNotes  = "Pickup request submitted successfully"
	timelineCancelledStatus = "Cancelled by customer"
	timelineCancelledNotes  = "Request cancelled by customer"
	timelinePortalLocation  = "Online Portal"
)

// validTransitions is the total transition table: the five forward edges
// plus cancellation from pending and confirmed. Delivered and cancelled
// are terminal.
var validTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusPickedUp, StatusCancelled},
	StatusPickedUp:  {StatusInTransit},
	StatusInTransit: {StatusDelivered},
	StatusDelivered: {},
	StatusCancelled: {},
}

// ValidateStatusTransition checks whether a request may move from current
// to next.
func ValidateStatusTransition(current, next Status) error {
	allowed, ok := validTransitions[current]
	if !ok {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidStatus, current)
	}
	for _, s := range allowed {
		if s == next {
			return nil
		}
	}
	return fmt.Errorf("%w: cannot move from %s to %s", ErrIllegalTransition, current, next)
}

// AllowedTransitions returns the statuses reachable from current.
func AllowedTransitions(current Status) []Status {
	return validTransitions[current]
}

// CanCancel reports whether a customer may still cancel. Once the item has
// been collected the request is committed to delivery.
func CanCancel(current Status) bool {
	switch current {
	case StatusPickedUp, StatusInTransit, StatusDelivered, StatusCancelled:
		return false
	default:
		return true
	}
}

// Seed initialises a freshly created request: pending status and the
// first audit entry. Called exactly once by the create flow.
func (r *Request) Seed(at time.Time) {
	r.Status = StatusPending
	r.PaymentStatus = PaymentPending
	r.AppendTimeline(timelineSubmittedStatus, timelinePortalLocation, timelineSubmittedNotes, at)
}

// ApplyStatus moves the request to next and records exactly one timeline
// entry. Operator capability is checked by the caller.
func (r *Request) ApplyStatus(next Status, location, notes string, at time.Time) error {
	if err := ValidateStatusTransition(r.Status, next); err != nil {
		return err
	}
	r.Status = next
	r.AppendTimeline(string(next), location, notes, at)
	if next == StatusDelivered {
		delivered := at
		r.ActualDelivery = &delivered
	}
	return nil
}

// Cancel performs the customer-initiated cancellation. It fails with
// ErrNotCancellable once the item is picked up, in transit or delivered,
// leaving status and timeline untouched.
func (r *Request) Cancel(at time.Time) error {
	if !CanCancel(r.Status) {
		return fmt.Errorf("%w: status is %s", ErrNotCancellable, r.Status)
	}
	r.Status = StatusCancelled
	r.AppendTimeline(timelineCancelledStatus, timelinePortalLocation, timelineCancelledNotes, at)
	return nil
}
