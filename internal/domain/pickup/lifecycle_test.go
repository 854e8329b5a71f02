package pickup

import (
	"errors"
	"testing"
	"time"
)

func newTestRequest(status Status) *Request {
	r := &Request{Status: StatusPending}
	r.Seed(time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC))
	r.Status = status
	return r
}

func TestValidateStatusTransitionTable(t *testing.T) {
	type edge struct {
		from, to Status
	}
	legal := map[edge]bool{
		{StatusPending, StatusConfirmed}:   true,
		{StatusPending, StatusCancelled}:   true,
		{StatusConfirmed, StatusPickedUp}:  true,
		{StatusConfirmed, StatusCancelled}: true,
		{StatusPickedUp, StatusInTransit}:  true,
		{StatusInTransit, StatusDelivered}: true,
	}

	for _, from := range ValidStatuses() {
		for _, to := range ValidStatuses() {
			err := ValidateStatusTransition(from, to)
			if legal[edge{from, to}] {
				if err != nil {
					t.Errorf("transition %s -> %s should be legal, got %v", from, to, err)
				}
			} else if !errors.Is(err, ErrIllegalTransition) {
				t.Errorf("transition %s -> %s should fail with ErrIllegalTransition, got %v", from, to, err)
			}
		}
	}
}

func TestValidateStatusTransitionUnknownStatus(t *testing.T) {
	err := ValidateStatusTransition("lost", StatusDelivered)
	if !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestSeedTimeline(t *testing.T) {
	r := &Request{}
	at := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	r.Seed(at)

	if r.Status != StatusPending {
		t.Errorf("status = %s, want pending", r.Status)
	}
	if r.PaymentStatus != PaymentPending {
		t.Errorf("payment status = %s, want pending", r.PaymentStatus)
	}
	if len(r.Timeline) != 1 {
		t.Fatalf("timeline length = %d, want 1", len(r.Timeline))
	}
	entry := r.Timeline[0]
	if entry.Status != "Request submitted" || entry.Location != "Online Portal" {
		t.Errorf("unexpected initial entry: %+v", entry)
	}
	if !entry.Timestamp.Equal(at) {
		t.Errorf("timestamp = %v, want %v", entry.Timestamp, at)
	}
}

func TestApplyStatusAppendsOneEntry(t *testing.T) {
	r := newTestRequest(StatusPending)
	before := len(r.Timeline)
	at := time.Date(2026, 8, 2, 14, 0, 0, 0, time.UTC)

	if err := r.ApplyStatus(StatusConfirmed, "Colombo Central", "Agent dispatched", at); err != nil {
		t.Fatalf("ApplyStatus() error = %v", err)
	}

	if r.Status != StatusConfirmed {
		t.Errorf("status = %s, want confirmed", r.Status)
	}
	if len(r.Timeline) != before+1 {
		t.Fatalf("timeline grew by %d, want 1", len(r.Timeline)-before)
	}
	last := r.Timeline[len(r.Timeline)-1]
	if last.Status != string(StatusConfirmed) || last.Location != "Colombo Central" || last.Notes != "Agent dispatched" {
		t.Errorf("unexpected appended entry: %+v", last)
	}
}

func TestApplyStatusDeliveredSetsActualDelivery(t *testing.T) {
	r := newTestRequest(StatusInTransit)
	at := time.Date(2026, 8, 5, 11, 0, 0, 0, time.UTC)

	if err := r.ApplyStatus(StatusDelivered, "Kandy", "", at); err != nil {
		t.Fatalf("ApplyStatus() error = %v", err)
	}
	if r.ActualDelivery == nil || !r.ActualDelivery.Equal(at) {
		t.Errorf("actual delivery = %v, want %v", r.ActualDelivery, at)
	}
}

func TestApplyStatusIllegalLeavesRequestUntouched(t *testing.T) {
	r := newTestRequest(StatusDelivered)
	before := len(r.Timeline)

	err := r.ApplyStatus(StatusPending, "", "", time.Now())
	if !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("expected ErrIllegalTransition, got %v", err)
	}
	if r.Status != StatusDelivered {
		t.Errorf("status changed to %s on failed transition", r.Status)
	}
	if len(r.Timeline) != before {
		t.Errorf("timeline grew on failed transition")
	}
}

func TestCancel(t *testing.T) {
	tests := []struct {
		status  Status
		wantErr bool
	}{
		{StatusPending, false},
		{StatusConfirmed, false},
		{StatusPickedUp, true},
		{StatusInTransit, true},
		{StatusDelivered, true},
		{StatusCancelled, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			r := newTestRequest(tt.status)
			before := len(r.Timeline)

			err := r.Cancel(time.Now())
			if tt.wantErr {
				if !errors.Is(err, ErrNotCancellable) {
					t.Fatalf("Cancel() from %s: expected ErrNotCancellable, got %v", tt.status, err)
				}
				if r.Status != tt.status || len(r.Timeline) != before {
					t.Errorf("failed cancel mutated request")
				}
				return
			}

			if err != nil {
				t.Fatalf("Cancel() from %s: %v", tt.status, err)
			}
			if r.Status != StatusCancelled {
				t.Errorf("status = %s, want cancelled", r.Status)
			}
			if len(r.Timeline) != before+1 {
				t.Fatalf("timeline grew by %d, want 1", len(r.Timeline)-before)
			}
			last := r.Timeline[len(r.Timeline)-1]
			if last.Status != "Cancelled by customer" || last.Location != "Online Portal" {
				t.Errorf("unexpected cancellation entry: %+v", last)
			}
		})
	}
}

func TestTimelineEntriesNotMutatedByLaterChanges(t *testing.T) {
	r := newTestRequest(StatusPending)
	first := r.Timeline[0]

	if err := r.ApplyStatus(StatusConfirmed, "Galle", "", time.Now()); err != nil {
		t.Fatal(err)
	}
	if err := r.ApplyStatus(StatusPickedUp, "Galle", "", time.Now()); err != nil {
		t.Fatal(err)
	}

	if r.Timeline[0] != first {
		t.Errorf("earlier timeline entry changed: %+v != %+v", r.Timeline[0], first)
	}
}

func TestSetChargesDerivesTotal(t *testing.T) {
	r := &Request{Cost: Cost{BaseCost: 800, AdditionalCharges: 0, TotalCost: 800}}
	r.SetCharges(150)
	if r.Cost.TotalCost != 950 {
		t.Errorf("total = %d, want 950", r.Cost.TotalCost)
	}
}
