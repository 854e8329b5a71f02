package pickup

import (
	"strings"
	"testing"
	"time"
)

func TestNewTrackingNumberFormat(t *testing.T) {
	now := time.Date(2026, 8, 14, 10, 30, 0, 123_000_000, time.UTC)

	for i := 0; i < 100; i++ {
		tn := NewTrackingNumber(now)
		if !IsTrackingNumber(tn) {
			t.Fatalf("tracking number %q does not match SLP<6 digits><6 alnum>", tn)
		}
		if !strings.HasPrefix(tn, "SLP") {
			t.Fatalf("tracking number %q missing prefix", tn)
		}
		if len(tn) != 15 {
			t.Fatalf("tracking number %q has length %d, want 15", tn, len(tn))
		}
	}
}

func TestNewTrackingNumberEmbedsTimestamp(t *testing.T) {
	now := time.UnixMilli(1764322845678)
	tn := NewTrackingNumber(now)

	// Last six digits of the millisecond timestamp.
	if got := tn[3:9]; got != "845678" {
		t.Errorf("timestamp part = %q, want %q", got, "845678")
	}
}

func TestNewTrackingNumberDistinct(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)

	// Same clock reading: distinctness rests on the random suffix alone.
	for i := 0; i < 1000; i++ {
		tn := NewTrackingNumber(now)
		if seen[tn] {
			t.Fatalf("duplicate tracking number generated: %s", tn)
		}
		seen[tn] = true
	}
}

func TestIsTrackingNumberRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"SLP123456",
		"SLP12345XABCDE",
		"slp123456ABCDEF",
		"XXP123456ABCDEF",
		"SLP123456abcdef",
		"SLP123456ABCDEF0",
	}
	for _, s := range bad {
		if IsTrackingNumber(s) {
			t.Errorf("IsTrackingNumber(%q) = true, want false", s)
		}
	}
}
