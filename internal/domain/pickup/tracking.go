package pickup

import (
	"crypto/rand"
	"fmt"
	"regexp"
	"time"
)

const trackingPrefix = "SLP"

const trackingCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var trackingPattern = regexp.MustCompile(`^SLP[0-9]{6}[A-Z0-9]{6}$`)

// NewTrackingNumber builds a public tracking identifier: the "SLP" prefix,
// the last six digits of the millisecond timestamp, and six random
// uppercase alphanumeric characters. Uniqueness is enforced by the store's
// unique index, not here; callers retry on a duplicate.
func NewTrackingNumber(t time.Time) string {
	millis := t.UnixMilli() % 1_000_000

	suffix := make([]byte, 6)
	if _, err := rand.Read(suffix); err != nil {
		// crypto/rand does not fail on supported platforms
		panic(err)
	}
	for i, b := range suffix {
		suffix[i] = trackingCharset[int(b)%len(trackingCharset)]
	}

	return fmt.Sprintf("%s%06d%s", trackingPrefix, millis, suffix)
}

// IsTrackingNumber reports whether s has the tracking number format.
func IsTrackingNumber(s string) bool {
	return trackingPattern.MatchString(s)
}
