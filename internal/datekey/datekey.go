// Package datekey names the daily quiz namespace. A new key starts at a fixed
// UTC hour each day.
package datekey

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Layout is the date key format.
const Layout = "2006-01-02"

// DefaultResetHour is the UTC hour at which the daily key rolls over.
const DefaultResetHour = 2

// Provider yields the current date key.
type Provider interface {
	CurrentDateKey() string
}

// Daily rolls the key over at ResetHour:00 UTC.
type Daily struct {
	Clock     clockwork.Clock
	ResetHour int
}

// NewDaily returns a Daily on the real clock. Hours outside 0-23 fall back to
// DefaultResetHour.
func NewDaily(resetHour int) *Daily {
	return &Daily{Clock: clockwork.NewRealClock(), ResetHour: resetHour}
}

func (d *Daily) now() time.Time {
	if d.Clock == nil {
		return time.Now()
	}
	return d.Clock.Now()
}

func (d *Daily) offset() time.Duration {
	h := d.ResetHour
	if h < 0 || h > 23 {
		h = DefaultResetHour
	}
	return time.Duration(h) * time.Hour
}

// CurrentDateKey returns the YYYY-MM-DD key for the quiz day containing now.
func (d *Daily) CurrentDateKey() string {
	return KeyAt(d.now(), d.offset())
}

// NextReset returns the instant the current key expires.
func (d *Daily) NextReset() time.Time {
	now := d.now().UTC()
	off := d.offset()
	day := now.Add(-off)
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC).Add(off)
	return start.AddDate(0, 0, 1)
}

// KeyAt returns the key for t when days start offset after UTC midnight.
func KeyAt(t time.Time, offset time.Duration) string {
	return t.UTC().Add(-offset).Format(Layout)
}

// Fixed is a Provider that always returns the same key.
type Fixed string

// CurrentDateKey returns the fixed key.
func (f Fixed) CurrentDateKey() string { return string(f) }
