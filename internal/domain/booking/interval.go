package booking

import (
	"fmt"
	"time"

	"courtbook/internal/pkg/errs"
)

var ErrInvalidInterval = errs.New("interval end must be after start")

// Interval is a half-open [start, end) span on a single absolute
// timeline. Callers normalize wall-clock input to UTC instants before
// constructing one.
type Interval struct {
	start time.Time
	end   time.Time
}

func NewInterval(start, end time.Time) (Interval, error) {
	if !end.After(start) {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{start: start.UTC(), end: end.UTC()}, nil
}

func (iv Interval) Start() time.Time {
	return iv.start
}

func (iv Interval) End() time.Time {
	return iv.end
}

func (iv Interval) Duration() time.Duration {
	return iv.end.Sub(iv.start)
}

func (iv Interval) IsZero() bool {
	return iv.start.IsZero() && iv.end.IsZero()
}

func (iv Interval) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", iv.start.Format(time.RFC3339), iv.end.Format(time.RFC3339))
}

// Overlaps reports whether two half-open intervals intersect. Intervals
// that only touch (a.end == b.start or vice versa) do not overlap, so
// back-to-back slots are legal.
func Overlaps(a, b Interval) bool {
	return b.start.Before(a.end) && b.end.After(a.start)
}

// OverlapsAny reports whether candidate intersects at least one member
// of existing. No ordering assumption on existing.
func OverlapsAny(existing []Interval, candidate Interval) bool {
	for _, iv := range existing {
		if Overlaps(iv, candidate) {
			return true
		}
	}
	return false
}
