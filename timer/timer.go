package timer

import (
	"errors"
	"fmt"
	"time"
)

// ErrClockSkew is returned when the end instant precedes the start instant.
// The measurement is meaningless and the run must not continue.
var ErrClockSkew = errors.New("clock went backwards")

// Clock returns the current instant.
type Clock func() time.Time

// Timer measures single invocations of an operation.
type Timer struct {
	now Clock
}

// New returns a Timer reading the monotonic wall clock.
func New() *Timer {
	return &Timer{now: time.Now}
}

// NewWithClock returns a Timer reading clock instead of the wall clock.
func NewWithClock(clock Clock) *Timer {
	return &Timer{now: clock}
}

// Time calls op once and returns the elapsed time in whole microseconds,
// along with op's result. Nothing but op runs between the two clock reads.
func (t *Timer) Time(op func() int64) (float64, int64, error) {
	start := t.now()
	res := op()
	end := t.now()

	elapsed := end.Sub(start)
	if elapsed < 0 {
		return 0, res, fmt.Errorf("elapsed %v: %w", elapsed, ErrClockSkew)
	}
	return float64(elapsed.Microseconds()), res, nil
}
