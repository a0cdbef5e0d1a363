// timer_test.go
package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// --- Test Clock ---

// stepClock advances by a fixed step on every read.
type stepClock struct {
	now   time.Time
	step  time.Duration
	reads int
}

func (c *stepClock) read() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)
	c.reads++
	return t
}

// --- Test Suite Setup ---

type TimerTestSuite struct {
	suite.Suite
	assert *assert.Assertions
}

func (suite *TimerTestSuite) SetupTest() {
	suite.assert = assert.New(suite.T())
}

// --- Test Cases ---

func (suite *TimerTestSuite) TestNew() {
	t := New()
	suite.assert.NotNil(t)
	suite.assert.NotNil(t.now, "Clock should default to the wall clock")
}

func (suite *TimerTestSuite) TestCallsOpOnce() {
	clock := &stepClock{now: time.Unix(0, 0), step: 3 * time.Microsecond}
	t := NewWithClock(clock.read)

	calls := 0
	micros, res, err := t.Time(func() int64 {
		calls++
		return 99
	})

	suite.assert.NoError(err)
	suite.assert.Equal(1, calls, "Op should run exactly once")
	suite.assert.Equal(int64(99), res, "Op result should be passed through")
	suite.assert.Equal(3.0, micros)
	suite.assert.Equal(2, clock.reads, "Exactly two clock reads should surround the call")
}

func (suite *TimerTestSuite) TestTruncatesToWholeMicroseconds() {
	clock := &stepClock{now: time.Unix(0, 0), step: 2999 * time.Nanosecond}
	t := NewWithClock(clock.read)

	micros, _, err := t.Time(func() int64 { return 0 })
	suite.assert.NoError(err)
	suite.assert.Equal(2.0, micros)

	clock.step = 999 * time.Nanosecond
	micros, _, err = t.Time(func() int64 { return 0 })
	suite.assert.NoError(err)
	suite.assert.Equal(0.0, micros, "Sub-microsecond calls should record zero")
}

func (suite *TimerTestSuite) TestClockSkew() {
	clock := &stepClock{now: time.Unix(100, 0), step: -time.Millisecond}
	t := NewWithClock(clock.read)

	micros, res, err := t.Time(func() int64 { return 7 })
	suite.assert.ErrorIs(err, ErrClockSkew)
	suite.assert.Zero(micros)
	suite.assert.Equal(int64(7), res)
}

func (suite *TimerTestSuite) TestWallClock() {
	t := New()
	micros, _, err := t.Time(func() int64 {
		time.Sleep(2 * time.Millisecond)
		return 0
	})
	suite.assert.NoError(err)
	suite.assert.GreaterOrEqual(micros, 2000.0)
}

// --- Test Runner ---

func TestTimerSuite(t *testing.T) {
	suite.Run(t, new(TimerTestSuite))
}
