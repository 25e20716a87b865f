package dancevis

import (
	"fmt"
	"time"
)

const (
	millisPerSecond = 1000.0
	millisPerMinute = 60 * millisPerSecond
	millisPerHour   = 60 * millisPerMinute
)

// Time is a duration in milliseconds. Tick timestamps are Times measured from
// the stage clock's zero reference.
type Time struct {
	ms float64
}

// TimeSet names the weighted components summed by NewTime. Absent fields are 0.
type TimeSet struct {
	Milliseconds float64
	Seconds      float64
	Minutes      float64
	Hours        float64
}

// NewTime sums the components of ts into a single duration.
func NewTime(ts TimeSet) (Time, error) {
	if !isFinite(ts.Milliseconds) || !isFinite(ts.Seconds) || !isFinite(ts.Minutes) || !isFinite(ts.Hours) {
		return Time{}, validationErrorf("NewTime", "time components must be finite numbers, got %+v", ts)
	}
	return Time{ms: ts.Milliseconds +
		ts.Seconds*millisPerSecond +
		ts.Minutes*millisPerMinute +
		ts.Hours*millisPerHour}, nil
}

// Milliseconds returns a Time of ms milliseconds.
func Milliseconds(ms float64) Time { return Time{ms: ms} }

// Seconds returns a Time of s seconds.
func Seconds(s float64) Time { return Time{ms: s * millisPerSecond} }

// FromDuration converts a time.Duration.
func FromDuration(d time.Duration) Time {
	return Time{ms: float64(d) / float64(time.Millisecond)}
}

func (t Time) InMilliseconds() float64 { return t.ms }
func (t Time) InSeconds() float64      { return t.ms / millisPerSecond }
func (t Time) InMinutes() float64      { return t.ms / millisPerMinute }
func (t Time) InHours() float64        { return t.ms / millisPerHour }

// Add returns t + u.
func (t Time) Add(u Time) Time { return Time{ms: t.ms + u.ms} }

// Sub returns t - u.
func (t Time) Sub(u Time) Time { return Time{ms: t.ms - u.ms} }

// Before reports whether t is strictly earlier than u.
func (t Time) Before(u Time) bool { return t.ms < u.ms }

// Equals reports whether both durations are exactly equal.
func (t Time) Equals(u Time) bool { return t.ms == u.ms }

// IsZero reports whether t is zero.
func (t Time) IsZero() bool { return t.ms == 0 }

// Duration converts t to a time.Duration.
func (t Time) Duration() time.Duration {
	return time.Duration(t.ms * float64(time.Millisecond))
}

// String formats t in seconds, e.g. "(1.50 seconds)".
func (t Time) String() string {
	return fmt.Sprintf("(%.2f seconds)", t.InSeconds())
}

// Clock reports elapsed choreography time since a zero reference.
type Clock struct {
	zero    time.Time
	zeroSet bool
	now     func() time.Time
}

// NewClock returns a clock backed by the wall clock. Its zero reference is
// unset until ZeroTimeIsNow is called.
func NewClock() *Clock {
	return &Clock{now: time.Now}
}

// newClockWithSource returns a clock reading instants from now.
func newClockWithSource(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// ZeroTimeIsNow sets the zero reference to the current instant.
func (c *Clock) ZeroTimeIsNow() {
	c.zero = c.now()
	c.zeroSet = true
}

// Now returns the time elapsed since the zero reference, or zero when the
// reference has not been set.
func (c *Clock) Now() Time {
	if !c.zeroSet {
		return Time{}
	}
	return FromDuration(c.now().Sub(c.zero))
}
