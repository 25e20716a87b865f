package dancevis

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestNewTimeSumsComponents(t *testing.T) {
	tm, err := NewTime(TimeSet{Milliseconds: 500, Seconds: 1, Minutes: 1, Hours: 1})
	if err != nil {
		t.Fatalf("NewTime: %v", err)
	}
	assertNear(t, "ms", tm.InMilliseconds(), 3_661_500)
	assertNear(t, "s", tm.InSeconds(), 3661.5)

	if _, err := NewTime(TimeSet{Seconds: math.Inf(1)}); !errors.Is(err, ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}

func TestTimeArithmetic(t *testing.T) {
	a := Seconds(2)
	b := Milliseconds(500)
	assertNear(t, "add", a.Add(b).InMilliseconds(), 2500)
	assertNear(t, "sub", a.Sub(b).InMilliseconds(), 1500)
	if !b.Before(a) || a.Before(b) {
		t.Error("Before ordering wrong")
	}
	if !FromDuration(1500 * time.Millisecond).Equals(Milliseconds(1500)) {
		t.Error("FromDuration mismatch")
	}
	if Milliseconds(1500).Duration() != 1500*time.Millisecond {
		t.Error("Duration mismatch")
	}
	if s := Milliseconds(1500).String(); s != "(1.50 seconds)" {
		t.Errorf("String = %q", s)
	}
}

func TestClockZeroReference(t *testing.T) {
	now := time.Unix(1000, 0)
	c := newClockWithSource(func() time.Time { return now })

	if !c.Now().IsZero() {
		t.Error("Now before ZeroTimeIsNow should be zero")
	}
	c.ZeroTimeIsNow()
	now = now.Add(250 * time.Millisecond)
	assertNear(t, "elapsed", c.Now().InMilliseconds(), 250)
}
