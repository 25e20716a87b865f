package dancevis

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

// turn steps run through float32 tweens.
const turnEpsilon = 1e-4

func assertAngle(t *testing.T, label string, got Orientation, want float64) {
	t.Helper()
	if d := NormalizeAngle(got.InRadians() - want); math.Abs(d) > turnEpsilon {
		t.Errorf("%s = %v rad, want %v rad", label, got.InRadians(), want)
	}
}

func TestTurnZeroDurationSnaps(t *testing.T) {
	var turn turnTween
	turn.configure(Time{}, nil)
	got := turn.step(Radians(0), Radians(1), Milliseconds(10))
	assertAngle(t, "angle", got, 1)
}

func TestTurnLinearHalfway(t *testing.T) {
	var turn turnTween
	turn.configure(Milliseconds(100), ease.Linear)

	o := turn.step(Radians(0), Radians(math.Pi/2), Milliseconds(50))
	assertAngle(t, "halfway", o, math.Pi/4)

	o = turn.step(o, Radians(math.Pi/2), Milliseconds(50))
	assertAngle(t, "finished", o, math.Pi/2)
	if turn.tween != nil {
		t.Error("finished turn should release its tween")
	}
}

func TestTurnTakesShortWay(t *testing.T) {
	var turn turnTween
	turn.configure(Milliseconds(100), ease.Linear)
	o := turn.step(Degrees(350), Degrees(10), Milliseconds(50))
	assertAngle(t, "angle", o, 0)
}

func TestTurnRetargets(t *testing.T) {
	var turn turnTween
	turn.configure(Milliseconds(100), nil)

	o := turn.step(Radians(0), Radians(math.Pi/2), Milliseconds(50))
	assertAngle(t, "first leg", o, math.Pi/4)

	o = turn.step(o, Radians(math.Pi), Milliseconds(50))
	assertAngle(t, "retargeted", o, math.Pi/4+(3*math.Pi/4)/2)
}

func TestTurnTinyDeltaSnaps(t *testing.T) {
	var turn turnTween
	turn.configure(Milliseconds(100), ease.Linear)
	o := turn.step(Radians(1), Radians(1+retargetThreshold/2), Milliseconds(1))
	assertAngle(t, "angle", o, 1+retargetThreshold/2)
	if turn.tween != nil {
		t.Error("tiny turn should not start a tween")
	}
}

func TestTurnResetDropsRunningTween(t *testing.T) {
	var turn turnTween
	turn.configure(Milliseconds(100), ease.Linear)
	turn.step(Radians(0), Radians(1), Milliseconds(10))
	turn.reset()
	if turn.tween != nil {
		t.Error("reset should drop the running tween")
	}
}

func TestFaceHeadingEasesAroundCorner(t *testing.T) {
	path, _, _ := twoLines(t)
	d := NewDancer(DancerOptions{MotionOptions: MotionOptions{
		Shape:        path,
		Speed:        PixelsPerMillisecond(1),
		FaceHeading:  true,
		TurnDuration: Milliseconds(100),
	}})

	d.TimeIs(Milliseconds(0))
	d.TimeIs(Milliseconds(5))
	assertAngle(t, "first leg", d.Orientation(), 0)

	d.TimeIs(Milliseconds(15))
	assertPos(t, "position", d.Position(), Position{X: 10, Y: 5})
	assertAngle(t, "turning", d.Orientation(), math.Pi/20)

	d.TimeIs(Milliseconds(25))
	assertAngle(t, "still turning", d.Orientation(), math.Pi/10)
}
