package dancevis

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// retargetThreshold is how far, in radians, a heading may drift from the
// running turn's target before the turn is restarted toward the new heading.
const retargetThreshold = 1e-3

// turnTween eases a node's orientation toward its heading. Durations are in
// milliseconds, matching Time. The zero value snaps instantly.
type turnTween struct {
	duration Time
	fn       ease.TweenFunc
	tween    *gween.Tween
	target   float64
}

func (t *turnTween) configure(duration Time, fn ease.TweenFunc) {
	if fn == nil {
		fn = ease.Linear
	}
	t.duration = duration
	t.fn = fn
	t.tween = nil
}

func (t *turnTween) reset() {
	t.tween = nil
}

// step advances the turn by elapsed and returns the orientation to use this
// tick. The turn always takes the short way round.
func (t *turnTween) step(current, heading Orientation, elapsed Time) Orientation {
	delta := current.AngleBetween(heading)
	if t.duration.ms <= 0 {
		return current.Rotate(delta)
	}
	if t.tween == nil || math.Abs(NormalizeAngle(heading.angle-t.target)) > retargetThreshold {
		if math.Abs(delta) <= retargetThreshold {
			t.tween = nil
			return current.Rotate(delta)
		}
		t.tween = gween.New(float32(current.angle), float32(current.angle+delta), float32(t.duration.ms), t.fn)
		t.target = heading.angle
	}
	v, finished := t.tween.Update(float32(elapsed.ms))
	if finished {
		t.tween = nil
		return current.Rotate(delta)
	}
	return Radians(float64(v))
}
