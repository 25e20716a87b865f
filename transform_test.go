package dancevis

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertPos(t *testing.T, name string, got, want Position) {
	t.Helper()
	if math.Abs(got.X-want.X) > epsilon || math.Abs(got.Y-want.Y) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want affine) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// --- basic matrices ---

func TestTranslation(t *testing.T) {
	m := translation(Position{X: 10, Y: 20})
	assertMatrix(t, "translation", m, affine{1, 0, 0, 1, 10, 20})
	assertPos(t, "point", transformPoint(m, Position{X: 1, Y: 2}), Position{X: 11, Y: 22})
}

func TestRotationQuarterTurn(t *testing.T) {
	m := rotation(math.Pi / 2)
	assertPos(t, "x axis", transformPoint(m, Position{X: 1}), Position{Y: 1})
	assertPos(t, "y axis", transformPoint(m, Position{Y: 1}), Position{X: -1})
}

func TestMultiplyIdentity(t *testing.T) {
	m := affine{2, 1, -1, 3, 5, 7}
	assertMatrix(t, "I*m", multiplyAffine(identityTransform, m), m)
	assertMatrix(t, "m*I", multiplyAffine(m, identityTransform), m)
}

func TestInvertAffine(t *testing.T) {
	m := multiplyAffine(translation(Position{X: 3, Y: -4}), rotation(0.7))
	inv := invertAffine(m)
	assertMatrix(t, "m*inv", multiplyAffine(m, inv), identityTransform)

	p := Position{X: 12, Y: -5}
	assertPos(t, "round trip", transformPoint(inv, transformPoint(m, p)), p)
}

func TestLocalFrame(t *testing.T) {
	m := localFrame(Position{X: 5, Y: 5}, math.Pi)
	assertPos(t, "origin", transformPoint(m, Position{}), Position{X: 5, Y: 5})
	assertPos(t, "unit x", transformPoint(m, Position{X: 1}), Position{X: 4, Y: 5})
}

// --- rigidMotion ---

func TestRigidMotionTranslationOnly(t *testing.T) {
	m := rigidMotion(Position{X: 1, Y: 1}, Position{X: 4, Y: 5}, 0)
	assertMatrix(t, "translation", m, affine{1, 0, 0, 1, 3, 4})
}

func TestRigidMotionKeepsOffsetFromFrame(t *testing.T) {
	from := Position{X: 10, Y: 0}
	to := Position{X: 0, Y: 10}
	m := rigidMotion(from, to, math.Pi/2)

	// A follower 5 units ahead of the frame along its heading stays 5 units
	// ahead after the frame turns a quarter.
	assertPos(t, "frame", transformPoint(m, from), to)
	assertPos(t, "follower", transformPoint(m, Position{X: 10, Y: 5}), Position{X: -5, Y: 10})
}

func TestRigidMotionAboutCircleCenter(t *testing.T) {
	// Moving along a circle and turning by the swept angle is a rotation
	// about the circle's center.
	r := 10.0
	from := Position{X: r}
	to := Position{X: r * math.Cos(0.3), Y: r * math.Sin(0.3)}
	m := rigidMotion(from, to, 0.3)

	other := Position{X: r * math.Cos(2), Y: r * math.Sin(2)}
	assertPos(t, "other", transformPoint(m, other), Position{X: r * math.Cos(2.3), Y: r * math.Sin(2.3)})
}

func TestIsIdentity(t *testing.T) {
	if !isIdentity(rigidMotion(Position{X: 1}, Position{X: 1}, 0)) {
		t.Error("no motion should be identity")
	}
	if isIdentity(translation(Position{X: 1})) {
		t.Error("translation should not be identity")
	}
}
