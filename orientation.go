package dancevis

import (
	"fmt"
	"math"
)

// Orientation is a heading angle, stored in radians whatever unit it was
// built from. The zero value faces along +X.
type Orientation struct {
	angle float64
}

// NewOrientation builds an orientation from angle, interpreted as radians when
// isRadians is true and as degrees otherwise.
func NewOrientation(angle float64, isRadians bool) (Orientation, error) {
	if !isFinite(angle) {
		return Orientation{}, validationErrorf("NewOrientation", "angle must be a finite number, got %v", angle)
	}
	if !isRadians {
		angle = DegreesToRadians(angle)
	}
	return Orientation{angle: angle}, nil
}

// Radians returns an orientation of a radians. a must be finite.
func Radians(a float64) Orientation {
	return Orientation{angle: a}
}

// Degrees returns an orientation of d degrees. d must be finite.
func Degrees(d float64) Orientation {
	return Orientation{angle: DegreesToRadians(d)}
}

// RadiansToDegrees converts an angle in radians to degrees.
func RadiansToDegrees(r float64) float64 {
	return r * 180 / math.Pi
}

// DegreesToRadians converts an angle in degrees to radians.
func DegreesToRadians(d float64) float64 {
	return d * math.Pi / 180
}

// NormalizeAngle maps a into (-π, π].
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// InRadians returns the angle in radians.
func (o Orientation) InRadians() float64 { return o.angle }

// InDegrees returns the angle in degrees.
func (o Orientation) InDegrees() float64 { return RadiansToDegrees(o.angle) }

// Cos returns the cosine of the angle.
func (o Orientation) Cos() float64 { return math.Cos(o.angle) }

// Sin returns the sine of the angle.
func (o Orientation) Sin() float64 { return math.Sin(o.angle) }

// Equals reports whether both angles are exactly equal.
func (o Orientation) Equals(other Orientation) bool {
	return o.angle == other.angle
}

// AngleBetween returns the minimal signed rotation in radians that turns o
// onto other. The result lies in (-π, π]; positive is counter-clockwise.
func (o Orientation) AngleBetween(other Orientation) float64 {
	return NormalizeAngle(other.angle - o.angle)
}

// Rotate returns o turned by delta radians.
func (o Orientation) Rotate(delta float64) Orientation {
	return Orientation{angle: o.angle + delta}
}

// String formats the angle in both units, e.g. "(1.57 radians, 90.00 degrees)".
func (o Orientation) String() string {
	return fmt.Sprintf("(%.2f radians, %.2f degrees)", o.InRadians(), o.InDegrees())
}

// unit returns the unit vector pointing along o.
func (o Orientation) unit() Position {
	sin, cos := math.Sincos(o.angle)
	return Position{X: cos, Y: sin}
}
