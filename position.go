package dancevis

import (
	"fmt"
	"math"
)

// Position is a point in the planar choreography space. The y axis points up;
// ScreenCoords flips it for y-down render surfaces.
type Position struct {
	X, Y float64
}

// NewPosition returns the position (x, y). Both components must be finite.
func NewPosition(x, y float64) (Position, error) {
	if !isFinite(x) || !isFinite(y) {
		return Position{}, validationErrorf("NewPosition", "x, y must be finite numbers, got (%v, %v)", x, y)
	}
	return Position{X: x, Y: y}, nil
}

// Distance returns the Euclidean distance between p and other.
func (p Position) Distance(other Position) float64 {
	return math.Hypot(other.X-p.X, other.Y-p.Y)
}

// Equals reports whether both components are exactly equal.
func (p Position) Equals(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}

// ScreenCoords maps p onto a render surface whose origin is offset by origin.
// The receiver is not modified.
func (p Position) ScreenCoords(origin ScreenOrigin) Position {
	return Position{X: origin.Left + p.X, Y: origin.Top - p.Y}
}

// String formats the position with two decimals, e.g. "(1.00,2.50)".
func (p Position) String() string {
	return fmt.Sprintf("(%.2f,%.2f)", p.X, p.Y)
}

func (p Position) add(q Position) Position   { return Position{p.X + q.X, p.Y + q.Y} }
func (p Position) sub(q Position) Position   { return Position{p.X - q.X, p.Y - q.Y} }
func (p Position) scale(k float64) Position  { return Position{p.X * k, p.Y * k} }
func (p Position) dot(q Position) float64    { return p.X*q.X + p.Y*q.Y }
func (p Position) cross(q Position) float64  { return p.X*q.Y - p.Y*q.X }
func (p Position) length() float64           { return math.Hypot(p.X, p.Y) }
func (p Position) isFinite() bool            { return isFinite(p.X) && isFinite(p.Y) }
func lerp(a, b Position, t float64) Position { return a.add(b.sub(a).scale(t)) }

// ScreenOrigin is the offset of the choreography origin on the render
// surface. It is established once by NewStage.
type ScreenOrigin struct {
	Left, Top float64
}

func (o ScreenOrigin) validate(width, height float64) error {
	if !isFinite(o.Left) || !isFinite(o.Top) {
		return validationErrorf("ScreenOrigin", "origin must be finite numbers")
	}
	if o.Left < 0 || o.Top < 0 {
		return validationErrorf("ScreenOrigin", "origin must be >= 0, got (%v, %v)", o.Left, o.Top)
	}
	if (width > 0 && o.Left > width) || (height > 0 && o.Top > height) {
		return validationErrorf("ScreenOrigin", "origin (%v, %v) outside surface %vx%v", o.Left, o.Top, width, height)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
