package dancevis

import (
	"fmt"
	"math"
)

// PositionBounds is an axis-aligned rectangle given by its south-west and
// north-east corners. The zero value is an empty bounds that contains nothing
// until extended.
type PositionBounds struct {
	sw, ne Position
	set    bool
}

// NewPositionBounds returns the bounds spanned by two opposite corners. The
// corners are normalized so argument order does not matter.
func NewPositionBounds(a, b Position) PositionBounds {
	return PositionBounds{
		sw:  Position{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)},
		ne:  Position{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)},
		set: true,
	}
}

// IsEmpty reports whether the bounds has never been extended.
func (b PositionBounds) IsEmpty() bool { return !b.set }

// SouthWest returns the minimum corner.
func (b PositionBounds) SouthWest() Position { return b.sw }

// NorthEast returns the maximum corner.
func (b PositionBounds) NorthEast() Position { return b.ne }

// Center returns the midpoint of the bounds.
func (b PositionBounds) Center() Position { return lerp(b.sw, b.ne, 0.5) }

// Width returns the east-west extent.
func (b PositionBounds) Width() float64 { return b.ne.X - b.sw.X }

// Height returns the north-south extent.
func (b PositionBounds) Height() float64 { return b.ne.Y - b.sw.Y }

// Contains reports whether p lies inside b. Points on the edge are inside.
func (b PositionBounds) Contains(p Position) bool {
	return b.set &&
		p.X >= b.sw.X && p.X <= b.ne.X &&
		p.Y >= b.sw.Y && p.Y <= b.ne.Y
}

// Equals reports whether both bounds have the same corners.
func (b PositionBounds) Equals(other PositionBounds) bool {
	if !b.set || !other.set {
		return b.set == other.set
	}
	return b.sw.Equals(other.sw) && b.ne.Equals(other.ne)
}

// Extend returns the smallest bounds containing b and p.
func (b PositionBounds) Extend(p Position) PositionBounds {
	if !b.set {
		return PositionBounds{sw: p, ne: p, set: true}
	}
	return PositionBounds{
		sw:  Position{X: math.Min(b.sw.X, p.X), Y: math.Min(b.sw.Y, p.Y)},
		ne:  Position{X: math.Max(b.ne.X, p.X), Y: math.Max(b.ne.Y, p.Y)},
		set: true,
	}
}

// Intersects reports whether b and other overlap. Bounds sharing only an
// edge intersect.
func (b PositionBounds) Intersects(other PositionBounds) bool {
	if !b.set || !other.set {
		return false
	}
	return b.sw.X <= other.ne.X && b.ne.X >= other.sw.X &&
		b.sw.Y <= other.ne.Y && b.ne.Y >= other.sw.Y
}

// Union returns the smallest bounds containing both b and other.
func (b PositionBounds) Union(other PositionBounds) PositionBounds {
	if !other.set {
		return b
	}
	return b.Extend(other.sw).Extend(other.ne)
}

// String formats the bounds as "[sw, ne]".
func (b PositionBounds) String() string {
	if !b.set {
		return "[empty]"
	}
	return fmt.Sprintf("[%v, %v]", b.sw, b.ne)
}
