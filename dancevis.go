package dancevis

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. The engine treats
// it as an opaque presentation attribute; only renderers interpret it.
type Color struct {
	R, G, B, A float64
}

// ColorBlack is the default dancer color.
var ColorBlack = Color{0, 0, 0, 1}

// ColorWhite is plain white.
var ColorWhite = Color{1, 1, 1, 1}

// RGBA converts c to an 8-bit alpha-premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: clampByte(c.R * c.A),
		G: clampByte(c.G * c.A),
		B: clampByte(c.B * c.A),
		A: clampByte(c.A),
	}
}

func clampByte(v float64) uint8 {
	v = math.Round(v * 255)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// ShapeType identifies the variant of a Shape.
type ShapeType uint8

const (
	ShapeLine      ShapeType = iota // straight segment
	ShapeCircle                     // circular arc
	ShapePoint                      // fixed point, zero length
	ShapeGrid                       // rotated lattice traversed in serpentine order
	ShapeComposite                  // ordered concatenation of other shapes
)

// String returns the lower-case name of the shape type.
func (t ShapeType) String() string {
	switch t {
	case ShapeLine:
		return "line"
	case ShapeCircle:
		return "circle"
	case ShapePoint:
		return "point"
	case ShapeGrid:
		return "grid"
	case ShapeComposite:
		return "composite"
	default:
		return "unknown"
	}
}

// NodeType distinguishes the two kinds of formation node.
type NodeType uint8

const (
	NodeTypeGroup  NodeType = iota // owns children, optionally a shape
	NodeTypeDancer                 // leaf agent with presentation attributes
)

// String returns "group" or "dancer".
func (t NodeType) String() string {
	if t == NodeTypeDancer {
		return "dancer"
	}
	return "group"
}

// DancerType is the role of a dancer within a partnership.
type DancerType uint8

const (
	DancerFollow DancerType = iota
	DancerLead
)

// String returns "follow" or "lead".
func (t DancerType) String() string {
	if t == DancerLead {
		return "lead"
	}
	return "follow"
}

// DancerGlyph selects the marker a renderer draws for a dancer.
type DancerGlyph uint8

const (
	GlyphCircle DancerGlyph = iota
	GlyphSquare
	GlyphTriangle
)

// DancerSize is a size class for the dancer glyph. Pixel sizes are decided by
// the renderer.
type DancerSize uint8

const (
	SizeSmall DancerSize = iota
	SizeMedium
	SizeLarge
)

// PlacementControl is the rule for seeding children's starting positions along
// a group's newly assigned shape.
type PlacementControl uint8

const (
	PlacementEvenlySpaced PlacementControl = iota // uniform steps along the path length
	PlacementAllAtStart                           // every child at the shape's start
	PlacementManual                               // positions left as the caller set them
)

// String returns the placement policy name.
func (p PlacementControl) String() string {
	switch p {
	case PlacementEvenlySpaced:
		return "evenly-spaced"
	case PlacementAllAtStart:
		return "all-at-start"
	case PlacementManual:
		return "manual"
	default:
		return "unknown"
	}
}

// MotionState is the lifecycle state of a node's current motion segment.
type MotionState uint8

const (
	StatePending   MotionState = iota // not yet ticked
	StateActive                       // moving; begin action has fired
	StateCompleted                    // end condition met; end action has fired
)

// String returns the state name.
func (s MotionState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateActive:
		return "active"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// EventType identifies a lifecycle event published to an EventStore.
type EventType uint8

const (
	EventBegin   EventType = iota // PENDING -> ACTIVE
	EventEnd                      // ACTIVE -> COMPLETED
	EventForward                  // node moved to another group
)

// String returns the event name.
func (t EventType) String() string {
	switch t {
	case EventBegin:
		return "begin"
	case EventEnd:
		return "end"
	case EventForward:
		return "forward"
	default:
		return "unknown"
	}
}
