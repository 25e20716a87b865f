package dancevis

import (
	"fmt"
	"math"
)

// OnShapeTolerance is the distance within which IsOnShape treats a position
// as lying on a path.
const OnShapeTolerance = 1e-6

// defaultOutlineStep is the sampling step, in pixels, used by Outline when
// the caller passes a non-positive step.
const defaultOutlineStep = 4.0

// maxOutlineSamples caps the number of samples Outline emits for one curve.
const maxOutlineSamples = 1024

// Shape is a parametrized path that a node travels along over time. A single
// flat struct is used for all variants; Type selects which fields are live.
// Construct shapes with NewLine, NewCircle, NewPoint, NewGrid and
// NewComposite.
//
// A point on a shape is addressed by its progress: the arc-length distance
// from StartPosition along the path, clamped to [0, Length].
type Shape struct {
	typ ShapeType

	// Line: start, length, angle. Grid: angle.
	start  Position
	length float64
	angle  Orientation

	// Circle: center, radius, startAngle, stopAngle. Point: center, radius.
	// Grid: center.
	center     Position
	radius     float64
	startAngle Orientation
	stopAngle  Orientation

	// Grid
	rows, cols int
	spacing    float64

	// Composite (owned, in path order)
	shapes []*Shape
}

// Type returns the variant tag.
func (s *Shape) Type() ShapeType {
	return s.typ
}

// Length returns the arc length of the whole path.
func (s *Shape) Length() float64 {
	switch s.typ {
	case ShapeLine:
		return s.length
	case ShapeCircle:
		return s.circleLength()
	case ShapePoint:
		return 0
	case ShapeGrid:
		return s.gridLength()
	case ShapeComposite:
		return s.compositeLength()
	default:
		panic(fmt.Sprintf("dancevis: unknown shape type %d", s.typ))
	}
}

// StartPosition returns the first point of the path.
func (s *Shape) StartPosition() Position {
	if s.typ == ShapeComposite {
		if len(s.shapes) == 0 {
			return Position{}
		}
		return s.shapes[0].StartPosition()
	}
	return s.PositionAt(0)
}

// EndPosition returns the last point of the path.
func (s *Shape) EndPosition() Position {
	if s.typ == ShapeComposite {
		if len(s.shapes) == 0 {
			return Position{}
		}
		return s.shapes[len(s.shapes)-1].EndPosition()
	}
	return s.PositionAt(s.Length())
}

// PositionAt returns the point at the given progress. Progress outside
// [0, Length] is clamped to the nearest end.
func (s *Shape) PositionAt(progress float64) Position {
	switch s.typ {
	case ShapeLine:
		return s.linePositionAt(progress)
	case ShapeCircle:
		return s.circlePositionAt(progress)
	case ShapePoint:
		return s.center
	case ShapeGrid:
		return s.gridPositionAt(progress)
	case ShapeComposite:
		return s.compositePositionAt(progress)
	default:
		panic(fmt.Sprintf("dancevis: unknown shape type %d", s.typ))
	}
}

// HeadingAt returns the direction of travel at the given progress. A Point
// has no direction and reports the zero orientation.
func (s *Shape) HeadingAt(progress float64) Orientation {
	switch s.typ {
	case ShapeLine:
		return s.angle
	case ShapeCircle:
		return s.circleHeadingAt(progress)
	case ShapePoint:
		return Orientation{}
	case ShapeGrid:
		return s.gridHeadingAt(progress)
	case ShapeComposite:
		return s.compositeHeadingAt(progress)
	default:
		panic(fmt.Sprintf("dancevis: unknown shape type %d", s.typ))
	}
}

// ProgressOf returns the progress of the point on the path closest to pos.
func (s *Shape) ProgressOf(pos Position) float64 {
	switch s.typ {
	case ShapeLine:
		return s.lineProgressOf(pos)
	case ShapeCircle:
		return s.circleProgressOf(pos)
	case ShapePoint:
		return 0
	case ShapeGrid:
		return s.gridProgressOf(pos)
	case ShapeComposite:
		return s.compositeProgressOf(pos)
	default:
		panic(fmt.Sprintf("dancevis: unknown shape type %d", s.typ))
	}
}

// Advance returns the progress reached after travelling for elapsed at speed
// from progress. The result is clamped to [0, Length]: once an end is
// reached the traveller holds there.
func (s *Shape) Advance(progress float64, elapsed Time, speed Speed) float64 {
	return clampProgress(progress+speed.DistanceIn(elapsed), s.Length())
}

// NextPosition returns where a traveller currently at current ends up after
// moving for elapsed at speed along the path. current is first projected
// onto the path.
func (s *Shape) NextPosition(current Position, elapsed Time, speed Speed) Position {
	return s.PositionAt(s.Advance(s.ProgressOf(current), elapsed, speed))
}

// IsOnShape reports whether pos lies on the path within OnShapeTolerance.
func (s *Shape) IsOnShape(pos Position) bool {
	switch s.typ {
	case ShapeLine:
		return s.lineIsOnShape(pos)
	case ShapeCircle:
		return s.circleIsOnShape(pos)
	case ShapePoint:
		return s.center.Distance(pos) <= math.Max(s.radius, OnShapeTolerance)
	case ShapeGrid:
		return s.gridIsOnShape(pos)
	case ShapeComposite:
		_, _, err := s.ShapeAt(pos)
		return err == nil
	default:
		panic(fmt.Sprintf("dancevis: unknown shape type %d", s.typ))
	}
}

// IsClosed reports whether the path ends where it starts.
func (s *Shape) IsClosed() bool {
	switch s.typ {
	case ShapeCircle:
		return math.Abs(s.circleSpan()) >= 2*math.Pi-1e-9
	case ShapeComposite:
		return len(s.shapes) > 1 && s.Length() > 0 &&
			s.StartPosition().Distance(s.EndPosition()) <= OnShapeTolerance
	default:
		return false
	}
}

// BoundingBox returns the smallest axis-aligned bounds containing the path.
func (s *Shape) BoundingBox() PositionBounds {
	switch s.typ {
	case ShapeLine:
		return NewPositionBounds(s.start, s.EndPosition())
	case ShapeCircle:
		return s.circleBoundingBox()
	case ShapePoint:
		r := Position{X: s.radius, Y: s.radius}
		return NewPositionBounds(s.center.sub(r), s.center.add(r))
	case ShapeGrid:
		return s.gridBoundingBox()
	case ShapeComposite:
		var b PositionBounds
		for _, sub := range s.shapes {
			b = b.Union(sub.BoundingBox())
		}
		return b
	default:
		panic(fmt.Sprintf("dancevis: unknown shape type %d", s.typ))
	}
}

// Outline samples the path as a polyline for drawing. Curved parts are
// sampled every maxStep pixels; maxStep <= 0 selects a default.
func (s *Shape) Outline(maxStep float64) []Position {
	if maxStep <= 0 {
		maxStep = defaultOutlineStep
	}
	switch s.typ {
	case ShapeLine:
		return []Position{s.start, s.EndPosition()}
	case ShapeCircle:
		return s.sample(maxStep)
	case ShapePoint:
		return []Position{s.center}
	case ShapeGrid:
		n := s.rows * s.cols
		pts := make([]Position, n)
		for i := range pts {
			pts[i] = s.cellAt(i)
		}
		return pts
	case ShapeComposite:
		var pts []Position
		for _, sub := range s.shapes {
			pts = append(pts, sub.Outline(maxStep)...)
		}
		return pts
	default:
		panic(fmt.Sprintf("dancevis: unknown shape type %d", s.typ))
	}
}

// String describes the shape variant and its length.
func (s *Shape) String() string {
	return fmt.Sprintf("%s(length=%.2f)", s.typ, s.Length())
}

// sample returns evenly spaced points along the path, endpoints included.
func (s *Shape) sample(maxStep float64) []Position {
	l := s.Length()
	n := int(math.Ceil(l / maxStep))
	if n < 1 {
		n = 1
	}
	if n > maxOutlineSamples {
		n = maxOutlineSamples
	}
	pts := make([]Position, n+1)
	for i := 0; i <= n; i++ {
		pts[i] = s.PositionAt(l * float64(i) / float64(n))
	}
	return pts
}

func clampProgress(p, length float64) float64 {
	if p < 0 || math.IsNaN(p) {
		return 0
	}
	if p > length {
		return length
	}
	return p
}
