package dancevis

import "math"

// CircleOptions configures a Circle arc. Radius must be positive.
type CircleOptions struct {
	Center     Position
	Radius     float64
	StartAngle Orientation
	StopAngle  Orientation
}

// NewCircle returns an arc around opts.Center. Travel runs from StartAngle
// toward StopAngle (counter-clockwise when StopAngle is larger) and stops
// there; a full circle needs a span of 2π.
func NewCircle(opts CircleOptions) (*Shape, error) {
	if !opts.Center.isFinite() {
		return nil, validationErrorf("NewCircle", "center must be finite")
	}
	if !isFinite(opts.Radius) || opts.Radius <= 0 {
		return nil, validationErrorf("NewCircle", "radius must be a finite number > 0, got %v", opts.Radius)
	}
	if !isFinite(opts.StartAngle.angle) || !isFinite(opts.StopAngle.angle) {
		return nil, validationErrorf("NewCircle", "angles must be finite")
	}
	return &Shape{
		typ:        ShapeCircle,
		center:     opts.Center,
		radius:     opts.Radius,
		startAngle: opts.StartAngle,
		stopAngle:  opts.StopAngle,
	}, nil
}

// Center returns the center of a Circle, Point or Grid.
func (s *Shape) Center() Position { return s.center }

// Radius returns the radius of a Circle or Point.
func (s *Shape) Radius() float64 { return s.radius }

// StartAngle returns the angle at which a Circle arc begins.
func (s *Shape) StartAngle() Orientation { return s.startAngle }

// StopAngle returns the angle at which a Circle arc ends.
func (s *Shape) StopAngle() Orientation { return s.stopAngle }

// SetStartAngle moves the beginning of a Circle arc.
func (s *Shape) SetStartAngle(o Orientation) error {
	if s.typ != ShapeCircle {
		return validationErrorf("SetStartAngle", "shape is a %s, not a circle", s.typ)
	}
	if !isFinite(o.angle) {
		return validationErrorf("SetStartAngle", "angle must be finite")
	}
	s.startAngle = o
	return nil
}

// SetStopAngle moves the end of a Circle arc.
func (s *Shape) SetStopAngle(o Orientation) error {
	if s.typ != ShapeCircle {
		return validationErrorf("SetStopAngle", "shape is a %s, not a circle", s.typ)
	}
	if !isFinite(o.angle) {
		return validationErrorf("SetStopAngle", "angle must be finite")
	}
	s.stopAngle = o
	return nil
}

// ArcLength returns the length of an arc of the given angle, in radians, on
// this circle.
func (s *Shape) ArcLength(angle float64) float64 {
	return s.radius * angle
}

// circleSpan is the signed sweep from start to stop angle.
func (s *Shape) circleSpan() float64 {
	return s.stopAngle.angle - s.startAngle.angle
}

func (s *Shape) circleDir() float64 {
	if s.circleSpan() < 0 {
		return -1
	}
	return 1
}

func (s *Shape) circleLength() float64 {
	return math.Abs(s.ArcLength(s.circleSpan()))
}

func (s *Shape) circleAngleAt(progress float64) float64 {
	p := clampProgress(progress, s.circleLength())
	return s.startAngle.angle + s.circleDir()*p/s.radius
}

func (s *Shape) circlePositionAt(progress float64) Position {
	return s.center.add(Radians(s.circleAngleAt(progress)).unit().scale(s.radius))
}

func (s *Shape) circleHeadingAt(progress float64) Orientation {
	return Radians(s.circleAngleAt(progress) + s.circleDir()*math.Pi/2)
}

// circleSweep returns how far, in radians along the direction of travel,
// the bearing of pos lies past the start angle, in [0, 2π).
func (s *Shape) circleSweep(pos Position) float64 {
	d := pos.sub(s.center)
	bearing := math.Atan2(d.Y, d.X)
	rel := math.Mod(s.circleDir()*(bearing-s.startAngle.angle), 2*math.Pi)
	if rel < 0 {
		rel += 2 * math.Pi
	}
	return rel
}

func (s *Shape) circleProgressOf(pos Position) float64 {
	span := math.Abs(s.circleSpan())
	rel := s.circleSweep(pos)
	if rel <= span {
		return rel * s.radius
	}
	// Outside the arc: snap to whichever end is angularly closer.
	if rel-span < 2*math.Pi-rel {
		return s.circleLength()
	}
	return 0
}

func (s *Shape) circleIsOnShape(pos Position) bool {
	if math.Abs(s.center.Distance(pos)-s.radius) > OnShapeTolerance {
		return false
	}
	span := math.Abs(s.circleSpan())
	if span >= 2*math.Pi {
		return true
	}
	slack := OnShapeTolerance / s.radius
	rel := s.circleSweep(pos)
	return rel <= span+slack || rel >= 2*math.Pi-slack
}

func (s *Shape) circleBoundingBox() PositionBounds {
	b := NewPositionBounds(s.StartPosition(), s.EndPosition())
	span := math.Abs(s.circleSpan())
	for k := 0; k < 4; k++ {
		extreme := s.center.add(Radians(float64(k) * math.Pi / 2).unit().scale(s.radius))
		if span >= 2*math.Pi || s.circleSweep(extreme) <= span {
			b = b.Extend(extreme)
		}
	}
	return b
}
