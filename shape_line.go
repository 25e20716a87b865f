package dancevis

import "math"

// LineOptions configures a Line. Absent fields are zero.
type LineOptions struct {
	Start  Position
	Length float64
	Angle  Orientation
}

// NewLine returns a straight segment starting at opts.Start and extending
// opts.Length units along opts.Angle.
func NewLine(opts LineOptions) (*Shape, error) {
	if !opts.Start.isFinite() {
		return nil, validationErrorf("NewLine", "start must be finite")
	}
	if !isFinite(opts.Length) || opts.Length < 0 {
		return nil, validationErrorf("NewLine", "length must be a finite number >= 0, got %v", opts.Length)
	}
	if !isFinite(opts.Angle.angle) {
		return nil, validationErrorf("NewLine", "angle must be finite")
	}
	return &Shape{typ: ShapeLine, start: opts.Start, length: opts.Length, angle: opts.Angle}, nil
}

// Angle returns the direction of a Line, or the rotation of a Grid.
func (s *Shape) Angle() Orientation {
	return s.angle
}

// DistanceToLine returns the perpendicular distance from pos to the infinite
// line through a Line shape.
func (s *Shape) DistanceToLine(pos Position) float64 {
	return math.Abs(s.angle.unit().cross(pos.sub(s.start)))
}

func (s *Shape) linePositionAt(progress float64) Position {
	return s.start.add(s.angle.unit().scale(clampProgress(progress, s.length)))
}

func (s *Shape) lineProgressOf(pos Position) float64 {
	return clampProgress(pos.sub(s.start).dot(s.angle.unit()), s.length)
}

func (s *Shape) lineIsOnShape(pos Position) bool {
	offset := pos.sub(s.start).dot(s.angle.unit())
	return s.DistanceToLine(pos) <= OnShapeTolerance &&
		offset >= -OnShapeTolerance && offset <= s.length+OnShapeTolerance
}
