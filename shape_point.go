package dancevis

// PointOptions configures a Point. Radius widens the IsOnShape test only.
type PointOptions struct {
	Position Position
	Radius   float64
}

// NewPoint returns a zero-length shape fixed at opts.Position. A node on a
// Point does not move.
func NewPoint(opts PointOptions) (*Shape, error) {
	if !opts.Position.isFinite() {
		return nil, validationErrorf("NewPoint", "position must be finite")
	}
	if !isFinite(opts.Radius) || opts.Radius < 0 {
		return nil, validationErrorf("NewPoint", "radius must be a finite number >= 0, got %v", opts.Radius)
	}
	return &Shape{typ: ShapePoint, center: opts.Position, radius: opts.Radius}, nil
}

// Point returns the fixed position of a Point shape.
func (s *Shape) Point() Position {
	return s.center
}

// SetRadius sets the membership radius of a Point.
func (s *Shape) SetRadius(r float64) error {
	if s.typ != ShapePoint {
		return validationErrorf("SetRadius", "shape is a %s, not a point", s.typ)
	}
	if !isFinite(r) || r < 0 {
		return validationErrorf("SetRadius", "radius must be a finite number >= 0, got %v", r)
	}
	s.radius = r
	return nil
}
