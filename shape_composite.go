package dancevis

import "math"

// NewComposite returns a path made of shapes travelled in order. Members keep
// their own coordinates; callers chain them so each starts where the previous
// one ends.
func NewComposite(shapes ...*Shape) (*Shape, error) {
	c := &Shape{typ: ShapeComposite}
	for _, sub := range shapes {
		if err := c.AddShape(sub); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// AddShape appends sub to the end of a Composite.
func (s *Shape) AddShape(sub *Shape) error {
	return s.AddShapeAt(sub, len(s.shapes))
}

// AddShapeAt inserts sub at index, shifting later members back. index may
// equal the member count to append.
func (s *Shape) AddShapeAt(sub *Shape, index int) error {
	if s.typ != ShapeComposite {
		return validationErrorf("AddShape", "shape is a %s, not a composite", s.typ)
	}
	if sub == nil {
		return validationErrorf("AddShape", "cannot add nil shape")
	}
	if sub.containsShape(s) {
		return validationErrorf("AddShape", "adding shape would create a cycle")
	}
	if index < 0 || index > len(s.shapes) {
		return indexErrorf("AddShape", index, 0, len(s.shapes)+1)
	}
	s.shapes = append(s.shapes, nil)
	copy(s.shapes[index+1:], s.shapes[index:])
	s.shapes[index] = sub
	return nil
}

// Shapes returns the members of a Composite in path order. The returned slice
// MUST NOT be mutated by the caller.
func (s *Shape) Shapes() []*Shape {
	return s.shapes
}

// NumShapes returns the number of Composite members.
func (s *Shape) NumShapes() int {
	return len(s.shapes)
}

// NumShapesOfType counts the direct members of a Composite with type t.
func (s *Shape) NumShapesOfType(t ShapeType) int {
	n := 0
	for _, sub := range s.shapes {
		if sub.typ == t {
			n++
		}
	}
	return n
}

// ShapeAt returns the first member, in declared order, on which pos lies,
// together with its index. When members overlap the earliest one wins.
func (s *Shape) ShapeAt(pos Position) (*Shape, int, error) {
	if s.typ != ShapeComposite {
		return nil, -1, validationErrorf("ShapeAt", "shape is a %s, not a composite", s.typ)
	}
	for i, sub := range s.shapes {
		if sub.IsOnShape(pos) {
			return sub, i, nil
		}
	}
	return nil, -1, notFoundErrorf("ShapeAt", "no member contains %v", pos)
}

// containsShape reports whether target is s or nested anywhere inside s.
func (s *Shape) containsShape(target *Shape) bool {
	if s == target {
		return true
	}
	for _, sub := range s.shapes {
		if sub.containsShape(target) {
			return true
		}
	}
	return false
}

func (s *Shape) compositeLength() float64 {
	total := 0.0
	for _, sub := range s.shapes {
		total += sub.Length()
	}
	return total
}

// locate finds the member whose length range contains progress and returns
// it with the progress local to that member. A boundary belongs to the later
// member, so motion that overflows one member continues in the next.
func (s *Shape) locate(progress float64) (*Shape, float64) {
	if len(s.shapes) == 0 {
		return nil, 0
	}
	p := clampProgress(progress, s.compositeLength())
	offset := 0.0
	for _, sub := range s.shapes {
		l := sub.Length()
		if p < offset+l {
			return sub, p - offset
		}
		offset += l
	}
	last := s.shapes[len(s.shapes)-1]
	return last, last.Length()
}

func (s *Shape) compositePositionAt(progress float64) Position {
	sub, local := s.locate(progress)
	if sub == nil {
		return Position{}
	}
	return sub.PositionAt(local)
}

func (s *Shape) compositeHeadingAt(progress float64) Orientation {
	sub, local := s.locate(progress)
	if sub == nil {
		return Orientation{}
	}
	return sub.HeadingAt(local)
}

func (s *Shape) compositeProgressOf(pos Position) float64 {
	best, bestDist := 0.0, math.Inf(1)
	offset := 0.0
	for _, sub := range s.shapes {
		local := sub.ProgressOf(pos)
		if d := sub.PositionAt(local).Distance(pos); d < bestDist {
			best, bestDist = offset+local, d
		}
		offset += sub.Length()
	}
	return best
}
