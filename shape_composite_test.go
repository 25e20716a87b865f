package dancevis

import (
	"errors"
	"math"
	"testing"
)

func twoLines(t *testing.T) (*Shape, *Shape, *Shape) {
	t.Helper()
	first := mustLine(t, LineOptions{Length: 10})
	second := mustLine(t, LineOptions{Start: Position{X: 10}, Length: 10, Angle: Degrees(90)})
	c, err := NewComposite(first, second)
	if err != nil {
		t.Fatalf("NewComposite: %v", err)
	}
	return c, first, second
}

func TestCompositeOverflowContinuesInNextMember(t *testing.T) {
	c, _, second := twoLines(t)
	assertNear(t, "length", c.Length(), 20)

	p := c.Advance(8, Milliseconds(5), PixelsPerMillisecond(1))
	assertNear(t, "progress", p, 13)
	pos := c.PositionAt(p)
	assertPos(t, "position", pos, Position{X: 10, Y: 3})

	sub, i, err := c.ShapeAt(pos)
	if err != nil {
		t.Fatalf("ShapeAt: %v", err)
	}
	if sub != second || i != 1 {
		t.Errorf("ShapeAt = member %d, want the second line", i)
	}
}

func TestCompositeEndpointsAndHeading(t *testing.T) {
	c, _, _ := twoLines(t)
	assertPos(t, "start", c.StartPosition(), Position{})
	assertPos(t, "end", c.EndPosition(), Position{X: 10, Y: 10})
	assertNear(t, "heading first", c.HeadingAt(5).InDegrees(), 0)
	assertNear(t, "heading boundary", c.HeadingAt(10).InDegrees(), 90)
	if c.IsClosed() {
		t.Error("open L should not be closed")
	}
}

func TestCompositeShapeAtFirstMatchWins(t *testing.T) {
	c, first, _ := twoLines(t)
	// The corner lies on both lines.
	sub, i, err := c.ShapeAt(Position{X: 10})
	if err != nil {
		t.Fatalf("ShapeAt: %v", err)
	}
	if sub != first || i != 0 {
		t.Errorf("ShapeAt corner = member %d, want 0", i)
	}
	if _, _, err := c.ShapeAt(Position{X: 5, Y: 5}); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestCompositeAddShapeAt(t *testing.T) {
	c, first, second := twoLines(t)
	p, err := NewPoint(PointOptions{Position: Position{X: -1}})
	if err != nil {
		t.Fatalf("NewPoint: %v", err)
	}
	if err := c.AddShapeAt(p, 0); err != nil {
		t.Fatalf("AddShapeAt: %v", err)
	}
	got := c.Shapes()
	if len(got) != 3 || got[0] != p || got[1] != first || got[2] != second {
		t.Errorf("members out of order")
	}
	if n := c.NumShapesOfType(ShapeLine); n != 2 {
		t.Errorf("NumShapesOfType(line) = %d, want 2", n)
	}
	if err := c.AddShapeAt(p, 5); !errors.Is(err, ErrIndex) {
		t.Errorf("bad index err = %v, want ErrIndex", err)
	}
	if err := c.AddShape(nil); !errors.Is(err, ErrValidation) {
		t.Errorf("nil err = %v, want ErrValidation", err)
	}
	if err := first.AddShape(p); !errors.Is(err, ErrValidation) {
		t.Errorf("non-composite err = %v, want ErrValidation", err)
	}
}

func TestCompositeRejectsCycles(t *testing.T) {
	outer, err := NewComposite()
	if err != nil {
		t.Fatalf("NewComposite: %v", err)
	}
	inner, err := NewComposite()
	if err != nil {
		t.Fatalf("NewComposite: %v", err)
	}
	if err := outer.AddShape(inner); err != nil {
		t.Fatalf("AddShape: %v", err)
	}
	if err := inner.AddShape(outer); !errors.Is(err, ErrValidation) {
		t.Errorf("cycle err = %v, want ErrValidation", err)
	}
	if err := outer.AddShape(outer); !errors.Is(err, ErrValidation) {
		t.Errorf("self err = %v, want ErrValidation", err)
	}
}

func TestCompositeClosedLoop(t *testing.T) {
	half1 := mustCircle(t, CircleOptions{Radius: 5, StopAngle: Radians(math.Pi)})
	half2 := mustCircle(t, CircleOptions{Radius: 5, StartAngle: Radians(math.Pi), StopAngle: Radians(2 * math.Pi)})
	c, err := NewComposite(half1, half2)
	if err != nil {
		t.Fatalf("NewComposite: %v", err)
	}
	if !c.IsClosed() {
		t.Error("two halves of a circle should be closed")
	}
	assertNear(t, "length", c.Length(), 10*math.Pi)
	assertNear(t, "progress", c.ProgressOf(Position{Y: -5}), 7.5*math.Pi)
}

func TestEmptyComposite(t *testing.T) {
	c, err := NewComposite()
	if err != nil {
		t.Fatalf("NewComposite: %v", err)
	}
	assertNear(t, "length", c.Length(), 0)
	assertPos(t, "position", c.PositionAt(3), Position{})
	if !c.BoundingBox().IsEmpty() {
		t.Error("empty composite has empty bounds")
	}
}
