package dancevis

import (
	"math"
	"testing"
)

func groupWith(t *testing.T, placement PlacementControl, shape *Shape, n int) (*Node, []*Node) {
	t.Helper()
	g := NewGroup(GroupOptions{Placement: placement, MotionOptions: MotionOptions{Shape: shape}})
	ds := make([]*Node, n)
	for i := range ds {
		ds[i] = NewDancer(DancerOptions{})
		if err := g.AddChild(ds[i]); err != nil {
			t.Fatalf("AddChild: %v", err)
		}
	}
	return g, ds
}

func TestPlacementEvenlySpacedOpenPath(t *testing.T) {
	_, ds := groupWith(t, PlacementEvenlySpaced, mustLine(t, LineOptions{Length: 10}), 3)
	assertPos(t, "first", ds[0].Position(), Position{})
	assertPos(t, "middle", ds[1].Position(), Position{X: 5})
	assertPos(t, "last", ds[2].Position(), Position{X: 10})
}

func TestPlacementEvenlySpacedClosedPath(t *testing.T) {
	c := mustCircle(t, CircleOptions{Radius: 10, StopAngle: Radians(2 * math.Pi)})
	_, ds := groupWith(t, PlacementEvenlySpaced, c, 4)
	want := []Position{{X: 10}, {Y: 10}, {X: -10}, {Y: -10}}
	for i, d := range ds {
		assertPos(t, "dancer", d.Position(), want[i])
	}
}

func TestPlacementSingleChildAtStart(t *testing.T) {
	_, ds := groupWith(t, PlacementEvenlySpaced, mustLine(t, LineOptions{Start: Position{X: 2}, Length: 10}), 1)
	assertPos(t, "only", ds[0].Position(), Position{X: 2})
}

func TestPlacementAllAtStart(t *testing.T) {
	_, ds := groupWith(t, PlacementAllAtStart, mustLine(t, LineOptions{Start: Position{Y: 3}, Length: 10}), 3)
	for _, d := range ds {
		assertPos(t, "dancer", d.Position(), Position{Y: 3})
	}
}

func TestPlacementManualLeavesPositions(t *testing.T) {
	g := NewGroup(GroupOptions{Placement: PlacementManual})
	pos := Position{X: 40, Y: -40}
	d := NewDancer(DancerOptions{MotionOptions: MotionOptions{Position: &pos}})
	g.AddChild(d)
	g.SetShape(mustLine(t, LineOptions{Length: 10}))
	assertPos(t, "dancer", d.Position(), pos)
}

func TestPlacementOnlyWhilePending(t *testing.T) {
	g, ds := groupWith(t, PlacementEvenlySpaced, mustLine(t, LineOptions{Length: 10}), 2)
	g.TimeIs(Milliseconds(0))
	pos := Position{X: 99, Y: 99}
	late := NewDancer(DancerOptions{MotionOptions: MotionOptions{Position: &pos}})
	g.AddChild(late)
	assertPos(t, "late", late.Position(), pos)
	assertPos(t, "existing", ds[1].Position(), Position{X: 10})
}

func TestPlacementSkipsForwardedChildren(t *testing.T) {
	src := NewGroup(GroupOptions{Placement: PlacementManual})
	pos := Position{X: -7, Y: 7}
	guest := NewDancer(DancerOptions{Name: "guest", MotionOptions: MotionOptions{Position: &pos}})
	src.AddChild(guest)

	g, ds := groupWith(t, PlacementEvenlySpaced, mustLine(t, LineOptions{Length: 10}), 2)
	if err := src.ForwardChildAt(guest, g, 0); err != nil {
		t.Fatalf("ForwardChildAt: %v", err)
	}
	g.SetShape(mustLine(t, LineOptions{Length: 20}))

	assertPos(t, "guest", guest.Position(), pos)
	assertPos(t, "first", ds[0].Position(), Position{})
	assertPos(t, "second", ds[1].Position(), Position{X: 20})
}

func TestPlacementMovesGroupsWithTheirFollowers(t *testing.T) {
	line := mustLine(t, LineOptions{Length: 10})
	g := NewGroup(GroupOptions{Placement: PlacementEvenlySpaced, MotionOptions: MotionOptions{Shape: line}})
	pair := NewGroup(GroupOptions{Placement: PlacementManual})
	off := Position{Y: 1}
	d := NewDancer(DancerOptions{MotionOptions: MotionOptions{Position: &off}})
	pair.AddChild(d)
	g.AddChild(NewDancer(DancerOptions{}))
	g.AddChild(pair)

	assertPos(t, "pair", pair.Position(), Position{X: 10})
	assertPos(t, "partner", d.Position(), Position{X: 10, Y: 1})
}

func TestPlacementStep(t *testing.T) {
	c := mustCircle(t, CircleOptions{Radius: 1, StopAngle: Radians(2 * math.Pi)})
	assertNear(t, "closed", placementStep(c, 4), math.Pi/2)
	line := mustLine(t, LineOptions{Length: 9})
	assertNear(t, "open", placementStep(line, 4), 3)
	assertNear(t, "single", placementStep(line, 1), 0)
}
