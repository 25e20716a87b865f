package dancevis

import (
	"errors"
	"math"
	"testing"
)

func mustGrid(t *testing.T, opts GridOptions) *Shape {
	t.Helper()
	s, err := NewGrid(opts)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return s
}

func TestGridCellOffsetConvention(t *testing.T) {
	g := mustGrid(t, GridOptions{Rows: 2, Cols: 2, Spacing: 5})
	a, err := g.CellPosition(0, 0)
	if err != nil {
		t.Fatalf("CellPosition(0,0): %v", err)
	}
	b, err := g.CellPosition(1, 1)
	if err != nil {
		t.Fatalf("CellPosition(1,1): %v", err)
	}
	assertPos(t, "offset", b.sub(a), Position{X: 5, Y: -5})
	assertPos(t, "centered", lerp(a, b, 0.5), Position{})
}

func TestGridCellPositionOutOfRange(t *testing.T) {
	g := mustGrid(t, GridOptions{Rows: 2, Cols: 3, Spacing: 1})
	for _, rc := range [][2]int{{-1, 0}, {2, 0}, {0, -1}, {0, 3}} {
		if _, err := g.CellPosition(rc[0], rc[1]); !errors.Is(err, ErrIndex) {
			t.Errorf("CellPosition(%d, %d) err = %v, want ErrIndex", rc[0], rc[1], err)
		}
	}
}

func TestGridRotated(t *testing.T) {
	g := mustGrid(t, GridOptions{Center: Position{X: 10, Y: 10}, Rows: 1, Cols: 3, Spacing: 2, Angle: Degrees(90)})
	first, _ := g.CellPosition(0, 0)
	last, _ := g.CellPosition(0, 2)
	assertPos(t, "first", first, Position{X: 10, Y: 8})
	assertPos(t, "last", last, Position{X: 10, Y: 12})
}

func TestGridSerpentineTraversal(t *testing.T) {
	g := mustGrid(t, GridOptions{Rows: 2, Cols: 3, Spacing: 1})
	assertNear(t, "length", g.Length(), 5)

	// Row 0 runs left to right, row 1 comes back right to left.
	c02, _ := g.CellPosition(0, 2)
	c12, _ := g.CellPosition(1, 2)
	c10, _ := g.CellPosition(1, 0)
	assertPos(t, "end of row 0", g.PositionAt(2), c02)
	assertPos(t, "start of row 1", g.PositionAt(3), c12)
	assertPos(t, "end", g.EndPosition(), c10)
	assertPos(t, "between", g.PositionAt(2.5), lerp(c02, c12, 0.5))

	assertNear(t, "heading row 0", g.HeadingAt(0.5).InRadians(), 0)
	assertNear(t, "heading down", g.HeadingAt(2.5).InRadians(), -math.Pi/2)
	assertNear(t, "heading row 1", math.Abs(g.HeadingAt(4.5).InRadians()), math.Pi)
}

func TestGridIsOnShapeOnlyAtCells(t *testing.T) {
	g := mustGrid(t, GridOptions{Rows: 3, Cols: 3, Spacing: 4, Angle: Degrees(30)})
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			c, _ := g.CellPosition(row, col)
			if !g.IsOnShape(c) {
				t.Errorf("cell (%d,%d) at %v should be on shape", row, col, c)
			}
		}
	}
	c00, _ := g.CellPosition(0, 0)
	c01, _ := g.CellPosition(0, 1)
	if g.IsOnShape(lerp(c00, c01, 0.5)) {
		t.Error("midpoint between cells should not be on shape")
	}
	if g.IsOnShape(Position{X: 100, Y: 100}) {
		t.Error("far point should not be on shape")
	}
}

func TestGridProgressOf(t *testing.T) {
	g := mustGrid(t, GridOptions{Rows: 2, Cols: 2, Spacing: 10})
	for _, p := range []float64{0, 4, 10, 17, 30} {
		assertNear(t, "round trip", g.ProgressOf(g.PositionAt(p)), p)
	}
}

func TestGridSetOptions(t *testing.T) {
	g := mustGrid(t, GridOptions{Rows: 1, Cols: 1})
	if err := g.SetOptions(GridOptions{Rows: 0, Cols: 2}); !errors.Is(err, ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
	if err := g.SetOptions(GridOptions{Rows: 2, Cols: 4, Spacing: 3}); err != nil {
		t.Fatalf("SetOptions: %v", err)
	}
	if g.NumRows() != 2 || g.NumCols() != 4 || g.GridSpacing() != 3 {
		t.Errorf("grid = %dx%d spacing %v", g.NumRows(), g.NumCols(), g.GridSpacing())
	}
	if err := g.SetCenter(Position{X: 1}); err != nil {
		t.Fatalf("SetCenter: %v", err)
	}
	if err := g.SetGridSpacing(-1); !errors.Is(err, ErrValidation) {
		t.Errorf("SetGridSpacing(-1) err = %v", err)
	}
	b := g.BoundingBox()
	assertNear(t, "width", b.Width(), 9)
	assertNear(t, "height", b.Height(), 3)
	assertPos(t, "center", b.Center(), Position{X: 1})
}

func TestGridSingleCell(t *testing.T) {
	g := mustGrid(t, GridOptions{Center: Position{X: 2, Y: 3}, Rows: 1, Cols: 1, Spacing: 5})
	assertNear(t, "length", g.Length(), 0)
	assertPos(t, "position", g.PositionAt(10), Position{X: 2, Y: 3})
}
