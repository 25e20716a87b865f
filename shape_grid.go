package dancevis

import "math"

// GridOptions configures a Grid lattice. Rows and Cols must be at least 1.
type GridOptions struct {
	Center  Position
	Rows    int
	Cols    int
	Spacing float64
	Angle   Orientation
}

func (o GridOptions) validate(op string) error {
	if !o.Center.isFinite() {
		return validationErrorf(op, "center must be finite")
	}
	if o.Rows < 1 || o.Cols < 1 {
		return validationErrorf(op, "rows and cols must be >= 1, got %dx%d", o.Rows, o.Cols)
	}
	if !isFinite(o.Spacing) || o.Spacing < 0 {
		return validationErrorf(op, "spacing must be a finite number >= 0, got %v", o.Spacing)
	}
	if !isFinite(o.Angle.angle) {
		return validationErrorf(op, "angle must be finite")
	}
	return nil
}

// NewGrid returns a Rows x Cols lattice of cells Spacing apart, centered on
// opts.Center and rotated by opts.Angle. Column index grows along the
// rotated x axis and row index along the rotated -y axis, so at angle 0
// CellPosition(1, 1) - CellPosition(0, 0) == (Spacing, -Spacing).
//
// Travel visits the cells in serpentine order: row 0 left to right, row 1
// right to left, and so on, interpolating linearly between neighbours.
func NewGrid(opts GridOptions) (*Shape, error) {
	if err := opts.validate("NewGrid"); err != nil {
		return nil, err
	}
	s := &Shape{typ: ShapeGrid}
	s.applyGridOptions(opts)
	return s, nil
}

func (s *Shape) applyGridOptions(opts GridOptions) {
	s.center = opts.Center
	s.rows = opts.Rows
	s.cols = opts.Cols
	s.spacing = opts.Spacing
	s.angle = opts.Angle
}

// SetOptions replaces every parameter of a Grid.
func (s *Shape) SetOptions(opts GridOptions) error {
	if s.typ != ShapeGrid {
		return validationErrorf("SetOptions", "shape is a %s, not a grid", s.typ)
	}
	if err := opts.validate("SetOptions"); err != nil {
		return err
	}
	s.applyGridOptions(opts)
	return nil
}

// NumRows returns the number of grid rows.
func (s *Shape) NumRows() int { return s.rows }

// NumCols returns the number of grid columns.
func (s *Shape) NumCols() int { return s.cols }

// GridSpacing returns the distance between neighbouring cells.
func (s *Shape) GridSpacing() float64 { return s.spacing }

// SetCenter moves a Grid.
func (s *Shape) SetCenter(center Position) error {
	if s.typ != ShapeGrid {
		return validationErrorf("SetCenter", "shape is a %s, not a grid", s.typ)
	}
	if !center.isFinite() {
		return validationErrorf("SetCenter", "center must be finite")
	}
	s.center = center
	return nil
}

// SetGridSpacing changes the distance between neighbouring cells.
func (s *Shape) SetGridSpacing(spacing float64) error {
	if s.typ != ShapeGrid {
		return validationErrorf("SetGridSpacing", "shape is a %s, not a grid", s.typ)
	}
	if !isFinite(spacing) || spacing < 0 {
		return validationErrorf("SetGridSpacing", "spacing must be a finite number >= 0, got %v", spacing)
	}
	s.spacing = spacing
	return nil
}

// CellPosition returns the position of the cell at (row, col).
func (s *Shape) CellPosition(row, col int) (Position, error) {
	if s.typ != ShapeGrid {
		return Position{}, validationErrorf("CellPosition", "shape is a %s, not a grid", s.typ)
	}
	if row < 0 || row >= s.rows {
		return Position{}, indexErrorf("CellPosition row", row, 0, s.rows)
	}
	if col < 0 || col >= s.cols {
		return Position{}, indexErrorf("CellPosition col", col, 0, s.cols)
	}
	return s.cellPosition(row, col), nil
}

func (s *Shape) gridFrame() affine {
	return localFrame(s.center, s.angle.angle)
}

// cellLocal returns the offset of (row, col) from the grid center before
// rotation.
func (s *Shape) cellLocal(row, col int) Position {
	return Position{
		X: (float64(col) - float64(s.cols-1)/2) * s.spacing,
		Y: -(float64(row) - float64(s.rows-1)/2) * s.spacing,
	}
}

func (s *Shape) cellPosition(row, col int) Position {
	return transformPoint(s.gridFrame(), s.cellLocal(row, col))
}

// serpentineCell maps a traversal index to its (row, col).
func (s *Shape) serpentineCell(i int) (row, col int) {
	row = i / s.cols
	col = i % s.cols
	if row%2 == 1 {
		col = s.cols - 1 - col
	}
	return row, col
}

// cellAt returns the position of the i-th cell in traversal order.
func (s *Shape) cellAt(i int) Position {
	row, col := s.serpentineCell(i)
	return s.cellPosition(row, col)
}

func (s *Shape) gridLength() float64 {
	return float64(s.rows*s.cols-1) * s.spacing
}

// gridSegment returns the index of the traversal segment containing
// progress and the fraction travelled along it.
func (s *Shape) gridSegment(progress float64) (int, float64) {
	n := s.rows * s.cols
	if n == 1 || s.spacing == 0 {
		return 0, 0
	}
	p := clampProgress(progress, s.gridLength())
	i := int(math.Floor(p / s.spacing))
	if i >= n-1 {
		return n - 2, 1
	}
	return i, (p - float64(i)*s.spacing) / s.spacing
}

func (s *Shape) gridPositionAt(progress float64) Position {
	if s.rows*s.cols == 1 || s.spacing == 0 {
		return s.cellAt(0)
	}
	i, frac := s.gridSegment(progress)
	return lerp(s.cellAt(i), s.cellAt(i+1), frac)
}

func (s *Shape) gridHeadingAt(progress float64) Orientation {
	if s.rows*s.cols == 1 || s.spacing == 0 {
		return s.angle
	}
	i, _ := s.gridSegment(progress)
	d := s.cellAt(i + 1).sub(s.cellAt(i))
	return Radians(math.Atan2(d.Y, d.X))
}

func (s *Shape) gridProgressOf(pos Position) float64 {
	n := s.rows * s.cols
	if n == 1 || s.spacing == 0 {
		return 0
	}
	best, bestDist := 0.0, math.Inf(1)
	for i := 0; i < n-1; i++ {
		a, b := s.cellAt(i), s.cellAt(i+1)
		ab := b.sub(a)
		t := clampProgress(pos.sub(a).dot(ab)/ab.dot(ab), 1)
		if d := lerp(a, b, t).Distance(pos); d < bestDist {
			best, bestDist = (float64(i)+t)*s.spacing, d
		}
	}
	return best
}

// gridIsOnShape maps pos back into lattice coordinates and checks the
// nearest cell, so the test costs O(1) regardless of grid size.
func (s *Shape) gridIsOnShape(pos Position) bool {
	if s.spacing == 0 {
		return s.center.Distance(pos) <= OnShapeTolerance
	}
	local := transformPoint(invertAffine(s.gridFrame()), pos)
	col := int(math.Round(local.X/s.spacing + float64(s.cols-1)/2))
	row := int(math.Round(-local.Y/s.spacing + float64(s.rows-1)/2))
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return false
	}
	return s.cellPosition(row, col).Distance(pos) <= OnShapeTolerance
}

func (s *Shape) gridBoundingBox() PositionBounds {
	return NewPositionBounds(s.cellPosition(0, 0), s.cellPosition(s.rows-1, s.cols-1)).
		Extend(s.cellPosition(0, s.cols-1)).
		Extend(s.cellPosition(s.rows-1, 0))
}
