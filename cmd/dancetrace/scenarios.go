package main

import (
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/phanxgames/dancevis"
)

// scenario builds a formation on stage.
type scenario struct {
	summary string
	build   func(stage *dancevis.Stage) error
}

var scenarios = map[string]scenario{
	"circle": {"eight dancers turning as a ring", buildCircle},
	"march":  {"a line of five marching across the floor", buildMarch},
	"grid":   {"a 3x4 block weaving through a grid", buildGrid},
	"relay":  {"a runner handed from a lane to a loop", buildRelay},
}

func scenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func dancerOptions(name string, i int) dancevis.DancerOptions {
	opts := dancevis.DancerOptions{Name: fmt.Sprintf("%s-%d", name, i)}
	if i%2 == 0 {
		opts.DancerType = dancevis.DancerLead
		opts.Glyph = dancevis.GlyphTriangle
		opts.Color = dancevis.Color{R: 0.2, G: 0.4, B: 0.9, A: 1}
	} else {
		opts.DancerType = dancevis.DancerFollow
		opts.Glyph = dancevis.GlyphCircle
		opts.Color = dancevis.Color{R: 0.9, G: 0.3, B: 0.3, A: 1}
	}
	return opts
}

func addDancers(g *dancevis.Node, name string, count int) error {
	for i := 0; i < count; i++ {
		if err := g.AddChild(dancevis.NewDancer(dancerOptions(name, i))); err != nil {
			return err
		}
	}
	return nil
}

func buildCircle(stage *dancevis.Stage) error {
	circle, err := dancevis.NewCircle(dancevis.CircleOptions{
		Radius:    120,
		StopAngle: dancevis.Radians(2 * math.Pi),
	})
	if err != nil {
		return err
	}
	ring := dancevis.NewGroup(dancevis.GroupOptions{
		Name: "ring",
		MotionOptions: dancevis.MotionOptions{
			Shape:       circle,
			Speed:       dancevis.PixelsPerMillisecond(0.05),
			FaceHeading: true,
		},
	})
	if err := addDancers(ring, "ring", 8); err != nil {
		return err
	}
	return stage.Root().AddChild(ring)
}

func buildMarch(stage *dancevis.Stage) error {
	line, err := dancevis.NewLine(dancevis.LineOptions{
		Start:  dancevis.Position{X: -200, Y: -100},
		Length: 160,
		Angle:  dancevis.Degrees(90),
	})
	if err != nil {
		return err
	}
	column := dancevis.NewGroup(dancevis.GroupOptions{
		Name:          "column",
		MotionOptions: dancevis.MotionOptions{Shape: line},
	})
	if err := addDancers(column, "column", 5); err != nil {
		return err
	}
	// Placement spreads the dancers along the line; then the whole column
	// walks east as one.
	column.SetPlacement(dancevis.PlacementManual)
	path, err := dancevis.NewLine(dancevis.LineOptions{Start: line.StartPosition(), Length: 400})
	if err != nil {
		return err
	}
	column.SetShape(path)
	return stage.Root().AddChild(column)
}

func buildGrid(stage *dancevis.Stage) error {
	grid, err := dancevis.NewGrid(dancevis.GridOptions{Rows: 3, Cols: 4, Spacing: 40})
	if err != nil {
		return err
	}
	start := grid.StartPosition()
	block := dancevis.NewGroup(dancevis.GroupOptions{
		Name:          "block",
		Placement:     dancevis.PlacementManual,
		MotionOptions: dancevis.MotionOptions{Position: &start},
	})
	for row := 0; row < grid.NumRows(); row++ {
		for col := 0; col < grid.NumCols(); col++ {
			cell, err := grid.CellPosition(row, col)
			if err != nil {
				return err
			}
			opts := dancevis.DancerOptions{
				Name:          fmt.Sprintf("block-%d%d", row, col),
				Size:          dancevis.SizeSmall,
				Glyph:         dancevis.GlyphSquare,
				MotionOptions: dancevis.MotionOptions{Position: &cell},
			}
			if err := block.AddChild(dancevis.NewDancer(opts)); err != nil {
				return err
			}
		}
	}
	block.SetShape(grid)
	return stage.Root().AddChild(block)
}

func buildRelay(stage *dancevis.Stage) error {
	lane := dancevis.NewGroup(dancevis.GroupOptions{Name: "lane", Placement: dancevis.PlacementManual})
	loop := dancevis.NewGroup(dancevis.GroupOptions{Name: "loop", Placement: dancevis.PlacementManual})

	straight, err := dancevis.NewLine(dancevis.LineOptions{Start: dancevis.Position{X: -150}, Length: 150})
	if err != nil {
		return err
	}
	runner := dancevis.NewDancer(dancevis.DancerOptions{
		Name:       "runner",
		DancerType: dancevis.DancerLead,
		Glyph:      dancevis.GlyphTriangle,
		MotionOptions: dancevis.MotionOptions{
			Shape:        straight,
			Speed:        dancevis.PixelsPerMillisecond(0.15),
			FaceHeading:  true,
			TurnDuration: dancevis.Milliseconds(200),
		},
	})
	runner.SetEndAction(func(n *dancevis.Node) {
		if n.Parent != lane {
			return
		}
		if err := lane.ForwardChild(n, loop); err != nil {
			stage.Logger().Warn("relay hand-off failed", zap.Error(err))
			return
		}
		arc, err := dancevis.NewCircle(dancevis.CircleOptions{
			Center:     dancevis.Position{X: n.Position().X, Y: n.Position().Y + 60},
			Radius:     60,
			StartAngle: dancevis.Degrees(-90),
			StopAngle:  dancevis.Degrees(270),
		})
		if err != nil {
			stage.Logger().Warn("relay loop", zap.Error(err))
			return
		}
		n.SetShape(arc)
	})
	if err := lane.AddChild(runner); err != nil {
		return err
	}
	if err := stage.Root().AddChild(lane); err != nil {
		return err
	}
	return stage.Root().AddChild(loop)
}
