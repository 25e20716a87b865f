// Package render draws a dancevis stage with Ebitengine.
//
// A [Renderer] reads stage snapshots every frame: it strokes the outline of
// every assigned shape and fills one glyph per dancer at its screen
// position, turned to its orientation. [Run] opens a window and drives the
// stage from the game loop:
//
//	stage, _ := dancevis.NewStage(dancevis.StageConfig{
//		Origin: dancevis.ScreenOrigin{Left: 320, Top: 240},
//	})
//	// ... build the formation ...
//	render.Run(stage, render.Config{Title: "Dance", Width: 640, Height: 480})
package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/dancevis"
)

// Config controls the window and what is drawn.
type Config struct {
	Width, Height int
	Title         string
	// TickRate is the number of stage ticks per second. Zero keeps
	// Ebitengine's default of 60.
	TickRate int
	// ShowShapes strokes the outline of every assigned shape.
	ShowShapes bool
	// Background fills the screen before drawing. The zero value is opaque
	// white.
	Background dancevis.Color
	// Forward receives every lifecycle event after the renderer has seen it,
	// so an ECS store can be kept alongside the renderer.
	Forward dancevis.EventStore
}

const (
	outlineStep   = 4.0
	outlineWidth  = 1.5
	pulseScale    = 1.6
	pulseDuration = 400 // ms
)

var outlineColor = dancevis.Color{R: 0.6, G: 0.6, B: 0.65, A: 1}

// Renderer draws a stage. It registers itself as the stage's event store so
// dancers pulse when their motion begins or ends.
type Renderer struct {
	stage  *dancevis.Stage
	cfg    Config
	pulses map[uint32]*gween.Tween
	scale  map[uint32]float64

	states []dancevis.DancerState
	verts  []ebiten.Vertex
	inds   []uint16
	last   dancevis.Time
}

// NewRenderer creates a renderer for stage and installs it as the stage's
// event store.
func NewRenderer(stage *dancevis.Stage, cfg Config) *Renderer {
	if cfg.Background == (dancevis.Color{}) {
		cfg.Background = dancevis.ColorWhite
	}
	r := &Renderer{
		stage:  stage,
		cfg:    cfg,
		pulses: make(map[uint32]*gween.Tween),
		scale:  make(map[uint32]float64),
	}
	stage.SetEventStore(r)
	return r
}

// EmitEvent starts a highlight pulse on the dancer named by event.
func (r *Renderer) EmitEvent(event dancevis.LifecycleEvent) {
	if event.Type == dancevis.EventBegin || event.Type == dancevis.EventEnd {
		r.pulses[event.NodeID] = gween.New(pulseScale, 1, pulseDuration, ease.OutQuad)
		r.scale[event.NodeID] = pulseScale
	}
	if r.cfg.Forward != nil {
		r.cfg.Forward.EmitEvent(event)
	}
}

// Update advances running pulses to now.
func (r *Renderer) Update(now dancevis.Time) {
	dt := now.Sub(r.last).InMilliseconds()
	r.last = now
	if dt < 0 {
		dt = 0
	}
	for id, tw := range r.pulses {
		v, done := tw.Update(float32(dt))
		if done {
			delete(r.pulses, id)
			delete(r.scale, id)
			continue
		}
		r.scale[id] = float64(v)
	}
}

// Draw renders the stage onto screen.
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(r.cfg.Background.RGBA())
	if r.cfg.ShowShapes {
		r.drawPaths(screen)
	}
	r.states = r.stage.AppendSnapshot(r.states[:0])
	for i := range r.states {
		r.drawDancer(screen, &r.states[i])
	}
}

func (r *Renderer) drawPaths(screen *ebiten.Image) {
	clr := outlineColor.RGBA()
	for _, p := range r.stage.Paths(outlineStep) {
		for i := 1; i < len(p.Points); i++ {
			a := r.stage.ScreenCoords(p.Points[i-1])
			b := r.stage.ScreenCoords(p.Points[i])
			vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), outlineWidth, clr, true)
		}
	}
}

func (r *Renderer) drawDancer(screen *ebiten.Image, s *dancevis.DancerState) {
	radius := glyphRadius(s.Size)
	if k, ok := r.scale[s.ID]; ok {
		radius *= k
	}
	if s.Glyph == dancevis.GlyphCircle {
		vector.DrawFilledCircle(screen, float32(s.Screen.X), float32(s.Screen.Y), float32(radius), s.Color.RGBA(), true)
		return
	}
	pts := glyphPoints(s.Glyph, s.Screen, s.Orientation, radius)
	r.verts, r.inds = appendPolygonFan(r.verts[:0], r.inds[:0], pts, s.Color)
	screen.DrawTriangles(r.verts, r.inds, ensureWhitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
