package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/dancevis"
)

// Game adapts a stage and its renderer to ebiten.Game. Each Update ticks the
// stage with its clock.
type Game struct {
	Stage    *dancevis.Stage
	Renderer *Renderer
	width    int
	height   int
	started  bool
}

// NewGame creates a Game drawing stage with a fresh Renderer.
func NewGame(stage *dancevis.Stage, cfg Config) *Game {
	return &Game{
		Stage:    stage,
		Renderer: NewRenderer(stage, cfg),
		width:    cfg.Width,
		height:   cfg.Height,
	}
}

// Update implements ebiten.Game. The stage clock is started on the first
// frame.
func (g *Game) Update() error {
	if !g.started {
		g.Stage.Start()
		g.started = true
	}
	now := g.Stage.Tick()
	g.Renderer.Update(now)
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.Renderer.Draw(screen)
}

// Layout implements ebiten.Game. A zero configured size follows the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.width <= 0 || g.height <= 0 {
		return outsideWidth, outsideHeight
	}
	return g.width, g.height
}

// Run opens a window and runs stage until the window is closed.
func Run(stage *dancevis.Stage, cfg Config) error {
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}
	return ebiten.RunGame(NewGame(stage, cfg))
}
