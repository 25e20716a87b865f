package dancevis

import (
	"time"

	"go.uber.org/zap"
)

// EventStore is the interface for optional lifecycle event forwarding. When
// set on a Stage, begin, end and forward transitions are published to it.
type EventStore interface {
	EmitEvent(event LifecycleEvent)
}

// LifecycleEvent carries one lifecycle transition of a node.
type LifecycleEvent struct {
	Type     EventType
	NodeID   uint32
	Name     string
	Time     Time
	Position Position
}

// StageConfig configures a Stage. Absent fields take defaults: a nil Clock
// becomes NewClock(), a nil Logger becomes zap.NewNop(), and a zero surface
// extent leaves that axis of the screen origin unbounded.
type StageConfig struct {
	Origin        ScreenOrigin
	SurfaceWidth  float64
	SurfaceHeight float64
	Clock         *Clock
	Logger        *zap.Logger
	Debug         bool
}

// Stage is the top-level object that owns the formation tree and the setup
// context every tick needs: the screen origin and the zero-time clock.
type Stage struct {
	root   *Node
	clock  *Clock
	origin ScreenOrigin
	logger *zap.Logger
	debug  bool

	ticks    uint64
	lastTick Time
}

// DancerState is the per-tick snapshot a renderer consumes for one dancer.
type DancerState struct {
	ID          uint32
	Name        string
	Type        DancerType
	Glyph       DancerGlyph
	Size        DancerSize
	Color       Color
	Position    Position
	Screen      Position
	Orientation Orientation
	State       MotionState
}

// PathState describes a visible motion path: the node travelling it and its
// outline in choreography coordinates.
type PathState struct {
	Owner  *Node
	Points []Position
}

// NewStage validates cfg and creates a stage with an empty root group.
func NewStage(cfg StageConfig) (*Stage, error) {
	if err := cfg.Origin.validate(cfg.SurfaceWidth, cfg.SurfaceHeight); err != nil {
		return nil, err
	}
	if cfg.Clock == nil {
		cfg.Clock = NewClock()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	root := NewGroup(GroupOptions{Name: "root", Placement: PlacementManual})
	root.positioned = true
	root.tree = newTreeState(cfg.Logger)
	s := &Stage{
		root:   root,
		clock:  cfg.Clock,
		origin: cfg.Origin,
		logger: cfg.Logger,
	}
	s.SetDebugMode(cfg.Debug)
	return s, nil
}

// Root returns the stage's root group.
func (s *Stage) Root() *Node {
	return s.root
}

// Clock returns the stage's clock.
func (s *Stage) Clock() *Clock {
	return s.clock
}

// Origin returns the screen origin established at construction.
func (s *Stage) Origin() ScreenOrigin {
	return s.origin
}

// Start sets the clock's zero reference to now. Call it once before the
// first Tick.
func (s *Stage) Start() {
	s.clock.ZeroTimeIsNow()
}

// Tick propagates the clock's current time through the tree and returns it.
func (s *Stage) Tick() Time {
	now := s.clock.Now()
	s.TickAt(now)
	return now
}

// TickAt propagates now through the tree. Callers supply a non-decreasing
// now once per frame.
func (s *Stage) TickAt(now Time) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	s.root.TimeIs(now)
	s.ticks++
	s.lastTick = now
	if s.debug {
		s.debugLog(tickStats{
			tick:     s.ticks,
			now:      now,
			duration: time.Since(t0),
		})
	}
}

// Ticks returns the number of ticks run so far.
func (s *Stage) Ticks() uint64 {
	return s.ticks
}

// Now returns the time of the most recent tick.
func (s *Stage) Now() Time {
	return s.lastTick
}

// ScreenCoords maps a choreography position onto the render surface.
func (s *Stage) ScreenCoords(p Position) Position {
	return p.ScreenCoords(s.origin)
}

// Dancers returns every dancer on stage, depth-first in child order.
func (s *Stage) Dancers() []*Node {
	return s.root.Dancers()
}

// Snapshot returns the current state of every dancer.
func (s *Stage) Snapshot() []DancerState {
	return s.AppendSnapshot(nil)
}

// AppendSnapshot appends the current state of every dancer to buf, so a
// render loop can reuse one buffer across frames.
func (s *Stage) AppendSnapshot(buf []DancerState) []DancerState {
	s.root.Walk(func(n *Node) bool {
		if n.Type == NodeTypeDancer {
			buf = append(buf, DancerState{
				ID:          n.ID,
				Name:        n.Name,
				Type:        n.DancerType,
				Glyph:       n.Glyph,
				Size:        n.Size,
				Color:       n.Color,
				Position:    n.position,
				Screen:      s.ScreenCoords(n.position),
				Orientation: n.orientation,
				State:       n.state,
			})
		}
		return true
	})
	return buf
}

// Paths returns the outline of every assigned shape, sampled every maxStep
// pixels.
func (s *Stage) Paths(maxStep float64) []PathState {
	var out []PathState
	s.root.Walk(func(n *Node) bool {
		if n.shape != nil {
			out = append(out, PathState{Owner: n, Points: n.PathOutline(maxStep)})
		}
		return true
	})
	return out
}

// SetEventStore sets the optional lifecycle event sink.
func (s *Stage) SetEventStore(store EventStore) {
	s.root.treeState().store = store
}

// Logger returns the stage's logger.
func (s *Stage) Logger() *zap.Logger {
	return s.logger
}

// SetLogger replaces the logger used by the stage and its tree.
func (s *Stage) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s.logger = logger
	s.root.treeState().logger = logger
}

// SetDebugMode enables or disables debug mode. When enabled, tick timings,
// lifecycle transitions, deferred mutation batches and tree-shape warnings
// are logged at debug level.
func (s *Stage) SetDebugMode(enabled bool) {
	s.debug = enabled
	s.root.treeState().debug = enabled
}
