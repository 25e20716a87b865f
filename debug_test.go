package dancevis

import (
	"fmt"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func debugStage(t *testing.T) (*Stage, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.WarnLevel)
	s := newTestStage(t, StageConfig{Logger: zap.New(core), Debug: true})
	return s, logs
}

func TestDebugWarnsOnDeepTree(t *testing.T) {
	s, logs := debugStage(t)

	parent := s.Root()
	for i := 0; i < debugMaxTreeDepth; i++ {
		g := NewGroup(GroupOptions{Name: fmt.Sprintf("g%d", i), Placement: PlacementManual})
		if err := parent.AddChild(g); err != nil {
			t.Fatalf("AddChild: %v", err)
		}
		parent = g
	}
	warns := logs.FilterMessage("tree depth exceeds threshold").All()
	if len(warns) != 1 {
		t.Fatalf("depth warnings = %d, want 1", len(warns))
	}
	if got := warns[0].ContextMap()["depth"]; got != int64(debugMaxTreeDepth+1) {
		t.Errorf("depth = %v, want %d", got, debugMaxTreeDepth+1)
	}
}

func TestDebugWarnsOnWideGroup(t *testing.T) {
	s, logs := debugStage(t)
	g := NewGroup(GroupOptions{Name: "crowd", Placement: PlacementManual})
	s.Root().AddChild(g)

	for i := 0; i <= debugMaxChildCount; i++ {
		g.AddChild(NewDancer(DancerOptions{}))
	}
	warns := logs.FilterMessage("node has many children").All()
	if len(warns) != 1 {
		t.Fatalf("child count warnings = %d, want 1", len(warns))
	}
	if got := warns[0].ContextMap()["node"]; got != "crowd" {
		t.Errorf("node = %v, want crowd", got)
	}
}

func TestDebugOffIsSilent(t *testing.T) {
	s, logs := debugStage(t)
	s.SetDebugMode(false)
	g := NewGroup(GroupOptions{Placement: PlacementManual})
	s.Root().AddChild(g)
	for i := 0; i <= debugMaxChildCount; i++ {
		g.AddChild(NewDancer(DancerOptions{}))
	}
	s.TickAt(Milliseconds(10))
	s.TickAt(Milliseconds(5))
	if logs.Len() != 0 {
		t.Errorf("logged %d entries with debug off", logs.Len())
	}
}

func TestDebugWarnsWhenTimeGoesBackwards(t *testing.T) {
	s, logs := debugStage(t)
	d := NewDancer(DancerOptions{Name: "d", MotionOptions: MotionOptions{
		Shape: mustLine(t, LineOptions{Length: 100}),
		Speed: PixelsPerMillisecond(1),
	}})
	s.Root().AddChild(d)

	s.TickAt(Milliseconds(10))
	s.TickAt(Milliseconds(5))
	if logs.FilterMessage("time went backwards").FilterField(zap.String("node", "d")).Len() != 1 {
		t.Errorf("expected one backwards warning for d, got %v", logs.All())
	}
	assertNear(t, "progress", d.Progress(), 0)
}
