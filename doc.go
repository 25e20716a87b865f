// Package dancevis is a choreography motion engine. It moves dancers and
// groups of dancers along geometric paths in real time and reports where
// every dancer is on each tick.
//
// Rendering lives in dancevis/render (an [Ebitengine] game), lifecycle
// events can be routed into an ECS through dancevis/ecs, and
// cmd/dancetrace prints headless motion traces.
//
// # Quick start
//
// Create a [Stage], build a formation under its root, then tick it once per
// frame:
//
//	stage, err := dancevis.NewStage(dancevis.StageConfig{
//		Origin: dancevis.ScreenOrigin{Left: 320, Top: 240},
//	})
//	ring, _ := dancevis.NewCircle(dancevis.CircleOptions{
//		Radius: 100, StopAngle: dancevis.Degrees(360),
//	})
//	group := dancevis.NewGroup(dancevis.GroupOptions{
//		MotionOptions: dancevis.MotionOptions{Shape: ring, FaceHeading: true},
//	})
//	stage.Root().AddChild(group)
//	for i := 0; i < 8; i++ {
//		group.AddChild(dancevis.NewDancer(dancevis.DancerOptions{}))
//	}
//
//	stage.Start()
//	for {
//		stage.Tick()
//		for _, d := range stage.Snapshot() {
//			// draw d at d.Screen
//		}
//	}
//
// # Formation tree
//
// Every element is a [Node]: a Group owns an ordered list of children, a
// Dancer is a leaf. A node with its own [Shape] travels that path on its
// own; a node without one follows its parent rigidly, translating and
// rotating with it.
//
// When a group receives a shape its children are laid out along it according
// to its [PlacementControl]. Children can be moved between groups with
// [Node.ForwardChild] without jumping, which is how relay hand-offs are
// built. Structural changes made from inside begin or end actions are
// applied once the current tick finishes.
//
// # Shapes
//
// Paths are lines, circular arcs, points, grids of cells and composites
// chaining other shapes. Progress along a shape is arc length in
// choreography pixels, clamped to the shape's length.
//
// # Time
//
// [Time] is milliseconds since the [Clock]'s zero reference and [Speed] is
// pixels per millisecond. Heading changes can be eased with [gween].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package dancevis
