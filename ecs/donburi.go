package ecs

import (
	"github.com/phanxgames/dancevis"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// LifecycleEventType is the Donburi event type for dancevis lifecycle events.
// Subscribe to this in your ECS systems to react when a motion segment
// begins or ends, or when a dancer is forwarded to another group.
var LifecycleEventType = events.NewEventType[dancevis.LifecycleEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Lifecycle events are published to LifecycleEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) dancevis.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event dancevis.LifecycleEvent) {
	LifecycleEventType.Publish(s.world, event)
}
