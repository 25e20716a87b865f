// Package ecs provides ECS adapters for dancevis lifecycle events.
//
// The primary adapter is [NewDonburiStore], which bridges dancevis lifecycle
// events (begin, end, forward) into a [Donburi] world as typed events.
// Subscribe to [LifecycleEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	stage.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
