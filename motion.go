package dancevis

import (
	"math"

	"go.uber.org/zap"
)

// TimeIs is the tick entry point. It advances n along its shape by the time
// elapsed since n's previous tick, runs lifecycle transitions, then updates
// the children. Structural changes requested while the tick is in progress
// are applied, in request order, once the whole traversal has finished.
//
// now must not decrease between ticks; a decreasing value is treated as
// zero elapsed time.
func (n *Node) TimeIs(now Time) {
	ts := n.treeState()
	if !ts.ticking {
		ts.ticking = true
		defer ts.endTraversal()
	}
	n.tick(now)
}

// UpdateChildrenBasedOnMyShape propagates the tick at now to n's children. A
// child with its own shape computes its motion independently; a child
// without one has already followed n rigidly and is ticked for its lifecycle
// and its own descendants. A no-op for a Dancer.
func (n *Node) UpdateChildrenBasedOnMyShape(now Time) {
	ts := n.treeState()
	if !ts.ticking {
		ts.ticking = true
		defer ts.endTraversal()
	}
	n.updateChildren(now)
}

func (n *Node) updateChildren(now Time) {
	if n.Type == NodeTypeDancer {
		return
	}
	// Structural changes are deferred while ticking, so n.children is stable
	// for the whole loop.
	for _, c := range n.children {
		c.tick(now)
	}
}

func (n *Node) tick(now Time) {
	var elapsed Time
	if n.ticked {
		elapsed = now.Sub(n.lastTick)
		if elapsed.ms < 0 {
			if ts := n.treeState(); ts.debug {
				ts.logger.Warn("time went backwards",
					zap.String("node", n.Name),
					zap.Float64("last_ms", n.lastTick.ms),
					zap.Float64("now_ms", now.ms))
			}
			elapsed = Time{}
		}
	}
	n.lastTick = now
	n.ticked = true

	if n.state == StatePending {
		n.state = StateActive
		n.emit(EventBegin, now)
		if n.beginAction != nil {
			n.beginAction(n)
		}
	}

	if n.state == StateActive && n.shape != nil {
		n.advance(elapsed)
	}

	if n.state == StateActive && n.endConditionMet(now) {
		n.state = StateCompleted
		n.emit(EventEnd, now)
		if n.endAction != nil {
			n.endAction(n)
		}
	}

	n.updateChildren(now)
}

func (n *Node) endConditionMet(now Time) bool {
	if n.endCondition != nil {
		return n.endCondition(now, n)
	}
	return MotionComplete(now, n)
}

// advance moves n along its shape by elapsed.
func (n *Node) advance(elapsed Time) {
	n.progress = n.shape.Advance(n.progress, elapsed, n.speed)
	pos := n.PathPosition(n.progress)
	orient := n.orientation
	if n.FaceHeading && n.shape.Length() > 0 {
		orient = n.turn.step(n.orientation, n.heading(), elapsed)
	}
	n.SetMyPositionAndModifyChildren(pos, orient)
}

// heading returns the direction n travels at its current progress.
func (n *Node) heading() Orientation {
	h := n.shape.HeadingAt(n.progress)
	if n.speed.ppms < 0 {
		h = h.Rotate(math.Pi)
	}
	return h
}

// SetMyPositionAndModifyChildren assigns pos and orient to n. For a Group,
// every child without its own shape moves rigidly with n's frame: it is
// translated by n's displacement and rotated about n's new position by n's
// change in orientation, recursively. For a Dancer it only assigns.
func (n *Node) SetMyPositionAndModifyChildren(pos Position, orient Orientation) {
	n.positioned = true
	n.setFrame(pos, orient)
}

func (n *Node) setFrame(pos Position, orient Orientation) {
	delta := orient.angle - n.orientation.angle
	m := rigidMotion(n.position, pos, delta)
	n.position = pos
	n.orientation = orient
	if n.Type == NodeTypeDancer || isIdentity(m) {
		return
	}
	for _, c := range n.children {
		if c.shape != nil {
			continue
		}
		c.SetMyPositionAndModifyChildren(transformPoint(m, c.position), c.orientation.Rotate(delta))
	}
}

// emit publishes a lifecycle event to the tree's event store, if any.
func (n *Node) emit(typ EventType, now Time) {
	ts := n.treeState()
	if ts.debug {
		ts.logger.Debug("lifecycle",
			zap.Stringer("event", typ),
			zap.Uint32("node", n.ID),
			zap.String("name", n.Name),
			zap.Float64("time_ms", now.ms))
	}
	if ts.store == nil {
		return
	}
	ts.store.EmitEvent(LifecycleEvent{
		Type:     typ,
		NodeID:   n.ID,
		Name:     n.Name,
		Time:     now,
		Position: n.position,
	})
}
