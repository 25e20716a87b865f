package dancevis

import "go.uber.org/zap"

// treeState is shared by every node of one formation tree and lives on its
// root.
type treeState struct {
	logger *zap.Logger
	debug  bool
	store  EventStore

	// Traversal
	ticking bool
	pending []mutation

	// Structure as it will be once pending is applied. Only nodes touched by
	// a pending mutation have entries; everything else reads the live tree.
	parents  map[*Node]*Node
	children map[*Node][]*Node
	touched  []*Node
}

func newTreeState(logger *zap.Logger) *treeState {
	return &treeState{logger: logger}
}

type mutationKind uint8

const (
	mutationInsert mutationKind = iota
	mutationRemove
	mutationForward
)

func (k mutationKind) String() string {
	switch k {
	case mutationInsert:
		return "insert"
	case mutationRemove:
		return "remove"
	default:
		return "forward"
	}
}

// mutation is a structural change requested during a tick. Targets are held
// by pointer and indices are resolved against the queued structure at
// request time, so replaying the batch in order gives the same tree as
// running the calls outside a tick.
type mutation struct {
	kind   mutationKind
	parent *Node
	child  *Node
	to     *Node
	index  int
}

// endTraversal closes the current tick and applies the queued mutations as
// one batch, in request order.
func (ts *treeState) endTraversal() {
	ts.ticking = false
	for _, n := range ts.touched {
		n.queuedIn = nil
	}
	clear(ts.touched)
	ts.touched = ts.touched[:0]
	clear(ts.parents)
	clear(ts.children)
	if len(ts.pending) == 0 {
		return
	}
	batch := ts.pending
	ts.pending = nil
	applied := 0
	for _, m := range batch {
		if err := m.apply(); err != nil {
			ts.logger.Warn("dropped deferred mutation",
				zap.Stringer("kind", m.kind),
				zap.String("parent", m.parent.Name),
				zap.String("child", m.child.Name),
				zap.Error(err))
			continue
		}
		applied++
	}
	if ts.debug {
		ts.logger.Debug("applied deferred mutations",
			zap.Int("requested", len(batch)),
			zap.Int("applied", applied))
	}
	// Reuse the backing array unless a mutation queued more work.
	if ts.pending == nil {
		ts.pending = batch[:0]
	}
}

// apply re-validates m against the live tree and commits it.
func (m mutation) apply() error {
	switch m.kind {
	case mutationInsert:
		if err := m.parent.validateInsert(nil, m.child, m.index); err != nil {
			return err
		}
		m.parent.insertChildNow(m.child, m.index)
	case mutationRemove:
		if m.child.Parent != m.parent {
			return notFoundErrorf("RemoveChild", "%q is no longer a child of %q", m.child.Name, m.parent.Name)
		}
		m.parent.removeChildNow(m.child)
	case mutationForward:
		if err := m.parent.validateForward(nil, m.child, m.to, m.index); err != nil {
			return err
		}
		m.parent.forwardChildNow(m.child, m.to, m.index)
	}
	return nil
}

// deferring returns the tick-in-progress tree state that must receive a
// mutation touching nodes, or nil when the mutation can be applied now. A
// node already named by a queued mutation stays with that tick even if it
// is not in the ticking tree yet.
func deferring(nodes ...*Node) *treeState {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if ts := n.queuedIn; ts != nil && ts.ticking {
			return ts
		}
		if ts := n.Root().tree; ts != nil && ts.ticking {
			return ts
		}
	}
	return nil
}

// --- Queued structure ---
//
// A nil *treeState reads the live tree.

func (ts *treeState) parentOf(n *Node) *Node {
	if ts != nil {
		if p, ok := ts.parents[n]; ok {
			return p
		}
	}
	return n.Parent
}

func (ts *treeState) childrenOf(n *Node) []*Node {
	if ts != nil {
		if c, ok := ts.children[n]; ok {
			return c
		}
	}
	return n.children
}

// isAncestor reports whether candidate is node or one of its ancestors.
func (ts *treeState) isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = ts.parentOf(p) {
		if p == candidate {
			return true
		}
	}
	return false
}

// queue records m and folds it into the queued structure so later requests
// in the same tick are validated against it.
func (ts *treeState) queue(m mutation) {
	if ts.parents == nil {
		ts.parents = make(map[*Node]*Node)
		ts.children = make(map[*Node][]*Node)
	}
	ts.pending = append(ts.pending, m)
	switch m.kind {
	case mutationInsert:
		ts.attach(m.parent, m.child, m.index)
	case mutationRemove:
		ts.detach(m.parent, m.child)
	case mutationForward:
		ts.detach(m.parent, m.child)
		ts.attach(m.to, m.child, m.index)
	}
}

func (ts *treeState) attach(parent, child *Node, index int) {
	c := append(ts.ownChildren(parent), nil)
	copy(c[index+1:], c[index:])
	c[index] = child
	ts.children[parent] = c
	ts.mark(child)
	ts.parents[child] = parent
}

func (ts *treeState) detach(parent, child *Node) {
	c := ts.ownChildren(parent)
	if i := indexOf(c, child); i >= 0 {
		c = append(c[:i], c[i+1:]...)
	}
	ts.children[parent] = c
	ts.mark(child)
	ts.parents[child] = nil
}

// ownChildren returns a queued child list of n that may be edited in place.
func (ts *treeState) ownChildren(n *Node) []*Node {
	if c, ok := ts.children[n]; ok {
		return c
	}
	ts.mark(n)
	return append([]*Node(nil), n.children...)
}

func (ts *treeState) mark(n *Node) {
	if n.queuedIn != ts {
		n.queuedIn = ts
		ts.touched = append(ts.touched, n)
	}
}

// --- Structural mutation ---

// AddChild appends child to n's children. See InsertChild.
func (n *Node) AddChild(child *Node) error {
	return n.InsertChild(child, len(deferring(n, child).childrenOf(n)))
}

// InsertChild inserts child at index among n's children; index may equal
// NumChildren to append. child must be detached (use ForwardChild to move a
// node between groups). While n's group has not started yet, its initial
// placement policy is re-applied.
//
// During a tick the insertion is validated now, against the tree as earlier
// requests of the same tick leave it, and applied after the tick.
func (n *Node) InsertChild(child *Node, index int) error {
	ts := deferring(n, child)
	if err := n.validateInsert(ts, child, index); err != nil {
		return err
	}
	if ts != nil {
		ts.queue(mutation{kind: mutationInsert, parent: n, child: child, index: index})
		return nil
	}
	n.insertChildNow(child, index)
	return nil
}

func (n *Node) validateInsert(ts *treeState, child *Node, index int) error {
	if child == nil {
		return validationErrorf("InsertChild", "cannot insert nil child")
	}
	if n.Type == NodeTypeDancer {
		return validationErrorf("InsertChild", "dancer %q cannot have children", n.Name)
	}
	if p := ts.parentOf(child); p != nil {
		return validationErrorf("InsertChild", "%q already belongs to %q", child.Name, p.Name)
	}
	if ts.isAncestor(child, n) {
		return validationErrorf("InsertChild", "inserting %q would create a cycle", child.Name)
	}
	if count := len(ts.childrenOf(n)); index < 0 || index > count {
		return indexErrorf("InsertChild", index, 0, count+1)
	}
	return nil
}

func (n *Node) insertChildNow(child *Node, index int) {
	n.insertChildAt(child, index)
	if n.state == StatePending && n.shape != nil {
		n.applyPlacement()
	}
	if ts := n.treeState(); ts.debug {
		debugCheckTreeDepth(ts.logger, child)
		debugCheckChildCount(ts.logger, n)
	}
}

// RemoveChild detaches and returns the child at index. During a tick the
// child is resolved now and detached after the tick.
func (n *Node) RemoveChild(index int) (*Node, error) {
	ts := deferring(n)
	kids := ts.childrenOf(n)
	if index < 0 || index >= len(kids) {
		return nil, indexErrorf("RemoveChild", index, 0, len(kids))
	}
	child := kids[index]
	if ts != nil {
		ts.queue(mutation{kind: mutationRemove, parent: n, child: child})
		return child, nil
	}
	n.removeChildNow(child)
	return child, nil
}

// RemoveChildNode detaches child from n.
func (n *Node) RemoveChildNode(child *Node) error {
	if child == nil {
		return notFoundErrorf("RemoveChildNode", "node is not a child of %q", n.Name)
	}
	ts := deferring(n, child)
	if ts.parentOf(child) != n {
		return notFoundErrorf("RemoveChildNode", "%q is not a child of %q", child.Name, n.Name)
	}
	_, err := n.RemoveChild(indexOf(ts.childrenOf(n), child))
	return err
}

// removeChildNow detaches child. A detached child is placed like any other
// when it joins a group again.
func (n *Node) removeChildNow(child *Node) {
	n.removeChildByPtr(child)
	child.Parent = nil
	child.pinned = false
}

// ForwardChild moves child from n to the end of to's children. See
// ForwardChildAt.
func (n *Node) ForwardChild(child, to *Node) error {
	if to == nil {
		return validationErrorf("ForwardChild", "destination is nil")
	}
	return n.forwardChild(child, to, -1)
}

// ForwardChildAt moves child from n into to at index. The child keeps its
// identity, position, orientation, shape and progress, and placement is not
// re-run for it, so the move never makes it jump. If to later assigns it a
// new shape, that path starts at the child's current position.
//
// A failed call leaves child in n. During a tick the move is validated now
// and applied after the tick.
func (n *Node) ForwardChildAt(child, to *Node, index int) error {
	if to == nil {
		return validationErrorf("ForwardChild", "destination is nil")
	}
	return n.forwardChild(child, to, index)
}

func (n *Node) forwardChild(child, to *Node, index int) error {
	ts := deferring(n, child, to)
	if index < 0 {
		index = len(ts.childrenOf(to))
	}
	if err := n.validateForward(ts, child, to, index); err != nil {
		return err
	}
	if ts != nil {
		ts.queue(mutation{kind: mutationForward, parent: n, child: child, to: to, index: index})
		return nil
	}
	n.forwardChildNow(child, to, index)
	return nil
}

func (n *Node) validateForward(ts *treeState, child, to *Node, index int) error {
	if child == nil {
		return validationErrorf("ForwardChild", "cannot forward nil child")
	}
	if ts.parentOf(child) != n {
		return notFoundErrorf("ForwardChild", "%q is not a child of %q", child.Name, n.Name)
	}
	if to.Type == NodeTypeDancer {
		return validationErrorf("ForwardChild", "dancer %q cannot have children", to.Name)
	}
	if to == n {
		return validationErrorf("ForwardChild", "%q already belongs to %q", child.Name, n.Name)
	}
	if ts.isAncestor(child, to) {
		return validationErrorf("ForwardChild", "forwarding %q into %q would create a cycle", child.Name, to.Name)
	}
	if count := len(ts.childrenOf(to)); index < 0 || index > count {
		return indexErrorf("ForwardChild", index, 0, count+1)
	}
	return nil
}

func (n *Node) forwardChildNow(child, to *Node, index int) {
	n.removeChildByPtr(child)
	to.insertChildAt(child, index)
	child.pinned = true
	child.emit(EventForward, child.lastTick)
	if ts := to.treeState(); ts.debug {
		debugCheckTreeDepth(ts.logger, child)
		debugCheckChildCount(ts.logger, to)
	}
}
