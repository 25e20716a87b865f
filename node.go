package dancevis

import (
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// --- ID counter ---

// nodeIDCounter is a plain counter (no atomic; dancevis is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Options ---

// MotionOptions configures how a node travels. Absent fields take defaults:
// a zero Speed becomes DefaultSpeed, a nil Position leaves the node unplaced
// (it snaps to the start of its first shape) and a nil Orientation faces +X.
//
// A zero Speed here always means "unset", including one computed by
// NewSpeed from equal start and end positions. Use SetSpeed to give a node
// a zero rate so it holds its place on its shape.
type MotionOptions struct {
	Shape       *Shape
	Speed       Speed
	Position    *Position
	Orientation *Orientation

	// FaceHeading turns the node toward its direction of travel. Children
	// that follow the node rigidly turn with it.
	FaceHeading bool
	// TurnDuration eases heading changes over this long instead of snapping.
	TurnDuration Time
	// TurnEase shapes eased turns. Defaults to ease.Linear.
	TurnEase ease.TweenFunc
}

// GroupOptions configures a Group.
type GroupOptions struct {
	Name      string
	Placement PlacementControl
	MotionOptions
}

// DancerOptions configures a Dancer. The presentation fields are opaque to the
// engine and only passed through to renderers. A zero Color means ColorBlack.
type DancerOptions struct {
	Name       string
	DancerType DancerType
	Glyph      DancerGlyph
	Size       DancerSize
	Color      Color
	MotionOptions
}

// --- Node ---

// Node is a formation tree element: either a Group, which owns an ordered
// list of children and optionally a shape describing its motion, or a
// Dancer, a leaf agent. A single flat struct is used for both kinds to avoid
// interface dispatch on the tick path.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy. Parent is a non-owning back-reference; nil for a root.
	Parent   *Node
	children []*Node

	// Motion
	shape       *Shape
	speed       Speed
	progress    float64
	anchor      Position // added to shape coordinates so a path starts at the node
	position    Position
	orientation Orientation
	positioned  bool
	FaceHeading bool
	turn        turnTween

	// Placement
	placement PlacementControl
	pinned    bool // forwarded in; skipped by placement

	// Lifecycle
	state        MotionState
	lastTick     Time
	ticked       bool
	beginAction  func(*Node)
	endAction    func(*Node)
	endCondition func(Time, *Node) bool

	// Presentation (Dancer)
	DancerType DancerType
	Glyph      DancerGlyph
	Size       DancerSize
	Color      Color

	// Metadata
	UserData any

	// Shared per-tree state; only meaningful on a root.
	tree *treeState
	// Set while a tick holds a queued mutation naming this node.
	queuedIn *treeState
}

// NewGroup creates a group node.
func NewGroup(opts GroupOptions) *Node {
	n := &Node{
		ID:        nextNodeID(),
		Name:      opts.Name,
		Type:      NodeTypeGroup,
		placement: opts.Placement,
	}
	n.applyMotionOptions(opts.MotionOptions)
	return n
}

// NewDancer creates a dancer leaf.
func NewDancer(opts DancerOptions) *Node {
	n := &Node{
		ID:         nextNodeID(),
		Name:       opts.Name,
		Type:       NodeTypeDancer,
		DancerType: opts.DancerType,
		Glyph:      opts.Glyph,
		Size:       opts.Size,
		Color:      opts.Color,
	}
	if n.Color == (Color{}) {
		n.Color = ColorBlack
	}
	n.applyMotionOptions(opts.MotionOptions)
	return n
}

func (n *Node) applyMotionOptions(opts MotionOptions) {
	n.speed = opts.Speed
	if n.speed.IsZero() {
		n.speed = DefaultSpeed
	}
	n.FaceHeading = opts.FaceHeading
	n.turn.configure(opts.TurnDuration, opts.TurnEase)
	if opts.Orientation != nil {
		n.SetOrientation(*opts.Orientation)
	}
	if opts.Position != nil {
		n.SetPosition(*opts.Position)
	}
	if opts.Shape != nil {
		n.SetShape(opts.Shape)
	}
}

// SetOptions re-applies group options. Name and Placement are replaced; the
// motion fields follow the same rules as at construction, so nil pointers
// and a nil Shape leave the current values alone.
func (n *Node) SetOptions(opts GroupOptions) error {
	if n.Type != NodeTypeGroup {
		return validationErrorf("SetOptions", "node %q is a dancer", n.Name)
	}
	n.Name = opts.Name
	n.placement = opts.Placement
	n.applyMotionOptions(opts.MotionOptions)
	return nil
}

// IsGroup reports whether n is a Group.
func (n *Node) IsGroup() bool { return n.Type == NodeTypeGroup }

// IsDancer reports whether n is a Dancer.
func (n *Node) IsDancer() bool { return n.Type == NodeTypeDancer }

// Position returns the node's current position.
func (n *Node) Position() Position { return n.position }

// Orientation returns the node's current orientation.
func (n *Node) Orientation() Orientation { return n.orientation }

// Shape returns the node's motion path, or nil.
func (n *Node) Shape() *Shape { return n.shape }

// Speed returns the node's travel speed.
func (n *Node) Speed() Speed { return n.speed }

// Progress returns how far along its shape the node has travelled.
func (n *Node) Progress() float64 { return n.progress }

// State returns the lifecycle state of the current motion segment.
func (n *Node) State() MotionState { return n.state }

// Placement returns the group's initial placement policy.
func (n *Node) Placement() PlacementControl { return n.placement }

// SetPlacement changes the initial placement policy. It takes effect the
// next time placement runs.
func (n *Node) SetPlacement(p PlacementControl) { n.placement = p }

// SetSpeed changes the node's travel speed, including to zero or a negative
// rate (travel back toward the start).
func (n *Node) SetSpeed(s Speed) { n.speed = s }

// SetPosition moves the node to p. Children without their own shape move
// with it, and an assigned shape is carried along so motion continues from
// the new spot.
func (n *Node) SetPosition(p Position) {
	if n.shape != nil {
		n.anchor = n.anchor.add(p.sub(n.position))
	}
	n.SetMyPositionAndModifyChildren(p, n.orientation)
}

// SetOrientation turns the node to o. Children without their own shape
// rotate around the node.
func (n *Node) SetOrientation(o Orientation) {
	n.setFrame(n.position, o)
}

// SetShape assigns a new motion path and starts a new motion segment: the
// node returns to PENDING, its begin and end actions may fire again, and
// progress restarts at 0.
//
// A node that already has a position keeps it: the shape is carried so it
// starts exactly there. A node that was never positioned snaps to the
// shape's start. A nil shape stops motion and the node holds its position.
func (n *Node) SetShape(s *Shape) {
	n.shape = s
	n.progress = 0
	n.turn.reset()
	if s == nil {
		n.anchor = Position{}
		return
	}
	n.state = StatePending
	n.ticked = false

	start := s.StartPosition()
	if n.positioned {
		n.anchor = n.position.sub(start)
	} else {
		n.anchor = Position{}
		n.SetMyPositionAndModifyChildren(start, n.orientation)
	}
	if n.FaceHeading && s.Length() > 0 {
		n.setFrame(n.position, n.heading())
	}
	n.applyPlacement()
}

// PathPosition returns where the node would be at the given progress along
// its shape. Returns the current position when no shape is assigned.
func (n *Node) PathPosition(progress float64) Position {
	if n.shape == nil {
		return n.position
	}
	return n.shape.PositionAt(progress).add(n.anchor)
}

// PathOutline samples the node's shape, as the node travels it, for drawing.
func (n *Node) PathOutline(maxStep float64) []Position {
	if n.shape == nil {
		return nil
	}
	pts := n.shape.Outline(maxStep)
	for i := range pts {
		pts[i] = pts[i].add(n.anchor)
	}
	return pts
}

// --- Lifecycle callbacks ---

// SetBeginAction registers fn to run once when the motion segment starts.
// A nil fn clears it; a second call replaces the first.
func (n *Node) SetBeginAction(fn func(*Node)) { n.beginAction = fn }

// SetEndAction registers fn to run once when the end condition is first met.
func (n *Node) SetEndAction(fn func(*Node)) { n.endAction = fn }

// SetEndCondition registers the predicate that completes the motion segment.
// A nil predicate restores MotionComplete.
func (n *Node) SetEndCondition(fn func(Time, *Node) bool) { n.endCondition = fn }

// MotionComplete is the default end condition: the node's shape has been
// travelled to its end in the direction of travel. A node without a shape
// never completes by default.
func MotionComplete(_ Time, n *Node) bool {
	if n.shape == nil {
		return false
	}
	if n.speed.ppms < 0 {
		return n.progress <= 0
	}
	return n.progress >= n.shape.Length()
}

// --- Tree queries ---

// Children returns the child list. The returned slice MUST NOT be mutated by
// the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) (*Node, error) {
	if index < 0 || index >= len(n.children) {
		return nil, indexErrorf("ChildAt", index, 0, len(n.children))
	}
	return n.children[index], nil
}

// IndexOf returns the index of child among n's children, or -1.
func (n *Node) IndexOf(child *Node) int {
	return indexOf(n.children, child)
}

// Root returns the top of the tree containing n.
func (n *Node) Root() *Node {
	r := n
	for r.Parent != nil {
		r = r.Parent
	}
	return r
}

// Walk visits n and its descendants depth-first in child order. Returning
// false from fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Dancers returns every dancer at or below n, depth-first.
func (n *Node) Dancers() []*Node {
	var out []*Node
	n.Walk(func(c *Node) bool {
		if c.Type == NodeTypeDancer {
			out = append(out, c)
		}
		return true
	})
	return out
}

// --- Helpers ---

func indexOf(nodes []*Node, target *Node) int {
	for i, c := range nodes {
		if c == target {
			return i
		}
	}
	return -1
}

// removeChildByPtr removes child from n.children without clearing
// child.Parent. Uses copy+nil to avoid retaining a dangling pointer in the
// backing array.
func (n *Node) removeChildByPtr(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return true
		}
	}
	return false
}

// insertChildAt places child at index and links its parent pointer.
func (n *Node) insertChildAt(child *Node, index int) {
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
}

// treeState returns the state shared by n's tree, creating it on the root
// when missing.
func (n *Node) treeState() *treeState {
	r := n.Root()
	if r.tree == nil {
		r.tree = newTreeState(zap.NewNop())
	}
	return r.tree
}

func (n *Node) logger() *zap.Logger {
	return n.treeState().logger
}
