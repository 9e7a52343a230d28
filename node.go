package aspen

import "fmt"

// Node is the structural element of the scene graph. A tree starts at a
// root Node created with NewRoot; further nodes are created attached to
// a parent with AttachChild. Each node keeps a local transform
// (position, angle, scale, depth, origin) and caches the world-space
// composition of that transform through every ancestor; the cached
// values are valid only while the node is not dirty.
//
// The root additionally owns the quadtree spatial index and the global
// pixels-per-world-unit scaling; non-root nodes delegate index
// operations to their root.
//
// Node is not safe for concurrent use. The whole graph is expected to
// be mutated and queried from a single render/update loop.
type Node struct {
	name string

	// Local transform state.
	position       Vec2
	angle          float64 // degrees
	scale          float64
	depth          int
	origin         Origin
	visible        bool
	rotationCenter *Vec2

	// Content size, in asset pixels. content takes precedence; the
	// dummy size is the fallback when content reports no size.
	content      Content
	dummySize    Vec2
	hasDummySize bool

	// Cached world-space state, valid only when dirty is false.
	relPosition Vec2
	relAngle    float64
	relScale    float64
	relDepth    int

	dirty bool

	// Tree relationships. children are owned: disposing a node
	// disposes its subtree. parent is a plain back-reference used for
	// root lookup and consistency checks; cascades walk parent->child
	// edges only.
	parent   *Node
	children []*Node

	// Root-only state.
	isRoot        bool
	quadtree      *Quadtree
	pixelsPerUnit int
	maxIndexDepth int
}

// NewRoot creates a fresh, dirty tree root with default state: visible,
// scale 1, origin TopLeft, pixels-per-unit 1.
func NewRoot(name string) *Node {
	return &Node{
		name:          name,
		visible:       true,
		scale:         1,
		relScale:      1,
		dirty:         true,
		isRoot:        true,
		pixelsPerUnit: 1,
		maxIndexDepth: DefaultMaxIndexDepth,
	}
}

// AttachChild creates a new node attached below n with the same default
// state as a fresh root, minus the root-only fields.
func (n *Node) AttachChild(name string) *Node {
	child := &Node{
		name:     name,
		visible:  true,
		scale:    1,
		relScale: 1,
		parent:   n,
	}
	n.children = append(n.children, child)
	child.MarkDirty()
	return child
}

// Name returns the node's name.
func (n *Node) Name() string { return n.name }

// IsRoot reports whether this node is a tree root.
func (n *Node) IsRoot() bool { return n.isRoot }

// Parent returns the node's parent, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the child list. The returned slice MUST NOT be
// mutated by the caller.
func (n *Node) Children() []*Node { return n.children }

// Root returns the root of the tree this node belongs to.
func (n *Node) Root() *Node {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Dirty reports whether the node's cached world-space transform may be
// stale.
func (n *Node) Dirty() bool { return n.dirty }

// MarkDirty marks this node's whole subtree dirty and forces the tree
// root dirty so that the next spatial query triggers a rebuild.
// Flags are only ever cleared inside Rebuild; clearing never cascades.
func (n *Node) MarkDirty() {
	n.markSubtree()
	n.Root().dirty = true
}

func (n *Node) markSubtree() {
	n.dirty = true
	for _, c := range n.children {
		c.markSubtree()
	}
}

// --- Local transform accessors ---

// Position returns the node's local position.
func (n *Node) Position() Vec2 { return n.position }

// SetPosition sets the node's local position and marks it dirty.
func (n *Node) SetPosition(x, y float64) {
	n.position = Vec2{x, y}
	n.MarkDirty()
}

// Angle returns the node's local rotation in degrees.
func (n *Node) Angle() float64 { return n.angle }

// SetAngle sets the node's local rotation in degrees and marks it dirty.
func (n *Node) SetAngle(degrees float64) {
	n.angle = degrees
	n.MarkDirty()
}

// Scale returns the node's local scale factor.
func (n *Node) Scale() float64 { return n.scale }

// SetScale sets the node's local scale factor and marks it dirty.
func (n *Node) SetScale(s float64) {
	n.scale = s
	n.MarkDirty()
}

// Depth returns the node's local paint-order depth.
func (n *Node) Depth() int { return n.depth }

// SetDepth sets the node's local paint-order depth and marks it dirty.
func (n *Node) SetDepth(d int) {
	n.depth = d
	n.MarkDirty()
}

// Origin returns the node's anchor origin.
func (n *Node) Origin() Origin { return n.origin }

// SetOrigin sets the anchor origin and marks the node dirty. Values
// outside the Origin enum return ErrInvalidArgument.
func (n *Node) SetOrigin(o Origin) error {
	switch o {
	case OriginTopLeft, OriginCenter, OriginBottomRight:
		n.origin = o
		n.MarkDirty()
		return nil
	}
	return fmt.Errorf("%w: unrecognized origin %d", ErrInvalidArgument, o)
}

// Visible reports whether the node is visible. Invisible nodes and
// their subtrees are skipped during rebuilds and excluded from the
// spatial index.
func (n *Node) Visible() bool { return n.visible }

// SetVisible sets the node's visibility and marks it dirty.
func (n *Node) SetVisible(v bool) {
	n.visible = v
	n.MarkDirty()
}

// RotationCenter returns the node's rotation-center override, or nil
// when rotation happens around the node's position.
func (n *Node) RotationCenter() *Vec2 { return n.rotationCenter }

// SetRotationCenter overrides the point, in asset pixels, the rendering
// collaborator rotates the node's content around. nil restores the
// default. Marks the node dirty.
func (n *Node) SetRotationCenter(c *Vec2) {
	if c != nil {
		v := *c
		n.rotationCenter = &v
	} else {
		n.rotationCenter = nil
	}
	n.MarkDirty()
}

// Content returns the node's content size provider, or nil.
func (n *Node) Content() Content { return n.content }

// SetContent sets the node's content size provider and marks it dirty.
func (n *Node) SetContent(c Content) {
	n.content = c
	n.MarkDirty()
}

// SetDummySize sets the explicit fallback size, in asset pixels, used
// when no content size is available. Negative dimensions return
// ErrInvalidArgument.
func (n *Node) SetDummySize(w, h float64) error {
	if w < 0 || h < 0 {
		return fmt.Errorf("%w: negative dummy size (%v, %v)",
			ErrInvalidArgument, w, h)
	}
	n.dummySize = Vec2{w, h}
	n.hasDummySize = true
	n.MarkDirty()
	return nil
}

// baseSize returns the node's content size in asset pixels: the content
// provider's size when available, else the dummy size, else zero.
func (n *Node) baseSize() Vec2 {
	if n.content != nil {
		if s, ok := n.content.Size(); ok {
			return s
		}
	}
	if n.hasDummySize {
		return n.dummySize
	}
	return Vec2{}
}

// Size returns the node's world-space size: the base size scaled by the
// cached relative scale and divided by the root's pixels-per-unit.
// Valid only after a rebuild, like the other relative properties.
func (n *Node) Size() Vec2 {
	return n.baseSize().Mul(n.relScale / float64(n.Root().pixelsPerUnit))
}

// --- Cached world-space accessors (read-only, valid after Rebuild) ---

// RelativePosition returns the cached world-space position.
func (n *Node) RelativePosition() Vec2 { return n.relPosition }

// RelativeAngle returns the cached world-space rotation in degrees.
func (n *Node) RelativeAngle() float64 { return n.relAngle }

// RelativeScale returns the cached world-space scale.
func (n *Node) RelativeScale() float64 { return n.relScale }

// RelativeDepth returns the cached world-space paint-order depth.
func (n *Node) RelativeDepth() int { return n.relDepth }

// --- Root-only state ---

// PixelsPerUnit returns the root's asset-pixel-to-world-unit ratio.
func (n *Node) PixelsPerUnit() int { return n.Root().pixelsPerUnit }

// SetPixelsPerUnit sets the asset-pixel-to-world-unit ratio. Root-only;
// non-positive values return ErrInvalidArgument.
func (n *Node) SetPixelsPerUnit(v int) error {
	if !n.isRoot {
		return fmt.Errorf("%w: pixels-per-unit is root-only state", ErrNotRoot)
	}
	if v <= 0 {
		return fmt.Errorf("%w: pixels-per-unit must be > 0, got %d",
			ErrInvalidArgument, v)
	}
	n.pixelsPerUnit = v
	n.MarkDirty()
	return nil
}

// MaxIndexDepth returns the subdivision limit used for rebuilt spatial
// indexes.
func (n *Node) MaxIndexDepth() int { return n.Root().maxIndexDepth }

// SetMaxIndexDepth sets the spatial index subdivision limit. Root-only;
// negative values return ErrInvalidArgument.
func (n *Node) SetMaxIndexDepth(v int) error {
	if !n.isRoot {
		return fmt.Errorf("%w: index depth is root-only state", ErrNotRoot)
	}
	if v < 0 {
		return fmt.Errorf("%w: index depth must be >= 0, got %d",
			ErrInvalidArgument, v)
	}
	n.maxIndexDepth = v
	n.MarkDirty()
	return nil
}

// --- Tree surgery ---

// ReparentTo detaches n from its current parent (if any) and attaches
// it below newParent. It returns false when newParent is nil, n itself,
// or a descendant of n (which would create a cycle). A reparented root
// stops being a root and delegates index operations to the new tree's
// root. Moving a node to a different tree dirties the old tree so its
// index drops the node on the next rebuild.
func (n *Node) ReparentTo(newParent *Node) bool {
	if newParent == nil || isAncestor(n, newParent) {
		return false
	}
	if n.parent != nil {
		oldRoot := n.Root()
		n.parent.detach(n)
		if oldRoot != newParent.Root() {
			oldRoot.dirty = true
		}
	}
	n.parent = newParent
	newParent.children = append(newParent.children, n)
	if n.isRoot {
		n.isRoot = false
		n.quadtree = nil
	}
	n.MarkDirty()
	return true
}

// RemoveChild detaches child from n. The detached child becomes a
// standalone root with no index; its pixels-per-unit is carried over
// from the old tree. Returns false when child is not a child of n.
func (n *Node) RemoveChild(child *Node) bool {
	if child.parent != n {
		return false
	}
	root := n.Root()
	n.detach(child)
	child.parent = nil
	child.isRoot = true
	child.pixelsPerUnit = root.pixelsPerUnit
	child.maxIndexDepth = root.maxIndexDepth
	child.MarkDirty()
	root.dirty = true
	return true
}

// Dispose detaches n from its parent and recursively destroys its
// subtree. Disposed nodes must not be reused.
func (n *Node) Dispose() {
	if n.parent != nil {
		root := n.parent.Root()
		n.parent.detach(n)
		n.parent = nil
		root.dirty = true
	}
	n.dispose()
}

func (n *Node) dispose() {
	for _, c := range n.children {
		c.parent = nil
		c.dispose()
	}
	n.children = nil
	n.content = nil
	n.quadtree = nil
	n.rotationCenter = nil
}

// detach removes child from n.children without touching child.parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing
// array.
func (n *Node) detach(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// isAncestor reports whether candidate is node or an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}
