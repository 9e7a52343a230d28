package aspen

import "fmt"

// updateRelative recomputes the node's cached world-space transform
// from its parent's cached values and its own local state. Callers must
// guarantee the parent's cache is current; Rebuild's breadth-first walk
// does.
func (n *Node) updateRelative() {
	if p := n.parent; p != nil {
		n.relAngle = p.relAngle + n.angle
		n.relScale = p.relScale * n.scale
		n.relDepth = p.relDepth + n.depth
		pos := n.position
		if p.relAngle != 0 {
			pos = pos.Rotate(p.relAngle)
		}
		n.relPosition = p.relPosition.Add(pos).Add(n.anchorOffset())
	} else {
		n.relAngle = n.angle
		n.relScale = n.scale
		n.relDepth = n.depth
		n.relPosition = n.position.Add(n.anchorOffset())
	}
}

// anchorOffset returns the origin-dependent offset applied to the
// node's world position: zero for TopLeft, -size/2 for Center, -size
// for BottomRight. Depends on the cached relative scale, so it must run
// after the scale composition in updateRelative.
func (n *Node) anchorOffset() Vec2 {
	switch n.origin {
	case OriginCenter:
		return n.Size().Mul(-0.5)
	case OriginBottomRight:
		return n.Size().Mul(-1)
	}
	return Vec2{}
}

// worldBox returns the node's world-space bounding box and whether it
// has positive area. Zero-sized nodes have no box and stay out of the
// spatial index.
func (n *Node) worldBox() (BoundingBox, bool) {
	size := n.Size()
	if size.X <= 0 || size.Y <= 0 {
		return BoundingBox{}, false
	}
	return BoundingBox{
		n.relPosition.X,
		n.relPosition.Y,
		n.relPosition.X + size.X,
		n.relPosition.Y + size.Y,
	}, true
}

// Rebuild recomputes stale world-space transforms and reconstructs the
// root's spatial index. It must be issued on the root (ErrNotRoot
// otherwise) and is a no-op on a clean tree.
//
// The walk is breadth-first through parent->child edges. Invisible
// nodes are skipped together with their whole subtree. Every visited
// node with a positive world size contributes its box to the new index,
// dirty or not, so nodes that never change cannot fall out of it; only
// dirty nodes pay the transform recomputation.
//
// The collected boxes go through FromPairs: when that yields a tree it
// is installed and Rebuild reports true; when it yields nil (no boxes,
// or a degenerate union) the previous index stays in place and Rebuild
// reports false.
func (n *Node) Rebuild() (bool, error) {
	if !n.isRoot {
		return false, fmt.Errorf("%w: rebuild must be issued on the root",
			ErrNotRoot)
	}
	if !n.dirty {
		return false, nil
	}
	if !n.visible {
		// Nothing to recompute or index. Clear the flag so queries stop
		// re-running the empty walk; any later mutation dirties the
		// root again.
		n.dirty = false
		return false, nil
	}
	var pairs []Pair
	queue := []*Node{n}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if !node.visible {
			continue
		}
		if node.dirty {
			node.updateRelative()
			node.dirty = false
		}
		if box, ok := node.worldBox(); ok {
			pairs = append(pairs, Pair{Box: box, Item: node})
		}
		queue = append(queue, node.children...)
	}
	qt := FromPairs(pairs, n.maxIndexDepth)
	if qt == nil {
		return false, nil
	}
	n.quadtree = qt
	return true, nil
}

// Query returns every node whose indexed world box matches the query
// box, rebuilding the index first when the tree is dirty. It may be
// issued on any node and transparently delegates to the root. Before
// any rebuild has ever populated the index it returns
// ErrIndexUnavailable.
func (n *Node) Query(box BoundingBox, overlap bool) ([]*Node, error) {
	root, err := n.queryRoot()
	if err != nil {
		return nil, err
	}
	return asNodes(root.quadtree.Query(box, overlap)), nil
}

// QueryPoint returns every node whose indexed world box contains the
// query point, with the same rebuild and delegation semantics as Query.
func (n *Node) QueryPoint(p Vec2, overlap bool) ([]*Node, error) {
	root, err := n.queryRoot()
	if err != nil {
		return nil, err
	}
	return asNodes(root.quadtree.QueryPoint(p, overlap)), nil
}

func (n *Node) queryRoot() (*Node, error) {
	root := n.Root()
	if root.dirty {
		if _, err := root.Rebuild(); err != nil {
			return nil, err
		}
	}
	if root.quadtree == nil {
		return nil, fmt.Errorf("%w: no rebuild has populated the index",
			ErrIndexUnavailable)
	}
	return root, nil
}

func asNodes(items []any) []*Node {
	nodes := make([]*Node, len(items))
	for i, item := range items {
		nodes[i] = item.(*Node)
	}
	return nodes
}
