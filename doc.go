// Package aspen is a hierarchical 2D scene transform graph with an
// incremental quadtree spatial index, built for [Ebitengine] games and
// UI layers.
//
// A tree of positioned nodes composes parent/child transforms
// (position, rotation, scale, depth, anchor origin) into world-space
// coordinates; a quadtree rebuilt from that graph answers "what is at
// this point / inside this box" queries for hit-testing, drag-and-drop,
// and click routing.
//
// # Quick start
//
//	root := aspen.NewRoot("scene")
//	root.SetPixelsPerUnit(720)
//
//	card := root.AttachChild("card")
//	card.SetPosition(0.2, 0.4)
//	card.SetDummySize(120, 180)
//
//	hits, err := root.QueryPoint(aspen.Vec2{X: 0.25, Y: 0.45}, true)
//
// # Lazy rebuilds
//
// Mutating a node's transform, visibility, or size marks its subtree
// dirty and forces the root dirty. Nothing is recomputed until a
// spatial query (or an explicit [Node.Rebuild]) runs: the rebuild walks
// the tree breadth-first, recomputes the world transform of every dirty
// visible node, and replaces the root's quadtree wholesale from the
// boxes of all visible nodes. Rendering code reads the cached
// world-space values ([Node.RelativePosition], [Node.RelativeAngle],
// [Node.RelativeScale], [Node.RelativeDepth]) without triggering a
// rebuild.
//
// [Renderer] draws sprite nodes depth-sorted through ebiten, and
// [TweenGroup] animates node transforms via [gween] easings. Both are
// consumers of the graph's outputs; neither participates in the rebuild
// protocol.
//
// The whole graph is single-threaded: mutate and query it from one
// render/update loop.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package aspen
