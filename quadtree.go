package aspen

import "math"

// quadrant indices, in the order the child regions are laid out.
const (
	quadUpperLeft = iota
	quadUpperRight
	quadLowerLeft
	quadLowerRight
)

// entry is one stored (position, item) pair. A position is either a
// point or a bounding box, never both.
type entry struct {
	box     BoundingBox
	point   Vec2
	isPoint bool
	item    any
}

// match reports whether the entry satisfies a box query. Inclusive
// relations apply when overlap is true, strict relations otherwise.
func (e entry) match(box BoundingBox, overlap bool) bool {
	if e.isPoint {
		if overlap {
			return box.ContainsPointInclusive(e.point)
		}
		return box.ContainsPointStrict(e.point)
	}
	if overlap {
		return e.box.OverlapsInclusive(box)
	}
	return e.box.OverlapsStrict(box)
}

// matchPoint reports whether the entry satisfies a point query.
// Point-vs-point pairs compare with an epsilon tolerance.
func (e entry) matchPoint(p Vec2, overlap bool) bool {
	if e.isPoint {
		return e.point.AlmostEqual(p, pointEps)
	}
	if overlap {
		return e.box.ContainsPointInclusive(p)
	}
	return e.box.ContainsPointStrict(p)
}

// Quadtree stores items in relation to their position (a point or a
// BoundingBox) inside a fixed region and retrieves them by relational
// queries against that position. Items are removed by reference and
// must therefore be comparable.
//
// Subdivision is purely positional: an item descends into the single
// quadrant that inclusively contains its position, down to at most
// maxLevel levels; items spanning quadrant boundaries stay at the level
// where they stopped fitting. The tree is never rebalanced by item
// count.
type Quadtree struct {
	region    BoundingBox
	maxLevel  int
	quadrants [4]BoundingBox
	children  []*Quadtree // nil until the first routed insert, then len 4
	entries   []entry
	routed    map[any]int // item -> quadrant index it was routed into
}

// NewQuadtree creates an empty quadtree over the given region with at
// most maxLevel levels of subdivision below it.
func NewQuadtree(region BoundingBox, maxLevel int) *Quadtree {
	cx := region.X1 + (region.X2-region.X1)/2
	cy := region.Y1 + (region.Y2-region.Y1)/2
	return &Quadtree{
		region:   region,
		maxLevel: maxLevel,
		quadrants: [4]BoundingBox{
			quadUpperLeft:  {region.X1, region.Y1, cx, cy},
			quadUpperRight: {cx, region.Y1, region.X2, cy},
			quadLowerLeft:  {region.X1, cy, cx, region.Y2},
			quadLowerRight: {cx, cy, region.X2, region.Y2},
		},
	}
}

// Region returns the region this quadtree node covers.
func (q *Quadtree) Region() BoundingBox { return q.region }

// ItemCount returns the total number of items stored at this node and
// all its descendants.
func (q *Quadtree) ItemCount() int {
	count := len(q.entries)
	for _, c := range q.children {
		count += c.ItemCount()
	}
	return count
}

// Insert stores item at the given box. It returns false when the box is
// not inclusively contained in the tree's region.
func (q *Quadtree) Insert(item any, box BoundingBox) bool {
	return q.insert(entry{box: box, item: item})
}

// InsertPoint stores item at the given point. It returns false when the
// point lies outside the tree's region.
func (q *Quadtree) InsertPoint(item any, p Vec2) bool {
	return q.insert(entry{point: p, isPoint: true, item: item})
}

func (q *Quadtree) insert(e entry) bool {
	if !q.contains(e) {
		return false
	}
	if q.maxLevel == 0 {
		q.entries = append(q.entries, e)
		return true
	}
	for i := range q.quadrants {
		if !q.quadrantContains(i, e) {
			continue
		}
		if q.children == nil {
			q.children = make([]*Quadtree, 4)
			for j := range q.children {
				q.children[j] = NewQuadtree(q.quadrants[j], q.maxLevel-1)
			}
		}
		if q.children[i].insert(e) {
			if q.routed == nil {
				q.routed = make(map[any]int)
			}
			q.routed[e.item] = i
			return true
		}
		return false
	}
	// Spans quadrant boundaries: keep it at this level.
	q.entries = append(q.entries, e)
	return true
}

func (q *Quadtree) contains(e entry) bool {
	if e.isPoint {
		return q.region.ContainsPointInclusive(e.point)
	}
	return q.region.ContainsInclusive(e.box)
}

func (q *Quadtree) quadrantContains(i int, e entry) bool {
	if e.isPoint {
		return q.quadrants[i].ContainsPointInclusive(e.point)
	}
	return q.quadrants[i].ContainsInclusive(e.box)
}

// Query returns every item whose stored position matches the query box.
// Boundary-touching positions match when overlap is true and are
// rejected when it is false. The result carries no duplicates: an item
// is stored at exactly one node.
func (q *Quadtree) Query(box BoundingBox, overlap bool) []any {
	return q.queryBox(box, overlap, nil)
}

func (q *Quadtree) queryBox(box BoundingBox, overlap bool, out []any) []any {
	if !q.region.OverlapsInclusive(box) {
		return out
	}
	for _, e := range q.entries {
		if e.match(box, overlap) {
			out = append(out, e.item)
		}
	}
	for _, c := range q.children {
		out = c.queryBox(box, overlap, out)
	}
	return out
}

// QueryPoint returns every item whose stored position matches the query
// point. Stored points match within a small epsilon; stored boxes match
// when they contain the point, inclusively of their boundary when
// overlap is true.
func (q *Quadtree) QueryPoint(p Vec2, overlap bool) []any {
	return q.queryPoint(p, overlap, nil)
}

func (q *Quadtree) queryPoint(p Vec2, overlap bool, out []any) []any {
	if !q.region.ContainsPointInclusive(p) {
		return out
	}
	for _, e := range q.entries {
		if e.matchPoint(p, overlap) {
			out = append(out, e.item)
		}
	}
	for _, c := range q.children {
		out = c.queryPoint(p, overlap, out)
	}
	return out
}

// Remove deletes the item stored under the given reference. It returns
// false when the item is not present. Child subtrees left without items
// are pruned.
func (q *Quadtree) Remove(item any) bool {
	for i, e := range q.entries {
		if e.item == item {
			copy(q.entries[i:], q.entries[i+1:])
			q.entries[len(q.entries)-1] = entry{}
			q.entries = q.entries[:len(q.entries)-1]
			return true
		}
	}
	if i, ok := q.routed[item]; ok && q.children != nil {
		if q.children[i].Remove(item) {
			delete(q.routed, item)
			q.prune()
			return true
		}
	}
	return false
}

// prune drops the whole child layer once it holds no items, and
// otherwise recurses into each child.
func (q *Quadtree) prune() {
	if q.children == nil {
		return
	}
	total := 0
	for _, c := range q.children {
		total += c.ItemCount()
	}
	if total == 0 {
		q.children = nil
		return
	}
	for _, c := range q.children {
		c.prune()
	}
}

// Pair is a (box, item) input to FromPairs.
type Pair struct {
	Box  BoundingBox
	Item any
}

// FromPairs builds a quadtree over the minimal box enclosing every
// pair and inserts all of them. It returns nil when no pairs are given
// or the enclosing box has zero or infinite area; callers are expected
// to keep their previous tree in that case.
func FromPairs(pairs []Pair, maxLevel int) *Quadtree {
	if len(pairs) == 0 {
		return nil
	}
	xMin, yMin := math.Inf(1), math.Inf(1)
	xMax, yMax := math.Inf(-1), math.Inf(-1)
	for _, p := range pairs {
		xMin = math.Min(xMin, p.Box.X1)
		yMin = math.Min(yMin, p.Box.Y1)
		xMax = math.Max(xMax, p.Box.X2)
		yMax = math.Max(yMax, p.Box.Y2)
	}
	area := (xMax - xMin) * (yMax - yMin)
	if area == 0 || math.IsInf(area, 0) || math.IsNaN(area) {
		return nil
	}
	q := NewQuadtree(BoundingBox{xMin, yMin, xMax, yMax}, maxLevel)
	for _, p := range pairs {
		q.Insert(p.Item, p.Box)
	}
	return q
}
