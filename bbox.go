package aspen

import "fmt"

// BoundingBox is an axis-aligned rectangle spanning (X1, Y1) to (X2, Y2)
// with X1 < X2 and Y1 < Y2. Values are immutable after construction.
//
// The four relational predicates come in an inclusive and a strict
// flavor: inclusive relations count shared boundaries, strict relations
// do not.
type BoundingBox struct {
	X1, Y1, X2, Y2 float64
}

// NewBoundingBox constructs a BoundingBox and returns ErrInvalidBox when
// the ordering invariant is violated.
func NewBoundingBox(x1, y1, x2, y2 float64) (BoundingBox, error) {
	if x1 >= x2 || y1 >= y2 {
		return BoundingBox{}, fmt.Errorf("%w: (%v, %v, %v, %v)",
			ErrInvalidBox, x1, y1, x2, y2)
	}
	return BoundingBox{x1, y1, x2, y2}, nil
}

// Width returns X2 - X1.
func (b BoundingBox) Width() float64 { return b.X2 - b.X1 }

// Height returns Y2 - Y1.
func (b BoundingBox) Height() float64 { return b.Y2 - b.Y1 }

// ContainsInclusive reports whether o lies inside b, boundaries allowed
// to touch.
func (b BoundingBox) ContainsInclusive(o BoundingBox) bool {
	return b.X1 <= o.X1 && b.Y1 <= o.Y1 && b.X2 >= o.X2 && b.Y2 >= o.Y2
}

// ContainsStrict reports whether o lies inside b without touching any
// boundary.
func (b BoundingBox) ContainsStrict(o BoundingBox) bool {
	return b.X1 < o.X1 && b.Y1 < o.Y1 && b.X2 > o.X2 && b.Y2 > o.Y2
}

// OverlapsStrict reports whether b and o overlap: a corner of either box
// lies strictly inside the other, or one strictly contains the other.
func (b BoundingBox) OverlapsStrict(o BoundingBox) bool {
	return b.anyCornerStrict(o) || o.anyCornerStrict(b) ||
		b.ContainsStrict(o) || o.ContainsStrict(b)
}

// OverlapsInclusive is OverlapsStrict with boundary-touching corners
// counted.
func (b BoundingBox) OverlapsInclusive(o BoundingBox) bool {
	return b.anyCornerInclusive(o) || o.anyCornerInclusive(b) ||
		b.ContainsInclusive(o) || o.ContainsInclusive(b)
}

// ContainsPointInclusive reports whether p lies inside b or on its
// boundary. Against a point, containment and overlap collapse to the
// same test.
func (b BoundingBox) ContainsPointInclusive(p Vec2) bool {
	return b.X1 <= p.X && p.X <= b.X2 && b.Y1 <= p.Y && p.Y <= b.Y2
}

// ContainsPointStrict reports whether p lies strictly inside b.
func (b BoundingBox) ContainsPointStrict(p Vec2) bool {
	return b.X1 < p.X && p.X < b.X2 && b.Y1 < p.Y && p.Y < b.Y2
}

// anyCornerStrict reports whether any corner of o lies strictly inside b.
func (b BoundingBox) anyCornerStrict(o BoundingBox) bool {
	return b.ContainsPointStrict(Vec2{o.X1, o.Y1}) ||
		b.ContainsPointStrict(Vec2{o.X2, o.Y1}) ||
		b.ContainsPointStrict(Vec2{o.X1, o.Y2}) ||
		b.ContainsPointStrict(Vec2{o.X2, o.Y2})
}

// anyCornerInclusive reports whether any corner of o lies inside b or on
// its boundary.
func (b BoundingBox) anyCornerInclusive(o BoundingBox) bool {
	return b.ContainsPointInclusive(Vec2{o.X1, o.Y1}) ||
		b.ContainsPointInclusive(Vec2{o.X2, o.Y1}) ||
		b.ContainsPointInclusive(Vec2{o.X1, o.Y2}) ||
		b.ContainsPointInclusive(Vec2{o.X2, o.Y2})
}
