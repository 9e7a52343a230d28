package aspen

import (
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// Renderer draws a tree's sprite nodes onto an ebiten image. It is the
// rendering collaborator of the scene graph: it reads each node's
// cached relative position, angle, scale, depth, and visibility once
// per frame and never forces a rebuild — index rebuilds are driven by
// queries only. Call Rebuild (or issue a query) before Draw when the
// tree changed this frame.
type Renderer struct {
	root *Node
	buf  []*Node // reused depth-sort buffer
}

// NewRenderer creates a renderer for the tree rooted at root.
func NewRenderer(root *Node) *Renderer {
	return &Renderer{root: root}
}

// Draw renders every visible sprite node in ascending relative depth.
// Nodes without sprite content (pure containers) are walked but not
// drawn.
func (r *Renderer) Draw(screen *ebiten.Image) {
	r.buf = collectVisible(r.root, r.buf[:0])
	sort.SliceStable(r.buf, func(i, j int) bool {
		return r.buf[i].relDepth < r.buf[j].relDepth
	})
	ppu := float64(r.root.PixelsPerUnit())
	for _, n := range r.buf {
		sprite, ok := n.content.(*SpriteContent)
		if !ok {
			continue
		}
		img := sprite.Frame()
		if img == nil {
			continue
		}
		drawNode(screen, img, n, ppu)
	}
}

// collectVisible gathers visible nodes in parent-before-child order,
// skipping invisible subtrees the same way the rebuild walk does.
func collectVisible(n *Node, out []*Node) []*Node {
	if !n.visible {
		return out
	}
	out = append(out, n)
	for _, c := range n.children {
		out = collectVisible(c, out)
	}
	return out
}

// drawNode submits one sprite with the node's cached world transform.
// The rotation center defaults to the frame center and can be
// overridden per node, in asset pixels.
func drawNode(screen, img *ebiten.Image, n *Node, ppu float64) {
	b := img.Bounds()
	center := Vec2{float64(b.Dx()) / 2, float64(b.Dy()) / 2}
	if n.rotationCenter != nil {
		center = *n.rotationCenter
	}
	s := n.relScale

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-center.X, -center.Y)
	op.GeoM.Scale(s, s)
	// Positive angles are screen-space counter-clockwise, the inverse
	// of ebiten's rotation direction.
	op.GeoM.Rotate(-n.relAngle * math.Pi / 180)
	op.GeoM.Translate(center.X*s, center.Y*s)
	op.GeoM.Translate(n.relPosition.X*ppu, n.relPosition.Y*ppu)
	screen.DrawImage(img, op)
}
