package aspen

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to two scalar channels on a Node. Values are
// applied through the node's setters, so every update drives the
// normal dirty protocol and the next query sees the tweened state.
// Call Update(dt) each frame until Done.
//
// There is no global animation manager — callers own their groups.
type TweenGroup struct {
	tweens [2]*gween.Tween
	count  int
	target *Node
	apply  func(n *Node, v [2]float64)
	Done   bool
}

// Update advances the group by dt seconds and applies the current
// values to the target node.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	var vals [2]float64
	allDone := true
	for i := 0; i < g.count; i++ {
		v, finished := g.tweens[i].Update(dt)
		vals[i] = float64(v)
		if !finished {
			allDone = false
		}
	}
	g.apply(g.target, vals)
	g.Done = allDone
}

// TweenPosition animates the node's local position to (toX, toY) over
// the given duration using the easing function.
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{
		count:  2,
		target: node,
		apply:  func(n *Node, v [2]float64) { n.SetPosition(v[0], v[1]) },
	}
	pos := node.Position()
	g.tweens[0] = gween.New(float32(pos.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(pos.Y), float32(toY), duration, fn)
	return g
}

// TweenScale animates the node's local scale to the target value over
// the given duration using the easing function.
func TweenScale(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{
		count:  1,
		target: node,
		apply:  func(n *Node, v [2]float64) { n.SetScale(v[0]) },
	}
	g.tweens[0] = gween.New(float32(node.Scale()), float32(to), duration, fn)
	return g
}

// TweenAngle animates the node's local rotation to the target angle in
// degrees over the given duration using the easing function.
func TweenAngle(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{
		count:  1,
		target: node,
		apply:  func(n *Node, v [2]float64) { n.SetAngle(v[0]) },
	}
	g.tweens[0] = gween.New(float32(node.Angle()), float32(to), duration, fn)
	return g
}
