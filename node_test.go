package aspen

import (
	"errors"
	"testing"
)

// --- Defaults ---

func TestNewRootDefaults(t *testing.T) {
	root := NewRoot("root")
	if root.Name() != "root" {
		t.Errorf("Name = %q, want %q", root.Name(), "root")
	}
	if !root.IsRoot() {
		t.Error("NewRoot should be a root")
	}
	if !root.Visible() {
		t.Error("Visible should default to true")
	}
	if root.Scale() != 1 {
		t.Errorf("Scale = %v, want 1", root.Scale())
	}
	if root.Origin() != OriginTopLeft {
		t.Errorf("Origin = %d, want TopLeft", root.Origin())
	}
	if !root.Dirty() {
		t.Error("a fresh root should be dirty")
	}
	if root.PixelsPerUnit() != 1 {
		t.Errorf("PixelsPerUnit = %d, want 1", root.PixelsPerUnit())
	}
	if root.MaxIndexDepth() != DefaultMaxIndexDepth {
		t.Errorf("MaxIndexDepth = %d, want %d", root.MaxIndexDepth(), DefaultMaxIndexDepth)
	}
}

func TestAttachChild(t *testing.T) {
	root := NewRoot("root")
	child := root.AttachChild("child")

	if child.Parent() != root {
		t.Error("child.Parent should be root")
	}
	if len(root.Children()) != 1 || root.Children()[0] != child {
		t.Error("root.Children should hold the child")
	}
	if child.IsRoot() {
		t.Error("attached child must not be a root")
	}
	if !child.Dirty() {
		t.Error("a fresh child should be dirty")
	}
	if child.Root() != root {
		t.Error("child.Root should resolve to root")
	}
}

// --- Dirty protocol ---

func rebuiltRoot(t *testing.T) *Node {
	t.Helper()
	root := NewRoot("root")
	if err := root.SetDummySize(1, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := root.Rebuild(); err != nil {
		t.Fatal(err)
	}
	return root
}

func TestSettersMarkDirty(t *testing.T) {
	root := rebuiltRoot(t)
	child := root.AttachChild("child")
	if _, err := root.Rebuild(); err != nil {
		t.Fatal(err)
	}
	if child.Dirty() || root.Dirty() {
		t.Fatal("tree should be clean after rebuild")
	}

	checks := []struct {
		name string
		mut  func()
	}{
		{"SetPosition", func() { child.SetPosition(1, 2) }},
		{"SetAngle", func() { child.SetAngle(45) }},
		{"SetScale", func() { child.SetScale(2) }},
		{"SetDepth", func() { child.SetDepth(3) }},
		{"SetVisible", func() { child.SetVisible(false) }},
		{"SetOrigin", func() { _ = child.SetOrigin(OriginCenter) }},
		{"SetDummySize", func() { _ = child.SetDummySize(2, 2) }},
		{"SetRotationCenter", func() { child.SetRotationCenter(&Vec2{1, 1}) }},
	}
	for _, c := range checks {
		child.SetVisible(true)
		if _, err := root.Rebuild(); err != nil {
			t.Fatal(err)
		}
		c.mut()
		if !child.Dirty() {
			t.Errorf("%s should mark the node dirty", c.name)
		}
		if !root.Dirty() {
			t.Errorf("%s should force the root dirty", c.name)
		}
	}
}

func TestMarkDirtyCascade(t *testing.T) {
	root := rebuiltRoot(t)
	mid := root.AttachChild("mid")
	leaf := mid.AttachChild("leaf")
	sibling := root.AttachChild("sibling")
	if _, err := root.Rebuild(); err != nil {
		t.Fatal(err)
	}

	mid.MarkDirty()
	if !mid.Dirty() || !leaf.Dirty() {
		t.Error("MarkDirty should cascade to the whole subtree")
	}
	if !root.Dirty() {
		t.Error("MarkDirty should force the root dirty")
	}
	if sibling.Dirty() {
		t.Error("MarkDirty must not touch sibling subtrees")
	}
}

// --- Setter validation ---

func TestSetOriginInvalid(t *testing.T) {
	n := NewRoot("root")
	if err := n.SetOrigin(Origin(42)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("err = %v, want ErrInvalidArgument", err)
	}
	if n.Origin() != OriginTopLeft {
		t.Error("failed setter must leave state unchanged")
	}
	if err := n.SetOrigin(OriginBottomRight); err != nil {
		t.Errorf("valid origin returned %v", err)
	}
}

func TestSetPixelsPerUnit(t *testing.T) {
	root := NewRoot("root")
	child := root.AttachChild("child")

	if err := child.SetPixelsPerUnit(720); !errors.Is(err, ErrNotRoot) {
		t.Errorf("non-root err = %v, want ErrNotRoot", err)
	}
	if err := root.SetPixelsPerUnit(0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("zero err = %v, want ErrInvalidArgument", err)
	}
	if err := root.SetPixelsPerUnit(-1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("negative err = %v, want ErrInvalidArgument", err)
	}
	if err := root.SetPixelsPerUnit(720); err != nil {
		t.Fatalf("valid value returned %v", err)
	}
	if child.PixelsPerUnit() != 720 {
		t.Error("children should observe the root's pixels-per-unit")
	}
}

func TestSetMaxIndexDepth(t *testing.T) {
	root := NewRoot("root")
	child := root.AttachChild("child")

	if err := child.SetMaxIndexDepth(4); !errors.Is(err, ErrNotRoot) {
		t.Errorf("non-root err = %v, want ErrNotRoot", err)
	}
	if err := root.SetMaxIndexDepth(-1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("negative err = %v, want ErrInvalidArgument", err)
	}
	if err := root.SetMaxIndexDepth(4); err != nil {
		t.Errorf("valid value returned %v", err)
	}
}

func TestSetDummySizeInvalid(t *testing.T) {
	n := NewRoot("root")
	if err := n.SetDummySize(-1, 1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestSetRotationCenterCopies(t *testing.T) {
	n := NewRoot("root")
	v := Vec2{3, 4}
	n.SetRotationCenter(&v)
	v.X = 99
	if n.RotationCenter().X != 3 {
		t.Error("SetRotationCenter should copy the value")
	}
	n.SetRotationCenter(nil)
	if n.RotationCenter() != nil {
		t.Error("nil should clear the override")
	}
}

// --- Tree surgery ---

func TestReparentTo(t *testing.T) {
	root := NewRoot("root")
	a := root.AttachChild("a")
	b := root.AttachChild("b")
	c := a.AttachChild("c")

	if !c.ReparentTo(b) {
		t.Fatal("reparent should succeed")
	}
	if c.Parent() != b {
		t.Error("c.Parent should be b")
	}
	if len(a.Children()) != 0 {
		t.Error("old parent should no longer hold c")
	}
	if len(b.Children()) != 1 || b.Children()[0] != c {
		t.Error("new parent should hold c")
	}
	if !c.Dirty() {
		t.Error("reparented node should be dirty")
	}
}

func TestReparentToRejectsCycles(t *testing.T) {
	root := NewRoot("root")
	a := root.AttachChild("a")
	b := a.AttachChild("b")

	if a.ReparentTo(b) {
		t.Error("reparenting a above its own descendant must fail")
	}
	if a.ReparentTo(a) {
		t.Error("reparenting a node to itself must fail")
	}
	if a.ReparentTo(nil) {
		t.Error("reparenting to nil must fail")
	}
	if a.Parent() != root || b.Parent() != a {
		t.Error("failed reparent must leave the tree unchanged")
	}
}

func TestReparentPreviousRoot(t *testing.T) {
	main := NewRoot("main")
	other := NewRoot("other")
	if err := main.SetPixelsPerUnit(720); err != nil {
		t.Fatal(err)
	}

	if !other.ReparentTo(main) {
		t.Fatal("reparent should succeed")
	}
	if other.IsRoot() {
		t.Error("reparented root should stop being a root")
	}
	if other.Root() != main {
		t.Error("reparented root should resolve to the new root")
	}
	if other.PixelsPerUnit() != 720 {
		t.Error("reparented node should observe the new root's state")
	}
}

func TestReparentToDirtiesOldTree(t *testing.T) {
	oldRoot := NewRoot("old")
	if err := oldRoot.SetDummySize(1, 1); err != nil {
		t.Fatal(err)
	}
	card := oldRoot.AttachChild("card")
	card.SetPosition(5, 5)
	if err := card.SetDummySize(1, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := oldRoot.Rebuild(); err != nil {
		t.Fatal(err)
	}
	got, err := oldRoot.Query(BoundingBox{4.5, 4.5, 6.5, 6.5}, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != card {
		t.Fatalf("query before reparent = %v, want [card]", got)
	}

	newRoot := NewRoot("new")
	if !card.ReparentTo(newRoot) {
		t.Fatal("reparent should succeed")
	}
	if !oldRoot.Dirty() {
		t.Error("old tree should be dirty after losing a node")
	}
	got, err = oldRoot.Query(BoundingBox{4.5, 4.5, 6.5, 6.5}, true)
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range got {
		if n == card {
			t.Error("old tree's index must drop the reparented node")
		}
	}
}

func TestReparentToSameTreeKeepsOldRootClean(t *testing.T) {
	root := rebuiltRoot(t)
	a := root.AttachChild("a")
	b := root.AttachChild("b")
	c := a.AttachChild("c")
	if _, err := root.Rebuild(); err != nil {
		t.Fatal(err)
	}

	if !c.ReparentTo(b) {
		t.Fatal("reparent should succeed")
	}
	if !root.Dirty() {
		t.Error("same-tree reparent should dirty the shared root")
	}
}

func TestRemoveChild(t *testing.T) {
	root := NewRoot("root")
	if err := root.SetPixelsPerUnit(720); err != nil {
		t.Fatal(err)
	}
	a := root.AttachChild("a")
	grand := a.AttachChild("grand")

	if !root.RemoveChild(a) {
		t.Fatal("RemoveChild should succeed")
	}
	if len(root.Children()) != 0 {
		t.Error("root should no longer hold a")
	}
	if a.Parent() != nil || !a.IsRoot() {
		t.Error("removed child should become a standalone root")
	}
	if a.PixelsPerUnit() != 720 {
		t.Error("detached root should carry over pixels-per-unit")
	}
	if grand.Root() != a {
		t.Error("grandchild should follow the detached subtree")
	}
	if !root.Dirty() {
		t.Error("old root should be dirty after removal")
	}
}

func TestRemoveChildWrongParent(t *testing.T) {
	root := NewRoot("root")
	a := root.AttachChild("a")
	b := root.AttachChild("b")
	if b.RemoveChild(a) {
		t.Error("RemoveChild with a foreign child must fail")
	}
	if a.Parent() != root {
		t.Error("failed removal must leave the tree unchanged")
	}
}

func TestDispose(t *testing.T) {
	root := NewRoot("root")
	a := root.AttachChild("a")
	b := a.AttachChild("b")

	a.Dispose()
	if len(root.Children()) != 0 {
		t.Error("dispose should detach from the parent")
	}
	if a.Parent() != nil || b.Parent() != nil {
		t.Error("dispose should clear parent pointers")
	}
	if len(a.Children()) != 0 {
		t.Error("dispose should drop the child list")
	}
	if !root.Dirty() {
		t.Error("old root should be dirty after dispose")
	}
}
