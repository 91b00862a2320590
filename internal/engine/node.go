package engine

import (
	"github.com/melihucar/pina-engine-sub000/internal/graphics"
)

// Node is a scene-graph entity: one transform, an ordered list of owned
// children, and an optional renderable attachment owned elsewhere.
// A node's parent pointer and the parent's child list are always mutually
// consistent; reparenting is detach-then-attach.
type Node struct {
	id      NodeID
	Name    string
	Enabled bool
	Tags    []string

	// Renderable is drawn at this node's world transform. Nil is fine:
	// the node still exists for grouping its children.
	Renderable graphics.Renderable

	transform Transform
	parent    *Node
	children  []*Node
	scene     *Scene
	ids       *IDSource
}

// NewNode creates a detached node with an ID from the given source.
// Most nodes are created through Scene.CreateNode or Node.NewChild instead.
func NewNode(ids *IDSource, name string) *Node {
	n := &Node{
		id:      ids.Next(),
		Name:    name,
		Enabled: true,
		ids:     ids,
	}
	n.transform.init(n)
	return n
}

// ID returns the node's session-unique ID. IDs are never reused.
func (n *Node) ID() NodeID { return n.id }

// Transform returns the node's transform.
func (n *Node) Transform() *Transform { return &n.transform }

// Parent returns the parent node, or nil for the root or a detached node.
func (n *Node) Parent() *Node { return n.parent }

// Scene returns the scene this node is registered in, or nil if detached.
func (n *Node) Scene() *Scene { return n.scene }

// Children returns the node's children in order. The returned slice is the
// node's own storage; callers must not mutate it.
func (n *Node) Children() []*Node { return n.children }

// HasTag reports whether the node carries the given tag.
func (n *Node) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// NewChild creates a new node as the last child of this node.
func (n *Node) NewChild(name string) *Node {
	c := NewNode(n.ids, name)
	n.attach(c)
	return c
}

// AddChild adopts the given node (and its whole subtree) as the last child
// of this node, detaching it from any current parent first. Adopting a node
// into a different scene re-registers the subtree's IDs there, which is only
// collision-free when both scenes draw from the same IDSource (see
// NewSceneWithIDs). A move within one scene keeps the registration untouched
// and fires no NodeAdded/NodeRemoved events.
func (n *Node) AddChild(child *Node) {
	if child == nil || child == n || n.isDescendantOf(child) {
		return
	}
	if child.parent != nil {
		// unlink only: attach's setScene handles any scene transition
		// directly, so a same-scene move is not seen as destroy+create
		child.parent.unlink(child)
	}
	n.attach(child)
}

// SetParent reparents this node under newParent, or detaches it entirely
// when newParent is nil (the caller then owns the node).
func (n *Node) SetParent(newParent *Node) {
	if newParent == n.parent {
		return
	}
	if newParent == nil {
		if n.parent != nil {
			n.parent.detach(n)
		}
		return
	}
	newParent.AddChild(n)
}

// RemoveChild removes the given child and returns it with ownership
// transferred to the caller. The child's subtree is unregistered from the
// scene's ID map. Returns nil if the node is not a child of this node.
func (n *Node) RemoveChild(child *Node) *Node {
	for _, c := range n.children {
		if c == child {
			n.detach(child)
			return child
		}
	}
	return nil
}

// RemoveChildAt removes and returns the child at index i, or nil if out of range.
func (n *Node) RemoveChildAt(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	c := n.children[i]
	n.detach(c)
	return c
}

// Traverse visits this node and then its descendants, pre-order depth-first.
// Returning false from fn prunes the subtree below that node.
func (n *Node) Traverse(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Traverse(fn)
	}
}

// TraverseEnabled is Traverse restricted to enabled nodes: a disabled node
// is neither visited nor recursed into.
func (n *Node) TraverseEnabled(fn func(*Node) bool) {
	if !n.Enabled {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.TraverseEnabled(fn)
	}
}

// EnabledInHierarchy reports whether this node and every ancestor up to the
// root are enabled. O(depth) walk, not cached.
func (n *Node) EnabledInHierarchy() bool {
	for p := n; p != nil; p = p.parent {
		if !p.Enabled {
			return false
		}
	}
	return true
}

func (n *Node) isDescendantOf(other *Node) bool {
	for p := n.parent; p != nil; p = p.parent {
		if p == other {
			return true
		}
	}
	return false
}

func (n *Node) attach(child *Node) {
	child.parent = n
	n.children = append(n.children, child)
	child.setScene(n.scene)
	// the parent chain changed, so every cached world matrix below is stale
	child.transform.markWorldDirty()
}

func (n *Node) detach(child *Node) {
	n.unlink(child)
	child.setScene(nil)
	child.transform.markWorldDirty()
}

// unlink removes child from the children list and clears its parent pointer
// without touching scene registration.
func (n *Node) unlink(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			break
		}
	}
	child.parent = nil
}

// setScene moves this node's whole subtree between scene ID maps.
func (n *Node) setScene(s *Scene) {
	if n.scene == s {
		return
	}
	if n.scene != nil {
		n.scene.unregisterNode(n)
	}
	n.scene = s
	if s != nil {
		s.registerNode(n)
	}
	for _, c := range n.children {
		c.setScene(s)
	}
}
