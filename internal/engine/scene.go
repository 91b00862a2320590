package engine

import (
	"log"

	"github.com/melihucar/pina-engine-sub000/internal/camera"
)

// Scene owns the root of the node tree, the light registry, and a flat
// ID lookup map kept in sync as nodes attach and detach. The active camera
// is referenced, not owned.
type Scene struct {
	Name   string
	Camera *camera.Camera
	Lights *LightRegistry

	// NodeAdded and NodeRemoved fire when a node is registered into or
	// unregistered from this scene, including every node of an adopted
	// or removed subtree. Reparenting within one scene fires neither.
	NodeAdded   Event[*Node]
	NodeRemoved Event[*Node]

	root      *Node
	ids       *IDSource
	nodesByID map[NodeID]*Node
}

// NewScene creates a scene with its own ID source and an empty root node.
func NewScene(name string) *Scene {
	return NewSceneWithIDs(name, NewIDSource())
}

// NewSceneWithIDs creates a scene drawing node IDs from the given source.
// Scenes that exchange subtrees should share one source so IDs stay unique
// across both ID maps.
func NewSceneWithIDs(name string, ids *IDSource) *Scene {
	s := &Scene{
		Name:   name,
		Lights: NewLightRegistry(),
		ids:    ids,
	}
	s.root = NewNode(ids, "Root")
	s.root.scene = s
	s.registerNode(s.root)
	return s
}

// Root returns the scene's always-present root node. The root itself is
// never rendered; it exists to anchor the hierarchy.
func (s *Scene) Root() *Node {
	return s.root
}

// CreateNode constructs a new node under the given parent, defaulting to
// the root when parent is nil. The scene tree retains ownership.
func (s *Scene) CreateNode(name string, parent *Node) *Node {
	if parent == nil || parent.scene != s {
		parent = s.root
	}
	return parent.NewChild(name)
}

// FindNode resolves a node by ID in O(1), or nil if not in this scene.
func (s *Scene) FindNode(id NodeID) *Node {
	return s.nodesByID[id]
}

// FindNodeByName returns the first node with the given name in pre-order
// traversal, or nil.
func (s *Scene) FindNodeByName(name string) *Node {
	var found *Node
	s.root.Traverse(func(n *Node) bool {
		if found != nil {
			return false
		}
		if n.Name == name {
			found = n
			return false
		}
		return true
	})
	return found
}

// NodeCount returns the number of registered nodes, including the root.
func (s *Scene) NodeCount() int {
	return len(s.nodesByID)
}

// Update runs once-per-frame scene bookkeeping; currently that is
// repacking the lights' GPU data from live light state.
func (s *Scene) Update(deltaTime float32) {
	s.Lights.update()
}

func (s *Scene) registerNode(n *Node) {
	if s.nodesByID == nil {
		s.nodesByID = make(map[NodeID]*Node)
	}
	if prev, ok := s.nodesByID[n.id]; ok && prev != n {
		// adopting from a scene with a different IDSource; the old entry is
		// shadowed and unreachable by ID from here on
		log.Printf("scene %q: node ID %d collision between %q and %q; scenes exchanging nodes must share an IDSource",
			s.Name, n.id, prev.Name, n.Name)
	}
	s.nodesByID[n.id] = n
	s.NodeAdded.Invoke(n)
}

func (s *Scene) unregisterNode(n *Node) {
	delete(s.nodesByID, n.id)
	s.NodeRemoved.Invoke(n)
}
