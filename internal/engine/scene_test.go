package engine

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"cogentcore.org/core/math32"
)

func TestNewSceneHasRoot(t *testing.T) {
	s := NewScene("test")

	if s.Root() == nil {
		t.Fatal("scene should always have a root")
	}
	if s.Root().Name != "Root" {
		t.Errorf("Expected root name 'Root', got '%s'", s.Root().Name)
	}
	if s.NodeCount() != 1 {
		t.Errorf("Expected node count 1 (the root), got %d", s.NodeCount())
	}
	if s.FindNode(s.Root().ID()) != s.Root() {
		t.Error("root should be registered in the ID map")
	}
}

func TestCreateNodeDefaultsToRoot(t *testing.T) {
	s := NewScene("test")

	n := s.CreateNode("N", nil)
	if n.Parent() != s.Root() {
		t.Error("nil parent should default to the root")
	}

	other := NewScene("other")
	foreign := other.CreateNode("F", nil)
	m := s.CreateNode("M", foreign)
	if m.Parent() != s.Root() {
		t.Error("a parent from another scene should fall back to the root")
	}
}

func TestFindNodeByName(t *testing.T) {
	s := NewScene("test")
	a := s.CreateNode("A", nil)
	s.CreateNode("Dup", a)
	s.CreateNode("Dup", nil)

	found := s.FindNodeByName("Dup")
	if found == nil {
		t.Fatal("FindNodeByName should find an existing name")
	}
	if found.Parent() != a {
		t.Error("FindNodeByName should return the first match in pre-order")
	}

	if s.FindNodeByName("Missing") != nil {
		t.Error("missing names should return nil")
	}
}

func TestSceneNodeEvents(t *testing.T) {
	s := NewScene("test")

	var added, removed []string
	s.NodeAdded.AddListener(func(n *Node) { added = append(added, n.Name) })
	s.NodeRemoved.AddListener(func(n *Node) { removed = append(removed, n.Name) })

	p := s.CreateNode("P", nil)
	s.CreateNode("C", p)
	s.Root().RemoveChild(p)

	if len(added) != 2 {
		t.Errorf("Expected 2 added events, got %d", len(added))
	}
	if len(removed) != 2 {
		t.Errorf("Expected 2 removed events for the subtree, got %d", len(removed))
	}
}

func TestAdoptionFromForeignIDSourceFlagsCollision(t *testing.T) {
	// separate sources hand out overlapping IDs
	s1 := NewScene("one")
	s2 := NewScene("two")
	a := s1.CreateNode("A", nil)
	b := s2.CreateNode("B", nil)
	if a.ID() != b.ID() {
		t.Fatal("test setup: independent sources should produce the same first ID")
	}

	var buf bytes.Buffer
	orig := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(orig)

	s2.Root().AddChild(a)

	if !strings.Contains(buf.String(), "collision") {
		t.Error("adopting a colliding ID should log a collision warning")
	}
	if s2.FindNode(a.ID()) != a {
		t.Error("the adopted node wins the map entry (last registration)")
	}
}

func TestLightRegistryCapacity(t *testing.T) {
	r := NewLightRegistry()

	for i := 0; i < MaxLights; i++ {
		if idx := r.Add(NewPointLight()); idx != i {
			t.Errorf("Expected slot %d, got %d", i, idx)
		}
	}
	if r.Add(NewPointLight()) != -1 {
		t.Error("a full registry should return -1, not grow")
	}

	r.Remove(3)
	if r.Count() != MaxLights-1 {
		t.Errorf("Expected %d lights after removal, got %d", MaxLights-1, r.Count())
	}
	if idx := r.Add(NewDirectionalLight()); idx != 3 {
		t.Errorf("freed slot should be reused, expected 3, got %d", idx)
	}

	// out-of-range removals are no-ops
	r.Remove(-1)
	r.Remove(MaxLights)
}

func TestFirstDirectional(t *testing.T) {
	r := NewLightRegistry()
	if r.FirstDirectional() != nil {
		t.Error("empty registry should have no directional light")
	}

	r.Add(NewPointLight())
	dl := NewDirectionalLight()
	r.Add(dl)
	r.Add(NewDirectionalLight())

	if r.FirstDirectional() != dl {
		t.Error("FirstDirectional should return the lowest occupied slot")
	}
}

func TestLightDataPacking(t *testing.T) {
	s := NewScene("test")

	sun := NewDirectionalLight()
	sun.Color = math32.Vec3(1, 0.5, 0)
	sun.Intensity = 2
	s.Lights.Add(sun)

	lamp := NewPointLight()
	lamp.Radius = 7
	s.Lights.Add(lamp)

	s.Update(0.016)
	d := s.Lights.Data()

	if d.DirCount != 1 || d.PointCount != 1 {
		t.Fatalf("Expected 1 dir + 1 point light, got %d + %d", d.DirCount, d.PointCount)
	}
	if d.DirColors[0] != math32.Vec3(2, 1, 0) {
		t.Error("directional color should be premultiplied by intensity")
	}
	if d.PointRadii[0] != 7 {
		t.Error("point radius should be packed")
	}
	if d.Ambient != sun.Ambient {
		t.Error("ambient should sum the directional lights' ambient terms")
	}
}

func TestEventListenerRemoval(t *testing.T) {
	var e Event[int]
	sum := 0

	id := e.AddListener(func(v int) { sum += v })
	e.AddListener(func(v int) { sum += v * 10 })

	e.Invoke(1)
	if sum != 11 {
		t.Errorf("Expected 11, got %d", sum)
	}

	e.RemoveListener(id)
	e.Invoke(1)
	if sum != 21 {
		t.Errorf("Expected 21 after removal, got %d", sum)
	}

	e.RemoveAllListeners()
	e.Invoke(100)
	if sum != 21 {
		t.Error("no listeners should fire after RemoveAllListeners")
	}

	if e.AddListener(nil) != -1 {
		t.Error("nil listeners should be rejected with -1")
	}
}
