package engine

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestTransformDefaults(t *testing.T) {
	n := NewNode(NewIDSource(), "N")
	tr := n.Transform()

	if tr.LocalPosition() != math32.Vec3(0, 0, 0) {
		t.Error("default position should be the origin")
	}
	if tr.LocalScale() != math32.Vec3(1, 1, 1) {
		t.Error("default scale should be one")
	}

	local := tr.LocalMatrix()
	var id math32.Matrix4
	id.SetIdentity()
	assert.Equal(t, id, local, "identity transform should yield identity matrix")
}

func TestWorldMatrixComposesParentChain(t *testing.T) {
	s := NewScene("test")
	parent := s.CreateNode("Parent", nil)
	child := s.CreateNode("Child", parent)

	parent.Transform().SetLocalPosition(math32.Vec3(4, 0, 0))
	child.Transform().SetLocalPosition(math32.Vec3(1, 1, 0))

	pos := child.Transform().WorldPosition()
	assert.InDelta(t, 5, pos.X, 1e-5)
	assert.InDelta(t, 1, pos.Y, 1e-5)
	assert.InDelta(t, 0, pos.Z, 1e-5)
}

func TestWorldMatrixCachesBetweenMutations(t *testing.T) {
	s := NewScene("test")
	n := s.CreateNode("N", nil)
	tr := n.Transform()

	tr.SetLocalPosition(math32.Vec3(1, 2, 3))
	tr.WorldMatrix()
	before := tr.worldRecomputes

	tr.WorldMatrix()
	tr.WorldMatrix()
	if tr.worldRecomputes != before {
		t.Error("repeated reads without mutations should hit the cache")
	}

	tr.SetLocalPosition(math32.Vec3(9, 2, 3))
	tr.WorldMatrix()
	if tr.worldRecomputes != before+1 {
		t.Error("a mutation should cause exactly one recompute on next read")
	}
}

func TestParentMutationDirtiesWholeSubtree(t *testing.T) {
	s := NewScene("test")
	a := s.CreateNode("A", nil)
	b := s.CreateNode("B", a)
	c := s.CreateNode("C", b)

	// warm all caches
	c.Transform().WorldMatrix()

	a.Transform().SetLocalPosition(math32.Vec3(0, 7, 0))

	pos := c.Transform().WorldPosition()
	assert.InDelta(t, 7, pos.Y, 1e-5, "grandchild should see the ancestor's move")
}

func TestReparentingRecomputesWorld(t *testing.T) {
	s := NewScene("test")
	p1 := s.CreateNode("P1", nil)
	p2 := s.CreateNode("P2", nil)
	p1.Transform().SetLocalPosition(math32.Vec3(10, 0, 0))
	p2.Transform().SetLocalPosition(math32.Vec3(0, 0, 10))

	c := s.CreateNode("C", p1)
	c.Transform().SetLocalPosition(math32.Vec3(1, 0, 0))
	c.Transform().WorldMatrix()

	p2.AddChild(c)

	pos := c.Transform().WorldPosition()
	assert.InDelta(t, 1, pos.X, 1e-5)
	assert.InDelta(t, 10, pos.Z, 1e-5)
}

func TestEulerRotationRotatesPoints(t *testing.T) {
	s := NewScene("test")
	n := s.CreateNode("N", nil)
	c := s.CreateNode("C", n)
	c.Transform().SetLocalPosition(math32.Vec3(1, 0, 0))

	// 90 degrees about Y maps +X to -Z
	n.Transform().SetLocalEulerRotation(0, 90, 0)

	pos := c.Transform().WorldPosition()
	assert.InDelta(t, 0, pos.X, 1e-5)
	assert.InDelta(t, -1, pos.Z, 1e-5)
}

func TestNormalMatrixNonUniformScale(t *testing.T) {
	s := NewScene("test")
	n := s.CreateNode("N", nil)
	n.Transform().SetLocalScale(math32.Vec3(2, 1, 1))

	nm := n.Transform().NormalMatrix()

	// inverse-transpose of diag(2,1,1) is diag(0.5,1,1)
	assert.InDelta(t, 0.5, nm[0], 1e-5)
	assert.InDelta(t, 1.0, nm[4], 1e-5)
	assert.InDelta(t, 1.0, nm[8], 1e-5)
	assert.InDelta(t, 0.0, nm[1], 1e-5)
}

func TestNormalMatrixSingularFallsBackToIdentity(t *testing.T) {
	s := NewScene("test")
	n := s.CreateNode("N", nil)
	n.Transform().SetLocalScale(math32.Vec3(0, 0, 0))

	nm := n.Transform().NormalMatrix()
	var id math32.Matrix3
	id.SetIdentity()
	assert.Equal(t, id, nm, "singular world matrix should yield identity normal matrix")
}

func TestWorldScaleAndRotationDecompose(t *testing.T) {
	s := NewScene("test")
	p := s.CreateNode("P", nil)
	c := s.CreateNode("C", p)

	p.Transform().SetLocalScale(math32.Vec3(2, 2, 2))
	c.Transform().SetLocalScale(math32.Vec3(3, 1, 1))

	ws := c.Transform().WorldScale()
	assert.InDelta(t, 6, ws.X, 1e-4)
	assert.InDelta(t, 2, ws.Y, 1e-4)
}
