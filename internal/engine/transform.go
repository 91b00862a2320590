package engine

import (
	"cogentcore.org/core/math32"
)

// Transform holds a node's position, rotation, and scale relative to its
// parent, with lazily recomputed local and world matrices. Mutating any
// local component marks this transform dirty and world-dirties the whole
// subtree below it, since every descendant's world matrix depends on ours.
type Transform struct {
	node *Node // owning node, used for parent-chain lookups only

	pos   math32.Vector3
	quat  math32.Quat
	scale math32.Vector3

	local math32.Matrix4
	world math32.Matrix4

	localDirty bool
	worldDirty bool

	// worldRecomputes counts world matrix rebuilds so tests can verify
	// that reads without intervening mutations hit the cache.
	worldRecomputes int
}

func (t *Transform) init(n *Node) {
	t.node = n
	t.quat.SetIdentity()
	t.scale = math32.Vec3(1, 1, 1)
	t.localDirty = true
	t.worldDirty = true
}

// Node returns the node owning this transform.
func (t *Transform) Node() *Node {
	return t.node
}

// SetLocalPosition sets the position relative to the parent.
func (t *Transform) SetLocalPosition(pos math32.Vector3) {
	t.pos = pos
	t.markDirty()
}

// SetLocalRotation sets the rotation relative to the parent.
func (t *Transform) SetLocalRotation(quat math32.Quat) {
	t.quat = quat
	t.markDirty()
}

// SetLocalEulerRotation sets the rotation from Euler angles in degrees.
func (t *Transform) SetLocalEulerRotation(x, y, z float32) {
	var q math32.Quat
	q.SetFromEuler(math32.Vec3(math32.DegToRad(x), math32.DegToRad(y), math32.DegToRad(z)))
	t.SetLocalRotation(q)
}

// SetLocalScale sets the scale relative to the parent. Degenerate (zero)
// scale is accepted; the normal matrix falls back to identity in that case.
func (t *Transform) SetLocalScale(scale math32.Vector3) {
	t.scale = scale
	t.markDirty()
}

func (t *Transform) LocalPosition() math32.Vector3 { return t.pos }
func (t *Transform) LocalRotation() math32.Quat    { return t.quat }
func (t *Transform) LocalScale() math32.Vector3    { return t.scale }

// LocalMatrix returns the cached T*R*S matrix, recomputing it if a local
// component changed since the last read.
func (t *Transform) LocalMatrix() math32.Matrix4 {
	if t.localDirty {
		t.local.SetTransform(t.pos, t.quat, t.scale)
		t.localDirty = false
	}
	return t.local
}

// WorldMatrix returns the cached parent.world * local matrix, recomputing
// it (and any stale ancestors, transitively) if dirty.
func (t *Transform) WorldMatrix() math32.Matrix4 {
	if t.worldDirty {
		local := t.LocalMatrix()
		if t.node != nil && t.node.parent != nil {
			pw := t.node.parent.transform.WorldMatrix()
			t.world.MulMatrices(&pw, &local)
		} else {
			t.world = local
		}
		t.worldDirty = false
		t.worldRecomputes++
	}
	return t.world
}

// NormalMatrix returns the inverse-transpose of the world matrix's 3x3
// linear part, for transforming normals under non-uniform scale. A
// singular world matrix (zero scale) yields identity rather than faulting.
func (t *Transform) NormalMatrix() math32.Matrix3 {
	w := t.WorldMatrix()

	// column-major upper-left 3x3
	m00, m10, m20 := w[0], w[1], w[2]
	m01, m11, m21 := w[4], w[5], w[6]
	m02, m12, m22 := w[8], w[9], w[10]

	// cofactor matrix = det * (M^-1)^T, so N = C / det
	c00 := m11*m22 - m12*m21
	c01 := m12*m20 - m10*m22
	c02 := m10*m21 - m11*m20
	c10 := m02*m21 - m01*m22
	c11 := m00*m22 - m02*m20
	c12 := m01*m20 - m00*m21
	c20 := m01*m12 - m02*m11
	c21 := m02*m10 - m00*m12
	c22 := m00*m11 - m01*m10

	det := m00*c00 + m01*c01 + m02*c02

	var n math32.Matrix3
	if math32.Abs(det) < 1e-12 {
		n.SetIdentity()
		return n
	}
	inv := 1 / det
	n[0], n[1], n[2] = c00*inv, c01*inv, c02*inv
	n[3], n[4], n[5] = c10*inv, c11*inv, c12*inv
	n[6], n[7], n[8] = c20*inv, c21*inv, c22*inv
	return n
}

// WorldPosition decomposes the world matrix on demand (no extra caching).
func (t *Transform) WorldPosition() math32.Vector3 {
	w := t.WorldMatrix()
	var pos math32.Vector3
	pos.SetFromMatrixPos(&w)
	return pos
}

// WorldRotation returns the world-space rotation.
func (t *Transform) WorldRotation() math32.Quat {
	w := t.WorldMatrix()
	_, quat, _ := w.Decompose()
	return quat
}

// WorldScale returns the world-space scale.
func (t *Transform) WorldScale() math32.Vector3 {
	w := t.WorldMatrix()
	_, _, scale := w.Decompose()
	return scale
}

func (t *Transform) markDirty() {
	t.localDirty = true
	t.markWorldDirty()
}

// markWorldDirty marks this transform and every descendant's transform as
// needing a world matrix rebuild.
func (t *Transform) markWorldDirty() {
	t.worldDirty = true
	if t.node == nil {
		return
	}
	for _, c := range t.node.children {
		c.transform.markWorldDirty()
	}
}
