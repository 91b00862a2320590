package render

import (
	"cogentcore.org/core/math32"
)

// Frustum is the six planes of a view frustum, used to cull renderables
// that report bounds.
type Frustum struct {
	planes [6]plane // left, right, bottom, top, near, far
}

// plane is ax + by + cz + d = 0.
type plane struct {
	normal   math32.Vector3
	distance float32
}

// ExtractFrustum extracts frustum planes from a view-projection matrix
// using the Gribb/Hartmann method. The matrix is column-major.
func ExtractFrustum(vp *math32.Matrix4) Frustum {
	var f Frustum

	// row i of the column-major matrix is vp[i], vp[i+4], vp[i+8], vp[i+12]
	row := func(i int) (math32.Vector3, float32) {
		return math32.Vec3(vp[i], vp[i+4], vp[i+8]), vp[i+12]
	}
	n3, d3 := row(3)

	set := func(idx int, n math32.Vector3, d float32) {
		l := n.Length()
		if l > 0 {
			n = n.MulScalar(1 / l)
			d /= l
		}
		f.planes[idx] = plane{normal: n, distance: d}
	}

	n0, d0 := row(0)
	set(0, n3.Add(n0), d3+d0) // left
	set(1, n3.Sub(n0), d3-d0) // right

	n1, d1 := row(1)
	set(2, n3.Add(n1), d3+d1) // bottom
	set(3, n3.Sub(n1), d3-d1) // top

	n2, d2 := row(2)
	set(4, n3.Add(n2), d3+d2) // near
	set(5, n3.Sub(n2), d3-d2) // far

	return f
}

// ContainsSphere reports whether a sphere intersects the frustum, i.e.
// whether it should be rendered.
func (f *Frustum) ContainsSphere(center math32.Vector3, radius float32) bool {
	for i := 0; i < 6; i++ {
		dist := f.planes[i].normal.Dot(center) + f.planes[i].distance
		if dist < -radius {
			return false
		}
	}
	return true
}

// ContainsPoint reports whether a point is inside the frustum.
func (f *Frustum) ContainsPoint(point math32.Vector3) bool {
	return f.ContainsSphere(point, 0)
}
