// Package camera provides the view/projection camera consumed by the
// render passes. It is pure math: input-driven controllers live with the
// host application, not here.
package camera

import (
	"cogentcore.org/core/math32"
)

// Camera defines a viewpoint: position, look-at target, and projection
// parameters. Zero FOV or Far are filled in with defaults by New.
type Camera struct {
	Position math32.Vector3
	Target   math32.Vector3
	Up       math32.Vector3

	FOV  float32 // vertical field of view, degrees
	Near float32
	Far  float32

	// Ortho switches to an orthographic projection sized so the FOV
	// angle at Far distance fits vertically.
	Ortho bool
}

// New returns a perspective camera at pos looking at the origin.
func New(pos math32.Vector3) *Camera {
	return &Camera{
		Position: pos,
		Up:       math32.Vec3(0, 1, 0),
		FOV:      45,
		Near:     0.1,
		Far:      1000,
	}
}

// LookAt points the camera at target with the given up direction.
func (c *Camera) LookAt(target, up math32.Vector3) {
	c.Target = target
	if up != (math32.Vector3{}) {
		c.Up = up
	}
}

// ViewMatrix returns the world-to-camera matrix: the inverse of the camera
// pose built from position and look-at orientation.
func (c *Camera) ViewMatrix() math32.Matrix4 {
	var lookq math32.Quat
	lookq.SetFromRotationMatrix(math32.NewLookAt(c.Position, c.Target, c.Up))

	var pose math32.Matrix4
	pose.SetTransform(c.Position, lookq, math32.Vec3(1, 1, 1))

	view, err := pose.Inverse()
	if err != nil {
		var id math32.Matrix4
		id.SetIdentity()
		return id
	}
	return *view
}

// ProjectionMatrix returns the camera-to-clip matrix for the given aspect
// ratio (width/height).
func (c *Camera) ProjectionMatrix(aspect float32) math32.Matrix4 {
	var proj math32.Matrix4
	if c.Ortho {
		height := 2 * c.Far * math32.Tan(math32.DegToRad(c.FOV*0.5))
		width := aspect * height
		proj.SetOrthographic(width, height, c.Near, c.Far)
	} else {
		proj.SetPerspective(c.FOV, aspect, c.Near, c.Far)
	}
	return proj
}

// ViewProjection returns projection * view.
func (c *Camera) ViewProjection(aspect float32) math32.Matrix4 {
	view := c.ViewMatrix()
	proj := c.ProjectionMatrix(aspect)
	var vp math32.Matrix4
	vp.MulMatrices(&proj, &view)
	return vp
}

// ViewVector is the vector from target to camera position.
func (c *Camera) ViewVector() math32.Vector3 {
	return c.Position.Sub(c.Target)
}

// Orbit rotates the camera around its target by yaw and pitch degrees.
func (c *Camera) Orbit(yaw, pitch float32) {
	v := c.ViewVector()
	var qy math32.Quat
	qy.SetFromAxisAngle(math32.Vec3(0, 1, 0), math32.DegToRad(yaw))
	v = v.MulQuat(qy)

	right := c.Up.Cross(v).Normal()
	var qp math32.Quat
	qp.SetFromAxisAngle(right, math32.DegToRad(pitch))
	v = v.MulQuat(qp)

	c.Position = c.Target.Add(v)
}

// Dolly moves the camera toward (positive) or away from its target,
// clamped so it never crosses the target.
func (c *Camera) Dolly(dist float32) {
	v := c.ViewVector()
	l := v.Length()
	if l-dist < c.Near {
		dist = l - c.Near
	}
	c.Position = c.Position.Sub(v.Normal().MulScalar(dist))
}

// Pan translates both position and target in the camera plane.
func (c *Camera) Pan(dx, dy float32) {
	view := c.ViewVector().Normal()
	right := c.Up.Cross(view).Normal()
	up := view.Cross(right).Normal()
	offset := right.MulScalar(dx).Add(up.MulScalar(dy))
	c.Position = c.Position.Add(offset)
	c.Target = c.Target.Add(offset)
}
