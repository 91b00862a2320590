package render

import (
	"fmt"

	"cogentcore.org/core/math32"

	"github.com/melihucar/pina-engine-sub000/internal/camera"
	"github.com/melihucar/pina-engine-sub000/internal/engine"
	"github.com/melihucar/pina-engine-sub000/internal/graphics"
)

// SceneRenderer walks a scene's node tree and issues one draw call per
// enabled node carrying a renderable. It holds no per-scene state; the
// counters are per-call statistics only.
type SceneRenderer struct {
	// RenderedNodes and DrawCalls are reset at the start of each Render*
	// call and accumulated during traversal.
	RenderedNodes int
	DrawCalls     int

	// CullingEnabled skips renderables whose bounding sphere falls
	// outside the camera frustum. Renderables without bounds always draw.
	CullingEnabled bool
}

// Render draws every enabled renderable in the scene. Nil scene, camera,
// or shader makes the call a no-op.
func (r *SceneRenderer) Render(dev graphics.Device, scene *engine.Scene, cam *camera.Camera, sh graphics.Shader, aspect float32) {
	r.render(dev, scene, cam, sh, aspect, nil)
}

// RenderOpaque draws only non-transparent materials, with depth writes on
// and blending off.
func (r *SceneRenderer) RenderOpaque(dev graphics.Device, scene *engine.Scene, cam *camera.Camera, sh graphics.Shader, aspect float32) {
	dev.SetDepthWrite(true)
	dev.SetBlend(false)
	r.render(dev, scene, cam, sh, aspect, func(m graphics.Material) bool { return !m.Transparent })
}

// RenderTransparent draws only transparent materials, with blending on and
// depth writes off so translucent fragments do not occlude each other,
// while still depth-testing against the opaque pass's depth buffer.
func (r *SceneRenderer) RenderTransparent(dev graphics.Device, scene *engine.Scene, cam *camera.Camera, sh graphics.Shader, aspect float32) {
	dev.SetBlend(true)
	dev.SetDepthWrite(false)
	r.render(dev, scene, cam, sh, aspect, func(m graphics.Material) bool { return m.Transparent })
	dev.SetDepthWrite(true)
	dev.SetBlend(false)
}

func (r *SceneRenderer) render(dev graphics.Device, scene *engine.Scene, cam *camera.Camera, sh graphics.Shader, aspect float32, include func(graphics.Material) bool) {
	r.RenderedNodes = 0
	r.DrawCalls = 0
	if dev == nil || scene == nil || cam == nil || sh == nil {
		return
	}

	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix(aspect)

	sh.Bind()
	sh.SetMat4("matView", view)
	sh.SetMat4("matProjection", proj)
	sh.SetVec3("viewPos", cam.Position)
	uploadLights(sh, scene.Lights.Data())

	var frustum Frustum
	cull := r.CullingEnabled
	if cull {
		var vp math32.Matrix4
		vp.MulMatrices(&proj, &view)
		frustum = ExtractFrustum(&vp)
	}

	dev.BeginScene3D(view, proj)
	defer dev.EndScene3D()

	scene.Root().TraverseEnabled(func(n *engine.Node) bool {
		ren := n.Renderable
		if ren == nil {
			return true
		}
		if include != nil && !include(ren.Material()) {
			return true
		}
		t := n.Transform()
		world := t.WorldMatrix()

		if cull {
			if b, ok := ren.(graphics.Bounded); ok {
				center, radius := b.BoundingSphere()
				wc := center.MulMatrix4AsVector4(&world, 1)
				ws := t.WorldScale()
				wr := radius * math32.Max(ws.X, math32.Max(ws.Y, ws.Z))
				if !frustum.ContainsSphere(wc, wr) {
					return true
				}
			}
		}

		sh.SetMat4("matModel", world)
		sh.SetMat3("matNormal", t.NormalMatrix())
		uploadMaterial(sh, ren.Material())
		ren.Draw(dev, sh, world)

		r.RenderedNodes++
		r.DrawCalls++
		return true
	})
}

func uploadMaterial(sh graphics.Shader, m graphics.Material) {
	sh.SetVec4("materialColor", m.Color)
	sh.SetFloat("materialShininess", m.Shininess)
	sh.SetFloat("materialMetallic", m.Metallic)
	sh.SetFloat("materialRoughness", m.Roughness)
}

func uploadLights(sh graphics.Shader, d *engine.LightData) {
	sh.SetVec3("ambientColor", d.Ambient)
	sh.SetInt("dirLightCount", int32(d.DirCount))
	for i := 0; i < d.DirCount; i++ {
		sh.SetVec3(fmt.Sprintf("dirLightDir[%d]", i), d.DirDirections[i])
		sh.SetVec3(fmt.Sprintf("dirLightColor[%d]", i), d.DirColors[i])
	}
	sh.SetInt("pointLightCount", int32(d.PointCount))
	for i := 0; i < d.PointCount; i++ {
		sh.SetVec3(fmt.Sprintf("pointLightPos[%d]", i), d.PointPositions[i])
		sh.SetVec3(fmt.Sprintf("pointLightColor[%d]", i), d.PointColors[i])
		sh.SetFloat(fmt.Sprintf("pointLightRadius[%d]", i), d.PointRadii[i])
	}
}
