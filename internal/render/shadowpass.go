package render

import (
	"cogentcore.org/core/math32"

	"github.com/melihucar/pina-engine-sub000/internal/engine"
	"github.com/melihucar/pina-engine-sub000/internal/graphics"
)

// Shadow map depth-volume bounds. Resolution is fixed; the map lives
// outside the ping-pong rotation and never resizes with the viewport.
const (
	ShadowMapResolution = 2048
	shadowNear          = 1.0
	shadowFar           = 150.0
)

// ShadowPass renders scene depth from the first directional light into the
// named shadow map target and publishes the light-space matrix for the
// scene pass. It never touches the ping-pong pair.
type ShadowPass struct {
	BasePass

	shader graphics.Shader
	target graphics.Framebuffer
}

func NewShadowPass() *ShadowPass {
	return &ShadowPass{BasePass: NewBasePass("shadow", false)}
}

func (p *ShadowPass) Initialize(ctx *Context) error {
	sh, err := ctx.Device.CreateShader(depthVertexSrc, depthFragmentSrc)
	if err != nil {
		return err
	}
	p.shader = sh

	target, err := ctx.CreateTarget(ShadowMapTarget, graphics.FramebufferSpec{
		Width:     ShadowMapResolution,
		Height:    ShadowMapResolution,
		DepthOnly: true,
	})
	if err != nil {
		return err
	}
	p.target = target
	return nil
}

func (p *ShadowPass) Execute(ctx *Context) {
	if p.shader == nil || p.target == nil || ctx.Scene == nil {
		return
	}

	caster := p.caster(ctx)
	view, proj := lightSpace(caster, ctx)

	p.target.Bind()
	p.target.Clear(math32.Vec4(1, 1, 1, 1), true)

	// Front-face culling pushes self-shadowing artifacts to back faces.
	ctx.Device.SetCullFront(true)
	p.drawDepth(ctx, view, proj)
	ctx.Device.SetCullFront(false)

	var vp math32.Matrix4
	vp.MulMatrices(&proj, &view)
	ctx.LightSpace = vp
	ctx.HasLightSpace = true
}

func (p *ShadowPass) Cleanup() {
	if p.shader != nil {
		p.shader.Destroy()
		p.shader = nil
	}
	// the named target is owned and destroyed by the compositor
	p.target = nil
}

func (p *ShadowPass) caster(ctx *Context) *engine.DirectionalLight {
	if ctx.Lights != nil {
		if dl := ctx.Lights.FirstDirectional(); dl != nil {
			return dl
		}
	}
	return engine.NewDirectionalLight()
}

// lightSpace frames an orthographic volume around the camera target from
// the caster's direction.
func lightSpace(caster *engine.DirectionalLight, ctx *Context) (view, proj math32.Matrix4) {
	center := math32.Vector3{}
	if ctx.Camera != nil {
		center = ctx.Camera.Target
	}
	dir := caster.Direction.Normal()
	eye := center.Sub(dir.MulScalar(caster.ShadowDistance))

	up := math32.Vec3(0, 1, 0)
	if math32.Abs(dir.Dot(up)) > 0.99 {
		up = math32.Vec3(0, 0, 1)
	}

	var lookq math32.Quat
	lookq.SetFromRotationMatrix(math32.NewLookAt(eye, center, up))
	var pose math32.Matrix4
	pose.SetTransform(eye, lookq, math32.Vec3(1, 1, 1))
	if inv, err := pose.Inverse(); err == nil {
		view = *inv
	} else {
		view.SetIdentity()
	}

	extent := 2 * caster.ShadowDistance
	proj.SetOrthographic(extent, extent, shadowNear, shadowFar)
	return view, proj
}

// drawDepth renders every enabled renderable with the depth-only shader,
// transparent materials included so they still cast.
func (p *ShadowPass) drawDepth(ctx *Context, view, proj math32.Matrix4) {
	dev := ctx.Device
	sh := p.shader

	sh.Bind()
	sh.SetMat4("matView", view)
	sh.SetMat4("matProjection", proj)

	dev.BeginScene3D(view, proj)
	defer dev.EndScene3D()

	ctx.Scene.Root().TraverseEnabled(func(n *engine.Node) bool {
		ren := n.Renderable
		if ren == nil {
			return true
		}
		world := n.Transform().WorldMatrix()
		sh.SetMat4("matModel", world)
		ren.Draw(dev, sh, world)
		return true
	})
}
