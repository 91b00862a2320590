package render

import (
	"log"

	"github.com/melihucar/pina-engine-sub000/internal/graphics"
)

// ShadowMapTarget is the named persistent target the shadow pass renders
// into and the scene pass samples from.
const ShadowMapTarget = "shadowMap"

// shadowMapSlot is the texture unit reserved for the shadow map so it never
// collides with material textures.
const shadowMapSlot = 10

// ScenePass draws the scene's node tree into the write buffer, opaque
// renderables first, then transparent ones. It owns the forward-lighting
// shaders and consumes the shadow pass's output when present.
type ScenePass struct {
	BasePass

	// PBR selects the Cook-Torrance shader instead of Blinn-Phong.
	PBR bool

	// ShadowsEnabled samples the shadow map when a shadow pass published
	// one this frame. Without it (or without the map) shading proceeds
	// unshadowed.
	ShadowsEnabled bool

	// ShadowBias offsets depth comparison to suppress acne.
	ShadowBias float32

	renderer SceneRenderer

	stdShader graphics.Shader
	pbrShader graphics.Shader
}

func NewScenePass() *ScenePass {
	p := &ScenePass{
		BasePass:       NewBasePass("scene", true),
		ShadowsEnabled: true,
		ShadowBias:     0.0015,
	}
	p.renderer.CullingEnabled = true
	return p
}

// Renderer exposes the traversal statistics of the last frame.
func (p *ScenePass) Renderer() *SceneRenderer { return &p.renderer }

func (p *ScenePass) Initialize(ctx *Context) error {
	std, err := ctx.Device.CreateShader(sceneVertexSrc, sceneFragmentSrc)
	if err != nil {
		return err
	}
	p.stdShader = std
	pbr, err := ctx.Device.CreateShader(sceneVertexSrc, pbrFragmentSrc)
	if err != nil {
		log.Printf("scene pass: pbr shader unavailable: %v", err)
	} else {
		p.pbrShader = pbr
	}
	return nil
}

func (p *ScenePass) Execute(ctx *Context) {
	sh := p.activeShader()
	if sh == nil {
		return
	}

	p.bindOutput(ctx)

	sh.Bind()
	p.uploadShadowState(ctx, sh)

	p.renderer.RenderOpaque(ctx.Device, ctx.Scene, ctx.Camera, sh, ctx.Aspect())
	p.renderer.RenderTransparent(ctx.Device, ctx.Scene, ctx.Camera, sh, ctx.Aspect())
}

func (p *ScenePass) Cleanup() {
	if p.stdShader != nil {
		p.stdShader.Destroy()
		p.stdShader = nil
	}
	if p.pbrShader != nil {
		p.pbrShader.Destroy()
		p.pbrShader = nil
	}
}

func (p *ScenePass) activeShader() graphics.Shader {
	if p.PBR && p.pbrShader != nil {
		return p.pbrShader
	}
	return p.stdShader
}

// uploadShadowState wires the shadow map and light-space matrix into the
// shader when every part of the chain is present, and explicitly disables
// shadow sampling otherwise so a stale map is never read.
func (p *ScenePass) uploadShadowState(ctx *Context, sh graphics.Shader) {
	if p.ShadowsEnabled && ctx.HasLightSpace {
		if shadowTarget, ok := ctx.Target(ShadowMapTarget); ok {
			if depth := shadowTarget.DepthTexture(); depth != nil {
				sh.SetInt("shadowsEnabled", 1)
				sh.SetMat4("matLightVP", ctx.LightSpace)
				sh.SetFloat("shadowBias", p.ShadowBias)
				sh.SetTexture("shadowMap", depth, shadowMapSlot)
				return
			}
		}
	}
	sh.SetInt("shadowsEnabled", 0)
}
