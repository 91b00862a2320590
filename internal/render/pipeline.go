package render

import (
	"cogentcore.org/core/math32"

	"github.com/melihucar/pina-engine-sub000/internal/camera"
	"github.com/melihucar/pina-engine-sub000/internal/engine"
	"github.com/melihucar/pina-engine-sub000/internal/graphics"
)

// Pipeline is the high-level façade over the compositor with the standard
// chain preassembled: clear, shadow, scene, bloom, tone mapping, FXAA.
// Hosts that need a custom chain use the Compositor directly.
type Pipeline struct {
	dev  graphics.Device
	comp *Compositor

	clear   *ClearPass
	shadow  *ShadowPass
	scene   *ScenePass
	bloom   *BloomPass
	tonemap *ToneMapPass
	fxaa    *FXAAPass
}

// NewPipeline builds the default chain at the given viewport size. A pass
// that fails to initialize is logged and left out rather than failing the
// whole pipeline; the scene pass is the exception and aborts construction.
func NewPipeline(dev graphics.Device, width, height int) (*Pipeline, error) {
	comp, err := NewCompositor(dev, width, height)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		dev:     dev,
		comp:    comp,
		clear:   NewClearPass(math32.Vec4(0.1, 0.1, 0.12, 1)),
		shadow:  NewShadowPass(),
		scene:   NewScenePass(),
		bloom:   NewBloomPass(),
		tonemap: NewToneMapPass(),
		fxaa:    NewFXAAPass(),
	}

	if err := comp.AddPass(p.clear); err != nil {
		comp.Cleanup()
		return nil, err
	}
	if err := comp.AddPass(p.shadow); err != nil {
		logInitError(p.shadow.Name(), err)
		p.shadow = nil
	}
	if err := comp.AddPass(p.scene); err != nil {
		comp.Cleanup()
		return nil, err
	}
	if err := comp.AddPass(p.bloom); err != nil {
		logInitError(p.bloom.Name(), err)
		p.bloom = nil
	}
	if err := comp.AddPass(p.tonemap); err != nil {
		logInitError(p.tonemap.Name(), err)
		p.tonemap = nil
	}
	if err := comp.AddPass(p.fxaa); err != nil {
		logInitError(p.fxaa.Name(), err)
		p.fxaa = nil
	}
	return p, nil
}

// Compositor exposes the underlying chain for pass insertion and named
// render targets.
func (p *Pipeline) Compositor() *Compositor { return p.comp }

// Render updates the scene and runs the full chain for one frame.
func (p *Pipeline) Render(scene *engine.Scene, cam *camera.Camera, dt float32) {
	if scene != nil {
		scene.Update(dt)
	}
	p.dev.BeginFrame()
	p.comp.Render(scene, cam, dt)
	p.dev.EndFrame()
}

// Resize propagates a viewport change through the chain.
func (p *Pipeline) Resize(width, height int) {
	p.comp.Resize(width, height)
}

// Cleanup releases every pass and buffer.
func (p *Pipeline) Cleanup() {
	p.comp.Cleanup()
}

// SetClearColor sets the background color of the frame.
func (p *Pipeline) SetClearColor(c math32.Vector4) {
	p.clear.ClearColor = c
}

// SetShadowsEnabled toggles both shadow map rendering and sampling.
func (p *Pipeline) SetShadowsEnabled(on bool) {
	if p.shadow != nil {
		p.shadow.SetEnabled(on)
	}
	p.scene.ShadowsEnabled = on
}

// SetShadowBias tunes the depth comparison offset.
func (p *Pipeline) SetShadowBias(bias float32) {
	p.scene.ShadowBias = bias
}

// SetPBR switches the scene pass between Blinn-Phong and Cook-Torrance
// shading.
func (p *Pipeline) SetPBR(on bool) {
	p.scene.PBR = on
}

// SetWireframe draws geometry as lines.
func (p *Pipeline) SetWireframe(on bool) {
	p.dev.SetWireframe(on)
}

// SetCullingEnabled toggles frustum culling in the scene pass.
func (p *Pipeline) SetCullingEnabled(on bool) {
	p.scene.Renderer().CullingEnabled = on
}

// SetBloomEnabled toggles the bloom pass.
func (p *Pipeline) SetBloomEnabled(on bool) {
	if p.bloom != nil {
		p.bloom.SetEnabled(on)
	}
}

// SetBloomParams sets highlight threshold, composite intensity, and blur
// rounds.
func (p *Pipeline) SetBloomParams(threshold, intensity float32, iterations int) {
	if p.bloom == nil {
		return
	}
	p.bloom.Threshold = threshold
	p.bloom.Intensity = intensity
	p.bloom.Iterations = iterations
}

// SetToneMapping selects the operator and exposure; ToneMapExposure and
// ToneMapACES both use the exposure value.
func (p *Pipeline) SetToneMapping(op ToneMapOperator, exposure float32) {
	if p.tonemap == nil {
		return
	}
	p.tonemap.Operator = op
	p.tonemap.Exposure = exposure
}

// SetToneMappingEnabled toggles the tone mapping pass.
func (p *Pipeline) SetToneMappingEnabled(on bool) {
	if p.tonemap != nil {
		p.tonemap.SetEnabled(on)
	}
}

// SetFXAAEnabled toggles the anti-aliasing pass.
func (p *Pipeline) SetFXAAEnabled(on bool) {
	if p.fxaa != nil {
		p.fxaa.SetEnabled(on)
	}
}

// SetFXAAQuality selects the edge search span.
func (p *Pipeline) SetFXAAQuality(q FXAAQuality) {
	if p.fxaa != nil {
		p.fxaa.Quality = q
	}
}

// ScenePass returns the scene pass for direct tuning.
func (p *Pipeline) ScenePass() *ScenePass { return p.scene }

// ShadowPass returns the shadow pass, or nil when it failed to initialize.
func (p *Pipeline) ShadowPass() *ShadowPass { return p.shadow }

// BloomPass returns the bloom pass, or nil when it failed to initialize.
func (p *Pipeline) BloomPass() *BloomPass { return p.bloom }
