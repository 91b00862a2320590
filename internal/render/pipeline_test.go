package render

import (
	"testing"

	"cogentcore.org/core/math32"

	"github.com/melihucar/pina-engine-sub000/internal/engine"
	"github.com/melihucar/pina-engine-sub000/internal/graphics"
)

func newTestPipeline(t *testing.T) (*Pipeline, *fakeDevice) {
	t.Helper()
	dev := newFakeDevice()
	p, err := NewPipeline(dev, 640, 360)
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}
	return p, dev
}

func TestPipelineDefaultChainOrder(t *testing.T) {
	p, _ := newTestPipeline(t)
	defer p.Cleanup()

	want := []string{"clear", "shadow", "scene", "bloom", "tonemap", "fxaa"}
	passes := p.Compositor().Passes()
	if len(passes) != len(want) {
		t.Fatalf("Expected %d passes, got %d", len(want), len(passes))
	}
	for i, name := range want {
		if passes[i].Name() != name {
			t.Errorf("pass %d: expected %s, got %s", i, name, passes[i].Name())
		}
	}
}

func TestPipelineRenderBracketsFrame(t *testing.T) {
	p, dev := newTestPipeline(t)
	defer p.Cleanup()

	s, cam := testScene()
	addRenderable(s, "Cube", false)

	p.Render(s, cam, 0.016)

	if dev.ops[0] != "beginFrame" {
		t.Error("frame should start with BeginFrame")
	}
	if dev.ops[len(dev.ops)-1] != "endFrame" {
		t.Error("frame should finish with EndFrame")
	}
	if !dev.has("draw") {
		t.Error("the scene pass should draw the renderable")
	}
	if !dev.has("bindScreen") {
		t.Error("the terminal pass should land on the screen")
	}
}

func TestShadowPassPublishesLightSpace(t *testing.T) {
	comp, _ := newTestCompositor(t)
	defer comp.Cleanup()

	sp := NewShadowPass()
	if err := comp.AddPass(sp); err != nil {
		t.Fatalf("AddPass: %v", err)
	}
	if _, ok := comp.RenderTarget(ShadowMapTarget); !ok {
		t.Fatal("shadow pass should create the named shadow target on init")
	}

	s, cam := testScene()
	s.Lights.Add(engine.NewDirectionalLight())
	s.Update(0)

	ctx := comp.newContext(s, cam, 0.016)
	sp.Execute(ctx)

	if !ctx.HasLightSpace {
		t.Error("shadow pass should publish the light-space matrix")
	}
	var zero math32.Matrix4
	if ctx.LightSpace == zero {
		t.Error("published light-space matrix should not be zero")
	}
	if sp.NeedsSwap() {
		t.Error("the shadow pass renders to a named target and must not swap")
	}
}

func TestShadowPassCullsFrontFacesDuringDepthRender(t *testing.T) {
	comp, dev := newTestCompositor(t)
	defer comp.Cleanup()

	sp := NewShadowPass()
	comp.AddPass(sp)

	s, cam := testScene()
	addRenderable(s, "Caster", false)
	ctx := comp.newContext(s, cam, 0)
	sp.Execute(ctx)

	on := dev.indexOf("cullFront=true")
	off := dev.indexOf("cullFront=false")
	draw := dev.indexOf("draw")
	if on == -1 || off == -1 || draw == -1 {
		t.Fatalf("expected cull toggles around the depth draw, ops: %v", dev.ops)
	}
	if !(on < draw && draw < off) {
		t.Error("front-face culling should bracket the depth render")
	}
}

func TestScenePassShadowUniformsGated(t *testing.T) {
	comp, _ := newTestCompositor(t)
	defer comp.Cleanup()

	sp := NewScenePass()
	if err := comp.AddPass(sp); err != nil {
		t.Fatalf("AddPass: %v", err)
	}
	s, cam := testScene()
	addRenderable(s, "Cube", false)

	// no light-space published: shadows off in the shader
	ctx := comp.newContext(s, cam, 0)
	sp.Execute(ctx)
	sh := sp.stdShader.(*fakeShader)
	if got := sh.uniforms["shadowsEnabled"]; got != int32(0) {
		t.Errorf("without a shadow map, shadowsEnabled should be 0, got %v", got)
	}

	// light space present but no target: still off
	ctx.HasLightSpace = true
	sp.Execute(ctx)
	if got := sh.uniforms["shadowsEnabled"]; got != int32(0) {
		t.Error("without the named target, shadow sampling should stay off")
	}

	// full chain present: on, with matrix, bias, and sampler bound
	comp.CreateRenderTarget(ShadowMapTarget, graphics.FramebufferSpec{
		Width: 512, Height: 512, DepthOnly: true,
	})
	sp.Execute(ctx)
	if got := sh.uniforms["shadowsEnabled"]; got != int32(1) {
		t.Error("with map and matrix present, shadow sampling should be on")
	}
	if _, ok := sh.uniforms["matLightVP"]; !ok {
		t.Error("the light-space matrix should be uploaded")
	}
	if got := sh.uniforms["shadowMap"]; got != int32(shadowMapSlot) {
		t.Errorf("shadow map should bind on slot %d, got %v", shadowMapSlot, got)
	}
}

func TestScenePassDrawsOpaqueThenTransparent(t *testing.T) {
	comp, dev := newTestCompositor(t)
	defer comp.Cleanup()

	sp := NewScenePass()
	comp.AddPass(sp)

	s, cam := testScene()
	addRenderable(s, "Opaque", false)
	addRenderable(s, "Glass", true)

	ctx := comp.newContext(s, cam, 0)
	sp.Execute(ctx)

	firstBlendOn := dev.indexOf("blend=true")
	firstDraw := dev.indexOf("draw")
	if firstBlendOn == -1 || firstDraw == -1 {
		t.Fatalf("expected draws and a blend toggle, ops: %v", dev.ops)
	}
	if firstDraw > firstBlendOn {
		t.Error("the opaque draw should happen before blending is enabled")
	}
}

func TestPipelineToggles(t *testing.T) {
	p, _ := newTestPipeline(t)
	defer p.Cleanup()

	p.SetBloomEnabled(false)
	if p.BloomPass().Enabled() {
		t.Error("SetBloomEnabled(false) should disable the bloom pass")
	}

	p.SetShadowsEnabled(false)
	if p.ShadowPass().Enabled() {
		t.Error("SetShadowsEnabled(false) should disable the shadow pass")
	}
	if p.ScenePass().ShadowsEnabled {
		t.Error("SetShadowsEnabled(false) should stop shadow sampling too")
	}

	p.SetPBR(true)
	if !p.ScenePass().PBR {
		t.Error("SetPBR should switch the scene pass")
	}

	p.SetToneMapping(ToneMapReinhard, 1.4)
	tm, ok := PassAs[*ToneMapPass](p.Compositor(), "tonemap")
	if !ok || tm.Operator != ToneMapReinhard || tm.Exposure != 1.4 {
		t.Error("SetToneMapping should update the pass parameters")
	}

	p.SetBloomParams(0.7, 1.2, 6)
	if p.BloomPass().Threshold != 0.7 || p.BloomPass().Iterations != 6 {
		t.Error("SetBloomParams should update the pass parameters")
	}
}

func TestDisablingTailPassesStillHitsScreen(t *testing.T) {
	p, dev := newTestPipeline(t)
	defer p.Cleanup()

	p.SetFXAAEnabled(false)
	p.SetToneMappingEnabled(false)
	p.SetBloomEnabled(false)

	s, cam := testScene()
	addRenderable(s, "Cube", false)
	p.Render(s, cam, 0.016)

	if !dev.has("bindScreen") {
		t.Error("with the tail disabled, the scene pass must be forced to screen")
	}
}

func TestShaderPassUploadsUniforms(t *testing.T) {
	comp, _ := newTestCompositor(t)
	defer comp.Cleanup()

	sp := NewShaderPass("vignette", "", "fragment source")
	sp.SetUniform("strength", graphics.Uniform1f(0.5))
	if err := comp.AddPass(sp); err != nil {
		t.Fatalf("AddPass: %v", err)
	}

	ctx := comp.newContext(nil, nil, 0)
	sp.Execute(ctx)

	sh := sp.shader.(*fakeShader)
	if got := sh.uniforms["strength"]; got != float32(0.5) {
		t.Errorf("staged uniform should upload before the draw, got %v", got)
	}
}

func TestBloomPassHalfResBuffersFollowResize(t *testing.T) {
	comp, _ := newTestCompositor(t)
	defer comp.Cleanup()

	bp := NewBloomPass()
	if err := comp.AddPass(bp); err != nil {
		t.Fatalf("AddPass: %v", err)
	}

	w, h := bp.blurA.Size()
	if w != 320 || h != 180 {
		t.Errorf("blur buffers should be half resolution, got %dx%d", w, h)
	}

	comp.Resize(1920, 1080)
	w, h = bp.blurA.Size()
	if w != 960 || h != 540 {
		t.Errorf("blur buffers should track resize at half resolution, got %dx%d", w, h)
	}
}

func TestPipelineSurvivesShaderFailures(t *testing.T) {
	dev := newFakeDevice()
	dev.failShaders = true

	// every pass needing a shader fails to initialize; the scene pass is
	// required, so pipeline construction reports the error
	if _, err := NewPipeline(dev, 640, 360); err == nil {
		t.Error("pipeline should surface a scene shader failure")
	}
}
