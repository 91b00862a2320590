package render

import (
	"cogentcore.org/core/math32"

	"github.com/melihucar/pina-engine-sub000/internal/graphics"
)

// FXAAQuality trades edge-search span for speed.
type FXAAQuality int

const (
	FXAALow FXAAQuality = iota
	FXAAMedium
	FXAAHigh
)

// FXAAPass applies fast approximate anti-aliasing to the read buffer. It is
// a pure post step and typically sits last in the chain.
type FXAAPass struct {
	BasePass

	Quality FXAAQuality

	shader graphics.Shader
}

func NewFXAAPass() *FXAAPass {
	return &FXAAPass{
		BasePass: NewBasePass("fxaa", true),
		Quality:  FXAAMedium,
	}
}

func (p *FXAAPass) Initialize(ctx *Context) error {
	sh, err := ctx.Device.CreateShader(quadVertexSrc, fxaaFragmentSrc)
	if err != nil {
		return err
	}
	p.shader = sh
	return nil
}

func (p *FXAAPass) Execute(ctx *Context) {
	if p.shader == nil || ctx.Read == nil {
		return
	}
	src := ctx.Read.ColorTexture()
	if src == nil {
		return
	}
	p.bindOutput(ctx)
	p.shader.Bind()
	p.shader.SetVec2("resolution", math32.Vec2(float32(ctx.Width), float32(ctx.Height)))
	p.shader.SetFloat("spanMax", p.spanMax())
	ctx.Device.DrawFullscreenQuad(p.shader, src)
}

func (p *FXAAPass) Cleanup() {
	if p.shader != nil {
		p.shader.Destroy()
		p.shader = nil
	}
}

func (p *FXAAPass) spanMax() float32 {
	switch p.Quality {
	case FXAALow:
		return 4
	case FXAAHigh:
		return 16
	default:
		return 8
	}
}
