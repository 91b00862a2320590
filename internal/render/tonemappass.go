package render

import (
	"github.com/melihucar/pina-engine-sub000/internal/graphics"
)

// ToneMapOperator selects the HDR-to-LDR curve.
type ToneMapOperator int32

const (
	ToneMapReinhard ToneMapOperator = iota
	ToneMapACES
	ToneMapExposure
)

// ToneMapPass maps the HDR read buffer to displayable range.
type ToneMapPass struct {
	BasePass

	Operator ToneMapOperator
	Exposure float32

	shader graphics.Shader
}

func NewToneMapPass() *ToneMapPass {
	return &ToneMapPass{
		BasePass: NewBasePass("tonemap", true),
		Operator: ToneMapACES,
		Exposure: 1.0,
	}
}

func (p *ToneMapPass) Initialize(ctx *Context) error {
	sh, err := ctx.Device.CreateShader(quadVertexSrc, tonemapFragmentSrc)
	if err != nil {
		return err
	}
	p.shader = sh
	return nil
}

func (p *ToneMapPass) Execute(ctx *Context) {
	if p.shader == nil || ctx.Read == nil {
		return
	}
	src := ctx.Read.ColorTexture()
	if src == nil {
		return
	}
	p.bindOutput(ctx)
	p.shader.Bind()
	p.shader.SetInt("operator", int32(p.Operator))
	p.shader.SetFloat("exposure", p.Exposure)
	ctx.Device.DrawFullscreenQuad(p.shader, src)
}

func (p *ToneMapPass) Cleanup() {
	if p.shader != nil {
		p.shader.Destroy()
		p.shader = nil
	}
}
