package render

import (
	"github.com/melihucar/pina-engine-sub000/internal/graphics"
)

// ShaderPass runs an arbitrary fullscreen fragment shader over the read
// buffer. Hosts use it to splice custom post effects into the chain without
// writing a pass type.
type ShaderPass struct {
	BasePass

	vertexSrc   string
	fragmentSrc string
	shader      graphics.Shader
	ownsShader  bool

	uniforms map[string]graphics.UniformValue
}

// NewShaderPass compiles the given fragment source at Initialize time. An
// empty vertex source uses the built-in fullscreen quad vertex shader.
func NewShaderPass(name, vertexSrc, fragmentSrc string) *ShaderPass {
	if vertexSrc == "" {
		vertexSrc = quadVertexSrc
	}
	return &ShaderPass{
		BasePass:    NewBasePass(name, true),
		vertexSrc:   vertexSrc,
		fragmentSrc: fragmentSrc,
		ownsShader:  true,
	}
}

// NewShaderPassWith wraps an already-built shader. The caller keeps
// ownership; Cleanup will not destroy it.
func NewShaderPassWith(name string, sh graphics.Shader) *ShaderPass {
	return &ShaderPass{
		BasePass: NewBasePass(name, true),
		shader:   sh,
	}
}

// SetUniform stages a value uploaded before every Execute.
func (p *ShaderPass) SetUniform(name string, v graphics.UniformValue) {
	if p.uniforms == nil {
		p.uniforms = make(map[string]graphics.UniformValue)
	}
	p.uniforms[name] = v
}

func (p *ShaderPass) Initialize(ctx *Context) error {
	if p.shader != nil {
		return nil
	}
	sh, err := ctx.Device.CreateShader(p.vertexSrc, p.fragmentSrc)
	if err != nil {
		return err
	}
	p.shader = sh
	return nil
}

func (p *ShaderPass) Execute(ctx *Context) {
	if p.shader == nil || ctx.Read == nil {
		return
	}
	src := ctx.Read.ColorTexture()
	if src == nil {
		return
	}
	p.bindOutput(ctx)
	p.shader.Bind()
	for name, v := range p.uniforms {
		v.Apply(p.shader, name)
	}
	ctx.Device.DrawFullscreenQuad(p.shader, src)
}

func (p *ShaderPass) Cleanup() {
	if p.shader != nil && p.ownsShader {
		p.shader.Destroy()
	}
	p.shader = nil
}
