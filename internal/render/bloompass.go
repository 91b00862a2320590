package render

import (
	"cogentcore.org/core/math32"

	"github.com/melihucar/pina-engine-sub000/internal/graphics"
)

// BloomPass extracts bright regions of the read buffer, blurs them at half
// resolution with a separable Gaussian, and composites the result back over
// the scene into the write buffer.
type BloomPass struct {
	BasePass

	// Threshold is the luminance above which pixels bloom.
	Threshold float32
	// Intensity scales the blurred highlights at composite time.
	Intensity float32
	// Iterations is the number of blur ping-pong rounds; each round is one
	// horizontal plus one vertical blur.
	Iterations int

	thresholdShader graphics.Shader
	blurShader      graphics.Shader
	compositeShader graphics.Shader

	// half-resolution blur pair, owned by the pass
	blurA graphics.Framebuffer
	blurB graphics.Framebuffer
}

func NewBloomPass() *BloomPass {
	return &BloomPass{
		BasePass:   NewBasePass("bloom", true),
		Threshold:  1.0,
		Intensity:  0.8,
		Iterations: 4,
	}
}

func (p *BloomPass) Initialize(ctx *Context) error {
	var err error
	if p.thresholdShader, err = ctx.Device.CreateShader(quadVertexSrc, thresholdFragmentSrc); err != nil {
		return err
	}
	if p.blurShader, err = ctx.Device.CreateShader(quadVertexSrc, blurFragmentSrc); err != nil {
		return err
	}
	if p.compositeShader, err = ctx.Device.CreateShader(quadVertexSrc, bloomCompositeFragmentSrc); err != nil {
		return err
	}
	return p.createBlurBuffers(ctx.Device, ctx.Width, ctx.Height)
}

func (p *BloomPass) Execute(ctx *Context) {
	if p.thresholdShader == nil || p.blurShader == nil || p.compositeShader == nil {
		return
	}
	if ctx.Read == nil || p.blurA == nil || p.blurB == nil {
		return
	}
	src := ctx.Read.ColorTexture()
	if src == nil {
		return
	}

	dev := ctx.Device

	// bright-pass into the first half-res buffer
	p.blurA.Bind()
	p.blurA.Clear(math32.Vec4(0, 0, 0, 1), false)
	p.thresholdShader.Bind()
	p.thresholdShader.SetFloat("threshold", p.Threshold)
	dev.DrawFullscreenQuad(p.thresholdShader, src)

	// separable blur, ping-ponging between the half-res pair
	w, h := p.blurA.Size()
	texel := math32.Vec2(1/float32(w), 1/float32(h))
	from, to := p.blurA, p.blurB
	for i := 0; i < p.Iterations*2; i++ {
		to.Bind()
		p.blurShader.Bind()
		p.blurShader.SetVec2("texelSize", texel)
		p.blurShader.SetInt("horizontal", int32(1-i%2))
		dev.DrawFullscreenQuad(p.blurShader, from.ColorTexture())
		from, to = to, from
	}

	// composite highlights over the untouched scene image
	p.bindOutput(ctx)
	p.compositeShader.Bind()
	p.compositeShader.SetFloat("bloomIntensity", p.Intensity)
	p.compositeShader.SetTexture("bloomBlur", from.ColorTexture(), 1)
	dev.DrawFullscreenQuad(p.compositeShader, src)
}

func (p *BloomPass) Resize(width, height int) {
	if p.blurA == nil {
		return
	}
	p.blurA.Resize(width/2, height/2)
	p.blurB.Resize(width/2, height/2)
}

func (p *BloomPass) Cleanup() {
	for _, sh := range []graphics.Shader{p.thresholdShader, p.blurShader, p.compositeShader} {
		if sh != nil {
			sh.Destroy()
		}
	}
	p.thresholdShader, p.blurShader, p.compositeShader = nil, nil, nil
	if p.blurA != nil {
		p.blurA.Destroy()
		p.blurA = nil
	}
	if p.blurB != nil {
		p.blurB.Destroy()
		p.blurB = nil
	}
}

func (p *BloomPass) createBlurBuffers(dev graphics.Device, width, height int) error {
	spec := graphics.FramebufferSpec{Width: width / 2, Height: height / 2, Bilinear: true}
	a, err := dev.CreateFramebuffer(spec)
	if err != nil {
		return err
	}
	b, err := dev.CreateFramebuffer(spec)
	if err != nil {
		a.Destroy()
		return err
	}
	p.blurA, p.blurB = a, b
	return nil
}
