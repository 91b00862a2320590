package render

import (
	"cogentcore.org/core/math32"
)

// Pass is one unit of GPU work in the compositor's chain. Lifecycle:
// Initialize once when added, Execute every enabled frame, Resize on
// viewport changes, Cleanup once on removal.
type Pass interface {
	Name() string

	Enabled() bool
	SetEnabled(on bool)

	// NeedsSwap tells the compositor to rotate the ping-pong read/write
	// roles after this pass executes. Passes never rotate the buffers
	// themselves.
	NeedsSwap() bool

	// RenderToScreen forces output to the default framebuffer instead of
	// the write buffer. The compositor also forces it for the last
	// enabled pass of a frame regardless of this value.
	RenderToScreen() bool
	SetRenderToScreen(on bool)

	Initialize(ctx *Context) error
	Execute(ctx *Context)
	Resize(width, height int)
	Cleanup()
}

// BasePass carries the state and clear policy shared by every pass.
// Concrete passes embed it and override the lifecycle methods they need.
type BasePass struct {
	name           string
	enabled        bool
	needsSwap      bool
	renderToScreen bool

	// Clear policy applied by bindOutput on entry.
	Clear      bool
	ClearColor math32.Vector4
	ClearDepth bool
}

// NewBasePass returns an enabled pass shell with the given swap policy.
func NewBasePass(name string, needsSwap bool) BasePass {
	return BasePass{
		name:       name,
		enabled:    true,
		needsSwap:  needsSwap,
		ClearDepth: true,
	}
}

func (p *BasePass) Name() string              { return p.name }
func (p *BasePass) Enabled() bool             { return p.enabled }
func (p *BasePass) SetEnabled(on bool)        { p.enabled = on }
func (p *BasePass) NeedsSwap() bool           { return p.needsSwap }
func (p *BasePass) RenderToScreen() bool      { return p.renderToScreen }
func (p *BasePass) SetRenderToScreen(on bool) { p.renderToScreen = on }

// Initialize by default needs no resources.
func (p *BasePass) Initialize(ctx *Context) error { return nil }

// Resize by default holds no size-dependent resources.
func (p *BasePass) Resize(width, height int) {}

// Cleanup by default holds no resources.
func (p *BasePass) Cleanup() {}

// bindOutput binds the pass's output target: the screen when the pass
// renders to screen (stored flag or compositor terminal forcing),
// otherwise the current write buffer. Applies the clear policy.
func (p *BasePass) bindOutput(ctx *Context) {
	if p.renderToScreen || ctx.forceScreen || ctx.Write == nil {
		ctx.Device.BindScreen(ctx.Width, ctx.Height)
		if p.Clear {
			ctx.Device.Clear(p.ClearColor, p.ClearDepth)
		}
		return
	}
	ctx.Write.Bind()
	if p.Clear {
		ctx.Write.Clear(p.ClearColor, p.ClearDepth)
	}
}
