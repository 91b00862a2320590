package render

import (
	"fmt"
	"log"

	"github.com/melihucar/pina-engine-sub000/internal/camera"
	"github.com/melihucar/pina-engine-sub000/internal/engine"
	"github.com/melihucar/pina-engine-sub000/internal/graphics"
)

// Compositor owns the pass chain, the ping-pong framebuffer pair, and the
// named persistent render targets. It is the only place the read/write roles
// rotate, and it forces the last enabled pass of every frame to the screen.
type Compositor struct {
	dev    graphics.Device
	width  int
	height int

	passes []Pass

	bufA graphics.Framebuffer
	bufB graphics.Framebuffer

	targets map[string]graphics.Framebuffer

	frame uint64
	time  float32
}

func NewCompositor(dev graphics.Device, width, height int) (*Compositor, error) {
	spec := graphics.FramebufferSpec{Width: width, Height: height}
	a, err := dev.CreateFramebuffer(spec)
	if err != nil {
		return nil, fmt.Errorf("compositor: ping buffer: %w", err)
	}
	b, err := dev.CreateFramebuffer(spec)
	if err != nil {
		a.Destroy()
		return nil, fmt.Errorf("compositor: pong buffer: %w", err)
	}
	return &Compositor{
		dev:     dev,
		width:   width,
		height:  height,
		bufA:    a,
		bufB:    b,
		targets: make(map[string]graphics.Framebuffer),
	}, nil
}

// AddPass appends the pass to the chain and initializes it once.
func (c *Compositor) AddPass(p Pass) error {
	return c.insert(len(c.passes), p)
}

// InsertPass places the pass at the given chain position, clamped to the
// valid range.
func (c *Compositor) InsertPass(index int, p Pass) error {
	if index < 0 {
		index = 0
	}
	if index > len(c.passes) {
		index = len(c.passes)
	}
	return c.insert(index, p)
}

func (c *Compositor) insert(index int, p Pass) error {
	ctx := c.newContext(nil, nil, 0)
	if err := p.Initialize(ctx); err != nil {
		return fmt.Errorf("compositor: initialize pass %q: %w", p.Name(), err)
	}
	c.passes = append(c.passes, nil)
	copy(c.passes[index+1:], c.passes[index:])
	c.passes[index] = p
	return nil
}

// RemovePass removes the named pass from the chain and cleans it up.
// Unknown names are no-ops.
func (c *Compositor) RemovePass(name string) {
	for i, p := range c.passes {
		if p.Name() == name {
			p.Cleanup()
			c.passes = append(c.passes[:i], c.passes[i+1:]...)
			return
		}
	}
}

// Pass returns the named pass, or nil.
func (c *Compositor) Pass(name string) Pass {
	for _, p := range c.passes {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

// Passes returns the chain in execution order.
func (c *Compositor) Passes() []Pass { return c.passes }

// PassAs returns the named pass as the concrete type T.
func PassAs[T Pass](c *Compositor, name string) (T, bool) {
	p, ok := c.Pass(name).(T)
	return p, ok
}

// CreateRenderTarget creates (or returns the existing) named target. Named
// targets live outside the ping-pong rotation and keep their size on Resize.
func (c *Compositor) CreateRenderTarget(name string, spec graphics.FramebufferSpec) (graphics.Framebuffer, error) {
	if fb, ok := c.targets[name]; ok {
		return fb, nil
	}
	fb, err := c.dev.CreateFramebuffer(spec)
	if err != nil {
		return nil, fmt.Errorf("compositor: target %q: %w", name, err)
	}
	c.targets[name] = fb
	return fb, nil
}

// RenderTarget looks up a named target.
func (c *Compositor) RenderTarget(name string) (graphics.Framebuffer, bool) {
	fb, ok := c.targets[name]
	return fb, ok
}

// RemoveRenderTarget destroys and forgets the named target.
func (c *Compositor) RemoveRenderTarget(name string) {
	if fb, ok := c.targets[name]; ok {
		fb.Destroy()
		delete(c.targets, name)
	}
}

// Render executes the enabled passes in order. Roles start each frame with
// bufA as read and bufB as write; after any pass that needs a swap the roles
// rotate. The last enabled pass is forced to the screen so a frame always
// produces a visible image.
func (c *Compositor) Render(scene *engine.Scene, cam *camera.Camera, dt float32) {
	c.frame++
	c.time += dt
	ctx := c.newContext(scene, cam, dt)

	last := -1
	for i, p := range c.passes {
		if p.Enabled() {
			last = i
		}
	}

	for i, p := range c.passes {
		if !p.Enabled() {
			continue
		}
		ctx.forceScreen = i == last
		p.Execute(ctx)
		if p.NeedsSwap() {
			ctx.Read, ctx.Write = ctx.Write, ctx.Read
		}
	}
}

// Resize resizes the ping-pong pair and notifies every pass. Named targets
// keep their size; passes that own derived buffers handle their own scaling
// in Resize.
func (c *Compositor) Resize(width, height int) {
	if width == c.width && height == c.height {
		return
	}
	c.width = width
	c.height = height
	c.bufA.Resize(width, height)
	c.bufB.Resize(width, height)
	for _, p := range c.passes {
		p.Resize(width, height)
	}
}

// Cleanup releases every pass and every framebuffer the compositor owns.
func (c *Compositor) Cleanup() {
	for _, p := range c.passes {
		p.Cleanup()
	}
	c.passes = nil
	for name, fb := range c.targets {
		fb.Destroy()
		delete(c.targets, name)
	}
	if c.bufA != nil {
		c.bufA.Destroy()
		c.bufA = nil
	}
	if c.bufB != nil {
		c.bufB.Destroy()
		c.bufB = nil
	}
}

func (c *Compositor) newContext(scene *engine.Scene, cam *camera.Camera, dt float32) *Context {
	ctx := &Context{
		Device: c.dev,
		Scene:  scene,
		Camera: cam,
		Frame:  c.frame,
		Time:   c.time,
		Delta:  dt,
		Width:  c.width,
		Height: c.height,
		Read:   c.bufA,
		Write:  c.bufB,
		comp:   c,
	}
	if scene != nil {
		ctx.Lights = scene.Lights
		if cam == nil {
			ctx.Camera = scene.Camera
		}
	}
	return ctx
}

// logInitError is a helper for hosts that add optional passes and only want
// a log line on failure.
func logInitError(name string, err error) {
	if err != nil {
		log.Printf("render: pass %q failed to initialize: %v", name, err)
	}
}
