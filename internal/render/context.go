// Package render implements the multi-pass rendering pipeline: scene
// traversal rendering, the render-pass chain with ping-pong framebuffers,
// and the compositor that drives them.
package render

import (
	"cogentcore.org/core/math32"

	"github.com/melihucar/pina-engine-sub000/internal/camera"
	"github.com/melihucar/pina-engine-sub000/internal/engine"
	"github.com/melihucar/pina-engine-sub000/internal/graphics"
)

// Context is the per-frame state threaded through each pass. The compositor
// repopulates it every frame; passes treat it as scratch valid only for the
// duration of one Execute call.
type Context struct {
	Device graphics.Device
	Scene  *engine.Scene
	Camera *camera.Camera
	Lights *engine.LightRegistry

	Frame uint64
	Time  float32
	Delta float32

	Width  int
	Height int

	// Read and Write are the current ping-pong roles. The compositor
	// rotates them after any pass that declares NeedsSwap.
	Read  graphics.Framebuffer
	Write graphics.Framebuffer

	// LightSpace is the shadow caster's view-projection matrix, published
	// by the shadow pass for the scene pass to consume. Valid only when
	// HasLightSpace is set this frame.
	LightSpace    math32.Matrix4
	HasLightSpace bool

	// forceScreen is set by the compositor on the last enabled pass so the
	// final image always lands on the real framebuffer.
	forceScreen bool

	targets map[string]graphics.Framebuffer
	comp    *Compositor
}

// Target looks up a named persistent render target. Missing targets simply
// report false; dependent features degrade for the frame.
func (c *Context) Target(name string) (graphics.Framebuffer, bool) {
	if c.comp != nil {
		return c.comp.RenderTarget(name)
	}
	fb, ok := c.targets[name]
	return fb, ok
}

// CreateTarget creates (or returns the existing) named persistent render
// target, owned by the compositor and living outside the ping-pong rotation.
func (c *Context) CreateTarget(name string, spec graphics.FramebufferSpec) (graphics.Framebuffer, error) {
	if c.comp != nil {
		return c.comp.CreateRenderTarget(name, spec)
	}
	if fb, ok := c.targets[name]; ok {
		return fb, nil
	}
	fb, err := c.Device.CreateFramebuffer(spec)
	if err != nil {
		return nil, err
	}
	if c.targets == nil {
		c.targets = make(map[string]graphics.Framebuffer)
	}
	c.targets[name] = fb
	return fb, nil
}

// Aspect returns the viewport aspect ratio.
func (c *Context) Aspect() float32 {
	if c.Height == 0 {
		return 1
	}
	return float32(c.Width) / float32(c.Height)
}
