package rgl

import (
	"fmt"

	"cogentcore.org/core/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/melihucar/pina-engine-sub000/internal/graphics"
)

// texture wraps a raylib texture attachment.
type texture struct {
	tex rl.Texture2D
}

func (t *texture) Handle() uint32 {
	return t.tex.ID
}

func (t *texture) Size() (int, int) {
	return int(t.tex.Width), int(t.tex.Height)
}

// framebuffer is an offscreen target: either a standard color+depth render
// texture or a depth-only framebuffer for shadow maps.
type framebuffer struct {
	dev       *Device
	rt        rl.RenderTexture2D
	width     int
	height    int
	depthOnly bool
	bilinear  bool
}

func newFramebuffer(dev *Device, spec graphics.FramebufferSpec) (*framebuffer, error) {
	f := &framebuffer{
		dev:       dev,
		width:     spec.Width,
		height:    spec.Height,
		depthOnly: spec.DepthOnly,
		bilinear:  spec.Bilinear,
	}
	if err := f.create(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *framebuffer) create() error {
	if f.depthOnly {
		rt, err := loadDepthFramebuffer(int32(f.width), int32(f.height))
		if err != nil {
			return err
		}
		f.rt = rt
		return nil
	}
	rt := rl.LoadRenderTexture(int32(f.width), int32(f.height))
	if rt.ID == 0 {
		return fmt.Errorf("framebuffer %dx%d incomplete", f.width, f.height)
	}
	if f.bilinear {
		rl.SetTextureFilter(rt.Texture, rl.FilterBilinear)
	}
	f.rt = rt
	return nil
}

func (f *framebuffer) Bind() {
	f.dev.bindTarget(f)
}

func (f *framebuffer) Unbind() {
	if f.dev.current == f {
		f.dev.bindTarget(nil)
	}
}

// Clear clears the target; it must be bound first.
func (f *framebuffer) Clear(color math32.Vector4, depth bool) {
	rl.ClearBackground(rlColor(color))
}

// Resize recreates the target at the new size; raylib render textures
// cannot be resized in place.
func (f *framebuffer) Resize(width, height int) {
	if width == f.width && height == f.height {
		return
	}
	f.Unbind()
	rl.UnloadRenderTexture(f.rt)
	f.width = width
	f.height = height
	if err := f.create(); err != nil {
		f.rt = rl.RenderTexture2D{}
	}
}

func (f *framebuffer) Size() (int, int) {
	return f.width, f.height
}

func (f *framebuffer) ColorTexture() graphics.Texture {
	if f.depthOnly {
		return nil
	}
	return &texture{tex: f.rt.Texture}
}

func (f *framebuffer) DepthTexture() graphics.Texture {
	return &texture{tex: f.rt.Depth}
}

// BlitTo copies this target's color image into dst with a plain textured
// draw, restoring the previous binding afterwards.
func (f *framebuffer) BlitTo(dst graphics.Framebuffer) {
	if dst == nil || f.depthOnly {
		return
	}
	prev := f.dev.current
	dst.Bind()
	w, h := dst.Size()
	rl.DrawTexturePro(f.rt.Texture,
		rl.Rectangle{Width: float32(f.rt.Texture.Width), Height: -float32(f.rt.Texture.Height)},
		rl.Rectangle{Width: float32(w), Height: float32(h)},
		rl.Vector2{}, 0, rl.White)
	f.dev.bindTarget(prev)
}

func (f *framebuffer) Destroy() {
	f.Unbind()
	rl.UnloadRenderTexture(f.rt)
	f.rt = rl.RenderTexture2D{}
}

// loadDepthFramebuffer creates a framebuffer with a sampleable depth
// texture and no color attachment, for shadow mapping.
func loadDepthFramebuffer(width, height int32) (rl.RenderTexture2D, error) {
	target := rl.RenderTexture2D{}

	target.ID = rl.LoadFramebuffer()
	target.Texture.Width = width
	target.Texture.Height = height

	if target.ID == 0 {
		return target, fmt.Errorf("depth framebuffer %dx%d: fbo creation failed", width, height)
	}

	rl.EnableFramebuffer(target.ID)

	target.Depth.ID = rl.LoadTextureDepth(width, height, false)
	target.Depth.Width = width
	target.Depth.Height = height
	target.Depth.Format = 19
	target.Depth.Mipmaps = 1

	rl.FramebufferAttach(target.ID, target.Depth.ID, rl.AttachmentDepth, rl.AttachmentTexture2d, 0)

	rl.DisableFramebuffer()

	return target, nil
}
