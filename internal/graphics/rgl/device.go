// Package rgl implements the graphics device abstraction over raylib.
package rgl

import (
	"fmt"
	"log"

	"cogentcore.org/core/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/melihucar/pina-engine-sub000/internal/graphics"
)

// Device is the raylib-backed graphics device. It tracks the currently
// bound framebuffer so that texture-mode brackets stay balanced when
// passes bind targets back to back.
type Device struct {
	current   *framebuffer
	wireframe bool
	inScene   bool
}

// New returns a device. The raylib window (GL context) must already exist.
func New() *Device {
	return &Device{}
}

func (d *Device) BeginFrame() {
	rl.BeginDrawing()
}

func (d *Device) EndFrame() {
	// force-unbind in case a pass left an offscreen target bound
	d.bindTarget(nil)
	rl.EndDrawing()
}

// CreateShader compiles a shader from source. On failure the error is
// logged and a nil shader returned; passes holding a nil shader execute
// as no-ops rather than aborting the chain.
func (d *Device) CreateShader(vertexSrc, fragmentSrc string) (graphics.Shader, error) {
	sh := rl.LoadShaderFromMemory(vertexSrc, fragmentSrc)
	if !rl.IsShaderValid(sh) {
		err := fmt.Errorf("rgl: shader compile/link failed")
		log.Printf("rgl: %v", err)
		return nil, err
	}
	return newShader(sh), nil
}

// CreateFramebuffer creates an offscreen target: a standard color+depth
// render texture, or a depth-only framebuffer for shadow maps.
func (d *Device) CreateFramebuffer(spec graphics.FramebufferSpec) (graphics.Framebuffer, error) {
	f, err := newFramebuffer(d, spec)
	if err != nil {
		log.Printf("rgl: %v", err)
		return nil, err
	}
	return f, nil
}

func (d *Device) BindScreen(width, height int) {
	d.bindTarget(nil)
	rl.Viewport(0, 0, int32(width), int32(height))
}

func (d *Device) SetViewport(x, y, width, height int) {
	rl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

// Clear clears the current target. raylib clears color and depth together;
// the depth flag exists for backends that can separate them.
func (d *Device) Clear(color math32.Vector4, depth bool) {
	rl.ClearBackground(rlColor(color))
}

// BeginScene3D enters 3D submission with explicit view and projection
// matrices, overriding the mode-3D defaults the way the shadow renderer
// overrides its orthographic projection.
func (d *Device) BeginScene3D(view, proj math32.Matrix4) {
	rl.BeginMode3D(rl.Camera3D{
		Position:   rl.NewVector3(0, 0, 10),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	})
	rl.SetMatrixProjection(rlMatrix(proj))
	rl.SetMatrixModelview(rlMatrix(view))
	if d.wireframe {
		rl.EnableWireMode()
	}
	d.inScene = true
}

func (d *Device) EndScene3D() {
	if !d.inScene {
		return
	}
	if d.wireframe {
		rl.DisableWireMode()
	}
	rl.EndMode3D()
	d.inScene = false
}

func (d *Device) SetDepthTest(on bool) {
	if on {
		rl.EnableDepthTest()
	} else {
		rl.DisableDepthTest()
	}
}

func (d *Device) SetDepthWrite(on bool) {
	if on {
		rl.EnableDepthMask()
	} else {
		rl.DisableDepthMask()
	}
}

func (d *Device) SetBlend(on bool) {
	if on {
		rl.EnableColorBlend()
	} else {
		rl.DisableColorBlend()
	}
}

func (d *Device) SetWireframe(on bool) {
	d.wireframe = on
}

func (d *Device) SetCullFront(on bool) {
	if on {
		rl.SetCullFace(0)
	} else {
		rl.SetCullFace(1)
	}
}

// DrawFullscreenQuad draws src across the current target with the shader
// bound. Render textures are stored bottom-up, so the source rect flips Y.
func (d *Device) DrawFullscreenQuad(shader graphics.Shader, src graphics.Texture) {
	if shader == nil || src == nil {
		return
	}
	rsh, ok := shader.(*Shader)
	if !ok || !rsh.Valid() {
		return
	}
	tex := rlTexture(src)
	w, h := d.targetSize()

	rl.BeginShaderMode(rsh.sh)
	rl.DrawTexturePro(tex,
		rl.Rectangle{Width: float32(tex.Width), Height: -float32(tex.Height)},
		rl.Rectangle{Width: float32(w), Height: float32(h)},
		rl.Vector2{}, 0, rl.White)
	rl.EndShaderMode()
}

func (d *Device) targetSize() (int, int) {
	if d.current != nil {
		return d.current.width, d.current.height
	}
	return rl.GetRenderWidth(), rl.GetRenderHeight()
}

// bindTarget switches the active render target, closing the previous
// texture-mode bracket first so Begin/End pairs stay balanced.
func (d *Device) bindTarget(f *framebuffer) {
	if d.current == f {
		return
	}
	if d.current != nil {
		rl.EndTextureMode()
	}
	if f != nil {
		rl.BeginTextureMode(f.rt)
	}
	d.current = f
}

func rlColor(v math32.Vector4) rl.Color {
	return rl.NewColor(
		uint8(math32.Clamp(v.X, 0, 1)*255),
		uint8(math32.Clamp(v.Y, 0, 1)*255),
		uint8(math32.Clamp(v.Z, 0, 1)*255),
		uint8(math32.Clamp(v.W, 0, 1)*255),
	)
}

// rlMatrix converts a column-major math32 matrix to raylib's struct form.
func rlMatrix(m math32.Matrix4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

// rlTexture recovers the underlying raylib texture from a graphics.Texture,
// reconstructing one from the handle if it came from another source.
func rlTexture(t graphics.Texture) rl.Texture2D {
	if rt, ok := t.(*texture); ok {
		return rt.tex
	}
	w, h := t.Size()
	return rl.Texture2D{
		ID:      t.Handle(),
		Width:   int32(w),
		Height:  int32(h),
		Mipmaps: 1,
		Format:  rl.UncompressedR8g8b8a8,
	}
}
