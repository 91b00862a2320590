// Package graphics defines the abstract device the render core draws
// through: shader, framebuffer, and texture factories plus the small set
// of fixed-function state toggles the passes need. Backends live in
// subpackages; the render core never imports one directly.
package graphics

import (
	"cogentcore.org/core/math32"
)

// FramebufferSpec describes an offscreen render target to create.
type FramebufferSpec struct {
	Width  int
	Height int

	// DepthOnly creates a depth-attachment-only framebuffer (shadow maps).
	DepthOnly bool

	// Bilinear selects linear filtering on the color attachment.
	Bilinear bool
}

// Device is the graphics backend the render core draws through. All GPU
// calls are fire-and-forget submissions on the calling thread; a Device is
// not safe for concurrent use.
type Device interface {
	// BeginFrame and EndFrame bracket one rendered frame.
	BeginFrame()
	EndFrame()

	// CreateShader compiles and links a shader from vertex and fragment
	// source. On failure it returns a nil Shader and an error; callers
	// are expected to keep the nil and degrade (passes no-op on nil).
	CreateShader(vertexSrc, fragmentSrc string) (Shader, error)

	// CreateFramebuffer creates an offscreen render target.
	CreateFramebuffer(spec FramebufferSpec) (Framebuffer, error)

	// BindScreen unbinds any framebuffer and restores the default target
	// with a full viewport of the given size.
	BindScreen(width, height int)

	// SetViewport sets the viewport rectangle on the current target.
	SetViewport(x, y, width, height int)

	// Clear clears the currently bound target to the given color, and the
	// depth buffer too when depth is set.
	Clear(color math32.Vector4, depth bool)

	// BeginScene3D and EndScene3D bracket 3D geometry submission with the
	// given view and projection matrices. Fullscreen-quad draws happen
	// outside this bracket.
	BeginScene3D(view, proj math32.Matrix4)
	EndScene3D()

	// Fixed-function state toggles.
	SetDepthTest(on bool)
	SetDepthWrite(on bool)
	SetBlend(on bool)
	SetWireframe(on bool)

	// SetCullFront culls front faces instead of back faces while on;
	// the shadow pass uses it to reduce peter-panning.
	SetCullFront(on bool)

	// DrawFullscreenQuad draws src over the whole current target with the
	// given shader bound (texture unit 0). Either argument nil is a no-op.
	DrawFullscreenQuad(shader Shader, src Texture)
}

// Shader is a compiled GPU program with typed, name-addressed uniforms.
// Setters on an invalid shader are no-ops.
type Shader interface {
	Bind()
	Valid() bool

	SetInt(name string, v int32)
	SetFloat(name string, v float32)
	SetVec2(name string, v math32.Vector2)
	SetVec3(name string, v math32.Vector3)
	SetVec4(name string, v math32.Vector4)
	SetMat3(name string, v math32.Matrix3)
	SetMat4(name string, v math32.Matrix4)

	// SetTexture binds tex on the given texture unit and points the named
	// sampler uniform at it.
	SetTexture(name string, tex Texture, slot int32)

	Destroy()
}

// Framebuffer is an offscreen render target. Clear must be called while
// the framebuffer is bound.
type Framebuffer interface {
	Bind()
	Unbind()
	Clear(color math32.Vector4, depth bool)
	Resize(width, height int)
	Size() (width, height int)

	// ColorTexture returns the color attachment for sampling in a later
	// pass; nil for depth-only targets.
	ColorTexture() Texture

	// DepthTexture returns the depth attachment, or nil if the target
	// uses a non-sampleable renderbuffer for depth.
	DepthTexture() Texture

	// BlitTo copies this framebuffer's color contents into dst.
	BlitTo(dst Framebuffer)

	Destroy()
}

// Texture is an attachment or loaded image usable as a sampler input.
type Texture interface {
	Handle() uint32
	Size() (width, height int)
}
