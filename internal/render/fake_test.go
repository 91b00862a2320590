package render

import (
	"fmt"

	"cogentcore.org/core/math32"

	"github.com/melihucar/pina-engine-sub000/internal/graphics"
)

// fakeDevice records the calls the render core makes, for asserting pass
// order, target binding, and state changes without a GPU.
type fakeDevice struct {
	ops []string

	nextFB      int
	failShaders bool
}

func newFakeDevice() *fakeDevice { return &fakeDevice{} }

func (d *fakeDevice) log(format string, args ...any) {
	d.ops = append(d.ops, fmt.Sprintf(format, args...))
}

func (d *fakeDevice) BeginFrame() { d.log("beginFrame") }
func (d *fakeDevice) EndFrame()   { d.log("endFrame") }

func (d *fakeDevice) CreateShader(vertexSrc, fragmentSrc string) (graphics.Shader, error) {
	if d.failShaders {
		return nil, fmt.Errorf("fake: shader compile failed")
	}
	return &fakeShader{dev: d}, nil
}

func (d *fakeDevice) CreateFramebuffer(spec graphics.FramebufferSpec) (graphics.Framebuffer, error) {
	d.nextFB++
	return &fakeFramebuffer{
		dev:    d,
		id:     d.nextFB,
		width:  spec.Width,
		height: spec.Height,
		spec:   spec,
	}, nil
}

func (d *fakeDevice) BindScreen(width, height int) { d.log("bindScreen") }
func (d *fakeDevice) SetViewport(x, y, w, h int)   {}

func (d *fakeDevice) Clear(color math32.Vector4, depth bool) { d.log("clear") }

func (d *fakeDevice) BeginScene3D(view, proj math32.Matrix4) { d.log("beginScene3D") }
func (d *fakeDevice) EndScene3D()                            { d.log("endScene3D") }

func (d *fakeDevice) SetDepthTest(on bool)  { d.log("depthTest=%v", on) }
func (d *fakeDevice) SetDepthWrite(on bool) { d.log("depthWrite=%v", on) }
func (d *fakeDevice) SetBlend(on bool)      { d.log("blend=%v", on) }
func (d *fakeDevice) SetWireframe(on bool)  { d.log("wireframe=%v", on) }
func (d *fakeDevice) SetCullFront(on bool)  { d.log("cullFront=%v", on) }

func (d *fakeDevice) DrawFullscreenQuad(shader graphics.Shader, src graphics.Texture) {
	d.log("fullscreenQuad")
}

// has reports whether op was recorded.
func (d *fakeDevice) has(op string) bool {
	for _, o := range d.ops {
		if o == op {
			return true
		}
	}
	return false
}

// indexOf returns the first position of op, or -1.
func (d *fakeDevice) indexOf(op string) int {
	for i, o := range d.ops {
		if o == op {
			return i
		}
	}
	return -1
}

type fakeShader struct {
	dev      *fakeDevice
	uniforms map[string]any
}

func (s *fakeShader) set(name string, v any) {
	if s.uniforms == nil {
		s.uniforms = map[string]any{}
	}
	s.uniforms[name] = v
}

func (s *fakeShader) Bind()       {}
func (s *fakeShader) Valid() bool { return true }
func (s *fakeShader) Destroy()    {}

func (s *fakeShader) SetInt(name string, v int32)           { s.set(name, v) }
func (s *fakeShader) SetFloat(name string, v float32)       { s.set(name, v) }
func (s *fakeShader) SetVec2(name string, v math32.Vector2) { s.set(name, v) }
func (s *fakeShader) SetVec3(name string, v math32.Vector3) { s.set(name, v) }
func (s *fakeShader) SetVec4(name string, v math32.Vector4) { s.set(name, v) }
func (s *fakeShader) SetMat3(name string, v math32.Matrix3) { s.set(name, v) }
func (s *fakeShader) SetMat4(name string, v math32.Matrix4) { s.set(name, v) }
func (s *fakeShader) SetTexture(name string, tex graphics.Texture, slot int32) {
	s.set(name, slot)
}

type fakeFramebuffer struct {
	dev       *fakeDevice
	id        int
	width     int
	height    int
	spec      graphics.FramebufferSpec
	destroyed bool
}

func (f *fakeFramebuffer) Bind()   { f.dev.log("bindFB:%d", f.id) }
func (f *fakeFramebuffer) Unbind() { f.dev.log("unbindFB:%d", f.id) }

func (f *fakeFramebuffer) Clear(color math32.Vector4, depth bool) {
	f.dev.log("clearFB:%d", f.id)
}

func (f *fakeFramebuffer) Resize(width, height int) {
	f.width, f.height = width, height
}

func (f *fakeFramebuffer) Size() (int, int) { return f.width, f.height }

func (f *fakeFramebuffer) ColorTexture() graphics.Texture {
	if f.spec.DepthOnly {
		return nil
	}
	return &fakeTexture{fb: f}
}

func (f *fakeFramebuffer) DepthTexture() graphics.Texture {
	return &fakeTexture{fb: f, depth: true}
}

func (f *fakeFramebuffer) BlitTo(dst graphics.Framebuffer) {
	f.dev.log("blit:%d", f.id)
}

func (f *fakeFramebuffer) Destroy() { f.destroyed = true }

type fakeTexture struct {
	fb    *fakeFramebuffer
	depth bool
}

func (t *fakeTexture) Handle() uint32   { return uint32(t.fb.id) }
func (t *fakeTexture) Size() (int, int) { return t.fb.width, t.fb.height }

// fakeRenderable counts its draws.
type fakeRenderable struct {
	mat   graphics.Material
	draws int

	center math32.Vector3
	radius float32
}

func (r *fakeRenderable) Material() graphics.Material { return r.mat }

func (r *fakeRenderable) Draw(dev graphics.Device, sh graphics.Shader, world math32.Matrix4) {
	r.draws++
	if fd, ok := dev.(*fakeDevice); ok {
		fd.log("draw")
	}
}

func (r *fakeRenderable) BoundingSphere() (math32.Vector3, float32) {
	return r.center, r.radius
}

// recordPass is a minimal pass that remembers whether the compositor forced
// it to the screen and which buffers it saw.
type recordPass struct {
	BasePass
	executions  int
	sawForced   []bool
	sawReadIDs  []int
	sawWriteIDs []int
}

func newRecordPass(name string, needsSwap bool) *recordPass {
	return &recordPass{BasePass: NewBasePass(name, needsSwap)}
}

func (p *recordPass) Execute(ctx *Context) {
	p.executions++
	p.sawForced = append(p.sawForced, ctx.forceScreen)
	p.sawReadIDs = append(p.sawReadIDs, fbID(ctx.Read))
	p.sawWriteIDs = append(p.sawWriteIDs, fbID(ctx.Write))
}

func fbID(fb graphics.Framebuffer) int {
	if f, ok := fb.(*fakeFramebuffer); ok {
		return f.id
	}
	return 0
}
