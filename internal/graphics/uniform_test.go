package graphics

import (
	"testing"

	"cogentcore.org/core/math32"
)

// recordShader records the last setter call per uniform name.
type recordShader struct {
	calls map[string]UniformValue
}

func newRecordShader() *recordShader {
	return &recordShader{calls: map[string]UniformValue{}}
}

func (s *recordShader) Bind()       {}
func (s *recordShader) Valid() bool { return true }
func (s *recordShader) Destroy()    {}

func (s *recordShader) SetInt(name string, v int32)     { s.calls[name] = Uniform1i(v) }
func (s *recordShader) SetFloat(name string, v float32) { s.calls[name] = Uniform1f(v) }
func (s *recordShader) SetVec2(name string, v math32.Vector2) {
	s.calls[name] = Uniform2f(v)
}
func (s *recordShader) SetVec3(name string, v math32.Vector3) {
	s.calls[name] = Uniform3f(v)
}
func (s *recordShader) SetVec4(name string, v math32.Vector4) {
	s.calls[name] = Uniform4f(v)
}
func (s *recordShader) SetMat3(name string, v math32.Matrix3) {
	s.calls[name] = UniformM3(v)
}
func (s *recordShader) SetMat4(name string, v math32.Matrix4) {
	s.calls[name] = UniformM4(v)
}
func (s *recordShader) SetTexture(name string, tex Texture, slot int32) {}

func TestUniformApplyDispatch(t *testing.T) {
	sh := newRecordShader()

	Uniform1i(7).Apply(sh, "count")
	Uniform1f(2.5).Apply(sh, "threshold")
	Uniform3f(math32.Vec3(1, 2, 3)).Apply(sh, "dir")
	Uniform4f(math32.Vec4(1, 0, 0, 1)).Apply(sh, "color")

	if got := sh.calls["count"]; got.Type != UniformInt || got.Int != 7 {
		t.Errorf("int dispatch wrong: %+v", got)
	}
	if got := sh.calls["threshold"]; got.Type != UniformFloat || got.Float != 2.5 {
		t.Errorf("float dispatch wrong: %+v", got)
	}
	if got := sh.calls["dir"]; got.Type != UniformVec3 || got.Vec3 != math32.Vec3(1, 2, 3) {
		t.Errorf("vec3 dispatch wrong: %+v", got)
	}
	if got := sh.calls["color"]; got.Type != UniformVec4 {
		t.Errorf("vec4 dispatch wrong: %+v", got)
	}
}

func TestUniformApplyNilShader(t *testing.T) {
	// must not panic
	Uniform1f(1).Apply(nil, "x")
}

func TestDefaultMaterial(t *testing.T) {
	m := DefaultMaterial()
	if m.Transparent {
		t.Error("default material should be opaque")
	}
	if m.Color.W != 1 {
		t.Error("default material should have full alpha")
	}
	if m.Shininess <= 0 {
		t.Error("default material needs a positive shininess exponent")
	}
}
