package rgl

import (
	"math"

	"cogentcore.org/core/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/melihucar/pina-engine-sub000/internal/graphics"
)

// Shader wraps a compiled raylib shader with a uniform-location cache.
type Shader struct {
	sh    rl.Shader
	locs  map[string]int32
	valid bool
}

func newShader(sh rl.Shader) *Shader {
	return &Shader{
		sh:    sh,
		locs:  make(map[string]int32),
		valid: true,
	}
}

func (s *Shader) Bind() {
	if !s.valid {
		return
	}
	rl.EnableShader(s.sh.ID)
}

func (s *Shader) Valid() bool {
	return s != nil && s.valid
}

func (s *Shader) loc(name string) int32 {
	if l, ok := s.locs[name]; ok {
		return l
	}
	l := rl.GetShaderLocation(s.sh, name)
	s.locs[name] = l
	return l
}

func (s *Shader) SetInt(name string, v int32) {
	if !s.valid {
		return
	}
	rl.SetShaderValue(s.sh, s.loc(name), intBits(v), rl.ShaderUniformInt)
}

func (s *Shader) SetFloat(name string, v float32) {
	if !s.valid {
		return
	}
	rl.SetShaderValue(s.sh, s.loc(name), []float32{v}, rl.ShaderUniformFloat)
}

func (s *Shader) SetVec2(name string, v math32.Vector2) {
	if !s.valid {
		return
	}
	rl.SetShaderValue(s.sh, s.loc(name), []float32{v.X, v.Y}, rl.ShaderUniformVec2)
}

func (s *Shader) SetVec3(name string, v math32.Vector3) {
	if !s.valid {
		return
	}
	rl.SetShaderValue(s.sh, s.loc(name), []float32{v.X, v.Y, v.Z}, rl.ShaderUniformVec3)
}

func (s *Shader) SetVec4(name string, v math32.Vector4) {
	if !s.valid {
		return
	}
	rl.SetShaderValue(s.sh, s.loc(name), []float32{v.X, v.Y, v.Z, v.W}, rl.ShaderUniformVec4)
}

// SetMat3 widens to a mat4 upload since raylib exposes no mat3 uniform
// setter; the GLSL side declares mat4 and truncates with mat3(...).
func (s *Shader) SetMat3(name string, v math32.Matrix3) {
	var m math32.Matrix4
	m.SetIdentity()
	m[0], m[1], m[2] = v[0], v[1], v[2]
	m[4], m[5], m[6] = v[3], v[4], v[5]
	m[8], m[9], m[10] = v[6], v[7], v[8]
	s.SetMat4(name, m)
}

func (s *Shader) SetMat4(name string, v math32.Matrix4) {
	if !s.valid {
		return
	}
	rl.SetShaderValueMatrix(s.sh, s.loc(name), rlMatrix(v))
}

// SetTexture binds tex on the given unit and points the sampler uniform at
// it, the way the shadow renderer binds its depth map.
func (s *Shader) SetTexture(name string, tex graphics.Texture, slot int32) {
	if !s.valid || tex == nil {
		return
	}
	rl.ActiveTextureSlot(slot)
	rl.EnableTexture(tex.Handle())
	rl.SetShaderValue(s.sh, s.loc(name), intBits(slot), rl.ShaderUniformInt)
}

// intBits packs an int uniform for upload. raylib-go's uniform setters take
// []float32 regardless of the GLSL type; the C side reinterprets the memory
// per the declared uniform type, so ints must travel as raw bit patterns,
// not converted values.
func intBits(v int32) []float32 {
	return []float32{math.Float32frombits(uint32(v))}
}

func (s *Shader) Destroy() {
	if !s.valid {
		return
	}
	rl.UnloadShader(s.sh)
	s.valid = false
}
