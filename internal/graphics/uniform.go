package graphics

import (
	"cogentcore.org/core/math32"
)

// UniformType tags which field of a UniformValue is live.
type UniformType int32

const (
	UniformInt UniformType = iota
	UniformFloat
	UniformVec2
	UniformVec3
	UniformVec4
	UniformMat3
	UniformMat4
)

// UniformValue is a tagged union over the uniform shapes the shader
// interface supports. ShaderPass holds a dictionary of these and uploads
// them before each draw.
type UniformValue struct {
	Type  UniformType
	Int   int32
	Float float32
	Vec2  math32.Vector2
	Vec3  math32.Vector3
	Vec4  math32.Vector4
	Mat3  math32.Matrix3
	Mat4  math32.Matrix4
}

func Uniform1i(v int32) UniformValue          { return UniformValue{Type: UniformInt, Int: v} }
func Uniform1f(v float32) UniformValue        { return UniformValue{Type: UniformFloat, Float: v} }
func Uniform2f(v math32.Vector2) UniformValue { return UniformValue{Type: UniformVec2, Vec2: v} }
func Uniform3f(v math32.Vector3) UniformValue { return UniformValue{Type: UniformVec3, Vec3: v} }
func Uniform4f(v math32.Vector4) UniformValue { return UniformValue{Type: UniformVec4, Vec4: v} }
func UniformM3(v math32.Matrix3) UniformValue { return UniformValue{Type: UniformMat3, Mat3: v} }
func UniformM4(v math32.Matrix4) UniformValue { return UniformValue{Type: UniformMat4, Mat4: v} }

// Apply uploads the value to the named uniform, dispatching on the tag.
func (u UniformValue) Apply(sh Shader, name string) {
	if sh == nil {
		return
	}
	switch u.Type {
	case UniformInt:
		sh.SetInt(name, u.Int)
	case UniformFloat:
		sh.SetFloat(name, u.Float)
	case UniformVec2:
		sh.SetVec2(name, u.Vec2)
	case UniformVec3:
		sh.SetVec3(name, u.Vec3)
	case UniformVec4:
		sh.SetVec4(name, u.Vec4)
	case UniformMat3:
		sh.SetMat3(name, u.Mat3)
	case UniformMat4:
		sh.SetMat4(name, u.Mat4)
	}
}
