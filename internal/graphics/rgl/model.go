package rgl

import (
	"cogentcore.org/core/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/melihucar/pina-engine-sub000/internal/graphics"
)

// Model is a renderable over a raylib model (primitive mesh or loaded
// asset). It implements graphics.Renderable and graphics.Bounded.
type Model struct {
	model  rl.Model
	mat    graphics.Material
	center math32.Vector3
	radius float32
}

// NewCube creates a cube renderable with the given edge size.
func NewCube(size float32, mat graphics.Material) *Model {
	m := rl.LoadModelFromMesh(rl.GenMeshCube(size, size, size))
	// half the space diagonal
	return newModel(m, mat, size*0.8660254)
}

// NewSphere creates a sphere renderable.
func NewSphere(radius float32, mat graphics.Material) *Model {
	m := rl.LoadModelFromMesh(rl.GenMeshSphere(radius, 16, 32))
	return newModel(m, mat, radius)
}

// NewPlane creates a ground-plane renderable.
func NewPlane(width, length float32, mat graphics.Material) *Model {
	m := rl.LoadModelFromMesh(rl.GenMeshPlane(width, length, 1, 1))
	return newModel(m, mat, math32.Sqrt(width*width+length*length)*0.5)
}

// FromRaylib wraps an externally loaded raylib model.
func FromRaylib(model rl.Model, mat graphics.Material, radius float32) *Model {
	return newModel(model, mat, radius)
}

func newModel(model rl.Model, mat graphics.Material, radius float32) *Model {
	m := &Model{model: model, mat: mat, radius: radius}
	m.model.Materials.Maps.Color = rlColor(mat.Color)
	return m
}

func (m *Model) Material() graphics.Material {
	return m.mat
}

// BoundingSphere reports the local-space bounds for frustum culling.
func (m *Model) BoundingSphere() (math32.Vector3, float32) {
	return m.center, m.radius
}

// Draw submits the model at the given world transform with the shader
// attached to its material.
func (m *Model) Draw(dev graphics.Device, sh graphics.Shader, world math32.Matrix4) {
	if rsh, ok := sh.(*Shader); ok && rsh.Valid() {
		m.model.Materials.Shader = rsh.sh
	}
	m.model.Transform = rlMatrix(world)
	rl.DrawModel(m.model, rl.Vector3Zero(), 1, rl.White)
}

// Unload releases the model's GPU resources.
func (m *Model) Unload() {
	rl.UnloadModel(m.model)
}
