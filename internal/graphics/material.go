package graphics

import (
	"cogentcore.org/core/math32"
)

// Material classifies a renderable for the scene passes: transparency
// decides which of the two scene sub-passes draws it, PBR selects the
// physically-based shader over Blinn-Phong.
type Material struct {
	Color       math32.Vector4
	Transparent bool
	PBR         bool

	// PBR parameters; ignored by the Blinn-Phong path.
	Metallic  float32
	Roughness float32

	// Shininess is the Blinn-Phong specular exponent.
	Shininess float32
}

// DefaultMaterial returns an opaque white Blinn-Phong material.
func DefaultMaterial() Material {
	return Material{
		Color:     math32.Vec4(1, 1, 1, 1),
		Shininess: 32,
		Roughness: 0.8,
	}
}

// Renderable is a drawable attachment owned outside the scene graph
// (models, primitive meshes). The scene renderer uploads the node's world
// and normal matrices, then calls Draw with the same world matrix so the
// backend can feed its own pipeline.
type Renderable interface {
	Material() Material
	Draw(dev Device, sh Shader, world math32.Matrix4)
}

// Bounded is optionally implemented by renderables that can report a
// local-space bounding sphere, enabling frustum culling.
type Bounded interface {
	BoundingSphere() (center math32.Vector3, radius float32)
}
