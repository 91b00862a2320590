package engine

import (
	"cogentcore.org/core/math32"
)

// MaxLights is the fixed capacity of the light registry, matching the
// uniform array sizes in the scene shaders.
const MaxLights = 8

// Light is implemented by the concrete light types held in the registry.
type Light interface {
	isLight()
}

// DirectionalLight is an infinitely distant light defined by direction only.
// It is also the light the shadow pass frames its orthographic volume around.
type DirectionalLight struct {
	Direction math32.Vector3
	Color     math32.Vector3 // 0..1 RGB
	Intensity float32
	Ambient   math32.Vector3 // scene-wide ambient term contributed by this light
	// ShadowDistance is how far along -Direction the shadow camera sits.
	ShadowDistance float32
}

func NewDirectionalLight() *DirectionalLight {
	return &DirectionalLight{
		Direction:      math32.Vec3(0.35, -1.0, -0.35).Normal(),
		Color:          math32.Vec3(1, 1, 1),
		Intensity:      1,
		Ambient:        math32.Vec3(0.1, 0.1, 0.1),
		ShadowDistance: 50,
	}
}

func (l *DirectionalLight) isLight() {}

// ColorScaled returns the light color premultiplied by intensity, the form
// the shaders consume.
func (l *DirectionalLight) ColorScaled() math32.Vector3 {
	return l.Color.MulScalar(l.Intensity)
}

// PointLight is a positional light with distance falloff.
type PointLight struct {
	Position  math32.Vector3
	Color     math32.Vector3
	Intensity float32
	Radius    float32 // falloff distance
}

func NewPointLight() *PointLight {
	return &PointLight{
		Color:     math32.Vec3(1, 1, 1),
		Intensity: 1,
		Radius:    10,
	}
}

func (l *PointLight) isLight() {}

func (l *PointLight) ColorScaled() math32.Vector3 {
	return l.Color.MulScalar(l.Intensity)
}

// LightData is the packed, GPU-ready form of the registry contents,
// refreshed once per frame from live light state by Scene.Update.
type LightData struct {
	DirCount      int
	DirDirections [MaxLights]math32.Vector3
	DirColors     [MaxLights]math32.Vector3
	Ambient       math32.Vector3

	PointCount     int
	PointPositions [MaxLights]math32.Vector3
	PointColors    [MaxLights]math32.Vector3
	PointRadii     [MaxLights]float32
}

// LightRegistry is a fixed-capacity slot array of lights. Add returns the
// slot index, or -1 when the registry is full; it never grows or aborts.
type LightRegistry struct {
	slots [MaxLights]Light
	data  LightData
}

func NewLightRegistry() *LightRegistry {
	return &LightRegistry{}
}

// Add places the light in the first free slot and returns its index,
// or -1 if all slots are taken. The caller must check.
func (r *LightRegistry) Add(l Light) int {
	if l == nil {
		return -1
	}
	for i := range r.slots {
		if r.slots[i] == nil {
			r.slots[i] = l
			return i
		}
	}
	return -1
}

// Remove frees the given slot. Out-of-range or already-free slots are no-ops.
func (r *LightRegistry) Remove(index int) {
	if index < 0 || index >= MaxLights {
		return
	}
	r.slots[index] = nil
}

// At returns the light in the given slot, or nil.
func (r *LightRegistry) At(index int) Light {
	if index < 0 || index >= MaxLights {
		return nil
	}
	return r.slots[index]
}

// Count returns the number of occupied slots.
func (r *LightRegistry) Count() int {
	n := 0
	for _, l := range r.slots {
		if l != nil {
			n++
		}
	}
	return n
}

// FirstDirectional returns the first directional light in slot order, or
// nil if none is registered. The shadow pass uses this to pick its caster.
func (r *LightRegistry) FirstDirectional() *DirectionalLight {
	for _, l := range r.slots {
		if dl, ok := l.(*DirectionalLight); ok {
			return dl
		}
	}
	return nil
}

// Data returns the packed uniform data from the last update.
func (r *LightRegistry) Data() *LightData {
	return &r.data
}

// update repacks GPU-ready data from live light state.
func (r *LightRegistry) update() {
	d := &r.data
	d.DirCount = 0
	d.PointCount = 0
	d.Ambient = math32.Vector3{}
	for _, l := range r.slots {
		switch lt := l.(type) {
		case *DirectionalLight:
			d.DirDirections[d.DirCount] = lt.Direction.Normal()
			d.DirColors[d.DirCount] = lt.ColorScaled()
			d.Ambient = d.Ambient.Add(lt.Ambient)
			d.DirCount++
		case *PointLight:
			d.PointPositions[d.PointCount] = lt.Position
			d.PointColors[d.PointCount] = lt.ColorScaled()
			d.PointRadii[d.PointCount] = lt.Radius
			d.PointCount++
		}
	}
}
