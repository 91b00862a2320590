package main

import (
	"log"

	"cogentcore.org/core/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/melihucar/pina-engine-sub000/internal/camera"
	"github.com/melihucar/pina-engine-sub000/internal/engine"
	"github.com/melihucar/pina-engine-sub000/internal/graphics"
	"github.com/melihucar/pina-engine-sub000/internal/graphics/rgl"
	"github.com/melihucar/pina-engine-sub000/internal/render"
)

func main() {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi)
	rl.InitWindow(1280, 720, "pina engine")
	defer rl.CloseWindow()
	rl.SetTargetFPS(120)

	dev := rgl.New()
	width, height := rl.GetScreenWidth(), rl.GetScreenHeight()

	pipeline, err := render.NewPipeline(dev, width, height)
	if err != nil {
		log.Fatalf("pipeline: %v", err)
	}
	defer pipeline.Cleanup()

	scene, models := buildScene()
	defer func() {
		for _, m := range models {
			m.Unload()
		}
	}()

	cam := camera.New(math32.Vec3(8, 6, 8))
	cam.LookAt(math32.Vec3(0, 1, 0), math32.Vec3(0, 1, 0))
	scene.Camera = cam

	spinner := scene.FindNodeByName("Spinner")
	orbiter := scene.FindNodeByName("Orbiter")

	angle := float32(0)
	for !rl.WindowShouldClose() {
		dt := rl.GetFrameTime()

		if rl.IsWindowResized() {
			width, height = rl.GetScreenWidth(), rl.GetScreenHeight()
			pipeline.Resize(width, height)
		}
		handleInput(pipeline, cam, dt)

		angle += dt
		if spinner != nil {
			spinner.Transform().SetLocalEulerRotation(0, angle*60, 0)
		}
		if orbiter != nil {
			orbiter.Transform().SetLocalPosition(math32.Vec3(
				3*math32.Cos(angle), 1.5, 3*math32.Sin(angle)))
		}

		pipeline.Render(scene, cam, dt)
	}
}

// buildScene assembles a small hierarchy: a ground plane, a spinning parent
// cube with a child sphere, an orbiting emissive sphere, and a transparent
// cube, lit by one directional and one point light.
func buildScene() (*engine.Scene, []*rgl.Model) {
	scene := engine.NewScene("demo")
	var models []*rgl.Model

	add := func(name string, parent *engine.Node, m *rgl.Model, pos math32.Vector3) *engine.Node {
		models = append(models, m)
		n := scene.CreateNode(name, parent)
		n.Renderable = m
		n.Transform().SetLocalPosition(pos)
		return n
	}

	ground := graphics.DefaultMaterial()
	ground.Color = math32.Vec4(0.35, 0.38, 0.35, 1)
	add("Ground", nil, rgl.NewPlane(24, 24, ground), math32.Vec3(0, 0, 0))

	red := graphics.DefaultMaterial()
	red.Color = math32.Vec4(0.8, 0.2, 0.2, 1)
	spinner := add("Spinner", nil, rgl.NewCube(1.5, red), math32.Vec3(0, 1.2, 0))

	blue := graphics.DefaultMaterial()
	blue.Color = math32.Vec4(0.2, 0.4, 0.9, 1)
	add("Moon", spinner, rgl.NewSphere(0.4, blue), math32.Vec3(1.6, 0.6, 0))

	bright := graphics.DefaultMaterial()
	bright.Color = math32.Vec4(1, 0.9, 0.5, 1)
	add("Orbiter", nil, rgl.NewSphere(0.5, bright), math32.Vec3(3, 1.5, 0))

	glass := graphics.DefaultMaterial()
	glass.Color = math32.Vec4(0.4, 0.9, 0.8, 0.45)
	glass.Transparent = true
	add("Glass", nil, rgl.NewCube(1, glass), math32.Vec3(-2.5, 0.8, 1))

	sun := engine.NewDirectionalLight()
	sun.Direction = math32.Vec3(0.4, -1, -0.3).Normal()
	if scene.Lights.Add(sun) < 0 {
		log.Println("light registry full, skipping sun")
	}

	lamp := engine.NewPointLight()
	lamp.Position = math32.Vec3(-2, 3, 2)
	lamp.Color = math32.Vec3(1, 0.7, 0.4)
	lamp.Intensity = 1.5
	scene.Lights.Add(lamp)

	return scene, models
}

func handleInput(pipeline *render.Pipeline, cam *camera.Camera, dt float32) {
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		d := rl.GetMouseDelta()
		cam.Orbit(-d.X*0.3, -d.Y*0.3)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		cam.Dolly(wheel * 0.5)
	}

	if rl.IsKeyPressed(rl.KeyB) {
		pipeline.SetBloomEnabled(!pipelineBloomOn(pipeline))
	}
	if rl.IsKeyPressed(rl.KeyF) {
		fxaaOn = !fxaaOn
		pipeline.SetFXAAEnabled(fxaaOn)
	}
	if rl.IsKeyPressed(rl.KeyP) {
		pbrOn = !pbrOn
		pipeline.SetPBR(pbrOn)
	}
	if rl.IsKeyPressed(rl.KeyL) {
		wireOn = !wireOn
		pipeline.SetWireframe(wireOn)
	}
}

var (
	fxaaOn = true
	pbrOn  bool
	wireOn bool
)

func pipelineBloomOn(p *render.Pipeline) bool {
	if bp := p.BloomPass(); bp != nil {
		return bp.Enabled()
	}
	return false
}
