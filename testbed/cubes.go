package testbed

import (
	"github.com/spaghettifunk/gfxlabs/engine"
	"github.com/spaghettifunk/gfxlabs/engine/config"
	"github.com/spaghettifunk/gfxlabs/engine/core"
	"github.com/spaghettifunk/gfxlabs/engine/renderer/components"
	"github.com/spaghettifunk/gfxlabs/engine/renderer/metadata"
	"github.com/spaghettifunk/gfxlabs/engine/renderer/views"
	"github.com/spaghettifunk/gfxlabs/engine/scene"
)

// CubesGame is the lit cube scene walked through with a WASD and mouse-look
// camera.
type CubesGame struct {
	*engine.Game
}

type cubesState struct {
	WorldCamera *components.Camera
	Scene       *scene.Scene
	World       *views.RenderViewWorld
	// Smoother is nil unless camera smoothing is on.
	Smoother *core.LookSmoother

	sensitivity float32
	speed       float32
}

var movementKeys = []struct {
	key       core.KeyCode
	direction components.Direction
}{
	{core.KEY_W, components.Forward},
	{core.KEY_S, components.Backward},
	{core.KEY_A, components.Left},
	{core.KEY_D, components.Right},
	{core.KEY_E, components.Up},
	{core.KEY_Q, components.Down},
}

func NewCubesGame(cfg *config.Config) (*CubesGame, error) {
	app, err := engine.NewApplicationConfig(cfg)
	if err != nil {
		return nil, err
	}
	cg := &CubesGame{
		Game: &engine.Game{
			ApplicationConfig: app,
			Config:            cfg,
			State:             &cubesState{},
		},
	}
	cg.FnInitialize = cg.Initialize
	cg.FnUpdate = cg.Update
	cg.FnRender = cg.Render
	cg.FnOnResize = cg.OnResize
	cg.FnOnConfigReloaded = cg.OnConfigReloaded
	cg.FnShutdown = cg.Shutdown
	return cg, nil
}

func (g *CubesGame) state() *cubesState {
	return g.State.(*cubesState)
}

// Camera is the camera the scene is viewed through.
func (g *CubesGame) Camera() *components.Camera {
	return g.state().WorldCamera
}

func (g *CubesGame) Initialize() error {
	core.LogInfo("initializing cube scene...")
	state := g.state()
	state.WorldCamera = g.SystemManager.CameraSystem.GetDefault()

	world, err := views.NewRenderViewWorld(state.WorldCamera,
		g.Config.Camera.FOV(), g.Config.Camera.Near, g.Config.Camera.Far,
		g.ApplicationConfig.StartWidth, g.ApplicationConfig.StartHeight)
	if err != nil {
		return err
	}
	world.UseQuaternionView = true
	state.World = world
	if err := g.Renderer.RegisterView(world); err != nil {
		return err
	}
	return g.applyConfig(g.Config)
}

func (g *CubesGame) applyConfig(cfg *config.Config) error {
	state := g.state()
	s, err := scene.NewSceneFromConfig(cfg)
	if err != nil {
		return err
	}
	if err := state.World.SetPerspective(cfg.Camera.FOV(), cfg.Camera.Near, cfg.Camera.Far); err != nil {
		return err
	}
	state.Scene = s
	state.sensitivity = cfg.Camera.Sensitivity
	state.speed = cfg.Camera.Speed
	state.Smoother = nil
	if cfg.Camera.Smoothing {
		state.Smoother = core.NewLookSmoother(cfg.Application.TargetFPS)
	}
	return nil
}

func (g *CubesGame) Update(deltaTime float64) error {
	state := g.state()
	camera := state.WorldCamera
	dt := float32(deltaTime)

	if g.Input.IsKeyDown(core.KEY_R) && g.Input.WasKeyUp(core.KEY_R) {
		camera.Reset()
		if state.Smoother != nil {
			state.Smoother.Reset()
		}
	}

	for _, m := range movementKeys {
		if g.Input.IsKeyDown(m.key) {
			camera.Move(m.direction, state.speed*dt)
		}
	}

	// screen y grows downwards, pitch grows upwards
	dx, dy := g.Input.MouseDelta()
	dYaw, dPitch := dx*state.sensitivity, -dy*state.sensitivity
	if state.Smoother != nil {
		state.Smoother.Feed(dYaw, dPitch)
		dYaw, dPitch = state.Smoother.Step()
	}
	if dYaw != 0 || dPitch != 0 {
		camera.ApplyLookDelta(dYaw, dPitch)
	}

	state.Scene.Update(dt)
	return nil
}

func (g *CubesGame) Render(packet *metadata.RenderPacket, deltaTime float64) error {
	state := g.state()
	geometries, err := state.Scene.Geometries()
	if err != nil {
		return err
	}
	packet.ViewPackets = append(packet.ViewPackets, state.World.OnBuildPacket(geometries, state.Scene.Lights))
	return nil
}

func (g *CubesGame) OnResize(width, height uint32) error {
	return g.state().World.OnResize(width, height)
}

func (g *CubesGame) OnConfigReloaded(cfg *config.Config) error {
	return g.applyConfig(cfg)
}

func (g *CubesGame) Shutdown() error {
	camera := g.state().WorldCamera
	if camera == nil {
		return nil
	}
	pos := camera.GetPosition()
	core.LogInfo("cube scene finished, camera at %s", pos)
	return nil
}
