package testbed

import (
	"github.com/spaghettifunk/gfxlabs/engine"
	"github.com/spaghettifunk/gfxlabs/engine/config"
	"github.com/spaghettifunk/gfxlabs/engine/core"
	"github.com/spaghettifunk/gfxlabs/engine/math"
	"github.com/spaghettifunk/gfxlabs/engine/renderer/metadata"
	"github.com/spaghettifunk/gfxlabs/engine/renderer/views"
	"github.com/spaghettifunk/gfxlabs/engine/scene"
)

// SpriteGame animates one textured quad in clip space. Tab switches to the
// next animation mode.
type SpriteGame struct {
	*engine.Game
}

type spriteState struct {
	Sprite *scene.Sprite
	View   *views.RenderViewSprite
}

func NewSpriteGame(cfg *config.Config) (*SpriteGame, error) {
	app, err := engine.NewApplicationConfig(cfg)
	if err != nil {
		return nil, err
	}
	sg := &SpriteGame{
		Game: &engine.Game{
			ApplicationConfig: app,
			Config:            cfg,
			State:             &spriteState{View: &views.RenderViewSprite{}},
		},
	}
	sg.FnInitialize = sg.Initialize
	sg.FnUpdate = sg.Update
	sg.FnRender = sg.Render
	sg.FnOnConfigReloaded = sg.OnConfigReloaded
	return sg, nil
}

func (g *SpriteGame) state() *spriteState {
	return g.State.(*spriteState)
}

func (g *SpriteGame) Initialize() error {
	core.LogInfo("initializing sprite in '%s' mode...", g.Config.Sprite.Mode)
	if err := g.Renderer.RegisterView(g.state().View); err != nil {
		return err
	}
	return g.setSprite(g.Config.Sprite)
}

func (g *SpriteGame) setSprite(cfg config.SpriteConfig) error {
	s, err := scene.NewSprite(cfg)
	if err != nil {
		return err
	}
	g.state().Sprite = s
	return nil
}

// Mode is the current animation mode.
func (g *SpriteGame) Mode() string {
	return g.state().Sprite.Mode
}

// Model is the sprite's model matrix for the current frame.
func (g *SpriteGame) Model() (math.Mat4, error) {
	return g.state().Sprite.Model()
}

func (g *SpriteGame) Update(deltaTime float64) error {
	if g.Input.IsKeyDown(core.KEY_TAB) && g.Input.WasKeyUp(core.KEY_TAB) {
		cfg := g.Config.Sprite
		cfg.Mode = nextSpriteMode(g.Mode())
		if err := g.setSprite(cfg); err != nil {
			return err
		}
		core.LogInfo("sprite mode '%s'", cfg.Mode)
	}
	g.state().Sprite.Update(float32(deltaTime))
	return nil
}

func (g *SpriteGame) Render(packet *metadata.RenderPacket, deltaTime float64) error {
	state := g.state()
	model, err := g.Model()
	if err != nil {
		return err
	}
	geometries := []metadata.GeometryRenderData{{Model: model, Mesh: state.Sprite.Mesh}}
	packet.ViewPackets = append(packet.ViewPackets, state.View.OnBuildPacket(geometries))
	return nil
}

func (g *SpriteGame) OnConfigReloaded(cfg *config.Config) error {
	return g.setSprite(cfg.Sprite)
}

func nextSpriteMode(mode string) string {
	for i, m := range config.SpriteModes {
		if m == mode {
			return config.SpriteModes[(i+1)%len(config.SpriteModes)]
		}
	}
	return config.SpriteModes[0]
}
