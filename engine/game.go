package engine

import (
	"github.com/spaghettifunk/gfxlabs/engine/config"
	"github.com/spaghettifunk/gfxlabs/engine/core"
	"github.com/spaghettifunk/gfxlabs/engine/renderer"
	"github.com/spaghettifunk/gfxlabs/engine/renderer/metadata"
	"github.com/spaghettifunk/gfxlabs/engine/systems"
)

// Game is the application driven by the engine. The engine fills in the
// collaborator fields before FnInitialize is called.
type Game struct {
	ApplicationConfig *ApplicationConfig
	Config            *config.Config
	SystemManager     *systems.SystemManager
	Renderer          *renderer.Renderer
	Input             *core.InputState
	Events            *core.EventSystem
	State             interface{}

	FnInitialize       Initialize
	FnUpdate           Update
	FnRender           Render
	FnOnResize         OnResize
	FnOnConfigReloaded OnConfigReloaded
	FnShutdown         Shutdown
}

type Initialize func() error
type Update func(deltaTime float64) error
type Render func(packet *metadata.RenderPacket, deltaTime float64) error
type OnResize func(width uint32, height uint32) error
type OnConfigReloaded func(cfg *config.Config) error
type Shutdown func() error
