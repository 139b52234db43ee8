package engine

import (
	"github.com/spaghettifunk/gfxlabs/engine/config"
	"github.com/spaghettifunk/gfxlabs/engine/core"
)

type ApplicationConfig struct {
	// Framebuffer starting width.
	StartWidth uint32
	// Framebuffer starting height.
	StartHeight uint32
	// The application name handed to the renderer backend.
	Name     string
	LogLevel core.LogLevel
	// Frames stops the loop after this many frames. 0 runs until quit.
	Frames int
	// TargetFPS caps the frame rate when frame limiting is enabled.
	TargetFPS int
}

// NewApplicationConfig takes the [application] table of a validated config.
func NewApplicationConfig(cfg *config.Config) (*ApplicationConfig, error) {
	level, err := core.ParseLogLevel(cfg.Application.LogLevel)
	if err != nil {
		return nil, err
	}
	return &ApplicationConfig{
		StartWidth:  cfg.Application.Width,
		StartHeight: cfg.Application.Height,
		Name:        cfg.Application.Name,
		LogLevel:    level,
		Frames:      cfg.Application.Frames,
		TargetFPS:   cfg.Application.TargetFPS,
	}, nil
}
