package systems

import (
	"github.com/spaghettifunk/gfxlabs/engine/config"
)

type SystemManager struct {
	CameraSystem *CameraSystem
}

func NewSystemManager(cfg *config.Config) (*SystemManager, error) {
	cs, err := NewCameraSystem(&CameraSystemConfig{
		MaxCameraCount: 100,
		Eye:            config.Vec3(cfg.Camera.Eye),
		Target:         config.Vec3(cfg.Camera.Target),
	})
	if err != nil {
		return nil, err
	}
	return &SystemManager{
		CameraSystem: cs,
	}, nil
}

func (sm *SystemManager) Shutdown() error {
	if err := sm.CameraSystem.Shutdown(); err != nil {
		return err
	}
	return nil
}
