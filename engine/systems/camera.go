package systems

import (
	"errors"
	"fmt"

	"github.com/spaghettifunk/gfxlabs/engine/core"
	"github.com/spaghettifunk/gfxlabs/engine/math"
	"github.com/spaghettifunk/gfxlabs/engine/renderer/components"
)

var ErrNoFreeCameraSlot = errors.New("no free camera slot")

const InvalidIDUint16 uint16 = 65535

type CameraSystem struct {
	Config  *CameraSystemConfig
	Lookup  map[string]uint16
	Cameras []*components.CameraLookup
	// A default, non-registered camera that always exists as a fallback.
	DefaultCamera *components.Camera
}

/** @brief The camera system configuration. */
type CameraSystemConfig struct {
	/**
	 * @brief NOTE: The maximum number of cameras that can be managed by
	 * the system.
	 */
	MaxCameraCount uint16
	/** @brief Where new cameras start and what they look at. Must differ. */
	Eye    math.Vec3
	Target math.Vec3
}

/**
 * @brief Initializes the camera system.
 *
 * @param config The configuration for this system.
 * @return The system, or an error if the config cannot produce a camera.
 */
func NewCameraSystem(config *CameraSystemConfig) (*CameraSystem, error) {
	if config.MaxCameraCount == 0 || config.MaxCameraCount == InvalidIDUint16 {
		err := fmt.Errorf("func NewCameraSystem - config.MaxCameraCount must be > 0 and < %d", InvalidIDUint16)
		core.LogError("%s", err.Error())
		return nil, err
	}
	// Setup default camera.
	defaultCamera, err := components.NewCamera(config.Eye, config.Target)
	if err != nil {
		return nil, fmt.Errorf("func NewCameraSystem - default camera: %w", err)
	}
	cs := &CameraSystem{
		Config:        config,
		Cameras:       make([]*components.CameraLookup, config.MaxCameraCount),
		Lookup:        make(map[string]uint16, config.MaxCameraCount),
		DefaultCamera: defaultCamera,
	}
	// Invalidate all cameras in the array.
	for i := uint16(0); i < cs.Config.MaxCameraCount; i++ {
		cs.Cameras[i] = &components.CameraLookup{
			ID:             InvalidIDUint16,
			ReferenceCount: 0,
		}
	}
	return cs, nil
}

/**
 * @brief Shuts down the camera system.
 */
func (cs *CameraSystem) Shutdown() error {
	for _, c := range cs.Cameras {
		c.ID = InvalidIDUint16
		c.ReferenceCount = 0
		c.Camera = nil
	}
	clear(cs.Lookup)
	return nil
}

/**
 * @brief Acquires a pointer to a camera by name.
 * If one is not found, a new one is created and retuned.
 * Internal reference counter is incremented.
 *
 * @param name The name of the camera to acquire.
 * @return A pointer to a camera if successful; an error if every slot is taken.
 */
func (cs *CameraSystem) Acquire(name string) (*components.Camera, error) {
	if name == components.DEFAULT_CAMERA_NAME {
		return cs.DefaultCamera, nil
	}
	id, ok := cs.Lookup[name]
	if !ok {
		// Find free slot
		id = InvalidIDUint16
		for i := uint16(0); i < cs.Config.MaxCameraCount; i++ {
			if cs.Cameras[i].ID == InvalidIDUint16 {
				id = i
				break
			}
		}
		if id == InvalidIDUint16 {
			err := fmt.Errorf("func CameraSystemAcquire failed to acquire new slot for '%s'. Adjust camera system config to allow more: %w", name, ErrNoFreeCameraSlot)
			core.LogError("%s", err.Error())
			return nil, err
		}

		// Create/register the new camera.
		core.LogDebug("Creating new camera named '%s'...", name)
		camera, err := components.NewCamera(cs.Config.Eye, cs.Config.Target)
		if err != nil {
			return nil, err
		}
		cs.Cameras[id].Camera = camera
		cs.Cameras[id].ID = id

		// Update the hashtable.
		cs.Lookup[name] = id
	}
	cs.Cameras[id].ReferenceCount++
	return cs.Cameras[id].Camera, nil
}

/**
 * @brief Releases a camera with the given name. Internal reference
 * counter is decremented. If this reaches 0, the camera is reset,
 * and the reference is usable by a new camera.
 *
 * @param name The name of the camera to release.
 */
func (cs *CameraSystem) Release(name string) {
	if name == components.DEFAULT_CAMERA_NAME {
		core.LogDebug("Cannot release default camera. Nothing was done.")
		return
	}
	id, ok := cs.Lookup[name]
	if !ok {
		core.LogWarn("CameraSystemRelease failed lookup for '%s'. Nothing was done.", name)
		return
	}
	// Decrement the reference count, and free the slot if the counter reaches 0.
	cs.Cameras[id].ReferenceCount--
	if cs.Cameras[id].ReferenceCount < 1 {
		cs.Cameras[id].Camera.Reset()
		cs.Cameras[id].Camera = nil
		cs.Cameras[id].ID = InvalidIDUint16
		delete(cs.Lookup, name)
	}
}

/**
 * @brief Gets a pointer to the default camera.
 *
 * @return A pointer to the default camera.
 */
func (cs *CameraSystem) GetDefault() *components.Camera {
	return cs.DefaultCamera
}
