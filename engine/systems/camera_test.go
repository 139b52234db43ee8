package systems

import (
	"testing"

	"github.com/spaghettifunk/gfxlabs/engine/config"
	"github.com/spaghettifunk/gfxlabs/engine/math"
	"github.com/spaghettifunk/gfxlabs/engine/renderer/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCameraSystem(t *testing.T, max uint16) *CameraSystem {
	t.Helper()
	cs, err := NewCameraSystem(&CameraSystemConfig{
		MaxCameraCount: max,
		Eye:            math.NewVec3(0, 0, 4),
		Target:         math.NewVec3Zero(),
	})
	require.NoError(t, err)
	return cs
}

func TestCameraSystemAcquireRelease(t *testing.T) {
	cs := newCameraSystem(t, 2)

	def, err := cs.Acquire(components.DEFAULT_CAMERA_NAME)
	require.NoError(t, err)
	assert.Same(t, cs.GetDefault(), def)

	a, err := cs.Acquire("a")
	require.NoError(t, err)
	again, err := cs.Acquire("a")
	require.NoError(t, err)
	assert.Same(t, a, again)
	assert.True(t, a.GetPosition().Compare(math.NewVec3(0, 0, 4), 1e-6))

	b, err := cs.Acquire("b")
	require.NoError(t, err)
	assert.NotSame(t, a, b)

	_, err = cs.Acquire("c")
	assert.ErrorIs(t, err, ErrNoFreeCameraSlot)

	// still referenced once
	cs.Release("a")
	_, err = cs.Acquire("c")
	assert.ErrorIs(t, err, ErrNoFreeCameraSlot)

	cs.Release("a")
	c, err := cs.Acquire("c")
	require.NoError(t, err)
	assert.NotNil(t, c)

	cs.Release("missing")
	cs.Release(components.DEFAULT_CAMERA_NAME)
	assert.Same(t, def, cs.GetDefault())

	require.NoError(t, cs.Shutdown())
	assert.Empty(t, cs.Lookup)
}

func TestCameraSystemConfig(t *testing.T) {
	_, err := NewCameraSystem(&CameraSystemConfig{MaxCameraCount: 0, Target: math.NewVec3One()})
	assert.Error(t, err)

	_, err = NewCameraSystem(&CameraSystemConfig{MaxCameraCount: 1})
	assert.ErrorIs(t, err, math.ErrInvalidArgument)

	sm, err := NewSystemManager(config.Default())
	require.NoError(t, err)
	assert.True(t, sm.CameraSystem.GetDefault().Front().Compare(math.NewVec3Forward(), 1e-5))
	require.NoError(t, sm.Shutdown())
}
