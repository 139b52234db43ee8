package scene

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/google/uuid"
	"github.com/spaghettifunk/gfxlabs/engine/config"
	"github.com/spaghettifunk/gfxlabs/engine/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-4

func TestSceneFromDefaultConfig(t *testing.T) {
	s, err := NewSceneFromConfig(config.Default())
	require.NoError(t, err)
	require.Len(t, s.Objects, 10)
	require.Len(t, s.Lights, 1)

	geometries, err := s.Geometries()
	require.NoError(t, err)
	require.Len(t, geometries, 10)

	// the model places the cube centre at its configured position
	centre := geometries[1].Model.TransformPoint(math.NewVec3Zero())
	assert.True(t, centre.Compare(math.NewVec3(2, 5, -10), tolerance))
	assert.Equal(t, "cube", geometries[1].Mesh)
	assert.Equal(t, s.Objects[1].ID, geometries[1].UniqueID)

	// cube i is turned by 20*i degrees about (1,1,1), after a 0.5 scale
	want, err := math.NewMat4Rotation(math.DegToRad(60), math.NewVec3(1, 1, 1))
	require.NoError(t, err)
	want = math.NewMat4Translation(math.NewVec3(-4, -2, -8)).Mul(want).Mul(math.NewMat4Scale(math.NewVec3(0.5, 0.5, 0.5)))
	assert.True(t, geometries[3].Model.Compare(want, tolerance))

	assert.InDelta(t, 0.70710677, s.Lights[0].Direction.X, tolerance)
}

func TestSceneAddFindRemove(t *testing.T) {
	s := NewScene()
	a := s.Add("a", "cube", math.TransformCreate())
	b := s.Add("b", "sphere", math.TransformFromPosition(math.NewVec3(1, 0, 0)))
	assert.NotEqual(t, a.ID, b.ID)

	found, ok := s.Find(b.ID)
	require.True(t, ok)
	assert.Same(t, b, found)

	require.NoError(t, s.Remove(a.ID))
	assert.Error(t, s.Remove(a.ID))
	_, ok = s.Find(a.ID)
	assert.False(t, ok)
	require.Len(t, s.Objects, 1)
	assert.Equal(t, "b", s.Objects[0].Name)

	_, ok = s.Find(uuid.New())
	assert.False(t, ok)
}

func TestObjectSpin(t *testing.T) {
	s := NewScene()
	o := s.Add("spinner", "cube", math.TransformCreate())
	o.Spin = math.K_HALF_PI
	for i := 0; i < 4; i++ {
		s.Update(0.5)
	}
	assert.InDelta(t, math.K_PI, o.Transform.Angle, tolerance)

	o.Transform.Axis = math.NewVec3Zero()
	_, err := s.Geometries()
	assert.ErrorIs(t, err, math.ErrInvalidArgument)
}

func TestSceneRejectsBadLight(t *testing.T) {
	cfg := config.Default()
	cfg.Lights[0].Direction = [3]float32{}
	_, err := NewSceneFromConfig(cfg)
	assert.ErrorIs(t, err, math.ErrInvalidArgument)
}

func newSprite(t *testing.T, mode string) *Sprite {
	t.Helper()
	cfg := config.Default().Sprite
	cfg.Mode = mode
	s, err := NewSprite(cfg)
	require.NoError(t, err)
	return s
}

func spritePoint(t *testing.T, s *Sprite, p math.Vec3) math.Vec3 {
	t.Helper()
	m, err := s.Model()
	require.NoError(t, err)
	return m.TransformPoint(p)
}

func TestSpriteModesAreAnimated(t *testing.T) {
	for _, mode := range config.SpriteModes {
		s := newSprite(t, mode)
		s.Update(0.1)
		_, err := s.Model()
		assert.NoError(t, err, mode)
	}
	_, err := NewSprite(config.SpriteConfig{Mode: "wobble", Scale: 1})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSpriteStatic(t *testing.T) {
	s := newSprite(t, config.SpriteModeStatic)
	assert.True(t, spritePoint(t, s, math.NewVec3Zero()).Compare(math.NewVec3(0.4, 0.3, 0), tolerance))
	// scaled to (0.4, 0.3), turned 45 degrees, moved to (0.4, 0.3)
	c := math32.Sqrt(2) / 2
	want := math.NewVec3(0.4+0.4*c-0.3*c, 0.3+0.4*c+0.3*c, 1)
	assert.True(t, spritePoint(t, s, math.NewVec3(1, 1, 1)).Compare(want, tolerance))

	s.Update(3)
	assert.True(t, spritePoint(t, s, math.NewVec3(1, 1, 1)).Compare(want, tolerance))
}

func TestSpriteOrbitAndSpin(t *testing.T) {
	orbit := newSprite(t, config.SpriteModeOrbit)
	spin := newSprite(t, config.SpriteModeSpin)
	assert.True(t, spritePoint(t, orbit, math.NewVec3Zero()).Compare(math.NewVec3(0.5, 0, 0), tolerance))

	// a quarter of the period
	orbit.Update(1.25)
	spin.Update(1.25)
	assert.True(t, spritePoint(t, orbit, math.NewVec3Zero()).Compare(math.NewVec3(0, 0.5, 0), tolerance))
	assert.True(t, spritePoint(t, spin, math.NewVec3Zero()).Compare(math.NewVec3(0, 0.5, 0), tolerance))
	// orbit keeps the quad upright, spin turns it with the frame
	assert.True(t, spritePoint(t, orbit, math.NewVec3(1, 0, 0)).Compare(math.NewVec3(0.25, 0.5, 0), tolerance))
	assert.True(t, spritePoint(t, spin, math.NewVec3(1, 0, 0)).Compare(math.NewVec3(0, 0.75, 0), tolerance))
}

func TestSpriteTwirlAndPulse(t *testing.T) {
	twirl := newSprite(t, config.SpriteModeTwirl)
	twirl.Update(1.25)
	// counter-rotated by 180 degrees
	assert.True(t, spritePoint(t, twirl, math.NewVec3(1, 0, 0)).Compare(math.NewVec3(-0.25, 0.5, 0), tolerance))

	pulse := newSprite(t, config.SpriteModePulse)
	assert.True(t, spritePoint(t, pulse, math.NewVec3(1, 0, 0)).Compare(math.NewVec3(0.75, 0, 0), tolerance))

	// sin(6t) peaks at t = pi/12
	pulse.Update(math.K_PI / 12)
	m, err := pulse.Model()
	require.NoError(t, err)
	size := m.TransformDirection(math.NewVec3(1, 0, 0)).Length()
	assert.InDelta(t, 0.4, size, tolerance)
}

func TestSpriteBounceStaysInside(t *testing.T) {
	s := newSprite(t, config.SpriteModeBounce)
	v := config.Vec3(config.Default().Sprite.Velocity)
	bound := BOUNCE_LIMIT + v.Length()

	reflected := false
	for i := 0; i < 10000; i++ {
		s.Update(1.0 / 60.0)
		p := s.Position()
		require.LessOrEqual(t, math.Abs(p.X), bound, "step %d", i)
		require.LessOrEqual(t, math.Abs(p.Y), bound, "step %d", i)
		if i == 100 {
			// x passes 0.9 after 91 steps and comes back
			reflected = p.X < 0.9
		}
	}
	assert.True(t, reflected)

	m, err := s.Model()
	require.NoError(t, err)
	assert.True(t, m.TransformPoint(math.NewVec3Zero()).Compare(s.Position(), tolerance))
	assert.InDelta(t, 0.2, m.TransformDirection(math.NewVec3(0, 1, 0)).Length(), tolerance)
}

func TestBouncerReflects(t *testing.T) {
	b := Bouncer{Position: math.NewVec3(0.85, -0.85, 0), Velocity: math.NewVec3(0.1, -0.1, 0), Limit: 0.9}
	b.Step()
	assert.Equal(t, float32(-0.1), b.Velocity.X)
	assert.Equal(t, float32(0.1), b.Velocity.Y)
	b.Step()
	assert.True(t, b.Position.Compare(math.NewVec3(0.85, -0.85, 0), tolerance))
}
