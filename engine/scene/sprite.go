package scene

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/spaghettifunk/gfxlabs/engine/config"
	"github.com/spaghettifunk/gfxlabs/engine/math"
)

const (
	// SPRITE_PERIOD is the time for one full turn of the animated modes, in seconds.
	SPRITE_PERIOD float32 = 5
	SPRITE_ORBIT  float32 = 0.5
	SPRITE_SCALE  float32 = 0.25
	// BOUNCE_LIMIT is how far from the centre the bouncing sprite may travel
	// before it turns around.
	BOUNCE_LIMIT float32 = 0.9
)

// Bouncer moves a point by a fixed velocity every step and reflects each
// component of the velocity once the point leaves [-Limit, Limit].
type Bouncer struct {
	Position math.Vec3
	Velocity math.Vec3
	Limit    float32
}

func (b *Bouncer) Step() {
	b.Position = b.Position.Add(b.Velocity)
	if b.Position.X > b.Limit || b.Position.X < -b.Limit {
		b.Velocity.X = -b.Velocity.X
	}
	if b.Position.Y > b.Limit || b.Position.Y < -b.Limit {
		b.Velocity.Y = -b.Velocity.Y
	}
}

type spriteAnimation func(s *Sprite) (math.Mat4, error)

var spriteAnimations = map[string]spriteAnimation{
	config.SpriteModeStatic: func(s *Sprite) (math.Mat4, error) {
		return math.TransformFromPositionRotationScale(
			math.NewVec3(0.4, 0.3, 0),
			math.NewVec3Back(),
			math.DegToRad(45),
			math.NewVec3(0.4, 0.3, 1),
		).Model()
	},
	// the quad sits at (0.5, 0) and the whole frame turns about the origin
	config.SpriteModeSpin: func(s *Sprite) (math.Mat4, error) {
		rotate, err := math.NewMat4Rotation(s.angle(), math.NewVec3Back())
		if err != nil {
			return math.Mat4{}, err
		}
		translate := math.NewMat4Translation(math.NewVec3(SPRITE_ORBIT, 0, 0))
		scale := math.NewMat4Scale(math.NewVec3(SPRITE_SCALE, SPRITE_SCALE, 1))
		return rotate.Mul(translate).Mul(scale), nil
	},
	config.SpriteModeOrbit: func(s *Sprite) (math.Mat4, error) {
		translate := math.NewMat4Translation(s.orbitPosition())
		scale := math.NewMat4Scale(math.NewVec3(SPRITE_SCALE, SPRITE_SCALE, 1))
		return translate.Mul(scale), nil
	},
	config.SpriteModeTwirl: func(s *Sprite) (math.Mat4, error) {
		return math.TransformFromPositionRotationScale(
			s.orbitPosition(),
			math.NewVec3Back(),
			-2*s.angle(),
			math.NewVec3(SPRITE_SCALE, SPRITE_SCALE, 1),
		).Model()
	},
	config.SpriteModePulse: func(s *Sprite) (math.Mat4, error) {
		size := SPRITE_SCALE + 0.15*math32.Sin(6*s.elapsed)
		return math.TransformFromPositionRotationScale(
			s.orbitPosition(),
			math.NewVec3Back(),
			-2*s.angle(),
			math.NewVec3(size, size, 1),
		).Model()
	},
	config.SpriteModeBounce: func(s *Sprite) (math.Mat4, error) {
		translate := math.NewMat4Translation(math.NewVec3(s.bouncer.Position.X, s.bouncer.Position.Y, 0))
		scale := math.NewMat4Scale(math.NewVec3(s.scale, s.scale, 1))
		return translate.Mul(scale), nil
	},
}

// Sprite is the textured quad of the transformations lab, animated in one of
// the config.SpriteModes.
type Sprite struct {
	Mode string
	Mesh string

	elapsed float32
	scale   float32
	bouncer Bouncer
	animate spriteAnimation
}

func NewSprite(cfg config.SpriteConfig) (*Sprite, error) {
	animate, ok := spriteAnimations[cfg.Mode]
	if !ok {
		return nil, fmt.Errorf("%w: unknown sprite mode '%s'", config.ErrInvalidConfig, cfg.Mode)
	}
	return &Sprite{
		Mode:    cfg.Mode,
		Mesh:    "quad",
		scale:   cfg.Scale,
		animate: animate,
		bouncer: Bouncer{
			Velocity: config.Vec3(cfg.Velocity),
			Limit:    BOUNCE_LIMIT,
		},
	}, nil
}

// Update advances the time-based modes by deltaTime seconds. The bounce mode
// moves by its velocity once per call, whatever the frame time.
func (s *Sprite) Update(deltaTime float32) {
	s.elapsed += deltaTime
	if s.Mode == config.SpriteModeBounce {
		s.bouncer.Step()
	}
}

func (s *Sprite) Model() (math.Mat4, error) {
	return s.animate(s)
}

func (s *Sprite) Elapsed() float32 {
	return s.elapsed
}

func (s *Sprite) Position() math.Vec3 {
	return s.bouncer.Position
}

func (s *Sprite) angle() float32 {
	return math.DegToRad(s.elapsed * 360 / SPRITE_PERIOD)
}

func (s *Sprite) orbitPosition() math.Vec3 {
	a := s.angle()
	return math.NewVec3(SPRITE_ORBIT*math32.Cos(a), SPRITE_ORBIT*math32.Sin(a), 0)
}
