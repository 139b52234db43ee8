package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/gfxlabs/engine/core"
	"github.com/spaghettifunk/gfxlabs/engine/math"
)

var ErrInvalidConfig = errors.New("invalid config")

// MaxFramebufferSize is the largest width or height a resize event can carry.
const MaxFramebufferSize = 1<<16 - 1

// Sprite animation modes understood by the sprite lab.
const (
	SpriteModeStatic = "static"
	SpriteModeSpin   = "spin"
	SpriteModeOrbit  = "orbit"
	SpriteModeTwirl  = "twirl"
	SpriteModePulse  = "pulse"
	SpriteModeBounce = "bounce"
)

var SpriteModes = []string{
	SpriteModeStatic,
	SpriteModeSpin,
	SpriteModeOrbit,
	SpriteModeTwirl,
	SpriteModePulse,
	SpriteModeBounce,
}

type Config struct {
	Application ApplicationConfig `toml:"application"`
	Camera      CameraConfig      `toml:"camera"`
	Objects     []ObjectConfig    `toml:"objects"`
	Lights      []LightConfig     `toml:"lights"`
	Sprite      SpriteConfig      `toml:"sprite"`
}

type ApplicationConfig struct {
	Name      string `toml:"name"`
	Width     uint32 `toml:"width"`
	Height    uint32 `toml:"height"`
	LogLevel  string `toml:"log_level"`
	TargetFPS int    `toml:"target_fps"`
	// Frames stops the loop after that many frames; 0 runs until quit.
	Frames int `toml:"frames"`
}

type CameraConfig struct {
	Eye    [3]float32 `toml:"eye"`
	Target [3]float32 `toml:"target"`
	// Sensitivity converts pointer movement to radians.
	Sensitivity float32 `toml:"sensitivity"`
	// Speed is in world units per second.
	Speed      float32 `toml:"speed"`
	FOVDegrees float32 `toml:"fov_degrees"`
	Near       float32 `toml:"near"`
	Far        float32 `toml:"far"`
	Smoothing  bool    `toml:"smoothing"`
}

type ObjectConfig struct {
	Name         string     `toml:"name"`
	Mesh         string     `toml:"mesh"`
	Position     [3]float32 `toml:"position"`
	Axis         [3]float32 `toml:"axis"`
	AngleDegrees float32    `toml:"angle_degrees"`
	Scale        [3]float32 `toml:"scale"`
	// SpinDegrees is added to the angle every second.
	SpinDegrees float32 `toml:"spin_degrees"`
}

type LightConfig struct {
	Direction [3]float32 `toml:"direction"`
	Colour    [3]float32 `toml:"colour"`
}

type SpriteConfig struct {
	Mode     string     `toml:"mode"`
	Velocity [3]float32 `toml:"velocity"`
	Scale    float32    `toml:"scale"`
}

// Vec3 converts a TOML triple to a vector.
func Vec3(v [3]float32) math.Vec3 {
	return math.NewVec3(v[0], v[1], v[2])
}

var cubePositions = [][3]float32{
	{0, 0, 0},
	{2, 5, -10},
	{-3, -2, -3},
	{-4, -2, -8},
	{2, 2, -6},
	{-4, 3, -8},
	{0, -2, -5},
	{4, 2, -4},
	{2, 0, -2},
	{-1, 1, -2},
}

// Default returns the cube scene: ten cubes around the origin, a camera at
// (0, 0, 4) looking at it, and one yellow directional light.
func Default() *Config {
	cfg := &Config{
		Application: ApplicationConfig{
			Name:      "gfxlabs",
			Width:     1024,
			Height:    768,
			LogLevel:  "info",
			TargetFPS: 60,
		},
		Camera: CameraConfig{
			Eye:         [3]float32{0, 0, 4},
			Target:      [3]float32{0, 0, 0},
			Sensitivity: 0.005,
			Speed:       5,
			FOVDegrees:  45,
			Near:        0.2,
			Far:         100,
		},
		Lights: []LightConfig{
			{Direction: [3]float32{1, -1, 0}, Colour: [3]float32{1, 1, 0}},
		},
		Sprite: SpriteConfig{
			Mode:     SpriteModeStatic,
			Velocity: [3]float32{0.01, 0.005, 0},
			Scale:    0.2,
		},
	}
	for i, p := range cubePositions {
		cfg.Objects = append(cfg.Objects, ObjectConfig{
			Name:         fmt.Sprintf("cube_%d", i),
			Mesh:         "cube",
			Position:     p,
			Axis:         [3]float32{1, 1, 1},
			AngleDegrees: 20 * float32(i),
			Scale:        [3]float32{0.5, 0.5, 0.5},
		})
	}
	return cfg
}

// Load reads and validates the TOML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data over the defaults. Tables that are absent keep their
// default values; [[objects]] and [[lights]] replace the default lists when
// the document has any entries. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	objects, lights := cfg.Objects, cfg.Lights
	cfg.Objects, cfg.Lights = nil, nil

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("%w: line %d column %d: %w", ErrInvalidConfig, row, col, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if len(cfg.Objects) == 0 {
		cfg.Objects = objects
	}
	if len(cfg.Lights) == 0 {
		cfg.Lights = lights
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Encode writes cfg as TOML.
func (c *Config) Encode(w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// Validate reports every invalid field, joined and wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...interface{}) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	a := c.Application
	check(a.Width > 0 && a.Height > 0, "application: width and height must be positive, got %dx%d", a.Width, a.Height)
	check(a.Width <= MaxFramebufferSize && a.Height <= MaxFramebufferSize, "application: width and height must be at most %d, got %dx%d", MaxFramebufferSize, a.Width, a.Height)
	check(a.TargetFPS > 0, "application.target_fps must be positive, got %d", a.TargetFPS)
	check(a.Frames >= 0, "application.frames must not be negative, got %d", a.Frames)
	if _, err := core.ParseLogLevel(a.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("application.log_level: %w", err))
	}

	cam := c.Camera
	check(cam.Eye != cam.Target, "camera: eye and target must differ, both are %v", cam.Eye)
	check(cam.Sensitivity >= 0, "camera.sensitivity must not be negative, got %g", cam.Sensitivity)
	check(cam.Speed >= 0, "camera.speed must not be negative, got %g", cam.Speed)
	check(cam.FOVDegrees > 0 && cam.FOVDegrees < 180, "camera.fov_degrees must be in (0, 180), got %g", cam.FOVDegrees)
	check(cam.Near > 0, "camera.near must be positive, got %g", cam.Near)
	check(cam.Far > cam.Near, "camera.far (%g) must be greater than near (%g)", cam.Far, cam.Near)

	for i, o := range c.Objects {
		check(Vec3(o.Axis).LengthSquared() > 0, "objects[%d] %q: axis must be non-zero", i, o.Name)
		check(o.Mesh != "", "objects[%d] %q: mesh is required", i, o.Name)
	}
	for i, l := range c.Lights {
		check(Vec3(l.Direction).LengthSquared() > 0, "lights[%d]: direction must be non-zero", i)
	}

	modeOK := false
	for _, mode := range SpriteModes {
		if c.Sprite.Mode == mode {
			modeOK = true
		}
	}
	check(modeOK, "sprite.mode %q is not one of %v", c.Sprite.Mode, SpriteModes)
	check(c.Sprite.Scale > 0, "sprite.scale must be positive, got %g", c.Sprite.Scale)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// FOV returns the vertical field of view in radians.
func (c CameraConfig) FOV() float32 {
	return math.DegToRad(c.FOVDegrees)
}

// Aspect returns width / height of the window.
func (a ApplicationConfig) Aspect() float32 {
	return float32(a.Width) / float32(a.Height)
}
