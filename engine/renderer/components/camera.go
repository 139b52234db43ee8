package components

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/spaghettifunk/gfxlabs/engine/core"
	"github.com/spaghettifunk/gfxlabs/engine/math"
)

// Direction selects the axis Move travels along.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Pitch is clamped to 89 degrees, or equivalent to deg_to_rad(89.0f), so the
// front vector never becomes parallel to the world up.
const PITCH_LIMIT float32 = 1.55334306

/**
 * @brief A first-person camera oriented by yaw and pitch. Yaw 0 looks down
 * +X and yaw -90 degrees looks down -Z; positive pitch looks up. The world up
 * is +Y. front, right and up are recomputed whenever the orientation changes
 * and always form a right-handed orthonormal basis.
 */
type Camera struct {
	eye   math.Vec3
	yaw   float32
	pitch float32

	front math.Vec3
	right math.Vec3
	up    math.Vec3

	initialEye   math.Vec3
	initialYaw   float32
	initialPitch float32

	/** @brief Internal flag used to determine when the view matrix needs to be rebuilt. */
	isDirty    bool
	viewMatrix math.Mat4
}

type CameraLookup struct {
	ID             uint16
	ReferenceCount uint16
	Camera         *Camera
}

/** @brief The name of the default camera. */
const DEFAULT_CAMERA_NAME string = "default"

// NewCamera creates a camera at eye looking towards target.
func NewCamera(eye, target math.Vec3) (*Camera, error) {
	front, err := target.Sub(eye).Normalize()
	if err != nil {
		return nil, fmt.Errorf("camera eye and target are both %s: %w", eye, err)
	}
	c := &Camera{
		initialEye:   eye,
		initialYaw:   math32.Atan2(front.Z, front.X),
		initialPitch: math.Clamp(math32.Asin(math.Clamp(front.Y, -1, 1)), -PITCH_LIMIT, PITCH_LIMIT),
	}
	c.Reset()
	return c, nil
}

// NewCameraFromAngles creates a camera at eye with the given yaw and pitch in radians.
func NewCameraFromAngles(eye math.Vec3, yaw, pitch float32) *Camera {
	c := &Camera{
		initialEye:   eye,
		initialYaw:   wrapAngle(yaw),
		initialPitch: math.Clamp(pitch, -PITCH_LIMIT, PITCH_LIMIT),
	}
	c.Reset()
	return c
}

// Reset returns the camera to the position and orientation it was created with.
func (c *Camera) Reset() {
	c.eye = c.initialEye
	c.yaw = c.initialYaw
	c.pitch = c.initialPitch
	c.updateVectors()
}

func (c *Camera) GetPosition() math.Vec3 {
	return c.eye
}

func (c *Camera) SetPosition(position math.Vec3) {
	c.eye = position
	c.isDirty = true
}

func (c *Camera) GetYaw() float32 {
	return c.yaw
}

func (c *Camera) GetPitch() float32 {
	return c.pitch
}

func (c *Camera) Front() math.Vec3 {
	return c.front
}

func (c *Camera) Right() math.Vec3 {
	return c.right
}

func (c *Camera) Up() math.Vec3 {
	return c.up
}

// ApplyLookDelta adds the deltas (radians) to yaw and pitch and rebuilds the
// basis. Yaw stays in [-pi, pi). A NaN or infinite delta is dropped.
func (c *Camera) ApplyLookDelta(dYaw, dPitch float32) {
	if !isFinite(dYaw) || !isFinite(dPitch) {
		core.LogWarn("camera: ignoring non-finite look delta (%g, %g)", dYaw, dPitch)
		return
	}
	c.yaw = wrapAngle(c.yaw + dYaw)
	c.pitch = math.Clamp(c.pitch+dPitch, -PITCH_LIMIT, PITCH_LIMIT)
	c.updateVectors()
}

func (c *Camera) Yaw(amount float32) {
	c.ApplyLookDelta(amount, 0)
}

func (c *Camera) Pitch(amount float32) {
	c.ApplyLookDelta(0, amount)
}

// Move translates the eye by distance along front, right or the world up.
func (c *Camera) Move(direction Direction, distance float32) {
	var d math.Vec3
	switch direction {
	case Forward:
		d = c.front
	case Backward:
		d = c.front.Negate()
	case Left:
		d = c.right.Negate()
	case Right:
		d = c.right
	case Up:
		d = math.NewVec3Up()
	case Down:
		d = math.NewVec3Down()
	default:
		return
	}
	c.eye = c.eye.Add(d.MulScalar(distance))
	c.isDirty = true
}

func (c *Camera) MoveForward(amount float32) {
	c.Move(Forward, amount)
}

func (c *Camera) MoveBackward(amount float32) {
	c.Move(Backward, amount)
}

func (c *Camera) MoveLeft(amount float32) {
	c.Move(Left, amount)
}

func (c *Camera) MoveRight(amount float32) {
	c.Move(Right, amount)
}

func (c *Camera) MoveUp(amount float32) {
	c.Move(Up, amount)
}

func (c *Camera) MoveDown(amount float32) {
	c.Move(Down, amount)
}

// View returns the look-at matrix from the eye towards eye+front.
func (c *Camera) View() math.Mat4 {
	if c.isDirty {
		c.viewMatrix = math.NewMat4View(c.eye, c.front, c.right, c.up)
		c.isDirty = false
	}
	return c.viewMatrix
}

// Orientation returns the rotation taking camera space (looking down -Z with
// +Y up) to world space: a yaw about the world up followed by a pitch about
// the camera's right axis.
func (c *Camera) Orientation() math.Quaternion {
	// yaw -90 degrees is the identity orientation. The axes are constant unit
	// vectors, so these cannot fail.
	qYaw, _ := math.NewQuatFromAxisAngle(math.NewVec3Up(), -(c.yaw + math.K_HALF_PI))
	qPitch, _ := math.NewQuatFromAxisAngle(math.NewVec3Right(), c.pitch)
	return qYaw.Mul(qPitch)
}

// QuaternionView builds the view matrix from Orientation. It agrees with View
// up to rounding.
func (c *Camera) QuaternionView() math.Mat4 {
	rotation := c.Orientation().Conjugate().ToMat4()
	return rotation.Mul(math.NewMat4Translation(c.eye.Negate()))
}

// Projection returns a perspective projection, failing with
// math.ErrInvalidArgument on a degenerate frustum.
func (c *Camera) Projection(fovRadians, aspectRatio, nearClip, farClip float32) (math.Mat4, error) {
	return math.NewMat4Perspective(fovRadians, aspectRatio, nearClip, farClip)
}

func (c *Camera) updateVectors() {
	cosPitch := math32.Cos(c.pitch)
	front := math.NewVec3(
		cosPitch*math32.Cos(c.yaw),
		math32.Sin(c.pitch),
		cosPitch*math32.Sin(c.yaw),
	)
	// |pitch| < 90 degrees keeps right well defined
	front, err := front.Normalize()
	if err != nil {
		core.LogWarn("camera: keeping previous basis: %s", err)
		return
	}
	right, err := front.Cross(math.NewVec3Up()).Normalize()
	if err != nil {
		core.LogWarn("camera: keeping previous basis: %s", err)
		return
	}
	c.front = front
	c.right = right
	c.up = right.Cross(front)
	c.isDirty = true
}

func isFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}

// wrapAngle maps a finite angle into [-pi, pi).
func wrapAngle(a float32) float32 {
	if a >= -math.K_PI && a < math.K_PI {
		return a
	}
	a -= math.K_PI_2 * math32.Floor((a+math.K_PI)/math.K_PI_2)
	if a >= math.K_PI {
		a -= math.K_PI_2
	}
	if a < -math.K_PI {
		a += math.K_PI_2
	}
	return a
}
