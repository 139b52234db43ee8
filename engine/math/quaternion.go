package math

import (
	"fmt"

	"github.com/chewxy/math32"
)

// ------------------------------------------
// Quaternion
// ------------------------------------------

/**
 * @brief Creates an identity quaternion.
 */
func NewQuatIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1.0}
}

/**
 * @brief Calculates a quaternion representing a rotation of angle radians
 * about axis (right-hand rule).
 *
 * @return ErrInvalidArgument if axis is the zero vector.
 */
func NewQuatFromAxisAngle(axis Vec3, angle float32) (Quaternion, error) {
	a, err := axis.Normalize()
	if err != nil {
		return Quaternion{}, fmt.Errorf("quaternion axis: %w", err)
	}
	half := 0.5 * angle
	s := math32.Sin(half)
	return Quaternion{a.X * s, a.Y * s, a.Z * s, math32.Cos(half)}, nil
}

/**
 * @brief Returns the normal (magnitude) of the provided quaternion.
 */
func (q Quaternion) Normal() float32 {
	return math32.Sqrt(q.Dot(q))
}

/**
 * @brief Returns a unit-length copy of the quaternion.
 */
func (q Quaternion) Normalize() (Quaternion, error) {
	n := q.Normal()
	if n == 0 {
		return Quaternion{}, fmt.Errorf("normalize zero quaternion: %w", ErrInvalidArgument)
	}
	return Quaternion{q.X / n, q.Y / n, q.Z / n, q.W / n}, nil
}

/**
 * @brief Returns the conjugate of the provided quaternion. That is,
 * The x, y and z elements are negated, but the w element is untouched.
 */
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, q.W}
}

/**
 * @brief Multiplies the provided quaternions (Hamilton product). The result
 * rotates by other first and then by q.
 */
func (q Quaternion) Mul(other Quaternion) Quaternion {
	return Quaternion{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

/**
 * @brief Calculates the dot product of the provided quaternions.
 */
func (q Quaternion) Dot(other Quaternion) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// Rotate applies the (unit) quaternion to v: q * v * q^-1.
func (q Quaternion) Rotate(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	t := u.Cross(v).MulScalar(2)
	return v.Add(t.MulScalar(q.W)).Add(u.Cross(t))
}

/**
 * @brief Creates a rotation matrix from the given unit quaternion.
 */
func (q Quaternion) ToMat4() Mat4 {
	x, y, z, w := q.X, q.Y, q.Z, q.W
	out := NewMat4Identity()
	out.Data[0] = 1 - 2*(y*y+z*z)
	out.Data[1] = 2 * (x*y + w*z)
	out.Data[2] = 2 * (x*z - w*y)
	out.Data[4] = 2 * (x*y - w*z)
	out.Data[5] = 1 - 2*(x*x+z*z)
	out.Data[6] = 2 * (y*z + w*x)
	out.Data[8] = 2 * (x*z + w*y)
	out.Data[9] = 2 * (y*z - w*x)
	out.Data[10] = 1 - 2*(x*x+y*y)
	return out
}

/**
 * @brief Calculates spherical linear interpolation of a given percentage
 * between two quaternions.
 *
 * @param percentage The percentage of interpolation, typically a value from 0.0f-1.0f.
 */
func (q Quaternion) Slerp(other Quaternion, percentage float32) Quaternion {
	v0, err := q.Normalize()
	if err != nil {
		return other
	}
	v1, err := other.Normalize()
	if err != nil {
		return q
	}

	dot := v0.Dot(v1)

	// If the dot product is negative, slerp won't take the shorter path.
	// q and -q are equivalent when the negation is applied to all four components.
	if dot < 0.0 {
		v1 = Quaternion{-v1.X, -v1.Y, -v1.Z, -v1.W}
		dot = -dot
	}

	const dotThreshold = 0.9995
	if dot > dotThreshold {
		// Inputs are too close: linearly interpolate and normalize.
		out := Quaternion{
			v0.X + (v1.X-v0.X)*percentage,
			v0.Y + (v1.Y-v0.Y)*percentage,
			v0.Z + (v1.Z-v0.Z)*percentage,
			v0.W + (v1.W-v0.W)*percentage,
		}
		n, _ := out.Normalize()
		return n
	}

	theta0 := math32.Acos(dot)
	theta := theta0 * percentage
	sinTheta := math32.Sin(theta)
	sinTheta0 := math32.Sin(theta0)

	s0 := math32.Cos(theta) - dot*sinTheta/sinTheta0
	s1 := sinTheta / sinTheta0

	return Quaternion{
		v0.X*s0 + v1.X*s1,
		v0.Y*s0 + v1.Y*s1,
		v0.Z*s0 + v1.Z*s1,
		v0.W*s0 + v1.W*s1,
	}
}

// Compare reports whether q and other are within tolerance component-wise.
func (q Quaternion) Compare(other Quaternion, tolerance float32) bool {
	return Vec4(q).Compare(Vec4(other), tolerance)
}
