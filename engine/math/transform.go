package math

import "fmt"

// TransformCreate returns a transform at the origin with unit scale, no
// rotation and the default +Y rotation axis.
func TransformCreate() Transform {
	return Transform{
		Position: NewVec3Zero(),
		Axis:     NewVec3Up(),
		Scale:    NewVec3One(),
	}
}

func TransformFromPosition(position Vec3) Transform {
	t := TransformCreate()
	t.Position = position
	return t
}

func TransformFromPositionRotationScale(position, axis Vec3, angle float32, scale Vec3) Transform {
	return Transform{
		Position: position,
		Axis:     axis,
		Scale:    scale,
		Angle:    angle,
	}
}

// Translate moves the transform by translation.
func (t *Transform) Translate(translation Vec3) {
	t.Position = t.Position.Add(translation)
}

// Rotate adds angle radians about the current axis.
func (t *Transform) Rotate(angle float32) {
	t.Angle += angle
}

/**
 * @brief Builds the model matrix T * R * S: the object is scaled first, then
 * rotated about Axis, then translated to Position. Callers depend on this
 * order; swapping it moves scaled objects off their positions.
 *
 * @return ErrInvalidArgument if Axis is the zero vector.
 */
func (t Transform) Model() (Mat4, error) {
	r, err := NewMat4Rotation(t.Angle, t.Axis)
	if err != nil {
		return Mat4{}, fmt.Errorf("model matrix: %w", err)
	}
	return NewMat4Translation(t.Position).Mul(r).Mul(NewMat4Scale(t.Scale)), nil
}
