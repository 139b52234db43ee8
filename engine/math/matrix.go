package math

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// ------------------------------------------
// Matrix 4
// ------------------------------------------

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * @return A new identity matrix
 */
func NewMat4Identity() Mat4 {
	out := Mat4{}
	out.Data[0] = 1.0
	out.Data[5] = 1.0
	out.Data[10] = 1.0
	out.Data[15] = 1.0
	return out
}

// NewMat4FromRows builds a matrix from rows as they would be written on paper.
func NewMat4FromRows(rows [4][4]float32) Mat4 {
	out := Mat4{}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out.Data[c*4+r] = rows[r][c]
		}
	}
	return out
}

// At returns the element in the given row and column.
func (mt Mat4) At(row, col int) float32 {
	return mt.Data[col*4+row]
}

// Set stores value in the given row and column.
func (mt *Mat4) Set(row, col int, value float32) {
	mt.Data[col*4+row] = value
}

func (mt Mat4) Add(other Mat4) Mat4 {
	out := Mat4{}
	for i := range mt.Data {
		out.Data[i] = mt.Data[i] + other.Data[i]
	}
	return out
}

func (mt Mat4) Sub(other Mat4) Mat4 {
	out := Mat4{}
	for i := range mt.Data {
		out.Data[i] = mt.Data[i] - other.Data[i]
	}
	return out
}

func (mt Mat4) MulScalar(scalar float32) Mat4 {
	out := Mat4{}
	for i := range mt.Data {
		out.Data[i] = mt.Data[i] * scalar
	}
	return out
}

/**
 * @brief Returns the result of multiplying mt and other (mt * other).
 * Applied to a column vector, other acts first and mt second.
 */
func (mt Mat4) Mul(other Mat4) Mat4 {
	out := Mat4{}
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			sum := float32(0)
			for i := 0; i < 4; i++ {
				sum += mt.Data[i*4+row] * other.Data[col*4+i]
			}
			out.Data[col*4+row] = sum
		}
	}
	return out
}

// MulVec4 returns mt * v.
func (mt Mat4) MulVec4(v Vec4) Vec4 {
	m := &mt.Data
	return Vec4{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		W: m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// TransformPoint applies mt to p with w = 1 and drops the resulting w.
func (mt Mat4) TransformPoint(p Vec3) Vec3 {
	return mt.MulVec4(p.ToVec4(1)).ToVec3()
}

// TransformDirection applies mt to d with w = 0, ignoring translation.
func (mt Mat4) TransformDirection(d Vec3) Vec3 {
	return mt.MulVec4(d.ToVec4(0)).ToVec3()
}

/**
 * @brief Returns a transposed copy of the provided matrix (rows->columns)
 */
func (mt Mat4) Transposed() Mat4 {
	out := Mat4{}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out.Data[r*4+c] = mt.Data[c*4+r]
		}
	}
	return out
}

// Determinant returns the determinant of mt.
func (mt Mat4) Determinant() float32 {
	_, det := mt.cofactors()
	return det
}

/**
 * @brief Creates and returns an inverse of the provided matrix.
 *
 * @return ErrSingular when the determinant is (numerically) zero.
 */
func (mt Mat4) Inverse() (Mat4, error) {
	adj, det := mt.cofactors()
	if isSingular(det, mt.columnLengths()) {
		return Mat4{}, fmt.Errorf("inverse (det=%g): %w", det, ErrSingular)
	}
	return adj.MulScalar(1.0 / det), nil
}

// columnLengths returns the product of the Euclidean lengths of the columns,
// which bounds |det| from above.
func (mt Mat4) columnLengths() float32 {
	product := float32(1)
	for col := 0; col < 4; col++ {
		c := mt.Data[col*4 : col*4+4]
		product *= math32.Sqrt(c[0]*c[0] + c[1]*c[1] + c[2]*c[2] + c[3]*c[3])
	}
	return product
}

// isSingular compares det against the column length product so a uniformly
// scaled matrix is singular exactly when the unscaled one is.
func isSingular(det, columnLengths float32) bool {
	if math32.IsNaN(det) || math32.IsInf(det, 0) || det == 0 {
		return true
	}
	return math32.Abs(det) <= K_SINGULAR_EPSILON*columnLengths
}

// cofactors returns the adjugate and determinant of mt, built from the 2x2
// sub-determinants of the top and bottom halves.
func (mt Mat4) cofactors() (Mat4, float32) {
	m := &mt.Data
	a00, a01, a02, a03 := m[0], m[1], m[2], m[3]
	a10, a11, a12, a13 := m[4], m[5], m[6], m[7]
	a20, a21, a22, a23 := m[8], m[9], m[10], m[11]
	a30, a31, a32, a33 := m[12], m[13], m[14], m[15]

	b00 := a00*a11 - a01*a10
	b01 := a00*a12 - a02*a10
	b02 := a00*a13 - a03*a10
	b03 := a01*a12 - a02*a11
	b04 := a01*a13 - a03*a11
	b05 := a02*a13 - a03*a12
	b06 := a20*a31 - a21*a30
	b07 := a20*a32 - a22*a30
	b08 := a20*a33 - a23*a30
	b09 := a21*a32 - a22*a31
	b10 := a21*a33 - a23*a31
	b11 := a22*a33 - a23*a32

	det := b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06

	out := Mat4{}
	o := &out.Data
	o[0] = a11*b11 - a12*b10 + a13*b09
	o[1] = a02*b10 - a01*b11 - a03*b09
	o[2] = a31*b05 - a32*b04 + a33*b03
	o[3] = a22*b04 - a21*b05 - a23*b03
	o[4] = a12*b08 - a10*b11 - a13*b07
	o[5] = a00*b11 - a02*b08 + a03*b07
	o[6] = a32*b02 - a30*b05 - a33*b01
	o[7] = a20*b05 - a22*b02 + a23*b01
	o[8] = a10*b10 - a11*b08 + a13*b06
	o[9] = a01*b08 - a00*b10 - a03*b06
	o[10] = a30*b04 - a31*b02 + a33*b00
	o[11] = a21*b02 - a20*b04 - a23*b00
	o[12] = a11*b07 - a10*b09 - a12*b06
	o[13] = a00*b09 - a01*b07 + a02*b06
	o[14] = a31*b01 - a30*b03 - a32*b00
	o[15] = a20*b03 - a21*b01 + a22*b00
	return out, det
}

// Compare reports whether every element of mt is within tolerance of other.
func (mt Mat4) Compare(other Mat4, tolerance float32) bool {
	for i := range mt.Data {
		if math32.Abs(mt.Data[i]-other.Data[i]) > tolerance {
			return false
		}
	}
	return true
}

// Uniform returns the elements in upload order (column-major).
func (mt Mat4) Uniform() [16]float32 {
	return mt.Data
}

// ToRowMajor converts mt to the row-major layout used by x/image/math/f32.
func (mt Mat4) ToRowMajor() f32.Mat4 {
	return f32.Mat4(mt.Transposed().Data)
}

// NewMat4FromRowMajor is the inverse of ToRowMajor.
func NewMat4FromRowMajor(m f32.Mat4) Mat4 {
	return Mat4{Data: [16]float32(m)}.Transposed()
}

// String prints the matrix one row per line, the way it reads on paper.
func (mt Mat4) String() string {
	rm := mt.ToRowMajor()
	var sb strings.Builder
	for r := 0; r < 4; r++ {
		fmt.Fprintf(&sb, "[ %7.3f %7.3f %7.3f %7.3f ]", rm[4*r], rm[4*r+1], rm[4*r+2], rm[4*r+3])
		if r < 3 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ------------------------------------------
// Builders
// ------------------------------------------

/**
 * @brief Creates and returns a translation matrix from the given position:
 * the identity with the translation column set to position.
 */
func NewMat4Translation(position Vec3) Mat4 {
	out := NewMat4Identity()
	out.Data[12] = position.X
	out.Data[13] = position.Y
	out.Data[14] = position.Z
	return out
}

/**
 * @brief Returns a scale matrix using the provided scale: diag(x, y, z, 1).
 */
func NewMat4Scale(scale Vec3) Mat4 {
	out := NewMat4Identity()
	out.Data[0] = scale.X
	out.Data[5] = scale.Y
	out.Data[10] = scale.Z
	return out
}

/**
 * @brief Creates an axis-angle rotation matrix (Rodrigues' formula). Positive
 * angles turn counter-clockwise when looking down the axis towards the origin
 * (right-hand rule). The axis need not be unit length.
 *
 * @param angle_radians The angle in radians.
 * @param axis The axis of rotation.
 * @return ErrInvalidArgument if axis is the zero vector.
 */
func NewMat4Rotation(angleRadians float32, axis Vec3) (Mat4, error) {
	a, err := axis.Normalize()
	if err != nil {
		return Mat4{}, fmt.Errorf("rotation axis: %w", err)
	}
	c := math32.Cos(angleRadians)
	s := math32.Sin(angleRadians)
	t := 1 - c
	x, y, z := a.X, a.Y, a.Z

	return Mat4{Data: [16]float32{
		t*x*x + c, t*x*y + s*z, t*x*z - s*y, 0,
		t*x*y - s*z, t*y*y + c, t*y*z + s*x, 0,
		t*x*z + s*y, t*y*z - s*x, t*z*z + c, 0,
		0, 0, 0, 1,
	}}, nil
}

/**
 * @brief Creates a rotation matrix from the provided x angle.
 */
func NewMat4EulerX(angleRadians float32) Mat4 {
	out := NewMat4Identity()
	c := math32.Cos(angleRadians)
	s := math32.Sin(angleRadians)
	out.Data[5] = c
	out.Data[6] = s
	out.Data[9] = -s
	out.Data[10] = c
	return out
}

/**
 * @brief Creates a rotation matrix from the provided y angle.
 */
func NewMat4EulerY(angleRadians float32) Mat4 {
	out := NewMat4Identity()
	c := math32.Cos(angleRadians)
	s := math32.Sin(angleRadians)
	out.Data[0] = c
	out.Data[2] = -s
	out.Data[8] = s
	out.Data[10] = c
	return out
}

/**
 * @brief Creates a rotation matrix from the provided z angle.
 */
func NewMat4EulerZ(angleRadians float32) Mat4 {
	out := NewMat4Identity()
	c := math32.Cos(angleRadians)
	s := math32.Sin(angleRadians)
	out.Data[0] = c
	out.Data[1] = s
	out.Data[4] = -s
	out.Data[5] = c
	return out
}

/**
 * @brief Creates and returns a perspective matrix. Typically used to render 3d scenes.
 * Clip-space z spans [-1, 1] as in OpenGL.
 *
 * @param fov_radians The vertical field of view in radians, in (0, PI).
 * @param aspect_ratio The aspect ratio (width / height), > 0.
 * @param near_clip The near clipping plane distance, > 0.
 * @param far_clip The far clipping plane distance, > near_clip.
 */
func NewMat4Perspective(fovRadians, aspectRatio, nearClip, farClip float32) (Mat4, error) {
	switch {
	case !(fovRadians > 0 && fovRadians < K_PI):
		return Mat4{}, fmt.Errorf("perspective fov %g outside (0, pi): %w", fovRadians, ErrInvalidArgument)
	case !(aspectRatio > 0):
		return Mat4{}, fmt.Errorf("perspective aspect ratio %g must be positive: %w", aspectRatio, ErrInvalidArgument)
	case !(nearClip > 0):
		return Mat4{}, fmt.Errorf("perspective near clip %g must be positive: %w", nearClip, ErrInvalidArgument)
	case !(farClip > nearClip):
		return Mat4{}, fmt.Errorf("perspective far clip %g must exceed near clip %g: %w", farClip, nearClip, ErrInvalidArgument)
	}

	f := 1.0 / math32.Tan(fovRadians*0.5)
	out := Mat4{}
	out.Data[0] = f / aspectRatio
	out.Data[5] = f
	out.Data[10] = (farClip + nearClip) / (nearClip - farClip)
	out.Data[11] = -1.0
	out.Data[14] = (2.0 * farClip * nearClip) / (nearClip - farClip)
	return out, nil
}

/**
 * @brief Creates and returns an orthographic projection matrix. Typically used to
 * render flat or 2D scenes.
 */
func NewMat4Orthographic(left, right, bottom, top, nearClip, farClip float32) (Mat4, error) {
	if left == right || bottom == top || nearClip == farClip {
		return Mat4{}, fmt.Errorf("orthographic volume has zero extent: %w", ErrInvalidArgument)
	}
	out := NewMat4Identity()

	lr := 1.0 / (left - right)
	bt := 1.0 / (bottom - top)
	nf := 1.0 / (nearClip - farClip)

	out.Data[0] = -2.0 * lr
	out.Data[5] = -2.0 * bt
	out.Data[10] = 2.0 * nf

	out.Data[12] = (left + right) * lr
	out.Data[13] = (top + bottom) * bt
	out.Data[14] = (farClip + nearClip) * nf
	return out, nil
}

/**
 * @brief Creates and returns a look-at matrix, or a matrix looking
 * at target from the perspective of position.
 *
 * @return ErrInvalidArgument if position equals target or up is parallel to
 * the viewing direction.
 */
func NewMat4LookAt(position, target, up Vec3) (Mat4, error) {
	front, err := target.Sub(position).Normalize()
	if err != nil {
		return Mat4{}, fmt.Errorf("look-at direction: %w", err)
	}
	right, err := front.Cross(up).Normalize()
	if err != nil {
		return Mat4{}, fmt.Errorf("look-at up vector parallel to direction: %w", err)
	}
	return NewMat4View(position, front, right, right.Cross(front)), nil
}

// NewMat4View builds a view matrix from an orthonormal camera basis. The
// camera looks down front with up pointing to the top of the screen.
func NewMat4View(position, front, right, up Vec3) Mat4 {
	return Mat4{Data: [16]float32{
		right.X, up.X, -front.X, 0,
		right.Y, up.Y, -front.Y, 0,
		right.Z, up.Z, -front.Z, 0,
		-right.Dot(position), -up.Dot(position), front.Dot(position), 1,
	}}
}

/**
 * @brief Returns a forward vector relative to the provided matrix.
 */
func (mt Mat4) Forward() Vec3 {
	return Vec3{-mt.Data[2], -mt.Data[6], -mt.Data[10]}.normalized()
}

/**
 * @brief Returns a right vector relative to the provided matrix.
 */
func (mt Mat4) Right() Vec3 {
	return Vec3{mt.Data[0], mt.Data[4], mt.Data[8]}.normalized()
}

/**
 * @brief Returns an up vector relative to the provided matrix.
 */
func (mt Mat4) Up() Vec3 {
	return Vec3{mt.Data[1], mt.Data[5], mt.Data[9]}.normalized()
}
