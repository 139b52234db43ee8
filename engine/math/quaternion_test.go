package math

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuatMatchesAxisAngleMatrix(t *testing.T) {
	tests := []struct {
		axis  Vec3
		angle float32
	}{
		{NewVec3(0, 1, 0), 0.5},
		{NewVec3(1, 1, 1), DegToRad(20)},
		{NewVec3(-2, 0.5, 3), -1.3},
		{NewVec3(0, 0, 1), K_PI},
	}
	for _, tt := range tests {
		q, err := NewQuatFromAxisAngle(tt.axis, tt.angle)
		require.NoError(t, err)
		r, err := NewMat4Rotation(tt.angle, tt.axis)
		require.NoError(t, err)
		assertMat4(t, r, q.ToMat4())

		p := NewVec3(0.3, -1, 2)
		assert.True(t, q.Rotate(p).Compare(r.TransformPoint(p), tolerance))
	}
}

func TestQuatZeroAxis(t *testing.T) {
	_, err := NewQuatFromAxisAngle(NewVec3Zero(), 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = Quaternion{}.Normalize()
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestQuatMulComposesRotations(t *testing.T) {
	yaw, err := NewQuatFromAxisAngle(NewVec3Up(), 0.8)
	require.NoError(t, err)
	pitch, err := NewQuatFromAxisAngle(NewVec3Right(), -0.4)
	require.NoError(t, err)

	// yaw * pitch applies pitch first
	want := NewMat4EulerY(0.8).Mul(NewMat4EulerX(-0.4))
	assertMat4(t, want, yaw.Mul(pitch).ToMat4())

	// q * conj(q) is the identity rotation
	assert.True(t, yaw.Mul(yaw.Conjugate()).Compare(NewQuatIdentity(), tolerance))
	assert.InDelta(t, 1, yaw.Mul(pitch).Normal(), tolerance)
}

func TestQuatMatchesMathGL(t *testing.T) {
	q, err := NewQuatFromAxisAngle(NewVec3(1, 2, 3), 0.9)
	require.NoError(t, err)
	n, err := NewVec3(1, 2, 3).Normalize()
	require.NoError(t, err)
	ref := mgl32.QuatRotate(0.9, mgl32.Vec3{n.X, n.Y, n.Z})
	assertMat4(t, fromMGL(ref.Mat4()), q.ToMat4())
}

func TestQuatSlerp(t *testing.T) {
	a := NewQuatIdentity()
	b, err := NewQuatFromAxisAngle(NewVec3Up(), K_HALF_PI)
	require.NoError(t, err)
	half, err := NewQuatFromAxisAngle(NewVec3Up(), K_HALF_PI/2)
	require.NoError(t, err)

	assert.True(t, a.Slerp(b, 0).Compare(a, tolerance))
	assert.True(t, a.Slerp(b, 1).Compare(b, tolerance))
	assert.True(t, a.Slerp(b, 0.5).Compare(half, tolerance), "got %v", a.Slerp(b, 0.5))
}
