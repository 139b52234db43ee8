package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-5

func TestVec3Length(t *testing.T) {
	a := NewVec3(3, 0, 4)
	assert.Equal(t, float32(5.0), a.Length())
	assert.Equal(t, float32(25.0), a.LengthSquared())
}

func TestVec3Normalize(t *testing.T) {
	n, err := NewVec3(3, 0, 4).Normalize()
	require.NoError(t, err)
	assert.True(t, n.Compare(NewVec3(0.6, 0, 0.8), tolerance), "got %v", n)

	vectors := []Vec3{
		{1, 2, 3},
		{-7, 0.25, 11},
		{1e-3, 0, 0},
		{1e4, -2e4, 3e4},
		{0, 0, -1},
	}
	for _, v := range vectors {
		n, err := v.Normalize()
		require.NoError(t, err)
		assert.InDelta(t, 1.0, n.Length(), tolerance, "normalize(%v)", v)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	_, err := NewVec3Zero().Normalize()
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestVec3Arithmetic(t *testing.T) {
	a := NewVec3(3, 0, 4)
	b := NewVec3(1, 2, 3)

	tests := []struct {
		name string
		got  Vec3
		want Vec3
	}{
		{"add", a.Add(b), NewVec3(4, 2, 7)},
		{"sub", a.Sub(b), NewVec3(2, -2, 1)},
		{"scale", a.MulScalar(2), NewVec3(6, 0, 8)},
		{"divide", b.DivScalar(3), NewVec3(1.0/3, 2.0/3, 1)},
		{"component-wise", a.Mul(b), NewVec3(3, 0, 12)},
		{"negate", b.Negate(), NewVec3(-1, -2, -3)},
		{"cross", a.Cross(b), NewVec3(-8, -5, 6)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.got.Compare(tt.want, tolerance), "got %v, want %v", tt.got, tt.want)
		})
	}

	assert.Equal(t, float32(15), a.Dot(b))
	assert.InDelta(t, 3.0, NewVec3(1, 2, 3).Distance(NewVec3(1, 2, 0)), tolerance)
}

func TestVec3CrossIsOrthogonal(t *testing.T) {
	pairs := [][2]Vec3{
		{{3, 0, 4}, {1, 2, 3}},
		{{1, 0, 0}, {0, 1, 0}},
		{{-2, 5, 0.5}, {7, -1, 3}},
		{{0.1, 0.2, 0.3}, {0.3, 0.2, 0.1}},
	}
	for _, p := range pairs {
		c := p[0].Cross(p[1])
		assert.InDelta(t, 0, p[0].Dot(c), 1e-4, "a . (a x b) for %v", p)
		assert.InDelta(t, 0, p[1].Dot(c), 1e-4, "b . (a x b) for %v", p)
	}
}

func TestAngleConversion(t *testing.T) {
	assert.InDelta(t, K_PI, DegToRad(180), tolerance)
	assert.InDelta(t, K_HALF_PI, DegToRad(90), tolerance)
	assert.InDelta(t, 45, RadToDeg(DegToRad(45)), 1e-4)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(5, -1, 1))
	assert.Equal(t, float32(-1), Clamp(float32(-3), -1, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
	assert.Equal(t, float32(2), Abs(float32(-2)))
}

func TestVec4(t *testing.T) {
	v := NewVec3(1, 2, 3).ToVec4(1)
	assert.Equal(t, NewVec4(1, 2, 3, 1), v)
	assert.Equal(t, NewVec3(1, 2, 3), v.ToVec3())
	assert.Equal(t, float32(15), v.Dot(v))
	assert.True(t, v.Add(v).Sub(v).Compare(v, tolerance))
}
