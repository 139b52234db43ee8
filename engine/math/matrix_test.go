package math

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertMat4(t *testing.T, want, got Mat4) {
	t.Helper()
	assert.True(t, got.Compare(want, tolerance), "want\n%v\ngot\n%v", want, got)
}

func fromMGL(m mgl32.Mat4) Mat4 {
	return Mat4{Data: [16]float32(m)}
}

func TestMat4Identity(t *testing.T) {
	id := NewMat4Identity()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			want := float32(0)
			if r == c {
				want = 1
			}
			assert.Equal(t, want, id.At(r, c))
		}
	}
}

func TestMat4FromRowsLayout(t *testing.T) {
	m := NewMat4FromRows([4][4]float32{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	})
	// column-major: first column first
	assert.Equal(t, [16]float32{1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15, 4, 8, 12, 16}, m.Data)
	assert.Equal(t, float32(7), m.At(1, 2))

	m.Set(3, 0, 42)
	assert.Equal(t, float32(42), m.Data[3])
}

func TestMat4MulIsNotCommutative(t *testing.T) {
	tr := NewMat4Translation(NewVec3(1, 0, 0))
	sc := NewMat4Scale(NewVec3(2, 2, 2))
	p := NewVec3(1, 1, 1)

	// scale then translate
	assert.True(t, tr.Mul(sc).TransformPoint(p).Compare(NewVec3(3, 2, 2), tolerance))
	// translate then scale
	assert.True(t, sc.Mul(tr).TransformPoint(p).Compare(NewVec3(4, 2, 2), tolerance))
}

func TestMat4ScaleThenTranslate(t *testing.T) {
	m := NewMat4Translation(NewVec3(0.4, 0.3, 0)).Mul(NewMat4Scale(NewVec3(0.4, 0.3, 1)))
	got := m.MulVec4(NewVec4(1, 1, 1, 1))
	assert.True(t, got.Compare(NewVec4(0.8, 0.6, 0, 1), tolerance), "got %v", got)
}

func TestMat4AddSubScale(t *testing.T) {
	a := NewMat4Translation(NewVec3(1, 2, 3))
	b := NewMat4Scale(NewVec3(2, 3, 4))
	assertMat4(t, a, a.Add(b).Sub(b))
	assertMat4(t, a.Add(a), a.MulScalar(2))
}

func TestMat4TransposeInvolution(t *testing.T) {
	r, err := NewMat4Rotation(0.7, NewVec3(1, 2, 3))
	require.NoError(t, err)
	m := NewMat4Translation(NewVec3(4, -5, 6)).Mul(r)
	assert.Equal(t, m, m.Transposed().Transposed())
	assert.Equal(t, m.At(0, 3), m.Transposed().At(3, 0))
}

func TestMat4Inverse(t *testing.T) {
	rot, err := NewMat4Rotation(DegToRad(30), NewVec3(1, 1, 1))
	require.NoError(t, err)
	persp, err := NewMat4Perspective(DegToRad(45), 4.0/3.0, 0.2, 100)
	require.NoError(t, err)

	matrices := map[string]Mat4{
		"identity":    NewMat4Identity(),
		"translation": NewMat4Translation(NewVec3(1, -2, 3)),
		"scale":       NewMat4Scale(NewVec3(0.5, 2, 4)),
		"trs":         NewMat4Translation(NewVec3(2, 5, -10)).Mul(rot).Mul(NewMat4Scale(NewVec3(0.5, 0.5, 0.5))),
		"perspective": persp,
		"dense": NewMat4FromRows([4][4]float32{
			{4, 7, 2, 3},
			{0, 5, 1, 2},
			{3, 1, 6, 1},
			{2, 0, 1, 7},
		}),
	}
	for name, m := range matrices {
		t.Run(name, func(t *testing.T) {
			inv, err := m.Inverse()
			require.NoError(t, err)
			assert.True(t, m.Mul(inv).Compare(NewMat4Identity(), 1e-4), "M * inv(M)\n%v", m.Mul(inv))
			assert.True(t, inv.Mul(m).Compare(NewMat4Identity(), 1e-4), "inv(M) * M\n%v", inv.Mul(m))
		})
	}
}

func TestMat4InverseSingular(t *testing.T) {
	singular := []Mat4{
		{},
		NewMat4Scale(NewVec3(1, 0, 1)),
		NewMat4FromRows([4][4]float32{
			{1, 2, 3, 4},
			{2, 4, 6, 8},
			{0, 1, 0, 1},
			{1, 1, 1, 1},
		}),
	}
	for _, m := range singular {
		_, err := m.Inverse()
		assert.ErrorIs(t, err, ErrSingular)
	}
}

func TestMat4InverseSmallScale(t *testing.T) {
	small := map[string]Mat4{
		"uniform scale":   NewMat4Scale(NewVec3(1e-4, 1e-4, 1e-4)),
		"scaled identity": NewMat4Identity().MulScalar(1e-3),
	}
	for name, m := range small {
		t.Run(name, func(t *testing.T) {
			inv, err := m.Inverse()
			require.NoError(t, err)
			assert.True(t, inv.Mul(m).Compare(NewMat4Identity(), 1e-4), "inv(M) * M\n%v", inv.Mul(m))
		})
	}

	inv, err := NewMat4Scale(NewVec3(1e-4, 1e-4, 1e-4)).Inverse()
	require.NoError(t, err)
	assert.InDelta(t, 1e4, inv.At(0, 0), 1)
	assert.InDelta(t, 1, inv.At(3, 3), tolerance)

	// shrinking a singular matrix keeps it singular
	_, err = NewMat4Scale(NewVec3(1e-4, 0, 1e-4)).Inverse()
	assert.ErrorIs(t, err, ErrSingular)
}

func TestMat4Determinant(t *testing.T) {
	assert.InDelta(t, 24, NewMat4Scale(NewVec3(2, 3, 4)).Determinant(), tolerance)
	assert.InDelta(t, 1, NewMat4Translation(NewVec3(9, 9, 9)).Determinant(), tolerance)
}

func TestMat4RotationZeroAngle(t *testing.T) {
	axes := []Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 1}, {-3, 0.5, 2}}
	for _, axis := range axes {
		r, err := NewMat4Rotation(0, axis)
		require.NoError(t, err)
		assertMat4(t, NewMat4Identity(), r)
	}
}

func TestMat4RotationZeroAxis(t *testing.T) {
	_, err := NewMat4Rotation(1, NewVec3Zero())
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestMat4RotationRightHandRule(t *testing.T) {
	r, err := NewMat4Rotation(K_HALF_PI, NewVec3(0, 0, 1))
	require.NoError(t, err)
	// +X turns into +Y about +Z
	assert.True(t, r.TransformPoint(NewVec3(1, 0, 0)).Compare(NewVec3(0, 1, 0), tolerance))

	assertMat4(t, NewMat4EulerZ(K_HALF_PI), r)

	rx, err := NewMat4Rotation(0.3, NewVec3(2, 0, 0))
	require.NoError(t, err)
	assertMat4(t, NewMat4EulerX(0.3), rx)

	ry, err := NewMat4Rotation(-1.1, NewVec3(0, 5, 0))
	require.NoError(t, err)
	assertMat4(t, NewMat4EulerY(-1.1), ry)
}

func TestBuildersMatchMathGL(t *testing.T) {
	v := NewVec3(0.4, -0.3, 2)
	assertMat4(t, fromMGL(mgl32.Translate3D(v.X, v.Y, v.Z)), NewMat4Translation(v))
	assertMat4(t, fromMGL(mgl32.Scale3D(v.X, v.Y, v.Z)), NewMat4Scale(v))

	axis := NewVec3(1, 2, -1)
	unit, err := axis.Normalize()
	require.NoError(t, err)
	r, err := NewMat4Rotation(1.25, axis)
	require.NoError(t, err)
	assertMat4(t, fromMGL(mgl32.HomogRotate3D(1.25, mgl32.Vec3{unit.X, unit.Y, unit.Z})), r)

	p, err := NewMat4Perspective(DegToRad(45), 1024.0/768.0, 0.2, 100)
	require.NoError(t, err)
	assertMat4(t, fromMGL(mgl32.Perspective(DegToRad(45), 1024.0/768.0, 0.2, 100)), p)

	eye, target, up := NewVec3(1, 2, 4), NewVec3(0, 0, 0), NewVec3Up()
	l, err := NewMat4LookAt(eye, target, up)
	require.NoError(t, err)
	assertMat4(t, fromMGL(mgl32.LookAtV(
		mgl32.Vec3{eye.X, eye.Y, eye.Z},
		mgl32.Vec3{target.X, target.Y, target.Z},
		mgl32.Vec3{up.X, up.Y, up.Z},
	)), l)

	o, err := NewMat4Orthographic(-2, 2, -1, 1, 0.1, 10)
	require.NoError(t, err)
	assertMat4(t, fromMGL(mgl32.Ortho(-2, 2, -1, 1, 0.1, 10)), o)
}

func TestMat4PerspectiveInvalid(t *testing.T) {
	tests := []struct {
		name                   string
		fov, aspect, near, far float32
	}{
		{"zero near", 1, 1, 0, 10},
		{"negative near", 1, 1, -1, 10},
		{"far equals near", 1, 1, 1, 1},
		{"far before near", 1, 1, 5, 1},
		{"zero fov", 0, 1, 0.1, 10},
		{"fov of pi", K_PI, 1, 0.1, 10},
		{"negative fov", -0.5, 1, 0.1, 10},
		{"zero aspect", 1, 0, 0.1, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMat4Perspective(tt.fov, tt.aspect, tt.near, tt.far)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestMat4LookAtInvalid(t *testing.T) {
	_, err := NewMat4LookAt(NewVec3One(), NewVec3One(), NewVec3Up())
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewMat4LookAt(NewVec3Zero(), NewVec3(0, 5, 0), NewVec3Up())
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestMat4RowMajorRoundTrip(t *testing.T) {
	m := NewMat4Translation(NewVec3(1, 2, 3))
	rm := m.ToRowMajor()
	// translation sits in the last column of each row
	assert.Equal(t, float32(1), rm[3])
	assert.Equal(t, float32(2), rm[7])
	assert.Equal(t, float32(3), rm[11])
	assert.Equal(t, m, NewMat4FromRowMajor(rm))
	assert.Equal(t, m.Data, m.Uniform())
}

func TestMat4String(t *testing.T) {
	s := NewMat4Translation(NewVec3(1, 2, 3)).String()
	assert.Contains(t, s, "[   1.000   0.000   0.000   1.000 ]")
	assert.Contains(t, s, "[   0.000   0.000   0.000   1.000 ]")
}

func TestMat4Basis(t *testing.T) {
	view, err := NewMat4LookAt(NewVec3(0, 0, 4), NewVec3Zero(), NewVec3Up())
	require.NoError(t, err)
	assert.True(t, view.Forward().Compare(NewVec3Forward(), tolerance))
	assert.True(t, view.Right().Compare(NewVec3Right(), tolerance))
	assert.True(t, view.Up().Compare(NewVec3Up(), tolerance))
}

func BenchmarkMat4Mul(b *testing.B) {
	m1 := NewMat4Translation(NewVec3(1, 2, 3))
	m2 := NewMat4EulerY(0.5)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m1.Mul(m2)
	}
}

func BenchmarkMat4Inverse(b *testing.B) {
	m := NewMat4Translation(NewVec3(1, 2, 3)).Mul(NewMat4EulerY(0.5)).Mul(NewMat4Scale(NewVec3(2, 2, 2)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Inverse()
	}
}
