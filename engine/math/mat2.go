package math

import (
	"fmt"

	"github.com/chewxy/math32"
)

// NewMat2Identity returns the 2x2 identity matrix.
func NewMat2Identity() Mat2 {
	return Mat2{Data: [4]float32{1, 0, 0, 1}}
}

// NewMat2 builds a matrix from its columns, the same argument order a
// graphics math library's mat2 constructor uses: (c0r0, c0r1, c1r0, c1r1).
func NewMat2(c0r0, c0r1, c1r0, c1r1 float32) Mat2 {
	return Mat2{Data: [4]float32{c0r0, c0r1, c1r0, c1r1}}
}

// NewMat2FromRows builds a matrix from rows as written on paper.
func NewMat2FromRows(r0c0, r0c1, r1c0, r1c1 float32) Mat2 {
	return Mat2{Data: [4]float32{r0c0, r1c0, r0c1, r1c1}}
}

func (mt Mat2) At(row, col int) float32 {
	return mt.Data[col*2+row]
}

func (mt Mat2) Add(other Mat2) Mat2 {
	return Mat2{Data: [4]float32{
		mt.Data[0] + other.Data[0], mt.Data[1] + other.Data[1],
		mt.Data[2] + other.Data[2], mt.Data[3] + other.Data[3],
	}}
}

func (mt Mat2) Sub(other Mat2) Mat2 {
	return mt.Add(other.MulScalar(-1))
}

func (mt Mat2) MulScalar(scalar float32) Mat2 {
	return Mat2{Data: [4]float32{
		mt.Data[0] * scalar, mt.Data[1] * scalar,
		mt.Data[2] * scalar, mt.Data[3] * scalar,
	}}
}

func (mt Mat2) DivScalar(scalar float32) Mat2 {
	return mt.MulScalar(1 / scalar)
}

// Mul returns mt * other.
func (mt Mat2) Mul(other Mat2) Mat2 {
	a, b := mt.Data, other.Data
	return Mat2{Data: [4]float32{
		a[0]*b[0] + a[2]*b[1],
		a[1]*b[0] + a[3]*b[1],
		a[0]*b[2] + a[2]*b[3],
		a[1]*b[2] + a[3]*b[3],
	}}
}

func (mt Mat2) Transposed() Mat2 {
	return Mat2{Data: [4]float32{mt.Data[0], mt.Data[2], mt.Data[1], mt.Data[3]}}
}

func (mt Mat2) Determinant() float32 {
	return mt.Data[0]*mt.Data[3] - mt.Data[2]*mt.Data[1]
}

// Inverse returns the inverse of mt, or ErrSingular when the determinant is
// zero relative to the length of the columns.
func (mt Mat2) Inverse() (Mat2, error) {
	det := mt.Determinant()
	c0 := math32.Hypot(mt.Data[0], mt.Data[1])
	c1 := math32.Hypot(mt.Data[2], mt.Data[3])
	if isSingular(det, c0*c1) {
		return Mat2{}, fmt.Errorf("inverse (det=%g): %w", det, ErrSingular)
	}
	inv := 1 / det
	return Mat2{Data: [4]float32{
		mt.Data[3] * inv, -mt.Data[1] * inv,
		-mt.Data[2] * inv, mt.Data[0] * inv,
	}}, nil
}

func (mt Mat2) Compare(other Mat2, tolerance float32) bool {
	for i := range mt.Data {
		if math32.Abs(mt.Data[i]-other.Data[i]) > tolerance {
			return false
		}
	}
	return true
}

func (mt Mat2) String() string {
	return fmt.Sprintf("[ %7.3f %7.3f ]\n[ %7.3f %7.3f ]", mt.At(0, 0), mt.At(0, 1), mt.At(1, 0), mt.At(1, 1))
}
