package testbed

import (
	"fmt"
	"io"
	"strings"

	"github.com/spaghettifunk/gfxlabs/engine/math"
)

// Step is one line of the vector and matrix walkthrough.
type Step struct {
	Label string
	Value fmt.Stringer
}

type scalar float32

func (s scalar) String() string {
	return fmt.Sprintf("%.3f", float32(s))
}

type flag bool

func (f flag) String() string {
	if f {
		return "yes"
	}
	return "no"
}

// VectorSteps works through the vector and 2x2 matrix exercises on
// a = (3, 0, 4), b = (1, 2, 3), A = [[1 2] [3 4]] and B = [[5 6] [7 8]].
func VectorSteps() ([]Step, error) {
	a := math.NewVec3(3, 0, 4)
	b := math.NewVec3(1, 2, 3)
	na, err := a.Normalize()
	if err != nil {
		return nil, err
	}
	nb, err := b.Normalize()
	if err != nil {
		return nil, err
	}
	cross := a.Cross(b)

	steps := []Step{
		{"a", a},
		{"b", b},
		{"|a|", scalar(a.Length())},
		{"|b|", scalar(b.Length())},
		{"normal(a)", na},
		{"normal(b)", nb},
		{"|normal(a)|", scalar(na.Length())},
		{"a + b", a.Add(b)},
		{"a - b", a.Sub(b)},
		{"2a", a.MulScalar(2)},
		{"a / 2", a.DivScalar(2)},
		{"-a", a.Negate()},
		{"a . b", scalar(a.Dot(b))},
		{"a x b", cross},
		{"b x a", b.Cross(a)},
		{"(a x b) . a", scalar(cross.Dot(a))},
		{"(a x b) . b", scalar(cross.Dot(b))},
		{"a x b orthogonal to a and b", flag(math.Abs(cross.Dot(a)) < 1e-5 && math.Abs(cross.Dot(b)) < 1e-5)},
		{"distance(a, b)", scalar(a.Distance(b))},
	}

	A := math.NewMat2FromRows(1, 2, 3, 4)
	B := math.NewMat2FromRows(5, 6, 7, 8)
	invA, err := A.Inverse()
	if err != nil {
		return nil, err
	}
	invB, err := B.Inverse()
	if err != nil {
		return nil, err
	}
	steps = append(steps,
		Step{"A", A},
		Step{"B", B},
		Step{"transpose(A)", A.Transposed()},
		Step{"A + B", A.Add(B)},
		Step{"A - B", A.Sub(B)},
		Step{"2A", A.MulScalar(2)},
		Step{"A / 3", A.DivScalar(3)},
		Step{"A * B", A.Mul(B)},
		Step{"B * A", B.Mul(A)},
		Step{"A * B == B * A", flag(A.Mul(B).Compare(B.Mul(A), 1e-5))},
		Step{"det(A)", scalar(A.Determinant())},
		Step{"inverse(A)", invA},
		Step{"inverse(B)", invB},
		Step{"inverse(A) * A", invA.Mul(A)},
		Step{"I4", math.NewMat4Identity()},
	)

	// the first transformation of the sprite: scale then translate a corner
	m := math.NewMat4Translation(math.NewVec3(0.4, 0.3, 0)).Mul(math.NewMat4Scale(math.NewVec3(0.4, 0.3, 1)))
	steps = append(steps,
		Step{"T(0.4, 0.3, 0) * S(0.4, 0.3, 1)", m},
		Step{"T * S * (1, 1, 1, 1)", m.MulVec4(math.NewVec4(1, 1, 1, 1))},
	)
	return steps, nil
}

// RunVectors prints the walkthrough to w.
func RunVectors(w io.Writer) error {
	steps, err := VectorSteps()
	if err != nil {
		return err
	}
	for _, s := range steps {
		value := s.Value.String()
		if strings.Contains(value, "\n") {
			if _, err := fmt.Fprintf(w, "%s =\n%s\n", s.Label, value); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s = %s\n", s.Label, value); err != nil {
			return err
		}
	}
	return nil
}
