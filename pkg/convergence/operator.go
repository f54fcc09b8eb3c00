package convergence

import (
	"math"

	"github.com/TheFellow/fdperiodic/pkg/fd"
)

const twoPi = 2 * math.Pi

// TestFunction is the field every operator is checked against.
func TestFunction(x1, x2 float64) float64 {
	return math.Cos(twoPi*x2) * math.Sin(twoPi*x1)
}

// Operator is one finite-difference operator together with the exact result
// it approximates on TestFunction.
type Operator struct {
	Name  string
	Axis  fd.Axis
	Order int // derivative order, 1 or 2
	Exact func(x1, x2 float64) float64
}

// Apply differentiates f with the operator's stencil.
func (o Operator) Apply(f fd.Field, h float64, opts ...fd.Option) fd.Field {
	if o.Order == 2 {
		return fd.SecondDerivative(f, o.Axis, h, opts...)
	}
	return fd.Derivative(f, o.Axis, h, opts...)
}

// Operators returns the four operators in a fixed order.
func Operators() []Operator {
	return []Operator{
		{
			Name: "first_dir1", Axis: fd.Dir1, Order: 1,
			Exact: func(x1, x2 float64) float64 {
				return twoPi * math.Cos(twoPi*x2) * math.Cos(twoPi*x1)
			},
		},
		{
			Name: "first_dir2", Axis: fd.Dir2, Order: 1,
			Exact: func(x1, x2 float64) float64 {
				return -twoPi * math.Sin(twoPi*x2) * math.Sin(twoPi*x1)
			},
		},
		{
			Name: "second_dir1", Axis: fd.Dir1, Order: 2,
			Exact: func(x1, x2 float64) float64 {
				return -twoPi * twoPi * TestFunction(x1, x2)
			},
		},
		{
			Name: "second_dir2", Axis: fd.Dir2, Order: 2,
			Exact: func(x1, x2 float64) float64 {
				return -twoPi * twoPi * TestFunction(x1, x2)
			},
		},
	}
}

// RelativeL2 returns Σ(approx-exact)² / Σexact². It panics if the shapes
// differ. A zero exact field gives NaN or +Inf.
func RelativeL2(approx, exact fd.Field) float64 {
	if approx.NumX != exact.NumX || approx.NumY != exact.NumY {
		panic("convergence: fields differ in shape")
	}
	var num, den float64
	for i := 0; i < exact.NumX; i++ {
		for j := 0; j < exact.NumY; j++ {
			e := exact.At(i, j)
			d := approx.At(i, j) - e
			num += d * d
			den += e * e
		}
	}
	return num / den
}
