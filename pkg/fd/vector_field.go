package fd

import (
	"fmt"
	"math"
)

// VectorField pairs two same-shaped components, U along Dir1 and V along Dir2.
type VectorField struct {
	U, V Field
}

func (v VectorField) Value(i, j int) (float64, float64, error) {
	u, err := v.U.Value(i, j)
	if err != nil {
		return 0.0, 0.0, err
	}
	w, err := v.V.Value(i, j)
	if err != nil {
		return 0.0, 0.0, err
	}
	return u, w, nil
}

// Magnitude returns the pointwise Euclidean norm.
func (v VectorField) Magnitude() Field {
	v.mustMatch()
	m := New(v.U.NumX, v.U.NumY)
	for k, u := range v.U.values {
		m.values[k] = math.Hypot(u, v.V.values[k])
	}
	return m
}

func (v VectorField) mustMatch() {
	if !v.U.sameShape(v.V) {
		panic(fmt.Sprintf("fd: vector components differ in shape: %dx%d and %dx%d",
			v.U.NumX, v.U.NumY, v.V.NumX, v.V.NumY))
	}
}
