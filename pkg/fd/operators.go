package fd

// Gradient returns (d/dx1, d/dx2) of f with steps h1 and h2.
func Gradient(f Field, h1, h2 float64) VectorField {
	return VectorField{
		U: DerivativeDir1(f, h1),
		V: DerivativeDir2(f, h2),
	}
}

// Laplacian returns d²f/dx1² + d²f/dx2².
func Laplacian(f Field, h1, h2 float64) Field {
	out := SecondDerivativeDir1(f, h1)
	addInto(out, SecondDerivativeDir2(f, h2))
	return out
}

// Divergence returns dU/dx1 + dV/dx2. It panics if U and V differ in shape.
func Divergence(v VectorField, h1, h2 float64) Field {
	v.mustMatch()
	out := DerivativeDir1(v.U, h1)
	addInto(out, DerivativeDir2(v.V, h2))
	return out
}

// Curl returns the scalar curl dV/dx1 - dU/dx2, the vorticity of a 2-D flow.
// It panics if U and V differ in shape.
func Curl(v VectorField, h1, h2 float64) Field {
	v.mustMatch()
	out := DerivativeDir1(v.V, h1)
	dudy := DerivativeDir2(v.U, h2)
	for k := range out.values {
		out.values[k] -= dudy.values[k]
	}
	return out
}

func addInto(dst, src Field) {
	for k := range dst.values {
		dst.values[k] += src.values[k]
	}
}
