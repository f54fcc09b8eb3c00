/*Package fd computes centered finite-difference derivatives of 2-D scalar
fields sampled on uniform periodic grids.

All stencils are second-order accurate. The stored grid holds exactly one
period: the sample after the last one along an axis is the first sample, so a
field must not repeat its first sample at the end.
*/
package fd

import "fmt"

// Axis selects the array dimension a derivative is taken along.
type Axis int

const (
	// Dir1 is the first index (i, x).
	Dir1 Axis = iota
	// Dir2 is the second index (j, y).
	Dir2
)

func (a Axis) String() string {
	switch a {
	case Dir1:
		return "dir1"
	case Dir2:
		return "dir2"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

type derivParams struct{ out *Field }

// Option configures a single derivative call.
type Option func(*derivParams)

// Out makes a derivative call write into dst instead of allocating. dst must
// have the input's shape and must not share storage with the input; otherwise
// it is ignored and a new field is returned.
func Out(dst *Field) Option {
	return func(p *derivParams) { p.out = dst }
}

func (p *derivParams) loadOptions(opts []Option) {
	for _, opt := range opts {
		opt(p)
	}
}

// target returns the field a derivative of src is written to.
func target(src Field, opts []Option) Field {
	p := new(derivParams)
	p.loadOptions(opts)
	if dst := p.out; dst != nil && dst.sameShape(src) && !dst.aliases(src) {
		return *dst
	}
	return New(src.NumX, src.NumY)
}

func (f Field) aliases(g Field) bool {
	return len(f.values) > 0 && len(g.values) > 0 && &f.values[0] == &g.values[0]
}

// stencil is one pass over every line of cells parallel to an axis. Cell k of
// line l is at l*lineStride + k*stride; a line holds n cells.
type stencil struct {
	n, stride         int
	lines, lineStride int
}

func stencilFor(f Field, axis Axis) stencil {
	if axis == Dir2 {
		return stencil{n: f.NumY, stride: 1, lines: f.NumX, lineStride: f.NumY}
	}
	return stencil{n: f.NumX, stride: f.NumY, lines: f.NumY, lineStride: 1}
}

// neighbours returns the periodic predecessor and successor of k.
func (s stencil) neighbours(k int) (int, int) {
	prev, next := k-1, k+1
	if prev < 0 {
		prev = s.n - 1
	}
	if next == s.n {
		next = 0
	}
	return prev, next
}

func (s stencil) first(dst, src []float64, h float64) {
	eachLine(s.lines, len(src), func(l int) {
		base := l * s.lineStride
		for k := 0; k < s.n; k++ {
			prev, next := s.neighbours(k)
			dst[base+k*s.stride] = (src[base+next*s.stride] - src[base+prev*s.stride]) / (2 * h)
		}
	})
}

func (s stencil) second(dst, src []float64, h float64) {
	eachLine(s.lines, len(src), func(l int) {
		base := l * s.lineStride
		for k := 0; k < s.n; k++ {
			prev, next := s.neighbours(k)
			dst[base+k*s.stride] = (src[base+next*s.stride] - 2*src[base+k*s.stride] +
				src[base+prev*s.stride]) / (h * h)
		}
	})
}

// Derivative approximates the first derivative of f along axis with grid
// step h:
//
//	d[k] = (f[k+1] - f[k-1]) / (2h)
//
// with indices wrapping around at both ends. f is not modified.
func Derivative(f Field, axis Axis, h float64, opts ...Option) Field {
	out := target(f, opts)
	stencilFor(f, axis).first(out.values, f.values, h)
	return out
}

// SecondDerivative approximates the second derivative of f along axis with
// grid step h:
//
//	d[k] = (f[k+1] - 2f[k] + f[k-1]) / h²
//
// with indices wrapping around at both ends. f is not modified.
func SecondDerivative(f Field, axis Axis, h float64, opts ...Option) Field {
	out := target(f, opts)
	stencilFor(f, axis).second(out.values, f.values, h)
	return out
}

// DerivativeDir1 is the first derivative along the first index.
func DerivativeDir1(f Field, h float64, opts ...Option) Field {
	return Derivative(f, Dir1, h, opts...)
}

// DerivativeDir2 is the first derivative along the second index. It equals
// DerivativeDir1 of the transposed field, transposed back.
func DerivativeDir2(f Field, h float64, opts ...Option) Field {
	return Derivative(f, Dir2, h, opts...)
}

// SecondDerivativeDir1 is the second derivative along the first index.
func SecondDerivativeDir1(f Field, h float64, opts ...Option) Field {
	return SecondDerivative(f, Dir1, h, opts...)
}

// SecondDerivativeDir2 is the second derivative along the second index. It
// equals SecondDerivativeDir1 of the transposed field, transposed back.
func SecondDerivativeDir2(f Field, h float64, opts ...Option) Field {
	return SecondDerivative(f, Dir2, h, opts...)
}
