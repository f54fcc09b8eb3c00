package fd

import (
	"fmt"
	"math"
)

// Field is a scalar field on a uniform periodic grid. Cell (i,j) lives at
// values[i*NumY+j]; i runs along Dir1 and j along Dir2.
type Field struct {
	NumX, NumY int
	values     []float64
}

// New returns a zeroed numX by numY field.
func New(numX, numY int) Field {
	if numX < 0 || numY < 0 {
		panic(fmt.Sprintf("fd: negative shape %dx%d", numX, numY))
	}
	return Field{
		NumX:   numX,
		NumY:   numY,
		values: make([]float64, numX*numY),
	}
}

// FromValues builds a field from row-major values. The slice is copied.
func FromValues(numX, numY int, values []float64) (Field, error) {
	if numX < 0 || numY < 0 {
		return Field{}, fmt.Errorf("shape %dx%d: %w", numX, numY, ErrBadShape)
	}
	if len(values) != numX*numY {
		return Field{}, fmt.Errorf("%d values for shape %dx%d: %w", len(values), numX, numY, ErrBadShape)
	}
	f := New(numX, numY)
	copy(f.values, values)
	return f, nil
}

// FromRows builds a field whose first index selects the row.
func FromRows(rows [][]float64) (Field, error) {
	if len(rows) == 0 {
		return Field{}, nil
	}
	f := New(len(rows), len(rows[0]))
	for i, row := range rows {
		if len(row) != f.NumY {
			return Field{}, fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), f.NumY, ErrBadShape)
		}
		copy(f.values[i*f.NumY:], row)
	}
	return f, nil
}

// Sample evaluates fn on the unit periodic square. The endpoint is excluded,
// so cell (i,j) sits at (i/numX, j/numY) and the grid steps are 1/numX and
// 1/numY. fn may be called from several goroutines at once.
func Sample(numX, numY int, fn func(x, y float64) float64) Field {
	f := New(numX, numY)
	n := numY
	eachLine(numX, numX*numY, func(i int) {
		x := float64(i) / float64(numX)
		for j := 0; j < numY; j++ {
			f.values[i*n+j] = fn(x, float64(j)/float64(numY))
		}
	})
	return f
}

func (f Field) Value(i, j int) (float64, error) {
	if i < 0 || i >= f.NumX {
		return 0.0, fmt.Errorf("x index out of range, must be between 0 and %d", f.NumX-1)
	}
	if j < 0 || j >= f.NumY {
		return 0.0, fmt.Errorf("y index out of range, must be between 0 and %d", f.NumY-1)
	}

	return f.values[i*f.NumY+j], nil
}

// At is Value without the range check.
func (f Field) At(i, j int) float64 { return f.values[i*f.NumY+j] }

func (f Field) Set(i, j int, v float64) { f.values[i*f.NumY+j] = v }

func (f Field) Shape() (int, int) { return f.NumX, f.NumY }

// Len is the number of cells.
func (f Field) Len() int { return len(f.values) }

// Values returns a copy of the row-major samples.
func (f Field) Values() []float64 {
	out := make([]float64, len(f.values))
	copy(out, f.values)
	return out
}

func (f Field) Clone() Field {
	return Field{NumX: f.NumX, NumY: f.NumY, values: f.Values()}
}

// Transpose swaps the two axes.
func (f Field) Transpose() Field {
	t := New(f.NumY, f.NumX)
	for i := 0; i < f.NumX; i++ {
		for j := 0; j < f.NumY; j++ {
			t.values[j*f.NumX+i] = f.values[i*f.NumY+j]
		}
	}
	return t
}

// MinMax returns the smallest and largest sample. NaNs are skipped; an empty
// or all-NaN field reports (0, 0).
func (f Field) MinMax() (float64, float64) {
	minValue := math.Inf(1)
	maxValue := math.Inf(-1)
	for _, v := range f.values {
		if math.IsNaN(v) {
			continue
		}
		if v < minValue {
			minValue = v
		}
		if v > maxValue {
			maxValue = v
		}
	}
	if minValue > maxValue {
		return 0, 0
	}
	return minValue, maxValue
}

func (f Field) sameShape(g Field) bool {
	return f.NumX == g.NumX && f.NumY == g.NumY && len(g.values) == len(f.values)
}
