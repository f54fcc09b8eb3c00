package fd

import (
	"errors"
	"math"
	"testing"
)

func TestValueRange(t *testing.T) {
	f, err := FromValues(2, 3, []float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatal(err)
	}
	if v, err := f.Value(1, 2); err != nil || v != 6 {
		t.Errorf("Value(1,2) = %g, %v; want 6, nil", v, err)
	}
	for _, ij := range [][2]int{{-1, 0}, {2, 0}, {0, -1}, {0, 3}} {
		if _, err := f.Value(ij[0], ij[1]); err == nil {
			t.Errorf("Value(%d,%d) succeeded out of range", ij[0], ij[1])
		}
	}
}

func TestFromValuesShape(t *testing.T) {
	if _, err := FromValues(2, 2, []float64{1, 2, 3}); !errors.Is(err, ErrBadShape) {
		t.Errorf("short values: err = %v, want ErrBadShape", err)
	}
	if _, err := FromValues(-1, 2, nil); !errors.Is(err, ErrBadShape) {
		t.Errorf("negative shape: err = %v, want ErrBadShape", err)
	}
	if _, err := FromRows([][]float64{{1, 2}, {3}}); !errors.Is(err, ErrBadShape) {
		t.Errorf("ragged rows: err = %v, want ErrBadShape", err)
	}
}

func TestFromValuesCopies(t *testing.T) {
	src := []float64{1, 2, 3, 4}
	f, err := FromValues(2, 2, src)
	if err != nil {
		t.Fatal(err)
	}
	src[0] = 100
	if f.At(0, 0) != 1 {
		t.Error("field shares storage with the source slice")
	}
	vals := f.Values()
	vals[1] = 100
	if f.At(0, 1) != 2 {
		t.Error("Values exposes the field's storage")
	}
}

func TestTranspose(t *testing.T) {
	f, _ := FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	tr := f.Transpose()
	if tr.NumX != 3 || tr.NumY != 2 {
		t.Fatalf("shape %dx%d, want 3x2", tr.NumX, tr.NumY)
	}
	for i := 0; i < f.NumX; i++ {
		for j := 0; j < f.NumY; j++ {
			if tr.At(j, i) != f.At(i, j) {
				t.Errorf("tr[%d,%d] = %g, want %g", j, i, tr.At(j, i), f.At(i, j))
			}
		}
	}
}

func TestSampleExcludesEndpoint(t *testing.T) {
	f := Sample(4, 2, func(x, y float64) float64 { return 10*x + y })
	if got := f.At(3, 1); got != 10*0.75+0.5 {
		t.Errorf("last cell = %g, want %g", got, 10*0.75+0.5)
	}
	if got := f.At(0, 0); got != 0 {
		t.Errorf("first cell = %g, want 0", got)
	}
}

func TestMinMax(t *testing.T) {
	f, _ := FromValues(2, 2, []float64{3, math.NaN(), -1, 8})
	lo, hi := f.MinMax()
	if lo != -1 || hi != 8 {
		t.Errorf("MinMax = %g, %g; want -1, 8", lo, hi)
	}
	lo, hi = New(0, 0).MinMax()
	if lo != 0 || hi != 0 {
		t.Errorf("empty MinMax = %g, %g; want 0, 0", lo, hi)
	}
}
