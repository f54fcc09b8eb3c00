// Package render turns fields and convergence reports into pixels and plot
// coordinates for the viewer.
package render

import (
	"fmt"

	"github.com/TheFellow/fdperiodic/pkg/fd"
)

// Heatmap colours f into pix as RGBA, with Dir1 running to the right and Dir2
// running up, so pix is an f.NumX wide by f.NumY high image. It returns the
// value range the colour scale spans.
func Heatmap(pix []byte, f fd.Field) (lo, hi float64) {
	if len(pix) != 4*f.Len() {
		panic(fmt.Sprintf("render: %d pixel bytes for a %dx%d field", len(pix), f.NumX, f.NumY))
	}
	lo, hi = f.MinMax()
	w := f.NumX
	for i := 0; i < f.NumX; i++ {
		for j := 0; j < f.NumY; j++ {
			c := SciColor(f.At(i, j), lo, hi)
			p := 4 * ((f.NumY-1-j)*w + i)
			pix[p+0] = c.R
			pix[p+1] = c.G
			pix[p+2] = c.B
			pix[p+3] = c.A
		}
	}
	return lo, hi
}
