package render

import (
	"image/color"
	"math"
)

// SciColor maps val in [minVal, maxVal] onto the blue-cyan-green-yellow-red
// scientific colour scale.
func SciColor(val, minVal, maxVal float64) color.RGBA {
	var d = maxVal - minVal
	if d <= 0 || math.IsNaN(val) {
		val = 0.5
	} else {
		val = (min(max(val, minVal), maxVal) - minVal) / d
	}
	val = min(val, 0.9999)
	var m = 0.25
	var num = math.Floor(val / m)
	var s = (val - num*m) / m
	var r, g, b float64

	switch num {
	case 0:
		r = 0.0
		g = s
		b = 1.0
	case 1:
		r = 0.0
		g = 1.0
		b = 1.0 - s
	case 2:
		r = s
		g = 1.0
		b = 0.0
	case 3:
		r = 1.0
		g = 1.0 - s
		b = 0.0
	}

	return color.RGBA{
		R: uint8(255 * r),
		G: uint8(255 * g),
		B: uint8(255 * b),
		A: 0xff,
	}
}

// SeriesColors are the marker colours of the convergence plot, one per
// operator.
var SeriesColors = []color.RGBA{
	{R: 0xe4, G: 0x1a, B: 0x1c, A: 0xff},
	{R: 0x37, G: 0x7e, B: 0xb8, A: 0xff},
	{R: 0x4d, G: 0xaf, B: 0x4a, A: 0xff},
	{R: 0xff, G: 0x7f, B: 0x00, A: 0xff},
}
