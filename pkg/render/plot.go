package render

import (
	"math"

	"github.com/TheFellow/fdperiodic/pkg/convergence"
)

// LogLogPlot maps (N, error) pairs onto a Width by Height canvas with both
// axes in log10, leaving Margin pixels on every side for labels.
type LogLogPlot struct {
	Width, Height, Margin float64

	// axis bounds in decades
	XMin, XMax, YMin, YMax float64
}

// NewLogLogPlot fits the axes to every finite, positive error in rep, rounded
// out to whole decades. It reports false when rep holds nothing to plot.
func NewLogLogPlot(rep convergence.Report, width, height, margin float64) (LogLogPlot, bool) {
	p := LogLogPlot{
		Width: width, Height: height, Margin: margin,
		XMin: math.Inf(1), XMax: math.Inf(-1),
		YMin: math.Inf(1), YMax: math.Inf(-1),
	}
	for _, s := range rep.Series {
		for _, pt := range s.Points {
			if !plottable(pt) {
				continue
			}
			x, y := math.Log10(float64(pt.N)), math.Log10(pt.Error)
			p.XMin, p.XMax = min(p.XMin, x), max(p.XMax, x)
			p.YMin, p.YMax = min(p.YMin, y), max(p.YMax, y)
		}
	}
	if p.XMin > p.XMax {
		return LogLogPlot{}, false
	}
	p.XMin, p.XMax = decadeBelow(p.XMin), decadeAbove(p.XMax)
	p.YMin, p.YMax = decadeBelow(p.YMin), decadeAbove(p.YMax)
	if p.XMax == p.XMin {
		p.XMax++
	}
	if p.YMax == p.YMin {
		p.YMax++
	}
	return p, true
}

// Log10 of an exact power of ten may land a hair off the integer.
const decadeSlack = 1e-9

func decadeBelow(x float64) float64 { return math.Floor(x + decadeSlack) }
func decadeAbove(x float64) float64 { return math.Ceil(x - decadeSlack) }

func plottable(pt convergence.Point) bool {
	return pt.N > 0 && pt.Error > 0 && !math.IsInf(pt.Error, 0) && !math.IsNaN(pt.Error)
}

// Project returns the canvas position of pt. ok is false for points that
// cannot be shown on log axes.
func (p LogLogPlot) Project(pt convergence.Point) (x, y float64, ok bool) {
	if !plottable(pt) {
		return 0, 0, false
	}
	return p.projectX(math.Log10(float64(pt.N))), p.projectY(math.Log10(pt.Error)), true
}

func (p LogLogPlot) projectX(lx float64) float64 {
	return p.Margin + (lx-p.XMin)/(p.XMax-p.XMin)*(p.Width-2*p.Margin)
}

func (p LogLogPlot) projectY(ly float64) float64 {
	return p.Height - p.Margin - (ly-p.YMin)/(p.YMax-p.YMin)*(p.Height-2*p.Margin)
}

// Tick is a decade mark on one axis.
type Tick struct {
	Pos   float64 // canvas coordinate along the axis
	Power int     // the mark is at 10^Power
}

// XTicks returns the decade marks of the N axis.
func (p LogLogPlot) XTicks() []Tick {
	var ticks []Tick
	for d := p.XMin; d <= p.XMax; d++ {
		ticks = append(ticks, Tick{Pos: p.projectX(d), Power: int(d)})
	}
	return ticks
}

// YTicks returns the decade marks of the error axis.
func (p LogLogPlot) YTicks() []Tick {
	var ticks []Tick
	for d := p.YMin; d <= p.YMax; d++ {
		ticks = append(ticks, Tick{Pos: p.projectY(d), Power: int(d)})
	}
	return ticks
}
