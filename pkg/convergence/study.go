package convergence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/TheFellow/fdperiodic/pkg/fd"
	"github.com/TheFellow/fdperiodic/pkg/logger"
)

// Config selects the resolutions of a study.
type Config struct {
	MinPoints, MaxPoints int
	Count                int
}

// ErrBadRange is returned for a resolution range that cannot be swept.
var ErrBadRange = errors.New("convergence: invalid resolution range")

// Resolutions returns up to count grid sizes spaced evenly in log10 between
// minPoints and maxPoints. Sizes are truncated to integers, duplicates
// removed and the result sorted ascending.
func Resolutions(minPoints, maxPoints, count int) ([]int, error) {
	if minPoints < fd.MinSamples || maxPoints < minPoints || count < 1 {
		return nil, fmt.Errorf("%d..%d in %d steps: %w", minPoints, maxPoints, count, ErrBadRange)
	}
	if count == 1 || minPoints == maxPoints {
		return []int{minPoints}, nil
	}

	lo, hi := math.Log10(float64(minPoints)), math.Log10(float64(maxPoints))
	out := make([]int, 0, count)
	for k := 0; k < count; k++ {
		e := lo + float64(k)*(hi-lo)/float64(count-1)
		n := int(math.Pow(10, e) + 1e-9)
		n = min(max(n, minPoints), maxPoints)
		out = append(out, n)
	}
	return slices.Compact(out), nil
}

// Point is the error of one operator at one resolution.
type Point struct {
	N     int     `json:"n"`
	Error float64 `json:"error"`
}

// Series is the error of one operator across all resolutions.
type Series struct {
	Operator string  `json:"operator"`
	Points   []Point `json:"points"`
}

// Order estimates the order of accuracy from a least-squares fit of
// log(error) against log(N). Points with zero or non-finite error are
// skipped; fewer than two usable points give NaN.
func (s Series) Order() float64 {
	var xs, ys []float64
	for _, p := range s.Points {
		if p.Error <= 0 || math.IsInf(p.Error, 0) || math.IsNaN(p.Error) {
			continue
		}
		xs = append(xs, math.Log(float64(p.N)))
		ys = append(ys, math.Log(p.Error))
	}
	if len(xs) < 2 {
		return math.NaN()
	}

	var mx, my float64
	for k := range xs {
		mx += xs[k]
		my += ys[k]
	}
	mx /= float64(len(xs))
	my /= float64(len(ys))

	var sxy, sxx float64
	for k := range xs {
		sxy += (xs[k] - mx) * (ys[k] - my)
		sxx += (xs[k] - mx) * (xs[k] - mx)
	}
	if sxx == 0 {
		return math.NaN()
	}
	// squared norms double the slope
	return -sxy / sxx / 2
}

// Report is the outcome of a study, one series per operator.
type Report struct {
	Resolutions []int    `json:"resolutions"`
	Series      []Series `json:"series"`
}

// Run sweeps the configured resolutions and records the error of every
// operator. It stops with ctx.Err() if ctx is cancelled between resolutions.
// A nil log discards output.
func Run(ctx context.Context, cfg Config, log *slog.Logger) (Report, error) {
	if log == nil {
		log = logger.Discard()
	}
	ns, err := Resolutions(cfg.MinPoints, cfg.MaxPoints, cfg.Count)
	if err != nil {
		return Report{}, err
	}

	ops := Operators()
	rep := Report{Resolutions: ns, Series: make([]Series, len(ops))}
	for k, op := range ops {
		rep.Series[k] = Series{Operator: op.Name, Points: make([]Point, 0, len(ns))}
	}

	for _, n := range ns {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		h := 1.0 / float64(n)
		f := fd.Sample(n, n, TestFunction)
		buf := fd.New(n, n)

		for k, op := range ops {
			if err := fd.Validate(f, op.Axis, h); err != nil {
				return rep, fmt.Errorf("%s at N=%d: %w", op.Name, n, err)
			}
			approx := op.Apply(f, h, fd.Out(&buf))
			e := RelativeL2(approx, fd.Sample(n, n, op.Exact))
			rep.Series[k].Points = append(rep.Series[k].Points, Point{N: n, Error: e})
			log.Debug("measured operator error", "operator", op.Name, "n", n, "error", e)
		}
		log.Info("resolution done", "n", n)
	}
	return rep, nil
}
