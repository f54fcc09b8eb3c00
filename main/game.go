package main

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/TheFellow/fdperiodic/pkg/config"
	"github.com/TheFellow/fdperiodic/pkg/convergence"
	"github.com/TheFellow/fdperiodic/pkg/fd"
	"github.com/TheFellow/fdperiodic/pkg/render"
)

type view int

const (
	viewField view = iota
	viewDir1
	viewDir2
	viewSecondDir1
	viewSecondDir2
	viewLaplacian
	viewConvergence
	numViews
)

var viewNames = [numViews]string{
	"f = cos(2pi(y-t)) sin(2pi x)",
	"df/dx1",
	"df/dx2",
	"d2f/dx1^2",
	"d2f/dx2^2",
	"laplacian",
	"convergence (relative L2 error vs N)",
}

type Game struct {
	log    *slog.Logger
	points int
	scale  int
	speed  float64

	view  view
	phase float64

	field, shown fd.Field
	pixels       []byte
	img          *ebiten.Image
	lo, hi       float64

	report atomic.Pointer[convergence.Report]
}

func NewGame(ctx context.Context, cfg *config.Config, log *slog.Logger) *Game {
	n := cfg.Viewer.Points
	g := &Game{
		log:    log,
		points: n,
		scale:  cfg.Viewer.Scale,
		speed:  cfg.Viewer.Speed,
		shown:  fd.New(n, n),
		pixels: make([]byte, 4*n*n),
		img:    ebiten.NewImage(n, n),
	}

	study := convergence.Config{
		MinPoints: cfg.Study.MinPoints,
		MaxPoints: cfg.Study.MaxPoints,
		Count:     cfg.Study.Count,
	}
	go func() {
		rep, err := convergence.Run(ctx, study, log)
		if err != nil {
			log.Error("convergence study failed", "error", err)
			return
		}
		g.report.Store(&rep)
	}()
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.view = (g.view + 1) % numViews
		g.log.Debug("switched view", "view", viewNames[g.view])
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.view = (g.view + numViews - 1) % numViews
	}

	g.phase = math.Mod(g.phase+g.speed/float64(ebiten.TPS()), 1)
	phase := g.phase
	g.field = fd.Sample(g.points, g.points, func(x, y float64) float64 {
		return math.Cos(2*math.Pi*(y-phase)) * math.Sin(2*math.Pi*x)
	})

	h := 1.0 / float64(g.points)
	switch g.view {
	case viewField:
		g.shown = g.field
	case viewDir1:
		g.shown = fd.DerivativeDir1(g.field, h, fd.Out(&g.shown))
	case viewDir2:
		g.shown = fd.DerivativeDir2(g.field, h, fd.Out(&g.shown))
	case viewSecondDir1:
		g.shown = fd.SecondDerivativeDir1(g.field, h, fd.Out(&g.shown))
	case viewSecondDir2:
		g.shown = fd.SecondDerivativeDir2(g.field, h, fd.Out(&g.shown))
	case viewLaplacian:
		g.shown = fd.Laplacian(g.field, h, h)
	case viewConvergence:
		return nil
	}
	g.lo, g.hi = render.Heatmap(g.pixels, g.shown)
	g.img.WritePixels(g.pixels)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.view == viewConvergence {
		g.drawConvergence(screen)
	} else {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(g.scale), float64(g.scale))
		screen.DrawImage(g.img, op)
		ebitenutil.DebugPrint(screen, fmt.Sprintf("%s\nrange [%.3g, %.3g]\nFPS: %0.2f",
			viewNames[g.view], g.lo, g.hi, ebiten.ActualFPS()))
	}
}

func (g *Game) drawConvergence(screen *ebiten.Image) {
	screen.Fill(color.White)
	rep := g.report.Load()
	if rep == nil {
		ebitenutil.DebugPrint(screen, "running convergence study...")
		return
	}
	w, h := g.Layout(0, 0)
	p, ok := render.NewLogLogPlot(*rep, float64(w), float64(h), 48)
	if !ok {
		ebitenutil.DebugPrint(screen, "nothing to plot")
		return
	}

	axis := color.RGBA{A: 0xff}
	left, bottom := float32(p.Margin), float32(p.Height-p.Margin)
	vector.StrokeLine(screen, left, bottom, float32(p.Width-p.Margin), bottom, 1, axis, false)
	vector.StrokeLine(screen, left, bottom, left, float32(p.Margin), 1, axis, false)
	for _, t := range p.XTicks() {
		vector.StrokeLine(screen, float32(t.Pos), bottom, float32(t.Pos), bottom+4, 1, axis, false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("1e%d", t.Power), int(t.Pos)-10, int(bottom)+6)
	}
	for _, t := range p.YTicks() {
		vector.StrokeLine(screen, left-4, float32(t.Pos), left, float32(t.Pos), 1, axis, false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("1e%d", t.Power), 2, int(t.Pos)-8)
	}

	for k, s := range rep.Series {
		clr := render.SeriesColors[k%len(render.SeriesColors)]
		for _, pt := range s.Points {
			if x, y, ok := p.Project(pt); ok {
				vector.DrawFilledCircle(screen, float32(x), float32(y), 3, clr, true)
			}
		}
		label := fmt.Sprintf("%s  order %.2f", s.Operator, s.Order())
		ly := int(p.Margin) + 14*k
		vector.DrawFilledRect(screen, float32(w)-200, float32(ly)+4, 8, 8, clr, false)
		ebitenutil.DebugPrintAt(screen, label, w-188, ly)
	}
	ebitenutil.DebugPrintAt(screen, viewNames[viewConvergence], int(p.Margin), 4)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	side := g.points * g.scale
	return side, side
}
