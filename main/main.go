package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"

	"github.com/TheFellow/fdperiodic/pkg/config"
	"github.com/TheFellow/fdperiodic/pkg/logger"
)

func main() {
	configPath := pflag.String("config", "", "path to a config file")
	pflag.Parse()

	v := config.New()
	cfg, err := config.Load(v, *configPath)
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}
	log := logger.New(os.Stderr, cfg.Log.Level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g := NewGame(ctx, cfg, log)
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Periodic FD")

	if err := ebiten.RunGame(g); err != nil {
		log.Error("viewer stopped", "error", err)
		os.Exit(1)
	}
}
