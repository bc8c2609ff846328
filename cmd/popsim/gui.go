//go:build ebiten

package main

import (
	"errors"

	"popsim/internal/app"
	"popsim/internal/sims/biome"

	"github.com/hajimehoshi/ebiten/v2"
)

func runGUI(world *biome.World) error {
	app.LogWorld(logger, world)
	game := app.New(world, cfg, logger)
	size := world.Size()

	ebiten.SetWindowTitle("popsim — " + world.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale+max(cfg.HUDWidth, 0), size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
