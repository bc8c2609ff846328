//go:build !ebiten

package main

import (
	"fmt"

	"popsim/internal/app"
	"popsim/internal/sims/biome"
)

func runGUI(*biome.World) error {
	return fmt.Errorf("%w; re-run with `go run -tags ebiten ./cmd/popsim run` or use `popsim headless`", app.ErrNoGUI)
}
