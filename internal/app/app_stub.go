//go:build !ebiten

package app

import (
	"errors"

	"popsim/internal/sims/biome"

	"github.com/rs/zerolog"
)

// ErrNoGUI is returned by the headless build where a window was requested.
var ErrNoGUI = errors.New("app: the GUI requires building with the 'ebiten' tag")

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New returns a placeholder; Update reports ErrNoGUI.
func New(*biome.World, *Config, zerolog.Logger) *Game { return &Game{} }

// Reset is a no-op placeholder.
func (g *Game) Reset(int64) {}

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error { return ErrNoGUI }

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
