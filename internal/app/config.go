package app

import (
	"fmt"

	"popsim/internal/sims/biome"

	"github.com/spf13/pflag"
)

// Config represents the command-line parameters shared by the drivers.
type Config struct {
	Width  int
	Height int
	Passes int
	Seed   int64
	Mode   string

	// Overrides are key=value rule tunables fed through biome.FromMap.
	Overrides map[string]string

	Scale      int
	TPS        int
	HUDWidth   int
	HistoryLen int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := biome.DefaultConfig()
	return &Config{
		Width:      d.Width,
		Height:     d.Height,
		Passes:     d.Passes,
		Mode:       d.Mode.String(),
		Scale:      8,
		TPS:        30,
		HUDWidth:   260,
		HistoryLen: 240,
	}
}

// Bind attaches the world configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Passes, "passes", c.Passes, "smoothing passes during generation")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 picks one from the clock)")
	fs.StringVar(&c.Mode, "mode", c.Mode, "migration semantics: sequential or synchronous")
	fs.StringToStringVar(&c.Overrides, "set", c.Overrides, "rule override in key=value form (repeatable)")
	fs.IntVar(&c.HistoryLen, "history", c.HistoryLen, "ticks kept in the population history window")
}

// BindView attaches the GUI-only options.
func (c *Config) BindView(fs *pflag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
}

// SimConfig resolves the world configuration. Flags win over --set for the
// dimensions, seed and mode.
func (c *Config) SimConfig() (biome.Config, error) {
	cfg := biome.FromMap(c.Overrides)
	mode, err := biome.ParseMode(c.Mode)
	if err != nil {
		return cfg, fmt.Errorf("app: %w", err)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return cfg, fmt.Errorf("app: grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	}
	cfg.Width = c.Width
	cfg.Height = c.Height
	cfg.Passes = max(c.Passes, 0)
	cfg.Seed = c.Seed
	cfg.Mode = mode
	return cfg, nil
}
