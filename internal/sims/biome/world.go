package biome

import "popsim/internal/core"

var (
	_ core.Sim                       = (*World)(nil)
	_ core.PaletteProvider           = (*World)(nil)
	_ core.ParameterProvider         = (*World)(nil)
	_ core.ParameterControlsProvider = (*World)(nil)
	_ core.ParameterSetter           = (*World)(nil)
)

// World is a terrain map with a population layer. It owns every layer; the
// accessors hand out read-only views that stay valid until the next Step or
// Reset.
type World struct {
	cfg  Config
	grid core.Grid

	state   State
	display []uint8

	rng  core.Rand
	seed int64
	tick uint64
}

// New builds, relaxes and seeds a w*h world using the default rules.
func New(w, h, passes int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Passes = passes
	return NewWithConfig(cfg)
}

// NewWithConfig builds a world from cfg, drawing from an RNG seeded with
// cfg.Seed.
func NewWithConfig(cfg Config) *World {
	rng := core.NewRNG(cfg.Seed)
	w := NewWithRand(cfg, rng)
	w.seed = rng.Seed()
	return w
}

// NewWithRand builds a world that draws every random value from rng for the
// rest of its run.
func NewWithRand(cfg Config, rng core.Rand) *World {
	w := &World{cfg: cfg, grid: core.NewGrid(cfg.Width, cfg.Height), seed: cfg.Seed}
	w.build(rng)
	return w
}

func (w *World) build(rng core.Rand) {
	total := w.grid.Len()
	w.rng = rng
	w.tick = 0
	w.state = State{
		Grid:    w.grid,
		Terrain: Generate(w.grid, w.cfg.Passes, rng),
		Pop:     make([]int, total),
		Params:  w.cfg.Params,
		Mode:    w.cfg.Mode,
	}
	Seed(w.state.Terrain, w.state.Pop, w.cfg.Params, rng)
	if len(w.display) != total {
		w.display = make([]uint8, total)
	}
	w.rebuildDisplay()
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "biome" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.W, H: w.grid.H} }

// Width is the grid width.
func (w *World) Width() int { return w.grid.W }

// Height is the grid height.
func (w *World) Height() int { return w.grid.H }

// Grid exposes the addressing used by the world.
func (w *World) Grid() core.Grid { return w.grid }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Seed reports the seed of the current run, or zero when the random source
// was injected.
func (w *World) Seed() int64 { return w.seed }

// Tick is the number of steps taken since the last build.
func (w *World) Tick() uint64 { return w.tick }

// CellAt returns the terrain and population at index i. It panics with a
// *core.RangeError when i is out of range.
func (w *World) CellAt(i int) (Terrain, int) {
	w.grid.CheckIndex("cell", i)
	return w.state.Terrain[i], w.state.Pop[i]
}

// Terrain exposes the terrain layer.
func (w *World) Terrain() []Terrain { return w.state.Terrain }

// Population exposes the population layer.
func (w *World) Population() []int { return w.state.Pop }

// Cells exposes the display buffer.
func (w *World) Cells() []uint8 { return w.display }

// Reset starts a new run: a fresh random source is built from seed (zero
// keeps the current run's seed) and the map is regenerated.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.seed
	}
	rng := core.NewRNG(seed)
	w.seed = rng.Seed()
	w.build(rng)
}

// Advance applies exactly one tick.
func (w *World) Advance() {
	w.state.Params = w.cfg.Params
	w.state.Advance(w.rng)
	w.tick++
	w.rebuildDisplay()
}

// Step advances the simulation by one tick.
func (w *World) Step() { w.Advance() }

// SetMode switches the migration semantics for subsequent ticks.
func (w *World) SetMode(m Mode) {
	w.cfg.Mode = m
	w.state.Mode = m
}

// Stats summarises the population layer.
type Stats struct {
	Tick      uint64
	Total     int
	Populated int
	ByTerrain [terrainCount]int
}

// Stats computes population totals for the current tick.
func (w *World) Stats() Stats {
	s := Stats{Tick: w.tick}
	for i, n := range w.state.Pop {
		if n <= 0 {
			continue
		}
		s.Total += n
		s.Populated++
		s.ByTerrain[w.state.Terrain[i]] += n
	}
	return s
}

// TerrainCounts tallies cells per terrain variant.
func (w *World) TerrainCounts() [terrainCount]int {
	var counts [terrainCount]int
	for _, t := range w.state.Terrain {
		if t.Valid() {
			counts[t]++
		}
	}
	return counts
}
