package app

import (
	"context"
	"time"

	"popsim/internal/sims/biome"
	"popsim/internal/stats"

	"github.com/juju/ratelimit"
	"github.com/rs/zerolog"
)

// Headless drives a world without a window, logging progress.
type Headless struct {
	World   *biome.World
	History *stats.History
	Log     zerolog.Logger

	// Every is the logging interval in ticks; zero logs only the summary.
	Every int
	// TPS paces the loop with a token bucket; zero runs flat out.
	TPS int
}

// NewHeadless wires a runner around w with a history window of historyLen.
func NewHeadless(w *biome.World, historyLen int, log zerolog.Logger) *Headless {
	return &Headless{World: w, History: stats.NewHistory(historyLen), Log: log}
}

// Run advances the world ticks times, or until ctx is done. It returns the
// final statistics and ctx.Err() when stopped early.
func (h *Headless) Run(ctx context.Context, ticks int) (biome.Stats, error) {
	var bucket *ratelimit.Bucket
	if h.TPS > 0 {
		bucket = ratelimit.NewBucketWithRate(float64(h.TPS), 1)
	}

	LogWorld(h.Log, h.World)
	start := time.Now()
	h.History.Push(h.World.Stats().Total)

	for t := 0; t < ticks; t++ {
		if err := ctx.Err(); err != nil {
			s := h.World.Stats()
			h.Log.Warn().Uint64("tick", s.Tick).Msg("stopped early")
			return s, err
		}
		if bucket != nil {
			bucket.Wait(1)
		}
		h.World.Advance()
		s := h.World.Stats()
		h.History.Push(s.Total)
		if h.Every > 0 && s.Tick%uint64(h.Every) == 0 {
			h.logStats(zerolog.InfoLevel, s)
		}
	}

	s := h.World.Stats()
	h.Log.Info().
		Uint64("tick", s.Tick).
		Int("total", s.Total).
		Int("populated", s.Populated).
		Int("window_delta", h.History.Delta()).
		Dur("elapsed", time.Since(start)).
		Msg("run complete")
	return s, nil
}

func (h *Headless) logStats(level zerolog.Level, s biome.Stats) {
	lo, hi := h.History.Range()
	h.Log.WithLevel(level).
		Uint64("tick", s.Tick).
		Int("total", s.Total).
		Int("populated", s.Populated).
		Int("land", s.ByTerrain[biome.TerrainLand]).
		Int("resource", s.ByTerrain[biome.TerrainResource]).
		Int("window_min", lo).
		Int("window_max", hi).
		Int("window_delta", h.History.Delta()).
		Msg("tick")
}

// LogWorld records the generated map composition at debug level.
func LogWorld(log zerolog.Logger, w *biome.World) {
	counts := w.TerrainCounts()
	s := w.Stats()
	log.Debug().
		Int("width", w.Width()).
		Int("height", w.Height()).
		Int64("seed", w.Seed()).
		Str("mode", w.Config().Mode.String()).
		Int("land_cells", counts[biome.TerrainLand]).
		Int("resource_cells", counts[biome.TerrainResource]).
		Int("water_cells", counts[biome.TerrainWater]).
		Int("population", s.Total).
		Int("populated", s.Populated).
		Msg("world generated")
}
