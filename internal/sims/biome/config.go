package biome

import (
	"fmt"
	"math"
	"strconv"
)

// Mode selects how migration inflows are applied within a tick.
type Mode uint8

const (
	// ModeSequential adds migrants to the neighbor immediately, so a
	// neighbor processed later in the same tick acts on the inflow.
	ModeSequential Mode = iota
	// ModeSynchronous buffers inflows and commits them after every cell
	// has been processed.
	ModeSynchronous
)

func (m Mode) String() string {
	switch m {
	case ModeSequential:
		return "sequential"
	case ModeSynchronous:
		return "synchronous"
	default:
		return "unknown"
	}
}

// ParseMode converts a mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "sequential", "seq":
		return ModeSequential, nil
	case "synchronous", "sync":
		return ModeSynchronous, nil
	}
	return ModeSequential, fmt.Errorf("biome: unknown tick mode %q", s)
}

// Params holds the seeding tables and per-tick rule probabilities.
type Params struct {
	SeedChanceResource float64
	SeedMaxResource    int
	SeedChanceLand     float64
	SeedMaxLand        int

	GrowthChanceResource float64
	GrowthChanceLand     float64
	GrowthRate           float64

	MigrationChance float64
	MigrationRate   float64

	ShrinkChanceResource float64
	ShrinkChanceLand     float64
	ShrinkRate           float64

	// ShrinkFloor is the population at or below which a shrink removes
	// everything.
	ShrinkFloor int
}

// Config controls the biome simulation dimensions and rules.
type Config struct {
	Width  int
	Height int
	Passes int

	// Seed of zero draws one from the clock when the world is built.
	Seed int64
	Mode Mode

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  100,
		Height: 100,
		Passes: 30,
		Mode:   ModeSequential,
		Params: DefaultParams(),
	}
}

// DefaultParams returns the standard seeding and rule tables.
func DefaultParams() Params {
	return Params{
		SeedChanceResource: 0.005,
		SeedMaxResource:    10000,
		SeedChanceLand:     0.001,
		SeedMaxLand:        1000,

		GrowthChanceResource: 0.009,
		GrowthChanceLand:     0.003,
		GrowthRate:           0.01,

		MigrationChance: 0.005,
		MigrationRate:   0.01,

		ShrinkChanceResource: 0.008,
		ShrinkChanceLand:     0.004,
		ShrinkRate:           0.01,
		ShrinkFloor:          10,
	}
}

// GrowthChance is the growth probability for a cell of terrain t.
func (p Params) GrowthChance(t Terrain) float64 {
	switch t {
	case TerrainResource:
		return p.GrowthChanceResource
	case TerrainLand:
		return p.GrowthChanceLand
	}
	return 0
}

// ShrinkChance is the shrink probability for a cell of terrain t.
func (p Params) ShrinkChance(t Terrain) float64 {
	switch t {
	case TerrainResource:
		return p.ShrinkChanceResource
	case TerrainLand:
		return p.ShrinkChanceLand
	}
	return 0
}

type floatField struct {
	key string
	ptr func(*Params) *float64
}

type intField struct {
	key string
	ptr func(*Params) *int
}

var floatFields = []floatField{
	{"seed_chance_resource", func(p *Params) *float64 { return &p.SeedChanceResource }},
	{"seed_chance_land", func(p *Params) *float64 { return &p.SeedChanceLand }},
	{"growth_chance_resource", func(p *Params) *float64 { return &p.GrowthChanceResource }},
	{"growth_chance_land", func(p *Params) *float64 { return &p.GrowthChanceLand }},
	{"growth_rate", func(p *Params) *float64 { return &p.GrowthRate }},
	{"migration_chance", func(p *Params) *float64 { return &p.MigrationChance }},
	{"migration_rate", func(p *Params) *float64 { return &p.MigrationRate }},
	{"shrink_chance_resource", func(p *Params) *float64 { return &p.ShrinkChanceResource }},
	{"shrink_chance_land", func(p *Params) *float64 { return &p.ShrinkChanceLand }},
	{"shrink_rate", func(p *Params) *float64 { return &p.ShrinkRate }},
}

var intFields = []intField{
	{"seed_max_resource", func(p *Params) *int { return &p.SeedMaxResource }},
	{"seed_max_land", func(p *Params) *int { return &p.SeedMaxLand }},
	{"shrink_floor", func(p *Params) *int { return &p.ShrinkFloor }},
}

func (p *Params) floatRef(key string) *float64 {
	for _, f := range floatFields {
		if f.key == key {
			return f.ptr(p)
		}
	}
	return nil
}

func (p *Params) intRef(key string) *int {
	for _, f := range intFields {
		if f.key == key {
			return f.ptr(p)
		}
	}
	return nil
}

// SetFloat assigns a probability or rate by key, clamped to [0, 1].
func (p *Params) SetFloat(key string, v float64) bool {
	ref := p.floatRef(key)
	if ref == nil {
		return false
	}
	*ref = clamp01(v)
	return true
}

// SetInt assigns an integer table entry by key; negatives become zero.
func (p *Params) SetInt(key string, v int) bool {
	ref := p.intRef(key)
	if ref == nil {
		return false
	}
	if v < 0 {
		v = 0
	}
	*ref = v
	return true
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Malformed values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["passes"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Passes = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["mode"]; ok {
		if parsed, err := ParseMode(v); err == nil {
			c.Mode = parsed
		}
	}
	for _, f := range floatFields {
		if v, ok := cfg[f.key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				c.Params.SetFloat(f.key, parsed)
			}
		}
	}
	for _, f := range intFields {
		if v, ok := cfg[f.key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil {
				c.Params.SetInt(f.key, parsed)
			}
		}
	}
	return c
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
