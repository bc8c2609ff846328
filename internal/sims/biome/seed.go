package biome

import "popsim/internal/core"

// Seed assigns starting populations. Resource and Land cells each take one
// Bernoulli draw against their table and, on success, a uniform count below
// the table maximum. Water cells are never populated and draw nothing.
func Seed(terrain []Terrain, pop []int, p Params, rng core.Rand) {
	for i, t := range terrain {
		pop[i] = 0
		var chance float64
		var limit int
		switch t {
		case TerrainResource:
			chance, limit = p.SeedChanceResource, p.SeedMaxResource
		case TerrainLand:
			chance, limit = p.SeedChanceLand, p.SeedMaxLand
		default:
			continue
		}
		if core.Chance(rng, chance) && limit > 0 {
			pop[i] = rng.IntN(limit)
		}
	}
}
