package biome

import "popsim/internal/core"

// Generate allocates g.Len() cells of uniformly random terrain and relaxes
// them with the given number of smoothing passes. The pass count is fixed;
// no convergence test is made.
func Generate(g core.Grid, passes int, rng core.Rand) []Terrain {
	cur := make([]Terrain, g.Len())
	Randomize(cur, rng)
	if passes <= 0 {
		return cur
	}
	next := make([]Terrain, len(cur))
	var buf []core.Coord
	for p := 0; p < passes; p++ {
		buf = SmoothPass(g, cur, next, rng, buf)
		cur, next = next, cur
	}
	return cur
}

// Randomize fills terrain with independent uniform draws.
func Randomize(terrain []Terrain, rng core.Rand) {
	for i := range terrain {
		terrain[i] = Terrains[rng.IntN(terrainCount)]
	}
}
