package biome

import "popsim/internal/core"

// Candidate sets are shared and must not be modified by callers.
var (
	candidatesAll           = []Terrain{TerrainWater, TerrainResource, TerrainLand}
	candidatesWaterResource = []Terrain{TerrainWater, TerrainResource}
	candidatesWaterLand     = []Terrain{TerrainWater, TerrainLand}
	candidatesWater         = []Terrain{TerrainWater}
	candidatesLandResource  = []Terrain{TerrainLand, TerrainResource}
	candidatesResource      = []Terrain{TerrainResource}
	candidatesLand          = []Terrain{TerrainLand}
)

// Candidates returns the terrains tied for majority given neighbor counts.
// The result depends only on the counts; the returned slice is shared.
func Candidates(land, resource, water int) []Terrain {
	switch {
	case water == land && land == resource:
		return candidatesAll
	case water > land && water == resource:
		return candidatesWaterResource
	case water > resource && water == land:
		return candidatesWaterLand
	case water > land && water > resource:
		return candidatesWater
	case resource == land:
		return candidatesLandResource
	case resource > land:
		return candidatesResource
	default:
		return candidatesLand
	}
}

// CountNeighbors tallies the full-neighbor terrains of (x, y) in cur.
func CountNeighbors(g core.Grid, cur []Terrain, x, y int, buf []core.Coord) (land, resource, water int, out []core.Coord) {
	buf = g.AppendFull(buf[:0], x, y)
	for _, n := range buf {
		switch cur[n.Y*g.W+n.X] {
		case TerrainLand:
			land++
		case TerrainResource:
			resource++
		case TerrainWater:
			water++
		}
	}
	return land, resource, water, buf
}

// SmoothPass writes one relaxation step of cur into next. Every cell reads
// only cur, so the pass is order independent. buf is scratch space for
// neighbor enumeration and is returned for reuse.
func SmoothPass(g core.Grid, cur, next []Terrain, rng core.Rand, buf []core.Coord) []core.Coord {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			var land, resource, water int
			land, resource, water, buf = CountNeighbors(g, cur, x, y, buf)
			cands := Candidates(land, resource, water)
			pick := cands[0]
			if len(cands) > 1 {
				pick = cands[rng.IntN(len(cands))]
			}
			next[y*g.W+x] = pick
		}
	}
	return buf
}
