package biome

import (
	"slices"
	"testing"

	"popsim/internal/core"
)

func TestCandidatesTable(t *testing.T) {
	cases := []struct {
		land, resource, water int
		want                  []Terrain
	}{
		{0, 0, 0, []Terrain{TerrainWater, TerrainResource, TerrainLand}},
		{2, 2, 2, []Terrain{TerrainWater, TerrainResource, TerrainLand}},
		{1, 3, 3, []Terrain{TerrainWater, TerrainResource}},
		{3, 1, 3, []Terrain{TerrainWater, TerrainLand}},
		{2, 2, 4, []Terrain{TerrainWater}},
		{1, 0, 2, []Terrain{TerrainWater}},
		{2, 2, 0, []Terrain{TerrainLand, TerrainResource}},
		{3, 3, 2, []Terrain{TerrainLand, TerrainResource}},
		{1, 4, 3, []Terrain{TerrainResource}},
		{4, 1, 3, []Terrain{TerrainLand}},
		{3, 0, 0, []Terrain{TerrainLand}},
		{0, 3, 0, []Terrain{TerrainResource}},
		// water ties land below resource: resource wins by the fallthrough.
		{1, 5, 1, []Terrain{TerrainResource}},
	}
	for _, c := range cases {
		for i := 0; i < 3; i++ {
			got := Candidates(c.land, c.resource, c.water)
			if !slices.Equal(got, c.want) {
				t.Fatalf("Candidates(land=%d, resource=%d, water=%d) = %v, want %v", c.land, c.resource, c.water, got, c.want)
			}
		}
	}
}

func TestSmoothPassLandResourceTie(t *testing.T) {
	g := core.NewGrid(3, 3)
	L, R, W := TerrainLand, TerrainResource, TerrainWater
	cur := []Terrain{
		L, R, L,
		R, W, R,
		L, R, L,
	}
	// Center sees land=4, resource=4, water=0 -> {Land, Resource}.
	land, resource, water, _ := CountNeighbors(g, cur, 1, 1, nil)
	if land != 4 || resource != 4 || water != 0 {
		t.Fatalf("unexpected counts land=%d resource=%d water=%d", land, resource, water)
	}
	for pick := 0; pick < 2; pick++ {
		next := make([]Terrain, len(cur))
		SmoothPass(g, cur, next, fixedRand{i: pick}, nil)
		if next[4] == TerrainWater {
			t.Fatalf("center relaxed to water with land/resource tie")
		}
		if want := candidatesLandResource[pick]; next[4] != want {
			t.Fatalf("center = %v, want %v for pick %d", next[4], want, pick)
		}
	}
}

func TestSmoothPassIsSynchronous(t *testing.T) {
	// On a 3x1 strip cell 0 relaxes to water. An in-place update would then
	// show cell 1 two water neighbors and force water; reading the old state
	// it sees land=1, water=1, a {Water, Land} tie, and picks land.
	g := core.NewGrid(3, 1)
	cur := []Terrain{TerrainLand, TerrainWater, TerrainWater}
	next := make([]Terrain, 3)
	SmoothPass(g, cur, next, fixedRand{i: 1}, nil)

	want := []Terrain{TerrainWater, TerrainLand, TerrainWater}
	if !slices.Equal(next, want) {
		t.Fatalf("next = %v, want %v", next, want)
	}
	if !slices.Equal(cur, []Terrain{TerrainLand, TerrainWater, TerrainWater}) {
		t.Fatal("SmoothPass must not modify its input")
	}
}

func TestSmoothPassSkipsDrawForSingleCandidate(t *testing.T) {
	g := core.NewGrid(3, 3)
	cur := make([]Terrain, g.Len())
	for i := range cur {
		cur[i] = TerrainResource
	}
	r := &scriptedRand{t: t}
	next := make([]Terrain, len(cur))
	SmoothPass(g, cur, next, r, nil)
	for i, v := range next {
		if v != TerrainResource {
			t.Fatalf("cell %d = %v, want resource", i, v)
		}
	}
	if r.intCalls != 0 {
		t.Fatalf("expected no draws for single-candidate cells, got %d", r.intCalls)
	}
}

func TestGenerateClosure(t *testing.T) {
	g := core.NewGrid(40, 30)
	for _, passes := range []int{0, 1, 5, 30} {
		terrain := Generate(g, passes, core.NewRNG(int64(passes)+7))
		if len(terrain) != g.Len() {
			t.Fatalf("passes=%d: got %d cells, want %d", passes, len(terrain), g.Len())
		}
		for i, v := range terrain {
			if !v.Valid() {
				t.Fatalf("passes=%d: cell %d has invalid terrain %d", passes, i, v)
			}
		}
	}
}

func TestGenerateCoarsensBiomes(t *testing.T) {
	g := core.NewGrid(64, 64)
	raw := Generate(g, 0, core.NewRNG(11))
	smoothed := Generate(g, 30, core.NewRNG(11))
	if disagreements(g, smoothed) >= disagreements(g, raw) {
		t.Fatalf("smoothing should reduce neighbor disagreement: raw=%d smoothed=%d",
			disagreements(g, raw), disagreements(g, smoothed))
	}
}

func disagreements(g core.Grid, terrain []Terrain) int {
	n := 0
	var buf []core.Coord
	for i, v := range terrain {
		c := g.Coord(i)
		buf = g.AppendCross(buf[:0], c.X, c.Y)
		for _, nb := range buf {
			if terrain[g.Index(nb.X, nb.Y)] != v {
				n++
			}
		}
	}
	return n
}

func TestGenerateDiffersAcrossSeeds(t *testing.T) {
	g := core.NewGrid(32, 32)
	a := Generate(g, 30, core.NewRNG(1))
	b := Generate(g, 30, core.NewRNG(2))
	if slices.Equal(a, b) {
		t.Fatal("different seeds produced identical maps")
	}
}
