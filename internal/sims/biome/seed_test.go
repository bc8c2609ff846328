package biome

import "testing"

func TestSeedNeverPopulatesWater(t *testing.T) {
	terrain := []Terrain{TerrainWater, TerrainWater, TerrainResource, TerrainLand, TerrainWater}
	for _, src := range []fixedRand{{f: 0}, {f: 0.0001, i: 500}, {f: 0.9}} {
		pop := make([]int, len(terrain))
		Seed(terrain, pop, DefaultParams(), src)
		for i, tr := range terrain {
			if tr == TerrainWater && pop[i] != 0 {
				t.Fatalf("water cell %d seeded with %d", i, pop[i])
			}
		}
	}
}

func TestSeedTables(t *testing.T) {
	terrain := []Terrain{TerrainWater, TerrainResource, TerrainLand, TerrainLand, TerrainResource}
	pop := []int{7, 7, 7, 7, 7}
	r := &scriptedRand{
		t: t,
		// resource: 0.004 < 0.005 hits; land: 0.001 misses (not < 0.001);
		// land: 0.0005 hits; resource: 0.005 misses.
		floats: []float64{0.004, 0.001, 0.0005, 0.005},
		ints:   []int{9999, 999},
	}
	Seed(terrain, pop, DefaultParams(), r)
	want := []int{0, 9999, 0, 999, 0}
	for i := range want {
		if pop[i] != want[i] {
			t.Fatalf("pop = %v, want %v", pop, want)
		}
	}
	if r.floatCalls != 4 {
		t.Fatalf("expected one Bernoulli draw per land/resource cell, got %d", r.floatCalls)
	}
	if r.intCalls != 2 {
		t.Fatalf("expected two magnitude draws, got %d", r.intCalls)
	}
}

func TestSeedMagnitudeBounds(t *testing.T) {
	terrain := []Terrain{TerrainResource, TerrainLand}
	pop := make([]int, 2)
	Seed(terrain, pop, DefaultParams(), fixedRand{f: 0, i: 1 << 30})
	if pop[0] != 9999 || pop[1] != 999 {
		t.Fatalf("pop = %v, want upper bounds [9999 999]", pop)
	}
}
