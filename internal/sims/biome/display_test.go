package biome

import "testing"

func TestPopulationLevel(t *testing.T) {
	if PopulationLevel(0) != 0 || PopulationLevel(-3) != 0 {
		t.Fatal("empty cells must map to level 0")
	}
	if PopulationLevel(1) != 1 {
		t.Fatalf("level(1) = %d, want 1", PopulationLevel(1))
	}
	prev := PopulationLevel(1)
	for pop := 2; pop < 2_000_000; pop = pop*3/2 + 1 {
		lvl := PopulationLevel(pop)
		if lvl < prev {
			t.Fatalf("level decreased at %d: %d < %d", pop, lvl, prev)
		}
		if int(lvl) >= DisplayLevels {
			t.Fatalf("level %d out of range at %d", lvl, pop)
		}
		prev = lvl
	}
	if PopulationLevel(1 << 40) != DisplayLevels-1 {
		t.Fatal("huge populations must cap at the top level")
	}
}

func TestDisplayRoundTrip(t *testing.T) {
	for _, terr := range Terrains {
		for _, pop := range []int{0, 1, 9, 10, 999, 10000} {
			gotTerr, lvl := DecodeDisplay(EncodeDisplay(terr, pop))
			if gotTerr != terr || lvl != PopulationLevel(pop) {
				t.Fatalf("round trip (%v,%d) = (%v,%d)", terr, pop, gotTerr, lvl)
			}
		}
	}
}

func TestPaletteCoversEncoding(t *testing.T) {
	w := New(2, 2, 0)
	palette := w.Palette()
	if len(palette) != 256 {
		t.Fatalf("palette size = %d, want 256", len(palette))
	}
	for _, terr := range Terrains {
		if palette[EncodeDisplay(terr, 0)] != terrainColor(terr) {
			t.Fatalf("unpopulated %v should use the bare terrain color", terr)
		}
		if palette[EncodeDisplay(terr, 5000)] == terrainColor(terr) {
			t.Fatalf("populated %v should be shaded", terr)
		}
	}
}
