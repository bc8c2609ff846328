package biome

import (
	"math"

	"popsim/internal/core"
)

// State bundles the layers Advance mutates.
type State struct {
	Grid    core.Grid
	Terrain []Terrain
	Pop     []int
	Params  Params
	Mode    Mode

	// Incoming buffers synchronous-mode inflows. It is allocated on demand.
	Incoming []int

	buf []core.Coord
}

// Advance applies one tick. Cells are visited in index order; each cell with
// a positive population rolls growth, migration and shrink in that order,
// each against the population left by the previous rule.
//
// In ModeSequential migrants land on the neighbor at once, so a neighbor
// with a higher index acts on them later in the same tick. ModeSynchronous
// holds inflows until every cell has been visited.
func (s *State) Advance(rng core.Rand) {
	sync := s.Mode == ModeSynchronous
	if sync {
		if len(s.Incoming) != len(s.Pop) {
			s.Incoming = make([]int, len(s.Pop))
		} else {
			clear(s.Incoming)
		}
	}
	p := s.Params
	for i := range s.Pop {
		if s.Pop[i] <= 0 {
			continue
		}
		t := s.Terrain[i]

		if chance := p.GrowthChance(t); chance > 0 && core.Chance(rng, chance) {
			s.Pop[i] += fraction(s.Pop[i], p.GrowthRate)
		}

		if core.Chance(rng, p.MigrationChance) {
			s.migrate(i, rng, sync)
		}

		if chance := p.ShrinkChance(t); chance > 0 && core.Chance(rng, chance) {
			s.Pop[i] -= shrinkAmount(s.Pop[i], p)
		}
	}
	if sync {
		for i, n := range s.Incoming {
			s.Pop[i] += n
		}
	}
}

func (s *State) migrate(i int, rng core.Rand, deferred bool) {
	c := s.Grid.Coord(i)
	s.buf = s.Grid.AppendCross(s.buf[:0], c.X, c.Y)
	if len(s.buf) == 0 {
		return
	}
	n := s.buf[rng.IntN(len(s.buf))]
	j := n.Y*s.Grid.W + n.X
	if s.Terrain[j] == TerrainWater {
		return
	}
	moved := min(fraction(s.Pop[i], s.Params.MigrationRate), s.Pop[i])
	s.Pop[i] -= moved
	if deferred {
		s.Incoming[j] += moved
	} else {
		s.Pop[j] += moved
	}
}

func shrinkAmount(pop int, p Params) int {
	if pop <= p.ShrinkFloor {
		return pop
	}
	return min(fraction(pop, p.ShrinkRate), pop)
}

// fraction returns floor(pop * rate), never negative.
func fraction(pop int, rate float64) int {
	if pop <= 0 || rate <= 0 {
		return 0
	}
	return int(math.Floor(float64(pop) * rate))
}
