package biome

import "testing"

// scriptedRand replays fixed draws. Once a script runs out it falls back to
// values that never trigger a rule and always pick the first candidate.
type scriptedRand struct {
	t      *testing.T
	floats []float64
	ints   []int

	floatCalls int
	intCalls   int
}

func (r *scriptedRand) Float64() float64 {
	r.floatCalls++
	if len(r.floats) == 0 {
		return 0.999
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) IntN(n int) int {
	r.intCalls++
	if n <= 0 {
		r.t.Fatalf("IntN called with n=%d", n)
	}
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v >= n {
		r.t.Fatalf("scripted int %d out of range for n=%d", v, n)
	}
	return v
}

// fixedRand returns the same draws forever.
type fixedRand struct {
	f float64
	i int
}

func (r fixedRand) Float64() float64 { return r.f }

func (r fixedRand) IntN(n int) int {
	if r.i >= n {
		return n - 1
	}
	return r.i
}
