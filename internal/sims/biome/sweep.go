package biome

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// RunResult summarises one headless run.
type RunResult struct {
	Seed      int64
	Ticks     int
	Final     Stats
	Peak      int
	PeakTick  int
	ExtinctAt int // -1 while any population survives
}

// Run builds a world from cfg and advances it ticks times.
func Run(cfg Config, ticks int) RunResult {
	w := NewWithConfig(cfg)
	res := RunResult{Seed: w.Seed(), Ticks: ticks, ExtinctAt: -1}
	res.Peak = w.Stats().Total
	for t := 1; t <= ticks; t++ {
		w.Advance()
		s := w.Stats()
		if s.Total > res.Peak {
			res.Peak = s.Total
			res.PeakTick = t
		}
		if s.Total == 0 && res.ExtinctAt < 0 {
			res.ExtinctAt = t
		}
	}
	res.Final = w.Stats()
	return res
}

// SweepRecord aggregates the trials run for one parameter value.
type SweepRecord struct {
	Parameter string
	Value     float64
	Runs      []RunResult

	MeanFinal   float64
	MeanPeak    float64
	Extinctions int
}

// Sweep evaluates param at each value over trials independent seeds, using
// up to workers goroutines. Each run owns its own World. Records come back
// ranked by mean final population, highest first.
func Sweep(base Config, param string, values []float64, ticks, trials, workers int) ([]SweepRecord, error) {
	probe := base.Params
	if !probe.SetFloat(param, 0) {
		return nil, fmt.Errorf("biome: sweep: unknown float parameter %q", param)
	}
	if trials <= 0 {
		trials = 1
	}
	if workers <= 0 {
		workers = 1
	}
	seed := base.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	records := make([]SweepRecord, len(values))
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for idx, value := range values {
		records[idx] = SweepRecord{Parameter: param, Value: value, Runs: make([]RunResult, trials)}
		for trial := 0; trial < trials; trial++ {
			wg.Add(1)
			sem <- struct{}{}
			go func(i, tr int, v float64) {
				defer wg.Done()
				cfg := base
				cfg.Params.SetFloat(param, v)
				cfg.Seed = seed + int64(tr)
				records[i].Runs[tr] = Run(cfg, ticks)
				<-sem
			}(idx, trial, value)
		}
	}

	wg.Wait()

	for i := range records {
		rec := &records[i]
		for _, run := range rec.Runs {
			rec.MeanFinal += float64(run.Final.Total)
			rec.MeanPeak += float64(run.Peak)
			if run.ExtinctAt >= 0 {
				rec.Extinctions++
			}
		}
		rec.MeanFinal /= float64(len(rec.Runs))
		rec.MeanPeak /= float64(len(rec.Runs))
	}
	sort.SliceStable(records, func(a, b int) bool {
		return records[a].MeanFinal > records[b].MeanFinal
	})
	return records, nil
}
