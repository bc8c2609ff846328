package core

import (
	"testing"
	"time"
)

func TestFixedStepDue(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if n := fs.Due(5); n != 1 {
		t.Fatalf("first call should release the primed tick, got %d", n)
	}
	clock = clock.Add(50 * time.Millisecond)
	if n := fs.Due(5); n != 0 {
		t.Fatalf("half a step should not tick, got %d", n)
	}
	clock = clock.Add(250 * time.Millisecond)
	if n := fs.Due(5); n != 3 {
		t.Fatalf("expected 3 accrued ticks, got %d", n)
	}
	clock = clock.Add(10 * time.Second)
	if n := fs.Due(4); n != 4 {
		t.Fatalf("expected catch-up capped at 4, got %d", n)
	}
	if n := fs.Due(4); n != 0 {
		t.Fatalf("backlog should be dropped after cap, got %d", n)
	}
}

func TestFixedStepTPSFallback(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.TPS() != 10 {
		t.Fatalf("expected fallback TPS 10, got %d", fs.TPS())
	}
	fs.SetTPS(40)
	if fs.TPS() != 40 {
		t.Fatalf("expected TPS 40, got %d", fs.TPS())
	}
}
