package tempus

import (
	"sync"
	"testing"
)

func TestGaugeZeroBeforeFirstSet(t *testing.T) {
	reg := New()
	g := reg.Gauge("threads")

	if got := g.Value(); got != 0 {
		t.Fatalf("value before any set = %v, want 0", got)
	}
	if got := len(g.Snapshot()); got != 0 {
		t.Fatalf("snapshot has %d samples before any set", got)
	}
}

func TestGaugeSetAndValue(t *testing.T) {
	reg := New()
	g := reg.Gauge("threads")

	g.Set(5)
	if got := g.Value(); got != 5 {
		t.Fatalf("value = %v, want 5", got)
	}

	g.Set(2)
	if got := g.Value(); got != 2 {
		t.Fatalf("value = %v, want 2", got)
	}
}

func TestGaugeKeepsEqualReadings(t *testing.T) {
	reg := New()
	g := reg.Gauge("threads")

	g.Set(7)
	g.Set(7)

	if got := len(g.Snapshot()); got != 2 {
		t.Fatalf("snapshot has %d samples, want 2 (no dedup)", got)
	}
}

func TestGaugeConcurrentSets(t *testing.T) {
	const goroutines = 50
	reg := New()
	g := reg.Gauge("threads")

	written := make(map[float64]bool, goroutines)
	for i := 0; i < goroutines; i++ {
		written[float64(i)] = true
	}

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(v float64) {
			defer wg.Done()
			g.Set(v)
		}(float64(i))
	}

	// reads racing with sets must only ever see values actually written
	for i := 0; i < 100; i++ {
		if v := g.Value(); v != 0 && !written[v] {
			t.Errorf("Value() returned %v, which was never set", v)
		}
	}
	wg.Wait()

	snap := g.Snapshot()
	if len(snap) != goroutines {
		t.Fatalf("snapshot has %d samples, want %d", len(snap), goroutines)
	}
	for _, s := range snap {
		if !written[s.Value] {
			t.Errorf("snapshot contains %v, which was never set", s.Value)
		}
	}
}
