package tempus

import (
	"time"

	"github.com/vshulcz/Tempus/series"
)

// GaugeRecorder records point-in-time readings of some observed value, for
// example "7 workers right now". Set appends unconditionally; consecutive
// equal readings are kept, not deduplicated.
type GaugeRecorder struct {
	store *series.Store[float64]
}

func newGaugeRecorder(capacityHint int) *GaugeRecorder {
	return &GaugeRecorder{store: series.New[float64](capacityHint)}
}

// Set records the observed value at the moment of the call.
func (g *GaugeRecorder) Set(v float64) {
	g.store.Append(time.Now(), v)
}

// Value returns the most recently recorded reading, or 0 if the gauge has
// never been set. When sets race each other the result is some value that
// was actually recorded; which one is unspecified.
func (g *GaugeRecorder) Value() float64 {
	last, ok := g.store.Last()
	if !ok {
		return 0
	}
	return last.Value
}

// Snapshot returns a copy of every reading recorded so far, in append order.
func (g *GaugeRecorder) Snapshot() []series.Sample[float64] {
	return g.store.Snapshot()
}
