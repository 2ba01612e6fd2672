package tempus

import (
	"sync/atomic"
	"time"

	"github.com/vshulcz/Tempus/series"
)

// CountRecorder accumulates a monotonic running total. Every Add appends a
// sample holding the total that resulted from exactly that addition, so the
// recorded series is the full history of totals the counter passed through.
//
// There is no decrement: counts model "things handled" and never go down.
type CountRecorder struct {
	store *series.Store[uint64]
	total atomic.Uint64
}

func newCountRecorder(capacityHint int) *CountRecorder {
	return &CountRecorder{store: series.New[uint64](capacityHint)}
}

// Add atomically adds delta to the running total and records the new total.
// Adding zero is legal and still appends a sample.
func (c *CountRecorder) Add(delta uint64) {
	v := c.total.Add(delta)
	c.store.Append(time.Now(), v)
}

// Inc adds one.
func (c *CountRecorder) Inc() {
	c.Add(1)
}

// Total returns the current running total.
func (c *CountRecorder) Total() uint64 {
	return c.total.Load()
}

// Snapshot returns a copy of every recorded total so far, in append order.
func (c *CountRecorder) Snapshot() []series.Sample[uint64] {
	return c.store.Snapshot()
}
