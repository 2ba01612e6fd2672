package tempus

import (
	"time"

	"github.com/vshulcz/Tempus/series"
)

// TimeRecorder measures how long things take. Start captures the current
// instant and returns a Stopwatch; every Stop on that stopwatch appends one
// duration sample measured from the original start.
//
// Recorders are created by a Registry and are safe for concurrent use.
type TimeRecorder struct {
	store *series.Store[time.Duration]
}

func newTimeRecorder(capacityHint int) *TimeRecorder {
	return &TimeRecorder{store: series.New[time.Duration](capacityHint)}
}

// Start begins a timing at the moment of the call.
func (r *TimeRecorder) Start() *Stopwatch {
	return &Stopwatch{start: time.Now(), rec: r}
}

// Snapshot returns a copy of every timing recorded so far, in append order.
func (r *TimeRecorder) Snapshot() []series.Sample[time.Duration] {
	return r.store.Snapshot()
}

// Stopwatch is a single timing in progress. It borrows its recorder and must
// not outlive the registry that owns it.
type Stopwatch struct {
	start time.Time
	rec   *TimeRecorder
}

// Stop appends one duration sample measured from the stopwatch's start to
// now. Calling Stop again is legal and appends a further, longer sample;
// nothing about the stopwatch is consumed.
func (s *Stopwatch) Stop() {
	now := time.Now()
	s.rec.store.Append(now, now.Sub(s.start))
}
