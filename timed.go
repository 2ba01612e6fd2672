package tempus

import "sync"

// Timed starts a timing when created and guarantees exactly one Stop when
// Done is called, no matter how many times or on which exit path:
//
//	defer tempus.NewTimed(rec).Done()
//
// The stopwatch starts at the defer statement and stops on every way out of
// the function, panics included.
type Timed struct {
	sw   *Stopwatch
	once sync.Once
}

// NewTimed starts a timing on rec.
func NewTimed(rec *TimeRecorder) *Timed {
	return &Timed{sw: rec.Start()}
}

// Done stops the timing. Further calls are no-ops.
func (t *Timed) Done() {
	t.once.Do(t.sw.Stop)
}
