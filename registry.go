package tempus

import (
	"maps"
	"sync"
)

// Registry owns all recorders and resolves them by name. Each recorder kind
// has its own namespace: "query" may simultaneously name a timer and a
// gauge. A name, once created, maps to the same recorder for the registry's
// entire lifetime; entries are never replaced or removed.
//
// All methods are safe for concurrent use, though the intended discipline is
// to obtain handles during startup and only record through them afterwards.
// A Registry must not be copied: copying would fork independent time series
// under one shared name.
type Registry struct {
	mu       sync.RWMutex
	timers   map[string]*TimeRecorder
	counters map[string]*CountRecorder
	gauges   map[string]*GaugeRecorder

	capacityHint int
}

// New creates an empty registry. An application typically creates one per
// process (or per subsystem) at startup.
func New(opts ...Option) *Registry {
	r := &Registry{
		timers:   make(map[string]*TimeRecorder),
		counters: make(map[string]*CountRecorder),
		gauges:   make(map[string]*GaugeRecorder),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Timer returns the timer registered under name, creating it on first use.
// The returned handle stays valid for the registry's lifetime.
func (r *Registry) Timer(name string) *TimeRecorder {
	r.mu.RLock()
	t, ok := r.timers[name]
	r.mu.RUnlock()
	if ok {
		return t
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.timers[name]; ok {
		return t
	}
	t = newTimeRecorder(r.capacityHint)
	r.timers[name] = t
	return t
}

// Counter returns the counter registered under name, creating it on first use.
func (r *Registry) Counter(name string) *CountRecorder {
	r.mu.RLock()
	c, ok := r.counters[name]
	r.mu.RUnlock()
	if ok {
		return c
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.counters[name]; ok {
		return c
	}
	c = newCountRecorder(r.capacityHint)
	r.counters[name] = c
	return c
}

// Gauge returns the gauge registered under name, creating it on first use.
func (r *Registry) Gauge(name string) *GaugeRecorder {
	r.mu.RLock()
	g, ok := r.gauges[name]
	r.mu.RUnlock()
	if ok {
		return g
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if g, ok := r.gauges[name]; ok {
		return g
	}
	g = newGaugeRecorder(r.capacityHint)
	r.gauges[name] = g
	return g
}

// Timers returns a copy of the name→timer table for reporting code.
func (r *Registry) Timers() map[string]*TimeRecorder {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]*TimeRecorder, len(r.timers))
	maps.Copy(out, r.timers)
	return out
}

// Counters returns a copy of the name→counter table for reporting code.
func (r *Registry) Counters() map[string]*CountRecorder {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]*CountRecorder, len(r.counters))
	maps.Copy(out, r.counters)
	return out
}

// Gauges returns a copy of the name→gauge table for reporting code.
func (r *Registry) Gauges() map[string]*GaugeRecorder {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]*GaugeRecorder, len(r.gauges))
	maps.Copy(out, r.gauges)
	return out
}
