// Package reporter periodically pulls consistent snapshots out of a
// tempus.Registry and fans them out to observers. It defines no wire format:
// a Report carries the raw sample series and each sink decides what to do
// with them.
package reporter

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vshulcz/Tempus"
	"github.com/vshulcz/Tempus/pkg/observer"
	"github.com/vshulcz/Tempus/series"
)

// Report is one pass over everything a registry has collected so far.
type Report struct {
	TakenAt  time.Time
	Timers   map[string][]series.Sample[time.Duration]
	Counters map[string][]series.Sample[uint64]
	Gauges   map[string][]series.Sample[float64]
}

// Reporter snapshots a registry on a fixed interval and publishes each
// Report to its observers.
type Reporter struct {
	reg      *tempus.Registry
	subject  *observer.Subject[Report]
	interval time.Duration
}

// New builds a reporter over reg. Observers may be attached now or later.
func New(reg *tempus.Registry, interval time.Duration, obs ...observer.Observer[Report]) (*Reporter, error) {
	if reg == nil {
		return nil, fmt.Errorf("reporter: registry is required")
	}
	if interval <= 0 {
		return nil, fmt.Errorf("reporter: interval must be positive, got %s", interval)
	}
	return &Reporter{
		reg:      reg,
		subject:  observer.NewSubject(obs...),
		interval: interval,
	}, nil
}

// Attach registers additional report sinks.
func (r *Reporter) Attach(obs ...observer.Observer[Report]) {
	r.subject.Attach(obs...)
}

// SetErrorHandler configures a callback for sink failures.
func (r *Reporter) SetErrorHandler(fn func(error)) {
	r.subject.SetErrorHandler(fn)
}

// Run publishes a report every interval and blocks until ctx is done.
// A final report is published on the way out so no tail samples are lost.
func (r *Reporter) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.subject.Publish(context.WithoutCancel(ctx), r.ReportNow())
			return nil
		case <-ticker.C:
			r.subject.Publish(ctx, r.ReportNow())
		}
	}
}

// ReportNow builds a one-shot report from the registry's current contents.
func (r *Reporter) ReportNow() Report {
	rep := Report{
		TakenAt:  time.Now(),
		Timers:   make(map[string][]series.Sample[time.Duration]),
		Counters: make(map[string][]series.Sample[uint64]),
		Gauges:   make(map[string][]series.Sample[float64]),
	}
	for name, t := range r.reg.Timers() {
		rep.Timers[name] = t.Snapshot()
	}
	for name, c := range r.reg.Counters() {
		rep.Counters[name] = c.Snapshot()
	}
	for name, g := range r.reg.Gauges() {
		rep.Gauges[name] = g.Snapshot()
	}
	return rep
}

// LogSink returns an observer that writes a structured summary of each
// report: per recorder, the sample count and the most recent value. It never
// computes aggregates; raw series stay available to other sinks.
func LogSink(l *zap.Logger) observer.Observer[Report] {
	return observer.ObserverFunc[Report](func(_ context.Context, rep Report) error {
		for name, samples := range rep.Timers {
			if len(samples) == 0 {
				continue
			}
			last := samples[len(samples)-1]
			l.Info("timer",
				zap.String("name", name),
				zap.Int("samples", len(samples)),
				zap.Duration("last_elapsed", last.Value),
				zap.Time("last_at", last.At),
			)
		}
		for name, samples := range rep.Counters {
			if len(samples) == 0 {
				continue
			}
			last := samples[len(samples)-1]
			l.Info("counter",
				zap.String("name", name),
				zap.Int("samples", len(samples)),
				zap.Uint64("total", last.Value),
				zap.Time("last_at", last.At),
			)
		}
		for name, samples := range rep.Gauges {
			if len(samples) == 0 {
				continue
			}
			last := samples[len(samples)-1]
			l.Info("gauge",
				zap.String("name", name),
				zap.Int("samples", len(samples)),
				zap.Float64("value", last.Value),
				zap.Time("last_at", last.At),
			)
		}
		return nil
	})
}
