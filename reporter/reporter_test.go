package reporter

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/vshulcz/Tempus"
	obs "github.com/vshulcz/Tempus/pkg/observer"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name     string
		reg      *tempus.Registry
		interval time.Duration
		wantErr  bool
	}{
		{"nil registry", nil, time.Second, true},
		{"zero interval", tempus.New(), 0, true},
		{"negative interval", tempus.New(), -time.Second, true},
		{"valid", tempus.New(), time.Second, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.reg, tt.interval)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestReportNow(t *testing.T) {
	reg := tempus.New()
	sw := reg.Timer("query").Start()
	sw.Stop()
	reg.Counter("handled").Add(3)
	reg.Gauge("threads").Set(7)

	r, err := New(reg, time.Second)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rep := r.ReportNow()
	if rep.TakenAt.IsZero() {
		t.Error("TakenAt not stamped")
	}
	if got := len(rep.Timers["query"]); got != 1 {
		t.Errorf("timer series has %d samples, want 1", got)
	}
	if got := len(rep.Counters["handled"]); got != 1 {
		t.Errorf("counter series has %d samples, want 1", got)
	}
	if rep.Counters["handled"][0].Value != 3 {
		t.Errorf("recorded total = %d, want 3", rep.Counters["handled"][0].Value)
	}
	if rep.Gauges["threads"][0].Value != 7 {
		t.Errorf("recorded gauge = %v, want 7", rep.Gauges["threads"][0].Value)
	}
}

func TestRunPublishesUntilDone(t *testing.T) {
	reg := tempus.New()
	reg.Counter("handled").Inc()

	var mu sync.Mutex
	var got []Report
	sink := obs.ObserverFunc[Report](func(_ context.Context, rep Report) error {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, rep)
		return nil
	})

	r, err := New(reg, 5*time.Millisecond, sink)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	if err := r.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	// at least one tick plus the final report on shutdown
	if len(got) < 2 {
		t.Fatalf("published %d reports, want >= 2", len(got))
	}
	last := got[len(got)-1]
	if len(last.Counters["handled"]) != 1 {
		t.Errorf("final report lost the counter series: %+v", last.Counters)
	}
}

func TestSinkErrorsReachHandler(t *testing.T) {
	reg := tempus.New()
	r, err := New(reg, time.Second, obs.ObserverFunc[Report](func(context.Context, Report) error {
		return errors.New("sink down")
	}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var mu sync.Mutex
	var errs []error
	r.SetErrorHandler(func(err error) {
		mu.Lock()
		defer mu.Unlock()
		errs = append(errs, err)
	})

	r.subject.Publish(context.Background(), r.ReportNow())

	mu.Lock()
	defer mu.Unlock()
	if len(errs) != 1 || errs[0].Error() != "sink down" {
		t.Fatalf("expected handler to capture the sink error, got %+v", errs)
	}
}

func TestLogSink(t *testing.T) {
	core, logged := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	reg := tempus.New()
	sw := reg.Timer("query").Start()
	sw.Stop()
	reg.Counter("handled").Add(2)
	reg.Gauge("threads").Set(4)
	reg.Gauge("idle") // registered but never set: must not be logged

	r, err := New(reg, time.Second)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := LogSink(logger).Notify(context.Background(), r.ReportNow()); err != nil {
		t.Fatalf("Notify: %v", err)
	}

	entries := logged.All()
	if len(entries) != 3 {
		t.Fatalf("logged %d entries, want 3 (timer, counter, gauge)", len(entries))
	}

	byMsg := make(map[string]map[string]any)
	for _, e := range entries {
		byMsg[e.Message] = e.ContextMap()
	}

	if fields, ok := byMsg["counter"]; !ok {
		t.Error("no counter entry logged")
	} else {
		if fields["name"] != "handled" {
			t.Errorf("counter name = %v, want handled", fields["name"])
		}
		if fields["total"] != uint64(2) {
			t.Errorf("counter total = %v, want 2", fields["total"])
		}
	}
	if fields, ok := byMsg["gauge"]; !ok {
		t.Error("no gauge entry logged")
	} else if fields["value"] != float64(4) {
		t.Errorf("gauge value = %v, want 4", fields["value"])
	}
	if _, ok := byMsg["timer"]; !ok {
		t.Error("no timer entry logged")
	}
}
