// Package collector feeds a tempus.Registry with Go runtime statistics and
// host CPU/RAM readings sampled on a fixed interval.
package collector

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/vshulcz/Tempus"
)

// Gauge names published by the Runtime collector.
const (
	GAlloc         = "runtime.alloc"
	GTotalAlloc    = "runtime.total_alloc"
	GSys           = "runtime.sys"
	GHeapAlloc     = "runtime.heap_alloc"
	GHeapInuse     = "runtime.heap_inuse"
	GHeapObjects   = "runtime.heap_objects"
	GStackInuse    = "runtime.stack_inuse"
	GMallocs       = "runtime.mallocs"
	GFrees         = "runtime.frees"
	GNumGC         = "runtime.num_gc"
	GPauseTotal    = "runtime.gc_pause_total_ns"
	GGCCPUFraction = "runtime.gc_cpu_fraction"
	GGoroutines    = "runtime.goroutines"
	GMemTotal      = "host.mem_total"
	GMemFree       = "host.mem_free"
	CPUUtilization = "host.cpu" // per-core: host.cpu1, host.cpu2, ...
)

// Name of the counter tracking completed poll passes and of the timer
// measuring how long each pass takes.
const (
	CPolls       = "collector.polls"
	TPollElapsed = "collector.poll"
)

// Runtime periodically samples Go runtime stats plus host CPU/RAM into
// gauges of one registry. All handles are obtained once, at construction.
type Runtime struct {
	gauges map[string]*tempus.GaugeRecorder
	cores  []*tempus.GaugeRecorder
	polls  *tempus.CountRecorder
	passes *tempus.TimeRecorder

	stop chan struct{}
	wg   sync.WaitGroup
}

// New registers every gauge, counter, and timer the collector records
// against and returns a collector ready to Start.
func New(reg *tempus.Registry) *Runtime {
	names := []string{
		GAlloc, GTotalAlloc, GSys, GHeapAlloc, GHeapInuse, GHeapObjects,
		GStackInuse, GMallocs, GFrees, GNumGC, GPauseTotal, GGCCPUFraction,
		GGoroutines, GMemTotal, GMemFree,
	}
	gauges := make(map[string]*tempus.GaugeRecorder, len(names))
	for _, n := range names {
		gauges[n] = reg.Gauge(n)
	}

	cores := make([]*tempus.GaugeRecorder, runtime.NumCPU())
	for i := range cores {
		cores[i] = reg.Gauge(fmt.Sprintf("%s%d", CPUUtilization, i+1))
	}

	return &Runtime{
		gauges: gauges,
		cores:  cores,
		polls:  reg.Counter(CPolls),
		passes: reg.Timer(TPollElapsed),
		stop:   make(chan struct{}),
	}
}

// Start launches the sampling goroutine. It returns an error if the interval
// is not positive; otherwise it never blocks.
func (c *Runtime) Start(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("collector: interval must be positive, got %s", interval)
	}

	t := time.NewTicker(interval)
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-c.stop:
				return
			case <-t.C:
				c.poll()
			}
		}
	}()

	return nil
}

// poll records one full pass over runtime and host metrics.
func (c *Runtime) poll() {
	defer tempus.NewTimed(c.passes).Done()

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	c.gauges[GAlloc].Set(float64(ms.Alloc))
	c.gauges[GTotalAlloc].Set(float64(ms.TotalAlloc))
	c.gauges[GSys].Set(float64(ms.Sys))
	c.gauges[GHeapAlloc].Set(float64(ms.HeapAlloc))
	c.gauges[GHeapInuse].Set(float64(ms.HeapInuse))
	c.gauges[GHeapObjects].Set(float64(ms.HeapObjects))
	c.gauges[GStackInuse].Set(float64(ms.StackInuse))
	c.gauges[GMallocs].Set(float64(ms.Mallocs))
	c.gauges[GFrees].Set(float64(ms.Frees))
	c.gauges[GNumGC].Set(float64(ms.NumGC))
	c.gauges[GPauseTotal].Set(float64(ms.PauseTotalNs))
	c.gauges[GGCCPUFraction].Set(ms.GCCPUFraction)
	c.gauges[GGoroutines].Set(float64(runtime.NumGoroutine()))

	if vm, err := mem.VirtualMemory(); err == nil && vm != nil {
		c.gauges[GMemTotal].Set(float64(vm.Total))
		c.gauges[GMemFree].Set(float64(vm.Free))
	}
	if pct, err := cpu.Percent(0, true); err == nil {
		for i, p := range pct {
			if i < len(c.cores) {
				c.cores[i].Set(p)
			}
		}
	}

	c.polls.Inc()
}

// Stop signals the sampling goroutine to halt and waits for it to finish.
// Stop is safe to call more than once.
func (c *Runtime) Stop() {
	select {
	case <-c.stop:
	default:
		close(c.stop)
	}
	c.wg.Wait()
}
