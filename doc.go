// Package tempus is an in-process instrumentation core: named timers,
// monotonic counters, and point-in-time gauges that application code can
// record against concurrently, without a central writer goroutine.
//
// A Registry owns every recorder. Applications obtain handles by name during
// startup and record through those handles for the rest of the process
// lifetime; a name always resolves to the same recorder, and handles stay
// valid for as long as the registry lives.
//
//	reg := tempus.New()
//	queries := reg.Timer("query")
//	handled := reg.Counter("handled")
//	workers := reg.Gauge("workers")
//
//	sw := queries.Start()
//	// ... do the work ...
//	sw.Stop()
//
//	handled.Inc()
//	workers.Set(7)
//
// Every recorded value is kept as a timestamped sample in an append-only
// time series (see the series package). Reporting code pulls consistent
// copies via the Snapshot methods; this package defines no output format of
// its own.
package tempus
