package tempus

// Option configures a Registry at construction time.
type Option func(*Registry)

// WithCapacityHint sets the advisory per-recorder reservation for sample
// storage. The hint sizes internal bookkeeping for the expected volume;
// recorders grow transparently past it. A hint <= 0 keeps the default
// (series.DefaultCapacityHint).
func WithCapacityHint(n int) Option {
	return func(r *Registry) {
		r.capacityHint = n
	}
}
