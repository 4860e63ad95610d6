package recovery

// Metrics counts recovered panics by name. A nil Metrics is allowed.
type Metrics interface {
	ObserveGoroutineFailure(name string)
}
