package timeseries

// Lazy holds a value that is computed on first access and cached for the
// lifetime of the Lazy. The thunk runs at most once and is dropped after it
// has run. A Lazy is not safe for concurrent use.
type Lazy[T any] struct {
	fn    func() T
	value T
	done  bool
}

// NewLazy returns a Lazy that computes its value with fn.
func NewLazy[T any](fn func() T) *Lazy[T] {
	return &Lazy[T]{fn: fn}
}

// Ready returns a Lazy whose value is already known.
func Ready[T any](value T) *Lazy[T] {
	return &Lazy[T]{value: value, done: true}
}

// Get returns the value, computing it if needed.
func (l *Lazy[T]) Get() T {
	if !l.done {
		l.value = l.fn()
		l.done = true
		l.fn = nil
	}
	return l.value
}

// Computed reports whether the value has been computed.
func (l *Lazy[T]) Computed() bool {
	return l.done
}
