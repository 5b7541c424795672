package tripwire

// Observer fans a single callback out across several latches.
// Call Close() to detach it from all of them.
type Observer[T any] struct {
	listeners []*Listener[T]
	active    bool
}

// Observe hooks fn onto every latch in latches. The set is fixed at call
// time; latches created later need their own hook. Returns an Observer that
// can be closed to unregister all listeners at once.
func Observe[T any](fn func(T), latches ...*Latch[T]) *Observer[T] {
	o := &Observer[T]{
		listeners: make([]*Listener[T], 0, len(latches)),
		active:    true,
	}

	for _, l := range latches {
		o.listeners = append(o.listeners, l.Hook(fn))
	}

	return o
}

// Close detaches the observer from every latch it was watching. Closing twice
// is a no-op.
func (o *Observer[T]) Close() {
	if !o.active {
		return // Already closed
	}
	o.active = false
	listeners := o.listeners
	o.listeners = nil

	for _, l := range listeners {
		l.Close()
	}
}
