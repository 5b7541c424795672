package tripwire

// Listener represents an active subscription on a latch.
// Call Close() to unregister the listener and prevent further callbacks.
type Listener[T any] struct {
	latch    *Latch[T]
	callback func(T)
}

// Close removes this listener from its latch, preserving the order of the
// remaining listeners. Closing an already-closed listener is a no-op.
func (l *Listener[T]) Close() {
	l.latch.unregister(l)
}
