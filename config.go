package tripwire

// Option configures a Latch at construction.
type Option[T any] func(*Latch[T])

// WithWindow sets the fire condition. Without it the latch fires exactly at
// Count == 0.
func WithWindow[T any](r Range) Option[T] {
	return func(l *Latch[T]) {
		l.Window = r
	}
}

// WithHook registers fn at construction, ahead of any listener hooked
// afterwards.
func WithHook[T any](fn func(T)) Option[T] {
	return func(l *Latch[T]) {
		l.Hook(fn)
	}
}

// WithAutoReset registers Reset as a listener, so the latch rearms to Start in
// the same call stack as the fire. Listeners hooked after it observe the
// already-reset Count, so order it last unless that is intended.
func WithAutoReset[T any]() Option[T] {
	return func(l *Latch[T]) {
		l.Hook(func(T) {
			l.Reset()
		})
	}
}
