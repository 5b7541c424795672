// Package tripwire provides a count-gated callback latch for single-threaded
// coordination.
//
// A Latch counts down from a starting value as independent code paths call
// Signal. When the count enters the configured window, every hooked listener
// fires synchronously, in registration order, with the payload supplied by the
// decisive call. It replaces ad hoc boolean-flag bookkeeping scattered across
// call sites with one reusable object.
//
// Quick example:
//
//	done := tripwire.New[string](3)
//	done.Hook(func(last string) {
//		fmt.Println("finished after", last)
//	})
//
//	done.Signal("fetch")
//	done.Signal("parse")
//	done.Signal("render") // fires: Count reached 0
//
// All state is unsynchronized: signals, probes, and resets must happen on one
// logical execution context (an event loop, a UI thread, cooperative tasks).
// Cross-goroutine use requires external synchronization.
package tripwire

// Latch is a count-gated multicast callback slot.
//
// Count, Start, and Window are plain mutable fields: the latch never validates
// or clamps them. Setting Count directly and probing with Try is supported, as
// is an inverted Window (which simply never matches).
type Latch[T any] struct {
	// Count is the current count, decremented by each Signal. It has no
	// floor or ceiling.
	Count int

	// Start is the count Reset rearms to.
	Start int

	// Window is the inclusive fire condition. The zero value fires exactly
	// at Count == 0.
	Window Range

	listeners []*Listener[T]
}

// New creates a Latch armed to count. Options apply before the initial reset,
// so a WithWindow window is in place from the first Signal. Negative counts
// are accepted silently.
func New[T any](count int, opts ...Option[T]) *Latch[T] {
	l := &Latch[T]{}
	for _, opt := range opts {
		opt(l)
	}
	l.ResetTo(count)
	return l
}

// Hook appends fn to the latch's listeners. Listeners fire in registration
// order; hooking the same function twice registers two independent listeners.
// Returns a Listener that can be closed to unregister.
func (l *Latch[T]) Hook(fn func(T)) *Listener[T] {
	lis := &Listener[T]{latch: l, callback: fn}
	l.listeners = append(l.listeners, lis)
	return lis
}

// Signal decrements Count by one, then probes the window with v. The payload
// is not retained: it reaches listeners only if this very call fires.
func (l *Latch[T]) Signal(v T) {
	l.Count--
	l.Try(v)
}

// Try invokes every listener with v if Count is inside the window, and does
// nothing otherwise. Count is not touched either way.
//
// Dispatch is synchronous and unguarded: a panicking listener propagates to
// the caller and the remaining listeners do not run. A listener may call
// Signal, Reset, or Hook on the same latch; the auto-reset pattern depends on
// this. Dispatch walks a snapshot of the listener list, so listeners hooked or
// closed mid-dispatch take effect on the next fire.
func (l *Latch[T]) Try(v T) {
	if !l.Window.Contains(l.Count) {
		return
	}

	listeners := make([]*Listener[T], len(l.listeners))
	copy(listeners, l.listeners)

	for _, lis := range listeners {
		lis.callback(v)
	}
}

// Reset rearms the latch: Count = Start. It never dispatches, even if Start is
// inside the window.
func (l *Latch[T]) Reset() {
	l.Count = l.Start
}

// ResetTo sets Start to count, then resets.
func (l *Latch[T]) ResetTo(count int) {
	l.Start = count
	l.Reset()
}

// unregister removes lis, preserving the order of the remaining listeners.
func (l *Latch[T]) unregister(lis *Listener[T]) {
	for i, cur := range l.listeners {
		if cur == lis {
			l.listeners = append(l.listeners[:i], l.listeners[i+1:]...)
			return
		}
	}
}
