package tripwire

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestListenersFireInRegistrationOrder(t *testing.T) {
	l := New[int](1)

	var order []string
	l.Hook(func(_ int) { order = append(order, "first") })
	l.Hook(func(_ int) { order = append(order, "second") })
	l.Hook(func(_ int) { order = append(order, "third") })

	l.Signal(0)

	want := []string{"first", "second", "third"}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("dispatch order (-want +got):\n%s", diff)
	}
}

func TestSameFunctionHookedTwiceFiresTwice(t *testing.T) {
	l := New[int](1)

	fired := 0
	fn := func(_ int) { fired++ }

	l.Hook(fn)
	l.Hook(fn)

	l.Signal(0)

	if fired != 2 {
		t.Errorf("expected 2 invocations, got %d", fired)
	}
}

func TestListenerClose(t *testing.T) {
	l := New(0, WithWindow[int](AtMost(0)))

	first := 0
	second := 0
	a := l.Hook(func(_ int) { first++ })
	l.Hook(func(_ int) { second++ })

	l.Signal(0)
	a.Close()
	l.Signal(0)

	if first != 1 {
		t.Errorf("expected closed listener to fire once, got %d", first)
	}
	if second != 2 {
		t.Errorf("expected remaining listener to fire twice, got %d", second)
	}
}

func TestListenerCloseIdempotent(t *testing.T) {
	l := New[int](1)

	lis := l.Hook(func(_ int) {})

	// Close multiple times should not panic or disturb other listeners.
	lis.Close()
	lis.Close()
	lis.Close()

	fired := 0
	l.Hook(func(_ int) { fired++ })
	l.Signal(0)

	if fired != 1 {
		t.Errorf("expected surviving listener to fire once, got %d", fired)
	}
}

func TestClosePreservesOrderOfRemaining(t *testing.T) {
	l := New[int](1)

	var order []string
	l.Hook(func(_ int) { order = append(order, "a") })
	b := l.Hook(func(_ int) { order = append(order, "b") })
	l.Hook(func(_ int) { order = append(order, "c") })

	b.Close()
	l.Signal(0)

	want := []string{"a", "c"}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("dispatch order (-want +got):\n%s", diff)
	}
}

func TestHookDuringDispatchTakesEffectNextFire(t *testing.T) {
	l := New(1, WithWindow[int](AtMost(0)))

	late := 0
	hooked := false
	l.Hook(func(_ int) {
		if !hooked {
			hooked = true
			l.Hook(func(_ int) { late++ })
		}
	})

	l.Signal(0)
	if late != 0 {
		t.Errorf("expected listener hooked mid-dispatch to wait for next fire, got %d", late)
	}

	l.Signal(0)
	if late != 1 {
		t.Errorf("expected late listener to fire on next signal, got %d", late)
	}
}
