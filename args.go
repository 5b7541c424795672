package tripwire

// Field is a named value carried in an Args bundle. Library users can
// implement custom Field types; typed access goes through Key.
type Field interface {
	// Name returns the semantic identifier for this field.
	Name() string

	// Value returns the underlying value as any.
	Value() any
}

// Args is an ordered bundle of fields, letting a single Latch[Args] carry any
// number of arguments of mixed type through Signal.
type Args struct {
	fields []Field
}

// Pack builds an Args bundle, preserving field order.
func Pack(fields ...Field) Args {
	return Args{fields: fields}
}

// Get returns the first field with the given name, or nil if absent.
func (a Args) Get(name string) Field {
	for _, f := range a.fields {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// Fields returns the bundle's fields in pack order.
// Returns a defensive copy; modifications don't affect the bundle.
func (a Args) Fields() []Field {
	out := make([]Field, len(a.fields))
	copy(out, a.fields)
	return out
}

// Len returns the number of fields in the bundle.
func (a Args) Len() int { return len(a.fields) }

// Key is a typed semantic identifier for a field.
//
// Example:
//
//	var attempt = tripwire.NewKey[int]("attempt")
//
//	latch.Hook(func(a tripwire.Args) {
//		n, _ := attempt.From(a)
//		// ...
//	})
//	latch.Signal(tripwire.Pack(attempt.Of(3)))
type Key[T any] struct {
	name string
}

// NewKey creates a Key for type T with the given name.
func NewKey[T any](name string) Key[T] {
	return Key[T]{name: name}
}

// Name returns the semantic identifier.
func (k Key[T]) Name() string { return k.name }

// Of creates a Field holding v under this key.
func (k Key[T]) Of(v T) Field {
	return field[T]{name: k.name, value: v}
}

// From extracts the typed value for this key from the bundle. Returns the zero
// value and false if the key is absent or holds another type.
func (k Key[T]) From(a Args) (T, bool) {
	var zero T
	f := a.Get(k.name)
	if f == nil {
		return zero, false
	}
	if tf, ok := f.(field[T]); ok {
		return tf.value, true
	}
	return zero, false
}

// field is the built-in Field implementation produced by Key.Of.
type field[T any] struct {
	name  string
	value T
}

// Name returns the semantic identifier.
func (f field[T]) Name() string { return f.name }

// Value returns the underlying value as any.
func (f field[T]) Value() any { return f.value }
