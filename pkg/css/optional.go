package css

// Optional holds a value that may be absent. Shorthand codecs omit the
// token of an absent component.
type Optional[T any] struct {
	v  T
	ok bool
}

// Some returns a present Optional.
func Some[T any](v T) Optional[T] { return Optional[T]{v: v, ok: true} }

// None returns an absent Optional.
func None[T any]() Optional[T] { return Optional[T]{} }

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) { return o.v, o.ok }

// IsSome reports whether the value is present.
func (o Optional[T]) IsSome() bool { return o.ok }

// Or returns the value, or def when absent.
func (o Optional[T]) Or(def T) T {
	if o.ok {
		return o.v
	}
	return def
}
