package reactive

import "sync"

// Value is anything a builder method can read a T from.
//
// A Value is either constant or reactive. Reactive values also implement
// Source[T]; Cell and Derived do. Static wraps a plain literal.
type Value[T any] interface {
	Get() T
}

// Source is a reactive Value that can be followed.
type Source[T any] interface {
	Value[T]
	Listen(fn func(T)) *Subscription
}

// Disposer is implemented by values that hold upstream subscriptions.
type Disposer interface {
	Dispose()
}

// constant is the non-reactive arm of Value.
type constant[T any] struct {
	v T
}

func (c constant[T]) Get() T { return c.v }

// Static wraps a literal as a constant Value.
func Static[T any](v T) Value[T] {
	return constant[T]{v: v}
}

// IsReactive reports whether v can change after it is read.
func IsReactive[T any](v Value[T]) bool {
	_, ok := v.(Source[T])
	return ok
}

// follower is implemented by sources that can subscribe and deliver the
// current value in one step. Cell and Derived do.
type follower[T any] interface {
	Follow(fn func(T)) *Subscription
}

// Observe calls fn with the current value of v right away and, when v is
// reactive, again on every later change. A write that lands while Observe
// is subscribing is never lost: the last value fn sees is the value v ends
// up holding. The returned subscription is nil for constants.
func Observe[T any](v Value[T], fn func(T)) *Subscription {
	src, ok := v.(Source[T])
	if !ok {
		fn(v.Get())
		return nil
	}
	if f, ok := v.(follower[T]); ok {
		return f.Follow(fn)
	}
	return observeSource(src, fn)
}

// observeSource subscribes before reading so a write made after the read is
// delivered by Listen. The initial value is applied only if no delivery has
// already superseded it.
func observeSource[T any](src Source[T], fn func(T)) *Subscription {
	var (
		mu        sync.Mutex
		delivered bool
	)
	sub := src.Listen(func(v T) {
		mu.Lock()
		delivered = true
		mu.Unlock()
		fn(v)
	})

	current := src.Get()
	mu.Lock()
	stale := delivered
	delivered = true
	mu.Unlock()
	if !stale {
		fn(current)
	}
	return sub
}

// Release disposes v if it owns upstream subscriptions.
func Release(v any) {
	if d, ok := v.(Disposer); ok {
		d.Dispose()
	}
}
