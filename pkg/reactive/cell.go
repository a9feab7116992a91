package reactive

// Cell is a mutable reactive value container. Every Set stores the value and
// synchronously calls each subscriber with it, in subscription order.
type Cell[T any] struct {
	n notifier[T]
}

// NewCell creates a new cell with the given initial value.
func NewCell[T any](initial T) *Cell[T] {
	c := &Cell[T]{}
	c.n.init(initial)
	return c
}

// Get returns the current value. It has no side effects.
func (c *Cell[T]) Get() T {
	return c.n.get()
}

// Set stores value and notifies subscribers.
// Unless WithEquals is configured, setting an equal value still notifies.
func (c *Cell[T]) Set(value T) {
	c.n.publish(value)
}

// Update atomically reads and replaces the value.
// fn runs with the cell locked and must not access the cell.
func (c *Cell[T]) Update(fn func(T) T) {
	c.n.update(fn)
}

// Listen registers fn to receive every future value. The current value is
// not delivered; use Observe for apply-then-follow semantics.
func (c *Cell[T]) Listen(fn func(T)) *Subscription {
	return c.n.listen(fn)
}

// Follow registers fn and delivers the current value to it, then every
// later value. No write is lost between the first delivery and the
// subscription taking effect.
func (c *Cell[T]) Follow(fn func(T)) *Subscription {
	return c.n.follow(fn)
}

// WithEquals returns the cell configured to skip notification when fn
// reports the new value equal to the current one.
func (c *Cell[T]) WithEquals(fn func(T, T) bool) *Cell[T] {
	c.n.mu.Lock()
	c.n.equal = fn
	c.n.mu.Unlock()
	return c
}

// Len returns the number of active subscribers.
func (c *Cell[T]) Len() int {
	return c.n.len()
}

// ID returns the unique identifier for this cell.
func (c *Cell[T]) ID() uint64 {
	return c.n.id
}

// Equal is a ready-made equality function for WithEquals.
func Equal[T comparable](a, b T) bool {
	return a == b
}
