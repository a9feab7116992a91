package reactive

import (
	"sync"
	"sync/atomic"
)

// Derived is a read-only value computed from one or more sources. It is
// recomputed eagerly: each source notification produces exactly one
// recomputation and one notification of the Derived's own subscribers.
//
// A Derived keeps strong references to its sources so that an otherwise
// unreferenced source stays alive as long as the Derived does.
type Derived[T any] struct {
	n notifier[T]

	// sources keeps upstream values reachable.
	sources []any

	// upstream are the subscriptions on sources.
	upstream   []*Subscription
	upstreamMu sync.Mutex

	disposed atomic.Bool
}

func newDerived[T any](initial T, sources ...any) *Derived[T] {
	d := &Derived[T]{sources: sources}
	d.n.init(initial)
	return d
}

// Get returns the last computed value.
func (d *Derived[T]) Get() T {
	return d.n.get()
}

// Listen registers fn to receive every recomputed value.
func (d *Derived[T]) Listen(fn func(T)) *Subscription {
	return d.n.listen(fn)
}

// Follow is Listen preceded by delivery of the current value.
func (d *Derived[T]) Follow(fn func(T)) *Subscription {
	return d.n.follow(fn)
}

// Len returns the number of active subscribers.
func (d *Derived[T]) Len() int {
	return d.n.len()
}

// ID returns the unique identifier for this derived value.
func (d *Derived[T]) ID() uint64 {
	return d.n.id
}

// Dispose detaches the derived value from its sources. Its current value is
// kept and it stops changing.
func (d *Derived[T]) Dispose() {
	if d.disposed.Swap(true) {
		return
	}

	d.upstreamMu.Lock()
	upstream := d.upstream
	d.upstream = nil
	d.sources = nil
	d.upstreamMu.Unlock()

	for i := len(upstream) - 1; i >= 0; i-- {
		upstream[i].Cancel()
	}
}

// Disposed reports whether Dispose has been called.
func (d *Derived[T]) Disposed() bool {
	return d.disposed.Load()
}

func (d *Derived[T]) addUpstream(sub *Subscription) {
	if sub == nil {
		return
	}
	if d.disposed.Load() {
		sub.Cancel()
		return
	}
	d.upstreamMu.Lock()
	d.upstream = append(d.upstream, sub)
	d.upstreamMu.Unlock()
}

// follow observes v and records the subscription as upstream of d.
func follow[T, R any](d *Derived[R], v Value[T], fn func(T)) {
	d.addUpstream(Observe(v, fn))
}

// fanIn funnels input changes into a Derived. Updates are serialized by mu
// and each result carries the sequence number taken when it was computed,
// so a slow publisher can never overwrite a newer result.
type fanIn[R any] struct {
	mu      sync.Mutex
	d       *Derived[R]
	compute func() R
	seq     uint64
	ready   bool
}

func newFanIn[R any](compute func() R, sources ...any) *fanIn[R] {
	var zero R
	return &fanIn[R]{d: newDerived(zero, sources...), compute: compute}
}

// update applies set to the latest input values and republishes. Before
// start it only records the input.
func (g *fanIn[R]) update(set func()) {
	g.mu.Lock()
	set()
	if !g.ready {
		g.mu.Unlock()
		return
	}
	g.publishLocked()
}

// start computes the first result once every input is followed.
func (g *fanIn[R]) start() *Derived[R] {
	g.mu.Lock()
	g.ready = true
	g.publishLocked()
	return g.d
}

// publishLocked computes under g.mu, releases it, then publishes.
func (g *fanIn[R]) publishLocked() {
	g.seq++
	seq := g.seq
	r := g.compute()
	g.mu.Unlock()
	g.d.n.publishOrdered(r, seq)
}

// Map returns a Derived whose value is always f applied to the value of src.
// f must be pure.
func Map[T, U any](src Value[T], f func(T) U) *Derived[U] {
	v := src.Get()
	g := newFanIn(func() U { return f(v) }, src)
	follow(g.d, src, func(x T) {
		g.update(func() { v = x })
	})
	return g.start()
}
