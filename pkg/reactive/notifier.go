package reactive

import "sync"

// subscriber pairs a callback with its cancellation handle.
type subscriber[T any] struct {
	sub *Subscription
	fn  func(T)
}

// notifier holds a value and an ordered subscriber list.
// It is embedded in Cell[T] and Derived[T] to share notification logic.
type notifier[T any] struct {
	id uint64

	// mu protects every field below.
	mu sync.Mutex

	value T

	// subs are kept in subscription order.
	subs []*subscriber[T]

	// equal suppresses notification when it reports old and new as equal.
	// nil means every write notifies.
	equal func(T, T) bool

	// notifying is set while a goroutine is running notification passes.
	notifying bool

	// dirty records a write that the next pass must deliver to every
	// subscriber.
	dirty bool

	// pending are subscribers added by follow that have not yet received
	// the current value.
	pending []*subscriber[T]

	// seq is the highest sequence number accepted by publishOrdered.
	seq uint64
}

func (n *notifier[T]) init(initial T) {
	n.id = nextID()
	n.value = initial
}

func (n *notifier[T]) get() T {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.value
}

// listen appends fn to the subscriber list. Identical callbacks are not
// deduplicated.
func (n *notifier[T]) listen(fn func(T)) *Subscription {
	s := &subscriber[T]{fn: fn}
	s.sub = newSubscription(func() { n.remove(s) })

	n.mu.Lock()
	n.subs = append(n.subs, s)
	n.mu.Unlock()

	return s.sub
}

// follow appends fn to the subscriber list and delivers the current value
// to it. Recording the subscriber and scheduling its first delivery happen
// under one lock, so a write that lands in between is never lost: fn sees
// the value current at subscription time, then every later value.
//
// When a pass is already running, on this goroutine or another, the first
// delivery is made by that pass's goroutine once its current pass ends.
func (n *notifier[T]) follow(fn func(T)) *Subscription {
	s := &subscriber[T]{fn: fn}
	s.sub = newSubscription(func() { n.remove(s) })

	n.mu.Lock()
	n.subs = append(n.subs, s)
	n.pending = append(n.pending, s)
	if n.notifying {
		n.mu.Unlock()
		return s.sub
	}
	n.notifying = true
	n.mu.Unlock()

	n.flush()
	return s.sub
}

// remove deletes s while preserving the order of the remaining subscribers.
func (n *notifier[T]) remove(s *subscriber[T]) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i, existing := range n.subs {
		if existing == s {
			copy(n.subs[i:], n.subs[i+1:])
			n.subs[len(n.subs)-1] = nil
			n.subs = n.subs[:len(n.subs)-1]
			return
		}
	}
}

func (n *notifier[T]) len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subs)
}

// publish stores v and notifies subscribers.
func (n *notifier[T]) publish(v T) {
	n.mu.Lock()
	if n.storeLocked(v) {
		n.mu.Unlock()
		n.flush()
		return
	}
	n.mu.Unlock()
}

// publishOrdered is publish for results computed concurrently. A result
// whose seq is not newer than the last accepted one is dropped, so the
// stored value always follows computation order.
func (n *notifier[T]) publishOrdered(v T, seq uint64) {
	n.mu.Lock()
	if seq <= n.seq {
		n.mu.Unlock()
		return
	}
	n.seq = seq
	if n.storeLocked(v) {
		n.mu.Unlock()
		n.flush()
		return
	}
	n.mu.Unlock()
}

// update applies fn to the current value under the lock, then notifies.
func (n *notifier[T]) update(fn func(T) T) {
	n.mu.Lock()
	if n.storeLocked(fn(n.value)) {
		n.mu.Unlock()
		n.flush()
		return
	}
	n.mu.Unlock()
}

// storeLocked writes v and reports whether the caller must run flush.
// When a pass is already running the write is folded into a follow-up pass.
func (n *notifier[T]) storeLocked(v T) bool {
	if n.equal != nil && n.equal(n.value, v) {
		return false
	}
	n.value = v
	n.dirty = true
	if n.notifying {
		return false
	}
	n.notifying = true
	return true
}

// flush runs notification passes until no write or follow arrives during a
// pass. Each pass snapshots the value and the subscribers it owes a
// delivery, then calls them with the lock released. After a write that is
// every subscriber; otherwise only those waiting on a first value.
func (n *notifier[T]) flush() {
	defer func() {
		if r := recover(); r != nil {
			n.mu.Lock()
			n.notifying = false
			n.dirty = false
			n.pending = nil
			n.mu.Unlock()
			panic(r)
		}
	}()

	for {
		n.mu.Lock()
		value := n.value
		var subs []*subscriber[T]
		if n.dirty {
			subs = make([]*subscriber[T], len(n.subs))
			copy(subs, n.subs)
		} else {
			subs = n.pending
		}
		n.pending = nil
		n.dirty = false
		n.mu.Unlock()

		for _, s := range subs {
			if s.sub.Active() {
				s.fn(value)
			}
		}

		n.mu.Lock()
		if !n.dirty && len(n.pending) == 0 {
			n.notifying = false
			n.mu.Unlock()
			return
		}
		n.mu.Unlock()
	}
}
