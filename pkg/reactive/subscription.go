package reactive

import "sync/atomic"

// Subscription is the handle returned by Listen. Cancelling it removes the
// callback from its source; a cancelled callback is never invoked again, even
// by a notification pass that is already in progress.
//
// A nil *Subscription is valid and inert. Observe returns nil for constants.
type Subscription struct {
	id     uint64
	active atomic.Bool
	remove func()
}

func newSubscription(remove func()) *Subscription {
	s := &Subscription{
		id:     nextID(),
		remove: remove,
	}
	s.active.Store(true)
	return s
}

// Cancel detaches the callback. It is safe to call more than once and from
// inside the callback itself.
func (s *Subscription) Cancel() {
	if s == nil {
		return
	}
	if s.active.Swap(false) && s.remove != nil {
		s.remove()
	}
}

// Active reports whether the subscription still delivers notifications.
func (s *Subscription) Active() bool {
	if s == nil {
		return false
	}
	return s.active.Load()
}

// ID returns the unique identifier for this subscription.
func (s *Subscription) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.id
}
