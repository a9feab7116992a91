package reactive

import (
	"sync"
	"sync/atomic"
)

// Scope owns the subscriptions made on behalf of one entity. When a Scope is
// disposed, its child scopes, subscriptions and cleanup functions are
// released, last registered first.
//
// Scopes form a hierarchy that mirrors the element tree: a child element's
// scope is a child of its parent's scope.
type Scope struct {
	id uint64

	// parent is nil for a root scope.
	parent *Scope

	children   []*Scope
	childrenMu sync.Mutex

	subs   []*Subscription
	subsMu sync.Mutex

	// cleanups are manual cleanup functions registered via OnCleanup.
	cleanups   []func()
	cleanupsMu sync.Mutex

	disposed atomic.Bool
}

// NewScope creates a scope registered as a child of parent.
// If parent is nil, creates a root scope.
func NewScope(parent *Scope) *Scope {
	s := &Scope{
		id:     nextID(),
		parent: parent,
	}
	if parent != nil {
		parent.addChild(s)
	}
	return s
}

// ID returns the unique identifier for this scope.
func (s *Scope) ID() uint64 {
	return s.id
}

// Parent returns the parent scope, or nil for a root scope.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// IsDisposed returns true if this scope has been disposed.
func (s *Scope) IsDisposed() bool {
	return s.disposed.Load()
}

// Adopt moves s under a new parent.
func (s *Scope) Adopt(parent *Scope) {
	if s.parent == parent {
		return
	}
	if s.parent != nil {
		s.parent.removeChild(s)
	}
	s.parent = parent
	if parent != nil {
		parent.addChild(s)
	}
}

func (s *Scope) addChild(child *Scope) {
	if s.disposed.Load() {
		child.Dispose()
		return
	}
	s.childrenMu.Lock()
	defer s.childrenMu.Unlock()
	s.children = append(s.children, child)
}

func (s *Scope) removeChild(child *Scope) {
	s.childrenMu.Lock()
	defer s.childrenMu.Unlock()

	for i, c := range s.children {
		if c == child {
			s.children = append(s.children[:i], s.children[i+1:]...)
			return
		}
	}
}

// Track registers sub for cancellation on Dispose. A nil sub is ignored.
// Tracking on a disposed scope cancels sub immediately.
func (s *Scope) Track(sub *Subscription) {
	if sub == nil {
		return
	}
	if s.disposed.Load() {
		sub.Cancel()
		return
	}

	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	s.subs = append(s.subs, sub)
}

// OnCleanup registers a cleanup function to run when this scope is disposed.
func (s *Scope) OnCleanup(fn func()) {
	if s.disposed.Load() {
		// Already disposed, run cleanup immediately
		fn()
		return
	}

	s.cleanupsMu.Lock()
	defer s.cleanupsMu.Unlock()
	s.cleanups = append(s.cleanups, fn)
}

// Len returns the number of subscriptions tracked by this scope that are
// still active. Child scopes are not counted.
func (s *Scope) Len() int {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	n := 0
	for _, sub := range s.subs {
		if sub.Active() {
			n++
		}
	}
	return n
}

// Children returns a snapshot of the child scopes.
func (s *Scope) Children() []*Scope {
	s.childrenMu.Lock()
	defer s.childrenMu.Unlock()
	return append([]*Scope(nil), s.children...)
}

// Dispose releases this scope and everything it owns.
// Children are disposed in reverse order (last created first).
// It returns the number of subscriptions cancelled, children included.
func (s *Scope) Dispose() int {
	if s.disposed.Swap(true) {
		return 0
	}

	if s.parent != nil {
		s.parent.removeChild(s)
	}

	s.childrenMu.Lock()
	children := s.children
	s.children = nil
	s.childrenMu.Unlock()

	released := 0
	for i := len(children) - 1; i >= 0; i-- {
		released += children[i].Dispose()
	}

	s.subsMu.Lock()
	subs := s.subs
	s.subs = nil
	s.subsMu.Unlock()

	for i := len(subs) - 1; i >= 0; i-- {
		if subs[i].Active() {
			released++
		}
		subs[i].Cancel()
	}

	s.cleanupsMu.Lock()
	cleanups := s.cleanups
	s.cleanups = nil
	s.cleanupsMu.Unlock()

	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}

	return released
}
