package dom

import (
	"sync"

	"github.com/vango-dev/vbind/pkg/key"
	"github.com/vango-dev/vbind/pkg/reactive"
)

// Element is the binding core shared by every concrete element type.
type Element struct {
	tag      string
	sink     Sink
	scope    *reactive.Scope
	observer Observer

	mu       sync.Mutex
	parent   *Element
	children []*Element
}

// NewElement creates an element whose sink comes from f.
func NewElement(f Factory, tag string) *Element {
	return &Element{
		tag:      tag,
		sink:     f.CreateElement(tag),
		scope:    reactive.NewScope(nil),
		observer: observerOf(f),
	}
}

// Tag returns the element name.
func (e *Element) Tag() string { return e.tag }

// Sink returns the element's sink.
func (e *Element) Sink() Sink { return e.sink }

// Scope returns the scope that owns the element's bindings.
func (e *Element) Scope() *reactive.Scope { return e.scope }

// Parent returns the element this one was appended to, or nil.
func (e *Element) Parent() *Element {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.parent
}

// Children returns a snapshot of the appended children.
func (e *Element) Children() []*Element {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]*Element(nil), e.children...)
}

// Append nests children under e. Their scopes become children of e's scope,
// so disposing e disposes them too. A child that is e itself or one of its
// ancestors is skipped, since nesting it would make a cycle.
func (e *Element) Append(children ...*Element) {
	container, _ := e.sink.(Container)
	for _, c := range children {
		if c == nil || e.within(c) {
			continue
		}
		if old := c.Parent(); old != nil {
			old.detach(c)
		}
		c.mu.Lock()
		c.parent = e
		c.mu.Unlock()

		e.mu.Lock()
		e.children = append(e.children, c)
		e.mu.Unlock()

		c.scope.Adopt(e.scope)
		if container != nil {
			container.AppendChild(c.sink)
		}
	}
}

// within reports whether e is a, or lies somewhere beneath a.
func (e *Element) within(a *Element) bool {
	for p := e; p != nil; p = p.Parent() {
		if p == a {
			return true
		}
	}
	return false
}

func (e *Element) detach(c *Element) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, x := range e.children {
		if x == c {
			e.children = append(e.children[:i], e.children[i+1:]...)
			return
		}
	}
}

// Mount appends e at the top level of a document or factory that accepts
// top-level children.
func (e *Element) Mount(root Container) {
	root.AppendChild(e.sink)
}

// Bindings returns the number of live reactive bindings held by e itself.
func (e *Element) Bindings() int {
	return e.scope.Len()
}

// Disposed reports whether Dispose has been called.
func (e *Element) Disposed() bool {
	return e.scope.IsDisposed()
}

// Dispose cancels every binding of e and its children. The sink keeps the
// last written values. It returns the number of subscriptions released.
func (e *Element) Dispose() int {
	n := e.scope.Dispose()
	if n > 0 {
		e.observer.BindingReleased(n)
	}
	return n
}

// BindAttr writes entry's encoding of v to e's sink now and again after
// every change of v. An absent encoding removes the attribute.
// Binding on a disposed element does nothing.
func BindAttr[T any](e *Element, entry key.Entry[T], v reactive.Value[T]) {
	bind(e, entry.Kind(), entry.Name(), v, func(x T) {
		if s, ok := entry.Encode(x); ok {
			e.sink.SetAttribute(entry.Name(), s)
		} else {
			e.sink.RemoveAttribute(entry.Name())
		}
	})
}

// BindStyle is BindAttr for style properties.
func BindStyle[T any](e *Element, entry key.Entry[T], v reactive.Value[T]) {
	bind(e, entry.Kind(), entry.Name(), v, func(x T) {
		if s, ok := entry.Encode(x); ok {
			e.sink.SetStyleProperty(entry.Name(), s)
		} else {
			e.sink.RemoveStyleProperty(entry.Name())
		}
	})
}

// BindText binds the element's text content.
func BindText(e *Element, v reactive.Value[string]) {
	bind(e, key.KindText, "#text", v, e.sink.SetText)
}

func bind[T any](e *Element, kind key.Kind, name string, v reactive.Value[T], write func(T)) {
	if v == nil || e.scope.IsDisposed() {
		return
	}
	e.observer.BindingCreated(kind, name, reactive.IsReactive(v))

	sub := reactive.Observe(v, func(x T) {
		write(x)
		e.observer.Applied(kind, name)
	})
	e.scope.Track(sub)
}
