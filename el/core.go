package el

import (
	"github.com/vango-dev/vbind/pkg/dom"
	"github.com/vango-dev/vbind/pkg/key"
	"github.com/vango-dev/vbind/pkg/reactive"
)

// Node is implemented by every element type.
type Node interface {
	Element() *dom.Element
}

// core is shared by all mixins of one element.
type core[E any] struct {
	el   *dom.Element
	self E
}

type wirer[E any] interface {
	wire(c *core[E])
}

// build creates the element and hands the shared core to each mixin.
func build[E any](f dom.Factory, tag string, self E, mixins ...wirer[E]) *core[E] {
	c := &core[E]{el: dom.NewElement(f, tag), self: self}
	for _, m := range mixins {
		m.wire(c)
	}
	return c
}

func setAttr[E, T any](c *core[E], entry key.Entry[T], v reactive.Value[T]) E {
	c.own(v)
	dom.BindAttr(c.el, entry, v)
	return c.self
}

func setStyle[E, T any](c *core[E], entry key.Entry[T], v reactive.Value[T]) E {
	c.own(v)
	dom.BindStyle(c.el, entry, v)
	return c.self
}

// own releases every value holding upstream subscriptions when the element
// is disposed. Cells and constants are left alone.
func (c *core[E]) own(vals ...any) {
	for _, v := range vals {
		if _, ok := v.(reactive.Disposer); ok {
			v := v
			c.el.Scope().OnCleanup(func() { reactive.Release(v) })
		}
	}
}
