package el

import (
	"github.com/vango-dev/vbind/pkg/attr"
	"github.com/vango-dev/vbind/pkg/dom"
	"github.com/vango-dev/vbind/pkg/reactive"
)

// Global holds the attributes and operations every element supports.
type Global[E any] struct {
	c *core[E]
}

func (g *Global[E]) wire(c *core[E]) { g.c = c }

// Element returns the binding core.
func (g Global[E]) Element() *dom.Element { return g.c.el }

// Append nests children under the element.
func (g Global[E]) Append(children ...Node) E {
	for _, child := range children {
		if child != nil {
			g.c.el.Append(child.Element())
		}
	}
	return g.c.self
}

// Mount appends the element at the top level of root.
func (g Global[E]) Mount(root dom.Container) E {
	g.c.el.Mount(root)
	return g.c.self
}

// OnDispose registers fn to run when the element is disposed.
func (g Global[E]) OnDispose(fn func()) E {
	g.c.el.Scope().OnCleanup(fn)
	return g.c.self
}

// Dispose releases the element's bindings and those of its children.
func (g Global[E]) Dispose() int { return g.c.el.Dispose() }

// Text binds the element's text content.
func (g Global[E]) Text(v reactive.Value[string]) E {
	g.c.own(v)
	dom.BindText(g.c.el, v)
	return g.c.self
}

func (g Global[E]) ID(v reactive.Value[string]) E      { return setAttr(g.c, attr.ID, v) }
func (g Global[E]) Class(v reactive.Value[[]string]) E { return setAttr(g.c, attr.Class, v) }
func (g Global[E]) Title(v reactive.Value[string]) E   { return setAttr(g.c, attr.Title, v) }
func (g Global[E]) Hidden(v reactive.Value[bool]) E    { return setAttr(g.c, attr.Hidden, v) }
func (g Global[E]) TabIndex(v reactive.Value[int]) E   { return setAttr(g.c, attr.TabIndex, v) }
func (g Global[E]) Lang(v reactive.Value[string]) E    { return setAttr(g.c, attr.Lang, v) }
func (g Global[E]) Dir(v reactive.Value[attr.Dir]) E   { return setAttr(g.c, attr.DirAttr, v) }
func (g Global[E]) Role(v reactive.Value[string]) E    { return setAttr(g.c, attr.Role, v) }

// AccessKey sets the accesskey attribute, the keyboard shortcut that
// activates or focuses the element.
func (g Global[E]) AccessKey(v reactive.Value[string]) E { return setAttr(g.c, attr.AccessKey, v) }

// Draggable writes "true" or "false".
func (g Global[E]) Draggable(v reactive.Value[bool]) E { return setAttr(g.c, attr.Draggable, v) }

// ContentEditable writes "true" or "false".
func (g Global[E]) ContentEditable(v reactive.Value[bool]) E {
	return setAttr(g.c, attr.ContentEditable, v)
}

// Spellcheck writes "true" or "false".
func (g Global[E]) Spellcheck(v reactive.Value[bool]) E { return setAttr(g.c, attr.Spellcheck, v) }

func (g Global[E]) AriaLabel(v reactive.Value[string]) E { return setAttr(g.c, attr.AriaLabel, v) }
func (g Global[E]) AriaHidden(v reactive.Value[bool]) E  { return setAttr(g.c, attr.AriaHidden, v) }

// Data binds the custom attribute data-<name>. It panics if name is not a
// valid data attribute name; see attr.Data.
func (g Global[E]) Data(name string, v reactive.Value[string]) E {
	return setAttr(g.c, attr.MustData(name), v)
}
