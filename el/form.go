package el

import (
	"github.com/vango-dev/vbind/pkg/attr"
	"github.com/vango-dev/vbind/pkg/dom"
	"github.com/vango-dev/vbind/pkg/reactive"
)

// FormControl holds the attributes of form-associated elements.
type FormControl[E any] struct {
	c *core[E]
}

func (f *FormControl[E]) wire(c *core[E]) { f.c = c }

func (f FormControl[E]) formAssociated() {}

// bindDisabled does not take ownership of v; DisableAll shares it.
func (f FormControl[E]) bindDisabled(v reactive.Value[bool]) { dom.BindAttr(f.c.el, attr.Disabled, v) }

func (f FormControl[E]) Name(v reactive.Value[string]) E   { return setAttr(f.c, attr.Name, v) }
func (f FormControl[E]) Disabled(v reactive.Value[bool]) E { return setAttr(f.c, attr.Disabled, v) }
func (f FormControl[E]) Form(v reactive.Value[string]) E   { return setAttr(f.c, attr.Form, v) }

// focus marks natively focusable elements.
type focus[E any] struct {
	c *core[E]
}

func (f *focus[E]) wire(c *core[E]) { f.c = c }

func (f focus[E]) focusable() {}

func (f focus[E]) Autofocus(v reactive.Value[bool]) E { return setAttr(f.c, attr.Autofocus, v) }

// TextEntry holds the attributes of elements the user types into.
type TextEntry[E any] struct {
	c *core[E]
}

func (t *TextEntry[E]) wire(c *core[E]) { t.c = c }

func (t TextEntry[E]) Value(v reactive.Value[string]) E { return setAttr(t.c, attr.Value, v) }
func (t TextEntry[E]) Placeholder(v reactive.Value[string]) E {
	return setAttr(t.c, attr.Placeholder, v)
}
func (t TextEntry[E]) ReadOnly(v reactive.Value[bool]) E  { return setAttr(t.c, attr.ReadOnly, v) }
func (t TextEntry[E]) Required(v reactive.Value[bool]) E  { return setAttr(t.c, attr.Required, v) }
func (t TextEntry[E]) Pattern(v reactive.Value[string]) E { return setAttr(t.c, attr.Pattern, v) }

func (t TextEntry[E]) MinLength(v reactive.Value[attr.NonNegative]) E {
	return setAttr(t.c, attr.MinLength, v)
}

func (t TextEntry[E]) MaxLength(v reactive.Value[attr.NonNegative]) E {
	return setAttr(t.c, attr.MaxLength, v)
}

func (t TextEntry[E]) AutoComplete(v reactive.Value[attr.Autocomplete]) E {
	return setAttr(t.c, attr.AutoComplete, v)
}
