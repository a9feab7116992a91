//go:build js && wasm

package dom

import "syscall/js"

// JSDocument creates sinks backed by the browser DOM.
type JSDocument struct {
	doc      js.Value
	root     js.Value
	observer Observer
}

// NewJSDocument mounts top-level elements under root, or document.body when
// root is undefined. observer may be nil.
func NewJSDocument(root js.Value, observer Observer) *JSDocument {
	doc := js.Global().Get("document")
	if root.IsUndefined() || root.IsNull() {
		root = doc.Get("body")
	}
	return &JSDocument{doc: doc, root: root, observer: observer}
}

// Observer returns the observer passed to NewJSDocument.
func (d *JSDocument) Observer() Observer { return d.observer }

// CreateElement implements Factory.
func (d *JSDocument) CreateElement(tag string) Sink {
	return &JSSink{doc: d.doc, v: d.doc.Call("createElement", tag)}
}

// AppendChild mounts child under the root node.
func (d *JSDocument) AppendChild(child Sink) {
	if c, ok := unwrapTo[*JSSink](child); ok {
		d.root.Call("appendChild", c.v)
	}
}

// JSSink writes to one browser element.
type JSSink struct {
	doc  js.Value
	v    js.Value
	text js.Value
}

var _ Sink = (*JSSink)(nil)

// Value returns the underlying element.
func (s *JSSink) Value() js.Value { return s.v }

func (s *JSSink) SetAttribute(name, value string) {
	s.v.Call("setAttribute", name, value)
}

func (s *JSSink) RemoveAttribute(name string) {
	s.v.Call("removeAttribute", name)
}

func (s *JSSink) SetStyleProperty(name, value string) {
	s.v.Get("style").Call("setProperty", name, value)
}

func (s *JSSink) RemoveStyleProperty(name string) {
	s.v.Get("style").Call("removeProperty", name)
}

// SetText sets the element's leading text node. Child elements are kept.
func (s *JSSink) SetText(text string) {
	if s.text.Truthy() {
		s.text.Set("data", text)
		return
	}
	s.text = s.doc.Call("createTextNode", text)
	s.v.Call("insertBefore", s.text, s.v.Get("firstChild"))
}

// AppendChild moves child under this element.
func (s *JSSink) AppendChild(child Sink) {
	if c, ok := unwrapTo[*JSSink](child); ok {
		s.v.Call("appendChild", c.v)
	}
}
