package dom

import (
	"strings"

	"golang.org/x/net/html"
)

type styleProp struct {
	name  string
	value string
}

// MemorySink is the sink of one element in a Document.
type MemorySink struct {
	doc  *Document
	hid  string
	node *html.Node

	// style is kept in insertion order and mirrored into the style
	// attribute after every change.
	style []styleProp

	// text is the leading text child, nil when no text is set.
	text *html.Node

	mutations int
}

var _ Sink = (*MemorySink)(nil)

// HID returns the hydration ID.
func (s *MemorySink) HID() string { return s.hid }

// Tag returns the element name.
func (s *MemorySink) Tag() string { return s.node.Data }

func (s *MemorySink) SetAttribute(name, value string) {
	s.doc.mu.Lock()
	defer s.doc.mu.Unlock()
	s.touch()
	setAttr(s.node, name, value)
}

func (s *MemorySink) RemoveAttribute(name string) {
	s.doc.mu.Lock()
	defer s.doc.mu.Unlock()
	s.touch()
	removeAttr(s.node, name)
}

func (s *MemorySink) SetStyleProperty(name, value string) {
	s.doc.mu.Lock()
	defer s.doc.mu.Unlock()
	s.touch()

	for i := range s.style {
		if s.style[i].name == name {
			s.style[i].value = value
			s.syncStyle()
			return
		}
	}
	s.style = append(s.style, styleProp{name: name, value: value})
	s.syncStyle()
}

func (s *MemorySink) RemoveStyleProperty(name string) {
	s.doc.mu.Lock()
	defer s.doc.mu.Unlock()
	s.touch()

	for i := range s.style {
		if s.style[i].name == name {
			s.style = append(s.style[:i], s.style[i+1:]...)
			break
		}
	}
	s.syncStyle()
}

// SetText sets the element's leading text. Child elements are kept.
func (s *MemorySink) SetText(text string) {
	s.doc.mu.Lock()
	defer s.doc.mu.Unlock()
	s.touch()

	if text == "" {
		if s.text != nil {
			s.node.RemoveChild(s.text)
			s.text = nil
		}
		return
	}
	if s.text != nil {
		s.text.Data = text
		return
	}
	s.text = &html.Node{Type: html.TextNode, Data: text}
	s.node.InsertBefore(s.text, s.node.FirstChild)
}

// AppendChild moves child under this element.
func (s *MemorySink) AppendChild(child Sink) {
	c, ok := unwrapTo[*MemorySink](child)
	if !ok || c.doc != s.doc || c == s {
		return
	}
	s.doc.mu.Lock()
	defer s.doc.mu.Unlock()
	reparent(s.node, c.node)
}

// Attribute returns the current value of an attribute.
func (s *MemorySink) Attribute(name string) (string, bool) {
	s.doc.mu.Lock()
	defer s.doc.mu.Unlock()
	for _, a := range s.node.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// Style returns the current value of a style property.
func (s *MemorySink) Style(name string) (string, bool) {
	s.doc.mu.Lock()
	defer s.doc.mu.Unlock()
	for _, p := range s.style {
		if p.name == name {
			return p.value, true
		}
	}
	return "", false
}

// Text returns the element's leading text.
func (s *MemorySink) Text() string {
	s.doc.mu.Lock()
	defer s.doc.mu.Unlock()
	if s.text == nil {
		return ""
	}
	return s.text.Data
}

// Mutations returns the number of writes made to this sink.
func (s *MemorySink) Mutations() int {
	s.doc.mu.Lock()
	defer s.doc.mu.Unlock()
	return s.mutations
}

// String renders the element and its subtree as HTML.
func (s *MemorySink) String() string {
	s.doc.mu.Lock()
	defer s.doc.mu.Unlock()
	var sb strings.Builder
	if err := html.Render(&sb, s.node); err != nil {
		return err.Error()
	}
	return sb.String()
}

// touch must be called with doc.mu held.
func (s *MemorySink) touch() {
	s.mutations++
	s.doc.mutations++
}

func (s *MemorySink) syncStyle() {
	if len(s.style) == 0 {
		removeAttr(s.node, "style")
		return
	}
	parts := make([]string, len(s.style))
	for i, p := range s.style {
		parts[i] = p.name + ": " + p.value
	}
	setAttr(s.node, "style", strings.Join(parts, "; "))
}

func setAttr(n *html.Node, name, value string) {
	for i := range n.Attr {
		if n.Attr[i].Key == name {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: value})
}

func removeAttr(n *html.Node, name string) {
	for i := range n.Attr {
		if n.Attr[i].Key == name {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}
