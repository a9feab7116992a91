package dom

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HIDAttr is the attribute that carries hydration IDs when a Document is
// created WithHydrationIDs.
const HIDAttr = "data-hid"

// Document is an in-memory element tree. It is safe for concurrent use.
type Document struct {
	mu   sync.Mutex
	body *html.Node

	counter   uint32
	writeHIDs bool
	nodes     map[string]*MemorySink
	mutations int

	observer Observer
}

// Option configures a Document.
type Option func(*Document)

// WithHydrationIDs writes each element's hydration ID into its data-hid
// attribute so a client can address it.
func WithHydrationIDs() Option {
	return func(d *Document) { d.writeHIDs = true }
}

// WithObserver sets the observer for elements created from the document.
func WithObserver(o Observer) Option {
	return func(d *Document) { d.observer = o }
}

// NewDocument creates an empty document.
func NewDocument(opts ...Option) *Document {
	d := &Document{
		body:  &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body},
		nodes: make(map[string]*MemorySink),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Observer returns the observer set with WithObserver, or nil.
func (d *Document) Observer() Observer { return d.observer }

// CreateElement creates a detached element. It implements Factory.
func (d *Document) CreateElement(tag string) Sink {
	return d.createElement(tag)
}

func (d *Document) createElement(tag string) *MemorySink {
	tag = strings.ToLower(tag)

	d.mu.Lock()
	defer d.mu.Unlock()

	d.counter++
	s := &MemorySink{
		doc: d,
		hid: fmt.Sprintf("h%d", d.counter),
		node: &html.Node{
			Type:     html.ElementNode,
			Data:     tag,
			DataAtom: atom.Lookup([]byte(tag)),
		},
	}
	if d.writeHIDs {
		s.node.Attr = append(s.node.Attr, html.Attribute{Key: HIDAttr, Val: s.hid})
	}
	d.nodes[s.hid] = s
	return s
}

// AppendChild mounts child at the top level of the document.
func (d *Document) AppendChild(child Sink) {
	c, ok := unwrapTo[*MemorySink](child)
	if !ok || c.doc != d {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	reparent(d.body, c.node)
}

// Lookup returns the element with the given hydration ID.
func (d *Document) Lookup(hid string) (*MemorySink, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	s, ok := d.nodes[hid]
	return s, ok
}

// Mutations returns the number of writes made through the document's sinks.
func (d *Document) Mutations() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mutations
}

// Render writes the mounted elements as HTML.
func (d *Document) Render(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for c := d.body.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(w, c); err != nil {
			return err
		}
	}
	return nil
}

// String renders the document, or returns the render error text.
func (d *Document) String() string {
	var sb strings.Builder
	if err := d.Render(&sb); err != nil {
		return err.Error()
	}
	return sb.String()
}

// Snapshot returns the patches that rebuild the mounted tree from nothing,
// in document order.
func (d *Document) Snapshot() []Patch {
	d.mu.Lock()
	defer d.mu.Unlock()

	index := make(map[*html.Node]*MemorySink, len(d.nodes))
	for _, s := range d.nodes {
		index[s.node] = s
	}

	var out []Patch
	var walk func(parent string, n *html.Node)
	walk = func(parent string, n *html.Node) {
		s, ok := index[n]
		if !ok {
			return
		}
		out = append(out, Patch{Op: PatchCreateNode, HID: s.hid, Key: n.Data})
		for _, a := range n.Attr {
			if a.Key == "style" || a.Key == HIDAttr {
				continue
			}
			out = append(out, Patch{Op: PatchSetAttr, HID: s.hid, Key: a.Key, Value: a.Val})
		}
		for _, p := range s.style {
			out = append(out, Patch{Op: PatchSetStyle, HID: s.hid, Key: p.name, Value: p.value})
		}
		if s.text != nil {
			out = append(out, Patch{Op: PatchSetText, HID: s.hid, Value: s.text.Data})
		}
		out = append(out, Patch{Op: PatchInsertNode, HID: s.hid, ParentID: parent})
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(s.hid, c)
		}
	}
	for c := d.body.FirstChild; c != nil; c = c.NextSibling {
		walk("", c)
	}
	return out
}

func reparent(parent, child *html.Node) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	parent.AppendChild(child)
}
