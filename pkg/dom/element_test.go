package dom

import (
	"sync"
	"testing"

	"github.com/vango-dev/vbind/pkg/key"
	"github.com/vango-dev/vbind/pkg/reactive"
)

type countingObserver struct {
	mu       sync.Mutex
	created  map[string]int
	reactive int
	applied  map[string]int
	released int
}

func newCountingObserver() *countingObserver {
	return &countingObserver{created: map[string]int{}, applied: map[string]int{}}
}

func (o *countingObserver) BindingCreated(kind key.Kind, name string, r bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.created[kind.String()+":"+name]++
	if r {
		o.reactive++
	}
}

func (o *countingObserver) Applied(kind key.Kind, name string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.applied[kind.String()+":"+name]++
}

func (o *countingObserver) BindingReleased(n int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.released += n
}

var (
	titleEntry = key.NewAttr("title", key.NonEmpty)
	colsEntry  = key.NewAttr("cols", key.Int)
	widthEntry = key.NewStyle("width", key.NonEmpty)
	radius     = key.NewStyle("border-radius", key.NonEmpty)
)

func sinkOf(t *testing.T, e *Element) *MemorySink {
	t.Helper()
	s, ok := e.Sink().(*MemorySink)
	if !ok {
		t.Fatalf("sink is %T", e.Sink())
	}
	return s
}

func TestBindConstant(t *testing.T) {
	e := NewElement(NewDocument(), "textarea")
	BindAttr(e, colsEntry, reactive.Static(40))

	if v, _ := sinkOf(t, e).Attribute("cols"); v != "40" {
		t.Errorf("cols = %q", v)
	}
	if e.Bindings() != 0 {
		t.Errorf("constant binding holds %d subscriptions", e.Bindings())
	}
}

func TestBindReactive(t *testing.T) {
	e := NewElement(NewDocument(), "div")
	w := reactive.NewCell("10px")
	BindStyle(e, widthEntry, w)

	s := sinkOf(t, e)
	if v, _ := s.Style("width"); v != "10px" {
		t.Fatalf("initial width = %q", v)
	}
	w.Set("20px")
	if v, _ := s.Style("width"); v != "20px" {
		t.Errorf("width after Set = %q", v)
	}
	if e.Bindings() != 1 || w.Len() != 1 {
		t.Errorf("bindings = %d, subscribers = %d", e.Bindings(), w.Len())
	}
}

func TestAbsentValueRemoves(t *testing.T) {
	e := NewElement(NewDocument(), "div")
	title := reactive.NewCell("hello")
	BindAttr(e, titleEntry, title)

	s := sinkOf(t, e)
	title.Set("")
	if _, ok := s.Attribute("title"); ok {
		t.Error("empty title should remove the attribute")
	}
	title.Set("back")
	if v, _ := s.Attribute("title"); v != "back" {
		t.Errorf("title = %q", v)
	}
}

func TestBindingIdempotent(t *testing.T) {
	e := NewElement(NewDocument(), "div")
	w := reactive.NewCell("5px")
	BindStyle(e, widthEntry, w)

	s := sinkOf(t, e)
	w.Set("5px")
	w.Set("5px")
	if got := s.String(); got != `<div style="width: 5px"></div>` {
		t.Errorf("render = %q", got)
	}
	if s.Mutations() != 3 {
		t.Errorf("mutations = %d, want 3", s.Mutations())
	}
}

func TestFanIn(t *testing.T) {
	e := NewElement(NewDocument(), "div")
	a := reactive.NewCell("1px")
	b := reactive.NewCell("2px")
	joined := reactive.Combine2[string, string](a, b, func(x, y string) string { return x + " " + y })
	BindStyle(e, radius, joined)

	s := sinkOf(t, e)
	steps := []struct {
		set  func()
		want string
	}{
		{func() {}, "1px 2px"},
		{func() { b.Set("5px") }, "1px 5px"},
		{func() { a.Set("3px") }, "3px 5px"},
	}
	for i, st := range steps {
		st.set()
		if v, _ := s.Style("border-radius"); v != st.want {
			t.Errorf("step %d: border-radius = %q, want %q", i, v, st.want)
		}
	}
}

func TestDisposeStopsUpdates(t *testing.T) {
	obs := newCountingObserver()
	doc := NewDocument(WithObserver(obs))
	parent := NewElement(doc, "div")
	child := NewElement(doc, "span")
	parent.Append(child)

	w := reactive.NewCell("1px")
	title := reactive.NewCell("t")
	BindStyle(parent, widthEntry, w)
	BindAttr(child, titleEntry, title)

	if n := parent.Dispose(); n != 2 {
		t.Errorf("Dispose released %d, want 2", n)
	}
	if !child.Disposed() {
		t.Error("child not disposed with parent")
	}

	w.Set("9px")
	title.Set("changed")
	if v, _ := sinkOf(t, parent).Style("width"); v != "1px" {
		t.Errorf("width after dispose = %q", v)
	}
	if v, _ := sinkOf(t, child).Attribute("title"); v != "t" {
		t.Errorf("title after dispose = %q", v)
	}
	if w.Len() != 0 || title.Len() != 0 {
		t.Errorf("subscribers left: %d, %d", w.Len(), title.Len())
	}
	if obs.released != 2 {
		t.Errorf("observer released = %d", obs.released)
	}
	if parent.Dispose() != 0 {
		t.Error("second Dispose released subscriptions")
	}
}

func TestBindAfterDisposeIsNoop(t *testing.T) {
	e := NewElement(NewDocument(), "div")
	e.Dispose()
	w := reactive.NewCell("1px")
	BindStyle(e, widthEntry, w)
	if _, ok := sinkOf(t, e).Style("width"); ok {
		t.Error("disposed element was written")
	}
	if w.Len() != 0 {
		t.Error("disposed element subscribed")
	}
}

func TestObserverCounts(t *testing.T) {
	obs := newCountingObserver()
	e := NewElement(NewDocument(WithObserver(obs)), "p")
	text := reactive.NewCell("a")
	BindText(e, text)
	BindAttr(e, titleEntry, reactive.Static("x"))
	text.Set("b")

	if obs.created["text:#text"] != 1 || obs.created["attribute:title"] != 1 {
		t.Errorf("created = %v", obs.created)
	}
	if obs.reactive != 1 {
		t.Errorf("reactive bindings = %d", obs.reactive)
	}
	if obs.applied["text:#text"] != 2 || obs.applied["attribute:title"] != 1 {
		t.Errorf("applied = %v", obs.applied)
	}
	if sinkOf(t, e).Text() != "b" {
		t.Errorf("text = %q", sinkOf(t, e).Text())
	}
}

func TestAppendMovesChild(t *testing.T) {
	doc := NewDocument()
	a := NewElement(doc, "div")
	b := NewElement(doc, "div")
	c := NewElement(doc, "span")

	a.Append(c)
	b.Append(c)
	if len(a.Children()) != 0 || len(b.Children()) != 1 || c.Parent() != b {
		t.Fatal("child not moved")
	}
	if got := sinkOf(t, b).String(); got != "<div><span></span></div>" {
		t.Errorf("render = %q", got)
	}

	cell := reactive.NewCell("x")
	BindAttr(c, titleEntry, cell)
	a.Dispose()
	cell.Set("y")
	if v, _ := sinkOf(t, c).Attribute("title"); v != "y" {
		t.Error("disposing the old parent released the moved child")
	}
}

func TestAppendAncestorIsSkipped(t *testing.T) {
	doc := NewDocument()
	a := NewElement(doc, "div")
	b := NewElement(doc, "p")
	c := NewElement(doc, "span")

	a.Append(b)
	b.Append(c)
	c.Append(a)
	b.Append(a, b)

	if a.Parent() != nil || len(c.Children()) != 0 || len(b.Children()) != 1 {
		t.Fatal("ancestor was nested under its descendant")
	}
	if got := sinkOf(t, a).String(); got != "<div><p><span></span></p></div>" {
		t.Errorf("render = %q", got)
	}

	a.Dispose()
	if !c.Disposed() {
		t.Error("grandchild scope not disposed with the root")
	}
}
