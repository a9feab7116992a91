package el

import (
	"errors"
	"strconv"
	"testing"

	"github.com/vango-dev/vbind/pkg/attr"
	"github.com/vango-dev/vbind/pkg/css"
	"github.com/vango-dev/vbind/pkg/dom"
	"github.com/vango-dev/vbind/pkg/reactive"
)

var (
	_ FormAssociated = (*Input)(nil)
	_ FormAssociated = (*TextArea)(nil)
	_ FormAssociated = (*Select)(nil)
	_ FormAssociated = (*Button)(nil)
	_ FormAssociated = (*Fieldset)(nil)

	_ Focusable = (*A)(nil)
	_ Focusable = (*Button)(nil)
	_ Focusable = (*IFrame)(nil)

	_ HasSource = (*Img)(nil)
	_ HasSource = (*Video)(nil)
	_ HasSource = (*Audio)(nil)
	_ HasSource = (*IFrame)(nil)
)

func static[T any](v T) reactive.Value[T] { return reactive.Static(v) }

func render(t *testing.T, n Node) string {
	t.Helper()
	s, ok := n.Element().Sink().(*dom.MemorySink)
	if !ok {
		t.Fatalf("sink is %T", n.Element().Sink())
	}
	return s.String()
}

func TestTextAreaBuilder(t *testing.T) {
	doc := dom.NewDocument()
	rows := reactive.NewCell(attr.MustPositive(3))

	area := NewTextArea(doc).
		Rows(rows).
		Cols(static(attr.MustPositive(40))).
		Placeholder(static("Notes")).
		Wrap(static(attr.WrapSoft)).
		Width(static(css.Percent(100)))

	if got := render(t, area); got != `<textarea rows="3" cols="40" placeholder="Notes" wrap="soft" style="width: 100%"></textarea>` {
		t.Errorf("render = %s", got)
	}

	rows.Set(attr.MustPositive(8))
	if got := render(t, area); got != `<textarea rows="8" cols="40" placeholder="Notes" wrap="soft" style="width: 100%"></textarea>` {
		t.Errorf("render after Set = %s", got)
	}

	rows.Set(attr.Positive{})
	if got := render(t, area); got != `<textarea cols="40" placeholder="Notes" wrap="soft" style="width: 100%"></textarea>` {
		t.Errorf("unset rows should be removed: %s", got)
	}
}

func TestBorderRadiusFanIn(t *testing.T) {
	doc := dom.NewDocument()
	a := reactive.NewCell(css.Px(1))
	b := reactive.NewCell(css.Px(2))
	div := NewDiv(doc).BorderRadius(a, b)

	sink := div.Element().Sink().(*dom.MemorySink)
	check := func(want string) {
		t.Helper()
		if got, _ := sink.Style("border-radius"); got != want {
			t.Errorf("border-radius = %q, want %q", got, want)
		}
	}
	check("1px 2px")
	b.Set(css.Px(5))
	check("1px 5px")
	a.Set(css.Px(3))
	check("3px 5px")

	div.Dispose()
	a.Set(css.Px(9))
	check("3px 5px")
	if a.Len() != 0 || b.Len() != 0 {
		t.Errorf("inputs still followed after dispose: %d, %d", a.Len(), b.Len())
	}
}

func TestCornersCollapse(t *testing.T) {
	doc := dom.NewDocument()
	tl := reactive.NewCell(css.Px(4))
	div := NewDiv(doc).Corners(tl, static(css.Px(4)), static(css.Px(4)), static(css.Px(4)))

	sink := div.Element().Sink().(*dom.MemorySink)
	if got, _ := sink.Style("border-radius"); got != "4px" {
		t.Errorf("border-radius = %q", got)
	}
	tl.Set(css.Px(8))
	if got, _ := sink.Style("border-radius"); got != "8px 4px 4px" {
		t.Errorf("border-radius = %q", got)
	}
}

func TestMarginArity(t *testing.T) {
	defer func() {
		err, _ := recover().(error)
		if !errors.Is(err, css.ErrShorthand) {
			t.Errorf("recovered %v, want ErrShorthand", err)
		}
	}()
	one := static(css.Px(1))
	NewDiv(dom.NewDocument()).Margin(one, one, one, one, one)
}

func TestBorderParts(t *testing.T) {
	doc := dom.NewDocument()
	color := reactive.NewCell(css.Some(css.MustColor("red")))
	div := NewDiv(doc).BorderParts(
		static(css.Some(css.Px(1))),
		static(css.BorderStyleSolid),
		color,
	)

	sink := div.Element().Sink().(*dom.MemorySink)
	if got, _ := sink.Style("border"); got != "1px solid red" {
		t.Errorf("border = %q", got)
	}
	color.Set(css.None[css.Color]())
	if got, _ := sink.Style("border"); got != "1px solid" {
		t.Errorf("border without color = %q", got)
	}
}

func TestGap(t *testing.T) {
	doc := dom.NewDocument()
	col := reactive.NewCell(css.None[css.Length]())
	div := NewDiv(doc).Gap(static(css.Rem(1)), col)

	sink := div.Element().Sink().(*dom.MemorySink)
	if got, _ := sink.Style("gap"); got != "1rem" {
		t.Errorf("gap = %q", got)
	}
	col.Set(css.Some(css.Px(2)))
	if got, _ := sink.Style("gap"); got != "1rem 2px" {
		t.Errorf("gap = %q", got)
	}
}

func TestDisableAll(t *testing.T) {
	doc := dom.NewDocument()
	busy := reactive.NewCell(false)
	name := NewInput(doc).Type(static(attr.InputTypeText))
	submit := NewButton(doc).Type(static(attr.ButtonTypeSubmit))
	group := NewFieldset(doc)

	DisableAll(busy, name, submit, group)
	for _, n := range []Node{name, submit, group} {
		s := n.Element().Sink().(*dom.MemorySink)
		if _, ok := s.Attribute("disabled"); ok {
			t.Errorf("%s disabled initially", s.Tag())
		}
	}

	busy.Set(true)
	for _, n := range []Node{name, submit, group} {
		s := n.Element().Sink().(*dom.MemorySink)
		if _, ok := s.Attribute("disabled"); !ok {
			t.Errorf("%s not disabled", s.Tag())
		}
	}
}

func TestCapabilityMarkers(t *testing.T) {
	doc := dom.NewDocument()
	nodes := []struct {
		n         Node
		form      bool
		focusable bool
		source    bool
	}{
		{NewDiv(doc), false, false, false},
		{NewLabel(doc), false, false, false},
		{NewInput(doc), true, true, false},
		{NewFieldset(doc), true, false, false},
		{NewA(doc), false, true, false},
		{NewImg(doc), false, false, true},
		{NewIFrame(doc), false, true, true},
	}
	for _, tt := range nodes {
		tag := tt.n.Element().Tag()
		if _, ok := tt.n.(FormAssociated); ok != tt.form {
			t.Errorf("%s: FormAssociated = %v", tag, ok)
		}
		if _, ok := tt.n.(Focusable); ok != tt.focusable {
			t.Errorf("%s: Focusable = %v", tag, ok)
		}
		if _, ok := tt.n.(HasSource); ok != tt.source {
			t.Errorf("%s: HasSource = %v", tag, ok)
		}
	}
}

func TestTreeAndText(t *testing.T) {
	doc := dom.NewDocument()
	count := reactive.NewCell(0)
	label := reactive.Map[int, string](count, func(n int) string {
		if n == 1 {
			return "1 item"
		}
		return strconv.Itoa(n) + " items"
	})

	list := NewOL(doc).Reversed(static(true)).Start(static(3)).Append(
		NewDiv(doc).Text(label),
		NewSpan(doc).AccessKey(static("s")).Hidden(static(count.Get() == 0)),
	)
	list.Mount(doc)

	if got := doc.String(); got != `<ol reversed="" start="3"><div>0 items</div><span accesskey="s" hidden=""></span></ol>` {
		t.Errorf("render = %s", got)
	}
	count.Set(1)
	if got := doc.String(); got != `<ol reversed="" start="3"><div>1 item</div><span accesskey="s" hidden=""></span></ol>` {
		t.Errorf("render = %s", got)
	}

	disposed := false
	list.OnDispose(func() { disposed = true })
	if n := list.Dispose(); n != 1 {
		t.Errorf("Dispose released %d", n)
	}
	if !disposed {
		t.Error("OnDispose hook not run")
	}
}

func TestMediaAndLinks(t *testing.T) {
	doc := dom.NewDocument()
	video := NewVideo(doc).
		Src(static(attr.MustURL("/clip.mp4"))).
		Dimensions(static(attr.MustNonNegative(640)), static(attr.MustNonNegative(360))).
		Controls(static(true)).
		Muted(static(false)).
		Preload(static(attr.PreloadMetadata))
	if got := render(t, video); got != `<video src="/clip.mp4" width="640" height="360" controls="" preload="metadata"></video>` {
		t.Errorf("video = %s", got)
	}

	link := NewA(doc).
		Href(static(attr.MustURL("https://example.com"))).
		Target(static(attr.TargetBlank)).
		Rel(static(attr.Rels{attr.RelNoOpener, attr.RelNoReferrer}))
	if got := render(t, link); got != `<a href="https://example.com" target="_blank" rel="noopener noreferrer"></a>` {
		t.Errorf("link = %s", got)
	}
}

func TestDisposeReleasesDerivedInputs(t *testing.T) {
	doc := dom.NewDocument()
	count := reactive.NewCell(0)
	accent := reactive.NewCell(css.MustColor("navy"))

	label := reactive.Map[int, string](count, strconv.Itoa)
	title := reactive.Map[int, string](count, func(n int) string { return "n=" + strconv.Itoa(n) })
	border := reactive.Map[css.Color, css.Optional[css.Color]](accent, css.Some[css.Color])

	div := NewDiv(doc).
		Text(label).
		Title(title).
		BorderParts(static(css.Some(css.Px(1))), static(css.BorderStyleSolid), border)

	count.Set(1)
	if got := render(t, div); got != `<div title="n=1" style="border: 1px solid navy">1</div>` {
		t.Errorf("render = %s", got)
	}

	div.Dispose()
	for name, d := range map[string]interface{ Disposed() bool }{"label": label, "title": title, "border": border} {
		if !d.Disposed() {
			t.Errorf("%s not released with the element", name)
		}
	}
	if count.Len() != 0 || accent.Len() != 0 {
		t.Errorf("cells still followed after dispose: %d, %d", count.Len(), accent.Len())
	}
}

func TestDisableAllLeavesSharedValue(t *testing.T) {
	doc := dom.NewDocument()
	busy := reactive.NewCell(0)
	disabled := reactive.Map[int, bool](busy, func(n int) bool { return n > 0 })

	a, b := NewButton(doc), NewButton(doc)
	DisableAll(disabled, a, b)

	a.Dispose()
	busy.Set(1)
	if disabled.Disposed() {
		t.Fatal("shared value released by one control")
	}
	if got := render(t, b); got != `<button disabled=""></button>` {
		t.Errorf("render = %s", got)
	}
	disabled.Dispose()
}

func TestDataPanicsOnInvalidName(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, attr.ErrInvalidName) {
			t.Errorf("recovered %v, want ErrInvalidName", r)
		}
	}()
	NewDiv(dom.NewDocument()).Data("userId", static("7"))
}
