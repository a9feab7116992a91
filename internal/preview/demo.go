package preview

import (
	"strconv"

	"github.com/vango-dev/vbind/el"
	"github.com/vango-dev/vbind/pkg/attr"
	"github.com/vango-dev/vbind/pkg/css"
	"github.com/vango-dev/vbind/pkg/dom"
	"github.com/vango-dev/vbind/pkg/reactive"
)

var palette = []css.Color{
	css.MustColor("#3b82f6"),
	css.MustColor("#10b981"),
	css.MustColor("#f59e0b"),
	css.MustColor("#ef4444"),
}

// Demo is the page the preview server renders. Step advances its cells,
// and every change flows through the bindings to the document.
type Demo struct {
	Count    *reactive.Cell[int]
	Progress *reactive.Cell[css.Length]
	Accent   *reactive.Cell[css.Color]
	RadiusA  *reactive.Cell[css.Length]
	RadiusB  *reactive.Cell[css.Length]
	Busy     *reactive.Cell[bool]

	root *el.Div
	step int
}

func static[T any](v T) reactive.Value[T] { return reactive.Static(v) }

// NewDemo builds the demo tree with elements from f.
func NewDemo(f dom.Factory) *Demo {
	d := &Demo{
		Count:    reactive.NewCell(0),
		Progress: reactive.NewCell(css.Percent(0)),
		Accent:   reactive.NewCell(palette[0]),
		RadiusA:  reactive.NewCell(css.Px(2)),
		RadiusB:  reactive.NewCell(css.Px(8)),
		Busy:     reactive.NewCell(false),
	}

	label := reactive.Map[int, string](d.Count, func(n int) string {
		return "tick " + strconv.Itoa(n)
	})
	saveText := reactive.Map[bool, string](d.Busy, func(busy bool) string {
		if busy {
			return "Saving..."
		}
		return "Save"
	})
	border := reactive.Map[css.Color, css.Optional[css.Color]](d.Accent, css.Some[css.Color])

	counter := el.NewP(f).
		ID(static("counter")).
		FontSize(static(css.Rem(1.5))).
		Color(d.Accent).
		Text(label)

	bar := el.NewDiv(f).
		ID(static("progress")).
		Height(static(css.Px(8))).
		Width(d.Progress).
		BackgroundColor(d.Accent).
		BorderRadius(d.RadiusA, d.RadiusB)

	name := el.NewInput(f).
		Type(static(attr.InputTypeText)).
		Name(static("name")).
		Placeholder(static("Your name"))
	notes := el.NewTextArea(f).
		Name(static("notes")).
		Rows(static(attr.MustPositive(3))).
		Cols(static(attr.MustPositive(40)))
	save := el.NewButton(f).
		Type(static(attr.ButtonTypeSubmit)).
		Text(saveText)
	el.DisableAll(d.Busy, name, notes, save)

	card := el.NewFieldset(f).
		BorderParts(static(css.Some(css.Px(2))), static(css.BorderStyleSolid), border).
		Corners(d.RadiusB, d.RadiusA, d.RadiusB, d.RadiusA).
		Padding(static(css.Rem(1))).
		Append(name, notes, save)

	d.root = el.NewDiv(f).
		ID(static("demo")).
		Display(static(css.DisplayFlex)).
		FlexDirection(static(css.FlexDirectionColumn)).
		Gap(static(css.Rem(1)), static(css.None[css.Length]())).
		MaxWidth(static(css.Px(480))).
		Append(counter, bar, card)
	return d
}

// Root returns the top-level element.
func (d *Demo) Root() *el.Div { return d.root }

// Step advances every cell once.
func (d *Demo) Step() {
	d.step++
	n := d.step

	d.Count.Set(n)
	d.Progress.Set(css.Percent(float64(n * 10 % 110)))
	d.Accent.Set(palette[n%len(palette)])
	if n%2 == 0 {
		d.RadiusA.Set(css.Px(2))
	} else {
		d.RadiusB.Set(css.Px(float64(4 + n%3*4)))
	}
	d.Busy.Set(n%4 == 3)
}

// Dispose releases the demo's bindings.
func (d *Demo) Dispose() int { return d.root.Dispose() }
