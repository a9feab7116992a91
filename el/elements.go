package el

import (
	"github.com/vango-dev/vbind/pkg/attr"
	"github.com/vango-dev/vbind/pkg/dom"
	"github.com/vango-dev/vbind/pkg/reactive"
)

// Div is <div>.
type Div struct {
	Global[*Div]
	Styled[*Div]
}

func NewDiv(f dom.Factory) *Div {
	e := &Div{}
	build(f, "div", e, &e.Global, &e.Styled)
	return e
}

// Span is <span>.
type Span struct {
	Global[*Span]
	Styled[*Span]
}

func NewSpan(f dom.Factory) *Span {
	e := &Span{}
	build(f, "span", e, &e.Global, &e.Styled)
	return e
}

// P is <p>.
type P struct {
	Global[*P]
	Styled[*P]
}

func NewP(f dom.Factory) *P {
	e := &P{}
	build(f, "p", e, &e.Global, &e.Styled)
	return e
}

// A is <a>.
type A struct {
	Global[*A]
	Styled[*A]
	Linking[*A]
	focus[*A]
}

func NewA(f dom.Factory) *A {
	e := &A{}
	build(f, "a", e, &e.Global, &e.Styled, &e.Linking, &e.focus)
	return e
}

// Button is <button>.
type Button struct {
	Global[*Button]
	Styled[*Button]
	FormControl[*Button]
	focus[*Button]
}

func NewButton(f dom.Factory) *Button {
	e := &Button{}
	build(f, "button", e, &e.Global, &e.Styled, &e.FormControl, &e.focus)
	return e
}

func (e *Button) Type(v reactive.Value[attr.ButtonType]) *Button {
	return setAttr(e.Global.c, attr.ButtonTypeAttr, v)
}

func (e *Button) Value(v reactive.Value[string]) *Button {
	return setAttr(e.Global.c, attr.Value, v)
}

// Input is <input>.
type Input struct {
	Global[*Input]
	Styled[*Input]
	FormControl[*Input]
	focus[*Input]
	TextEntry[*Input]
}

func NewInput(f dom.Factory) *Input {
	e := &Input{}
	build(f, "input", e, &e.Global, &e.Styled, &e.FormControl, &e.focus, &e.TextEntry)
	return e
}

func (e *Input) Type(v reactive.Value[attr.InputType]) *Input {
	return setAttr(e.Global.c, attr.InputTypeAttr, v)
}

func (e *Input) Checked(v reactive.Value[bool]) *Input  { return setAttr(e.Global.c, attr.Checked, v) }
func (e *Input) Multiple(v reactive.Value[bool]) *Input { return setAttr(e.Global.c, attr.Multiple, v) }
func (e *Input) Min(v reactive.Value[string]) *Input    { return setAttr(e.Global.c, attr.Min, v) }
func (e *Input) Max(v reactive.Value[string]) *Input    { return setAttr(e.Global.c, attr.Max, v) }
func (e *Input) Step(v reactive.Value[string]) *Input   { return setAttr(e.Global.c, attr.Step, v) }

// Size is the visible width in characters.
func (e *Input) Size(v reactive.Value[attr.Positive]) *Input {
	return setAttr(e.Global.c, attr.Size, v)
}

// TextArea is <textarea>.
type TextArea struct {
	Global[*TextArea]
	Styled[*TextArea]
	FormControl[*TextArea]
	focus[*TextArea]
	TextEntry[*TextArea]
}

func NewTextArea(f dom.Factory) *TextArea {
	e := &TextArea{}
	build(f, "textarea", e, &e.Global, &e.Styled, &e.FormControl, &e.focus, &e.TextEntry)
	return e
}

func (e *TextArea) Cols(v reactive.Value[attr.Positive]) *TextArea {
	return setAttr(e.Global.c, attr.Cols, v)
}

func (e *TextArea) Rows(v reactive.Value[attr.Positive]) *TextArea {
	return setAttr(e.Global.c, attr.Rows, v)
}

func (e *TextArea) Wrap(v reactive.Value[attr.Wrap]) *TextArea {
	return setAttr(e.Global.c, attr.WrapAttr, v)
}

// Select is <select>.
type Select struct {
	Global[*Select]
	Styled[*Select]
	FormControl[*Select]
	focus[*Select]
}

func NewSelect(f dom.Factory) *Select {
	e := &Select{}
	build(f, "select", e, &e.Global, &e.Styled, &e.FormControl, &e.focus)
	return e
}

func (e *Select) Multiple(v reactive.Value[bool]) *Select {
	return setAttr(e.Global.c, attr.Multiple, v)
}

func (e *Select) Required(v reactive.Value[bool]) *Select {
	return setAttr(e.Global.c, attr.Required, v)
}

// Size is the number of visible options.
func (e *Select) Size(v reactive.Value[attr.Positive]) *Select {
	return setAttr(e.Global.c, attr.Size, v)
}

// Option is <option>.
type Option struct {
	Global[*Option]
	Styled[*Option]
}

func NewOption(f dom.Factory) *Option {
	e := &Option{}
	build(f, "option", e, &e.Global, &e.Styled)
	return e
}

func (e *Option) Value(v reactive.Value[string]) *Option { return setAttr(e.Global.c, attr.Value, v) }
func (e *Option) Label(v reactive.Value[string]) *Option { return setAttr(e.Global.c, attr.Label, v) }
func (e *Option) Selected(v reactive.Value[bool]) *Option {
	return setAttr(e.Global.c, attr.Selected, v)
}
func (e *Option) Disabled(v reactive.Value[bool]) *Option {
	return setAttr(e.Global.c, attr.Disabled, v)
}

// Label is <label>.
type Label struct {
	Global[*Label]
	Styled[*Label]
}

func NewLabel(f dom.Factory) *Label {
	e := &Label{}
	build(f, "label", e, &e.Global, &e.Styled)
	return e
}

// For names the labelled control by ID.
func (e *Label) For(v reactive.Value[string]) *Label { return setAttr(e.Global.c, attr.For, v) }

// Form is <form>.
type Form struct {
	Global[*Form]
	Styled[*Form]
}

func NewForm(f dom.Factory) *Form {
	e := &Form{}
	build(f, "form", e, &e.Global, &e.Styled)
	return e
}

func (e *Form) Name(v reactive.Value[string]) *Form     { return setAttr(e.Global.c, attr.Name, v) }
func (e *Form) Action(v reactive.Value[attr.URL]) *Form { return setAttr(e.Global.c, attr.Action, v) }
func (e *Form) NoValidate(v reactive.Value[bool]) *Form {
	return setAttr(e.Global.c, attr.NoValidate, v)
}

func (e *Form) Method(v reactive.Value[attr.Method]) *Form {
	return setAttr(e.Global.c, attr.MethodAttr, v)
}

func (e *Form) Enctype(v reactive.Value[attr.Enctype]) *Form {
	return setAttr(e.Global.c, attr.EnctypeAttr, v)
}

func (e *Form) AutoComplete(v reactive.Value[attr.Autocomplete]) *Form {
	return setAttr(e.Global.c, attr.AutoComplete, v)
}

// Fieldset is <fieldset>. Disabling a fieldset disables its controls.
type Fieldset struct {
	Global[*Fieldset]
	Styled[*Fieldset]
	FormControl[*Fieldset]
}

func NewFieldset(f dom.Factory) *Fieldset {
	e := &Fieldset{}
	build(f, "fieldset", e, &e.Global, &e.Styled, &e.FormControl)
	return e
}

// Img is <img>.
type Img struct {
	Global[*Img]
	Styled[*Img]
	Sourced[*Img]
	Dimensioned[*Img]
}

func NewImg(f dom.Factory) *Img {
	e := &Img{}
	build(f, "img", e, &e.Global, &e.Styled, &e.Sourced, &e.Dimensioned)
	return e
}

func (e *Img) Alt(v reactive.Value[string]) *Img { return setAttr(e.Global.c, attr.Alt, v) }

func (e *Img) Loading(v reactive.Value[attr.Loading]) *Img {
	return setAttr(e.Global.c, attr.LoadingAttr, v)
}

func (e *Img) Decoding(v reactive.Value[attr.Decoding]) *Img {
	return setAttr(e.Global.c, attr.DecodingAttr, v)
}

// Video is <video>.
type Video struct {
	Global[*Video]
	Styled[*Video]
	Sourced[*Video]
	Dimensioned[*Video]
	Media[*Video]
}

func NewVideo(f dom.Factory) *Video {
	e := &Video{}
	build(f, "video", e, &e.Global, &e.Styled, &e.Sourced, &e.Dimensioned, &e.Media)
	return e
}

func (e *Video) Poster(v reactive.Value[attr.URL]) *Video {
	return setAttr(e.Global.c, attr.Poster, v)
}

// Audio is <audio>.
type Audio struct {
	Global[*Audio]
	Styled[*Audio]
	Sourced[*Audio]
	Media[*Audio]
}

func NewAudio(f dom.Factory) *Audio {
	e := &Audio{}
	build(f, "audio", e, &e.Global, &e.Styled, &e.Sourced, &e.Media)
	return e
}

// IFrame is <iframe>.
type IFrame struct {
	Global[*IFrame]
	Styled[*IFrame]
	Sourced[*IFrame]
	Dimensioned[*IFrame]
	focus[*IFrame]
}

func NewIFrame(f dom.Factory) *IFrame {
	e := &IFrame{}
	build(f, "iframe", e, &e.Global, &e.Styled, &e.Sourced, &e.Dimensioned, &e.focus)
	return e
}

func (e *IFrame) Name(v reactive.Value[string]) *IFrame  { return setAttr(e.Global.c, attr.Name, v) }
func (e *IFrame) Allow(v reactive.Value[string]) *IFrame { return setAttr(e.Global.c, attr.Allow, v) }

// Sandbox binds the sandbox token list. An empty list removes the
// attribute, which lifts every restriction.
func (e *IFrame) Sandbox(v reactive.Value[[]string]) *IFrame {
	return setAttr(e.Global.c, attr.Sandbox, v)
}

func (e *IFrame) Loading(v reactive.Value[attr.Loading]) *IFrame {
	return setAttr(e.Global.c, attr.LoadingAttr, v)
}

// OL is <ol>.
type OL struct {
	Global[*OL]
	Styled[*OL]
}

func NewOL(f dom.Factory) *OL {
	e := &OL{}
	build(f, "ol", e, &e.Global, &e.Styled)
	return e
}

// Reversed numbers the list in descending order.
func (e *OL) Reversed(v reactive.Value[bool]) *OL { return setAttr(e.Global.c, attr.Reversed, v) }
func (e *OL) Start(v reactive.Value[int]) *OL     { return setAttr(e.Global.c, attr.Start, v) }

// Details is <details>.
type Details struct {
	Global[*Details]
	Styled[*Details]
}

func NewDetails(f dom.Factory) *Details {
	e := &Details{}
	build(f, "details", e, &e.Global, &e.Styled)
	return e
}

func (e *Details) Open(v reactive.Value[bool]) *Details { return setAttr(e.Global.c, attr.Open, v) }

// Dialog is <dialog>.
type Dialog struct {
	Global[*Dialog]
	Styled[*Dialog]
}

func NewDialog(f dom.Factory) *Dialog {
	e := &Dialog{}
	build(f, "dialog", e, &e.Global, &e.Styled)
	return e
}

func (e *Dialog) Open(v reactive.Value[bool]) *Dialog { return setAttr(e.Global.c, attr.Open, v) }

// Td is <td>.
type Td struct {
	Global[*Td]
	Styled[*Td]
}

func NewTd(f dom.Factory) *Td {
	e := &Td{}
	build(f, "td", e, &e.Global, &e.Styled)
	return e
}

func (e *Td) Colspan(v reactive.Value[attr.Positive]) *Td {
	return setAttr(e.Global.c, attr.Colspan, v)
}
func (e *Td) Rowspan(v reactive.Value[attr.Positive]) *Td {
	return setAttr(e.Global.c, attr.Rowspan, v)
}
func (e *Td) Headers(v reactive.Value[[]string]) *Td { return setAttr(e.Global.c, attr.Headers, v) }

// Th is <th>.
type Th struct {
	Global[*Th]
	Styled[*Th]
}

func NewTh(f dom.Factory) *Th {
	e := &Th{}
	build(f, "th", e, &e.Global, &e.Styled)
	return e
}

func (e *Th) Colspan(v reactive.Value[attr.Positive]) *Th {
	return setAttr(e.Global.c, attr.Colspan, v)
}
func (e *Th) Rowspan(v reactive.Value[attr.Positive]) *Th {
	return setAttr(e.Global.c, attr.Rowspan, v)
}
func (e *Th) Headers(v reactive.Value[[]string]) *Th { return setAttr(e.Global.c, attr.Headers, v) }
func (e *Th) Scope(v reactive.Value[attr.Scope]) *Th { return setAttr(e.Global.c, attr.ScopeAttr, v) }
