package attr

import (
	"strings"

	"github.com/vango-dev/vbind/internal/errors"
	"github.com/vango-dev/vbind/pkg/key"
)

// Global attributes, accepted by every element.
var (
	ID              = key.NewAttr("id", key.NonEmpty)
	Class           = key.NewAttr("class", key.List(" "))
	Title           = key.NewAttr("title", key.String)
	Hidden          = key.NewAttr("hidden", key.Bool)
	TabIndex        = key.NewAttr("tabindex", key.Int)
	Lang            = key.NewAttr("lang", key.NonEmpty)
	DirAttr         = key.NewAttr("dir", key.Stringer[Dir])
	Draggable       = key.NewAttr("draggable", key.Enumerated)
	ContentEditable = key.NewAttr("contenteditable", key.Enumerated)
	Spellcheck      = key.NewAttr("spellcheck", key.Enumerated)
	Role            = key.NewAttr("role", key.NonEmpty)
	AriaLabel       = key.NewAttr("aria-label", key.String)
	AriaHidden      = key.NewAttr("aria-hidden", key.Enumerated)

	// AccessKey is the accesskey attribute: a keyboard shortcut hint that
	// focuses or activates the element.
	AccessKey = key.NewAttr("accesskey", key.NonEmpty)
)

// Data returns the entry for the custom data attribute data-<name>. A
// leading "data-" in name is not doubled. The remaining name must be
// non-empty, free of ASCII uppercase, and made only of characters allowed
// in an attribute name.
func Data(name string) (key.Entry[string], error) {
	suffix := strings.TrimPrefix(name, "data-")
	if !validDataName(suffix) {
		return key.Entry[string]{}, errors.New("E108").WithValue(name)
	}
	return key.NewAttr("data-"+suffix, key.String), nil
}

// MustData panics if name is not a valid data attribute name.
func MustData(name string) key.Entry[string] {
	e, err := Data(name)
	if err != nil {
		panic(err)
	}
	return e
}

func validDataName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			return false
		case r <= 0x20, r >= 0x7f && r <= 0x9f:
			return false
		case strings.ContainsRune(`"'>/=`, r):
			return false
		case r >= 0xfdd0 && r <= 0xfdef, r&0xfffe == 0xfffe:
			return false
		}
	}
	return true
}

// Form and form control attributes.
var (
	Name         = key.NewAttr("name", key.NonEmpty)
	Value        = key.NewAttr("value", key.String)
	Disabled     = key.NewAttr("disabled", key.Bool)
	Required     = key.NewAttr("required", key.Bool)
	ReadOnly     = key.NewAttr("readonly", key.Bool)
	Autofocus    = key.NewAttr("autofocus", key.Bool)
	Placeholder  = key.NewAttr("placeholder", key.String)
	Form         = key.NewAttr("form", key.NonEmpty)
	AutoComplete = key.NewAttr("autocomplete", key.Stringer[Autocomplete])
	Pattern      = key.NewAttr("pattern", key.NonEmpty)
	MinLength    = key.NewAttr("minlength", key.Stringer[NonNegative])
	MaxLength    = key.NewAttr("maxlength", key.Stringer[NonNegative])
	Min          = key.NewAttr("min", key.NonEmpty)
	Max          = key.NewAttr("max", key.NonEmpty)
	Step         = key.NewAttr("step", key.NonEmpty)
	Checked      = key.NewAttr("checked", key.Bool)
	Multiple     = key.NewAttr("multiple", key.Bool)
	Selected     = key.NewAttr("selected", key.Bool)
	Label        = key.NewAttr("label", key.NonEmpty)
	Size         = key.NewAttr("size", key.Stringer[Positive])
	Cols         = key.NewAttr("cols", key.Stringer[Positive])
	Rows         = key.NewAttr("rows", key.Stringer[Positive])
	WrapAttr     = key.NewAttr("wrap", key.Stringer[Wrap])
	For          = key.NewAttr("for", key.NonEmpty)
	Action       = key.NewAttr("action", key.Stringer[URL])
	MethodAttr   = key.NewAttr("method", key.Stringer[Method])
	EnctypeAttr  = key.NewAttr("enctype", key.Stringer[Enctype])
	NoValidate   = key.NewAttr("novalidate", key.Bool)

	InputTypeAttr  = key.NewAttr("type", key.Stringer[InputType])
	ButtonTypeAttr = key.NewAttr("type", key.Stringer[ButtonType])
)

// Linking attributes.
var (
	Href       = key.NewAttr("href", key.Stringer[URL])
	TargetAttr = key.NewAttr("target", key.Stringer[Target])
	RelAttr    = key.NewAttr("rel", key.Stringer[Rels])
	Download   = key.NewAttr("download", key.String)
	HrefLang   = key.NewAttr("hreflang", key.NonEmpty)
)

// Embedded content attributes.
var (
	Src          = key.NewAttr("src", key.Stringer[URL])
	Alt          = key.NewAttr("alt", key.String)
	Width        = key.NewAttr("width", key.Stringer[NonNegative])
	Height       = key.NewAttr("height", key.Stringer[NonNegative])
	LoadingAttr  = key.NewAttr("loading", key.Stringer[Loading])
	DecodingAttr = key.NewAttr("decoding", key.Stringer[Decoding])
	Controls     = key.NewAttr("controls", key.Bool)
	Autoplay     = key.NewAttr("autoplay", key.Bool)
	Loop         = key.NewAttr("loop", key.Bool)
	Muted        = key.NewAttr("muted", key.Bool)
	PreloadAttr  = key.NewAttr("preload", key.Stringer[Preload])
	Poster       = key.NewAttr("poster", key.Stringer[URL])
	Sandbox      = key.NewAttr("sandbox", key.List(" "))
	Allow        = key.NewAttr("allow", key.NonEmpty)
)

// Element-specific attributes.
var (
	// Reversed is the boolean reversed attribute of <ol>.
	Reversed = key.NewAttr("reversed", key.Bool)
	Start    = key.NewAttr("start", key.Int)

	Open = key.NewAttr("open", key.Bool)

	Colspan   = key.NewAttr("colspan", key.Stringer[Positive])
	Rowspan   = key.NewAttr("rowspan", key.Stringer[Positive])
	ScopeAttr = key.NewAttr("scope", key.Stringer[Scope])
	Headers   = key.NewAttr("headers", key.List(" "))
)
