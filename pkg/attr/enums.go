package attr

import "github.com/vango-dev/vbind/internal/enum"

// InputType is a value of the input type attribute.
type InputType uint8

const (
	InputTypeText InputType = iota + 1
	InputTypePassword
	InputTypeEmail
	InputTypeNumber
	InputTypeTel
	InputTypeURL
	InputTypeSearch
	InputTypeDate
	InputTypeTime
	InputTypeDateTimeLocal
	InputTypeMonth
	InputTypeWeek
	InputTypeColor
	InputTypeCheckbox
	InputTypeRadio
	InputTypeFile
	InputTypeRange
	InputTypeHidden
	InputTypeSubmit
	InputTypeReset
	InputTypeButton
	InputTypeImage
)

var inputTypeNames = []string{"text", "password", "email", "number", "tel", "url", "search", "date", "time", "datetime-local", "month", "week", "color", "checkbox", "radio", "file", "range", "hidden", "submit", "reset", "button", "image"}

func (v InputType) String() string { return enum.Name(inputTypeNames, uint8(v)) }
func (v InputType) Valid() bool    { return enum.Name(inputTypeNames, uint8(v)) != "" }

// ParseInputType parses a input type keyword.
func ParseInputType(s string) (InputType, error) {
	return enum.Parse[InputType]("input type", inputTypeNames, s)
}

// ButtonType is a value of the button type attribute.
type ButtonType uint8

const (
	ButtonTypeSubmit ButtonType = iota + 1
	ButtonTypeReset
	ButtonTypeButton
)

var buttonTypeNames = []string{"submit", "reset", "button"}

func (v ButtonType) String() string { return enum.Name(buttonTypeNames, uint8(v)) }
func (v ButtonType) Valid() bool    { return enum.Name(buttonTypeNames, uint8(v)) != "" }

// ParseButtonType parses a button type keyword.
func ParseButtonType(s string) (ButtonType, error) {
	return enum.Parse[ButtonType]("button type", buttonTypeNames, s)
}

// Target is a value of the target attribute.
type Target uint8

const (
	TargetSelf Target = iota + 1
	TargetBlank
	TargetParent
	TargetTop
)

var targetNames = []string{"_self", "_blank", "_parent", "_top"}

func (v Target) String() string { return enum.Name(targetNames, uint8(v)) }
func (v Target) Valid() bool    { return enum.Name(targetNames, uint8(v)) != "" }

// ParseTarget parses a target keyword.
func ParseTarget(s string) (Target, error) {
	return enum.Parse[Target]("target", targetNames, s)
}

// Wrap is a value of the wrap attribute.
type Wrap uint8

const (
	WrapSoft Wrap = iota + 1
	WrapHard
	WrapOff
)

var wrapNames = []string{"soft", "hard", "off"}

func (v Wrap) String() string { return enum.Name(wrapNames, uint8(v)) }
func (v Wrap) Valid() bool    { return enum.Name(wrapNames, uint8(v)) != "" }

// ParseWrap parses a wrap keyword.
func ParseWrap(s string) (Wrap, error) {
	return enum.Parse[Wrap]("wrap", wrapNames, s)
}

// Loading is a value of the loading attribute.
type Loading uint8

const (
	LoadingEager Loading = iota + 1
	LoadingLazy
)

var loadingNames = []string{"eager", "lazy"}

func (v Loading) String() string { return enum.Name(loadingNames, uint8(v)) }
func (v Loading) Valid() bool    { return enum.Name(loadingNames, uint8(v)) != "" }

// ParseLoading parses a loading keyword.
func ParseLoading(s string) (Loading, error) {
	return enum.Parse[Loading]("loading", loadingNames, s)
}

// Decoding is a value of the decoding attribute.
type Decoding uint8

const (
	DecodingSync Decoding = iota + 1
	DecodingAsync
	DecodingAuto
)

var decodingNames = []string{"sync", "async", "auto"}

func (v Decoding) String() string { return enum.Name(decodingNames, uint8(v)) }
func (v Decoding) Valid() bool    { return enum.Name(decodingNames, uint8(v)) != "" }

// ParseDecoding parses a decoding keyword.
func ParseDecoding(s string) (Decoding, error) {
	return enum.Parse[Decoding]("decoding", decodingNames, s)
}

// Preload is a value of the preload attribute.
type Preload uint8

const (
	PreloadNone Preload = iota + 1
	PreloadMetadata
	PreloadAuto
)

var preloadNames = []string{"none", "metadata", "auto"}

func (v Preload) String() string { return enum.Name(preloadNames, uint8(v)) }
func (v Preload) Valid() bool    { return enum.Name(preloadNames, uint8(v)) != "" }

// ParsePreload parses a preload keyword.
func ParsePreload(s string) (Preload, error) {
	return enum.Parse[Preload]("preload", preloadNames, s)
}

// Dir is a value of the dir attribute.
type Dir uint8

const (
	DirLTR Dir = iota + 1
	DirRTL
	DirAuto
)

var dirNames = []string{"ltr", "rtl", "auto"}

func (v Dir) String() string { return enum.Name(dirNames, uint8(v)) }
func (v Dir) Valid() bool    { return enum.Name(dirNames, uint8(v)) != "" }

// ParseDir parses a dir keyword.
func ParseDir(s string) (Dir, error) {
	return enum.Parse[Dir]("dir", dirNames, s)
}

// Method is a value of the method attribute.
type Method uint8

const (
	MethodGet Method = iota + 1
	MethodPost
	MethodDialog
)

var methodNames = []string{"get", "post", "dialog"}

func (v Method) String() string { return enum.Name(methodNames, uint8(v)) }
func (v Method) Valid() bool    { return enum.Name(methodNames, uint8(v)) != "" }

// ParseMethod parses a method keyword.
func ParseMethod(s string) (Method, error) {
	return enum.Parse[Method]("method", methodNames, s)
}

// Enctype is a value of the enctype attribute.
type Enctype uint8

const (
	EnctypeURLEncoded Enctype = iota + 1
	EnctypeMultipart
	EnctypeTextPlain
)

var enctypeNames = []string{"application/x-www-form-urlencoded", "multipart/form-data", "text/plain"}

func (v Enctype) String() string { return enum.Name(enctypeNames, uint8(v)) }
func (v Enctype) Valid() bool    { return enum.Name(enctypeNames, uint8(v)) != "" }

// ParseEnctype parses a enctype keyword.
func ParseEnctype(s string) (Enctype, error) {
	return enum.Parse[Enctype]("enctype", enctypeNames, s)
}

// Autocomplete is a value of the autocomplete attribute.
type Autocomplete uint8

const (
	AutocompleteOn Autocomplete = iota + 1
	AutocompleteOff
	AutocompleteName
	AutocompleteEmail
	AutocompleteUsername
	AutocompleteCurrentPassword
	AutocompleteNewPassword
	AutocompleteOneTimeCode
	AutocompleteTel
	AutocompleteStreetAddress
	AutocompletePostalCode
	AutocompleteCountry
)

var autocompleteNames = []string{"on", "off", "name", "email", "username", "current-password", "new-password", "one-time-code", "tel", "street-address", "postal-code", "country"}

func (v Autocomplete) String() string { return enum.Name(autocompleteNames, uint8(v)) }
func (v Autocomplete) Valid() bool    { return enum.Name(autocompleteNames, uint8(v)) != "" }

// ParseAutocomplete parses a autocomplete keyword.
func ParseAutocomplete(s string) (Autocomplete, error) {
	return enum.Parse[Autocomplete]("autocomplete", autocompleteNames, s)
}

// Scope is a value of the scope attribute.
type Scope uint8

const (
	ScopeRow Scope = iota + 1
	ScopeCol
	ScopeRowGroup
	ScopeColGroup
)

var scopeNames = []string{"row", "col", "rowgroup", "colgroup"}

func (v Scope) String() string { return enum.Name(scopeNames, uint8(v)) }
func (v Scope) Valid() bool    { return enum.Name(scopeNames, uint8(v)) != "" }

// ParseScope parses a scope keyword.
func ParseScope(s string) (Scope, error) {
	return enum.Parse[Scope]("scope", scopeNames, s)
}

// Rel is a value of the rel attribute.
type Rel uint8

const (
	RelAlternate Rel = iota + 1
	RelAuthor
	RelBookmark
	RelExternal
	RelHelp
	RelLicense
	RelNext
	RelNoFollow
	RelNoOpener
	RelNoReferrer
	RelPrev
	RelSearch
	RelTag
)

var relNames = []string{"alternate", "author", "bookmark", "external", "help", "license", "next", "nofollow", "noopener", "noreferrer", "prev", "search", "tag"}

func (v Rel) String() string { return enum.Name(relNames, uint8(v)) }
func (v Rel) Valid() bool    { return enum.Name(relNames, uint8(v)) != "" }

// ParseRel parses a rel keyword.
func ParseRel(s string) (Rel, error) {
	return enum.Parse[Rel]("rel", relNames, s)
}
