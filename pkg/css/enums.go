package css

import "github.com/vango-dev/vbind/internal/enum"

// Display is a value of the display property.
type Display uint8

const (
	DisplayNone Display = iota + 1
	DisplayBlock
	DisplayInline
	DisplayInlineBlock
	DisplayFlex
	DisplayInlineFlex
	DisplayGrid
	DisplayInlineGrid
	DisplayContents
)

var displayNames = []string{"none", "block", "inline", "inline-block", "flex", "inline-flex", "grid", "inline-grid", "contents"}

func (v Display) String() string { return enum.Name(displayNames, uint8(v)) }
func (v Display) Valid() bool    { return enum.Name(displayNames, uint8(v)) != "" }

// ParseDisplay parses a display keyword.
func ParseDisplay(s string) (Display, error) {
	return enum.Parse[Display]("display", displayNames, s)
}

// Position is a value of the position property.
type Position uint8

const (
	PositionStatic Position = iota + 1
	PositionRelative
	PositionAbsolute
	PositionFixed
	PositionSticky
)

var positionNames = []string{"static", "relative", "absolute", "fixed", "sticky"}

func (v Position) String() string { return enum.Name(positionNames, uint8(v)) }
func (v Position) Valid() bool    { return enum.Name(positionNames, uint8(v)) != "" }

// ParsePosition parses a position keyword.
func ParsePosition(s string) (Position, error) {
	return enum.Parse[Position]("position", positionNames, s)
}

// FlexDirection is a value of the flex-direction property.
type FlexDirection uint8

const (
	FlexDirectionRow FlexDirection = iota + 1
	FlexDirectionRowReverse
	FlexDirectionColumn
	FlexDirectionColumnReverse
)

var flexDirectionNames = []string{"row", "row-reverse", "column", "column-reverse"}

func (v FlexDirection) String() string { return enum.Name(flexDirectionNames, uint8(v)) }
func (v FlexDirection) Valid() bool    { return enum.Name(flexDirectionNames, uint8(v)) != "" }

// ParseFlexDirection parses a flex-direction keyword.
func ParseFlexDirection(s string) (FlexDirection, error) {
	return enum.Parse[FlexDirection]("flex-direction", flexDirectionNames, s)
}

// FlexWrap is a value of the flex-wrap property.
type FlexWrap uint8

const (
	FlexWrapNoWrap FlexWrap = iota + 1
	FlexWrapWrap
	FlexWrapWrapReverse
)

var flexWrapNames = []string{"nowrap", "wrap", "wrap-reverse"}

func (v FlexWrap) String() string { return enum.Name(flexWrapNames, uint8(v)) }
func (v FlexWrap) Valid() bool    { return enum.Name(flexWrapNames, uint8(v)) != "" }

// ParseFlexWrap parses a flex-wrap keyword.
func ParseFlexWrap(s string) (FlexWrap, error) {
	return enum.Parse[FlexWrap]("flex-wrap", flexWrapNames, s)
}

// AlignItems is a value of the align-items property.
type AlignItems uint8

const (
	AlignItemsNormal AlignItems = iota + 1
	AlignItemsStretch
	AlignItemsStart
	AlignItemsEnd
	AlignItemsCenter
	AlignItemsBaseline
)

var alignItemsNames = []string{"normal", "stretch", "flex-start", "flex-end", "center", "baseline"}

func (v AlignItems) String() string { return enum.Name(alignItemsNames, uint8(v)) }
func (v AlignItems) Valid() bool    { return enum.Name(alignItemsNames, uint8(v)) != "" }

// ParseAlignItems parses a align-items keyword.
func ParseAlignItems(s string) (AlignItems, error) {
	return enum.Parse[AlignItems]("align-items", alignItemsNames, s)
}

// JustifyContent is a value of the justify-content property.
type JustifyContent uint8

const (
	JustifyContentNormal JustifyContent = iota + 1
	JustifyContentStart
	JustifyContentEnd
	JustifyContentCenter
	JustifyContentSpaceBetween
	JustifyContentSpaceAround
	JustifyContentSpaceEvenly
)

var justifyContentNames = []string{"normal", "flex-start", "flex-end", "center", "space-between", "space-around", "space-evenly"}

func (v JustifyContent) String() string { return enum.Name(justifyContentNames, uint8(v)) }
func (v JustifyContent) Valid() bool    { return enum.Name(justifyContentNames, uint8(v)) != "" }

// ParseJustifyContent parses a justify-content keyword.
func ParseJustifyContent(s string) (JustifyContent, error) {
	return enum.Parse[JustifyContent]("justify-content", justifyContentNames, s)
}

// TextAlign is a value of the text-align property.
type TextAlign uint8

const (
	TextAlignLeft TextAlign = iota + 1
	TextAlignRight
	TextAlignCenter
	TextAlignJustify
	TextAlignStart
	TextAlignEnd
)

var textAlignNames = []string{"left", "right", "center", "justify", "start", "end"}

func (v TextAlign) String() string { return enum.Name(textAlignNames, uint8(v)) }
func (v TextAlign) Valid() bool    { return enum.Name(textAlignNames, uint8(v)) != "" }

// ParseTextAlign parses a text-align keyword.
func ParseTextAlign(s string) (TextAlign, error) {
	return enum.Parse[TextAlign]("text-align", textAlignNames, s)
}

// BorderStyle is a value of the border-style property.
type BorderStyle uint8

const (
	BorderStyleNone BorderStyle = iota + 1
	BorderStyleHidden
	BorderStyleSolid
	BorderStyleDashed
	BorderStyleDotted
	BorderStyleDouble
	BorderStyleGroove
	BorderStyleRidge
	BorderStyleInset
	BorderStyleOutset
)

var borderStyleNames = []string{"none", "hidden", "solid", "dashed", "dotted", "double", "groove", "ridge", "inset", "outset"}

func (v BorderStyle) String() string { return enum.Name(borderStyleNames, uint8(v)) }
func (v BorderStyle) Valid() bool    { return enum.Name(borderStyleNames, uint8(v)) != "" }

// ParseBorderStyle parses a border-style keyword.
func ParseBorderStyle(s string) (BorderStyle, error) {
	return enum.Parse[BorderStyle]("border-style", borderStyleNames, s)
}

// Overflow is a value of the overflow property.
type Overflow uint8

const (
	OverflowVisible Overflow = iota + 1
	OverflowHidden
	OverflowClip
	OverflowScroll
	OverflowAuto
)

var overflowNames = []string{"visible", "hidden", "clip", "scroll", "auto"}

func (v Overflow) String() string { return enum.Name(overflowNames, uint8(v)) }
func (v Overflow) Valid() bool    { return enum.Name(overflowNames, uint8(v)) != "" }

// ParseOverflow parses a overflow keyword.
func ParseOverflow(s string) (Overflow, error) {
	return enum.Parse[Overflow]("overflow", overflowNames, s)
}

// Visibility is a value of the visibility property.
type Visibility uint8

const (
	VisibilityVisible Visibility = iota + 1
	VisibilityHidden
	VisibilityCollapse
)

var visibilityNames = []string{"visible", "hidden", "collapse"}

func (v Visibility) String() string { return enum.Name(visibilityNames, uint8(v)) }
func (v Visibility) Valid() bool    { return enum.Name(visibilityNames, uint8(v)) != "" }

// ParseVisibility parses a visibility keyword.
func ParseVisibility(s string) (Visibility, error) {
	return enum.Parse[Visibility]("visibility", visibilityNames, s)
}

// Cursor is a value of the cursor property.
type Cursor uint8

const (
	CursorAuto Cursor = iota + 1
	CursorDefault
	CursorPointer
	CursorText
	CursorMove
	CursorWait
	CursorHelp
	CursorProgress
	CursorCrosshair
	CursorNotAllowed
	CursorGrab
	CursorGrabbing
)

var cursorNames = []string{"auto", "default", "pointer", "text", "move", "wait", "help", "progress", "crosshair", "not-allowed", "grab", "grabbing"}

func (v Cursor) String() string { return enum.Name(cursorNames, uint8(v)) }
func (v Cursor) Valid() bool    { return enum.Name(cursorNames, uint8(v)) != "" }

// ParseCursor parses a cursor keyword.
func ParseCursor(s string) (Cursor, error) { return enum.Parse[Cursor]("cursor", cursorNames, s) }
