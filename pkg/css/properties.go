package css

import "github.com/vango-dev/vbind/pkg/key"

// Style property entries.
var (
	DisplayProp  = key.NewStyle("display", key.Stringer[Display])
	PositionProp = key.NewStyle("position", key.Stringer[Position])

	Top    = key.NewStyle("top", key.Stringer[Length])
	Right  = key.NewStyle("right", key.Stringer[Length])
	Bottom = key.NewStyle("bottom", key.Stringer[Length])
	Left   = key.NewStyle("left", key.Stringer[Length])
	Inset  = key.NewStyle("inset", key.Stringer[Box])

	Width     = key.NewStyle("width", key.Stringer[Length])
	Height    = key.NewStyle("height", key.Stringer[Length])
	MinWidth  = key.NewStyle("min-width", key.Stringer[Length])
	MaxWidth  = key.NewStyle("max-width", key.Stringer[Length])
	MinHeight = key.NewStyle("min-height", key.Stringer[Length])
	MaxHeight = key.NewStyle("max-height", key.Stringer[Length])

	Margin       = key.NewStyle("margin", key.Stringer[Box])
	Padding      = key.NewStyle("padding", key.Stringer[Box])
	BorderProp   = key.NewStyle("border", key.Stringer[Border])
	BorderRadius = key.NewStyle("border-radius", key.Stringer[Corners])

	GapProp            = key.NewStyle("gap", key.Stringer[Gap])
	FlexProp           = key.NewStyle("flex", key.Stringer[Flex])
	FlexDirectionProp  = key.NewStyle("flex-direction", key.Stringer[FlexDirection])
	FlexWrapProp       = key.NewStyle("flex-wrap", key.Stringer[FlexWrap])
	AlignItemsProp     = key.NewStyle("align-items", key.Stringer[AlignItems])
	JustifyContentProp = key.NewStyle("justify-content", key.Stringer[JustifyContent])

	ColorProp       = key.NewStyle("color", key.Stringer[Color])
	BackgroundColor = key.NewStyle("background-color", key.Stringer[Color])
	OpacityProp     = key.NewStyle("opacity", key.Stringer[Opacity])
	ZIndex          = key.NewStyle("z-index", key.Int)
	OverflowProp    = key.NewStyle("overflow", key.Stringer[Overflow])
	VisibilityProp  = key.NewStyle("visibility", key.Stringer[Visibility])
	CursorProp      = key.NewStyle("cursor", key.Stringer[Cursor])

	FontSize       = key.NewStyle("font-size", key.Stringer[Length])
	FontWeightProp = key.NewStyle("font-weight", key.Stringer[FontWeight])
	TextAlignProp  = key.NewStyle("text-align", key.Stringer[TextAlign])
)
