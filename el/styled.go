package el

import (
	"github.com/vango-dev/vbind/pkg/css"
	"github.com/vango-dev/vbind/pkg/reactive"
)

// Styled holds the style properties. Every element embeds it.
type Styled[E any] struct {
	c *core[E]
}

func (s *Styled[E]) wire(c *core[E]) { s.c = c }

func (s Styled[E]) Display(v reactive.Value[css.Display]) E {
	return setStyle(s.c, css.DisplayProp, v)
}

func (s Styled[E]) Position(v reactive.Value[css.Position]) E {
	return setStyle(s.c, css.PositionProp, v)
}

func (s Styled[E]) Top(v reactive.Value[css.Length]) E    { return setStyle(s.c, css.Top, v) }
func (s Styled[E]) Right(v reactive.Value[css.Length]) E  { return setStyle(s.c, css.Right, v) }
func (s Styled[E]) Bottom(v reactive.Value[css.Length]) E { return setStyle(s.c, css.Bottom, v) }
func (s Styled[E]) Left(v reactive.Value[css.Length]) E   { return setStyle(s.c, css.Left, v) }

func (s Styled[E]) Width(v reactive.Value[css.Length]) E     { return setStyle(s.c, css.Width, v) }
func (s Styled[E]) Height(v reactive.Value[css.Length]) E    { return setStyle(s.c, css.Height, v) }
func (s Styled[E]) MinWidth(v reactive.Value[css.Length]) E  { return setStyle(s.c, css.MinWidth, v) }
func (s Styled[E]) MaxWidth(v reactive.Value[css.Length]) E  { return setStyle(s.c, css.MaxWidth, v) }
func (s Styled[E]) MinHeight(v reactive.Value[css.Length]) E { return setStyle(s.c, css.MinHeight, v) }
func (s Styled[E]) MaxHeight(v reactive.Value[css.Length]) E { return setStyle(s.c, css.MaxHeight, v) }

// Margin takes one to four side values, as the CSS shorthand does.
// It panics with E107 for any other count.
func (s Styled[E]) Margin(sides ...reactive.Value[css.Length]) E {
	for _, v := range sides {
		s.c.own(v)
	}
	return setStyle(s.c, css.Margin, sides4(sides, css.BoxOf))
}

// Padding takes one to four side values.
func (s Styled[E]) Padding(sides ...reactive.Value[css.Length]) E {
	for _, v := range sides {
		s.c.own(v)
	}
	return setStyle(s.c, css.Padding, sides4(sides, css.BoxOf))
}

// Inset takes one to four side values.
func (s Styled[E]) Inset(sides ...reactive.Value[css.Length]) E {
	for _, v := range sides {
		s.c.own(v)
	}
	return setStyle(s.c, css.Inset, sides4(sides, css.BoxOf))
}

// BorderRadius takes one to four corner values, clockwise from top-left,
// with the CSS shorthand's expansion rules.
func (s Styled[E]) BorderRadius(corners ...reactive.Value[css.Length]) E {
	for _, v := range corners {
		s.c.own(v)
	}
	return setStyle(s.c, css.BorderRadius, sides4(corners, css.CornersOf))
}

// Corners binds each corner of border-radius separately. The written value
// is the shortest equivalent shorthand.
func (s Styled[E]) Corners(topLeft, topRight, bottomRight, bottomLeft reactive.Value[css.Length]) E {
	s.c.own(topLeft, topRight, bottomRight, bottomLeft)
	v := reactive.Combine4(topLeft, topRight, bottomRight, bottomLeft,
		func(tl, tr, br, bl css.Length) css.Corners {
			return css.Corners{TopLeft: tl, TopRight: tr, BottomRight: br, BottomLeft: bl}
		})
	return setStyle(s.c, css.BorderRadius, v)
}

func (s Styled[E]) Border(v reactive.Value[css.Border]) E {
	return setStyle(s.c, css.BorderProp, v)
}

// BorderParts binds the border shorthand from separate inputs. Absent
// width or color tokens are omitted.
func (s Styled[E]) BorderParts(width reactive.Value[css.Optional[css.Length]], style reactive.Value[css.BorderStyle], color reactive.Value[css.Optional[css.Color]]) E {
	s.c.own(width, style, color)
	v := reactive.Combine3(width, style, color,
		func(w css.Optional[css.Length], st css.BorderStyle, c css.Optional[css.Color]) css.Border {
			return css.Border{Width: w, Style: st, Color: c}
		})
	return setStyle(s.c, css.BorderProp, v)
}

// Gap binds the gap shorthand. An absent column gap is omitted.
func (s Styled[E]) Gap(row reactive.Value[css.Length], column reactive.Value[css.Optional[css.Length]]) E {
	s.c.own(row, column)
	v := reactive.Combine2(row, column, func(r css.Length, c css.Optional[css.Length]) css.Gap {
		return css.Gap{Row: r, Column: c}
	})
	return setStyle(s.c, css.GapProp, v)
}

func (s Styled[E]) Flex(v reactive.Value[css.Flex]) E { return setStyle(s.c, css.FlexProp, v) }

func (s Styled[E]) FlexDirection(v reactive.Value[css.FlexDirection]) E {
	return setStyle(s.c, css.FlexDirectionProp, v)
}

func (s Styled[E]) FlexWrap(v reactive.Value[css.FlexWrap]) E {
	return setStyle(s.c, css.FlexWrapProp, v)
}

func (s Styled[E]) AlignItems(v reactive.Value[css.AlignItems]) E {
	return setStyle(s.c, css.AlignItemsProp, v)
}

func (s Styled[E]) JustifyContent(v reactive.Value[css.JustifyContent]) E {
	return setStyle(s.c, css.JustifyContentProp, v)
}

func (s Styled[E]) Color(v reactive.Value[css.Color]) E { return setStyle(s.c, css.ColorProp, v) }

func (s Styled[E]) BackgroundColor(v reactive.Value[css.Color]) E {
	return setStyle(s.c, css.BackgroundColor, v)
}

func (s Styled[E]) Opacity(v reactive.Value[css.Opacity]) E {
	return setStyle(s.c, css.OpacityProp, v)
}

func (s Styled[E]) ZIndex(v reactive.Value[int]) E { return setStyle(s.c, css.ZIndex, v) }

func (s Styled[E]) Overflow(v reactive.Value[css.Overflow]) E {
	return setStyle(s.c, css.OverflowProp, v)
}

func (s Styled[E]) Visibility(v reactive.Value[css.Visibility]) E {
	return setStyle(s.c, css.VisibilityProp, v)
}

func (s Styled[E]) Cursor(v reactive.Value[css.Cursor]) E { return setStyle(s.c, css.CursorProp, v) }

func (s Styled[E]) FontSize(v reactive.Value[css.Length]) E { return setStyle(s.c, css.FontSize, v) }

func (s Styled[E]) FontWeight(v reactive.Value[css.FontWeight]) E {
	return setStyle(s.c, css.FontWeightProp, v)
}

func (s Styled[E]) TextAlign(v reactive.Value[css.TextAlign]) E {
	return setStyle(s.c, css.TextAlignProp, v)
}

// sides4 fans 1-4 length inputs into one shorthand value.
func sides4[S any](vals []reactive.Value[css.Length], expand func(...css.Length) (S, error)) reactive.Value[S] {
	if _, err := expand(make([]css.Length, len(vals))...); err != nil {
		panic(err)
	}
	return reactive.CombineAll(vals, func(ls []css.Length) S {
		out, _ := expand(ls...)
		return out
	})
}
