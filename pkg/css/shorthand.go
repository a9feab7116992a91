package css

import (
	"strconv"
	"strings"

	"github.com/vango-dev/vbind/internal/errors"
)

// Box is the value of a four-side shorthand: margin, padding, inset.
// Unset sides serialize as 0 unless every side is unset.
type Box struct {
	Top, Right, Bottom, Left Length
}

// BoxOf expands 1-4 values the way CSS does: one value for all sides, two
// for vertical and horizontal, three for top, horizontal and bottom, four
// clockwise from the top.
func BoxOf(vals ...Length) (Box, error) {
	s, err := expand(vals)
	if err != nil {
		return Box{}, err
	}
	return Box{Top: s[0], Right: s[1], Bottom: s[2], Left: s[3]}, nil
}

// String serializes the box in its shortest equivalent form.
func (b Box) String() string {
	return collapse(b.Top, b.Right, b.Bottom, b.Left)
}

// Corners is the value of border-radius. Unset corners serialize as 0
// unless every corner is unset.
type Corners struct {
	TopLeft, TopRight, BottomRight, BottomLeft Length
}

// CornersOf expands 1-4 values the way border-radius does.
func CornersOf(vals ...Length) (Corners, error) {
	s, err := expand(vals)
	if err != nil {
		return Corners{}, err
	}
	return Corners{TopLeft: s[0], TopRight: s[1], BottomRight: s[2], BottomLeft: s[3]}, nil
}

// String serializes the corners in their shortest equivalent form.
func (c Corners) String() string {
	return collapse(c.TopLeft, c.TopRight, c.BottomRight, c.BottomLeft)
}

// Border is the border shorthand. Absent components are omitted.
type Border struct {
	Width Optional[Length]
	Style BorderStyle
	Color Optional[Color]
}

func (b Border) String() string {
	var parts []string
	if w, ok := b.Width.Get(); ok && w.IsSet() {
		parts = append(parts, w.String())
	}
	if b.Style.Valid() {
		parts = append(parts, b.Style.String())
	}
	if c, ok := b.Color.Get(); ok && c.IsSet() {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, " ")
}

// Flex is the flex shorthand. Basis is omitted when absent.
type Flex struct {
	Grow   float64
	Shrink float64
	Basis  Optional[Length]
}

func (f Flex) String() string {
	s := num(f.Grow) + " " + num(f.Shrink)
	if b, ok := f.Basis.Get(); ok && b.IsSet() {
		s += " " + b.String()
	}
	return s
}

// Gap is the gap shorthand. Column is omitted when absent, meaning the row
// gap applies to both axes.
type Gap struct {
	Row    Length
	Column Optional[Length]
}

func (g Gap) String() string {
	if !g.Row.IsSet() {
		return ""
	}
	if c, ok := g.Column.Get(); ok && c.IsSet() {
		return g.Row.String() + " " + c.String()
	}
	return g.Row.String()
}

func expand(vals []Length) ([4]Length, error) {
	switch len(vals) {
	case 1:
		return [4]Length{vals[0], vals[0], vals[0], vals[0]}, nil
	case 2:
		return [4]Length{vals[0], vals[1], vals[0], vals[1]}, nil
	case 3:
		return [4]Length{vals[0], vals[1], vals[2], vals[1]}, nil
	case 4:
		return [4]Length{vals[0], vals[1], vals[2], vals[3]}, nil
	}
	return [4]Length{}, errors.New("E107").WithValuef("%d values", len(vals))
}

// collapse writes four sides in the shortest form that expands back to the
// same values.
func collapse(a, b, c, d Length) string {
	if !a.IsSet() && !b.IsSet() && !c.IsSet() && !d.IsSet() {
		return ""
	}
	s := [4]string{side(a), side(b), side(c), side(d)}
	switch {
	case s[1] != s[3]:
		return strings.Join(s[:], " ")
	case s[0] != s[2]:
		return strings.Join(s[:3], " ")
	case s[0] != s[1]:
		return strings.Join(s[:2], " ")
	default:
		return s[0]
	}
}

func side(l Length) string {
	if !l.IsSet() {
		return "0"
	}
	return l.String()
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
