package css

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vango-dev/vbind/internal/errors"
)

// Color is a validated CSS color. The zero Color is unset.
type Color struct {
	s string
}

// Frequently used named colors.
var (
	Transparent  = Color{"transparent"}
	CurrentColor = Color{"currentcolor"}
	Black        = Color{"black"}
	White        = Color{"white"}
)

var namedColors = map[string]bool{
	"transparent": true, "currentcolor": true, "inherit": true,
	"black": true, "white": true, "gray": true, "grey": true, "silver": true,
	"red": true, "maroon": true, "orange": true, "yellow": true, "olive": true,
	"lime": true, "green": true, "teal": true, "aqua": true, "cyan": true,
	"blue": true, "navy": true, "purple": true, "fuchsia": true, "magenta": true,
	"pink": true, "brown": true, "gold": true, "indigo": true, "violet": true,
	"coral": true, "salmon": true, "tomato": true, "crimson": true, "khaki": true,
	"beige": true, "ivory": true, "lavender": true, "turquoise": true,
	"skyblue": true, "steelblue": true, "slategray": true, "darkgray": true,
	"lightgray": true, "whitesmoke": true, "rebeccapurple": true,
}

// Hex validates "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa". The leading '#'
// is optional. The result is lower-cased.
func Hex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "#")
	switch len(h) {
	case 3, 4, 6, 8:
	default:
		return Color{}, errors.New("E102").WithValue(s)
	}
	for _, r := range h {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f') {
			return Color{}, errors.New("E102").WithValue(s)
		}
	}
	return Color{"#" + h}, nil
}

// RGB returns an opaque color. Every uint8 channel is valid.
func RGB(r, g, b uint8) Color {
	return Color{fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)}
}

// RGBA returns a color with alpha in [0, 1].
func RGBA(r, g, b uint8, alpha float64) (Color, error) {
	if math.IsNaN(alpha) || alpha < 0 || alpha > 1 {
		return Color{}, errors.New("E102").
			WithValuef("rgba(%d, %d, %d, %v)", r, g, b, alpha).
			WithSuggestion("Alpha must be between 0 and 1")
	}
	a := strconv.FormatFloat(alpha, 'f', -1, 64)
	return Color{fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, a)}, nil
}

// Named validates a CSS named color.
func Named(name string) (Color, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if !namedColors[n] {
		return Color{}, errors.New("E102").WithValue(name)
	}
	return Color{n}, nil
}

// ParseColor accepts any form produced by Hex, RGB, RGBA or Named.
func ParseColor(s string) (Color, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(t, "#"):
		return Hex(t)
	case strings.HasPrefix(t, "rgba(") && strings.HasSuffix(t, ")"):
		ch, err := channels(t[len("rgba("):len(t)-1], 4)
		if err != nil {
			return Color{}, errors.New("E102").WithValue(s).Wrap(err)
		}
		alpha, err := strconv.ParseFloat(ch[3], 64)
		if err != nil {
			return Color{}, errors.New("E102").WithValue(s).Wrap(err)
		}
		r, g, b, err := rgbChannels(ch)
		if err != nil {
			return Color{}, errors.New("E102").WithValue(s).Wrap(err)
		}
		return RGBA(r, g, b, alpha)
	case strings.HasPrefix(t, "rgb(") && strings.HasSuffix(t, ")"):
		ch, err := channels(t[len("rgb("):len(t)-1], 3)
		if err != nil {
			return Color{}, errors.New("E102").WithValue(s).Wrap(err)
		}
		r, g, b, err := rgbChannels(ch)
		if err != nil {
			return Color{}, errors.New("E102").WithValue(s).Wrap(err)
		}
		return RGB(r, g, b), nil
	default:
		return Named(t)
	}
}

// MustColor is ParseColor for literals. It panics on error.
func MustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// IsSet reports whether c holds a value.
func (c Color) IsSet() bool { return c.s != "" }

// String serializes the color. The zero Color serializes to "".
func (c Color) String() string { return c.s }

func channels(body string, n int) ([]string, error) {
	parts := strings.Split(body, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d channels, got %d", n, len(parts))
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}

func rgbChannels(ch []string) (r, g, b uint8, err error) {
	var out [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(ch[i], 10, 8)
		if err != nil {
			return 0, 0, 0, err
		}
		out[i] = uint8(v)
	}
	return out[0], out[1], out[2], nil
}
