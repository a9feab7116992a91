package css

import (
	"math"
	"strconv"

	"github.com/vango-dev/vbind/internal/errors"
)

// FontWeight is a font-weight value: a multiple of 100 in [100, 900] or a
// keyword. The zero FontWeight is unset.
type FontWeight struct {
	s string
}

var (
	FontWeightNormal  = FontWeight{"normal"}
	FontWeightBold    = FontWeight{"bold"}
	FontWeightLighter = FontWeight{"lighter"}
	FontWeightBolder  = FontWeight{"bolder"}
)

// Weight validates a numeric font weight.
func Weight(w int) (FontWeight, error) {
	if w < 100 || w > 900 || w%100 != 0 {
		return FontWeight{}, errors.New("E103").
			WithValue(strconv.Itoa(w)).
			WithSuggestion("Use 100, 200, ... 900")
	}
	return FontWeight{strconv.Itoa(w)}, nil
}

func (w FontWeight) String() string { return w.s }

// Opacity is an opacity in [0, 1]. The zero Opacity is unset; use
// NewOpacity(0) for full transparency.
type Opacity struct {
	v   float64
	set bool
}

// NewOpacity validates v.
func NewOpacity(v float64) (Opacity, error) {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return Opacity{}, errors.New("E103").
			WithValue(strconv.FormatFloat(v, 'f', -1, 64)).
			WithSuggestion("Opacity must be between 0 and 1")
	}
	return Opacity{v: v, set: true}, nil
}

// MustOpacity panics if v is out of range.
func MustOpacity(v float64) Opacity {
	o, err := NewOpacity(v)
	if err != nil {
		panic(err)
	}
	return o
}

// Float returns the opacity value.
func (o Opacity) Float() float64 { return o.v }

func (o Opacity) String() string {
	if !o.set {
		return ""
	}
	return strconv.FormatFloat(o.v, 'f', -1, 64)
}
