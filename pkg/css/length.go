package css

import (
	"math"
	"strconv"
	"strings"

	"github.com/vango-dev/vbind/internal/errors"
)

// Unit is a CSS length unit.
type Unit string

const (
	UnitPx      Unit = "px"
	UnitEm      Unit = "em"
	UnitRem     Unit = "rem"
	UnitPercent Unit = "%"
	UnitVw      Unit = "vw"
	UnitVh      Unit = "vh"
	UnitCh      Unit = "ch"
	UnitFr      Unit = "fr"
)

// units lists the accepted units, longest suffix first so that "rem" is
// tried before "em".
var units = []Unit{UnitRem, UnitPx, UnitEm, UnitPercent, UnitVw, UnitVh, UnitCh, UnitFr}

// Length is a CSS length, percentage or the keyword auto.
// The zero Length is unset.
type Length struct {
	value   float64
	unit    Unit
	keyword string
}

// NewLength validates value and unit.
func NewLength(value float64, unit Unit) (Length, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Length{}, errors.New("E101").WithValuef("%v%s", value, unit)
	}
	if !knownUnit(unit) {
		return Length{}, errors.New("E101").
			WithValuef("%v%s", value, unit).
			WithSuggestion("Use one of px, em, rem, %, vw, vh, ch, fr")
	}
	if value == 0 {
		return Zero(), nil
	}
	return Length{value: value, unit: unit}, nil
}

func mustLength(value float64, unit Unit) Length {
	l, err := NewLength(value, unit)
	if err != nil {
		panic(err)
	}
	return l
}

// Px returns a pixel length. It panics if v is not finite.
func Px(v float64) Length { return mustLength(v, UnitPx) }

// Em returns a length relative to the element font size.
func Em(v float64) Length { return mustLength(v, UnitEm) }

// Rem returns a length relative to the root font size.
func Rem(v float64) Length { return mustLength(v, UnitRem) }

// Percent returns a percentage.
func Percent(v float64) Length { return mustLength(v, UnitPercent) }

// Vw returns a length relative to the viewport width.
func Vw(v float64) Length { return mustLength(v, UnitVw) }

// Vh returns a length relative to the viewport height.
func Vh(v float64) Length { return mustLength(v, UnitVh) }

// Ch returns a length relative to the width of "0".
func Ch(v float64) Length { return mustLength(v, UnitCh) }

// Fr returns a grid fraction.
func Fr(v float64) Length { return mustLength(v, UnitFr) }

// Auto returns the keyword auto.
func Auto() Length { return Length{keyword: "auto"} }

// Zero returns the unitless zero length.
func Zero() Length { return Length{keyword: "0"} }

// IsSet reports whether l holds a value.
func (l Length) IsSet() bool {
	return l.keyword != "" || l.unit != ""
}

// Value returns the numeric part and the unit. Keywords report 0 and "".
func (l Length) Value() (float64, Unit) {
	return l.value, l.unit
}

// String serializes the length. The zero Length serializes to "".
func (l Length) String() string {
	if l.keyword != "" {
		return l.keyword
	}
	if l.unit == "" {
		return ""
	}
	return strconv.FormatFloat(l.value, 'f', -1, 64) + string(l.unit)
}

// ParseLength parses "12px", "1.5rem", "50%", "auto" or "0".
func ParseLength(s string) (Length, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "auto":
		return Auto(), nil
	case "0":
		return Zero(), nil
	case "":
		return Length{}, errors.New("E101").WithValue(s)
	}

	for _, u := range units {
		if num, ok := strings.CutSuffix(s, string(u)); ok {
			v, err := strconv.ParseFloat(num, 64)
			if err != nil {
				return Length{}, errors.New("E101").WithValue(s)
			}
			return NewLength(v, u)
		}
	}
	return Length{}, errors.New("E101").
		WithValue(s).
		WithSuggestion("Use one of px, em, rem, %, vw, vh, ch, fr")
}

// MustLength is ParseLength for literals. It panics on error.
func MustLength(s string) Length {
	l, err := ParseLength(s)
	if err != nil {
		panic(err)
	}
	return l
}

func knownUnit(u Unit) bool {
	for _, known := range units {
		if u == known {
			return true
		}
	}
	return false
}
