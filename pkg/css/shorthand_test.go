package css

import (
	"errors"
	"testing"
)

func TestCollapse(t *testing.T) {
	a, b, c, d := Px(1), Px(2), Px(3), Px(4)
	tests := []struct {
		name string
		box  Box
		want string
	}{
		{"all equal", Box{a, a, a, a}, "1px"},
		{"vertical horizontal", Box{a, b, a, b}, "1px 2px"},
		{"three", Box{a, b, c, b}, "1px 2px 3px"},
		{"four", Box{a, b, c, d}, "1px 2px 3px 4px"},
		{"left differs", Box{a, a, a, b}, "1px 1px 1px 2px"},
		{"unset side is zero", Box{Top: a}, "1px 0 0"},
		{"all unset", Box{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCornersRoundTrip(t *testing.T) {
	for n := 1; n <= 4; n++ {
		vals := []Length{Px(1), Px(2), Px(3), Px(4)}[:n]
		c, err := CornersOf(vals...)
		if err != nil {
			t.Fatalf("CornersOf(%d values): %v", n, err)
		}
		want := []string{"1px", "1px 2px", "1px 2px 3px", "1px 2px 3px 4px"}[n-1]
		if got := c.String(); got != want {
			t.Errorf("CornersOf(%d values) = %q, want %q", n, got, want)
		}
	}
}

func TestShorthandArity(t *testing.T) {
	if _, err := BoxOf(); !errors.Is(err, ErrShorthand) {
		t.Errorf("BoxOf() error = %v", err)
	}
	five := []Length{Px(1), Px(1), Px(1), Px(1), Px(1)}
	if _, err := CornersOf(five...); !errors.Is(err, ErrShorthand) {
		t.Errorf("CornersOf(5 values) error = %v", err)
	}
}

func TestBorderOmitsAbsentTokens(t *testing.T) {
	red := MustColor("red")
	tests := []struct {
		name string
		b    Border
		want string
	}{
		{"full", Border{Some(Px(1)), BorderStyleSolid, Some(red)}, "1px solid red"},
		{"no width", Border{None[Length](), BorderStyleDashed, Some(red)}, "dashed red"},
		{"no color", Border{Some(Px(2)), BorderStyleSolid, None[Color]()}, "2px solid"},
		{"style only", Border{Style: BorderStyleNone}, "none"},
		{"empty", Border{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.b.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFlexAndGap(t *testing.T) {
	if got := (Flex{Grow: 1, Shrink: 0}).String(); got != "1 0" {
		t.Errorf("Flex = %q", got)
	}
	if got := (Flex{Grow: 2, Shrink: 1, Basis: Some(Percent(30))}).String(); got != "2 1 30%" {
		t.Errorf("Flex with basis = %q", got)
	}
	if got := (Gap{Row: Rem(1)}).String(); got != "1rem" {
		t.Errorf("Gap = %q", got)
	}
	if got := (Gap{Row: Rem(1), Column: Some(Px(4))}).String(); got != "1rem 4px" {
		t.Errorf("Gap with column = %q", got)
	}
}

func TestPropertyEntries(t *testing.T) {
	v, ok := Width.Encode(Px(10))
	if !ok || v != "10px" {
		t.Errorf("width = %q, %v", v, ok)
	}
	if _, ok := Width.Encode(Length{}); ok {
		t.Error("unset length should be absent")
	}
	if _, ok := DisplayProp.Encode(Display(0)); ok {
		t.Error("unset display should be absent")
	}
	if v, _ := ZIndex.Encode(-1); v != "-1" {
		t.Errorf("z-index = %q", v)
	}
	if BorderRadius.Name() != "border-radius" {
		t.Errorf("name = %q", BorderRadius.Name())
	}
}
