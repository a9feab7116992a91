package css

import (
	"errors"
	"testing"
)

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{DisplayInlineBlock.String(), "inline-block"},
		{PositionSticky.String(), "sticky"},
		{FlexDirectionColumnReverse.String(), "column-reverse"},
		{FlexWrapNoWrap.String(), "nowrap"},
		{AlignItemsStart.String(), "flex-start"},
		{JustifyContentSpaceBetween.String(), "space-between"},
		{TextAlignJustify.String(), "justify"},
		{BorderStyleDashed.String(), "dashed"},
		{OverflowClip.String(), "clip"},
		{VisibilityCollapse.String(), "collapse"},
		{CursorNotAllowed.String(), "not-allowed"},
		{Display(0).String(), ""},
		{Display(200).String(), ""},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}

func TestEnumValid(t *testing.T) {
	if !CursorGrabbing.Valid() {
		t.Error("CursorGrabbing should be valid")
	}
	if Cursor(0).Valid() || Cursor(99).Valid() {
		t.Error("out of range cursor reported valid")
	}
}

func TestParseEnum(t *testing.T) {
	d, err := ParseDisplay(" Flex ")
	if err != nil || d != DisplayFlex {
		t.Fatalf("ParseDisplay = %v, %v", d, err)
	}
	if _, err := ParseDisplay("flexbox"); !errors.Is(err, ErrInvalidEnum) {
		t.Errorf("ParseDisplay(flexbox) error = %v, want ErrInvalidEnum", err)
	}
	o, err := ParseOverflow("scroll")
	if err != nil || o != OverflowScroll {
		t.Errorf("ParseOverflow = %v, %v", o, err)
	}
}

func TestFontWeight(t *testing.T) {
	w, err := Weight(600)
	if err != nil || w.String() != "600" {
		t.Fatalf("Weight(600) = %q, %v", w, err)
	}
	for _, bad := range []int{0, 50, 150, 1000} {
		if _, err := Weight(bad); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Weight(%d) error = %v", bad, err)
		}
	}
	if FontWeightBold.String() != "bold" {
		t.Errorf("bold = %q", FontWeightBold)
	}
}

func TestOpacity(t *testing.T) {
	o, err := NewOpacity(0)
	if err != nil || o.String() != "0" {
		t.Fatalf("NewOpacity(0) = %q, %v", o, err)
	}
	if (Opacity{}).String() != "" {
		t.Error("zero Opacity should be unset")
	}
	if _, err := NewOpacity(1.01); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("NewOpacity(1.01) error = %v", err)
	}
}
