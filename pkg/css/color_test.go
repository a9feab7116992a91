package css

import (
	"errors"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"#0AF", "#0af", false},
		{"#00aaff", "#00aaff", false},
		{"#00aaff80", "#00aaff80", false},
		{"rgb(1, 2, 3)", "rgb(1, 2, 3)", false},
		{"rgba(1,2,3,0.5)", "rgba(1, 2, 3, 0.5)", false},
		{"Red", "red", false},
		{"transparent", "transparent", false},
		{"#12", "", true},
		{"#ggg", "", true},
		{"rgb(256, 0, 0)", "", true},
		{"rgb(1, 2)", "", true},
		{"rgba(1, 2, 3, 2)", "", true},
		{"notacolor", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseColor(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColor) {
					t.Fatalf("ParseColor(%q) error = %v, want ErrInvalidColor", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q): %v", tt.in, err)
			}
			if got := c.String(); got != tt.want {
				t.Errorf("ParseColor(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRGBA(t *testing.T) {
	c, err := RGBA(10, 20, 30, 0.25)
	if err != nil {
		t.Fatal(err)
	}
	if c.String() != "rgba(10, 20, 30, 0.25)" {
		t.Errorf("got %q", c)
	}
	if _, err := RGBA(0, 0, 0, -0.1); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("negative alpha accepted: %v", err)
	}
}

func TestZeroColorUnset(t *testing.T) {
	var c Color
	if c.IsSet() || c.String() != "" {
		t.Errorf("zero Color = %q, want unset", c)
	}
	if RGB(0, 0, 0).String() != "rgb(0, 0, 0)" {
		t.Errorf("RGB(0,0,0) = %q", RGB(0, 0, 0))
	}
}
