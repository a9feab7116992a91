package key

import "testing"

type level int

func (l level) String() string {
	switch l {
	case 1:
		return "low"
	case 2:
		return "high"
	default:
		return ""
	}
}

func TestStockCodecs(t *testing.T) {
	tests := []struct {
		name   string
		encode func() (string, bool)
		want   string
		wantOK bool
	}{
		{"string empty", func() (string, bool) { return String("") }, "", true},
		{"non-empty empty", func() (string, bool) { return NonEmpty("") }, "", false},
		{"int", func() (string, bool) { return Int(-4) }, "-4", true},
		{"float", func() (string, bool) { return Float(0.5) }, "0.5", true},
		{"bool true", func() (string, bool) { return Bool(true) }, "", true},
		{"bool false", func() (string, bool) { return Bool(false) }, "", false},
		{"enumerated false", func() (string, bool) { return Enumerated(false) }, "false", true},
		{"stringer", func() (string, bool) { return Stringer(level(2)) }, "high", true},
		{"stringer empty", func() (string, bool) { return Stringer(level(9)) }, "", false},
		{"list", func() (string, bool) { return List(" ")([]string{"a", " ", "b "}) }, "a b", true},
		{"list empty", func() (string, bool) { return List(",")(nil) }, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.encode()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("got (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestEntry(t *testing.T) {
	e := NewAttr("rows", Int)
	if e.Name() != "rows" || e.Kind() != KindAttribute {
		t.Errorf("entry = %s", e.Key)
	}
	if e.Key != Attribute[int]("rows") {
		t.Error("entry key should be the interned key")
	}

	v, ok := e.Encode(3)
	if v != "3" || !ok {
		t.Errorf("Encode = (%q, %v)", v, ok)
	}

	st := NewStyle("z-index", Int)
	if st.Kind() != KindStyle {
		t.Errorf("kind = %v", st.Kind())
	}
}
