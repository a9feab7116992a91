package key

import (
	"sync"
	"testing"

	"golang.org/x/net/html/atom"
)

func TestAttributeMemoized(t *testing.T) {
	a := Attribute[string]("placeholder")
	b := Attribute[string]("placeholder")
	if a != b {
		t.Error("expected identical keys for the same name and type")
	}

	c := Attribute[string]("  PlaceHolder ")
	if a != c {
		t.Error("expected names to be normalized before interning")
	}
}

func TestKeysAreTypeTagged(t *testing.T) {
	s := Attribute[string]("width")
	n := Attribute[int]("width")
	if s.Name() != n.Name() {
		t.Errorf("names differ: %q vs %q", s.Name(), n.Name())
	}
	if Count(0) < 2 {
		t.Error("expected both keys in the registry")
	}
}

func TestAttributeAndPropertyAreDistinct(t *testing.T) {
	a := Attribute[string]("width")
	p := Property[string]("width")
	if a.Kind() != KindAttribute || p.Kind() != KindStyle {
		t.Errorf("kinds = %v, %v", a.Kind(), p.Kind())
	}
	if a.String() != "attribute:width" || p.String() != "style:width" {
		t.Errorf("strings = %q, %q", a.String(), p.String())
	}
}

func TestAtomInterning(t *testing.T) {
	k := Attribute[string]("class")
	if k.Atom() != atom.Class {
		t.Errorf("expected atom.Class, got %v", k.Atom())
	}

	custom := Attribute[string]("aria-label")
	if custom.Atom() != 0 {
		t.Errorf("expected no atom for aria-label, got %v", custom.Atom())
	}
}

func TestStyleKeysHaveNoAtom(t *testing.T) {
	for _, name := range []string{"width", "height", "color", "border"} {
		if a := Property[string](name).Atom(); a != 0 {
			t.Errorf("style %q carries atom %v", name, a)
		}
		if Attribute[string](name).Atom() == 0 {
			t.Errorf("attribute %q should carry an atom", name)
		}
	}
}

func TestEmptyNamePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for empty name")
		}
	}()
	Attribute[string]("   ")
}

func TestConcurrentIntern(t *testing.T) {
	var wg sync.WaitGroup
	keys := make([]*Key[float64], 32)
	for i := range keys {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			keys[i] = Property[float64]("opacity-test")
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(keys); i++ {
		if keys[i] != keys[0] {
			t.Fatal("concurrent interning produced different keys")
		}
	}
}

func TestKeysListing(t *testing.T) {
	Property[string]("zz-listing")
	Attribute[string]("zz-listing")

	infos := Keys()
	for i := 1; i < len(infos); i++ {
		prev, cur := infos[i-1], infos[i]
		if prev.Kind > cur.Kind || (prev.Kind == cur.Kind && prev.Name > cur.Name) {
			t.Fatalf("keys not sorted at %d: %+v then %+v", i, prev, cur)
		}
	}

	found := 0
	for _, info := range infos {
		if info.Name == "zz-listing" {
			found++
			if info.Type != "string" {
				t.Errorf("Type = %q, want string", info.Type)
			}
		}
	}
	if found != 2 {
		t.Errorf("expected 2 zz-listing keys, got %d", found)
	}
}
