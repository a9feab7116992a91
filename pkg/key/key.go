package key

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"golang.org/x/net/html/atom"
)

// Kind distinguishes attribute keys from style property keys.
type Kind uint8

const (
	KindAttribute Kind = iota + 1
	KindStyle

	// KindText labels text content bindings in observer callbacks. No keys
	// of this kind are registered.
	KindText
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindAttribute:
		return "attribute"
	case KindStyle:
		return "style"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Key identifies one attribute or style property for values of type T.
// Keys carry no mutable state.
type Key[T any] struct {
	kind Kind
	name string
	atom atom.Atom
}

// Name returns the canonical lower-case name.
func (k *Key[T]) Name() string { return k.name }

// Kind returns whether the key names an attribute or a style property.
func (k *Key[T]) Kind() Kind { return k.kind }

// Atom returns the interned HTML atom for an attribute name, or 0 when the
// name is not a known HTML atom. Style keys never carry an atom.
func (k *Key[T]) Atom() atom.Atom { return k.atom }

// String returns "kind:name".
func (k *Key[T]) String() string {
	return k.kind.String() + ":" + k.name
}

// KeyInfo describes a registered key.
type KeyInfo struct {
	Kind Kind
	Name string
	Type string
}

// registryKey is the memoization key.
type registryKey struct {
	kind Kind
	name string
	typ  reflect.Type
}

// registry maps registryKey to *Key[T]. Entries are never removed.
var registry sync.Map

// Attribute returns the interned attribute key for name and value type T.
func Attribute[T any](name string) *Key[T] {
	return intern[T](KindAttribute, name)
}

// Property returns the interned style property key for name and value type T.
func Property[T any](name string) *Key[T] {
	return intern[T](KindStyle, name)
}

func intern[T any](kind Kind, name string) *Key[T] {
	name = normalize(name)
	if name == "" {
		panic(fmt.Sprintf("vbind: empty %s key name", kind))
	}

	rk := registryKey{kind: kind, name: name, typ: reflect.TypeOf((*T)(nil)).Elem()}
	if k, ok := registry.Load(rk); ok {
		return k.(*Key[T])
	}

	k := &Key[T]{kind: kind, name: name}
	if kind == KindAttribute {
		if a := atom.Lookup([]byte(name)); a != 0 {
			k.atom = a
			k.name = a.String()
		}
	}

	actual, _ := registry.LoadOrStore(rk, k)
	return actual.(*Key[T])
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Keys returns every registered key, sorted by kind, name and type.
func Keys() []KeyInfo {
	var out []KeyInfo
	registry.Range(func(k, _ any) bool {
		rk := k.(registryKey)
		out = append(out, KeyInfo{Kind: rk.kind, Name: rk.name, Type: rk.typ.String()})
		return true
	})

	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Type < out[j].Type
	})
	return out
}

// Count returns the number of registered keys of the given kind.
// A zero kind counts every key.
func Count(kind Kind) int {
	n := 0
	registry.Range(func(k, _ any) bool {
		if kind == 0 || k.(registryKey).kind == kind {
			n++
		}
		return true
	})
	return n
}
