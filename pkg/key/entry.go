package key

import (
	"fmt"
	"strconv"
	"strings"
)

// Codec turns a typed value into the string the DOM expects. A false second
// result means the value is absent: the attribute or property is removed.
// Codecs are pure and stateless.
type Codec[T any] func(T) (string, bool)

// Entry binds a key to its codec.
type Entry[T any] struct {
	Key   *Key[T]
	Codec Codec[T]
}

// NewAttr declares an attribute entry.
func NewAttr[T any](name string, codec Codec[T]) Entry[T] {
	return Entry[T]{Key: Attribute[T](name), Codec: codec}
}

// NewStyle declares a style property entry.
func NewStyle[T any](name string, codec Codec[T]) Entry[T] {
	return Entry[T]{Key: Property[T](name), Codec: codec}
}

// Name returns the key name.
func (e Entry[T]) Name() string { return e.Key.Name() }

// Kind returns the key kind.
func (e Entry[T]) Kind() Kind { return e.Key.Kind() }

// Encode applies the codec.
func (e Entry[T]) Encode(v T) (string, bool) {
	return e.Codec(v)
}

// String encodes a string as is. The empty string is still present.
func String(v string) (string, bool) { return v, true }

// NonEmpty encodes a string, treating the empty string as absent.
func NonEmpty(v string) (string, bool) { return v, v != "" }

// Int encodes an int in base 10.
func Int(v int) (string, bool) { return strconv.Itoa(v), true }

// Float encodes a float64 in its shortest form.
func Float(v float64) (string, bool) {
	return strconv.FormatFloat(v, 'f', -1, 64), true
}

// Bool encodes a boolean attribute: present with an empty value when true,
// removed when false.
func Bool(v bool) (string, bool) { return "", v }

// Enumerated encodes a boolean as the keywords "true" and "false", as used by
// contenteditable, draggable, spellcheck and aria-* attributes.
func Enumerated(v bool) (string, bool) {
	if v {
		return "true", true
	}
	return "false", true
}

// Stringer encodes any fmt.Stringer. An empty result is absent.
func Stringer[T fmt.Stringer](v T) (string, bool) {
	s := v.String()
	return s, s != ""
}

// List returns a codec that joins a string slice with sep and treats an empty
// slice as absent.
func List(sep string) Codec[[]string] {
	return func(v []string) (string, bool) {
		parts := make([]string, 0, len(v))
		for _, s := range v {
			if s = strings.TrimSpace(s); s != "" {
				parts = append(parts, s)
			}
		}
		if len(parts) == 0 {
			return "", false
		}
		return strings.Join(parts, sep), true
	}
}
