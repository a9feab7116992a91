package attr

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/vango-dev/vbind/internal/errors"
)

// Positive is an integer >= 1, as taken by cols, rows, size, colspan and
// rowspan. The zero Positive is unset.
type Positive struct {
	n int
}

// NewPositive validates n.
func NewPositive(n int) (Positive, error) {
	if n < 1 {
		return Positive{}, errors.New("E104").
			WithValue(strconv.Itoa(n)).
			WithSuggestion("The value must be at least 1")
	}
	return Positive{n}, nil
}

// MustPositive panics if n < 1.
func MustPositive(n int) Positive {
	p, err := NewPositive(n)
	if err != nil {
		panic(err)
	}
	return p
}

// Int returns the value, or 0 when unset.
func (p Positive) Int() int { return p.n }

func (p Positive) String() string {
	if p.n == 0 {
		return ""
	}
	return strconv.Itoa(p.n)
}

// NonNegative is an integer >= 0, as taken by maxlength, minlength and the
// image dimensions. The zero NonNegative is unset.
type NonNegative struct {
	n   int
	set bool
}

// NewNonNegative validates n.
func NewNonNegative(n int) (NonNegative, error) {
	if n < 0 {
		return NonNegative{}, errors.New("E104").
			WithValue(strconv.Itoa(n)).
			WithSuggestion("The value must not be negative")
	}
	return NonNegative{n: n, set: true}, nil
}

// MustNonNegative panics if n < 0.
func MustNonNegative(n int) NonNegative {
	v, err := NewNonNegative(n)
	if err != nil {
		panic(err)
	}
	return v
}

// Int returns the value.
func (v NonNegative) Int() int { return v.n }

func (v NonNegative) String() string {
	if !v.set {
		return ""
	}
	return strconv.Itoa(v.n)
}

// URL is a parsed URL in its serialized form. The zero URL is unset.
type URL struct {
	s string
}

// ParseURL validates s with net/url. Relative references are accepted.
func ParseURL(s string) (URL, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return URL{}, errors.New("E105").WithValue(s)
	}
	u, err := url.Parse(t)
	if err != nil {
		return URL{}, errors.New("E105").WithValue(s).Wrap(err)
	}
	return URL{u.String()}, nil
}

// MustURL panics if s does not parse.
func MustURL(s string) URL {
	u, err := ParseURL(s)
	if err != nil {
		panic(err)
	}
	return u
}

func (u URL) String() string { return u.s }

// Rels is the token list of the rel attribute. Invalid tokens are skipped.
type Rels []Rel

func (r Rels) String() string {
	parts := make([]string, 0, len(r))
	for _, rel := range r {
		if rel.Valid() {
			parts = append(parts, rel.String())
		}
	}
	return strings.Join(parts, " ")
}
