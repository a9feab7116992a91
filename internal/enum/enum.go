// Package enum backs the keyword types of css and attr. A keyword type is a
// small integer whose zero value means unset; names[i-1] is its keyword.
package enum

import (
	"strings"

	"github.com/vango-dev/vbind/internal/errors"
)

// Name returns names[i-1], or "" when i is zero or out of range.
func Name(names []string, i uint8) string {
	if i == 0 || int(i) > len(names) {
		return ""
	}
	return names[i-1]
}

// Parse maps a keyword to its value. Matching ignores case and surrounding
// space. Unknown keywords return E106.
func Parse[T ~uint8](what string, names []string, s string) (T, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == t {
			return T(i + 1), nil
		}
	}
	return 0, errors.New("E106").
		WithValue(s).
		WithDetail(what + " accepts: " + strings.Join(names, ", "))
}
