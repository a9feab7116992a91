// Package attr defines typed HTML attribute values and the attribute entries
// that bind them.
//
// Enumerated attributes use small keyword types whose zero value is unset.
// Counting attributes take Positive or NonNegative, which are validated when
// constructed:
//
//	rows, err := attr.NewPositive(4)
//	href, err := attr.ParseURL("/docs?page=2")
//
// Boolean attributes (disabled, hidden, reversed, ...) are present when true
// and removed when false.
package attr
