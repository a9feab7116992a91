// Package errors provides the structured, coded errors used by vbind.
//
// Every error carries a code from the registry (e.g. "E101") that maps to a
// category, a short message and a longer explanation. Validation errors are
// raised when a value object is constructed, never while a binding is being
// re-applied, so a malformed string is never written to a sink.
//
// # Error Categories
//
//   - validation: a value is outside its legal set (bad length, colour, enum)
//   - config: vbind.yaml could not be read or is invalid
//   - export: a snapshot could not be written
//   - runtime: preview server failures
//
// # Usage
//
//	err := errors.New("E101").
//	    WithValue("12pz").
//	    WithSuggestion("Use one of px, em, rem, %, vw, vh, ch, fr")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E101: Invalid CSS length
//	//
//	//   Value: "12pz"
//	//
//	//   Hint: Use one of px, em, rem, %, vw, vh, ch, fr
//
// Two errors with the same code match under errors.Is, so packages export
// sentinels built with New and callers test against them.
package errors
