// Package el provides the typed element DSL.
//
// Each element type embeds the mixins for the attributes it accepts, so an
// attribute that does not apply to an element is a compile error rather
// than a runtime one:
//
//	area := el.NewTextArea(doc).
//		Rows(reactive.Static(attr.MustPositive(4))).
//		Placeholder(reactive.Static("Notes"))
//
//	el.NewButton(doc).Rows(...) // does not compile: buttons have no rows
//
// Builder methods take reactive.Value, so a constant, a Cell or a Derived
// can be passed anywhere. Reactive values keep the DOM in sync until the
// element is disposed.
//
// An element owns every Derived or combinator result handed to one of its
// builder methods, directly or as a fan-in input, and releases it on
// Dispose. Hand each element its own Derived; share Cells freely.
// DisableAll is the exception: its value is shared and left to the caller.
package el
