// Package reactive provides the value cells that drive attribute and style
// bindings.
//
// # Core Types
//
// Cell[T] is a mutable reactive value:
//
//	width := reactive.NewCell(css.Px(120))
//	w := width.Get()
//	width.Set(css.Px(240)) // every subscriber runs, in subscription order
//
// Derived[T] mirrors a function of one or more sources:
//
//	label := reactive.Map(count, func(n int) string { return strconv.Itoa(n) })
//
// Value[T] is what builder methods accept. It is either a constant
// (reactive.Static) or anything implementing Source[T] (Cell, Derived):
//
//	reactive.Observe(v, func(s string) { sink.SetAttribute("title", s) })
//
// # Fan-in
//
// Combine2, Combine3, Combine4 and CombineAll subscribe to each reactive
// input independently and recompute from the latest value of every input
// whenever any one of them changes.
//
// # Lifetime
//
// Listen returns a *Subscription that can be cancelled. A Scope collects
// subscriptions and child scopes and cancels all of them on Dispose.
//
// # Notification
//
// Notification is synchronous. A Set issued from inside a subscriber of the
// same cell does not recurse: the value is stored, the running pass
// completes, and a fresh pass delivers the latest value to the subscriber
// list as it stands at that point.
//
// # Thread Safety
//
// Cells guard their value and subscriber list with a mutex and call
// subscribers with the lock released, so they may be shared between
// goroutines. In the browser everything runs on one goroutine and the locks
// are uncontended.
package reactive
