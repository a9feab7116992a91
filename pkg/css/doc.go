// Package css defines typed CSS values and the style property entries that
// bind them.
//
// Values are validated when they are constructed. A Length, Color or keyword
// that exists is always serializable; the zero value of each type means
// "unset" and removes the property when bound.
//
//	w := css.Px(120)
//	c, err := css.ParseColor("#0af")
//	b := css.Border{Width: css.Some(css.Px(1)), Style: css.BorderStyleSolid}
//	b.String() // "1px solid"
//
// Shorthands with up to four sides collapse the way the CSS serializer does:
// FourSides(css.Px(1), css.Px(2), css.Px(1), css.Px(2)) is "1px 2px".
package css
