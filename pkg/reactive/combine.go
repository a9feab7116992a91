package reactive

// Combine2 fans two values into one. Each reactive input is followed on its
// own; when one changes, f is re-evaluated with that input's new value and
// the latest value of the other input. If neither input is reactive the
// result is a constant.
//
// Inputs may change on different goroutines. The result always reflects
// the last recomputation, never an older one published late.
//
// The returned value may hold upstream subscriptions; pass it to Release
// when it is no longer needed.
func Combine2[A, B, R any](a Value[A], b Value[B], f func(A, B) R) Value[R] {
	if !IsReactive(a) && !IsReactive(b) {
		return Static(f(a.Get(), b.Get()))
	}

	va, vb := a.Get(), b.Get()
	g := newFanIn(func() R { return f(va, vb) }, a, b)

	follow(g.d, a, func(v A) { g.update(func() { va = v }) })
	follow(g.d, b, func(v B) { g.update(func() { vb = v }) })

	return g.start()
}

// Combine3 is Combine2 for three inputs.
func Combine3[A, B, C, R any](a Value[A], b Value[B], c Value[C], f func(A, B, C) R) Value[R] {
	if !IsReactive(a) && !IsReactive(b) && !IsReactive(c) {
		return Static(f(a.Get(), b.Get(), c.Get()))
	}

	va, vb, vc := a.Get(), b.Get(), c.Get()
	g := newFanIn(func() R { return f(va, vb, vc) }, a, b, c)

	follow(g.d, a, func(v A) { g.update(func() { va = v }) })
	follow(g.d, b, func(v B) { g.update(func() { vb = v }) })
	follow(g.d, c, func(v C) { g.update(func() { vc = v }) })

	return g.start()
}

// Combine4 is Combine2 for four inputs, enough for four-sided shorthands
// such as margin or border-radius.
func Combine4[A, B, C, D, R any](a Value[A], b Value[B], c Value[C], dv Value[D], f func(A, B, C, D) R) Value[R] {
	if !IsReactive(a) && !IsReactive(b) && !IsReactive(c) && !IsReactive(dv) {
		return Static(f(a.Get(), b.Get(), c.Get(), dv.Get()))
	}

	va, vb, vc, vd := a.Get(), b.Get(), c.Get(), dv.Get()
	g := newFanIn(func() R { return f(va, vb, vc, vd) }, a, b, c, dv)

	follow(g.d, a, func(v A) { g.update(func() { va = v }) })
	follow(g.d, b, func(v B) { g.update(func() { vb = v }) })
	follow(g.d, c, func(v C) { g.update(func() { vc = v }) })
	follow(g.d, dv, func(v D) { g.update(func() { vd = v }) })

	return g.start()
}

// CombineAll fans any number of same-typed values into one. f receives a
// fresh slice holding the latest value of every input, in input order.
func CombineAll[T, R any](vals []Value[T], f func([]T) R) Value[R] {
	latest := make([]T, len(vals))
	reactive := false
	for i, v := range vals {
		latest[i] = v.Get()
		if IsReactive(v) {
			reactive = true
		}
	}

	snapshot := func() []T {
		out := make([]T, len(latest))
		copy(out, latest)
		return out
	}

	if !reactive {
		return Static(f(snapshot()))
	}

	sources := make([]any, len(vals))
	for i, v := range vals {
		sources[i] = v
	}

	g := newFanIn(func() R { return f(snapshot()) }, sources...)

	for i, v := range vals {
		i := i
		follow(g.d, v, func(x T) { g.update(func() { latest[i] = x }) })
	}

	return g.start()
}
