package dom

// Sink receives the writes for one element.
// Removing something that is not present is a no-op.
type Sink interface {
	SetAttribute(name, value string)
	RemoveAttribute(name string)
	SetStyleProperty(name, value string)
	RemoveStyleProperty(name string)
	SetText(text string)
}

// Container is implemented by sinks and documents that hold child nodes.
type Container interface {
	AppendChild(child Sink)
}

// Factory creates the sink of a new element.
type Factory interface {
	CreateElement(tag string) Sink
}

// Unwrapper is implemented by sinks that decorate another sink.
type Unwrapper interface {
	Unwrap() Sink
}

// HIDOf returns the hydration ID of s, or "" if s has none.
// Decorators are unwrapped.
func HIDOf(s Sink) string {
	for s != nil {
		if h, ok := s.(interface{ HID() string }); ok {
			return h.HID()
		}
		u, ok := s.(Unwrapper)
		if !ok {
			return ""
		}
		s = u.Unwrap()
	}
	return ""
}

// unwrapTo peels decorators off s until it finds a T.
func unwrapTo[T Sink](s Sink) (T, bool) {
	for s != nil {
		if t, ok := s.(T); ok {
			return t, true
		}
		u, ok := s.(Unwrapper)
		if !ok {
			break
		}
		s = u.Unwrap()
	}
	var zero T
	return zero, false
}
