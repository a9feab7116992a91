package dom

import "github.com/vango-dev/vbind/pkg/key"

// Observer is notified of binding activity. Implementations must be safe for
// concurrent use; Applied runs on whichever goroutine changed the input.
type Observer interface {
	// BindingCreated is called once per bound entry.
	BindingCreated(kind key.Kind, name string, reactive bool)
	// Applied is called for every write, including the initial one.
	Applied(kind key.Kind, name string)
	// BindingReleased is called when an element is disposed, with the
	// number of live subscriptions that were cancelled.
	BindingReleased(n int)
}

type nopObserver struct{}

func (nopObserver) BindingCreated(key.Kind, string, bool) {}
func (nopObserver) Applied(key.Kind, string)              {}
func (nopObserver) BindingReleased(int)                   {}

// observerOf returns the observer a factory provides, or a no-op.
func observerOf(f Factory) Observer {
	if p, ok := f.(interface{ Observer() Observer }); ok {
		if o := p.Observer(); o != nil {
			return o
		}
	}
	return nopObserver{}
}
