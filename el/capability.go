package el

import "github.com/vango-dev/vbind/pkg/reactive"

// FormAssociated is implemented by elements that take part in form
// submission: Input, TextArea, Select, Button and Fieldset.
type FormAssociated interface {
	Node
	formAssociated()
	bindDisabled(v reactive.Value[bool])
}

// Focusable is implemented by elements that can receive focus without a
// tabindex: Input, TextArea, Select, Button, A and IFrame.
type Focusable interface {
	Node
	focusable()
}

// HasSource is implemented by elements with a src attribute.
type HasSource interface {
	Node
	hasSource()
}

// DisableAll binds the disabled attribute of every control to v. v is
// shared, so disposing a control does not release it; the caller does.
func DisableAll(v reactive.Value[bool], controls ...FormAssociated) {
	for _, c := range controls {
		if c != nil {
			c.bindDisabled(v)
		}
	}
}
