package formatvalidate

// Element is the host capability a form field exposes to the engine.
// Implementations must be comparable (typically pointer types) because the
// engine keys per-field state on them.
type Element interface {
	// ID returns the element id attribute, or "" when absent.
	ID() string

	// Attr returns an attribute value. Lookup is case-insensitive.
	Attr(name string) (string, bool)
	SetAttr(name, value string)

	Value() string
	SetValue(value string)

	Classes() []string
	HasClass(class string) bool
	AddClass(class string)
	RemoveClass(class string)

	Text() string
	SetText(text string)

	// Parent returns nil for a detached or root element.
	Parent() Element
	// Siblings returns the other element children of the parent.
	Siblings() []Element
	// AppendSibling creates an element with the given tag as the last child
	// of the parent and returns it. Returns nil when there is no parent.
	AppendSibling(tag string) Element
	// Remove detaches the element from its parent.
	Remove()

	Focus()
	OnBlur(fn func())
}

// Form is the host capability for a whole form.
type Form interface {
	// Fields returns every input-like element of the form in document order.
	Fields() []Element
	// Query resolves a selector against the owning document.
	Query(selector string) []Element
	// OnSubmit registers a handler; returning false cancels the submission.
	OnSubmit(fn func() bool)
}

// Optional distinguishes "not set" from "zero value".
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some returns a set Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// Get returns the wrapped value and whether it was set.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set
}

// OrDefault returns the wrapped value or the provided default.
func (o Optional[T]) OrDefault(defaultVal T) T {
	if o.Set {
		return o.Value
	}
	return defaultVal
}

// Outcome is the result of one pipeline run for a (field, rule) pair.
type Outcome struct {
	Valid       bool
	Reformatted bool
}
