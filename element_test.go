package formatvalidate

import (
	"slices"
	"strings"
)

// fakeElement is a minimal Element for tests that cannot use the dom
// package.
type fakeElement struct {
	id       string
	attrs    map[string]string
	value    string
	classes  []string
	text     string
	parent   *fakeElement
	children []*fakeElement
	focused  int
	blur     []func()
}

func newFake(id string, classes ...string) *fakeElement {
	return &fakeElement{id: id, attrs: map[string]string{}, classes: classes}
}

func (f *fakeElement) with(name, value string) *fakeElement {
	f.SetAttr(name, value)
	return f
}

func (f *fakeElement) adopt(children ...*fakeElement) *fakeElement {
	for _, c := range children {
		c.parent = f
		f.children = append(f.children, c)
	}
	return f
}

func (f *fakeElement) ID() string { return f.id }

func (f *fakeElement) Attr(name string) (string, bool) {
	v, ok := f.attrs[strings.ToLower(name)]
	return v, ok
}

func (f *fakeElement) SetAttr(name, value string) { f.attrs[strings.ToLower(name)] = value }
func (f *fakeElement) Value() string              { return f.value }
func (f *fakeElement) SetValue(v string)          { f.value = v }
func (f *fakeElement) Classes() []string          { return slices.Clone(f.classes) }
func (f *fakeElement) HasClass(c string) bool     { return slices.Contains(f.classes, c) }

func (f *fakeElement) AddClass(c string) {
	if !f.HasClass(c) {
		f.classes = append(f.classes, c)
	}
}

func (f *fakeElement) RemoveClass(c string) {
	f.classes = slices.DeleteFunc(f.classes, func(x string) bool { return x == c })
}

func (f *fakeElement) Text() string     { return f.text }
func (f *fakeElement) SetText(t string) { f.text = t }
func (f *fakeElement) Focus()           { f.focused++ }
func (f *fakeElement) OnBlur(fn func()) { f.blur = append(f.blur, fn) }

func (f *fakeElement) Parent() Element {
	if f.parent == nil {
		return nil
	}
	return f.parent
}

func (f *fakeElement) Siblings() []Element {
	if f.parent == nil {
		return nil
	}
	var out []Element
	for _, c := range f.parent.children {
		if c != f {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeElement) AppendSibling(string) Element {
	if f.parent == nil {
		return nil
	}
	sib := newFake("")
	f.parent.adopt(sib)
	return sib
}

func (f *fakeElement) Remove() {
	if f.parent == nil {
		return
	}
	p := f.parent
	p.children = slices.DeleteFunc(p.children, func(c *fakeElement) bool { return c == f })
	f.parent = nil
}

func (f *fakeElement) blurNow() {
	for _, fn := range f.blur {
		fn()
	}
}

// messages returns the text of every sibling message tagged for rule.
func (f *fakeElement) messages(rule RuleKind) []string {
	var out []string
	for _, s := range f.Siblings() {
		if r, _ := s.Attr(AttrRule); r == rule.String() {
			out = append(out, s.Text())
		}
	}
	return out
}

// grouped wraps el as group > controls > el and returns the group.
func grouped(el *fakeElement) *fakeElement {
	return newFake("").adopt(newFake("").adopt(el))
}

type fakeForm struct {
	fields []*fakeElement
	submit []func() bool
}

func (f *fakeForm) Fields() []Element {
	out := make([]Element, len(f.fields))
	for i, el := range f.fields {
		out[i] = el
	}
	return out
}

func (f *fakeForm) Query(sel string) []Element {
	id := strings.TrimPrefix(sel, "#")
	for _, el := range f.fields {
		if el.id == id {
			return []Element{el}
		}
	}
	return nil
}

func (f *fakeForm) OnSubmit(fn func() bool) { f.submit = append(f.submit, fn) }
