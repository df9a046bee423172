package dom

import (
	"strings"

	"github.com/Azhovan/formatvalidate"
)

// Form wraps a <form> element.
type Form struct {
	node   *Node
	doc    *Document
	submit []func() bool
}

var _ formatvalidate.Form = (*Form)(nil)

// Node returns the underlying <form> element.
func (f *Form) Node() *Node {
	return f.node
}

// Fields returns the form's controls in document order: input elements
// other than buttons and hidden inputs, textarea and select.
func (f *Form) Fields() []formatvalidate.Element {
	var out []formatvalidate.Element
	for _, n := range f.Controls() {
		out = append(out, n)
	}
	return out
}

// Controls is Fields with concrete node types.
func (f *Form) Controls() []*Node {
	var out []*Node
	f.node.walk(func(n *Node) {
		if isControl(n) {
			out = append(out, n)
		}
	})
	return out
}

func isControl(n *Node) bool {
	if n.Type != ElementNode {
		return false
	}
	switch n.Tag {
	case "textarea", "select":
		return true
	case "input":
		typ, _ := n.Attr("type")
		switch strings.ToLower(strings.TrimSpace(typ)) {
		case "submit", "button", "reset", "image", "hidden":
			return false
		}
		return true
	}
	return false
}

// Query resolves sel against the whole document. Invalid selectors match
// nothing.
func (f *Form) Query(sel string) []formatvalidate.Element {
	nodes, err := f.doc.QueryAll(sel)
	if err != nil {
		return nil
	}
	out := make([]formatvalidate.Element, len(nodes))
	for i, n := range nodes {
		out[i] = n
	}
	return out
}

func (f *Form) OnSubmit(fn func() bool) {
	if fn != nil {
		f.submit = append(f.submit, fn)
	}
}

// Submit runs every submit handler and reports whether the submission went
// ahead. Any handler returning false cancels it.
func (f *Form) Submit() bool {
	ok := true
	for _, fn := range f.submit {
		if !fn() {
			ok = false
		}
	}
	return ok
}
