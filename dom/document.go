package dom

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a selector matches nothing.
var ErrNotFound = errors.New("dom: no matching element")

// Document owns a node tree and its focus state.
type Document struct {
	root    *Node
	focused *Node
	forms   map[*Node]*Form
}

// NewDocument takes ownership of root. A root that belongs to another
// document is moved.
func NewDocument(root *Node) *Document {
	if root == nil {
		root = New("html")
	}
	root.detach()
	d := &Document{root: root, forms: make(map[*Node]*Form)}
	root.doc = d
	return d
}

// Root returns the document's root node.
func (d *Document) Root() *Node {
	return d.root
}

// QueryAll returns every element matching sel in document order, the root
// included.
func (d *Document) QueryAll(sel string) ([]*Node, error) {
	s, err := Compile(sel)
	if err != nil {
		return nil, err
	}
	var out []*Node
	if s.Match(d.root) {
		out = append(out, d.root)
	}
	d.root.walk(func(n *Node) {
		if s.Match(n) {
			out = append(out, n)
		}
	})
	return out, nil
}

// Query returns the first element matching sel.
func (d *Document) Query(sel string) (*Node, error) {
	nodes, err := d.QueryAll(sel)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, sel)
	}
	return nodes[0], nil
}

// Form returns the form matched by sel. An empty selector picks the first
// form in the document. Repeated calls for the same element return the same
// *Form.
func (d *Document) Form(sel string) (*Form, error) {
	if sel == "" {
		sel = "form"
	}
	nodes, err := d.QueryAll(sel)
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		if n.Tag == "form" {
			return d.formFor(n), nil
		}
	}
	return nil, fmt.Errorf("%w: form %s", ErrNotFound, sel)
}

// Forms returns every form in document order.
func (d *Document) Forms() []*Form {
	nodes, _ := d.QueryAll("form")
	out := make([]*Form, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, d.formFor(n))
	}
	return out
}

func (d *Document) formFor(n *Node) *Form {
	if f, ok := d.forms[n]; ok {
		return f
	}
	f := &Form{node: n, doc: d}
	d.forms[n] = f
	return f
}

// Focused returns the element holding focus, or nil.
func (d *Document) Focused() *Node {
	return d.focused
}

// Tab moves focus to next, firing blur on the element that loses it. A nil
// next just blurs.
func (d *Document) Tab(next *Node) {
	prev := d.focused
	d.focused = next
	if prev != nil && prev != next {
		prev.Blur()
	}
}

// Blur removes focus from the focused element, firing its handlers.
func (d *Document) Blur() {
	d.Tab(nil)
}
