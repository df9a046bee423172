package dom

import (
	"slices"
	"strings"

	"github.com/Azhovan/formatvalidate"
)

// NodeType distinguishes element nodes from text nodes.
type NodeType int

const (
	ElementNode NodeType = iota
	TextNode
)

// Attribute is a single name/value pair. Names keep their original case.
type Attribute struct {
	Key string
	Val string
}

// Node is an element or text node. Elements implement
// formatvalidate.Element.
type Node struct {
	Type NodeType
	Tag  string // lower-case element name
	Data string // text content of a text node

	attrs    []Attribute
	parent   *Node
	children []*Node
	doc      *Document
	blur     []func()
}

var _ formatvalidate.Element = (*Node)(nil)

// New creates an element. attrs are alternating names and values; a
// trailing name without a value gets "".
func New(tag string, attrs ...string) *Node {
	n := &Node{Type: ElementNode, Tag: strings.ToLower(tag)}
	for i := 0; i < len(attrs); i += 2 {
		val := ""
		if i+1 < len(attrs) {
			val = attrs[i+1]
		}
		n.SetAttr(attrs[i], val)
	}
	return n
}

// NewText creates a text node.
func NewText(s string) *Node {
	return &Node{Type: TextNode, Data: s}
}

// Append adds children in order and returns n for chaining. A child that
// already has a parent is moved.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c == nil {
			continue
		}
		c.detach()
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

// Children returns the direct child nodes, text nodes included.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// ParentNode returns the parent node or nil.
func (n *Node) ParentNode() *Node {
	return n.parent
}

// Attrs returns the attributes in insertion order.
func (n *Node) Attrs() []Attribute {
	return slices.Clone(n.attrs)
}

func (n *Node) ID() string {
	id, _ := n.Attr("id")
	return id
}

// Attr looks up an attribute case-insensitively.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.attrs {
		if strings.EqualFold(a.Key, name) {
			return a.Val, true
		}
	}
	return "", false
}

func (n *Node) SetAttr(name, value string) {
	for i, a := range n.attrs {
		if strings.EqualFold(a.Key, name) {
			n.attrs[i].Val = value
			return
		}
	}
	n.attrs = append(n.attrs, Attribute{Key: name, Val: value})
}

// RemoveAttr deletes an attribute if present.
func (n *Node) RemoveAttr(name string) {
	n.attrs = slices.DeleteFunc(n.attrs, func(a Attribute) bool {
		return strings.EqualFold(a.Key, name)
	})
}

// Value returns the control value: text content for textarea, the selected
// option for select, the value attribute otherwise.
func (n *Node) Value() string {
	switch n.Tag {
	case "textarea":
		return n.Text()
	case "select":
		if opt := n.selectedOption(); opt != nil {
			return opt.optionValue()
		}
		return ""
	}
	v, _ := n.Attr("value")
	return v
}

func (n *Node) SetValue(value string) {
	switch n.Tag {
	case "textarea":
		n.SetText(value)
		return
	case "select":
		for _, opt := range n.options() {
			if opt.optionValue() == value {
				opt.SetAttr("selected", "")
			} else {
				opt.RemoveAttr("selected")
			}
		}
		return
	}
	n.SetAttr("value", value)
}

func (n *Node) options() []*Node {
	var opts []*Node
	n.walk(func(c *Node) {
		if c.Type == ElementNode && c.Tag == "option" {
			opts = append(opts, c)
		}
	})
	return opts
}

func (n *Node) selectedOption() *Node {
	opts := n.options()
	for _, o := range opts {
		if _, ok := o.Attr("selected"); ok {
			return o
		}
	}
	if len(opts) > 0 {
		return opts[0]
	}
	return nil
}

func (n *Node) optionValue() string {
	if v, ok := n.Attr("value"); ok {
		return v
	}
	return strings.TrimSpace(n.Text())
}

func (n *Node) Classes() []string {
	class, _ := n.Attr("class")
	return strings.Fields(class)
}

func (n *Node) HasClass(class string) bool {
	return slices.Contains(n.Classes(), class)
}

func (n *Node) AddClass(class string) {
	if class == "" || n.HasClass(class) {
		return
	}
	n.SetAttr("class", strings.Join(append(n.Classes(), class), " "))
}

// RemoveClass drops the class; the attribute goes away with the last one.
func (n *Node) RemoveClass(class string) {
	classes := n.Classes()
	kept := slices.DeleteFunc(classes, func(c string) bool { return c == class })
	if len(kept) == 0 {
		n.RemoveAttr("class")
		return
	}
	n.SetAttr("class", strings.Join(kept, " "))
}

// Text returns the concatenated text of all descendant text nodes.
func (n *Node) Text() string {
	if n.Type == TextNode {
		return n.Data
	}
	var b strings.Builder
	n.walk(func(c *Node) {
		if c.Type == TextNode {
			b.WriteString(c.Data)
		}
	})
	return b.String()
}

// SetText replaces all children with a single text node.
func (n *Node) SetText(text string) {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
	if text != "" {
		n.Append(NewText(text))
	}
}

func (n *Node) Parent() formatvalidate.Element {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// Siblings returns the other element children of the parent.
func (n *Node) Siblings() []formatvalidate.Element {
	if n.parent == nil {
		return nil
	}
	var out []formatvalidate.Element
	for _, c := range n.parent.children {
		if c != n && c.Type == ElementNode {
			out = append(out, c)
		}
	}
	return out
}

func (n *Node) AppendSibling(tag string) formatvalidate.Element {
	if n.parent == nil {
		return nil
	}
	sib := New(tag)
	n.parent.Append(sib)
	return sib
}

func (n *Node) Remove() {
	n.detach()
}

func (n *Node) detach() {
	if n.parent == nil {
		return
	}
	p := n.parent
	p.children = slices.DeleteFunc(p.children, func(c *Node) bool { return c == n })
	n.parent = nil
}

// Focus makes n the focused element of its document without firing blur
// handlers.
func (n *Node) Focus() {
	if d := n.document(); d != nil {
		d.focused = n
	}
}

func (n *Node) OnBlur(fn func()) {
	if fn != nil {
		n.blur = append(n.blur, fn)
	}
}

// Blur fires the blur handlers in registration order.
func (n *Node) Blur() {
	if d := n.document(); d != nil && d.focused == n {
		d.focused = nil
	}
	for _, fn := range slices.Clone(n.blur) {
		fn()
	}
}

func (n *Node) document() *Document {
	root := n
	for root.parent != nil {
		root = root.parent
	}
	return root.doc
}

// walk visits every descendant of n in document order, excluding n.
func (n *Node) walk(fn func(*Node)) {
	for _, c := range n.children {
		fn(c)
		c.walk(fn)
	}
}
