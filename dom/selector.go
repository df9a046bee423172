package dom

import (
	"fmt"
	"strings"
)

// Selector is a parsed selector list. Supported syntax: type selectors and
// "*", #id, .class, [attr] and [attr=value] compounds, descendant
// combinators (whitespace) and comma-separated groups.
type Selector struct {
	groups [][]compound
}

type attrMatch struct {
	name  string
	value string
	exact bool // false for a bare [attr]
}

type compound struct {
	tag     string
	id      string
	classes []string
	attrs   []attrMatch
}

// Compile parses a selector.
func Compile(sel string) (*Selector, error) {
	s := &Selector{}
	for _, group := range strings.Split(sel, ",") {
		p := parser{src: strings.TrimSpace(group)}
		if p.src == "" {
			return nil, fmt.Errorf("selector %q: empty group", sel)
		}
		chain, err := p.chain()
		if err != nil {
			return nil, fmt.Errorf("selector %q: %w", sel, err)
		}
		s.groups = append(s.groups, chain)
	}
	return s, nil
}

// Match reports whether n matches any group.
func (s *Selector) Match(n *Node) bool {
	if n == nil || n.Type != ElementNode {
		return false
	}
	for _, chain := range s.groups {
		if matchChain(n, chain) {
			return true
		}
	}
	return false
}

// matchChain matches the last compound against n and the rest against
// ancestors, right to left.
func matchChain(n *Node, chain []compound) bool {
	last := len(chain) - 1
	if !chain[last].match(n) {
		return false
	}
	anc := n.parent
	for i := last - 1; i >= 0; i-- {
		for anc != nil && !chain[i].match(anc) {
			anc = anc.parent
		}
		if anc == nil {
			return false
		}
		anc = anc.parent
	}
	return true
}

func (c compound) match(n *Node) bool {
	if n.Type != ElementNode {
		return false
	}
	if c.tag != "" && c.tag != "*" && c.tag != n.Tag {
		return false
	}
	if c.id != "" && n.ID() != c.id {
		return false
	}
	for _, class := range c.classes {
		if !n.HasClass(class) {
			return false
		}
	}
	for _, a := range c.attrs {
		v, ok := n.Attr(a.name)
		if !ok || (a.exact && v != a.value) {
			return false
		}
	}
	return true
}

type parser struct {
	src string
	pos int
}

func (p *parser) chain() ([]compound, error) {
	var chain []compound
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return chain, nil
		}
		c, err := p.compound()
		if err != nil {
			return nil, err
		}
		chain = append(chain, c)
	}
}

func (p *parser) compound() (compound, error) {
	var c compound
	start := p.pos

	if p.peek() == '*' {
		p.pos++
		c.tag = "*"
	} else if isIdentChar(p.peek()) {
		c.tag = strings.ToLower(p.ident())
	}

	for p.pos < len(p.src) {
		switch p.peek() {
		case '#':
			p.pos++
			if c.id = p.ident(); c.id == "" {
				return c, fmt.Errorf("expected id at offset %d", p.pos)
			}
		case '.':
			p.pos++
			class := p.ident()
			if class == "" {
				return c, fmt.Errorf("expected class at offset %d", p.pos)
			}
			c.classes = append(c.classes, class)
		case '[':
			a, err := p.attr()
			if err != nil {
				return c, err
			}
			c.attrs = append(c.attrs, a)
		case ' ', '\t', '\n':
			return c, nil
		default:
			return c, fmt.Errorf("unexpected %q at offset %d", p.peek(), p.pos)
		}
	}

	if p.pos == start {
		return c, fmt.Errorf("empty compound at offset %d", p.pos)
	}
	return c, nil
}

func (p *parser) attr() (attrMatch, error) {
	p.pos++ // [
	p.skipSpace()
	a := attrMatch{name: p.ident()}
	if a.name == "" {
		return a, fmt.Errorf("expected attribute name at offset %d", p.pos)
	}
	p.skipSpace()

	if p.peek() == '=' {
		p.pos++
		p.skipSpace()
		a.exact = true
		if q := p.peek(); q == '"' || q == '\'' {
			end := strings.IndexByte(p.src[p.pos+1:], q)
			if end < 0 {
				return a, fmt.Errorf("unterminated string at offset %d", p.pos)
			}
			a.value = p.src[p.pos+1 : p.pos+1+end]
			p.pos += end + 2
		} else {
			a.value = p.ident()
		}
		p.skipSpace()
	}

	if p.peek() != ']' {
		return a, fmt.Errorf("expected ] at offset %d", p.pos)
	}
	p.pos++
	return a, nil
}

func (p *parser) ident() string {
	start := p.pos
	for p.pos < len(p.src) && isIdentChar(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *parser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t' || p.src[p.pos] == '\n') {
		p.pos++
	}
}

func isIdentChar(b byte) bool {
	return b == '-' || b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
