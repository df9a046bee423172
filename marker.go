package formatvalidate

// Mark carries the resolved parameters for one (field, rule) state change.
type Mark struct {
	Rule         RuleKind
	Key          string // field key, used to tag rendered messages
	Message      string
	InvalidClass string
}

// Marker renders and removes invalid state for a field.
type Marker interface {
	MarkInvalid(el Element, m Mark)
	ClearInvalid(el Element, m Mark)
}

// MarkerFuncs adapts plain functions to Marker. A nil function falls back to
// DOMMarker.
type MarkerFuncs struct {
	Invalid func(el Element, m Mark)
	Valid   func(el Element, m Mark)
}

func (f MarkerFuncs) MarkInvalid(el Element, m Mark) {
	if f.Invalid == nil {
		DOMMarker{}.MarkInvalid(el, m)
		return
	}
	f.Invalid(el, m)
}

func (f MarkerFuncs) ClearInvalid(el Element, m Mark) {
	if f.Valid == nil {
		DOMMarker{}.ClearInvalid(el, m)
		return
	}
	f.Valid(el, m)
}

// Attributes and classes written by DOMMarker.
const (
	MessageTag   = "span"
	MessageClass = "help-inline"
	AttrRule     = "data-fv-rule"
	AttrFor      = "data-fv-for"
)

// DOMMarker renders one inline message per (field, rule) as a sibling of
// the field and tags the field's control group (its grandparent) with the
// invalid class.
type DOMMarker struct{}

func (DOMMarker) MarkInvalid(el Element, m Mark) {
	if msg := el.AppendSibling(MessageTag); msg != nil {
		msg.AddClass(MessageClass)
		if m.InvalidClass != "" {
			msg.AddClass(m.InvalidClass)
		}
		msg.SetAttr(AttrRule, m.Rule.String())
		msg.SetAttr(AttrFor, m.Key)
		msg.SetText(m.Message)
	}
	if g := group(el); g != nil && m.InvalidClass != "" {
		g.AddClass(m.InvalidClass)
	}
}

// ClearInvalid removes the messages this field rendered for m.Rule. The
// group class is dropped only once no message carrying it is left beside
// the field, whichever field rendered it.
func (DOMMarker) ClearInvalid(el Element, m Mark) {
	remaining := false
	for _, sib := range el.Siblings() {
		owner, ok := sib.Attr(AttrFor)
		if !ok {
			continue
		}
		if rule, _ := sib.Attr(AttrRule); owner == m.Key && rule == m.Rule.String() {
			sib.Remove()
			continue
		}
		if sib.HasClass(m.InvalidClass) {
			remaining = true
		}
	}
	if g := group(el); g != nil && !remaining && m.InvalidClass != "" {
		g.RemoveClass(m.InvalidClass)
	}
}

func group(el Element) Element {
	p := el.Parent()
	if p == nil {
		return nil
	}
	return p.Parent()
}
