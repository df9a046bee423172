package formatvalidate

import "fmt"

// fieldState is the engine's view of one element: the marks it currently
// renders and the configuration defects already reported for it.
type fieldState struct {
	el      Element
	key     string
	rules   []RuleKind
	failing map[RuleKind]failure
	warned  map[RuleKind]bool
}

// failure is a rendered mark plus where its parameters came from.
type failure struct {
	mark        Mark
	messageFrom ParamSource
	classFrom   ParamSource
}

// binding ties one rule to one field. Each binding owns its own message.
type binding struct {
	field *fieldState
	rule  RuleKind
}

func newFieldState(el Element, key string) *fieldState {
	return &fieldState{
		el:      el,
		key:     key,
		failing: make(map[RuleKind]failure),
		warned:  make(map[RuleKind]bool),
	}
}

// rulesFor returns the rules selected by an element's marker classes in
// binding order. Class matching is case-sensitive.
func rulesFor(el Element) []RuleKind {
	selected := make(map[RuleKind]bool)
	for _, class := range el.Classes() {
		if k, ok := rulesByKey[class]; ok {
			selected[k] = true
		}
	}

	var kinds []RuleKind
	for _, d := range ruleTable {
		if selected[d.kind] {
			kinds = append(kinds, d.kind)
		}
	}
	return kinds
}

// dataAttr names the markup attribute carrying a rule parameter.
func dataAttr(rule RuleKind, param string) string {
	return "data-" + rule.String() + "-" + param
}

// fieldKey identifies a field in messages and reports: id, then name, then
// its position in the form. A negative index numbers must-match companions
// that were found outside the bound fields.
func fieldKey(el Element, index int) string {
	if id := el.ID(); id != "" {
		return id
	}
	if name, ok := el.Attr("name"); ok && name != "" {
		return name
	}
	if index < 0 {
		return fmt.Sprintf("field-c%d", -index)
	}
	return fmt.Sprintf("field-%d", index)
}
