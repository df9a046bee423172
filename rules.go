package formatvalidate

import (
	"strings"

	"github.com/Azhovan/formatvalidate/transform"
)

// RuleKind identifies one built-in rule. The set is closed; each kind is
// backed by an immutable definition in the rule table.
type RuleKind int

// Rules in binding order. A field carrying several marker classes runs its
// pipelines in this order.
const (
	RuleRequired RuleKind = iota + 1
	RuleMinLength
	RulePostalCode
	RulePhone
	RuleMustMatch
	RuleCurrency
	RuleEmail
	RuleInteger
	RuleSocialSec
	RuleURL
	RuleCapitalize
	RuleCapitalizeFirst
	RuleNoWhiteSpace
	RuleUpperCase
	RuleLowerCase
)

// Well-known parameter names.
const (
	ParamMessage             = "message"
	ParamInvalidClass        = "invalidClass"
	ParamKeepFocus           = "keepFocus"
	ParamShowConsoleMessages = "showConsoleMessages"
	ParamLength              = "length"
	ParamOther               = "other"
)

// Shape describes how a rule treats a value.
type Shape string

const (
	ShapeValidate       Shape = "validate"
	ShapeValidateFormat Shape = "validate+format"
	ShapeFormat         Shape = "format"
	ShapeCrossField     Shape = "cross-field"
)

type paramSpec struct {
	name    string
	numeric bool // must parse as a non-negative integer
}

type ruleDef struct {
	kind       RuleKind
	name       string
	shape      Shape
	params     []paramSpec
	check      func(value string, params map[string]string) bool
	format     transform.Func
	allowEmpty bool
	message    string
}

var (
	ruleTable  = buildRuleTable()
	rulesByKey = indexRules(ruleTable)
)

func buildRuleTable() []ruleDef {
	return []ruleDef{
		{
			kind:    RuleRequired,
			name:    "fvRequired",
			shape:   ShapeValidate,
			check:   isPresent,
			message: "This field is required",
		},
		{
			kind:       RuleMinLength,
			name:       "fvMinLength",
			shape:      ShapeValidate,
			params:     []paramSpec{{name: ParamLength, numeric: true}},
			check:      hasMinLength,
			allowEmpty: true,
			message:    "Not long enough",
		},
		{
			kind:       RulePostalCode,
			name:       "fvPostalCode",
			shape:      ShapeValidateFormat,
			check:      matches(postalCodeRegex),
			format:     transform.PostalCode,
			allowEmpty: true,
			message:    "Invalid postal code, must be in A0A 0A0 format",
		},
		{
			kind:       RulePhone,
			name:       "fvPhone",
			shape:      ShapeValidateFormat,
			check:      matches(phoneRegex),
			format:     transform.Phone,
			allowEmpty: true,
			message:    "Invalid phone number, must be in (000)000-0000 format",
		},
		{
			kind:    RuleMustMatch,
			name:    "fvMustMatch",
			shape:   ShapeCrossField,
			params:  []paramSpec{{name: ParamOther}},
			message: "Fields must match",
		},
		{
			kind:       RuleCurrency,
			name:       "fvCurrency",
			shape:      ShapeValidateFormat,
			check:      matches(currencyRegex),
			format:     transform.Currency,
			allowEmpty: true,
			message:    "Not a valid amount",
		},
		{
			kind:       RuleEmail,
			name:       "fvEmail",
			shape:      ShapeValidateFormat,
			check:      matches(emailRegex),
			format:     transform.Trim,
			allowEmpty: true,
			message:    "Not a valid email address",
		},
		{
			kind:       RuleInteger,
			name:       "fvInteger",
			shape:      ShapeValidate,
			check:      matches(integerRegex),
			allowEmpty: true,
			message:    "Not a valid integer",
		},
		{
			kind:       RuleSocialSec,
			name:       "fvSocialSec",
			shape:      ShapeValidateFormat,
			check:      matches(socialSecRegex),
			format:     transform.SocialSec,
			allowEmpty: true,
			message:    "Invalid social insurance number, must be in 000 000 000 format",
		},
		{
			kind:       RuleURL,
			name:       "fvURL",
			shape:      ShapeValidateFormat,
			check:      matches(urlRegex),
			format:     transform.URL,
			allowEmpty: true,
			message:    "Not a valid URL",
		},
		{kind: RuleCapitalize, name: "fvCapitalize", shape: ShapeFormat, format: transform.CapitalizeWords},
		{kind: RuleCapitalizeFirst, name: "fvCapitalizeFirst", shape: ShapeFormat, format: transform.CapitalizeFirst},
		{kind: RuleNoWhiteSpace, name: "fvNoWhiteSpace", shape: ShapeFormat, format: transform.Trim},
		{kind: RuleUpperCase, name: "fvUpperCase", shape: ShapeFormat, format: transform.Upper},
		{kind: RuleLowerCase, name: "fvLowerCase", shape: ShapeFormat, format: transform.Lower},
	}
}

func indexRules(defs []ruleDef) map[string]RuleKind {
	idx := make(map[string]RuleKind, len(defs))
	for _, d := range defs {
		idx[d.name] = d.kind
	}
	return idx
}

func (k RuleKind) def() *ruleDef {
	if k < RuleRequired || int(k) > len(ruleTable) {
		return nil
	}
	return &ruleTable[k-1]
}

// String returns the rule's marker class name.
func (k RuleKind) String() string {
	if d := k.def(); d != nil {
		return d.name
	}
	return "unknown"
}

// DefaultMessage returns the built-in error message, or "" for format-only rules.
func (k RuleKind) DefaultMessage() string {
	if d := k.def(); d != nil {
		return d.message
	}
	return ""
}

// RuleInfo is a read-only description of a rule definition.
type RuleInfo struct {
	Kind           RuleKind
	Name           string
	Shape          Shape
	Params         []string
	AllowEmpty     bool
	DefaultMessage string
}

// Describe returns the rule's definition.
func (k RuleKind) Describe() RuleInfo {
	d := k.def()
	if d == nil {
		return RuleInfo{Kind: k, Name: k.String()}
	}
	params := make([]string, 0, len(d.params))
	for _, p := range d.params {
		params = append(params, p.name)
	}
	return RuleInfo{
		Kind:           k,
		Name:           d.name,
		Shape:          d.shape,
		Params:         params,
		AllowEmpty:     d.allowEmpty,
		DefaultMessage: d.message,
	}
}

// Rules returns every rule in binding order.
func Rules() []RuleKind {
	kinds := make([]RuleKind, len(ruleTable))
	for i, d := range ruleTable {
		kinds[i] = d.kind
	}
	return kinds
}

// LookupRule finds a rule by marker class name. Matching is exact first,
// then case-insensitive.
func LookupRule(name string) (RuleKind, bool) {
	if k, ok := rulesByKey[name]; ok {
		return k, true
	}
	for _, d := range ruleTable {
		if strings.EqualFold(d.name, name) {
			return d.kind, true
		}
	}
	return 0, false
}
