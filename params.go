package formatvalidate

// Param is one resolved parameter value. It is computed fresh for every
// pipeline run and never cached.
type Param struct {
	Name   string
	Raw    string
	Source ParamSource
}

// Found reports whether any tier produced a value.
func (p Param) Found() bool {
	return p.Source != SourceUnset
}

// Bool coerces the value: the literal "false" is false, any other present
// value is true. Unresolved parameters are false.
func (p Param) Bool() bool {
	return p.Found() && p.Raw != "false"
}

// Int parses the value as a non-negative integer.
func (p Param) Int() (int, bool) {
	if !p.Found() {
		return 0, false
	}
	return parseCount(p.Raw)
}

// resolver applies the parameter precedence chain:
// field attribute > custom message / config setting > built-in default.
type resolver struct {
	cfg Config
}

func (r resolver) resolve(el Element, rule RuleKind, param string) Param {
	p := Param{Name: param}

	if v, ok := el.Attr(dataAttr(rule, param)); ok {
		p.Raw, p.Source = v, SourceField
		return p
	}

	if param == ParamMessage {
		if msg, ok := r.cfg.customMessage(rule); ok {
			p.Raw, p.Source = msg, SourceCustomMessage
		} else if msg := rule.DefaultMessage(); msg != "" {
			p.Raw, p.Source = msg, SourceDefault
		}
		return p
	}

	if v, ok := r.cfg.setting(param); ok {
		p.Raw, p.Source = v, SourceConfig
	}
	return p
}
