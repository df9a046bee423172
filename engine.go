package formatvalidate

import (
	"log/slog"
	"strings"
)

// engine binds rule definitions to fields and runs their pipelines. All
// work happens synchronously on the caller's goroutine.
type engine struct {
	form     Form
	resolve  resolver
	marker   Marker
	log      *slog.Logger
	states   []*fieldState
	byElem   map[Element]*fieldState
	bindings []*binding
	// companions counts states created for must-match companions.
	companions int
}

func newEngine(form Form, cfg Config, log *slog.Logger) *engine {
	marker := cfg.Marker
	if marker == nil {
		marker = DOMMarker{}
	}
	return &engine{
		form:    form,
		resolve: resolver{cfg: cfg},
		marker:  marker,
		log:     log,
		byElem:  make(map[Element]*fieldState),
	}
}

// bind attaches a blur handler for every (field, rule) pair in the form.
func (e *engine) bind() {
	for i, el := range e.form.Fields() {
		kinds := rulesFor(el)
		if len(kinds) == 0 {
			continue
		}

		fs := e.stateFor(el, i)
		fs.rules = kinds
		for _, kind := range kinds {
			b := &binding{field: fs, rule: kind}
			e.bindings = append(e.bindings, b)
			el.OnBlur(func() { e.run(b) })
		}
	}
}

// stateFor returns the state of el, creating it on first use. Must-match
// companions get a state even when they carry no marker class.
func (e *engine) stateFor(el Element, index int) *fieldState {
	if fs, ok := e.byElem[el]; ok {
		return fs
	}
	if index < 0 {
		e.companions++
		index = -e.companions
	}
	fs := newFieldState(el, fieldKey(el, index))
	e.byElem[el] = fs
	e.states = append(e.states, fs)
	return fs
}

// run is the focus-loss pipeline for one binding. The blur handler and the
// revalidation sweep both call it.
func (e *engine) run(b *binding) Outcome {
	if b.rule == RuleMustMatch {
		return e.runMustMatch(b)
	}

	fs, def := b.field, b.rule.def()
	e.clear(fs, b.rule)
	defer e.syncMarker(fs)

	value := fs.el.Value()
	if def.shape == ShapeFormat {
		return e.reformat(fs, def.format, value)
	}

	params, ok := e.requiredParams(fs, def)
	if !ok {
		return Outcome{Valid: true}
	}

	trimmed := strings.TrimSpace(value)
	if trimmed == "" && def.allowEmpty {
		return Outcome{Valid: true}
	}

	if !def.check(trimmed, params) {
		e.markInvalid(fs, b.rule, true)
		return Outcome{}
	}
	if def.format == nil {
		return Outcome{Valid: true}
	}
	return e.reformat(fs, def.format, trimmed)
}

// runMustMatch compares the field with its companion. Both sides are
// cleared before comparing so a correction on either side clears the pair.
func (e *engine) runMustMatch(b *binding) Outcome {
	fs := b.field
	e.clear(fs, RuleMustMatch)
	defer e.syncMarker(fs)

	sel := e.resolve.resolve(fs.el, RuleMustMatch, ParamOther)
	var companions []Element
	if sel.Found() && strings.TrimSpace(sel.Raw) != "" {
		companions = e.form.Query(sel.Raw)
	}
	if len(companions) == 0 {
		e.warnOnce(fs, RuleMustMatch, "must-match companion not found",
			slog.String("attribute", dataAttr(RuleMustMatch, ParamOther)),
			slog.String("selector", sel.Raw))
		return Outcome{Valid: true}
	}

	other := e.stateFor(companions[0], -1)
	if other != fs {
		e.clear(other, RuleMustMatch)
		defer e.syncMarker(other)
	}

	if fs.el.Value() == other.el.Value() {
		return Outcome{Valid: true}
	}

	e.markInvalid(fs, RuleMustMatch, false)
	if other != fs {
		e.markInvalid(other, RuleMustMatch, false)
	}
	return Outcome{}
}

func (e *engine) reformat(fs *fieldState, fn func(string) string, in string) Outcome {
	if fn == nil {
		return Outcome{Valid: true}
	}
	out := fn(in)
	if out == fs.el.Value() {
		return Outcome{Valid: true}
	}
	fs.el.SetValue(out)
	return Outcome{Valid: true, Reformatted: true}
}

// requiredParams resolves the rule's mandatory parameters. A missing one is
// a markup defect: it is reported once and the rule is treated as inert.
func (e *engine) requiredParams(fs *fieldState, def *ruleDef) (map[string]string, bool) {
	params := make(map[string]string, len(def.params))
	for _, ps := range def.params {
		p := e.resolve.resolve(fs.el, def.kind, ps.name)
		valid := p.Found()
		if valid && ps.numeric {
			_, valid = p.Int()
		}
		if !valid {
			e.warnOnce(fs, def.kind, "missing or invalid data attribute",
				slog.String("attribute", dataAttr(def.kind, ps.name)),
				slog.String("value", p.Raw))
			return nil, false
		}
		params[ps.name] = p.Raw
	}
	return params, true
}

func (e *engine) markInvalid(fs *fieldState, rule RuleKind, mayFocus bool) {
	f := e.failureFor(fs, rule)
	e.marker.MarkInvalid(fs.el, f.mark)
	fs.failing[rule] = f

	if mayFocus && e.resolve.resolve(fs.el, rule, ParamKeepFocus).Bool() {
		fs.el.Focus()
	}
}

// clear removes whatever this (field, rule) pair rendered. It always calls
// the Marker so stale output from earlier passes cannot survive.
func (e *engine) clear(fs *fieldState, rule RuleKind) {
	f, ok := fs.failing[rule]
	if !ok {
		f = e.failureFor(fs, rule)
	}
	e.marker.ClearInvalid(fs.el, f.mark)
	delete(fs.failing, rule)
}

// clearAll drops every rendered mark on every known field and the invalid
// marker on every field of the form, bound or not.
func (e *engine) clearAll() {
	for _, el := range e.form.Fields() {
		el.RemoveClass(InvalidMarkerClass)
	}
	for _, fs := range e.states {
		for _, rule := range Rules() {
			if f, ok := fs.failing[rule]; ok {
				e.marker.ClearInvalid(fs.el, f.mark)
				delete(fs.failing, rule)
			}
		}
		e.syncMarker(fs)
	}
}

func (e *engine) failureFor(fs *fieldState, rule RuleKind) failure {
	msg := e.resolve.resolve(fs.el, rule, ParamMessage)
	class := e.resolve.resolve(fs.el, rule, ParamInvalidClass)
	return failure{
		mark: Mark{
			Rule:         rule,
			Key:          fs.key,
			Message:      msg.Raw,
			InvalidClass: class.Raw,
		},
		messageFrom: msg.Source,
		classFrom:   class.Source,
	}
}

// syncMarker keeps the field-level invalid marker in step with the
// per-rule state.
func (e *engine) syncMarker(fs *fieldState) {
	if len(fs.failing) > 0 {
		fs.el.AddClass(InvalidMarkerClass)
		return
	}
	fs.el.RemoveClass(InvalidMarkerClass)
}

func (e *engine) anyInvalid() bool {
	for _, el := range e.form.Fields() {
		if el.HasClass(InvalidMarkerClass) {
			return true
		}
	}
	for _, fs := range e.states {
		if len(fs.failing) > 0 {
			return true
		}
	}
	return false
}

func (e *engine) warnOnce(fs *fieldState, rule RuleKind, msg string, attrs ...any) {
	if fs.warned[rule] {
		return
	}
	fs.warned[rule] = true

	if !e.resolve.resolve(fs.el, rule, ParamShowConsoleMessages).Bool() {
		return
	}
	attrs = append([]any{
		slog.String("field", "#"+fs.key),
		slog.String("rule", rule.String()),
	}, attrs...)
	e.log.Warn(msg, attrs...)
}
