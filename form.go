package formatvalidate

import (
	"log/slog"
	"os"

	"github.com/Azhovan/formatvalidate/logger"
)

// Option configures a Controller using the functional options pattern.
type Option func(*options)

type options struct {
	log    *slog.Logger
	marker Marker
}

// WithLogger sets the diagnostics logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithMarker replaces the rendering of invalid state, taking precedence
// over Config.Marker. Nil markers are ignored.
func WithMarker(m Marker) Option {
	return func(o *options) {
		if m != nil {
			o.marker = m
		}
	}
}

// Controller is the public surface for one attached form.
type Controller struct {
	cfg    Config
	engine *engine
}

// Attach merges cfg over DefaultConfig, binds every field carrying a known
// marker class and cancels submission while any field is marked invalid.
// A nil form yields a controller with no fields.
func Attach(form Form, cfg Config, opts ...Option) *Controller {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.New(logger.WithOutput(os.Stderr), logger.WithFormat(logger.FormatText))
	}

	merged := DefaultConfig().Merge(cfg)
	if o.marker != nil {
		merged.Marker = o.marker
	}
	c := &Controller{cfg: merged}
	if form == nil {
		form = emptyForm{}
	}

	c.engine = newEngine(form, merged, o.log)
	c.engine.bind()
	form.OnSubmit(c.allowSubmit)
	return c
}

// Config returns the effective configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// IsValid clears every invalid marker, runs each binding's pipeline exactly
// once and reports whether no field ended up marked invalid.
func (c *Controller) IsValid() bool {
	c.engine.clearAll()
	for _, b := range c.engine.bindings {
		c.engine.run(b)
	}
	return !c.engine.anyInvalid()
}

// Validate runs the same sweep as IsValid and returns a *ValidationError
// listing every failing (field, rule) pair, or nil.
func (c *Controller) Validate() error {
	if c.IsValid() {
		return nil
	}

	var errs []FieldError
	for _, fs := range c.engine.states {
		for _, rule := range Rules() {
			f, ok := fs.failing[rule]
			if !ok {
				continue
			}
			errs = append(errs, FieldError{
				FieldPath: fs.key,
				Code:      rule.String(),
				Message:   f.mark.Message,
			})
		}
	}
	return &ValidationError{FieldErrors: errs}
}

// Revalidate runs every pipeline bound to el, exactly as a blur would, and
// reports whether all of them passed. Unbound elements are valid.
func (c *Controller) Revalidate(el Element) bool {
	valid := true
	for _, b := range c.engine.bindings {
		if b.field.el != el {
			continue
		}
		if !c.engine.run(b).Valid {
			valid = false
		}
	}
	return valid
}

// FieldState is a point-in-time view of one field known to the engine.
type FieldState struct {
	Key      string
	Value    string
	Invalid  bool
	Rules    []RuleKind
	Failures []Failure
}

// Failure describes one rendered message.
type Failure struct {
	Rule         RuleKind
	Message      string
	InvalidClass string
	MessageFrom  ParamSource
	ClassFrom    ParamSource
}

// Fields reports the current state of every bound field and must-match
// companion, in binding order.
func (c *Controller) Fields() []FieldState {
	out := make([]FieldState, 0, len(c.engine.states))
	for _, fs := range c.engine.states {
		st := FieldState{
			Key:     fs.key,
			Value:   fs.el.Value(),
			Invalid: fs.el.HasClass(InvalidMarkerClass),
			Rules:   append([]RuleKind(nil), fs.rules...),
		}
		for _, rule := range Rules() {
			if f, ok := fs.failing[rule]; ok {
				st.Failures = append(st.Failures, Failure{
					Rule:         rule,
					Message:      f.mark.Message,
					InvalidClass: f.mark.InvalidClass,
					MessageFrom:  f.messageFrom,
					ClassFrom:    f.classFrom,
				})
			}
		}
		out = append(out, st)
	}
	return out
}

func (c *Controller) allowSubmit() bool {
	return !c.engine.anyInvalid()
}

type emptyForm struct{}

func (emptyForm) Fields() []Element      { return nil }
func (emptyForm) Query(string) []Element { return nil }
func (emptyForm) OnSubmit(func() bool)   {}
