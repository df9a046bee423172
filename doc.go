// Package formatvalidate provides declarative, class-driven validation and
// reformatting for form fields.
//
// Quick Start:
//
//	doc, _ := htmlform.Parse(strings.NewReader(page))
//	form, _ := doc.Form("#signup")
//
//	ctrl := formatvalidate.Attach(form, formatvalidate.Config{
//	    InvalidClass:   "error",
//	    CustomMessages: map[string]string{"fvRequired": "Please fill this in"},
//	})
//
//	if !ctrl.IsValid() {
//	    // inline messages are rendered next to each failing field
//	}
//
// Fields opt into rules through marker classes (fvRequired, fvEmail,
// fvCurrency, ...). Parameters come from data-<rule>-<param> attributes, then
// from the Config, then from built-in defaults.
//
// Every field binding runs the same synchronous pipeline whether it is
// triggered by a blur event or by a full IsValid sweep.
//
// See example_test.go for detailed usage.
package formatvalidate
