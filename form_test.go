package formatvalidate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fv "github.com/Azhovan/formatvalidate"
	"github.com/Azhovan/formatvalidate/dom"
	"github.com/Azhovan/formatvalidate/logger"
)

func signupFields() []*dom.Node {
	return []*dom.Node{
		input("name", "fvRequired fvCapitalize"),
		input("email", "fvRequired fvEmail"),
		input("postal", "fvPostalCode"),
		input("phone", "fvPhone"),
	}
}

func TestIsValid_Idempotent(t *testing.T) {
	h := attach(t, fv.Config{}, signupFields()...)
	h.el(t, "postal").SetValue("nope")

	first := h.ctrl.IsValid()
	count := h.allMessages(t)
	second := h.ctrl.IsValid()

	assert.False(t, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 3, count, "name, email and postal fail once each")
	assert.Equal(t, count, h.allMessages(t), "no duplicate messages")
}

func TestIsValid_ReformatsValidFields(t *testing.T) {
	h := attach(t, fv.Config{}, signupFields()...)
	h.el(t, "name").SetValue("ada lovelace")
	h.el(t, "email").SetValue(" ada@example.com")
	h.el(t, "postal").SetValue("k1a0b1")
	h.el(t, "phone").SetValue("613.555.1234")

	assert.False(t, h.ctrl.IsValid(), "dotted phone numbers are rejected")
	assert.Equal(t, "Ada Lovelace", h.el(t, "name").Value())
	assert.Equal(t, "ada@example.com", h.el(t, "email").Value())
	assert.Equal(t, "K1A 0B1", h.el(t, "postal").Value())
	assert.Equal(t, "613.555.1234", h.el(t, "phone").Value())

	h.el(t, "phone").SetValue("613-555-1234")
	assert.True(t, h.ctrl.IsValid())
	assert.Equal(t, "(613)555-1234", h.el(t, "phone").Value())
	assert.Zero(t, h.allMessages(t))
}

func TestSubmit_BlockedWhileInvalid(t *testing.T) {
	h := attach(t, fv.Config{}, input("email", "fvEmail"))

	assert.True(t, h.form.Submit(), "pristine form submits")

	h.set(t, "email", "bad")
	assert.False(t, h.form.Submit())

	h.set(t, "email", "ada@example.com")
	assert.True(t, h.form.Submit())
}

func TestSubmit_BlockedByUnboundInvalidField(t *testing.T) {
	h := attach(t, fv.Config{},
		input("email", "fvEmail"),
		input("legacy", fv.InvalidMarkerClass),
	)
	assert.False(t, h.form.Submit())
}

func TestIsValid_ClearsUnboundInvalidField(t *testing.T) {
	h := attach(t, fv.Config{},
		input("email", "fvEmail"),
		input("legacy", fv.InvalidMarkerClass),
	)
	h.el(t, "email").SetValue("ada@example.com")

	assert.True(t, h.ctrl.IsValid())
	assert.False(t, h.invalid(t, "legacy"))
	assert.True(t, h.form.Submit())
}

func TestValidate(t *testing.T) {
	h := attach(t, fv.Config{}, signupFields()...)
	h.el(t, "email").SetValue("ada@")

	err := h.ctrl.Validate()
	var verr *fv.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []fv.FieldError{
		{FieldPath: "name", Code: "fvRequired", Message: "This field is required"},
		{FieldPath: "email", Code: "fvEmail", Message: "Not a valid email address"},
	}, verr.FieldErrors)

	h.el(t, "name").SetValue("Ada")
	h.el(t, "email").SetValue("ada@example.com")
	assert.NoError(t, h.ctrl.Validate())
}

func TestRevalidate(t *testing.T) {
	h := attach(t, fv.Config{}, input("n", "fvInteger"), input("free", ""))

	h.el(t, "n").SetValue("x")
	assert.False(t, h.ctrl.Revalidate(h.el(t, "n")))
	assert.True(t, h.invalid(t, "n"))

	assert.True(t, h.ctrl.Revalidate(h.el(t, "free")), "unbound fields are valid")

	h.el(t, "n").SetValue("4")
	assert.True(t, h.ctrl.Revalidate(h.el(t, "n")))
	assert.False(t, h.invalid(t, "n"))
}

func TestFields_Sources(t *testing.T) {
	h := attach(t, fv.Config{
		InvalidClass:   "error",
		CustomMessages: map[string]string{"fvRequired": "Needed"},
	},
		input("a", "fvRequired"),
		input("b", "fvRequired fvEmail", "data-fvEmail-invalidClass", "danger"),
		input("c", "plain"),
	)
	h.el(t, "b").SetValue("x")
	h.ctrl.IsValid()

	fields := h.ctrl.Fields()
	require.Len(t, fields, 2, "only bound fields are tracked")

	assert.Equal(t, "a", fields[0].Key)
	assert.True(t, fields[0].Invalid)
	assert.Equal(t, []fv.RuleKind{fv.RuleRequired}, fields[0].Rules)
	assert.Equal(t, []fv.Failure{{
		Rule:         fv.RuleRequired,
		Message:      "Needed",
		InvalidClass: "error",
		MessageFrom:  fv.SourceCustomMessage,
		ClassFrom:    fv.SourceConfig,
	}}, fields[0].Failures)

	assert.Equal(t, "x", fields[1].Value)
	assert.Equal(t, []fv.Failure{{
		Rule:         fv.RuleEmail,
		Message:      "Not a valid email address",
		InvalidClass: "danger",
		MessageFrom:  fv.SourceDefault,
		ClassFrom:    fv.SourceField,
	}}, fields[1].Failures)
}

func TestMarkerFuncs(t *testing.T) {
	var invalid, valid []fv.Mark
	marker := fv.MarkerFuncs{
		Invalid: func(_ fv.Element, m fv.Mark) { invalid = append(invalid, m) },
		Valid:   func(_ fv.Element, m fv.Mark) { valid = append(valid, m) },
	}
	h := attach(t, fv.Config{Marker: marker}, input("n", "fvInteger"))

	h.set(t, "n", "x")
	require.Len(t, invalid, 1)
	assert.Equal(t, fv.Mark{Rule: fv.RuleInteger, Key: "n", Message: "Not a valid integer", InvalidClass: "warning"}, invalid[0])
	assert.Zero(t, h.allMessages(t), "custom marker replaces rendering")
	assert.True(t, h.invalid(t, "n"), "the engine still owns the field marker")
	assert.False(t, h.form.Submit())

	h.set(t, "n", "1")
	assert.NotEmpty(t, valid)
	assert.False(t, h.invalid(t, "n"))
	assert.True(t, h.form.Submit())
}

func TestMarkerFuncs_NilFallsBack(t *testing.T) {
	var invalid int
	h := attach(t, fv.Config{Marker: fv.MarkerFuncs{
		Invalid: func(fv.Element, fv.Mark) { invalid++ },
	}}, input("n", "fvInteger"))

	h.set(t, "n", "x")
	h.set(t, "n", "1")
	assert.Equal(t, 1, invalid)
	assert.False(t, h.invalid(t, "n"))
}

func TestWithMarker_OverridesConfig(t *testing.T) {
	var fromOption int
	root := dom.New("form").Append(controlGroup(input("n", "fvInteger")))
	doc := dom.NewDocument(root)
	form, err := doc.Form("")
	require.NoError(t, err)

	ctrl := fv.Attach(form,
		fv.Config{Marker: fv.MarkerFuncs{Invalid: func(fv.Element, fv.Mark) { t.Fatal("config marker used") }}},
		fv.WithMarker(fv.MarkerFuncs{Invalid: func(fv.Element, fv.Mark) { fromOption++ }}),
		fv.WithLogger(logger.Discard()),
	)
	n, err := doc.Query("#n")
	require.NoError(t, err)
	n.SetValue("x")
	assert.False(t, ctrl.IsValid())
	assert.Equal(t, 1, fromOption)
}

func TestAttach_NilForm(t *testing.T) {
	ctrl := fv.Attach(nil, fv.Config{}, fv.WithLogger(logger.Discard()))
	assert.True(t, ctrl.IsValid())
	assert.NoError(t, ctrl.Validate())
	assert.Empty(t, ctrl.Fields())
}

func TestController_Config(t *testing.T) {
	ctrl := fv.Attach(nil, fv.Config{InvalidClass: "error"}, fv.WithLogger(logger.Discard()))
	cfg := ctrl.Config()
	assert.Equal(t, "error", cfg.InvalidClass)
	assert.Equal(t, fv.Some(true), cfg.KeepFocus)
}
