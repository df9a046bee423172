package formatvalidate_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Azhovan/formatvalidate"
	"github.com/Azhovan/formatvalidate/dom"
	"github.com/Azhovan/formatvalidate/logger"
)

// input builds an input with id and name set to id. attrs are extra
// name/value pairs.
func input(id, classes string, attrs ...string) *dom.Node {
	return dom.New("input", append([]string{"type", "text", "id", id, "name", id, "class", classes}, attrs...)...)
}

// controlGroup wraps a field the way bootstrap-style markup does:
// div.control-group > div.controls > field.
func controlGroup(field *dom.Node) *dom.Node {
	return dom.New("div", "class", "control-group").Append(
		dom.New("div", "class", "controls").Append(field),
	)
}

type harness struct {
	doc  *dom.Document
	form *dom.Form
	ctrl *formatvalidate.Controller
	logs *bytes.Buffer
}

func attach(t *testing.T, cfg formatvalidate.Config, fields ...*dom.Node) *harness {
	t.Helper()

	root := dom.New("form", "id", "f")
	for _, f := range fields {
		root.Append(controlGroup(f))
	}
	return attachForm(t, cfg, root)
}

// attachForm attaches to root as laid out by the caller, after appending a
// submit button.
func attachForm(t *testing.T, cfg formatvalidate.Config, root *dom.Node) *harness {
	t.Helper()

	root.Append(dom.New("input", "type", "submit", "value", "Send"))
	doc := dom.NewDocument(root)
	form, err := doc.Form("#f")
	require.NoError(t, err)

	var logs bytes.Buffer
	log := logger.New(logger.WithOutput(&logs), logger.WithLevel(slog.LevelDebug))
	ctrl := formatvalidate.Attach(form, cfg, formatvalidate.WithLogger(log))

	return &harness{doc: doc, form: form, ctrl: ctrl, logs: &logs}
}

func (h *harness) el(t *testing.T, id string) *dom.Node {
	t.Helper()
	n, err := h.doc.Query("#" + id)
	require.NoError(t, err)
	return n
}

// blur focuses the field and moves focus away, firing its handlers.
func (h *harness) blur(t *testing.T, id string) {
	t.Helper()
	h.el(t, id).Focus()
	h.doc.Blur()
}

// set assigns a value and blurs the field, like a user edit.
func (h *harness) set(t *testing.T, id, value string) {
	t.Helper()
	h.el(t, id).SetValue(value)
	h.blur(t, id)
}

// messages returns the rendered message texts for (field, rule).
func (h *harness) messages(t *testing.T, id string, rule formatvalidate.RuleKind) []string {
	t.Helper()
	nodes, err := h.doc.QueryAll(`span.help-inline[data-fv-for="` + id + `"][data-fv-rule=` + rule.String() + `]`)
	require.NoError(t, err)

	var out []string
	for _, n := range nodes {
		out = append(out, n.Text())
	}
	return out
}

// allMessages counts every rendered message in the document.
func (h *harness) allMessages(t *testing.T) int {
	t.Helper()
	nodes, err := h.doc.QueryAll("span.help-inline")
	require.NoError(t, err)
	return len(nodes)
}

func (h *harness) invalid(t *testing.T, id string) bool {
	t.Helper()
	return h.el(t, id).HasClass(formatvalidate.InvalidMarkerClass)
}

func (h *harness) groupHas(t *testing.T, id, class string) bool {
	t.Helper()
	return h.el(t, id).ParentNode().ParentNode().HasClass(class)
}
