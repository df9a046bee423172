package htmlform

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<!DOCTYPE html>
<html>
<body>
<form id="signup">
  <div class="control-group">
    <label for="postal">Postal code</label>
    <div class="controls">
      <input type="text" id="postal" class="fvPostalCode" data-fvPostalCode-invalidClass="error">
    </div>
  </div>
  <div class="control-group">
    <div class="controls">
      <textarea id="bio" class="fvCapitalizeFirst">hello there</textarea>
    </div>
  </div>
  <input type="submit" value="Go">
</form>
</body>
</html>`

func TestParse(t *testing.T) {
	doc, err := Parse(strings.NewReader(page))
	require.NoError(t, err)
	assert.Equal(t, "html", doc.Root().Tag)

	postal, err := doc.Query("#postal")
	require.NoError(t, err)
	assert.True(t, postal.HasClass("fvPostalCode"))

	v, ok := postal.Attr("data-fvPostalCode-invalidClass")
	require.True(t, ok, "attribute lookup ignores the parser's lower-casing")
	assert.Equal(t, "error", v)

	bio, err := doc.Query("textarea")
	require.NoError(t, err)
	assert.Equal(t, "hello there", bio.Value())
}

func TestLoadForm(t *testing.T) {
	_, form, err := LoadForm(strings.NewReader(page), "")
	require.NoError(t, err)
	assert.Len(t, form.Fields(), 2)

	_, _, err = LoadForm(strings.NewReader(page), "#nope")
	assert.ErrorIs(t, err, ErrNoForm)
}

func TestRender_RoundTrip(t *testing.T) {
	doc, err := Parse(strings.NewReader(page))
	require.NoError(t, err)

	postal, err := doc.Query("#postal")
	require.NoError(t, err)
	postal.SetValue("A0A 0A0")
	msg := postal.AppendSibling("span")
	msg.AddClass("help-inline")
	msg.SetText("Invalid <code>")

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, doc))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>\n<html>"))
	assert.Contains(t, out, `value="A0A 0A0"`)
	assert.Contains(t, out, `<span class="help-inline">Invalid &lt;code&gt;</span>`)
	assert.NotContains(t, out, "</input>")

	again, err := Parse(&buf)
	require.NoError(t, err)
	p2, err := again.Query("#postal")
	require.NoError(t, err)
	assert.Equal(t, "A0A 0A0", p2.Value())
}
