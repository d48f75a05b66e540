package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTML_Markup(t *testing.T) {
	out, err := HTML("The result of 2 + 2 is: **4**")
	require.NoError(t, err)
	assert.Contains(t, out, "<strong>4</strong>")

	out, err = HTML("*Note: These are simulated results.*")
	require.NoError(t, err)
	assert.Contains(t, out, "<em>Note: These are simulated results.</em>")

	out, err = HTML("use `fmt.Println`")
	require.NoError(t, err)
	assert.Contains(t, out, "<code>fmt.Println</code>")
}

func TestHTML_HardWraps(t *testing.T) {
	out, err := HTML("Text analysis:\n• **3** words")
	require.NoError(t, err)
	assert.Contains(t, out, "<br")
}

func TestHTML_FencedBlock(t *testing.T) {
	out, err := HTML("```python\ndef f():\n    pass\n```")
	require.NoError(t, err)
	assert.Contains(t, out, `<pre><code class="language-python">`)
}

func TestHTML_OmitsRawHTML(t *testing.T) {
	out, err := HTML("<script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
}

func TestTerminal_Render(t *testing.T) {
	term, err := NewTerminal("notty", 80)
	require.NoError(t, err)

	out := term.Render("The result of 2 + 2 is: **4**")
	assert.Contains(t, out, "4")
	assert.Contains(t, out, "The result of 2 + 2 is")
}

func TestNewTerminal_UnknownStyle(t *testing.T) {
	_, err := NewTerminal("/nonexistent/style.json", 80)
	assert.Error(t, err)
}
