package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMainText(t *testing.T) {
	t.Run("Content selector wins over body", func(t *testing.T) {
		html := `<html><body>
			<div class="sidebar">Apply now banner</div>
			<main><p>IELTS 6.5 minimum.</p></main>
		</body></html>`

		text, err := ExtractMainText(html, AdmissionPageSelectors())
		require.NoError(t, err)
		assert.Equal(t, "IELTS 6.5 minimum.", text)
	})

	t.Run("Falls back to body when no selector matches", func(t *testing.T) {
		html := `<html><body><p>Deadline: January 15.</p></body></html>`

		text, err := ExtractMainText(html, []string{".does-not-exist"})
		require.NoError(t, err)
		assert.Equal(t, "Deadline: January 15.", text)
	})

	t.Run("Noise elements removed", func(t *testing.T) {
		html := `<html><body>
			<nav>Navigation</nav>
			<script>var x = 1;</script>
			<style>.a{}</style>
			<p>Requirements text.</p>
			<footer>Footer text</footer>
		</body></html>`

		text, err := ExtractMainText(html, nil)
		require.NoError(t, err)
		assert.Contains(t, text, "Requirements text.")
		assert.NotContains(t, text, "Navigation")
		assert.NotContains(t, text, "var x")
		assert.NotContains(t, text, "Footer text")
	})

	t.Run("Blank lines collapsed", func(t *testing.T) {
		html := "<html><body><p>first</p>\n\n\n<p>second</p></body></html>"

		text, err := ExtractMainText(html, nil)
		require.NoError(t, err)
		assert.Equal(t, "first\nsecond", text)
	})

	t.Run("Empty document yields empty text", func(t *testing.T) {
		text, err := ExtractMainText("", nil)
		require.NoError(t, err)
		assert.Equal(t, "", text)
	})
}

func TestIsPDF(t *testing.T) {
	assert.True(t, IsPDF([]byte("%PDF-1.7 rest of file")))
	assert.False(t, IsPDF([]byte("<html></html>")))
	assert.False(t, IsPDF(nil))
	assert.False(t, IsPDF([]byte(" %PDF")))
}

func TestExtractPDFTextMalformed(t *testing.T) {
	_, err := ExtractPDFText([]byte("%PDF-1.4 not really a pdf"), MaxPages)
	var extractErr *ExtractError
	assert.ErrorAs(t, err, &extractErr)
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser(""))
	assert.True(t, ShouldUseBrowser("   \n  "))
	assert.True(t, ShouldUseBrowser("tiny shell page"))

	long := make([]byte, MinContentLength)
	for i := range long {
		long[i] = 'a'
	}
	assert.False(t, ShouldUseBrowser(string(long)))
}
