package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputEscapesSpecialCharacters(t *testing.T) {
	inputs := []string{
		"<script>alert('xss')</script>",
		`Test "quotes" & ampersands`,
		"  <b>bold</b>  ",
		"plain text",
		"",
	}
	for _, in := range inputs {
		out := Input(in, 0)
		for _, ch := range []string{"<", ">", `"`, "'"} {
			assert.NotContains(t, out, ch, "input %q", in)
		}
		for i := strings.Index(out, "&"); i >= 0; i = strings.Index(out, "&") {
			assert.Regexp(t, `^&(amp|lt|gt|#34|#39);`, out[i:], "input %q", in)
			out = out[i+1:]
		}
	}
}

func TestInputEscapedForm(t *testing.T) {
	assert.Equal(t, "&lt;script&gt;alert(&#39;xss&#39;)&lt;/script&gt;", Input("<script>alert('xss')</script>", 0))
	assert.Equal(t, "Hello &amp; World", Input("  Hello & World\n", 0))
	assert.Equal(t, "Test &#34;quotes&#34;", Input(`Test "quotes"`, 0))
}

func TestInputEmpty(t *testing.T) {
	assert.Equal(t, "", Input("", 0))
	assert.Equal(t, "", Input("   ", 0))
}

func TestNormalizeTruncatesBeforeTrim(t *testing.T) {
	// The cap lands inside the leading padding, so trimming leaves nothing.
	assert.Equal(t, "", Normalize("     hello", 3))
	assert.Equal(t, "ab", Normalize(" ab cd", 3))
	assert.Equal(t, "hello", Normalize("  hello  ", 0))
}

func TestNormalizeCountsCharactersNotBytes(t *testing.T) {
	assert.Equal(t, "résu", Normalize("résumé", 4))
	long := strings.Repeat("é", DefaultMaxLength+50)
	assert.Equal(t, DefaultMaxLength, len([]rune(Normalize(long, 0))))
}

func TestNormalizeDoesNotEscape(t *testing.T) {
	assert.Equal(t, "<b>R&D</b>", Normalize(" <b>R&D</b> ", 0))
}

func TestEscapeIsNotIdempotent(t *testing.T) {
	once := Escape("a & b")
	assert.Equal(t, "a &amp; b", once)
	assert.Equal(t, "a &amp;amp; b", Escape(once))
	assert.Equal(t, "  keep  ", Escape("  keep  "))
}
