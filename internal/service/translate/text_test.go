package translate_test

import (
	"testing"

	"gathr/backend/internal/service/translate"

	"github.com/stretchr/testify/require"
)

func TestHTMLToText_StripsMarkup(t *testing.T) {
	got := translate.HTMLToText(`<p>Hello <b>world</b></p><p>Second</p>`)
	require.Equal(t, "Hello world\nSecond", got)
}

func TestHTMLToText_SkipsScriptAndStyle(t *testing.T) {
	got := translate.HTMLToText(`<p>Visible</p><script>alert(1)</script><style>p{}</style>`)
	require.Equal(t, "Visible", got)
}

func TestHTMLToText_PlainTextPassesThrough(t *testing.T) {
	require.Equal(t, "just text", translate.HTMLToText("just text"))
}

func TestTextLength_CountsRunes(t *testing.T) {
	require.Equal(t, 2, translate.TextLength("日本"))
	require.Equal(t, 5, translate.TextLength("<p>hello</p>"))
}
