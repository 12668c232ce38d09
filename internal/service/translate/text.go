package translate

import (
	"strings"

	"golang.org/x/net/html"
)

// HTMLToText extracts plain text from HTML content. Used to size
// payloads for the guard and to hand clean text to providers.
func HTMLToText(content string) string {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		// Fallback: return content as-is if parsing fails
		return content
	}

	var buf strings.Builder
	extractText(doc, &buf)

	return strings.TrimSpace(buf.String())
}

// TextLength returns the plain-text length of content in runes.
func TextLength(content string) int {
	return len([]rune(HTMLToText(content)))
}

// extractText recursively extracts text from HTML nodes.
func extractText(n *html.Node, buf *strings.Builder) {
	if n == nil {
		return
	}

	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "noscript", "head", "meta", "link":
			return
		case "br":
			buf.WriteString("\n")
			return
		case "p", "div", "h1", "h2", "h3", "h4", "h5", "h6",
			"li", "tr", "blockquote", "section", "article":
			if buf.Len() > 0 {
				buf.WriteString("\n")
			}
		}
	}

	if n.Type == html.TextNode {
		buf.WriteString(n.Data)
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		extractText(c, buf)
	}
}
