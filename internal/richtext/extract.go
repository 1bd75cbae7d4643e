// Package richtext turns the HTML attached to service items into plain,
// line-oriented text suitable for a printed bulletin.
package richtext

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

func sanitizer() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.StrictPolicy()
		p.AllowElements(
			"p", "div", "br", "hr", "li", "ul", "ol",
			"h1", "h2", "h3", "h4", "h5", "h6",
			"blockquote", "pre", "table", "thead", "tbody", "tr", "td", "th",
			"dl", "dt", "dd", "section", "article", "header", "footer",
			"b", "strong", "i", "em", "u", "s", "span", "a", "sup", "sub",
			"small", "mark", "code", "font", "center", "big", "cite", "q", "abbr",
			"caption", "tfoot", "nav", "aside", "main", "figure", "figcaption", "address",
		)
		p.AddSpaceWhenStrippingTag(true)
		policy = p
	})
	return policy
}

// ExtractPlainText returns the readable text of markup with every text node
// on its own line, lines trimmed and blank lines removed. Malformed markup
// yields whatever text can be recovered; it never fails.
func ExtractPlainText(markup string) string {
	if strings.TrimSpace(markup) == "" {
		return ""
	}

	cleaned := sanitizer().Sanitize(markup)
	root, err := html.Parse(strings.NewReader(cleaned))
	if err != nil {
		return normalizeLines(html.UnescapeString(bluemonday.StrictPolicy().Sanitize(markup)))
	}

	var w lineWriter
	w.walk(root)
	return normalizeLines(w.String())
}

// Lines is ExtractPlainText split into its lines.
func Lines(markup string) []string {
	text := ExtractPlainText(markup)
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

type lineWriter struct {
	b strings.Builder
}

func (w *lineWriter) walk(n *html.Node) {
	if n.Type == html.TextNode {
		w.b.WriteString(n.Data)
		w.b.WriteByte('\n')
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}
}

func (w *lineWriter) String() string {
	return w.b.String()
}

func normalizeLines(s string) string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
