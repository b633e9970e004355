package website

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestExtract(t *testing.T) {
	t.Run("prefers article content and drops chrome", func(t *testing.T) {
		html := `<html><head><title>  Review: New Laptop  </title>
			<script>var x = 1;</script></head>
			<body>
			<nav><a href="/">Home</a></nav>
			<article>
				<h1>New Laptop Review</h1>
				<p>The   battery lasts
				all day.</p>
				<li>Great screen</li>
			</article>
			<footer>Copyright</footer>
			</body></html>`

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		title, content := extract(doc)
		if title != "Review: New Laptop" {
			t.Errorf("title = %q", title)
		}
		if !strings.Contains(content, "New Laptop Review") {
			t.Errorf("content missing heading: %q", content)
		}
		if !strings.Contains(content, "The battery lasts all day.") {
			t.Errorf("whitespace not collapsed: %q", content)
		}
		if strings.Contains(content, "Copyright") || strings.Contains(content, "Home") {
			t.Errorf("chrome leaked into content: %q", content)
		}
		if strings.Contains(content, "var x") {
			t.Errorf("script leaked into content: %q", content)
		}
	})

	t.Run("falls back to body without article", func(t *testing.T) {
		html := `<html><body><p>plain page text</p></body></html>`
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, content := extract(doc)
		if content != "plain page text" {
			t.Errorf("content = %q", content)
		}
	})
}
