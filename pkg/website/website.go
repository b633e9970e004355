package website

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// FetchPage fetches a page and extracts its title and visible text.
func (c *clientImpl) FetchPage(ctx context.Context, pageURL string) (Page, error) {
	headers := map[string]string{
		"User-Agent": c.userAgent,
		"Accept":     "text/html,application/xhtml+xml",
	}

	body, statusCode, err := c.httpClient.Get(ctx, pageURL, headers)
	if err != nil {
		return Page{}, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return Page{}, fmt.Errorf("%w: status %d", ErrUnauthorized, statusCode)
	case statusCode >= 400:
		return Page{}, fmt.Errorf("%w: status %d", ErrUnreachable, statusCode)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return Page{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	title, content := extract(doc)
	return Page{
		URL:       pageURL,
		Title:     title,
		Content:   content,
		FetchedAt: time.Now().UTC(),
	}, nil
}

// extract pulls the title and the visible text out of a parsed document.
// Script, style, and navigation chrome are dropped.
func extract(doc *goquery.Document) (title, content string) {
	title = strings.TrimSpace(doc.Find("title").First().Text())

	doc.Find("script, style, noscript, nav, header, footer, iframe").Remove()

	root := doc.Find("article, main").First()
	if root.Length() == 0 {
		root = doc.Find("body").First()
	}

	var parts []string
	root.Find("h1, h2, h3, p, li, blockquote").Each(func(_ int, s *goquery.Selection) {
		text := collapseWhitespace(s.Text())
		if text != "" {
			parts = append(parts, text)
		}
	})

	content = strings.Join(parts, "\n")
	if len(content) > MaxContentLen {
		content = content[:MaxContentLen]
	}
	return title, content
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
