// Package goquery implements sitesearch.Extractor using goquery.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitesearch"
	"golang.org/x/net/html"
)

// Ensure Extractor implements sitesearch.Extractor at compile time.
var _ sitesearch.Extractor = (*Extractor)(nil)

// invisibleSelector matches elements whose text is never rendered.
const invisibleSelector = "script, style, noscript, template"

// Extractor pulls the title, visible text, and hyperlinks out of HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses html and resolves its links against baseURL.
// The title falls back to baseURL when the document has none.
func (e *Extractor) Extract(rawHTML string, baseURL string) (*sitesearch.ExtractResult, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = baseURL
	}

	links := ExtractLinks(doc, base)

	doc.Find(invisibleSelector).Remove()

	return &sitesearch.ExtractResult{
		Title: title,
		Text:  VisibleText(doc),
		Links: links,
	}, nil
}

// VisibleText joins every non-blank text node of doc with single spaces.
// Each node is trimmed first, so whitespace inside a node is preserved.
func VisibleText(doc *goquery.Document) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if s := strings.TrimSpace(n.Data); s != "" {
				parts = append(parts, s)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range doc.Nodes {
		walk(n)
	}
	return strings.Join(parts, " ")
}

// ExtractLinks returns the absolute target of every a[href] in document order.
// Fragments are stripped and non-HTTP targets are skipped; duplicates are kept.
func ExtractLinks(doc *goquery.Document, base *url.URL) []string {
	var links []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if resolved := resolveURL(base, href); resolved != "" {
			links = append(links, resolved)
		}
	})
	return links
}

// resolveURL resolves href against base.
// Returns empty string if href cannot be parsed or is not an HTTP(S) target.
func resolveURL(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	resolved.Fragment = ""
	resolved.RawFragment = ""
	return resolved.String()
}
