package sitesearch

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the text of the first title element.
	// It is the base URL when the document has no title.
	Title string

	// Text is the visible text of the document, one space between text nodes.
	Text string

	// Links are the absolute targets of every hyperlink in document order.
	// Duplicates are kept.
	Links []string
}

// Extractor parses HTML into a title, text body, and outbound links.
type Extractor interface {
	// Extract parses html. The baseURL is used to resolve relative links
	// and as the fallback title.
	Extract(html string, baseURL string) (*ExtractResult, error)
}
