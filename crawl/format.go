package crawl

import "fmt"

// FormatBytes formats a byte count in human-readable form.
func FormatBytes(n int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case n >= MB:
		return fmt.Sprintf("%.1f MB", float64(n)/float64(MB))
	case n >= KB:
		return fmt.Sprintf("%.1f KB", float64(n)/float64(KB))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

// FormatSummary describes a persisted crawl of n pages in one line.
func FormatSummary(n int, r *PersistResult) string {
	noun := "pages"
	if n == 1 {
		noun = "page"
	}
	return fmt.Sprintf("Crawled %d %s (inserted %d, ignored %d, failed %d)",
		n, noun, r.Inserted, r.Ignored, r.Failed)
}
