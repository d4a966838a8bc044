package story

import "strings"

// splitOutput separates the backend response into chapter text and summary.
// When the separator is absent the whole response is treated as chapter text
// and the summary is left empty.
func splitOutput(raw string) (text string, summary string) {
	text, summary, found := strings.Cut(raw, summarySeparator)
	if !found {
		return strings.TrimSpace(raw), ""
	}
	return strings.TrimSpace(text), strings.TrimSpace(summary)
}

// wordCount counts whitespace-separated tokens, used for generation metrics.
func wordCount(text string) int {
	return len(strings.Fields(text))
}
