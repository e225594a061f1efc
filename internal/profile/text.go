package profile

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

var htmlPolicy = bluemonday.UGCPolicy()

// CleanText collapses all whitespace runs into single spaces and trims.
func CleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormText case-folds cleaned text for comparison. Display paths keep the
// original casing via CleanText.
func NormText(s string) string {
	return strings.ToLower(CleanText(s))
}

// JoinNonEmpty cleans each part and joins the non-empty ones.
func JoinNonEmpty(parts []string, sep string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if c := CleanText(p); c != "" {
			out = append(out, c)
		}
	}
	return strings.Join(out, sep)
}

// HTMLToText strips markup from HTML-derived text, sanitizing first so
// script/style bodies never leak into the extracted text.
func HTMLToText(html string) string {
	if !strings.ContainsAny(html, "<>") {
		return CleanText(html)
	}
	sanitized := htmlPolicy.Sanitize(html)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sanitized))
	if err != nil {
		return CleanText(html) // Fallback to original if parsing fails
	}
	return CleanText(doc.Text())
}

// TruncateText cuts a string to max length, appending ellipsis if truncated.
func TruncateText(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	if maxLen > 3 {
		return text[:maxLen-3] + "..."
	}
	return text[:maxLen]
}

// containsAny reports whether any marker appears as a substring of t.
// Markers are expected to be lower-case; t must already be normalized.
func containsAny(t string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(t, m) {
			return true
		}
	}
	return false
}
