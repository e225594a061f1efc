package profile

import (
	"regexp"
	"strings"
)

// MaxKPISnippets caps how many snippets a profile carries.
const MaxKPISnippets = 8

// Markers for lines that look like outcomes, targets or deliverables. The
// rule is recall-oriented: a spurious snippet is cheap, a missed reporting
// commitment is not.
var kpiMarkers = []string{
	"kpi", "key performance", "outcome", "deliverable", "target", "objective", "milestone",
	"impact", "indicator", "measure", "measurable", "must achieve", "should achieve",
	"required", "reporting", "evaluation",
}

var kpiNumberRe = regexp.MustCompile(`\b\d{1,3}(?:,\d{3})*\b`)

var kpiUnitWords = []string{"participants", "beneficiaries", "sessions", "hours", "weeks", "months"}

var sentenceSplitRe = regexp.MustCompile(`[.!?]\s+`)

// ExtractKPISnippets collects up to MaxKPISnippets lines that state a KPI or
// a numeric target, in source order.
func ExtractKPISnippets(text string) []string {
	if NormText(text) == "" {
		return nil
	}

	var out []string
	for _, line := range splitKPILines(text) {
		low := NormText(line)
		if containsAny(low, kpiMarkers) {
			out = append(out, CleanText(line))
		} else if kpiNumberRe.MatchString(line) && containsAny(low, kpiUnitWords) {
			out = append(out, CleanText(line))
		}
		if len(out) >= MaxKPISnippets {
			break
		}
	}
	return out
}

// splitKPILines splits on newlines, falling back to sentence boundaries when
// the text arrives as a single flattened line.
func splitKPILines(text string) []string {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if c := CleanText(l); c != "" {
			lines = append(lines, c)
		}
	}
	if len(lines) > 1 || (len(lines) == 1 && strings.Contains(text, "\n")) {
		return lines
	}

	var parts []string
	for _, p := range sentenceSplitRe.Split(CleanText(text), -1) {
		if c := CleanText(p); c != "" {
			parts = append(parts, c)
		}
	}
	return parts
}
