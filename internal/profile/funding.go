package profile

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cheryl9/project-iceman/internal/models"
)

var (
	percentRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)
	// Currency amounts like "$12,000" / "S$20,000" / "$20000"
	moneyRe = regexp.MustCompile(`(?i)S?\$\s*(\d{1,3}(?:,\d{3})*(?:\.\d+)?)\b`)
)

var capMarkers = []string{"cap", "capped", "up to", "maximum", "max", "not exceed", "no more than"}

var cofundMarkers = []string{"co-fund", "cofund", "co-funding", "co funding", "co-funded", "co funded", "match", "matched", "co-pay", "copay"}

// capWindow is how far (in bytes) a cap marker may sit from a currency
// amount for that amount to count as the grant cap. Keeps unrelated figures
// like total programme budgets from being read as per-recipient caps.
const capWindow = 80

// ExtractFunding parses funding terms out of the raw funding section.
// Every field degrades to nil/false on empty or unparseable input.
func ExtractFunding(text string) models.FundingInfo {
	raw := CleanText(text)
	low := strings.ToLower(raw)

	info := models.FundingInfo{Raw: raw}

	for _, m := range percentRe.FindAllStringSubmatch(raw, -1) {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if info.PercentMax == nil || v > *info.PercentMax {
			pv := v
			info.PercentMax = &pv
		}
	}

	for _, idx := range moneyRe.FindAllStringSubmatchIndex(raw, -1) {
		// idx[2]:idx[3] is the numeric capture group
		v, err := strconv.ParseFloat(strings.ReplaceAll(raw[idx[2]:idx[3]], ",", ""), 64)
		if err != nil {
			continue
		}
		start := idx[0] - capWindow
		if start < 0 {
			start = 0
		}
		end := idx[0] + capWindow
		if end > len(low) {
			end = len(low)
		}
		if containsAny(low[start:end], capMarkers) {
			cv := v
			info.CapAmountSGD = &cv
			break
		}
	}

	info.MentionsCofunding = containsAny(low, cofundMarkers)
	return info
}
