package match

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cheryl9/project-iceman/internal/models"
)

const maxInsights = 3

var fallbackActionItems = []string{
	"Review the full grant guidelines on the agency portal",
	"Prepare required documents",
	"Contact the grant agency if you have questions",
}

// applyInsights fills reasoning, strengths, concerns and action items from
// the component scores.
func applyInsights(result *models.MatchResult, components []models.ComponentScore) {
	ranked := make([]models.ComponentScore, len(components))
	copy(ranked, components)
	// Stable: equal scores keep component order, so strengths and reasoning
	// are deterministic.
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })

	top := ranked
	if len(top) > maxInsights {
		top = top[:maxInsights]
	}
	var strengths []string
	for _, c := range top {
		if c.Score >= 70 {
			strengths = append(strengths, c.Details)
		}
	}

	var concerns []string
	for _, c := range components {
		if c.Score < 50 {
			concerns = append(concerns, c.Details)
		}
	}
	if len(concerns) == 0 {
		concerns = []string{"No major concerns identified"}
	}
	if len(concerns) > maxInsights {
		concerns = concerns[:maxInsights]
	}

	result.Strengths = strengths
	result.Concerns = concerns
	result.ActionItems = actionItems(result)
	result.Reasoning = reasoning(ranked[0])
}

// actionItems derives up to three next steps, highest-impact gap first.
func actionItems(result *models.MatchResult) []string {
	var items []string

	if c := result.Component(models.ComponentIssueArea); c != nil && c.Score < 70 && len(c.Missing) > 0 {
		missing := c.Missing
		if len(missing) > 2 {
			missing = missing[:2]
		}
		items = append(items, "Consider how your work relates to: "+strings.Join(missing, ", "))
	}

	if c := result.Component(models.ComponentEligibility); c != nil && c.Score < 70 && len(c.Concerns) > 0 {
		items = append(items, "Verify eligibility: "+c.Concerns[0])
	}

	if c := result.Component(models.ComponentTimeline); c != nil && c.Score < 60 {
		items = append(items, "Check application timeline and prepare documents early")
	}

	if len(items) == 0 {
		return append([]string(nil), fallbackActionItems...)
	}
	if len(items) > maxInsights {
		items = items[:maxInsights]
	}
	return items
}

// reasoning names the single best component, phrased by how strong it is.
func reasoning(top models.ComponentScore) string {
	label := strings.ReplaceAll(top.Name, "_", " ")
	if top.Score >= 80 {
		return fmt.Sprintf("Strong match due to %s. %s", label, top.Details)
	}
	return fmt.Sprintf("Moderate match. %s", top.Details)
}
