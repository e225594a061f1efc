package match

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/cheryl9/project-iceman/internal/models"
	"github.com/cheryl9/project-iceman/internal/profile"
)

// Component weights. They sum to 1.0; issue areas dominate because a grant
// outside the NPO's cause is useless regardless of how well the rest fits.
var weights = map[string]float64{
	models.ComponentIssueArea:   0.30,
	models.ComponentScope:       0.20,
	models.ComponentFunding:     0.20,
	models.ComponentEligibility: 0.15,
	models.ComponentTimeline:    0.10,
	models.ComponentStrategic:   0.05,
}

// componentOrder fixes evaluation and reporting order.
var componentOrder = []string{
	models.ComponentIssueArea,
	models.ComponentScope,
	models.ComponentFunding,
	models.ComponentEligibility,
	models.ComponentTimeline,
	models.ComponentStrategic,
}

func scoreIssueAreas(npo *models.NPOProfile, grant *models.GrantRecord) models.ComponentScore {
	cs := models.ComponentScore{Name: models.ComponentIssueArea}

	npoAreas := toSet(npo.IssueAreas)
	grantAreas := toSet(grant.GrantProfile.IssueAreas)

	if len(npoAreas) == 0 || len(grantAreas) == 0 {
		cs.Details = "Missing issue area information"
		return cs
	}

	matched := intersect(npoAreas, grantAreas)
	if len(matched) == 0 {
		cs.Details = "No matching issue areas"
		return cs
	}

	coverage := float64(len(matched)) / float64(len(grantAreas))
	specificity := float64(len(matched)) / float64(len(npoAreas))

	cs.Score = round1((coverage*0.7 + specificity*0.3) * 100)
	cs.Details = fmt.Sprintf("Matched %d/%d grant areas", len(matched), len(grantAreas))
	cs.Matched = matched
	cs.Missing = subtract(grantAreas, npoAreas)
	return cs
}

func scoreScopeTags(npo *models.NPOProfile, grant *models.GrantRecord) models.ComponentScore {
	cs := models.ComponentScore{Name: models.ComponentScope}

	npoScopes := toSet(npo.ProjectTypes)
	grantScopes := toSet(grant.GrantProfile.ScopeTags)

	if len(grantScopes) == 0 {
		cs.Score = 100
		cs.Details = "No specific project type required"
		return cs
	}
	if len(npoScopes) == 0 {
		cs.Score = 50
		cs.Details = "NPO project types not specified"
		return cs
	}

	matched := intersect(npoScopes, grantScopes)
	if len(matched) == 0 {
		cs.Score = 30
		cs.Details = "No matching project types"
		return cs
	}

	cs.Score = round1(float64(len(matched)) / float64(len(grantScopes)) * 100)
	cs.Details = fmt.Sprintf("Matches %d/%d required project types", len(matched), len(grantScopes))
	cs.Matched = matched
	cs.Missing = subtract(grantScopes, npoScopes)
	return cs
}

func scoreFunding(npo *models.NPOProfile, grant *models.GrantRecord) models.ComponentScore {
	cs := models.ComponentScore{Name: models.ComponentFunding}

	npoMin := npo.FundingMin
	npoMax := npo.FundingMax
	if npoMax <= 0 {
		npoMax = math.Inf(1) // unspecified need: no cap can "fully cover"
	}

	funding := grant.GrantProfile.Funding

	if funding.CapAmountSGD == nil && funding.PercentMax == nil {
		cs.Score = 70
		cs.Details = "Funding amount not specified in grant"
		return cs
	}

	if funding.CapAmountSGD != nil {
		cap := *funding.CapAmountSGD
		switch {
		case cap < npoMin:
			cs.Score = 20
			cs.Details = fmt.Sprintf("Grant cap ($%.0f) below your minimum ($%.0f)", cap, npoMin)
		case cap >= npoMax:
			cs.Score = 100
			cs.Details = fmt.Sprintf("Grant cap ($%.0f) can fully cover your needs", cap)
		default:
			coverage := 1.0
			if npoMax > npoMin {
				coverage = (cap - npoMin) / (npoMax - npoMin)
			}
			cs.Score = round1(50 + coverage*50)
			cs.Details = fmt.Sprintf("Grant cap ($%.0f) provides partial coverage", cap)
		}
		return cs
	}

	if p := *funding.PercentMax; p > 0 {
		cs.Score = round1(math.Min(p, 100))
		cs.Details = fmt.Sprintf("Grant covers up to %.0f%% of costs", p)
		return cs
	}

	cs.Score = 60
	cs.Details = "Funding details unclear"
	return cs
}

// eligibilityCheck pairs a phrase looked for in the grant's eligibility text
// with the predicate the NPO must satisfy for it.
type eligibilityCheck struct {
	criterion string
	npoMeets  func(npoType, npoReg string) bool
}

var eligibilityChecks = []eligibilityCheck{
	{"registered charity", func(_, reg string) bool {
		return strings.Contains(reg, "charity") || strings.Contains(reg, "ipc")
	}},
	{"non-profit", func(typ, reg string) bool {
		return strings.Contains(typ, "non-profit") || strings.Contains(reg, "charity")
	}},
	{"social service", func(typ, _ string) bool {
		return strings.Contains(typ, "social service") || strings.Contains(typ, "ssa")
	}},
	{"registered", func(_, reg string) bool { return reg != "" }},
	// All served NPOs are Singapore-based.
	{"singapore", func(_, _ string) bool { return true }},
}

func scoreEligibility(npo *models.NPOProfile, grant *models.GrantRecord) models.ComponentScore {
	cs := models.ComponentScore{Name: models.ComponentEligibility}

	whoCanApply := profile.NormText(grant.WhoCanApply)
	if whoCanApply == "" {
		cs.Score = 70
		cs.Details = "Eligibility criteria not specified"
		return cs
	}

	npoType := profile.NormText(npo.OrganizationType)
	npoReg := profile.NormText(npo.RegistrationStatus)

	score := 50.0
	var matches, issues []string
	for _, check := range eligibilityChecks {
		if !strings.Contains(whoCanApply, check.criterion) {
			continue
		}
		if check.npoMeets(npoType, npoReg) {
			score += 10
			matches = append(matches, fmt.Sprintf("Meets '%s' requirement", check.criterion))
		} else {
			score -= 15
			issues = append(issues, fmt.Sprintf("May not meet '%s' requirement", check.criterion))
		}
	}

	cs.Score = round1(math.Max(0, math.Min(100, score)))
	cs.Details = fmt.Sprintf("Assessed %d eligibility criteria", len(matches))
	if len(issues) > 0 {
		cs.Details = "Potential issue: " + issues[0]
	}
	cs.Matched = matches
	cs.Concerns = issues
	return cs
}

func scoreTimeline(npo *models.NPOProfile, grant *models.GrantRecord, now time.Time) models.ComponentScore {
	cs := models.ComponentScore{Name: models.ComponentTimeline}

	window := grant.GrantProfile.ApplicationWindow

	if window.IsOpenAllYear != nil && *window.IsOpenAllYear {
		cs.Score = 100
		cs.Details = "Application open year-round"
		return cs
	}

	if window.StartDate == "" && window.EndDate == "" {
		cs.Score = 60
		cs.Details = "Application timeline not clearly specified"
		return cs
	}

	urgency := profile.NormText(npo.FundingUrgency)
	if urgency == "" {
		urgency = models.UrgencyMedium
	}

	if window.StartDate != "" {
		start, err := time.Parse("2006-01-02", window.StartDate)
		if err != nil {
			cs.Score = 60
			cs.Details = "Application timeline unclear"
			return cs
		}
		if now.Before(start) {
			daysUntil := int(start.Sub(now).Hours() / 24)
			if urgency == models.UrgencyUrgent && daysUntil > 30 {
				cs.Score = 40
				cs.Details = fmt.Sprintf("Opens in %d days (may be too late for urgent need)", daysUntil)
			} else {
				cs.Score = 70
				cs.Details = fmt.Sprintf("Opens in %d days", daysUntil)
			}
			return cs
		}
	}

	if window.EndDate != "" {
		end, err := time.Parse("2006-01-02", window.EndDate)
		if err != nil {
			cs.Score = 60
			cs.Details = "Application timeline unclear"
			return cs
		}
		if now.After(end) {
			cs.Score = 0
			cs.Details = "Application window closed"
			return cs
		}
		daysLeft := int(end.Sub(now).Hours() / 24)
		switch {
		case daysLeft < 7:
			cs.Score = 30
			cs.Details = fmt.Sprintf("Only %d days left to apply", daysLeft)
		case daysLeft < 30:
			cs.Score = 80
			cs.Details = fmt.Sprintf("%d days left to apply", daysLeft)
		default:
			cs.Score = 100
			cs.Details = fmt.Sprintf("%d days left to apply", daysLeft)
		}
		return cs
	}

	cs.Score = 60
	cs.Details = "Application timeline unclear"
	return cs
}

func scoreStrategicFit(npo *models.NPOProfile, grant *models.GrantRecord) models.ComponentScore {
	cs := models.ComponentScore{Name: models.ComponentStrategic}

	npoText := strings.TrimSpace(npo.Mission + " " + npo.Description)
	if strings.TrimSpace(npo.Mission) == "" && strings.TrimSpace(npo.Description) == "" {
		cs.Score = 50
		cs.Details = "NPO mission not provided"
		return cs
	}
	if strings.TrimSpace(grant.About) == "" {
		cs.Score = 50
		cs.Details = "Grant description not available"
		return cs
	}
	grantText := grant.About + " " + grant.Title

	npoWords := meaningfulWords(npoText)
	grantWords := meaningfulWords(grantText)
	if len(npoWords) == 0 || len(grantWords) == 0 {
		cs.Score = 50
		cs.Details = "Insufficient text for analysis"
		return cs
	}

	overlap := intersect(npoWords, grantWords)
	smaller := len(npoWords)
	if len(grantWords) < smaller {
		smaller = len(grantWords)
	}
	overlapRate := float64(len(overlap)) / float64(smaller)

	cs.Score = round1(math.Min(100, overlapRate*200))
	cs.Details = fmt.Sprintf("Found %d keyword matches", len(overlap))
	if len(overlap) > 5 {
		overlap = overlap[:5]
	}
	cs.Matched = overlap
	return cs
}

// Words too common to signal strategic alignment.
var strategicStopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {},
	"at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
}

func meaningfulWords(text string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range profile.Tokenize(text) {
		if len(w) <= 3 {
			continue
		}
		if _, stop := strategicStopwords[w]; stop {
			continue
		}
		words[w] = struct{}{}
	}
	return words
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, it := range items {
		k := strings.ToLower(strings.TrimSpace(it))
		if k != "" {
			set[k] = struct{}{}
		}
	}
	return set
}

func intersect(a, b map[string]struct{}) []string {
	var out []string
	for k := range a {
		if _, ok := b[k]; ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func subtract(a, b map[string]struct{}) []string {
	var out []string
	for k := range a {
		if _, ok := b[k]; !ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
