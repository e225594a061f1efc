package match

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cheryl9/project-iceman/internal/models"
	"github.com/cheryl9/project-iceman/internal/profile"
)

// ErrNilRecord is returned when Score is handed a nil grant or NPO.
var ErrNilRecord = errors.New("match: nil record")

// Matcher scores NPO/grant pairs. Stateless apart from the profile builder
// it uses to attach missing grant profiles; safe to reuse across calls.
type Matcher struct {
	builder *profile.Builder
}

// NewMatcher returns a matcher using the given builder, or a default one
// when nil.
func NewMatcher(b *profile.Builder) *Matcher {
	if b == nil {
		b = profile.NewBuilder(nil)
	}
	return &Matcher{builder: b}
}

// Score computes the full match result for one NPO/grant pair. The
// evaluation time is explicit so results are reproducible. If the grant
// carries no profile one is extracted first; the caller's record is not
// modified.
func (m *Matcher) Score(npo *models.NPOProfile, grant *models.GrantRecord, now time.Time) (models.MatchResult, error) {
	if npo == nil || grant == nil {
		return models.MatchResult{}, ErrNilRecord
	}

	if grant.GrantProfile == nil {
		g := *grant
		p, _ := m.builder.Build(&g, now)
		g.GrantProfile = &p
		grant = &g
	}

	components := []models.ComponentScore{
		scoreIssueAreas(npo, grant),
		scoreScopeTags(npo, grant),
		scoreFunding(npo, grant),
		scoreEligibility(npo, grant),
		scoreTimeline(npo, grant, now),
		scoreStrategicFit(npo, grant),
	}

	total := 0.0
	for _, c := range components {
		total += c.Score * weights[c.Name]
	}
	total += adjustments(components)
	final := round1(math.Max(0, math.Min(100, total)))

	result := models.MatchResult{
		ID:         uuid.New(),
		GrantID:    grant.GrantID(),
		GrantName:  grant.Title,
		Agency:     grant.Agency,
		GrantURL:   grant.SourceURL,
		Score:      final,
		Confidence: confidence(components),
		Components: components,
	}
	applyInsights(&result, components)
	return result, nil
}

// adjustments returns the additive contextual correction. The individual
// corrections are independent and may all apply at once; the caller clamps
// the final sum.
func adjustments(components []models.ComponentScore) float64 {
	adj := 0.0

	strong := 0
	for _, c := range components {
		if c.Score >= 80 {
			strong++
		}
	}
	if strong >= 3 {
		adj += 5
	}

	for _, c := range components {
		switch c.Name {
		case models.ComponentIssueArea:
			if c.Score == 0 {
				adj -= 15
			}
			if c.Score == 100 {
				adj += 5
			}
		case models.ComponentTimeline:
			if c.Score == 0 {
				adj -= 20
			}
		}
	}
	return adj
}

// confidence grades how much of the scoring leaned on missing or unclear
// data, judged by the wording of each component's details.
func confidence(components []models.ComponentScore) string {
	unclear := 0
	sum := 0.0
	for _, c := range components {
		sum += c.Score
		details := strings.ToLower(c.Details)
		if strings.Contains(details, "not specified") || strings.Contains(details, "unclear") {
			unclear++
		}
	}

	switch {
	case unclear >= 3:
		return models.ConfidenceLow
	case unclear >= 1:
		return models.ConfidenceMedium
	case sum/float64(len(components)) >= 70:
		return models.ConfidenceHigh
	default:
		return models.ConfidenceMedium
	}
}
