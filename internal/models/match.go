package models

import "github.com/google/uuid"

// Component names, in scoring order. The order is load-bearing: ties in
// strength ranking resolve by this order.
const (
	ComponentIssueArea   = "issue_area_match"
	ComponentScope       = "scope_alignment"
	ComponentFunding     = "funding_fit"
	ComponentEligibility = "eligibility_match"
	ComponentTimeline    = "timeline_urgency"
	ComponentStrategic   = "strategic_fit"
)

// Confidence labels for a match.
const (
	ConfidenceLow    = "low"
	ConfidenceMedium = "medium"
	ConfidenceHigh   = "high"
)

// ComponentScore is one weighted sub-score with its evidence.
type ComponentScore struct {
	Name     string   `json:"name"`
	Score    float64  `json:"score"` // 0-100
	Details  string   `json:"details"`
	Matched  []string `json:"matched,omitempty"`
	Missing  []string `json:"missing,omitempty"`
	Concerns []string `json:"concerns,omitempty"`
}

// MatchResult is the scored outcome for one NPO/grant pair. Owned entirely
// by the caller; the core keeps no state across calls.
type MatchResult struct {
	ID          uuid.UUID        `json:"id"`
	GrantID     string           `json:"grant_id,omitempty"`
	GrantName   string           `json:"grant_name"`
	Agency      string           `json:"agency"`
	GrantURL    string           `json:"grant_url,omitempty"`
	Score       float64          `json:"match_score"`
	Confidence  string           `json:"confidence"`
	Components  []ComponentScore `json:"components"`
	Reasoning   string           `json:"reasoning"`
	Strengths   []string         `json:"strengths"`
	Concerns    []string         `json:"concerns"`
	ActionItems []string         `json:"action_items"`
}

// Component returns the named component score, or nil if absent.
func (m *MatchResult) Component(name string) *ComponentScore {
	for i := range m.Components {
		if m.Components[i].Name == name {
			return &m.Components[i]
		}
	}
	return nil
}
