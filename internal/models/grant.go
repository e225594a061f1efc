package models

import (
	"encoding/json"
	"strings"
	"time"
)

// StringList unmarshals from either a JSON string or an array of strings.
// Scraped section content arrives in both shapes.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	if strings.TrimSpace(single) == "" {
		*s = nil
		return nil
	}
	*s = StringList{single}
	return nil
}

// GrantSection is one heading + content block from a scraped grant page.
type GrantSection struct {
	Heading string     `json:"heading"`
	Content StringList `json:"content"`
}

// OtherSection preserves a non-standard section for display; it is never scored.
type OtherSection struct {
	Heading string   `json:"heading"`
	Content []string `json:"content"`
}

// GrantRecord is the raw grant as delivered by the crawler. All fields are
// optional; absent text is treated as empty.
type GrantRecord struct {
	Title       string         `json:"title"`
	Agency      string         `json:"agency"`
	About       string         `json:"about"`
	WhoCanApply string         `json:"who_can_apply"`
	WhenToApply string         `json:"when_to_apply"`
	Funding     string         `json:"funding"`
	HowToApply  string         `json:"how_to_apply"`
	Sections    []GrantSection `json:"sections,omitempty"`
	SourceURL   string         `json:"source_url"`

	GrantProfile *GrantProfile  `json:"grant_profile,omitempty"`
	Features     *Features      `json:"features,omitempty"`
	Others       []OtherSection `json:"others,omitempty"`
}

// GrantID derives a stable identifier from the source URL (last non-empty
// path segment, matching the portal's URL layout). Empty if no URL.
func (g *GrantRecord) GrantID() string {
	u := strings.TrimSpace(g.SourceURL)
	if u == "" {
		return ""
	}
	parts := strings.Split(strings.TrimSuffix(u, "/"), "/")
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}

// FundingInfo holds the terms extracted from the funding section.
type FundingInfo struct {
	PercentMax        *float64 `json:"percent_max"`
	CapAmountSGD      *float64 `json:"cap_amount_sgd"`
	MentionsCofunding bool     `json:"mentions_cofunding"`
	Raw               string   `json:"raw,omitempty"`
}

// ApplicationWindow holds the parsed application period.
type ApplicationWindow struct {
	IsOpenAllYear *bool    `json:"is_open_all_year"`
	Dates         []string `json:"dates"` // ISO 8601, deduplicated, ascending
	StartDate     string   `json:"start_date,omitempty"`
	EndDate       string   `json:"end_date,omitempty"`
	Raw           string   `json:"raw,omitempty"`
}

// Evidence keeps the cleaned section texts the profile was derived from.
type Evidence struct {
	About       string `json:"about,omitempty"`
	WhoCanApply string `json:"who_can_apply,omitempty"`
	WhenToApply string `json:"when_to_apply,omitempty"`
	Funding     string `json:"funding,omitempty"`
	HowToApply  string `json:"how_to_apply,omitempty"`
}

// ProfileVersion identifies the extraction schema. Bump when field semantics change.
const ProfileVersion = 2

// GrantProfile is the structured profile derived from a GrantRecord.
// Built once; re-extraction replaces it wholesale.
type GrantProfile struct {
	IssueAreas        []string          `json:"issue_areas"`
	ScopeTags         []string          `json:"scope_tags"`
	KPISnippets       []string          `json:"kpi_snippets"`
	Funding           FundingInfo       `json:"funding"`
	ApplicationWindow ApplicationWindow `json:"application_window"`
	Evidence          Evidence          `json:"evidence"`
	Others            []OtherSection    `json:"others,omitempty"`
	GeneratedAt       time.Time         `json:"generated_at"`
	Version           int               `json:"version"`
}

// Features are the flat tags derived alongside the profile, used by
// downstream display/search layers.
type Features struct {
	Tags        []string  `json:"tags"`
	PhraseTags  []string  `json:"phrase_tags"`
	GeneratedAt time.Time `json:"generated_at"`
	Method      string    `json:"method"`
}
