package models

// Funding urgency levels declared by an NPO. Empty is treated as medium.
const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyUrgent = "urgent"
)

// NPOProfile describes the organization looking for funding. Supplied by the
// caller and never mutated by the core.
type NPOProfile struct {
	Name               string   `json:"name" yaml:"name"`
	OrganizationType   string   `json:"organization_type" yaml:"organization_type"`
	RegistrationStatus string   `json:"registration_status" yaml:"registration_status"`
	IssueAreas         []string `json:"issue_areas" yaml:"issue_areas"`
	ProjectTypes       []string `json:"project_types" yaml:"project_types"`
	FundingMin         float64  `json:"funding_min" yaml:"funding_min"`
	FundingMax         float64  `json:"funding_max" yaml:"funding_max"` // 0 = unbounded
	FundingUrgency     string   `json:"funding_urgency" yaml:"funding_urgency"`
	Mission            string   `json:"mission" yaml:"mission"`
	Description        string   `json:"description" yaml:"description"`
}
