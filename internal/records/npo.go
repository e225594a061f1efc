package records

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cheryl9/project-iceman/internal/models"
)

// LoadNPOProfile reads an NPO profile from a YAML file. Environment
// variables in the file (e.g. ${ORG_NAME}) are expanded before parsing.
func LoadNPOProfile(path string) (*models.NPOProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read npo profile: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var npo models.NPOProfile
	if err := yaml.Unmarshal([]byte(expanded), &npo); err != nil {
		return nil, fmt.Errorf("parse npo profile: %w", err)
	}

	if err := validateNPOProfile(&npo); err != nil {
		return nil, err
	}
	return &npo, nil
}

func validateNPOProfile(npo *models.NPOProfile) error {
	if npo.FundingMax > 0 && npo.FundingMin > npo.FundingMax {
		return fmt.Errorf("npo profile: funding_min (%.0f) exceeds funding_max (%.0f)", npo.FundingMin, npo.FundingMax)
	}
	switch strings.ToLower(strings.TrimSpace(npo.FundingUrgency)) {
	case "", models.UrgencyLow, models.UrgencyMedium, models.UrgencyUrgent:
		return nil
	default:
		return fmt.Errorf("npo profile: unknown funding_urgency %q", npo.FundingUrgency)
	}
}
