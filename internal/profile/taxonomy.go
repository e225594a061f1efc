package profile

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Taxonomy maps category labels to their trigger keywords. Matching is
// case-insensitive substring matching against normalized text, so every
// classification is traceable to a literal phrase.
type Taxonomy map[string][]string

// IssueAreaDigitalTech gets a stricter two-term check (see matchDigitalTech)
// because incidental tech mentions are everywhere in grant prose.
const IssueAreaDigitalTech = "digital_tech"

var defaultIssueAreas = Taxonomy{
	"ageing":               {"elderly", "senior", "ageing", "aging", "dementia", "retirement", "caregiver"},
	"health":               {"health", "healthcare", "nursing", "clinic", "medical", "wellness", "disease", "mental health"},
	"community":            {"community", "volunteer", "social service", "social services", "family", "residents", "grassroots"},
	"education":            {"school", "students", "education", "training", "upskill", "reskill", "workshop", "course", "learning"},
	"employment":           {"employment", "job", "jobs", "hiring", "recruit", "recruitment", "career", "workforce"},
	"environment":          {"climate", "environment", "sustainability", "carbon", "recycling", "green", "biodiversity"},
	"arts_culture":         {"arts", "culture", "heritage", "museum", "music", "dance", "theatre", "literature"},
	"sports":               {"sport", "sports", "physical activity", "fitness", "exercise", "team singapore"},
	"youth":                {"youth", "young", "teen", "students"},
	"disability_inclusion": {"disability", "inclusive", "inclusion", "special needs", "accessibility", "assistive"},
	IssueAreaDigitalTech:   {"digital", "technology", "tech", "software", "platform", "system", "solution", "digitalisation", "digitalization"},
}

var defaultScopeTags = Taxonomy{
	"training_manpower":   {"training", "attachment", "attachments", "leadership programme", "talent", "capability", "manpower", "upskill", "reskill"},
	"project_based":       {"project", "initiative", "scheme", "pilot", "implementation", "deliverables"},
	"equipment_capex":     {"equipment", "hardware", "device", "capex", "purchase", "procure", "implementation cost"},
	"operations_support":  {"operating cost", "operational", "opex", "recurring", "day-to-day", "running cost"},
	"research_evaluation": {"research", "study", "evaluate", "evaluation", "impact assessment", "data collection"},
}

var digitalTechCore = []string{"digital", "technology", "tech", "digitalisation", "digitalization"}
var digitalTechContext = []string{"platform", "system", "software", "solution", "transformation", "adopt", "adoption", "implement"}

// Classifier holds the taxonomy tables used for profile extraction. The zero
// value is unusable; use NewClassifier or LoadClassifier. Tables are never
// mutated after construction.
type Classifier struct {
	issueAreas Taxonomy
	scopeTags  Taxonomy
}

// NewClassifier returns a classifier with the built-in taxonomies.
func NewClassifier() *Classifier {
	return &Classifier{issueAreas: defaultIssueAreas, scopeTags: defaultScopeTags}
}

type taxonomyFile struct {
	IssueAreas Taxonomy `yaml:"issue_areas"`
	ScopeTags  Taxonomy `yaml:"scope_tags"`
}

// LoadClassifier reads taxonomy overrides from a YAML file. A table missing
// from the file keeps its built-in default, so overrides replace wholesale
// per table rather than merging keyword by keyword.
func LoadClassifier(path string) (*Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy file: %w", err)
	}

	var f taxonomyFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse taxonomy file: %w", err)
	}

	c := NewClassifier()
	if len(f.IssueAreas) > 0 {
		c.issueAreas = f.IssueAreas
	}
	if len(f.ScopeTags) > 0 {
		c.scopeTags = f.ScopeTags
	}
	return c, nil
}

// IssueAreas classifies normalized grant text into issue area labels,
// sorted for reproducibility.
func (c *Classifier) IssueAreas(text string) []string {
	t := NormText(text)
	var hits []string
	for area, keywords := range c.issueAreas {
		if area == IssueAreaDigitalTech {
			continue
		}
		if containsAny(t, keywords) {
			hits = append(hits, area)
		}
	}
	if _, ok := c.issueAreas[IssueAreaDigitalTech]; ok && matchDigitalTech(t) {
		hits = append(hits, IssueAreaDigitalTech)
	}
	sort.Strings(hits)
	return hits
}

// ScopeTags classifies normalized grant text into scope tag labels, sorted.
func (c *Classifier) ScopeTags(text string) []string {
	t := NormText(text)
	var hits []string
	for tag, keywords := range c.scopeTags {
		if containsAny(t, keywords) {
			hits = append(hits, tag)
		}
	}
	sort.Strings(hits)
	return hits
}

// matchDigitalTech requires both a core tech term and a contextual term, so a
// passing mention of "technology" alone does not tag the grant.
func matchDigitalTech(t string) bool {
	return containsAny(t, digitalTechCore) && containsAny(t, digitalTechContext)
}
