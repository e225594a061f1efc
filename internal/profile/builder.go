package profile

import (
	"sort"
	"time"

	"github.com/cheryl9/project-iceman/internal/models"
)

// Standard section headings on the grant portal. Anything else lands in the
// profile's Others list, preserved for display but never scored.
var knownHeadings = map[string]struct{}{
	"about this grant":                  {},
	"who can apply?":                    {},
	"when to apply?":                    {},
	"when can i apply?":                 {},
	"how much funding can you receive?": {},
	"how to apply?":                     {},
}

const fundingHeading = "how much funding can you receive?"

// Builder assembles GrantProfiles from raw grant records.
type Builder struct {
	classifier *Classifier
}

// NewBuilder returns a builder using the given classifier, or the built-in
// taxonomies when nil.
func NewBuilder(c *Classifier) *Builder {
	if c == nil {
		c = NewClassifier()
	}
	return &Builder{classifier: c}
}

// Build derives a GrantProfile and Features from a raw record. Deterministic
// given now; total over any record, missing fields are treated as empty.
func (b *Builder) Build(rec *models.GrantRecord, now time.Time) (models.GrantProfile, models.Features) {
	about := HTMLToText(rec.About)
	who := HTMLToText(rec.WhoCanApply)
	when := HTMLToText(rec.WhenToApply)
	funding := HTMLToText(rec.Funding)
	how := HTMLToText(rec.HowToApply)

	// Records scraped before the funding field existed carry the amount text
	// only as a titled section.
	if funding == "" {
		for _, s := range rec.Sections {
			if NormText(s.Heading) == fundingHeading {
				funding = JoinNonEmpty(s.Content, "\n")
				break
			}
		}
	}

	combined := JoinNonEmpty([]string{about, who, when, funding, how}, "\n")

	issueAreas := b.classifier.IssueAreas(combined)
	scopeTags := b.classifier.ScopeTags(combined)

	p := models.GrantProfile{
		IssueAreas:        issueAreas,
		ScopeTags:         scopeTags,
		KPISnippets:       ExtractKPISnippets(combined),
		Funding:           ExtractFunding(funding),
		ApplicationWindow: ExtractApplicationWindow(when),
		Evidence: models.Evidence{
			About:       about,
			WhoCanApply: who,
			WhenToApply: when,
			Funding:     funding,
			HowToApply:  how,
		},
		Others:      OtherSections(rec.Sections),
		GeneratedAt: now.UTC(),
		Version:     models.ProfileVersion,
	}

	f := models.Features{
		Tags:        mergeTags(issueAreas, scopeTags),
		PhraseTags:  PhraseTags(combined, MaxPhraseTags),
		GeneratedAt: p.GeneratedAt,
		Method:      "rule_based",
	}

	return p, f
}

// Attach builds and attaches the profile, features and others to the record
// in place, replacing any previous extraction wholesale.
func (b *Builder) Attach(rec *models.GrantRecord, now time.Time) {
	p, f := b.Build(rec, now)
	rec.GrantProfile = &p
	rec.Features = &f
	rec.Others = p.Others
}

// OtherSections filters record sections down to those with a non-standard
// heading and non-empty content.
func OtherSections(sections []models.GrantSection) []models.OtherSection {
	var others []models.OtherSection
	for _, s := range sections {
		heading := CleanText(s.Heading)
		if heading == "" {
			continue
		}
		if _, known := knownHeadings[NormText(heading)]; known {
			continue
		}
		var content []string
		for _, c := range s.Content {
			if clean := CleanText(c); clean != "" {
				content = append(content, clean)
			}
		}
		if len(content) == 0 {
			continue
		}
		others = append(others, models.OtherSection{Heading: heading, Content: content})
	}
	return others
}

func mergeTags(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	var out []string
	for _, list := range [][]string{a, b} {
		for _, t := range list {
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}
