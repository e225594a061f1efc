package match

import (
	"math"
	"testing"
	"time"

	"github.com/cheryl9/project-iceman/internal/models"
)

var testNow = time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

func openAllYearWindow() models.ApplicationWindow {
	open := true
	return models.ApplicationWindow{IsOpenAllYear: &open}
}

func TestScoreWorkedExample(t *testing.T) {
	capAmount := 15000.0
	npo := &models.NPOProfile{
		IssueAreas: []string{"ageing"},
		FundingMin: 5000,
		FundingMax: 20000,
	}
	grant := grantWithProfile(models.GrantProfile{
		IssueAreas:        []string{"ageing", "health"},
		Funding:           models.FundingInfo{CapAmountSGD: &capAmount},
		ApplicationWindow: openAllYearWindow(),
	})

	result, err := NewMatcher(nil).Score(npo, grant, testNow)
	if err != nil {
		t.Fatal(err)
	}

	wantComponents := map[string]float64{
		models.ComponentIssueArea:   65,
		models.ComponentScope:       100,
		models.ComponentFunding:     83.3,
		models.ComponentEligibility: 70,
		models.ComponentTimeline:    100,
		models.ComponentStrategic:   50,
	}
	for name, want := range wantComponents {
		c := result.Component(name)
		if c == nil {
			t.Fatalf("missing component %s", name)
		}
		if c.Score != want {
			t.Errorf("%s = %v, want %v", name, c.Score, want)
		}
	}

	// Weighted 79.16 plus the three-strong-components bonus.
	if math.Abs(result.Score-84.2) > 0.05 {
		t.Errorf("final score = %v, want ~84.2", result.Score)
	}
	if result.Confidence != models.ConfidenceMedium {
		t.Errorf("confidence = %s, want medium", result.Confidence)
	}
}

func TestScoreEmptyIssueAreasPenalty(t *testing.T) {
	npo := &models.NPOProfile{IssueAreas: nil}
	grant := grantWithProfile(models.GrantProfile{
		IssueAreas:        []string{"ageing"},
		ApplicationWindow: openAllYearWindow(),
	})

	withPenalty, err := NewMatcher(nil).Score(npo, grant, testNow)
	if err != nil {
		t.Fatal(err)
	}

	if c := withPenalty.Component(models.ComponentIssueArea); c.Score != 0 {
		t.Fatalf("issue area score = %v, want 0", c.Score)
	}

	// Same pair but with a matching issue area set scores exactly the
	// weighted issue delta plus the 15-point penalty higher.
	npo.IssueAreas = []string{"ageing"}
	without, err := NewMatcher(nil).Score(npo, grant, testNow)
	if err != nil {
		t.Fatal(err)
	}

	// issue 0->100 adds 30 weighted, removes -15, adds +5 perfect bonus,
	// and tips the strong-component count to three for another +5.
	wantDelta := 30.0 + 15 + 5 + 5
	if math.Abs((without.Score-withPenalty.Score)-wantDelta) > 0.05 {
		t.Errorf("delta = %v, want %v", without.Score-withPenalty.Score, wantDelta)
	}
}

func TestScoreClampedToHundred(t *testing.T) {
	capAmount := 100000.0
	npo := &models.NPOProfile{
		IssueAreas:         []string{"ageing"},
		ProjectTypes:       []string{"project_based"},
		FundingMin:         1000,
		FundingMax:         5000,
		OrganizationType:   "non-profit social service agency",
		RegistrationStatus: "registered charity",
		Mission:            "dementia care support for elderly residents in the community",
	}
	grant := grantWithProfile(models.GrantProfile{
		IssueAreas:        []string{"ageing"},
		ScopeTags:         []string{"project_based"},
		Funding:           models.FundingInfo{CapAmountSGD: &capAmount},
		ApplicationWindow: openAllYearWindow(),
	})
	grant.WhoCanApply = "Registered charity or non-profit social service agencies registered in Singapore"
	grant.About = "dementia care support for elderly residents in the community"

	result, err := NewMatcher(nil).Score(npo, grant, testNow)
	if err != nil {
		t.Fatal(err)
	}

	if result.Score > 100 || result.Score < 0 {
		t.Fatalf("final score out of range: %v", result.Score)
	}
	if result.Score != 100 {
		t.Errorf("expected clamp at 100, got %v", result.Score)
	}
	if result.Confidence != models.ConfidenceHigh {
		t.Errorf("confidence = %s, want high", result.Confidence)
	}
}

func TestScoreClosedWindowPenalty(t *testing.T) {
	closed := false
	npo := &models.NPOProfile{IssueAreas: []string{"ageing"}}
	grant := grantWithProfile(models.GrantProfile{
		IssueAreas: []string{"ageing"},
		ApplicationWindow: models.ApplicationWindow{
			IsOpenAllYear: &closed,
			StartDate:     "2026-01-01",
			EndDate:       "2026-02-01",
		},
	})

	result, err := NewMatcher(nil).Score(npo, grant, testNow)
	if err != nil {
		t.Fatal(err)
	}

	if c := result.Component(models.ComponentTimeline); c.Score != 0 {
		t.Fatalf("timeline score = %v, want 0 (closed)", c.Score)
	}

	// issue 100*0.3 + scope 100*0.2 + funding 70*0.2 + elig 70*0.15 +
	// timeline 0 + strategic 50*0.05 = 77; +5 perfect issue, -20 closed
	// window, only two components reach 80 so no trio bonus.
	if math.Abs(result.Score-62) > 0.05 {
		t.Errorf("final score = %v, want 62", result.Score)
	}
}

func TestScoreAttachesMissingProfile(t *testing.T) {
	npo := &models.NPOProfile{IssueAreas: []string{"ageing"}}
	grant := &models.GrantRecord{
		Title: "Elder Care Fund",
		About: "Support for elderly caregivers",
	}

	result, err := NewMatcher(nil).Score(npo, grant, testNow)
	if err != nil {
		t.Fatal(err)
	}
	if c := result.Component(models.ComponentIssueArea); c.Score != 100 {
		t.Errorf("expected extraction to find ageing, got %v", c.Score)
	}

	// The caller's record is left untouched.
	if grant.GrantProfile != nil {
		t.Error("Score must not mutate the input record")
	}
}

func TestScoreNilInputs(t *testing.T) {
	m := NewMatcher(nil)
	if _, err := m.Score(nil, &models.GrantRecord{}, testNow); err == nil {
		t.Error("expected error for nil npo")
	}
	if _, err := m.Score(&models.NPOProfile{}, nil, testNow); err == nil {
		t.Error("expected error for nil grant")
	}
}

func TestConfidenceLevels(t *testing.T) {
	mk := func(details string, score float64) models.ComponentScore {
		return models.ComponentScore{Details: details, Score: score}
	}

	tests := []struct {
		name       string
		components []models.ComponentScore
		want       string
	}{
		{
			name: "three unclear is low",
			components: []models.ComponentScore{
				mk("Funding amount not specified in grant", 70),
				mk("Eligibility criteria not specified", 70),
				mk("Application timeline unclear", 60),
				mk("ok", 80), mk("ok", 80), mk("ok", 80),
			},
			want: models.ConfidenceLow,
		},
		{
			name: "one unclear is medium",
			components: []models.ComponentScore{
				mk("Funding details unclear", 60),
				mk("ok", 90), mk("ok", 90), mk("ok", 90), mk("ok", 90), mk("ok", 90),
			},
			want: models.ConfidenceMedium,
		},
		{
			name: "clean and strong is high",
			components: []models.ComponentScore{
				mk("ok", 80), mk("ok", 80), mk("ok", 80), mk("ok", 80), mk("ok", 80), mk("ok", 80),
			},
			want: models.ConfidenceHigh,
		},
		{
			name: "clean but weak is medium",
			components: []models.ComponentScore{
				mk("ok", 40), mk("ok", 40), mk("ok", 40), mk("ok", 40), mk("ok", 40), mk("ok", 40),
			},
			want: models.ConfidenceMedium,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := confidence(tt.components); got != tt.want {
				t.Errorf("confidence = %s, want %s", got, tt.want)
			}
		})
	}
}
