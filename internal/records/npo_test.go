package records

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeProfile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "npo.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadNPOProfile(t *testing.T) {
	path := writeProfile(t, `
name: Silver Care Society
organization_type: non-profit
registration_status: registered charity
issue_areas: [ageing, health]
project_types: [project_based]
funding_min: 5000
funding_max: 20000
funding_urgency: medium
mission: supporting elderly residents with dementia
`)

	npo, err := LoadNPOProfile(path)
	if err != nil {
		t.Fatal(err)
	}

	if npo.Name != "Silver Care Society" {
		t.Errorf("Name = %q", npo.Name)
	}
	if !reflect.DeepEqual(npo.IssueAreas, []string{"ageing", "health"}) {
		t.Errorf("IssueAreas = %v", npo.IssueAreas)
	}
	if npo.FundingMin != 5000 || npo.FundingMax != 20000 {
		t.Errorf("funding range = %v..%v", npo.FundingMin, npo.FundingMax)
	}
}

func TestLoadNPOProfileExpandsEnv(t *testing.T) {
	t.Setenv("ORG_NAME", "Env Society")
	path := writeProfile(t, "name: ${ORG_NAME}\n")

	npo, err := LoadNPOProfile(path)
	if err != nil {
		t.Fatal(err)
	}
	if npo.Name != "Env Society" {
		t.Errorf("Name = %q, want Env Society", npo.Name)
	}
}

func TestLoadNPOProfileValidation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "min above max",
			body:    "funding_min: 9000\nfunding_max: 1000\n",
			wantErr: "funding_min",
		},
		{
			name:    "unknown urgency",
			body:    "funding_urgency: yesterday\n",
			wantErr: "funding_urgency",
		},
		{
			name:    "not yaml",
			body:    "name: [unclosed\n",
			wantErr: "parse npo profile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadNPOProfile(writeProfile(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadNPOProfileUnboundedMax(t *testing.T) {
	npo, err := LoadNPOProfile(writeProfile(t, "funding_min: 5000\nfunding_max: 0\n"))
	if err != nil {
		t.Fatal(err)
	}
	if npo.FundingMax != 0 {
		t.Errorf("FundingMax = %v, want 0 (unbounded)", npo.FundingMax)
	}
}
