package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cheryl9/project-iceman/internal/profile"
	"github.com/cheryl9/project-iceman/internal/records"
)

var (
	profileIn       string
	profileOut      string
	profileTaxonomy string
	profileLimit    int
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Attach extracted grant profiles to a JSONL batch of grant records",
	RunE:  runProfile,
}

func init() {
	profileCmd.Flags().StringVar(&profileIn, "in", "", "input grants JSONL (raw scraper output)")
	profileCmd.Flags().StringVar(&profileOut, "out", "", "output JSONL with grant_profile and features attached")
	profileCmd.Flags().StringVar(&profileTaxonomy, "taxonomy", "", "optional YAML taxonomy override file")
	profileCmd.Flags().IntVar(&profileLimit, "limit", 0, "only process the first N records")
	_ = profileCmd.MarkFlagRequired("in")
	_ = profileCmd.MarkFlagRequired("out")
}

func runProfile(cmd *cobra.Command, args []string) error {
	runID := uuid.New()
	log := zap.L().With(zap.String("run_id", runID.String()))

	classifier, err := loadClassifier(profileTaxonomy)
	if err != nil {
		return err
	}
	builder := profile.NewBuilder(classifier)

	grants, err := records.ReadGrantsFile(profileIn)
	if err != nil {
		return err
	}
	if profileLimit > 0 && len(grants) > profileLimit {
		grants = grants[:profileLimit]
	}

	now := time.Now().UTC()
	for _, rec := range grants {
		builder.Attach(rec, now)
	}

	if err := records.WriteGrantsFile(profileOut, grants); err != nil {
		return err
	}

	log.Info("profiled grant records",
		zap.Int("records", len(grants)),
		zap.String("out", profileOut))
	return nil
}

func loadClassifier(path string) (*profile.Classifier, error) {
	if path == "" {
		return nil, nil
	}
	c, err := profile.LoadClassifier(path)
	if err != nil {
		return nil, fmt.Errorf("load taxonomy: %w", err)
	}
	return c, nil
}
