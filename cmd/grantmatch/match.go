package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cheryl9/project-iceman/internal/match"
	"github.com/cheryl9/project-iceman/internal/profile"
	"github.com/cheryl9/project-iceman/internal/records"
)

var (
	matchNPO      string
	matchIn       string
	matchTaxonomy string
	matchTopN     int
	matchJSON     bool
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank a JSONL batch of grants against an NPO profile",
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&matchNPO, "npo", "", "NPO profile YAML file")
	matchCmd.Flags().StringVar(&matchIn, "in", "", "input grants JSONL")
	matchCmd.Flags().StringVar(&matchTaxonomy, "taxonomy", "", "optional YAML taxonomy override file")
	matchCmd.Flags().IntVar(&matchTopN, "top", match.DefaultTopN, "number of results to keep")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "emit full results as JSON instead of a table")
	_ = matchCmd.MarkFlagRequired("npo")
	_ = matchCmd.MarkFlagRequired("in")
}

func runMatch(cmd *cobra.Command, args []string) error {
	npo, err := records.LoadNPOProfile(matchNPO)
	if err != nil {
		return err
	}

	grants, err := records.ReadGrantsFile(matchIn)
	if err != nil {
		return err
	}

	classifier, err := loadClassifier(matchTaxonomy)
	if err != nil {
		return err
	}

	ranker := match.NewRanker(match.NewMatcher(profile.NewBuilder(classifier)), zap.L())
	results := ranker.Rank(npo, grants, time.Now().UTC(), matchTopN)

	if matchJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Score", "Confidence", "Grant", "Agency"})
	for i, r := range results {
		t.AppendRow(table.Row{i + 1, fmt.Sprintf("%.1f", r.Score), r.Confidence, profile.TruncateText(r.GrantName, 60), r.Agency})
	}
	t.Render()

	zap.L().Info("ranked grants",
		zap.String("npo", npo.Name),
		zap.Int("scored", len(grants)),
		zap.Int("returned", len(results)))
	return nil
}
