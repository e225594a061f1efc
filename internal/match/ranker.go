package match

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/cheryl9/project-iceman/internal/models"
)

// DefaultTopN caps batch ranking output when the caller passes topN <= 0.
const DefaultTopN = 20

// Ranker scores one NPO against many grants.
type Ranker struct {
	matcher *Matcher
	log     *zap.Logger
}

// NewRanker returns a ranker using the given matcher (nil for a default one)
// and logger (nil for the global logger).
func NewRanker(m *Matcher, log *zap.Logger) *Ranker {
	if m == nil {
		m = NewMatcher(nil)
	}
	if log == nil {
		log = zap.L()
	}
	return &Ranker{matcher: m, log: log}
}

// Rank scores every grant and returns the top N results sorted by match
// score descending, original order preserved among ties. A grant that fails
// to score is logged and skipped; the batch never fails.
func (r *Ranker) Rank(npo *models.NPOProfile, grants []*models.GrantRecord, now time.Time, topN int) []models.MatchResult {
	if topN <= 0 {
		topN = DefaultTopN
	}

	results := make([]models.MatchResult, 0, len(grants))
	for _, grant := range grants {
		result, err := r.matcher.Score(npo, grant, now)
		if err != nil {
			title := ""
			if grant != nil {
				title = grant.Title
			}
			r.log.Warn("skipping grant that failed to score",
				zap.String("grant", title),
				zap.Error(err))
			continue
		}
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })

	if len(results) > topN {
		results = results[:topN]
	}
	return results
}
