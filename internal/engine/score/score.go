package score

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/crimson-sun/backline/internal/engine/similarity"
	"github.com/crimson-sun/backline/internal/model"
)

// Config controls pattern scoring and filtering.
type Config struct {
	SimilarityThreshold float64 // membership test threshold, same as clustering (default 0.85)
	MinPatternLen       int     // minimum valid fingerprint length (default 2)

	MinMatchFrequency int     // discard clusters seen in fewer distinct matches (default 2)
	MinOccurrences    int     // discard clusters with fewer baseline occurrences (default 3)
	MinLift           float64 // discard clusters below this lift (default 1.15)

	CILevel              float64 // credible-interval level (default 0.90)
	SupportTargetOcc     int     // occurrences at which support saturates (default 25)
	SupportTargetMatches int     // matches at which support saturates (default 6)

	TierHigh   float64 // confidence score for the "high" tier (default 0.70)
	TierMedium float64 // confidence score for the "medium" tier (default 0.45)
}

// DefaultConfig returns the shipped scoring settings.
func DefaultConfig() Config {
	return Config{
		SimilarityThreshold:  0.85,
		MinPatternLen:        2,
		MinMatchFrequency:    2,
		MinOccurrences:       3,
		MinLift:              1.15,
		CILevel:              0.90,
		SupportTargetOcc:     25,
		SupportTargetMatches: 6,
		TierHigh:             0.70,
		TierMedium:           0.45,
	}
}

// Scorer recounts clusters against the baseline population and attaches
// Bayesian confidence statistics.
type Scorer struct {
	cfg Config
}

// New creates a Scorer with the given config.
func New(cfg Config) *Scorer {
	return &Scorer{cfg: cfg}
}

// Score finalizes candidate clusters into ranked PatternResults.
//
// Occurrence and goal counts are recomputed from scratch against every valid
// baseline moment, independently of which moments built the cluster, so the
// published rates are against the full baseline population. Each member
// outcome is a Bernoulli trial with unknown goal probability p under a
// Beta(1,1) prior, giving a Beta(k+1, n−k+1) posterior. Results are sorted
// descending by (confidence score, lift, match count, occurrences). A nil or
// empty baseline yields a zero baseline rate, zero lift, and therefore no
// surviving patterns.
func (s *Scorer) Score(clusters []model.Pattern, baseline []model.DangerMoment) []model.PatternResult {
	baselineRate := s.baselineGoalRate(baseline)
	totalMatches := distinctMatches(baseline)
	alpha := (1.0 - s.cfg.CILevel) / 2.0

	var out []model.PatternResult
	for _, c := range clusters {
		matchCount := len(c.Matches)
		if matchCount < s.cfg.MinMatchFrequency {
			continue
		}

		occurrences, goals, deltas := s.recount(c.Sequence, baseline)
		if occurrences < s.cfg.MinOccurrences {
			continue
		}

		patternRate := float64(goals) / float64(occurrences)
		lift := 0.0
		if baselineRate > 0 {
			lift = patternRate / baselineRate
		}
		if lift < s.cfg.MinLift {
			continue
		}

		var avgTimeToGoal *float64
		if len(deltas) > 0 {
			sum := 0
			for _, d := range deltas {
				sum += d
			}
			avg := round(float64(sum)/float64(len(deltas)), 2)
			avgTimeToGoal = &avg
		}

		posterior := distuv.Beta{
			Alpha: float64(goals + 1),
			Beta:  float64(occurrences - goals + 1),
		}
		postMean := posterior.Alpha / (posterior.Alpha + posterior.Beta)
		ciLow := posterior.Quantile(alpha)
		ciHigh := posterior.Quantile(1.0 - alpha)
		pGtBaseline := 1.0 - posterior.CDF(baselineRate)

		supportOcc := math.Min(1.0, math.Log1p(float64(occurrences))/math.Log1p(float64(s.cfg.SupportTargetOcc)))
		supportMatches := math.Min(1.0, float64(matchCount)/float64(s.cfg.SupportTargetMatches))
		supportScaler := 0.5*supportOcc + 0.5*supportMatches

		confidence := pGtBaseline * supportScaler

		out = append(out, model.PatternResult{
			Sequence:       c.Sequence,
			MatchCount:     matchCount,
			Frequency:      frequency(matchCount, totalMatches),
			Occurrences:    occurrences,
			GoalsInPattern: goals,

			PatternGoalRate:  round(patternRate, 4),
			BaselineGoalRate: round(baselineRate, 4),
			Lift:             round(lift, 3),
			AvgTimeToGoal:    avgTimeToGoal,

			PosteriorMean:       round(postMean, 4),
			CILevel:             s.cfg.CILevel,
			CILow:               round(ciLow, 4),
			CIHigh:              round(ciHigh, 4),
			PGoalRateGtBaseline: round(pGtBaseline, 4),
			ConfidenceScore:     round(confidence, 4),
			ConfidenceTier:      s.tier(confidence),

			ExampleMatches: exampleMatches(c.Matches, 5),
			Examples:       summaries(c.Examples),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.ConfidenceScore != b.ConfidenceScore {
			return a.ConfidenceScore > b.ConfidenceScore
		}
		if a.Lift != b.Lift {
			return a.Lift > b.Lift
		}
		if a.MatchCount != b.MatchCount {
			return a.MatchCount > b.MatchCount
		}
		return a.Occurrences > b.Occurrences
	})
	return out
}

// recount tests every valid baseline moment against the representative and
// tallies occurrences, goals, and time-to-goal deltas for goal members.
func (s *Scorer) recount(rep []string, baseline []model.DangerMoment) (occurrences, goals int, deltas []int) {
	for _, m := range baseline {
		if !s.validSeq(m.FingerprintSeq) {
			continue
		}
		if similarity.Score(m.FingerprintSeq, rep) < s.cfg.SimilarityThreshold {
			continue
		}
		occurrences++
		if m.ResultedInGoal {
			goals++
			if m.TimeToGoalSec != nil {
				deltas = append(deltas, *m.TimeToGoalSec)
			}
		}
	}
	return occurrences, goals, deltas
}

// baselineGoalRate is the share of valid baseline moments that resulted in a
// goal, computed once for the whole set. An empty or all-invalid baseline
// degrades to 0, never an error.
func (s *Scorer) baselineGoalRate(baseline []model.DangerMoment) float64 {
	occ, goals := 0, 0
	for _, m := range baseline {
		if !s.validSeq(m.FingerprintSeq) {
			continue
		}
		occ++
		if m.ResultedInGoal {
			goals++
		}
	}
	if occ == 0 {
		return 0.0
	}
	return float64(goals) / float64(occ)
}

func (s *Scorer) validSeq(seq []string) bool {
	return len(seq) >= s.cfg.MinPatternLen
}

func (s *Scorer) tier(confidence float64) string {
	switch {
	case confidence >= s.cfg.TierHigh:
		return "high"
	case confidence >= s.cfg.TierMedium:
		return "medium"
	default:
		return "low"
	}
}

func distinctMatches(moments []model.DangerMoment) int {
	seen := make(map[string]struct{})
	for _, m := range moments {
		seen[m.MatchName] = struct{}{}
	}
	return len(seen)
}

func exampleMatches(matches map[string]struct{}, limit int) []string {
	names := make([]string, 0, len(matches))
	for name := range matches {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) > limit {
		names = names[:limit]
	}
	return names
}

func summaries(examples []model.DangerMoment) []model.MomentSummary {
	out := make([]model.MomentSummary, len(examples))
	for i, ex := range examples {
		out[i] = ex.Summary()
	}
	return out
}

func frequency(matchCount, totalMatches int) string {
	return fmt.Sprintf("%d/%d matches", matchCount, totalMatches)
}

func round(x float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(x*scale) / scale
}
