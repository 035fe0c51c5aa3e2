package output

import (
	"strings"

	"github.com/crimson-sun/backline/internal/model"
)

// NarrativePattern is the trimmed field subset the downstream narrative
// generator consumes. Keys are stable; the generator reads them by name.
type NarrativePattern struct {
	Sequence       []string `json:"sequence"`
	Frequency      string   `json:"frequency"`
	ExampleMatches []string `json:"example_matches"`
	AvgTimeToGoal  *float64 `json:"avg_time_to_goal"`

	ConfidenceScore     float64 `json:"confidence_score"`
	ConfidenceTier      string  `json:"confidence_tier"`
	Lift                float64 `json:"lift"`
	Occurrences         int     `json:"occurrences"`
	GoalsInPattern      int     `json:"goals_in_pattern"`
	PatternGoalRate     float64 `json:"pattern_goal_rate"`
	BaselineGoalRate    float64 `json:"baseline_goal_rate"`
	PGoalRateGtBaseline float64 `json:"p_goal_rate_gt_baseline"`
}

// FormatForNarrative projects the top-N ranked results onto the narrative
// field subset. Pure projection: no scoring or filtering happens here.
func FormatForNarrative(results []model.PatternResult, topN int) []NarrativePattern {
	if topN > len(results) {
		topN = len(results)
	}
	out := make([]NarrativePattern, 0, topN)
	for _, r := range results[:topN] {
		out = append(out, NarrativePattern{
			Sequence:            r.Sequence,
			Frequency:           r.Frequency,
			ExampleMatches:      r.ExampleMatches,
			AvgTimeToGoal:       r.AvgTimeToGoal,
			ConfidenceScore:     r.ConfidenceScore,
			ConfidenceTier:      r.ConfidenceTier,
			Lift:                r.Lift,
			Occurrences:         r.Occurrences,
			GoalsInPattern:      r.GoalsInPattern,
			PatternGoalRate:     r.PatternGoalRate,
			BaselineGoalRate:    r.BaselineGoalRate,
			PGoalRateGtBaseline: r.PGoalRateGtBaseline,
		})
	}
	return out
}

// PrettySequence renders a fingerprint as the arrow-joined string used in
// human-readable summaries.
func PrettySequence(seq []string) string {
	return strings.Join(seq, " → ")
}
