package model

// Pattern is an in-progress cluster of danger moments grouped by fingerprint
// similarity. It lives only for one clustering pass; the scorer finalizes it
// into a PatternResult.
type Pattern struct {
	Sequence       []string            // representative fingerprint, kept minimal
	Matches        map[string]struct{} // contributing match names
	Examples       []DangerMoment      // capped exemplars, first-seen order
	GoalsInPattern int
}

// PatternResult is the immutable scored output record. Field names and
// semantics are a stable contract: the downstream narrative generator
// consumes this document by key.
type PatternResult struct {
	Sequence       []string `json:"sequence"`
	MatchCount     int      `json:"match_count"`
	Frequency      string   `json:"frequency"` // e.g. "4/11 matches"
	Occurrences    int      `json:"occurrences"`
	GoalsInPattern int      `json:"goals_in_pattern"`

	PatternGoalRate  float64  `json:"pattern_goal_rate"`
	BaselineGoalRate float64  `json:"baseline_goal_rate"`
	Lift             float64  `json:"lift"`
	AvgTimeToGoal    *float64 `json:"avg_time_to_goal"`

	PosteriorMean       float64 `json:"posterior_mean"`
	CILevel             float64 `json:"ci_level"`
	CILow               float64 `json:"ci_low"`
	CIHigh              float64 `json:"ci_high"`
	PGoalRateGtBaseline float64 `json:"p_goal_rate_gt_baseline"`
	ConfidenceScore     float64 `json:"confidence_score"`
	ConfidenceTier      string  `json:"confidence_tier"`

	ExampleMatches []string        `json:"example_matches"`
	Examples       []MomentSummary `json:"examples"`
}
