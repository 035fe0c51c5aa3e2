package backline

import "github.com/crimson-sun/backline/internal/model"

// Report is the outcome of one analysis run.
type Report struct {
	RunID         string
	Mode          string
	TotalMatches  int
	BaselineCount int
	FocusCount    int
	Patterns      []Result
}

// Result is one scored pattern. Field names mirror the JSON contract
// consumed by the downstream narrative generator.
type Result struct {
	Sequence       []string
	MatchCount     int
	Frequency      string
	Occurrences    int
	GoalsInPattern int

	PatternGoalRate  float64
	BaselineGoalRate float64
	Lift             float64
	AvgTimeToGoal    *float64

	PosteriorMean       float64
	CILevel             float64
	CILow               float64
	CIHigh              float64
	PGoalRateGtBaseline float64
	ConfidenceScore     float64
	ConfidenceTier      string

	ExampleMatches []string
	Examples       []MomentSummary
}

// MomentSummary is a trimmed exemplar danger moment.
type MomentSummary struct {
	MatchName      string
	PeakTime       int
	PeakScore      float64
	Severity       string
	ResultedInGoal bool
	NexusTimestamp string
}

func resultFromPattern(p model.PatternResult) Result {
	examples := make([]MomentSummary, len(p.Examples))
	for i, ex := range p.Examples {
		examples[i] = MomentSummary{
			MatchName:      ex.MatchName,
			PeakTime:       ex.PeakTime,
			PeakScore:      ex.PeakScore,
			Severity:       string(ex.Severity),
			ResultedInGoal: ex.ResultedInGoal,
			NexusTimestamp: ex.NexusTimestamp,
		}
	}
	return Result{
		Sequence:            p.Sequence,
		MatchCount:          p.MatchCount,
		Frequency:           p.Frequency,
		Occurrences:         p.Occurrences,
		GoalsInPattern:      p.GoalsInPattern,
		PatternGoalRate:     p.PatternGoalRate,
		BaselineGoalRate:    p.BaselineGoalRate,
		Lift:                p.Lift,
		AvgTimeToGoal:       p.AvgTimeToGoal,
		PosteriorMean:       p.PosteriorMean,
		CILevel:             p.CILevel,
		CILow:               p.CILow,
		CIHigh:              p.CIHigh,
		PGoalRateGtBaseline: p.PGoalRateGtBaseline,
		ConfidenceScore:     p.ConfidenceScore,
		ConfidenceTier:      p.ConfidenceTier,
		ExampleMatches:      p.ExampleMatches,
		Examples:            examples,
	}
}
