package model

// Severity classifies how dangerous a detected risk peak is.
type Severity string

const (
	SeverityNormal   Severity = "normal"
	SeverityElevated Severity = "elevated"
	SeverityCritical Severity = "critical"
)

// DangerMoment is a detected instant of elevated defensive risk.
//
// PeakTime through ActiveCodes are owned by the detector. MatchName,
// FingerprintSeq and TimeToGoalSec are stamped exactly once during
// enrichment; after that the moment is read-only for the rest of the run.
type DangerMoment struct {
	MatchName      string
	PeakTime       int
	PeakScore      float64
	Severity       Severity
	ResultedInGoal bool
	NexusTimestamp string // opaque video reference, e.g. "63:12"
	ActiveCodes    []string

	FingerprintSeq []string
	TimeToGoalSec  *int // seconds to the next opponent goal, nil if none in lookahead
}

// Summary returns the trimmed exemplar projection carried on a result.
func (d DangerMoment) Summary() MomentSummary {
	return MomentSummary{
		MatchName:      d.MatchName,
		PeakTime:       d.PeakTime,
		PeakScore:      d.PeakScore,
		Severity:       d.Severity,
		ResultedInGoal: d.ResultedInGoal,
		NexusTimestamp: d.NexusTimestamp,
	}
}

// MomentSummary is the stable per-exemplar subset exposed on PatternResult.
// Key names are a contract with the downstream narrative generator.
type MomentSummary struct {
	MatchName      string   `json:"match_name"`
	PeakTime       int      `json:"peak_time"`
	PeakScore      float64  `json:"peak_score"`
	Severity       Severity `json:"severity"`
	ResultedInGoal bool     `json:"resulted_in_goal"`
	NexusTimestamp string   `json:"nexus_timestamp"`
}
