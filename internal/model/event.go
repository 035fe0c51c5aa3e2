package model

// MatchEvent is a single tagged event from a match export: a coded interval
// on the match clock, attributed to a team.
type MatchEvent struct {
	Code     string
	Team     string
	StartSec int
	EndSec   int
}

// TimelineRow is one second of the per-second risk timeline produced by the
// risk engine and consumed by the detector and the fingerprint builder.
type TimelineRow struct {
	TimestampSec int
	RiskScore    float64
	ActiveCodes  []string
}
