package detect

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/crimson-sun/backline/internal/model"
)

// Config holds the detector tunables.
type Config struct {
	TeamName       string  // our own team; goals by anyone else count as conceded
	PeakPercentile float64 // percentile of positive risk scores used as threshold (default 70)
	ThresholdFloor float64 // threshold never drops below this (default 40)
	MinDistance    int     // min seconds between peaks (default 35)
	Prominence     float64 // min rise over the surrounding troughs (default 10)
	GoalLookback   int     // seconds after a peak to associate a conceded goal (default 90)
	MergeWithinSec int     // peaks closer than this collapse into one (default 60)

	CriticalScore float64 // severity band: critical at or above (default 80)
	ElevatedScore float64 // severity band: elevated at or above (default 60)
}

// DefaultConfig returns the shipped detector settings.
func DefaultConfig() Config {
	return Config{
		TeamName:       "FC Barcelona",
		PeakPercentile: 70,
		ThresholdFloor: 40,
		MinDistance:    35,
		Prominence:     10,
		GoalLookback:   90,
		MergeWithinSec: 60,
		CriticalScore:  80,
		ElevatedScore:  60,
	}
}

// Detector picks danger moments out of a risk timeline.
type Detector struct {
	cfg Config
}

// New creates a Detector with the given config.
func New(cfg Config) *Detector {
	return &Detector{cfg: cfg}
}

// Detect returns the danger moments for one match, in time order.
//
// A moment is a local maximum of the risk score that clears the percentile
// threshold (never below the floor), rises at least Prominence over the
// troughs around it, and sits at least MinDistance from a higher peak.
// Surviving peaks within MergeWithinSec collapse into the highest of the
// group. Each moment is tagged with a severity band and whether an opponent
// goal followed within GoalLookback. An empty timeline yields no moments.
func (d *Detector) Detect(timeline []model.TimelineRow, events []model.MatchEvent) []model.DangerMoment {
	if len(timeline) == 0 {
		return nil
	}

	threshold := d.threshold(timeline)
	peaks := d.localMaxima(timeline, threshold)
	peaks = d.spaceApart(timeline, peaks)
	peaks = d.merge(timeline, peaks)

	goalTimes := OpponentGoalTimes(events, d.cfg.TeamName)

	moments := make([]model.DangerMoment, 0, len(peaks))
	for _, p := range peaks {
		row := timeline[p]
		moments = append(moments, model.DangerMoment{
			PeakTime:       row.TimestampSec,
			PeakScore:      row.RiskScore,
			Severity:       d.severity(row.RiskScore),
			ResultedInGoal: d.goalFollows(row.TimestampSec, goalTimes),
			NexusTimestamp: VideoTimestamp(row.TimestampSec),
			ActiveCodes:    row.ActiveCodes,
		})
	}
	return moments
}

// threshold is the configured percentile of the positive risk scores,
// clamped up to the floor.
func (d *Detector) threshold(timeline []model.TimelineRow) float64 {
	var scores []float64
	for _, row := range timeline {
		if row.RiskScore > 0 {
			scores = append(scores, row.RiskScore)
		}
	}
	if len(scores) == 0 {
		return d.cfg.ThresholdFloor
	}
	sort.Float64s(scores)
	t := stat.Quantile(d.cfg.PeakPercentile/100.0, stat.Empirical, scores, nil)
	if t < d.cfg.ThresholdFloor {
		t = d.cfg.ThresholdFloor
	}
	return t
}

// localMaxima returns indices of rows at or above threshold that are not
// lower than either neighbour and clear the prominence requirement.
func (d *Detector) localMaxima(timeline []model.TimelineRow, threshold float64) []int {
	var peaks []int
	for i, row := range timeline {
		if row.RiskScore < threshold {
			continue
		}
		if i > 0 && timeline[i-1].RiskScore > row.RiskScore {
			continue
		}
		if i < len(timeline)-1 && timeline[i+1].RiskScore >= row.RiskScore {
			continue
		}
		if d.prominence(timeline, i) < d.cfg.Prominence {
			continue
		}
		peaks = append(peaks, i)
	}
	return peaks
}

// prominence measures how far the peak rises over the higher of the two
// troughs within MinDistance on either side.
func (d *Detector) prominence(timeline []model.TimelineRow, i int) float64 {
	peak := timeline[i].RiskScore

	left := peak
	for j := i - 1; j >= 0 && timeline[i].TimestampSec-timeline[j].TimestampSec <= d.cfg.MinDistance; j-- {
		if timeline[j].RiskScore < left {
			left = timeline[j].RiskScore
		}
	}
	right := peak
	for j := i + 1; j < len(timeline) && timeline[j].TimestampSec-timeline[i].TimestampSec <= d.cfg.MinDistance; j++ {
		if timeline[j].RiskScore < right {
			right = timeline[j].RiskScore
		}
	}

	trough := left
	if right > trough {
		trough = right
	}
	return peak - trough
}

// spaceApart enforces MinDistance seconds between peaks, keeping the higher
// of any conflicting pair.
func (d *Detector) spaceApart(timeline []model.TimelineRow, peaks []int) []int {
	var kept []int
	for _, p := range peaks {
		if len(kept) == 0 {
			kept = append(kept, p)
			continue
		}
		last := kept[len(kept)-1]
		if timeline[p].TimestampSec-timeline[last].TimestampSec >= d.cfg.MinDistance {
			kept = append(kept, p)
			continue
		}
		if timeline[p].RiskScore > timeline[last].RiskScore {
			kept[len(kept)-1] = p
		}
	}
	return kept
}

// merge collapses peaks within MergeWithinSec of a group's first peak into
// the highest member, preserving first-occurrence order.
func (d *Detector) merge(timeline []model.TimelineRow, peaks []int) []int {
	var merged []int
	groupStart := -1
	for _, p := range peaks {
		if groupStart >= 0 && timeline[p].TimestampSec-groupStart <= d.cfg.MergeWithinSec {
			if timeline[p].RiskScore > timeline[merged[len(merged)-1]].RiskScore {
				merged[len(merged)-1] = p
			}
			continue
		}
		merged = append(merged, p)
		groupStart = timeline[p].TimestampSec
	}
	return merged
}

func (d *Detector) severity(score float64) model.Severity {
	switch {
	case score >= d.cfg.CriticalScore:
		return model.SeverityCritical
	case score >= d.cfg.ElevatedScore:
		return model.SeverityElevated
	default:
		return model.SeverityNormal
	}
}

func (d *Detector) goalFollows(peakTime int, goalTimes []int) bool {
	for _, gt := range goalTimes {
		if gt >= peakTime && gt-peakTime <= d.cfg.GoalLookback {
			return true
		}
	}
	return false
}

// VideoTimestamp renders a match-clock second as the mm:ss video reference
// carried on NexusTimestamp. The core treats the value as opaque.
func VideoTimestamp(sec int) string {
	return fmt.Sprintf("%02d:%02d", sec/60, sec%60)
}
