package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/crimson-sun/backline/internal/detect"
	"github.com/crimson-sun/backline/internal/engine/cluster"
	"github.com/crimson-sun/backline/internal/engine/fingerprint"
	"github.com/crimson-sun/backline/internal/engine/score"
	"github.com/crimson-sun/backline/internal/model"
	"github.com/crimson-sun/backline/internal/risk"
	"github.com/crimson-sun/backline/internal/source"
)

// Pipeline connects a match source, the risk engine, the danger detector,
// and the analysis engine into the two-pass pattern-mining run.
type Pipeline struct {
	source      source.Source
	risk        *risk.Engine
	detector    *detect.Detector
	fingerprint *fingerprint.Builder
	clusterer   *cluster.Clusterer
	scorer      *score.Scorer

	teamName     string
	lookaheadSec int
}

// New creates a Pipeline from the given components.
func New(
	src source.Source,
	rk *risk.Engine,
	det *detect.Detector,
	fp *fingerprint.Builder,
	cl *cluster.Clusterer,
	sc *score.Scorer,
	teamName string,
	lookaheadSec int,
) *Pipeline {
	return &Pipeline{
		source:       src,
		risk:         rk,
		detector:     det,
		fingerprint:  fp,
		clusterer:    cl,
		scorer:       sc,
		teamName:     teamName,
		lookaheadSec: lookaheadSec,
	}
}

// Summary is the outcome of a full analysis run.
type Summary struct {
	RunID         string
	Mode          Mode
	TotalMatches  int
	BaselineCount int
	FocusCount    int
	Patterns      []model.PatternResult
}

// Run executes the whole analysis: enrich every match twice (an unfiltered
// baseline pass and a mode-filtered focus pass), cluster the focus set, and
// score the clusters against the baseline.
func (p *Pipeline) Run(ctx context.Context, mode Mode) (Summary, error) {
	matches, err := p.source.Matches(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("pipeline: list matches: %w", err)
	}

	baseline, err := p.Enrich(ctx, matches, ModeAll)
	if err != nil {
		return Summary{}, err
	}
	focus := baseline
	if mode != ModeAll {
		focus, err = p.Enrich(ctx, matches, mode)
		if err != nil {
			return Summary{}, err
		}
	}

	return Summary{
		RunID:         uuid.NewString(),
		Mode:          mode,
		TotalMatches:  len(matches),
		BaselineCount: len(baseline),
		FocusCount:    len(focus),
		Patterns:      p.Mine(focus, baseline),
	}, nil
}

// Enrich fetches each match's events, builds its risk timeline, detects its
// danger moments, filters them by mode, and stamps each retained moment with
// its match name, fingerprint, and time to the next conceded goal. The
// result is a flat list in match-then-moment order. Moments are enriched
// exactly once and are read-only afterwards.
func (p *Pipeline) Enrich(ctx context.Context, matches []string, mode Mode) ([]model.DangerMoment, error) {
	var enriched []model.DangerMoment

	for _, match := range matches {
		events, err := p.source.Events(ctx, match)
		if err != nil {
			return nil, fmt.Errorf("pipeline: load %s: %w", match, err)
		}

		timeline := p.risk.Timeline(events)
		moments := filterMode(p.detector.Detect(timeline, events), mode)
		goalTimes := detect.OpponentGoalTimes(events, p.teamName)

		for _, m := range moments {
			m.MatchName = match
			m.FingerprintSeq = p.fingerprint.Build(timeline, m.PeakTime)
			m.TimeToGoalSec = detect.NextGoalDelta(m.PeakTime, goalTimes, p.lookaheadSec)
			enriched = append(enriched, m)
		}

		slog.Debug("match enriched",
			"match", match,
			"events", len(events),
			"moments", len(moments),
			"mode", string(mode))
	}

	return enriched, nil
}

// Mine clusters the focus set and scores the clusters against the baseline
// set, returning the ranked pattern results.
func (p *Pipeline) Mine(focus, baseline []model.DangerMoment) []model.PatternResult {
	clusters := p.clusterer.Cluster(focus)
	return p.scorer.Score(clusters, baseline)
}

// filterMode applies the analysis-mode filter before fingerprinting.
func filterMode(moments []model.DangerMoment, mode Mode) []model.DangerMoment {
	switch mode {
	case ModeGoals:
		var out []model.DangerMoment
		for _, m := range moments {
			if m.ResultedInGoal {
				out = append(out, m)
			}
		}
		return out
	case ModeCritical:
		var out []model.DangerMoment
		for _, m := range moments {
			if m.Severity == model.SeverityCritical {
				out = append(out, m)
			}
		}
		return out
	default:
		return moments
	}
}
