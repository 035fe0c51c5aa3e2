package backline

import (
	"context"
	"fmt"

	"github.com/crimson-sun/backline/internal/config"
	"github.com/crimson-sun/backline/internal/detect"
	"github.com/crimson-sun/backline/internal/engine/cluster"
	"github.com/crimson-sun/backline/internal/engine/codes"
	"github.com/crimson-sun/backline/internal/engine/fingerprint"
	"github.com/crimson-sun/backline/internal/engine/score"
	"github.com/crimson-sun/backline/internal/pipeline"
	"github.com/crimson-sun/backline/internal/risk"
	"github.com/crimson-sun/backline/internal/source"

	// Register source implementations.
	_ "github.com/crimson-sun/backline/internal/source/httpexport"
	_ "github.com/crimson-sun/backline/internal/source/jsonfile"
)

// Analyzer runs the cross-match pattern-mining pipeline.
type Analyzer struct {
	cfg  config.Config
	mode pipeline.Mode
	pipe *pipeline.Pipeline
}

// New creates an Analyzer. Options overlay the environment-derived defaults;
// an invalid mode or unknown source provider fails here, before any work.
func New(opts ...Option) (*Analyzer, error) {
	cfg := config.Load()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.Risk.TeamName = cfg.TeamName
	cfg.Detect.TeamName = cfg.TeamName

	mode, err := pipeline.ParseMode(cfg.Mode)
	if err != nil {
		return nil, fmt.Errorf("backline: %w", err)
	}

	src, err := source.Open(cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("backline: %w", err)
	}

	catalog := codes.New(
		codes.DefaultGroups(),
		codes.DefaultOpponentWeights(),
		codes.DefaultOwnWeights(),
		cfg.Stopwords,
		cfg.CauseCodes,
	)
	pipe := pipeline.New(
		src,
		risk.New(cfg.Risk, catalog),
		detect.New(cfg.Detect),
		fingerprint.New(cfg.Fingerprint, catalog),
		cluster.New(cfg.Cluster, catalog),
		score.New(cfg.Score),
		cfg.TeamName,
		cfg.TimeToGoalLookaheadSec,
	)

	return &Analyzer{cfg: cfg, mode: mode, pipe: pipe}, nil
}

// Analyze runs the full pipeline over the corpus and returns the ranked
// pattern report. Identical inputs and configuration yield an identical
// report (modulo the run ID).
func (a *Analyzer) Analyze(ctx context.Context) (Report, error) {
	summary, err := a.pipe.Run(ctx, a.mode)
	if err != nil {
		return Report{}, fmt.Errorf("backline: %w", err)
	}

	patterns := make([]Result, len(summary.Patterns))
	for i, p := range summary.Patterns {
		patterns[i] = resultFromPattern(p)
	}
	return Report{
		RunID:         summary.RunID,
		Mode:          string(summary.Mode),
		TotalMatches:  summary.TotalMatches,
		BaselineCount: summary.BaselineCount,
		FocusCount:    summary.FocusCount,
		Patterns:      patterns,
	}, nil
}
