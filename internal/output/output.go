package output

import (
	"context"

	"github.com/crimson-sun/backline/internal/model"
)

// Document is the completed-run payload delivered to sinks. Patterns are
// already ranked and final; sinks only render or deliver.
type Document struct {
	RunID         string                `json:"run_id"`
	Mode          string                `json:"mode"`
	TotalMatches  int                   `json:"total_matches"`
	BaselineCount int                   `json:"baseline_moments"`
	FocusCount    int                   `json:"focus_moments"`
	Patterns      []model.PatternResult `json:"patterns"`
}

// Sink defines the interface for analysis-run destinations.
type Sink interface {
	Write(ctx context.Context, doc Document) error
	Close() error
}
