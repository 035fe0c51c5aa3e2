package webhook

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/crimson-sun/backline/internal/output"
	"github.com/crimson-sun/backline/internal/source/httpclient"
)

// Sink POSTs the narrative projection of each run to the downstream
// narrative-generator endpoint.
type Sink struct {
	client *httpclient.Client
	topN   int
}

// New creates a webhook sink delivering to the given URL.
func New(url, token string, topN int) *Sink {
	return &Sink{client: httpclient.New(url, token), topN: topN}
}

// payload is the delivered document: run identity plus the trimmed
// narrative field subset.
type payload struct {
	RunID         string                    `json:"run_id"`
	Mode          string                    `json:"mode"`
	TotalMatches  int                       `json:"total_matches"`
	BaselineCount int                       `json:"baseline_moments"`
	FocusCount    int                       `json:"focus_moments"`
	Patterns      []output.NarrativePattern `json:"patterns"`
}

func (s *Sink) Write(ctx context.Context, doc output.Document) error {
	body, err := json.Marshal(payload{
		RunID:         doc.RunID,
		Mode:          doc.Mode,
		TotalMatches:  doc.TotalMatches,
		BaselineCount: doc.BaselineCount,
		FocusCount:    doc.FocusCount,
		Patterns:      output.FormatForNarrative(doc.Patterns, s.topN),
	})
	if err != nil {
		return fmt.Errorf("webhook sink: %w", err)
	}
	if err := s.client.Post(ctx, "", "application/json", body); err != nil {
		return fmt.Errorf("webhook sink: %w", err)
	}
	return nil
}

func (s *Sink) Close() error {
	return nil
}
