package stdout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/crimson-sun/backline/internal/output"
)

// Format selects how runs are rendered.
type Format int

const (
	Summary Format = iota // human-readable top-N summary
	JSON                  // the full run document as JSON
)

// Sink renders an analysis run to stdout.
type Sink struct {
	w      io.Writer
	format Format
	topN   int
}

// New creates a stdout Sink. topN caps the summary listing; JSON output
// always carries the full ranked set.
func New(format Format, topN int) *Sink {
	return &Sink{w: os.Stdout, format: format, topN: topN}
}

func (s *Sink) Write(_ context.Context, doc output.Document) error {
	if s.format == JSON {
		enc := json.NewEncoder(s.w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("stdout sink: %w", err)
		}
		return nil
	}
	return s.summary(doc)
}

func (s *Sink) summary(doc output.Document) error {
	fmt.Fprintf(s.w, "Baseline danger moments: %d\n", doc.BaselineCount)
	fmt.Fprintf(s.w, "Focus danger moments (%s): %d\n", doc.Mode, doc.FocusCount)
	fmt.Fprintf(s.w, "Patterns found: %d\n\n", len(doc.Patterns))

	n := s.topN
	if n > len(doc.Patterns) {
		n = len(doc.Patterns)
	}
	for _, p := range doc.Patterns[:n] {
		fmt.Fprintf(s.w, "%s | occ=%d | goal_rate=%v | baseline=%v | lift=%v | conf=%v (%s) | seq: %s | goals=%d\n",
			p.Frequency, p.Occurrences, p.PatternGoalRate, p.BaselineGoalRate,
			p.Lift, p.ConfidenceScore, p.ConfidenceTier,
			output.PrettySequence(p.Sequence), p.GoalsInPattern)
		fmt.Fprintf(s.w, "examples: %v\n", p.ExampleMatches)
		if p.AvgTimeToGoal != nil {
			fmt.Fprintf(s.w, "avg_time_to_goal: %v sec\n", *p.AvgTimeToGoal)
		}
		fmt.Fprintln(s.w)
	}
	return nil
}

func (s *Sink) Close() error {
	return nil
}
