package stdout

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/crimson-sun/backline/internal/model"
	"github.com/crimson-sun/backline/internal/output"
)

func testDoc() output.Document {
	avg := 15.0
	return output.Document{
		RunID:         "run-1",
		Mode:          "goals",
		TotalMatches:  4,
		BaselineCount: 4,
		FocusCount:    3,
		Patterns: []model.PatternResult{
			{
				Sequence:        []string{"ATTACKING TRANSITION", "CREATING CHANCES"},
				Frequency:       "3/4 matches",
				Occurrences:     3,
				GoalsInPattern:  3,
				PatternGoalRate: 1.0,
				Lift:            1.333,
				ConfidenceTier:  "medium",
				ExampleMatches:  []string{"m1", "m2", "m3"},
				AvgTimeToGoal:   &avg,
			},
		},
	}
}

func TestSummaryOutput(t *testing.T) {
	var buf bytes.Buffer
	s := &Sink{w: &buf, format: Summary, topN: 10}

	if err := s.Write(context.Background(), testDoc()); err != nil {
		t.Fatalf("Write: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Baseline danger moments: 4",
		"Focus danger moments (goals): 3",
		"Patterns found: 1",
		"3/4 matches",
		"seq: ATTACKING TRANSITION → CREATING CHANCES",
		"examples: [m1 m2 m3]",
		"avg_time_to_goal: 15 sec",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestSummaryTopNCapsListing(t *testing.T) {
	var buf bytes.Buffer
	s := &Sink{w: &buf, format: Summary, topN: 0}

	doc := testDoc()
	if err := s.Write(context.Background(), doc); err != nil {
		t.Fatalf("Write: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Patterns found: 1") {
		t.Fatalf("header missing:\n%s", out)
	}
	if strings.Contains(out, "seq:") {
		t.Fatalf("topN=0 must suppress the listing:\n%s", out)
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	s := &Sink{w: &buf, format: JSON, topN: 10}

	if err := s.Write(context.Background(), testDoc()); err != nil {
		t.Fatalf("Write: %v", err)
	}

	var doc output.Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if doc.RunID != "run-1" || len(doc.Patterns) != 1 {
		t.Fatalf("round-trip lost fields: %+v", doc)
	}
	if doc.Patterns[0].Frequency != "3/4 matches" {
		t.Fatalf("pattern lost fields: %+v", doc.Patterns[0])
	}
}

func TestClose(t *testing.T) {
	if err := New(Summary, 10).Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
