package similarity

import "testing"

func TestScoreBothEmpty(t *testing.T) {
	if got := Score(nil, nil); got != 1.0 {
		t.Fatalf("expected 1.0 for two empty sequences, got %v", got)
	}
}

func TestScoreOneEmpty(t *testing.T) {
	seq := []string{"PROGRESSION", "CREATING CHANCES"}
	if got := Score(nil, seq); got != 0.0 {
		t.Fatalf("expected 0.0 for empty vs non-empty, got %v", got)
	}
	if got := Score(seq, nil); got != 0.0 {
		t.Fatalf("expected 0.0 for non-empty vs empty, got %v", got)
	}
}

func TestScoreIdentity(t *testing.T) {
	seqs := [][]string{
		{"PROGRESSION"},
		{"PROGRESSION", "CREATING CHANCES"},
		{"ATTACKING TRANSITION", "PROGRESSION", "CROSSES", "FINISHING"},
	}
	for _, s := range seqs {
		if got := Score(s, s); got != 1.0 {
			t.Fatalf("Score(s, s) = %v for %v, want 1.0", got, s)
		}
	}
}

func TestScoreSubsequence(t *testing.T) {
	shorter := []string{"ATTACKING TRANSITION", "FINISHING"}
	longer := []string{"ATTACKING TRANSITION", "PROGRESSION", "CROSSES", "FINISHING"}

	want := 0.5 // 2/4
	if got := Score(shorter, longer); got != want {
		t.Fatalf("Score = %v, want %v", got, want)
	}
	// Symmetric: argument order must not matter for containment.
	if got := Score(longer, shorter); got != want {
		t.Fatalf("Score reversed = %v, want %v", got, want)
	}
}

func TestScoreOrderViolation(t *testing.T) {
	a := []string{"FINISHING", "ATTACKING TRANSITION"}
	b := []string{"ATTACKING TRANSITION", "PROGRESSION", "FINISHING"}
	if got := Score(a, b); got != 0.0 {
		t.Fatalf("expected 0.0 when order is violated, got %v", got)
	}
}

func TestScoreNotContained(t *testing.T) {
	a := []string{"PROGRESSION", "HIGH PRESS"}
	b := []string{"PROGRESSION", "CREATING CHANCES"}
	if got := Score(a, b); got != 0.0 {
		t.Fatalf("expected 0.0 for non-contained equal-length sequences, got %v", got)
	}
}

func TestScoreGapsAllowed(t *testing.T) {
	a := []string{"ATTACKING TRANSITION", "CREATING CHANCES"}
	b := []string{"ATTACKING TRANSITION", "PROGRESSION", "CROSSES", "CREATING CHANCES"}
	if got := Score(a, b); got != 0.5 {
		t.Fatalf("expected 0.5 with gaps, got %v", got)
	}
}

func TestScoreBounds(t *testing.T) {
	cases := [][2][]string{
		{{"A"}, {"B"}},
		{{"A", "B"}, {"A", "B", "C"}},
		{{"A", "B", "C"}, {"C", "B", "A"}},
		{nil, {"A"}},
		{nil, nil},
	}
	for _, c := range cases {
		got := Score(c[0], c[1])
		if got < 0 || got > 1 {
			t.Fatalf("Score(%v, %v) = %v out of [0,1]", c[0], c[1], got)
		}
	}
}

func TestScoreRepeatedCodes(t *testing.T) {
	// Fingerprints are deduplicated, but the metric itself must still behave
	// when fed repeats.
	a := []string{"A", "A"}
	b := []string{"A", "B", "A"}
	if got := Score(a, b); got == 0 {
		t.Fatalf("expected containment for %v in %v", a, b)
	}
}
