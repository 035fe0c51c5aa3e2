package similarity

// Score compares two ordered code sequences by subsequence overlap and
// returns a value in [0,1].
//
// Both empty scores 1.0; exactly one empty scores 0.0. Otherwise the shorter
// sequence must be an ordered subsequence of the longer (order preserved,
// gaps allowed); if it is, the score is len(shorter)/len(longer), else 0.
// This is strict containment with a length ratio, not an edit distance: two
// sequences close in content still score 0 when containment fails.
func Score(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	shorter, longer := a, b
	if len(a) > len(b) {
		shorter, longer = b, a
	}
	if !isSubsequence(shorter, longer) {
		return 0.0
	}
	return float64(len(shorter)) / float64(len(longer))
}

// isSubsequence reports whether every element of shorter appears in longer
// in order, not necessarily contiguously.
func isSubsequence(shorter, longer []string) bool {
	j := 0
	for _, want := range shorter {
		for j < len(longer) && longer[j] != want {
			j++
		}
		if j == len(longer) {
			return false
		}
		j++
	}
	return true
}
