package codes

// DefaultGroups returns the built-in event-code catalog that ships with
// backline. Codes follow the tagging panel used across the corpus.
func DefaultGroups() []Group {
	return []Group{
		{
			Category: CategoryTransition,
			Desc:     "Moments where possession flips and the block is unsettled",
			Codes:    []string{"ATTACKING TRANSITION", "DEFENSIVE TRANSITION"},
		},
		{
			Category: CategoryProgression,
			Desc:     "Controlled advance of the ball toward the defensive third",
			Codes:    []string{"PROGRESSION", "BUILD UP"},
		},
		{
			Category: CategoryChanceCreation,
			Desc:     "Actions that produce or finish a chance",
			Codes:    []string{"CREATING CHANCES", "FINISHING", "CROSSES"},
		},
		{
			Category: CategoryPressure,
			Desc:     "Pressing and duels around the ball",
			Codes:    []string{"HIGH PRESS", "LOSSES", "RECOVERIES"},
		},
		{
			Category: CategoryRestart,
			Desc:     "Dead-ball restarts",
			Codes:    []string{"SET PIECES"},
		},
		{
			Category: CategoryZone,
			Desc:     "Ball-location context tags",
			Codes:    []string{"BALL IN FINAL THIRD", "BALL IN THE BOX", "PLAYERS IN THE BOX"},
		},
		{
			Category: CategoryOutcome,
			Desc:     "Terminal outcomes",
			Codes:    []string{"GOALS"},
		},
	}
}

// DefaultStopwords returns the codes excluded from fingerprints. Zone and
// outcome tags are on for most of any dangerous spell, so they carry no
// cross-match signal; BUILD UP is too common to discriminate.
func DefaultStopwords() []string {
	return []string{
		"BUILD UP",
		"GOALS",
		"SET PIECES",
		"PLAYERS IN THE BOX",
		"BALL IN FINAL THIRD",
		"BALL IN THE BOX",
	}
}

// DefaultCauseCodes returns the offense-phase codes that must anchor a
// pattern: a cluster with no transition, progression, or chance-creation
// code describes context, not a cause.
func DefaultCauseCodes() []string {
	return []string{
		"ATTACKING TRANSITION",
		"DEFENSIVE TRANSITION",
		"PROGRESSION",
		"CREATING CHANCES",
	}
}

// DefaultOpponentWeights returns the importance weights for codes driven by
// the opponent. Tuned against the historical corpus, not learned.
func DefaultOpponentWeights() map[string]float64 {
	return map[string]float64{
		"ATTACKING TRANSITION": 28,
		"DEFENSIVE TRANSITION": 12,
		"PROGRESSION":          18,
		"BUILD UP":             6,
		"CREATING CHANCES":     32,
		"FINISHING":            30,
		"CROSSES":              16,
		"HIGH PRESS":           10,
		"LOSSES":               8,
		"RECOVERIES":           14,
		"SET PIECES":           20,
		"BALL IN FINAL THIRD":  15,
		"BALL IN THE BOX":      26,
		"PLAYERS IN THE BOX":   22,
		"GOALS":                40,
	}
}

// DefaultOwnWeights returns the importance weights for codes driven by our
// own team. Losing the ball or being caught mid-transition is what creates
// danger from our side, so those outweigh our attacking tags.
func DefaultOwnWeights() map[string]float64 {
	return map[string]float64{
		"ATTACKING TRANSITION": 10,
		"DEFENSIVE TRANSITION": 26,
		"PROGRESSION":          8,
		"BUILD UP":             9,
		"CREATING CHANCES":     6,
		"FINISHING":            4,
		"CROSSES":              5,
		"HIGH PRESS":           12,
		"LOSSES":               24,
		"RECOVERIES":           10,
		"SET PIECES":           14,
		"BALL IN FINAL THIRD":  6,
		"BALL IN THE BOX":      10,
		"PLAYERS IN THE BOX":   8,
		"GOALS":                18,
	}
}
