// Package backline mines recorded football-match event logs for recurring
// short tactical sequences that precede moments of elevated defensive
// danger, and scores each pattern's association with conceding a goal.
//
// Quick start:
//
//	a, err := backline.New(backline.WithMatchDir("matches/"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := a.Analyze(ctx)
//	for _, p := range report.Patterns {
//	    fmt.Println(p.Frequency, p.ConfidenceTier, p.Sequence)
//	}
//
// The Analyzer is stateless between runs: two analyzers with different
// parameter sets can run side by side over the same corpus.
package backline
