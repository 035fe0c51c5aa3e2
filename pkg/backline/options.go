package backline

import (
	"github.com/crimson-sun/backline/internal/config"
	"github.com/crimson-sun/backline/internal/source"
)

// Option configures an Analyzer.
type Option func(*config.Config)

// WithMatchDir reads the corpus from a directory of <match>.json exports.
func WithMatchDir(dir string) Option {
	return func(c *config.Config) {
		c.Source = source.Config{Provider: "jsonfile", Dir: dir}
	}
}

// WithExportAPI reads the corpus from a tagging-platform export API.
func WithExportAPI(endpoint, token string) Option {
	return func(c *config.Config) {
		c.Source = source.Config{Provider: "httpexport", Endpoint: endpoint, APIKey: token}
	}
}

// WithTeam sets our team name; every other team is opponent context.
func WithTeam(name string) Option {
	return func(c *config.Config) {
		c.TeamName = name
	}
}

// WithMode sets the focus-set filter: "all", "goals", or "critical".
// Default: "goals".
func WithMode(mode string) Option {
	return func(c *config.Config) {
		c.Mode = mode
	}
}

// WithFingerprint overrides the lookback window (seconds) and top-K bound.
func WithFingerprint(windowSec, topK int) Option {
	return func(c *config.Config) {
		c.Fingerprint.WindowSec = windowSec
		c.Fingerprint.TopK = topK
	}
}

// WithSimilarityThreshold sets the clustering and membership threshold.
func WithSimilarityThreshold(t float64) Option {
	return func(c *config.Config) {
		c.Cluster.SimilarityThreshold = t
		c.Score.SimilarityThreshold = t
	}
}

// WithFilters sets the pattern filters: minimum distinct matches, minimum
// baseline occurrences, and minimum lift.
func WithFilters(minMatches, minOccurrences int, minLift float64) Option {
	return func(c *config.Config) {
		c.Score.MinMatchFrequency = minMatches
		c.Score.MinOccurrences = minOccurrences
		c.Score.MinLift = minLift
	}
}

// WithCILevel sets the credible-interval level (default 0.90).
func WithCILevel(level float64) Option {
	return func(c *config.Config) {
		c.Score.CILevel = level
	}
}

// WithStopwords replaces the default fingerprint stopword set.
func WithStopwords(codes ...string) Option {
	return func(c *config.Config) {
		c.Stopwords = codes
	}
}

// WithCauseCodes replaces the default cause-code set.
func WithCauseCodes(codes ...string) Option {
	return func(c *config.Config) {
		c.CauseCodes = codes
	}
}
