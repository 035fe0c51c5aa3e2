package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/crimson-sun/backline/internal/detect"
	"github.com/crimson-sun/backline/internal/engine/cluster"
	"github.com/crimson-sun/backline/internal/engine/codes"
	"github.com/crimson-sun/backline/internal/engine/fingerprint"
	"github.com/crimson-sun/backline/internal/engine/score"
	"github.com/crimson-sun/backline/internal/risk"
	"github.com/crimson-sun/backline/internal/source"
)

// Config holds all backline configuration. It is built once at startup and
// passed through the pipeline explicitly, so two runs with different
// parameter sets can coexist in one process.
type Config struct {
	TeamName string
	Mode     string // "all", "goals", or "critical"

	Stopwords  []string // codes excluded from fingerprints
	CauseCodes []string // offense-phase codes that must anchor a pattern

	Source      source.Config
	Risk        risk.Config
	Detect      detect.Config
	Fingerprint fingerprint.Config
	Cluster     cluster.Config
	Score       score.Config

	TimeToGoalLookaheadSec int

	Output   OutputConfig
	LogLevel string
}

// OutputConfig holds result destination settings.
type OutputConfig struct {
	Format     string // "summary" or "json"
	Path       string // optional NDJSON results file
	WebhookURL string // optional narrative-generator delivery endpoint
	TopN       int
}

// Load reads configuration from environment variables with sensible
// defaults. The CLI overlays flags and an optional config file on top.
func Load() Config {
	cfg := Config{
		TeamName:   getenv("BACKLINE_TEAM", "FC Barcelona"),
		Mode:       getenv("BACKLINE_MODE", "goals"),
		Stopwords:  getenvList("BACKLINE_STOPWORDS", codes.DefaultStopwords()),
		CauseCodes: getenvList("BACKLINE_CAUSE_CODES", codes.DefaultCauseCodes()),
		Source: source.Config{
			Provider: getenv("BACKLINE_SOURCE", "jsonfile"),
			Dir:      getenv("BACKLINE_MATCH_DIR", "matches"),
			Endpoint: os.Getenv("BACKLINE_ENDPOINT"),
			APIKey:   os.Getenv("BACKLINE_API_KEY"),
		},
		Risk:        risk.DefaultConfig(),
		Detect:      detect.DefaultConfig(),
		Fingerprint: fingerprint.DefaultConfig(),
		Cluster:     cluster.DefaultConfig(),
		Score:       score.DefaultConfig(),

		TimeToGoalLookaheadSec: getenvInt("BACKLINE_GOAL_LOOKAHEAD", 120),

		Output: OutputConfig{
			Format:     getenv("BACKLINE_OUTPUT", "summary"),
			Path:       os.Getenv("BACKLINE_OUT_PATH"),
			WebhookURL: os.Getenv("BACKLINE_WEBHOOK_URL"),
			TopN:       getenvInt("BACKLINE_TOP_N", 10),
		},
		LogLevel: getenv("BACKLINE_LOG_LEVEL", "info"),
	}

	cfg.Risk.TeamName = cfg.TeamName
	cfg.Detect.TeamName = cfg.TeamName

	cfg.Fingerprint.WindowSec = getenvInt("BACKLINE_WINDOW_SEC", cfg.Fingerprint.WindowSec)
	cfg.Fingerprint.TopK = getenvInt("BACKLINE_TOP_K", cfg.Fingerprint.TopK)

	sim := getenvFloat("BACKLINE_SIMILARITY", cfg.Cluster.SimilarityThreshold)
	cfg.Cluster.SimilarityThreshold = sim
	cfg.Score.SimilarityThreshold = sim

	cfg.Score.MinMatchFrequency = getenvInt("BACKLINE_MIN_MATCHES", cfg.Score.MinMatchFrequency)
	cfg.Score.MinOccurrences = getenvInt("BACKLINE_MIN_OCCURRENCES", cfg.Score.MinOccurrences)
	cfg.Score.MinLift = getenvFloat("BACKLINE_MIN_LIFT", cfg.Score.MinLift)
	cfg.Score.CILevel = getenvFloat("BACKLINE_CI_LEVEL", cfg.Score.CILevel)

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getenvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
