package fingerprint

import (
	"sort"

	"github.com/crimson-sun/backline/internal/engine/codes"
	"github.com/crimson-sun/backline/internal/model"
)

// Config controls fingerprint construction.
type Config struct {
	WindowSec int // lookback window before the peak (default 60)
	TopK      int // max codes kept after compression (default 4)
}

// DefaultConfig returns the shipped fingerprint settings.
func DefaultConfig() Config {
	return Config{WindowSec: 60, TopK: 4}
}

// Builder condenses the activity window before a danger peak into a short,
// ordered, deduplicated sequence of event codes.
type Builder struct {
	cfg     Config
	catalog *codes.Catalog
}

// New creates a Builder with the given config and code catalog.
func New(cfg Config, catalog *codes.Catalog) *Builder {
	return &Builder{cfg: cfg, catalog: catalog}
}

// Build walks the timeline rows in [max(peak−window, timeline start), peak]
// and records each non-stopword code at the second it enters the active set.
// The raw sequence is deduplicated preserving first occurrence, then
// compressed to the top-K codes by importance weight with relative order
// preserved. Sparse input (empty timeline, window selecting no rows) yields
// an empty sequence, never an error.
func (b *Builder) Build(timeline []model.TimelineRow, peakTimeSec int) []string {
	if len(timeline) == 0 {
		return nil
	}

	t0 := peakTimeSec - b.cfg.WindowSec
	if start := timelineStart(timeline); t0 < start {
		t0 = start
	}

	var seq []string
	prev := make(map[string]struct{})
	for _, row := range timeline {
		if row.TimestampSec < t0 || row.TimestampSec > peakTimeSec {
			continue
		}

		cur := make(map[string]struct{}, len(row.ActiveCodes))
		for _, code := range row.ActiveCodes {
			if code != "" && !b.catalog.IsStopword(code) {
				cur[code] = struct{}{}
			}
		}

		// Record codes entering the active set this second, in row order.
		for _, code := range row.ActiveCodes {
			if _, active := cur[code]; !active {
				continue
			}
			if _, wasActive := prev[code]; !wasActive {
				seq = append(seq, code)
			}
		}

		prev = cur
	}

	return b.compress(dedupe(seq))
}

// compress keeps the top-K codes by importance weight while preserving the
// original relative order of the survivors.
func (b *Builder) compress(seq []string) []string {
	if len(seq) <= b.cfg.TopK {
		return seq
	}

	type scored struct {
		code   string
		weight float64
	}
	ranked := make([]scored, len(seq))
	for i, code := range seq {
		ranked[i] = scored{code: code, weight: b.catalog.Weight(code)}
	}
	// Stable sort: equal weights keep first-occurrence precedence.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].weight > ranked[j].weight
	})

	keep := make(map[string]struct{}, b.cfg.TopK)
	for _, s := range ranked[:b.cfg.TopK] {
		keep[s.code] = struct{}{}
	}

	out := make([]string, 0, b.cfg.TopK)
	for _, code := range seq {
		if _, ok := keep[code]; ok {
			out = append(out, code)
		}
	}
	return out
}

// dedupe removes repeated codes preserving first occurrence.
func dedupe(seq []string) []string {
	if len(seq) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(seq))
	out := make([]string, 0, len(seq))
	for _, code := range seq {
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}

func timelineStart(timeline []model.TimelineRow) int {
	start := timeline[0].TimestampSec
	for _, row := range timeline[1:] {
		if row.TimestampSec < start {
			start = row.TimestampSec
		}
	}
	return start
}
