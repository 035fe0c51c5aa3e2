package risk

import (
	"github.com/crimson-sun/backline/internal/engine/codes"
	"github.com/crimson-sun/backline/internal/model"
)

// Config controls risk timeline construction.
type Config struct {
	TeamName       string // our own team; every other team is opponent context
	SampleInterval int    // grid step in seconds (default 1)
}

// DefaultConfig returns the shipped risk settings.
func DefaultConfig() Config {
	return Config{TeamName: "FC Barcelona", SampleInterval: 1}
}

// Engine turns raw tagged events into the per-second risk timeline the
// detector and fingerprint builder consume.
type Engine struct {
	cfg     Config
	catalog *codes.Catalog
}

// New creates an Engine with the given config and code catalog.
func New(cfg Config, catalog *codes.Catalog) *Engine {
	return &Engine{cfg: cfg, catalog: catalog}
}

// Timeline builds the risk timeline over [0, last event end]. Each row
// carries the active event codes at that second and a risk score: the sum of
// per-code importance weights, taken from the opponent table for opponent
// events and the own-team table for ours. Empty input yields an empty
// timeline.
func (e *Engine) Timeline(events []model.MatchEvent) []model.TimelineRow {
	if len(events) == 0 {
		return nil
	}

	step := e.cfg.SampleInterval
	if step <= 0 {
		step = 1
	}

	end := 0
	for _, ev := range events {
		if ev.EndSec > end {
			end = ev.EndSec
		}
	}

	rows := make([]model.TimelineRow, 0, end/step+1)
	for t := 0; t <= end; t += step {
		var score float64
		var active []string
		seen := make(map[string]struct{})

		for _, ev := range events {
			if ev.StartSec > t || ev.EndSec < t || ev.Code == "" {
				continue
			}
			score += e.weight(ev)
			if _, ok := seen[ev.Code]; !ok {
				seen[ev.Code] = struct{}{}
				active = append(active, ev.Code)
			}
		}

		rows = append(rows, model.TimelineRow{
			TimestampSec: t,
			RiskScore:    score,
			ActiveCodes:  active,
		})
	}
	return rows
}

func (e *Engine) weight(ev model.MatchEvent) float64 {
	if ev.Team == e.cfg.TeamName {
		return e.catalog.OwnWeight(ev.Code)
	}
	return e.catalog.OpponentWeight(ev.Code)
}
