package cluster

import (
	"github.com/crimson-sun/backline/internal/engine/codes"
	"github.com/crimson-sun/backline/internal/engine/similarity"
	"github.com/crimson-sun/backline/internal/model"
)

// Config controls pattern grouping.
type Config struct {
	SimilarityThreshold float64 // min subsequence similarity to join a cluster (default 0.85)
	MinPatternLen       int     // fingerprints shorter than this never cluster (default 2)
	RequireCauseCode    bool    // require at least one offense-phase code (default true)
	MaxExamples         int     // exemplar moments kept per cluster (default 5)
}

// DefaultConfig returns the shipped clustering settings.
func DefaultConfig() Config {
	return Config{
		SimilarityThreshold: 0.85,
		MinPatternLen:       2,
		RequireCauseCode:    true,
		MaxExamples:         5,
	}
}

// Clusterer groups enriched danger moments into candidate patterns by
// fingerprint similarity.
type Clusterer struct {
	cfg     Config
	catalog *codes.Catalog
}

// New creates a Clusterer with the given config and code catalog.
func New(cfg Config, catalog *codes.Catalog) *Clusterer {
	return &Clusterer{cfg: cfg, catalog: catalog}
}

// Cluster runs greedy online clustering over the focus set, strictly in
// input order. Each retained moment joins the FIRST existing cluster whose
// representative scores at or above the threshold (first-fit, not best-fit),
// else starts a new cluster. The representative is replaced only by a
// strictly shorter matching fingerprint, keeping it minimal. The result is
// order-dependent but fully deterministic; there is no merge or
// re-assignment pass.
func (c *Clusterer) Cluster(moments []model.DangerMoment) []model.Pattern {
	var clusters []model.Pattern

	for _, m := range moments {
		seq := m.FingerprintSeq
		if len(seq) < c.cfg.MinPatternLen {
			continue
		}
		if c.cfg.RequireCauseCode && !c.catalog.HasCause(seq) {
			continue
		}

		placed := false
		for i := range clusters {
			if similarity.Score(seq, clusters[i].Sequence) < c.cfg.SimilarityThreshold {
				continue
			}
			c.attach(&clusters[i], m)
			placed = true
			break
		}
		if !placed {
			clusters = append(clusters, c.start(m))
		}
	}

	return clusters
}

func (c *Clusterer) attach(p *model.Pattern, m model.DangerMoment) {
	p.Matches[m.MatchName] = struct{}{}
	if len(p.Examples) < c.cfg.MaxExamples {
		p.Examples = append(p.Examples, m)
	}
	if m.ResultedInGoal {
		p.GoalsInPattern++
	}
	if len(m.FingerprintSeq) < len(p.Sequence) {
		p.Sequence = m.FingerprintSeq
	}
}

func (c *Clusterer) start(m model.DangerMoment) model.Pattern {
	goals := 0
	if m.ResultedInGoal {
		goals = 1
	}
	return model.Pattern{
		Sequence:       m.FingerprintSeq,
		Matches:        map[string]struct{}{m.MatchName: {}},
		Examples:       []model.DangerMoment{m},
		GoalsInPattern: goals,
	}
}
