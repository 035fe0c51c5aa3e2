package codes

// Category groups event codes by phase of play.
type Category string

const (
	CategoryTransition     Category = "TRANSITION"
	CategoryProgression    Category = "PROGRESSION"
	CategoryChanceCreation Category = "CHANCE_CREATION"
	CategoryPressure       Category = "PRESSURE"
	CategoryRestart        Category = "RESTART"
	CategoryZone           Category = "ZONE"
	CategoryOutcome        Category = "OUTCOME"
)

// Group is a phase-of-play grouping of event codes.
type Group struct {
	Category Category
	Desc     string
	Codes    []string
}

// Catalog resolves event codes to categories, importance weights, and the
// stopword/cause-code sets used by fingerprinting and clustering.
type Catalog struct {
	categories map[string]Category
	opponent   map[string]float64
	own        map[string]float64
	stopwords  map[string]struct{}
	causes     map[string]struct{}
}

// New builds a Catalog from code groups, the two team-perspective weight
// tables, and the stopword and cause-code sets.
func New(groups []Group, opponent, own map[string]float64, stopwords, causes []string) *Catalog {
	c := &Catalog{
		categories: make(map[string]Category),
		opponent:   opponent,
		own:        own,
		stopwords:  make(map[string]struct{}, len(stopwords)),
		causes:     make(map[string]struct{}, len(causes)),
	}
	for _, g := range groups {
		for _, code := range g.Codes {
			c.categories[code] = g.Category
		}
	}
	for _, s := range stopwords {
		c.stopwords[s] = struct{}{}
	}
	for _, s := range causes {
		c.causes[s] = struct{}{}
	}
	return c
}

// Default returns the catalog that ships with backline.
func Default() *Catalog {
	return New(DefaultGroups(), DefaultOpponentWeights(), DefaultOwnWeights(), DefaultStopwords(), DefaultCauseCodes())
}

// Category returns the phase-of-play category for a code, or "" if unknown.
func (c *Catalog) Category(code string) Category {
	return c.categories[code]
}

// Weight returns the importance weight for a code: the maximum of the two
// team-perspective tables. Unknown codes weigh 0.
func (c *Catalog) Weight(code string) float64 {
	return max(c.opponent[code], c.own[code])
}

// OpponentWeight returns the weight of a code when driven by the opponent.
func (c *Catalog) OpponentWeight(code string) float64 {
	return c.opponent[code]
}

// OwnWeight returns the weight of a code when driven by our own team.
func (c *Catalog) OwnWeight(code string) float64 {
	return c.own[code]
}

// IsStopword reports whether a code is excluded from fingerprints.
func (c *Catalog) IsStopword(code string) bool {
	_, ok := c.stopwords[code]
	return ok
}

// IsCause reports whether a code belongs to the designated cause-code set.
func (c *Catalog) IsCause(code string) bool {
	_, ok := c.causes[code]
	return ok
}

// HasCause reports whether any code in the sequence is a cause code.
func (c *Catalog) HasCause(seq []string) bool {
	for _, code := range seq {
		if c.IsCause(code) {
			return true
		}
	}
	return false
}
