package source

import (
	"context"

	"github.com/crimson-sun/backline/internal/model"
)

// Source provides the closed historical corpus of tagged matches.
type Source interface {
	// Matches returns the ordered list of match names in the corpus.
	Matches(ctx context.Context) ([]string, error)

	// Events returns the raw tagged events for one match.
	Events(ctx context.Context, match string) ([]model.MatchEvent, error)
}

// Config holds provider-specific source settings.
type Config struct {
	Provider string
	Dir      string // jsonfile: directory of <match>.json exports
	Endpoint string // httpexport: export API base URL
	APIKey   string // httpexport: bearer token
}
