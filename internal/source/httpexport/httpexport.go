package httpexport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/crimson-sun/backline/internal/model"
	"github.com/crimson-sun/backline/internal/source"
	"github.com/crimson-sun/backline/internal/source/httpclient"
)

func init() {
	source.Register("httpexport", func(cfg source.Config) (source.Source, error) {
		if cfg.Endpoint == "" {
			return nil, fmt.Errorf("httpexport source: endpoint is required")
		}
		return &Source{client: httpclient.New(cfg.Endpoint, cfg.APIKey)}, nil
	})
}

// Source fetches tagged-match exports from a tagging-platform export API.
// The API serves the same documents the jsonfile provider reads from disk:
//
//	GET /v1/matches                  {"matches": ["granada-away", ...]}
//	GET /v1/matches/{name}/export    the per-match export document
type Source struct {
	client *httpclient.Client
}

type matchList struct {
	Matches []string `json:"matches"`
}

func (s *Source) Matches(ctx context.Context) ([]string, error) {
	body, err := s.client.Get(ctx, "/v1/matches")
	if err != nil {
		return nil, fmt.Errorf("httpexport source: %w", err)
	}
	var list matchList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("httpexport source: %w", err)
	}
	return list.Matches, nil
}

func (s *Source) Events(ctx context.Context, match string) ([]model.MatchEvent, error) {
	body, err := s.client.Get(ctx, "/v1/matches/"+url.PathEscape(match)+"/export")
	if err != nil {
		return nil, fmt.Errorf("httpexport source: %w", err)
	}
	return source.ParseExport(body, match)
}
