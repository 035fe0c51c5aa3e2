package jsonfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/crimson-sun/backline/internal/model"
	"github.com/crimson-sun/backline/internal/source"
)

func init() {
	source.Register("jsonfile", func(cfg source.Config) (source.Source, error) {
		if cfg.Dir == "" {
			return nil, fmt.Errorf("jsonfile source: dir is required")
		}
		return &Source{dir: cfg.Dir}, nil
	})
}

// Source reads tagged-match exports from a directory of <match>.json files.
// The file base name is the match name; directory order is sorted so the
// corpus order is stable across runs.
type Source struct {
	dir string
}

func (s *Source) Matches(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("jsonfile source: %w", err)
	}

	var matches []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		matches = append(matches, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(matches)
	return matches, nil
}

func (s *Source) Events(_ context.Context, match string) ([]model.MatchEvent, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, match+".json"))
	if err != nil {
		return nil, fmt.Errorf("jsonfile source: %w", err)
	}
	return source.ParseExport(data, match)
}
