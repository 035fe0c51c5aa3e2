package source

import (
	"encoding/json"
	"fmt"

	"github.com/crimson-sun/backline/internal/model"
)

// exportDoc is the tagged-match export document shared by the jsonfile and
// httpexport providers.
type exportDoc struct {
	MatchName string        `json:"match_name"`
	Events    []exportEvent `json:"events"`
}

type exportEvent struct {
	Code  codeValue `json:"code"`
	Team  string    `json:"team"`
	Start *int      `json:"start_sec"`
	End   *int      `json:"end_sec"`
	// Older exports use bare "start"/"end" keys.
	StartAlt *int `json:"start"`
	EndAlt   *int `json:"end"`
}

// codeValue normalizes the export's code field: tagging tools emit either a
// bare string, a record carrying a "code" key, or null. All collapse to a
// plain string; anything unrecognized collapses to "".
type codeValue string

func (c *codeValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = codeValue(s)
		return nil
	}

	var rec struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(data, &rec); err == nil {
		*c = codeValue(rec.Code)
		return nil
	}

	// null or an unexpected shape: treat as absent rather than failing the
	// whole export.
	*c = ""
	return nil
}

// ParseExport decodes an export document into match events, dropping rows
// with no code or no usable interval.
func ParseExport(data []byte, match string) ([]model.MatchEvent, error) {
	var doc exportDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse export for %s: %w", match, err)
	}

	events := make([]model.MatchEvent, 0, len(doc.Events))
	for _, ev := range doc.Events {
		start, ok := firstInt(ev.Start, ev.StartAlt)
		if !ok || ev.Code == "" {
			continue
		}
		end, ok := firstInt(ev.End, ev.EndAlt)
		if !ok {
			end = start
		}
		events = append(events, model.MatchEvent{
			Code:     string(ev.Code),
			Team:     ev.Team,
			StartSec: start,
			EndSec:   end,
		})
	}
	return events, nil
}

func firstInt(vals ...*int) (int, bool) {
	for _, v := range vals {
		if v != nil {
			return *v, true
		}
	}
	return 0, false
}
