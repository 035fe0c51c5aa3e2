package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crimson-sun/backline/internal/engine/codes"
	"github.com/crimson-sun/backline/internal/model"
)

func row(t int, active ...string) model.TimelineRow {
	return model.TimelineRow{TimestampSec: t, ActiveCodes: active}
}

func TestBuildRecordsEnteringCodesInOrder(t *testing.T) {
	b := New(DefaultConfig(), codes.Default())

	timeline := []model.TimelineRow{
		row(10),
		row(11, "PROGRESSION"),
		row(12, "PROGRESSION", "CROSSES"),
		row(13, "PROGRESSION", "CROSSES", "CREATING CHANCES"),
		row(14, "CREATING CHANCES"),
	}

	got := b.Build(timeline, 14)
	require.Equal(t, []string{"PROGRESSION", "CROSSES", "CREATING CHANCES"}, got)
}

func TestBuildExcludesStopwords(t *testing.T) {
	b := New(DefaultConfig(), codes.Default())

	timeline := []model.TimelineRow{
		row(0, "BALL IN FINAL THIRD"),
		row(1, "BALL IN FINAL THIRD", "PROGRESSION"),
		row(2, "PROGRESSION", "SET PIECES", "GOALS"),
		row(3, "PROGRESSION", "ATTACKING TRANSITION"),
	}

	got := b.Build(timeline, 3)
	require.Equal(t, []string{"PROGRESSION", "ATTACKING TRANSITION"}, got)
}

func TestBuildDeduplicatesReentries(t *testing.T) {
	b := New(DefaultConfig(), codes.Default())

	// CROSSES enters, leaves, and enters again; one entry survives.
	timeline := []model.TimelineRow{
		row(0, "CROSSES"),
		row(1),
		row(2, "PROGRESSION"),
		row(3, "PROGRESSION", "CROSSES"),
	}

	got := b.Build(timeline, 3)
	require.Equal(t, []string{"CROSSES", "PROGRESSION"}, got)
}

func TestBuildWindowBounds(t *testing.T) {
	b := New(Config{WindowSec: 60, TopK: 4}, codes.Default())

	timeline := []model.TimelineRow{
		row(39, "FINISHING"),   // one second before the window
		row(40, "PROGRESSION"), // first second inside
		row(100, "CROSSES"),    // the peak second itself
		row(101, "HIGH PRESS"), // after the peak
	}

	got := b.Build(timeline, 100)
	require.Equal(t, []string{"PROGRESSION", "CROSSES"}, got)
}

func TestBuildWindowClampsToTimelineStart(t *testing.T) {
	b := New(Config{WindowSec: 60, TopK: 4}, codes.Default())

	// Peak at 20 with a 60s window must not look before the first row.
	timeline := []model.TimelineRow{
		row(0, "PROGRESSION"),
		row(20, "PROGRESSION", "CREATING CHANCES"),
	}

	got := b.Build(timeline, 20)
	require.Equal(t, []string{"PROGRESSION", "CREATING CHANCES"}, got)
}

func TestBuildCompressesToTopK(t *testing.T) {
	b := New(Config{WindowSec: 60, TopK: 4}, codes.Default())

	// Five distinct codes enter; HIGH PRESS carries the lowest weight and is
	// dropped, the survivors keep their original order.
	timeline := []model.TimelineRow{
		row(0, "HIGH PRESS"),
		row(1, "HIGH PRESS", "PROGRESSION"),
		row(2, "PROGRESSION", "CROSSES"),
		row(3, "CROSSES", "CREATING CHANCES"),
		row(4, "CREATING CHANCES", "FINISHING"),
	}

	got := b.Build(timeline, 4)
	require.Equal(t, []string{"PROGRESSION", "CROSSES", "CREATING CHANCES", "FINISHING"}, got)
}

func TestBuildShortSequenceNotCompressed(t *testing.T) {
	b := New(Config{WindowSec: 60, TopK: 4}, codes.Default())

	timeline := []model.TimelineRow{
		row(0, "HIGH PRESS"),
		row(1, "HIGH PRESS", "LOSSES"),
	}

	got := b.Build(timeline, 1)
	require.Equal(t, []string{"HIGH PRESS", "LOSSES"}, got)
}

func TestBuildSparseInput(t *testing.T) {
	b := New(DefaultConfig(), codes.Default())

	require.Empty(t, b.Build(nil, 100))
	require.Empty(t, b.Build([]model.TimelineRow{row(0), row(1)}, 1))

	// Window entirely before the timeline's rows selects nothing.
	timeline := []model.TimelineRow{row(500, "PROGRESSION")}
	require.Empty(t, b.Build(timeline, 100))
}

func TestBuildInvariants(t *testing.T) {
	cfg := Config{WindowSec: 60, TopK: 3}
	b := New(cfg, codes.Default())
	catalog := codes.Default()

	timeline := []model.TimelineRow{
		row(0, "BUILD UP", "PROGRESSION"),
		row(1, "PROGRESSION", "CROSSES", "BALL IN THE BOX"),
		row(2, "CROSSES", "CREATING CHANCES"),
		row(3, "CREATING CHANCES", "FINISHING", "SET PIECES"),
		row(4, "FINISHING", "ATTACKING TRANSITION"),
	}
	got := b.Build(timeline, 4)

	require.LessOrEqual(t, len(got), cfg.TopK)
	seen := make(map[string]struct{})
	for _, code := range got {
		require.False(t, catalog.IsStopword(code), "stopword %q leaked into fingerprint", code)
		_, dup := seen[code]
		require.False(t, dup, "duplicate code %q", code)
		seen[code] = struct{}{}
	}
}
