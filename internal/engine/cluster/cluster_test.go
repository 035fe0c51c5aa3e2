package cluster

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crimson-sun/backline/internal/engine/codes"
	"github.com/crimson-sun/backline/internal/model"
)

func moment(match string, goal bool, seq ...string) model.DangerMoment {
	return model.DangerMoment{MatchName: match, ResultedInGoal: goal, FingerprintSeq: seq}
}

func TestClusterGroupsIdenticalFingerprints(t *testing.T) {
	c := New(DefaultConfig(), codes.Default())

	moments := []model.DangerMoment{
		moment("granada-away", true, "ATTACKING TRANSITION", "CREATING CHANCES"),
		moment("sevilla-home", false, "ATTACKING TRANSITION", "CREATING CHANCES"),
		moment("getafe-home", true, "PROGRESSION", "FINISHING"),
	}

	clusters := c.Cluster(moments)
	require.Len(t, clusters, 2)

	first := clusters[0]
	require.Equal(t, []string{"ATTACKING TRANSITION", "CREATING CHANCES"}, first.Sequence)
	require.Len(t, first.Matches, 2)
	require.Contains(t, first.Matches, "granada-away")
	require.Contains(t, first.Matches, "sevilla-home")
	require.Equal(t, 1, first.GoalsInPattern)
	require.Len(t, first.Examples, 2)

	second := clusters[1]
	require.Equal(t, []string{"PROGRESSION", "FINISHING"}, second.Sequence)
	require.Equal(t, 1, second.GoalsInPattern)
}

func TestClusterSkipsShortAndCauselessFingerprints(t *testing.T) {
	c := New(DefaultConfig(), codes.Default())

	moments := []model.DangerMoment{
		moment("m1", true, "ATTACKING TRANSITION"),     // too short
		moment("m2", true),                             // empty
		moment("m3", true, "HIGH PRESS", "CROSSES"),    // no cause code
		moment("m4", true, "PROGRESSION", "FINISHING"), // survives
	}

	clusters := c.Cluster(moments)
	require.Len(t, clusters, 1)
	require.Equal(t, []string{"PROGRESSION", "FINISHING"}, clusters[0].Sequence)
}

func TestClusterFirstFitNotBestFit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SimilarityThreshold = 0.5
	c := New(cfg, codes.Default())

	// The third fingerprint contains both existing representatives at 2/3
	// similarity; it must land in the cluster created first.
	moments := []model.DangerMoment{
		moment("m1", false, "ATTACKING TRANSITION", "PROGRESSION"),
		moment("m2", false, "ATTACKING TRANSITION", "CREATING CHANCES"),
		moment("m3", true, "ATTACKING TRANSITION", "PROGRESSION", "CREATING CHANCES"),
	}

	clusters := c.Cluster(moments)
	require.Len(t, clusters, 2)
	require.Len(t, clusters[0].Matches, 2)
	require.Contains(t, clusters[0].Matches, "m3")
	require.Len(t, clusters[1].Matches, 1)
}

func TestClusterRepresentativeShrinksOnly(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SimilarityThreshold = 0.6
	c := New(cfg, codes.Default())

	long := []string{"ATTACKING TRANSITION", "PROGRESSION", "CREATING CHANCES"}
	short := []string{"ATTACKING TRANSITION", "CREATING CHANCES"}

	clusters := c.Cluster([]model.DangerMoment{
		moment("m1", false, long...),
		moment("m2", false, short...), // strictly shorter: replaces the representative
		moment("m3", false, long...),  // longer again: representative stays
	})

	require.Len(t, clusters, 1)
	require.Equal(t, short, clusters[0].Sequence)
	require.Len(t, clusters[0].Matches, 3)
}

func TestClusterExampleCap(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, 5, cfg.MaxExamples)
	c := New(cfg, codes.Default())

	var moments []model.DangerMoment
	for _, match := range []string{"m1", "m2", "m3", "m4", "m5", "m6", "m7"} {
		moments = append(moments, moment(match, true, "ATTACKING TRANSITION", "CREATING CHANCES"))
	}

	clusters := c.Cluster(moments)
	require.Len(t, clusters, 1)
	require.Len(t, clusters[0].Examples, 5)
	// Goal and match tallies keep counting past the exemplar cap.
	require.Equal(t, 7, clusters[0].GoalsInPattern)
	require.Len(t, clusters[0].Matches, 7)
}

func TestClusterDeterministic(t *testing.T) {
	c := New(DefaultConfig(), codes.Default())
	moments := []model.DangerMoment{
		moment("m1", true, "ATTACKING TRANSITION", "CREATING CHANCES"),
		moment("m2", false, "PROGRESSION", "FINISHING"),
		moment("m3", true, "ATTACKING TRANSITION", "CREATING CHANCES"),
	}

	a := c.Cluster(moments)
	b := c.Cluster(moments)
	require.Equal(t, a, b)
}

func TestClusterEmptyInput(t *testing.T) {
	c := New(DefaultConfig(), codes.Default())
	require.Empty(t, c.Cluster(nil))
}
