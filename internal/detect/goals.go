package detect

import (
	"sort"

	"github.com/crimson-sun/backline/internal/model"
)

// OpponentGoalTimes returns the sorted start seconds of GOALS events scored
// by any team other than ours.
func OpponentGoalTimes(events []model.MatchEvent, teamName string) []int {
	var times []int
	for _, ev := range events {
		if ev.Code != "GOALS" || ev.Team == teamName {
			continue
		}
		times = append(times, ev.StartSec)
	}
	sort.Ints(times)
	return times
}

// NextGoalDelta returns the seconds from peakTime to the next opponent goal
// at or after it, or nil when no goal lands within maxLookahead.
func NextGoalDelta(peakTime int, goalTimes []int, maxLookahead int) *int {
	for _, gt := range goalTimes {
		if gt < peakTime {
			continue
		}
		delta := gt - peakTime
		if delta > maxLookahead {
			return nil
		}
		return &delta
	}
	return nil
}
