// Package calculator computes handicap-adjusted standings for karaoke battles.
package calculator

import (
	"math"
	"sort"

	"github.com/mmynk/karaokebattle/internal/models"
)

// resolution is the grid scores are compared on. Machine scores have three
// decimals, so anything finer is floating point noise.
const resolution = 1e6

// Standing is one participant's line on the leaderboard.
type Standing struct {
	Participant models.Participant `json:"participant"`

	// Average is the mean of the songs sung; nil when nothing was sung.
	Average *float64 `json:"average_score"`

	// Adjusted is Average + Handicap; nil when Average is nil.
	Adjusted *float64 `json:"adjusted_score"`

	// SongsSung counts the songs with a result (recorded zeros included).
	SongsSung int `json:"songs_sung"`

	// Place is the 1-based competition rank ("1224" style).
	Place int `json:"place"`

	// NextHandicap is the suggested handicap for the next battle.
	NextHandicap float64 `json:"next_handicap"`
}

// Rank computes the leaderboard of a finished session.
// Ranking an open session fails with a *models.StateError so provisional
// results are never presented as final.
func Rank(session *models.Session) ([]Standing, error) {
	if !session.IsFinished {
		return nil, &models.StateError{Op: "rank session " + session.ID, Message: "session is not finished"}
	}
	return RankParticipants(session.Participants), nil
}

// RankParticipants orders participants by adjusted score.
//
// Algorithm:
//   - average = mean of present songs, adjusted = average + handicap
//   - sort by adjusted desc, then average desc, then input order
//   - participants with no songs go last, in input order, sharing one place
//   - tied entries (same adjusted and average) share a place and the next
//     place skips by the size of the tie group
func RankParticipants(participants []models.Participant) []Standing {
	standings := make([]Standing, len(participants))
	for i, p := range participants {
		standings[i] = Standing{Participant: p, SongsSung: p.Score.Sung()}
		if avg, ok := Average(p.Score); ok {
			adjusted := avg + p.Handicap
			standings[i].Average = &avg
			standings[i].Adjusted = &adjusted
		}
	}

	// SliceStable keeps input order for equal keys.
	sort.SliceStable(standings, func(i, j int) bool {
		return compare(standings[i], standings[j]) < 0
	})

	for i := range standings {
		if i > 0 && compare(standings[i-1], standings[i]) == 0 {
			standings[i].Place = standings[i-1].Place
		} else {
			standings[i].Place = i + 1
		}
	}

	applyNextHandicaps(standings, participants)
	return standings
}

// Average returns the mean of the songs that have a result.
// ok is false when no song has been sung.
func Average(score models.Score) (avg float64, ok bool) {
	var sum float64
	var n int
	for _, v := range score.Values() {
		if v == nil {
			continue
		}
		sum += *v
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// compare returns a negative number when a ranks ahead of b, zero when they
// tie and a positive number otherwise.
func compare(a, b Standing) int {
	switch {
	case a.Adjusted == nil && b.Adjusted == nil:
		return 0
	case a.Adjusted == nil:
		return 1
	case b.Adjusted == nil:
		return -1
	}
	if c := cmpDesc(*a.Adjusted, *b.Adjusted); c != 0 {
		return c
	}
	return cmpDesc(*a.Average, *b.Average)
}

func cmpDesc(a, b float64) int {
	qa, qb := quantize(a), quantize(b)
	switch {
	case qa > qb:
		return -1
	case qa < qb:
		return 1
	}
	return 0
}

func quantize(v float64) float64 {
	return math.Round(v * resolution)
}
