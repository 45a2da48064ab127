package calculator

import "github.com/mmynk/karaokebattle/internal/models"

// MaxHandicap caps the suggested handicap for the next battle.
const MaxHandicap = 15.0

// applyNextHandicaps fills Standing.NextHandicap.
//
// Formula: next = best single song of the night - adjusted score, clamped
// to [0, MaxHandicap]. Someone who sang nothing is treated as adjusted 0.
// When nobody has sung, every suggestion stays 0.
func applyNextHandicaps(standings []Standing, participants []models.Participant) {
	best, found := BestSong(participants)
	if !found {
		return
	}
	for i := range standings {
		adjusted := 0.0
		if standings[i].Adjusted != nil {
			adjusted = *standings[i].Adjusted
		}
		standings[i].NextHandicap = clamp(best-adjusted, 0, MaxHandicap)
	}
}

// BestSong returns the highest single song result across participants.
func BestSong(participants []models.Participant) (best float64, ok bool) {
	for _, p := range participants {
		for _, v := range p.Score.Values() {
			if v != nil && (!ok || *v > best) {
				best = *v
				ok = true
			}
		}
	}
	return best, ok
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
