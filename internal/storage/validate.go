package storage

import (
	"math"
	"strings"

	"github.com/mmynk/karaokebattle/internal/models"
)

// ValidateSession checks the required fields of a new session.
func ValidateSession(session *models.Session) error {
	if strings.TrimSpace(session.Name) == "" {
		return &models.ValidationError{Field: "name", Message: "required"}
	}
	if session.Date.IsZero() {
		return &models.ValidationError{Field: "date", Message: "required"}
	}
	return nil
}

// ValidateParticipant checks a participant before it joins a session,
// including any scores it already carries.
func ValidateParticipant(participant *models.Participant) error {
	if strings.TrimSpace(participant.Name) == "" {
		return &models.ValidationError{Field: "name", Message: "required"}
	}
	if math.IsNaN(participant.Handicap) || math.IsInf(participant.Handicap, 0) || participant.Handicap < 0 {
		return &models.ValidationError{Field: "handicap", Message: "must be a non-negative number"}
	}
	for _, song := range models.Songs {
		if v := participant.Score.Get(song); v != nil {
			if err := ValidateSongScore(song, *v); err != nil {
				return err
			}
		}
	}
	return nil
}

// ValidateSongScore checks a song result against [MinSongScore, MaxSongScore].
func ValidateSongScore(song models.Song, value float64) error {
	if _, err := models.ParseSong(string(song)); err != nil {
		return err
	}
	if math.IsNaN(value) || value < models.MinSongScore || value > models.MaxSongScore {
		return &models.ValidationError{Field: string(song), Message: "score must be between 0 and 100"}
	}
	return nil
}
