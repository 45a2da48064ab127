package models

import (
	"fmt"
	"time"
)

const (
	// MinSongScore and MaxSongScore bound a recorded song result.
	MinSongScore = 0.0
	MaxSongScore = 100.0
)

// Session represents one karaoke battle.
type Session struct {
	// ID is the unique identifier for the session.
	// Generated as a UUID when not provided; fixtures use readable ids
	// such as "preset-20250823".
	ID string `json:"id"`

	// Date is when the battle took place.
	Date time.Time `json:"date"`

	// Name is the display name (e.g. "20250823_カラオケバトル").
	Name string `json:"name"`

	// Location is the venue, empty when unknown.
	Location string `json:"location,omitempty"`

	// MachineType is the scoring machine used (e.g. "Livedam Ai").
	MachineType string `json:"machine_type,omitempty"`

	// IsFinished is set once all songs are in. Only finished sessions
	// can be ranked.
	IsFinished bool `json:"is_finished"`

	// AISummary is an optional generated write-up of the night.
	AISummary string `json:"ai_summary,omitempty"`

	// Participants are ordered by insertion.
	Participants []Participant `json:"participants"`
}

// Participant is a singer entered into one session.
type Participant struct {
	ID        string  `json:"id"`
	SessionID string  `json:"session_id"`
	Name      string  `json:"name"`
	Handicap  float64 `json:"handicap"`
	Score     Score   `json:"scores"`
}

// Score holds the three song results of a participant.
// A nil song has not been sung yet.
type Score struct {
	Song1 *float64 `json:"song1"`
	Song2 *float64 `json:"song2"`
	Song3 *float64 `json:"song3"`
}

// Song names one of the three score columns.
type Song string

const (
	Song1 Song = "song1"
	Song2 Song = "song2"
	Song3 Song = "song3"
)

// Songs lists the valid songs in column order.
var Songs = []Song{Song1, Song2, Song3}

// ParseSong validates a song name.
func ParseSong(s string) (Song, error) {
	for _, song := range Songs {
		if string(song) == s {
			return song, nil
		}
	}
	return "", &ValidationError{Field: "song", Message: fmt.Sprintf("unknown song %q, want song1, song2 or song3", s)}
}

// Values returns the song results in column order.
func (s Score) Values() []*float64 {
	return []*float64{s.Song1, s.Song2, s.Song3}
}

// Get returns the result for one song.
func (s Score) Get(song Song) *float64 {
	switch song {
	case Song1:
		return s.Song1
	case Song2:
		return s.Song2
	case Song3:
		return s.Song3
	}
	return nil
}

// Set records (or with nil, clears) the result for one song.
func (s *Score) Set(song Song, value *float64) {
	switch song {
	case Song1:
		s.Song1 = value
	case Song2:
		s.Song2 = value
	case Song3:
		s.Song3 = value
	}
}

// Sung counts the songs that have a result.
func (s Score) Sung() int {
	n := 0
	for _, v := range s.Values() {
		if v != nil {
			n++
		}
	}
	return n
}

// Float returns a pointer to v, for building Score literals.
func Float(v float64) *float64 {
	return &v
}
