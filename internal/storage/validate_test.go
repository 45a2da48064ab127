package storage

import (
	"math"
	"testing"
	"time"

	"github.com/mmynk/karaokebattle/internal/models"
)

func TestValidateSession(t *testing.T) {
	tests := []struct {
		name    string
		session models.Session
		wantErr bool
	}{
		{"valid", models.Session{Name: "20250823_カラオケバトル", Date: time.Now()}, false},
		{"missing name", models.Session{Date: time.Now()}, true},
		{"blank name", models.Session{Name: "   ", Date: time.Now()}, true},
		{"missing date", models.Session{Name: "battle"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSession(&tt.session)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSession() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !models.IsValidation(err) {
				t.Errorf("expected ValidationError, got %T", err)
			}
		})
	}
}

func TestValidateParticipant(t *testing.T) {
	tests := []struct {
		name     string
		handicap float64
		wantErr  bool
	}{
		{"zero handicap", 0, false},
		{"positive handicap", 15, false},
		{"negative handicap", -0.5, true},
		{"NaN handicap", math.NaN(), true},
		{"infinite handicap", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateParticipant(&models.Participant{Name: "リサ", Handicap: tt.handicap})
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateParticipant() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateSongScore(t *testing.T) {
	tests := []struct {
		name    string
		song    models.Song
		value   float64
		wantErr bool
	}{
		{"lower bound", models.Song1, 0, false},
		{"upper bound", models.Song3, 100, false},
		{"typical", models.Song2, 89.751, false},
		{"below range", models.Song1, -1, true},
		{"above range", models.Song1, 100.001, true},
		{"NaN", models.Song1, math.NaN(), true},
		{"unknown song", models.Song("song4"), 50, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSongScore(tt.song, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSongScore() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateParticipant_Scores(t *testing.T) {
	p := &models.Participant{Name: "ワタル", Handicap: 20}
	p.Score.Song2 = models.Float(101)
	if err := ValidateParticipant(p); !models.IsValidation(err) {
		t.Errorf("expected ValidationError for out-of-range score, got %v", err)
	}

	p.Score.Song2 = models.Float(0)
	if err := ValidateParticipant(p); err != nil {
		t.Errorf("recorded zero should be valid, got %v", err)
	}
}
