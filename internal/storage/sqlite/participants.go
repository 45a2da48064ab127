package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/karaokebattle/internal/models"
	"github.com/mmynk/karaokebattle/internal/storage"
)

// AddParticipant enters a participant into a session together with an
// empty score row, and records the name in the master list.
func (s *SQLiteStore) AddParticipant(ctx context.Context, sessionID string, participant *models.Participant) error {
	if err := storage.ValidateParticipant(participant); err != nil {
		return err
	}

	// Generate ID if not set
	if participant.ID == "" {
		participant.ID = uuid.New().String()
	}

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		// Next position doubles as the session existence check
		var sessionExists, position int
		err := tx.QueryRowContext(ctx,
			`SELECT
			    (SELECT COUNT(*) FROM sessions WHERE id = ?),
			    (SELECT COALESCE(MAX(position) + 1, 0) FROM participants WHERE session_id = ?)`,
			sessionID, sessionID,
		).Scan(&sessionExists, &position)
		if err != nil {
			return storageErr("check session existence", err)
		}
		if sessionExists == 0 {
			return &models.NotFoundError{Kind: "session", ID: sessionID}
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO participants (id, session_id, position, name, handicap) VALUES (?, ?, ?, ?, ?)",
			participant.ID, sessionID, position, participant.Name, participant.Handicap,
		)
		if err != nil {
			return storageErr("insert participant", err)
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO scores (participant_id, song1, song2, song3) VALUES (?, ?, ?, ?)",
			participant.ID,
			nullFloat(participant.Score.Song1), nullFloat(participant.Score.Song2), nullFloat(participant.Score.Song3),
		)
		if err != nil {
			return storageErr("insert score", err)
		}

		_, err = tx.ExecContext(ctx, "INSERT OR IGNORE INTO master_list (name) VALUES (?)", participant.Name)
		if err != nil {
			return storageErr("insert master name", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	participant.SessionID = sessionID
	return nil
}

// RecordScore upserts one song column, leaving the others untouched.
func (s *SQLiteStore) RecordScore(ctx context.Context, participantID string, song models.Song, value float64) error {
	if err := storage.ValidateSongScore(song, value); err != nil {
		return err
	}
	return s.setSong(ctx, participantID, song, sql.NullFloat64{Float64: value, Valid: true})
}

// ClearScore resets one song column to NULL.
func (s *SQLiteStore) ClearScore(ctx context.Context, participantID string, song models.Song) error {
	if _, err := models.ParseSong(string(song)); err != nil {
		return err
	}
	return s.setSong(ctx, participantID, song, sql.NullFloat64{})
}

func (s *SQLiteStore) setSong(ctx context.Context, participantID string, song models.Song, value sql.NullFloat64) error {
	// song has been validated, so it is one of the three column names
	query := fmt.Sprintf(
		`INSERT INTO scores (participant_id, %[1]s) VALUES (?, ?)
		 ON CONFLICT (participant_id) DO UPDATE SET %[1]s = excluded.%[1]s`,
		song,
	)

	return s.inTx(ctx, func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRowContext(ctx, "SELECT 1 FROM participants WHERE id = ?", participantID).Scan(&exists)
		if err == sql.ErrNoRows {
			return &models.NotFoundError{Kind: "participant", ID: participantID}
		}
		if err != nil {
			return storageErr("check participant existence", err)
		}

		if _, err := tx.ExecContext(ctx, query, participantID, value); err != nil {
			return storageErr("record score", err)
		}
		return nil
	})
}

// listParticipants loads participants with their scores, grouped by
// session ID and ordered by position. where filters on the p alias.
func (s *SQLiteStore) listParticipants(ctx context.Context, where string, args ...any) (map[string][]models.Participant, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT p.id, p.session_id, p.name, p.handicap, sc.song1, sc.song2, sc.song3
		 FROM participants p
		 LEFT JOIN scores sc ON sc.participant_id = p.id
		 `+where+`
		 ORDER BY p.session_id, p.position`,
		args...,
	)
	if err != nil {
		return nil, storageErr("get participants", err)
	}
	defer rows.Close()

	bySession := make(map[string][]models.Participant)
	for rows.Next() {
		var (
			p                   models.Participant
			song1, song2, song3 sql.NullFloat64
		)
		if err := rows.Scan(&p.ID, &p.SessionID, &p.Name, &p.Handicap, &song1, &song2, &song3); err != nil {
			return nil, storageErr("scan participant", err)
		}
		p.Score = models.Score{
			Song1: floatPtr(song1),
			Song2: floatPtr(song2),
			Song3: floatPtr(song3),
		}
		bySession[p.SessionID] = append(bySession[p.SessionID], p)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate participants", err)
	}

	return bySession, nil
}
