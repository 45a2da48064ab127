package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/karaokebattle/internal/models"
	"github.com/mmynk/karaokebattle/internal/storage"
)

const sessionColumns = "id, date, name, location, machine_type, is_finished, ai_summary"

// CreateSession persists a new session to the database.
func (s *SQLiteStore) CreateSession(ctx context.Context, session *models.Session) error {
	if err := storage.ValidateSession(session); err != nil {
		return err
	}

	// Generate ID if not set
	if session.ID == "" {
		session.ID = uuid.New().String()
	}

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRowContext(ctx, "SELECT 1 FROM sessions WHERE id = ?", session.ID).Scan(&exists)
		if err == nil {
			return &models.ValidationError{Field: "id", Message: "session already exists: " + session.ID}
		}
		if err != sql.ErrNoRows {
			return storageErr("check session existence", err)
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO sessions ("+sessionColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
			session.ID, session.Date.UnixMilli(), session.Name,
			nullString(session.Location), nullString(session.MachineType),
			session.IsFinished, nullString(session.AISummary),
		)
		if err != nil {
			return storageErr("insert session", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	session.Participants = []models.Participant{}
	return nil
}

// GetSession retrieves a session by ID, including participants and scores
// in insertion order.
func (s *SQLiteStore) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+sessionColumns+" FROM sessions WHERE id = ?",
		sessionID,
	)
	session, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, &models.NotFoundError{Kind: "session", ID: sessionID}
	}
	if err != nil {
		return nil, storageErr("get session", err)
	}

	participants, err := s.listParticipants(ctx, "WHERE p.session_id = ?", sessionID)
	if err != nil {
		return nil, err
	}
	session.Participants = participants[sessionID]
	if session.Participants == nil {
		session.Participants = []models.Participant{}
	}

	return session, nil
}

// ListSessions retrieves all sessions, most recent first, with their
// participants and scores.
func (s *SQLiteStore) ListSessions(ctx context.Context) ([]*models.Session, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+sessionColumns+" FROM sessions ORDER BY date DESC, id ASC",
	)
	if err != nil {
		return nil, storageErr("list sessions", err)
	}
	defer rows.Close()

	sessions := []*models.Session{}
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, storageErr("scan session", err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate sessions", err)
	}
	if len(sessions) == 0 {
		return sessions, nil
	}

	participants, err := s.listParticipants(ctx, "")
	if err != nil {
		return nil, err
	}
	for _, session := range sessions {
		session.Participants = participants[session.ID]
		if session.Participants == nil {
			session.Participants = []models.Participant{}
		}
	}

	return sessions, nil
}

// FinishSession marks a session as finished.
func (s *SQLiteStore) FinishSession(ctx context.Context, sessionID string) error {
	return s.updateSession(ctx, sessionID, "UPDATE sessions SET is_finished = 1 WHERE id = ?", sessionID)
}

// SetSummary stores the generated summary; an empty summary clears it.
func (s *SQLiteStore) SetSummary(ctx context.Context, sessionID, summary string) error {
	return s.updateSession(ctx, sessionID, "UPDATE sessions SET ai_summary = ? WHERE id = ?", nullString(summary), sessionID)
}

func (s *SQLiteStore) updateSession(ctx context.Context, sessionID, query string, args ...any) error {
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return storageErr("update session", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return storageErr("update session", err)
	}
	if n == 0 {
		return &models.NotFoundError{Kind: "session", ID: sessionID}
	}
	return nil
}

// DeleteSession removes a session by ID. Participants and scores go with
// it through ON DELETE CASCADE.
func (s *SQLiteStore) DeleteSession(ctx context.Context, sessionID string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", sessionID); err != nil {
		return storageErr("delete session", err)
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*models.Session, error) {
	session := &models.Session{}
	var (
		date        int64
		location    sql.NullString
		machineType sql.NullString
		aiSummary   sql.NullString
	)
	if err := row.Scan(&session.ID, &date, &session.Name, &location, &machineType, &session.IsFinished, &aiSummary); err != nil {
		return nil, err
	}

	session.Date = time.UnixMilli(date).UTC()
	session.Location = location.String
	session.MachineType = machineType.String
	session.AISummary = aiSummary.String
	return session, nil
}
