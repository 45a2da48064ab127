// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/karaokebattle/internal/models"
)

// Store defines the session storage operations.
// This abstraction allows swapping storage backends without changing the
// service layer. Every method is atomic: it commits one transaction before
// returning.
//
// Errors are *models.ValidationError, *models.NotFoundError or
// *models.StorageError.
type Store interface {
	// CreateSession persists a new session with no participants.
	// The session.ID field is populated by the store when empty.
	CreateSession(ctx context.Context, session *models.Session) error

	// GetSession retrieves a session with its participants and scores.
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)

	// ListSessions returns every session, most recent date first.
	ListSessions(ctx context.Context) ([]*models.Session, error)

	// FinishSession marks a session as finished. Finishing twice is a no-op.
	FinishSession(ctx context.Context, sessionID string) error

	// SetSummary stores the generated summary of a session.
	SetSummary(ctx context.Context, sessionID, summary string) error

	// DeleteSession removes a session, its participants and their scores.
	// Deleting a missing session is not an error.
	DeleteSession(ctx context.Context, sessionID string) error

	// AddParticipant enters a participant into a session and creates the
	// empty score row. The participant.ID field is populated when empty.
	AddParticipant(ctx context.Context, sessionID string, participant *models.Participant) error

	// RecordScore sets one song result, keeping the other songs.
	RecordScore(ctx context.Context, participantID string, song models.Song, value float64) error

	// ClearScore resets one song to "not yet sung".
	ClearScore(ctx context.Context, participantID string, song models.Song) error

	// ListMasterNames returns the known participant names, sorted.
	ListMasterNames(ctx context.Context) ([]string, error)

	// AddMasterNames adds names to the master list, ignoring duplicates.
	AddMasterNames(ctx context.Context, names ...string) error

	// RemoveMasterName removes a name from the master list.
	RemoveMasterName(ctx context.Context, name string) error

	// Close releases any resources held by the store.
	Close() error
}
