package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/mmynk/karaokebattle/internal/models"
)

// ListMasterNames returns the master list sorted by name.
func (s *SQLiteStore) ListMasterNames(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name FROM master_list ORDER BY name")
	if err != nil {
		return nil, storageErr("list master names", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, storageErr("scan master name", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate master names", err)
	}

	return names, nil
}

// AddMasterNames inserts names, skipping ones already present.
func (s *SQLiteStore) AddMasterNames(ctx context.Context, names ...string) error {
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			return &models.ValidationError{Field: "name", Message: "required"}
		}
	}

	return s.inTx(ctx, func(tx *sql.Tx) error {
		for _, name := range names {
			if _, err := tx.ExecContext(ctx, "INSERT OR IGNORE INTO master_list (name) VALUES (?)", name); err != nil {
				return storageErr("insert master name", err)
			}
		}
		return nil
	})
}

// RemoveMasterName deletes a name. Removing an unknown name is a no-op.
func (s *SQLiteStore) RemoveMasterName(ctx context.Context, name string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM master_list WHERE name = ?", name); err != nil {
		return storageErr("delete master name", err)
	}
	return nil
}
