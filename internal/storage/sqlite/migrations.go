package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// Dates are stored as Unix milliseconds so ORDER BY date sorts chronologically.
const schema = `
CREATE TABLE IF NOT EXISTS sessions (
    id TEXT PRIMARY KEY,
    date INTEGER NOT NULL,
    name TEXT NOT NULL,
    location TEXT,
    machine_type TEXT,
    is_finished BOOLEAN NOT NULL DEFAULT 0,
    ai_summary TEXT
);

CREATE TABLE IF NOT EXISTS participants (
    id TEXT PRIMARY KEY,
    session_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    handicap REAL NOT NULL CHECK (handicap >= 0),
    FOREIGN KEY (session_id) REFERENCES sessions(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS scores (
    participant_id TEXT PRIMARY KEY,
    song1 REAL CHECK (song1 BETWEEN 0 AND 100),
    song2 REAL CHECK (song2 BETWEEN 0 AND 100),
    song3 REAL CHECK (song3 BETWEEN 0 AND 100),
    FOREIGN KEY (participant_id) REFERENCES participants(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS master_list (
    name TEXT PRIMARY KEY
);

CREATE INDEX IF NOT EXISTS idx_sessions_date ON sessions(date);
CREATE INDEX IF NOT EXISTS idx_participants_session_id ON participants(session_id, position);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
