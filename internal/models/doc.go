// Package models defines the core domain models for karaoke battle records.
//
// # Models
//
//   - Session: one karaoke battle night (date, venue, machine, finished flag)
//   - Participant: a singer entered into a session with a handicap
//   - Score: the three song results for one participant
//
// The master name list is a plain []string and has no model of its own.
//
// # Design Principles
//
// 1. **Absent is not zero**: song scores are *float64; nil means "not yet
// sung", a pointer to 0 is a recorded zero.
// 2. **Avoid circular references**: participants carry their SessionID
// string, not a pointer back to the session.
// 3. **Typed errors**: every layer reports failures with the error types in
// errors.go so transports can map them to status codes.
//
// Models carry JSON tags because the read API serves them directly. Field
// names follow the database columns (snake_case).
package models
