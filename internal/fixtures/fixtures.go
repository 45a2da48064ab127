// Package fixtures holds the versioned preset data (past battles and the
// master name list) and seeds it into a store.
//
// Each version lives in data/v<N>/ as sessions.json and master_list.json.
// A new version is added as a new directory; existing ones are never edited
// so tests pinned to a version keep their expectations.
package fixtures

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/mmynk/karaokebattle/internal/models"
	"github.com/mmynk/karaokebattle/internal/storage"
)

// Latest is the newest fixture version.
const Latest = 1

//go:embed data
var files embed.FS

// Set is one version of the fixture data.
type Set struct {
	Version  int
	Sessions []models.Session
	Names    []string
}

type sessionsFile struct {
	Version  int              `json:"version"`
	Sessions []models.Session `json:"sessions"`
}

type masterListFile struct {
	Version int      `json:"version"`
	Names   []string `json:"names"`
}

// Versions lists the available fixture versions in ascending order.
func Versions() []int {
	entries, err := fs.ReadDir(files, "data")
	if err != nil {
		return nil
	}
	var versions []int
	for _, e := range entries {
		if !e.IsDir() || !strings.HasPrefix(e.Name(), "v") {
			continue
		}
		if v, err := strconv.Atoi(strings.TrimPrefix(e.Name(), "v")); err == nil {
			versions = append(versions, v)
		}
	}
	sort.Ints(versions)
	return versions
}

// Load reads and validates one fixture version.
func Load(version int) (*Set, error) {
	dir := path.Join("data", "v"+strconv.Itoa(version))

	var sf sessionsFile
	if err := readJSON(path.Join(dir, "sessions.json"), &sf); err != nil {
		return nil, fmt.Errorf("fixture version %d: %w", version, err)
	}
	var mf masterListFile
	if err := readJSON(path.Join(dir, "master_list.json"), &mf); err != nil {
		return nil, fmt.Errorf("fixture version %d: %w", version, err)
	}
	if sf.Version != version || mf.Version != version {
		return nil, fmt.Errorf("fixture version %d: files declare versions %d and %d", version, sf.Version, mf.Version)
	}

	set := &Set{Version: version, Sessions: sf.Sessions, Names: mf.Names}
	if err := set.validate(); err != nil {
		return nil, fmt.Errorf("fixture version %d: %w", version, err)
	}
	return set, nil
}

func readJSON(name string, v any) error {
	data, err := files.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// validate checks ids are present and unique and every record passes the
// store's own validation.
func (s *Set) validate() error {
	seen := make(map[string]bool)
	for i := range s.Sessions {
		session := &s.Sessions[i]
		if session.ID == "" {
			return fmt.Errorf("session %q has no id", session.Name)
		}
		if seen[session.ID] {
			return fmt.Errorf("duplicate id %s", session.ID)
		}
		seen[session.ID] = true
		if err := storage.ValidateSession(session); err != nil {
			return fmt.Errorf("session %s: %w", session.ID, err)
		}

		for j := range session.Participants {
			p := &session.Participants[j]
			if p.ID == "" {
				return fmt.Errorf("session %s: participant %q has no id", session.ID, p.Name)
			}
			if seen[p.ID] {
				return fmt.Errorf("duplicate id %s", p.ID)
			}
			seen[p.ID] = true
			if err := storage.ValidateParticipant(p); err != nil {
				return fmt.Errorf("participant %s: %w", p.ID, err)
			}
		}
	}
	return nil
}

// Seed writes the set into the store. Sessions already present under the
// same id are replaced, so seeding can be re-run.
func Seed(ctx context.Context, store storage.Store, set *Set) error {
	for i := range set.Sessions {
		if err := seedSession(ctx, store, set.Sessions[i]); err != nil {
			return fmt.Errorf("seed session %s: %w", set.Sessions[i].ID, err)
		}
	}

	if err := store.AddMasterNames(ctx, set.Names...); err != nil {
		return fmt.Errorf("seed master list: %w", err)
	}

	slog.Info("Fixtures seeded",
		"version", set.Version,
		"sessions", len(set.Sessions),
		"names", len(set.Names),
	)
	return nil
}

func seedSession(ctx context.Context, store storage.Store, fixture models.Session) error {
	if err := store.DeleteSession(ctx, fixture.ID); err != nil {
		return err
	}

	session := fixture
	session.IsFinished = false
	session.Participants = nil
	if err := store.CreateSession(ctx, &session); err != nil {
		return err
	}

	for _, fp := range fixture.Participants {
		p := models.Participant{ID: fp.ID, Name: fp.Name, Handicap: fp.Handicap}
		if err := store.AddParticipant(ctx, session.ID, &p); err != nil {
			return err
		}
		for _, song := range models.Songs {
			v := fp.Score.Get(song)
			if v == nil {
				continue
			}
			if err := store.RecordScore(ctx, p.ID, song, *v); err != nil {
				return err
			}
		}
	}

	if fixture.IsFinished {
		if err := store.FinishSession(ctx, session.ID); err != nil {
			return err
		}
	}

	slog.Debug("Seeded session", "session_id", session.ID, "participants", len(fixture.Participants))
	return nil
}
