package fixtures

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mmynk/karaokebattle/internal/calculator"
	"github.com/mmynk/karaokebattle/internal/storage/sqlite"
)

func seededStore(t *testing.T) *sqlite.SQLiteStore {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "fixtures.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	set, err := Load(Latest)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := Seed(context.Background(), store, set); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	return store
}

func TestLoad(t *testing.T) {
	versions := Versions()
	if len(versions) == 0 || versions[len(versions)-1] != Latest {
		t.Fatalf("Versions() = %v, want latest %d", versions, Latest)
	}

	set, err := Load(1)
	if err != nil {
		t.Fatalf("Load(1) failed: %v", err)
	}
	if len(set.Sessions) != 4 {
		t.Errorf("sessions: expected 4, got %d", len(set.Sessions))
	}
	if len(set.Names) != 10 {
		t.Errorf("names: expected 10, got %d", len(set.Names))
	}

	for _, s := range set.Sessions {
		if s.ID == "preset-20250101" && s.MachineType != "" {
			t.Errorf("preset-20250101 machine type = %q, want empty", s.MachineType)
		}
	}
}

func TestLoad_UnknownVersion(t *testing.T) {
	if _, err := Load(99); err == nil {
		t.Error("expected error for unknown fixture version")
	}
}

func TestSeed(t *testing.T) {
	store := seededStore(t)
	ctx := context.Background()

	session, err := store.GetSession(ctx, "preset-20250823")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if !session.IsFinished {
		t.Error("preset session should be finished")
	}
	if len(session.Participants) != 10 {
		t.Fatalf("participants: expected 10, got %d", len(session.Participants))
	}
	if session.Participants[0].ID != "preset-takaharu" {
		t.Errorf("first participant = %s, want preset-takaharu", session.Participants[0].ID)
	}
	if session.Location != "カラオケメガビッグ 光明池駅前店" {
		t.Errorf("location = %q", session.Location)
	}

	names, err := store.ListMasterNames(ctx)
	if err != nil {
		t.Fatalf("ListMasterNames failed: %v", err)
	}
	if len(names) != 10 {
		t.Errorf("master list: expected 10 names, got %d", len(names))
	}
}

func TestSeed_IsRepeatable(t *testing.T) {
	store := seededStore(t)
	ctx := context.Background()

	set, _ := Load(Latest)
	if err := Seed(ctx, store, set); err != nil {
		t.Fatalf("second Seed failed: %v", err)
	}

	sessions, err := store.ListSessions(ctx)
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	want := []string{"preset-20250823", "preset-20250101", "preset-20240427", "preset-20240223"}
	if len(sessions) != len(want) {
		t.Fatalf("sessions: expected %d, got %d", len(want), len(sessions))
	}
	for i, id := range want {
		if sessions[i].ID != id {
			t.Errorf("position %d: got %s, want %s", i, sessions[i].ID, id)
		}
	}
}

func TestSeed_RecordedZerosSurvive(t *testing.T) {
	store := seededStore(t)

	session, err := store.GetSession(context.Background(), "preset-20240427")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}

	for _, p := range session.Participants {
		if p.ID != "preset-0427-wataru" {
			continue
		}
		if p.Score.Sung() != 3 {
			t.Errorf("wataru sung = %d, want 3 (zeros are recorded scores)", p.Score.Sung())
		}
		if p.Score.Song2 == nil || *p.Score.Song2 != 0 {
			t.Errorf("wataru song2 = %v, want 0", p.Score.Song2)
		}
		return
	}
	t.Fatal("preset-0427-wataru not found")
}

func TestRankSeededSession(t *testing.T) {
	store := seededStore(t)

	session, err := store.GetSession(context.Background(), "preset-20250823")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}

	standings, err := calculator.Rank(session)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}

	want := []string{
		"preset-risa",     // 89.524 + 8 = 97.524
		"preset-rie",      // 90.832 + 6 = 96.832
		"preset-sayaka",   // 93.787 + 2 = 95.787
		"preset-takaharu", // 88.986 + 4 = 92.986
		"preset-keisuke",  // 87.944 + 4 = 91.944
		"preset-ryo",      // 89.939 + 1 = 90.939
		"preset-kohei",    // 89.530 + 0 = 89.530
		"preset-saki",     // 74.044 + 15 = 89.044
		"preset-wataru",   // 78.716 + 8 = 86.716
		"preset-nobuko",   // 78.893 + 7 = 85.893
	}
	if len(standings) != len(want) {
		t.Fatalf("standings: expected %d, got %d", len(want), len(standings))
	}
	for i, id := range want {
		if standings[i].Participant.ID != id {
			t.Errorf("place %d: got %s, want %s", i+1, standings[i].Participant.ID, id)
		}
		if standings[i].Place != i+1 {
			t.Errorf("%s place = %d, want %d", id, standings[i].Place, i+1)
		}
	}
}
