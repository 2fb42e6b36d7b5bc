package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{
		Seed: 7, Map: "CLASSIC", Speed: 7, Cleared: 2,
		Score: 420, Length: 31, Ticks: 1200, Outcome: "collision",
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if len(id) != 36 {
		t.Errorf("SaveRun() id = %q, expected a UUID", id)
	}

	r, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if r == nil {
		t.Fatal("RunByID() = nil, expected the saved run")
	}
	if r.Map != "CLASSIC" || r.Score != 420 || r.Ticks != 1200 || r.Cleared != 2 || r.Seed != 7 {
		t.Errorf("RunByID() = %+v, fields do not match the saved run", *r)
	}
	if r.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestStoreKeepsGivenID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{ID: "fixed", Map: "SLIT", Outcome: "stuck"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id != "fixed" {
		t.Errorf("SaveRun() id = %q, expected %q", id, "fixed")
	}
	if _, err := store.SaveRun(Run{ID: "fixed", Map: "SLIT", Outcome: "stuck"}); err == nil {
		t.Error("SaveRun() with a duplicate id should fail")
	}
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	r, err := store.RunByID("nope")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if r != nil {
		t.Errorf("RunByID() = %+v, expected nil", *r)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		if _, err := store.SaveRun(Run{Map: "CROSS", Score: i, Outcome: "collision"}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("RecentRuns(3) returned %d runs, expected 3", len(runs))
	}
	for i, want := range []int{4, 3, 2} {
		if runs[i].Score != want {
			t.Errorf("RecentRuns()[%d].Score = %d, expected %d", i, runs[i].Score, want)
		}
	}
}

func TestStoreTopRuns(t *testing.T) {
	store := openTestStore(t)

	saves := []Run{
		{Map: "FOUR", Score: 100, Outcome: "collision"},
		{Map: "FOUR", Score: 300, Outcome: "collision"},
		{Map: "AROUND", Score: 500, Outcome: "stuck"},
		{Map: "FOUR", Score: 200, Outcome: "limit"},
	}
	for _, r := range saves {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	tests := []struct {
		name  string
		mapN  string
		limit int
		want  []int
	}{
		{"one map", "FOUR", 10, []int{300, 200, 100}},
		{"limited", "FOUR", 2, []int{300, 200}},
		{"all maps", "", 10, []int{500, 300, 200, 100}},
		{"unknown map", "SLIT", 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs, err := store.TopRuns(tt.mapN, tt.limit)
			if err != nil {
				t.Fatalf("TopRuns() failed: %v", err)
			}
			if len(runs) != len(tt.want) {
				t.Fatalf("TopRuns() returned %d runs, expected %d", len(runs), len(tt.want))
			}
			for i, want := range tt.want {
				if runs[i].Score != want {
					t.Errorf("TopRuns()[%d].Score = %d, expected %d", i, runs[i].Score, want)
				}
			}
		})
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty journal failed: %v", err)
	}
	if empty.Runs != 0 || empty.BestScore != 0 {
		t.Errorf("Stats() on empty journal = %+v, expected zeros", *empty)
	}

	saves := []Run{
		{Map: "CLASSIC", Score: 100, Ticks: 10, Outcome: "collision"},
		{Map: "CLASSIC", Score: 300, Ticks: 30, Outcome: "stuck"},
		{Map: "SLIT", Score: 200, Ticks: 20, Outcome: "collision"},
	}
	for _, r := range saves {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Runs != 3 {
		t.Errorf("Runs = %d, expected 3", st.Runs)
	}
	if st.BestScore != 300 {
		t.Errorf("BestScore = %d, expected 300", st.BestScore)
	}
	if st.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", st.AvgScore)
	}
	if st.AvgTicks != 20 {
		t.Errorf("AvgTicks = %v, expected 20", st.AvgTicks)
	}
	if st.Collisions != 2 || st.Stuck != 1 {
		t.Errorf("Collisions, Stuck = %d, %d, expected 2, 1", st.Collisions, st.Stuck)
	}

	perMap, err := store.MapStats()
	if err != nil {
		t.Fatalf("MapStats() failed: %v", err)
	}
	if len(perMap) != 2 {
		t.Fatalf("MapStats() has %d maps, expected 2", len(perMap))
	}
	if c := perMap["CLASSIC"]; c == nil || c.Runs != 2 || c.BestScore != 300 {
		t.Errorf("MapStats()[CLASSIC] = %+v, expected 2 runs best 300", c)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Map: "CROSS", Outcome: "collision"})
	store.SaveRun(Run{Map: "CROSS", Outcome: "collision"})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	runs, _ := store.RecentRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}
