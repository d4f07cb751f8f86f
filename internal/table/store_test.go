package table

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func TestStore_SaveAndQuery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "sounds.db")
	store, err := OpenStore(path)
	if err != nil {
		t.Fatalf("OpenStore() error = %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	runID, err := store.Save(ctx, "", "urn:test", sampleTable())
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := uuid.Parse(runID); err != nil {
		t.Errorf("Run ID %q is not a UUID: %v", runID, err)
	}

	runs, err := store.Runs(ctx)
	if err != nil {
		t.Fatalf("Runs() error = %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}
	if runs[0].ID != runID || runs[0].URN != "urn:test" || runs[0].Lines != 2 || runs[0].Words != 3 {
		t.Errorf("Unexpected run info: %+v", runs[0])
	}

	totals, err := store.SoundTotals(ctx, runID, "")
	if err != nil {
		t.Fatalf("SoundTotals() error = %v", err)
	}
	expected := map[string]int{"_τ": 1, "_h": 1, "τ": 1, "ε": 1, "ο": 1, "σ": 1, "h": 1, "οι": 1}
	for sound, n := range expected {
		if totals[sound] != n {
			t.Errorf("SoundTotals()[%q] = %d, want %d", sound, totals[sound], n)
		}
	}

	speech, err := store.SoundTotals(ctx, runID, "speech")
	if err != nil {
		t.Fatalf("SoundTotals(speech) error = %v", err)
	}
	if len(speech) != 0 {
		t.Errorf("Expected no sounds in speech lines, got %v", speech)
	}
}

func TestStore_RunsAccumulate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sounds.db")
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		store, err := OpenStore(path)
		if err != nil {
			t.Fatalf("OpenStore() error = %v", err)
		}
		if _, err := store.Save(ctx, "", "urn:test", sampleTable()); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		store.Close()
	}

	store, err := OpenStore(path)
	if err != nil {
		t.Fatalf("OpenStore() error = %v", err)
	}
	defer store.Close()

	runs, err := store.Runs(ctx)
	if err != nil {
		t.Fatalf("Runs() error = %v", err)
	}
	if len(runs) != 2 || runs[0].ID == runs[1].ID {
		t.Errorf("Expected two distinct runs, got %+v", runs)
	}
}

func TestStore_SaveWithGivenRunID(t *testing.T) {
	store, err := OpenStore(filepath.Join(t.TempDir(), "sounds.db"))
	if err != nil {
		t.Fatalf("OpenStore() error = %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	id, err := store.Save(ctx, "run-1", "urn:test", sampleTable())
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if id != "run-1" {
		t.Errorf("Save() = %q, want run-1", id)
	}

	// Run IDs are primary keys
	if _, err := store.Save(ctx, "run-1", "urn:test", sampleTable()); err == nil {
		t.Error("Expected error when reusing a run ID")
	}
}
