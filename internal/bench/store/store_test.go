package store

import (
	"path/filepath"
	"testing"
)

func TestInsertAndLoadRun(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "bench.db")
	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	run := Run{
		RunID:      "run-1",
		Iterations: 100,
		FillNs:     1000,
		CarveNs:    2000,
		SpanCount:  6,
		AirCells:   1,
		QuadCount:  24,
		Snapshot:   []byte{0x01, 0x02, 0x03},
	}
	if err := s.InsertRun(run); err != nil {
		t.Fatalf("InsertRun: %v", err)
	}

	got, err := s.LoadRun("run-1")
	if err != nil {
		t.Fatalf("LoadRun: %v", err)
	}
	if got.SpanCount != 6 || got.QuadCount != 24 || len(got.Snapshot) != 3 {
		t.Fatalf("unexpected loaded run: %+v", got)
	}
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatal("expected error for empty db path")
	}
}
