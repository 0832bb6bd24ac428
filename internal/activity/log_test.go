package activity

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/msalah0e/graphpad/internal/config"
)

func TestPathFollowsConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if got, want := Path(), filepath.Join(config.ConfigDir(), "activity.jsonl"); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestLogAndRead(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if entries, err := Read(10); err != nil || len(entries) != 0 {
		t.Fatalf("expected empty log, got %v, %v", entries, err)
	}

	Log("save", "first", 3, 1, `{"numNodes":3}`)
	Log("save", "second", 4, 2, `{"numNodes":4}`)
	Log("save", "third", 5, 0, `{"numNodes":5}`)

	entries, err := Read(0)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Graph != "third" {
		t.Errorf("expected newest first, got %q", entries[0].Graph)
	}
	if entries[2].Nodes != 3 || entries[2].Edges != 1 {
		t.Errorf("unexpected oldest entry %+v", entries[2])
	}

	limited, _ := Read(2)
	if len(limited) != 2 {
		t.Errorf("expected 2 entries, got %d", len(limited))
	}
}

func TestReadSkipsGarbage(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	Log("save", "ok", 1, 0, "")

	f, _ := os.OpenFile(Path(), os.O_APPEND|os.O_WRONLY, 0o644)
	f.WriteString("not json\n\n")
	f.Close()

	entries, err := Read(0)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 parsable entry, got %d", len(entries))
	}
}

func TestSearch(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	Log("save", "Petersen", 10, 15, "")
	Log("save", "triangle", 3, 3, `{"graphName":"triangle"}`)

	results, err := Search("PETER", 0)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 || results[0].Graph != "Petersen" {
		t.Errorf("unexpected results %+v", results)
	}

	if all, _ := Search("save", 1); len(all) != 1 {
		t.Errorf("expected search limit to apply, got %d", len(all))
	}
}

func TestClear(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := Clear(); err != nil {
		t.Errorf("clearing a missing log should succeed: %v", err)
	}
	Log("save", "g", 1, 0, "")
	if err := Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, err := os.Stat(Path()); !os.IsNotExist(err) {
		t.Error("log file should be gone")
	}
}
