package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsSpecAndScriptEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("watcher: %v", err)
	}
	defer w.Close()

	tests := []struct {
		file string
		kind ChangeKind
	}{
		{"slime_boss.yaml", ChangeSpec},
		{"encounter.tengo", ChangeScript},
	}

	for _, tc := range tests {
		t.Run(tc.file, func(t *testing.T) {
			if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(filepath.Join(dir, tc.file), []byte("x: 1\n"), 0o644); err != nil {
				t.Fatal(err)
			}

			select {
			case ch := <-w.Events:
				if ch.Name != tc.file || ch.Kind != tc.kind {
					t.Fatalf("unexpected change %+v", ch)
				}
			case err := <-w.Errors:
				t.Fatalf("watch error: %v", err)
			case <-time.After(3 * time.Second):
				t.Fatalf("timed out waiting for %s", tc.file)
			}

			// Drain follow-up writes of the same file.
			time.Sleep(150 * time.Millisecond)
			for len(w.Events) > 0 {
				<-w.Events
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		kind ChangeKind
		ok   bool
	}{
		{"a/b/arena.yaml", ChangeSpec, true},
		{"player.YML", ChangeSpec, true},
		{"scripts/encounter.tengo", ChangeScript, true},
		{"readme.md", 0, false},
	}
	for _, tc := range tests {
		kind, ok := classify(tc.path)
		if kind != tc.kind || ok != tc.ok {
			t.Fatalf("classify(%q) = %v,%v want %v,%v", tc.path, kind, ok, tc.kind, tc.ok)
		}
	}
}
