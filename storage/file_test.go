package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileBackendRoundTrip(t *testing.T) {
	dir := t.TempDir()
	fb, err := NewFileBackend(dir)
	if err != nil {
		t.Fatalf("new backend: %v", err)
	}

	if _, err := fb.Load("customers"); !errors.Is(err, ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}

	if err := fb.Save("customers", []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := fb.Load("customers")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(data) != `[{"id":1}]` {
		t.Errorf("unexpected contents: %s", data)
	}

	if _, err := os.Stat(filepath.Join(dir, "customers.json")); err != nil {
		t.Errorf("expected customers.json on disk: %v", err)
	}
}

func TestFileBackendList(t *testing.T) {
	fb, err := NewFileBackend(t.TempDir())
	if err != nil {
		t.Fatalf("new backend: %v", err)
	}
	for _, name := range []string{"customers", "projects", "customers.backup.20240101_000000"} {
		if err := fb.Save(name, []byte(`[]`)); err != nil {
			t.Fatalf("save %s: %v", name, err)
		}
	}

	names, err := fb.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(names) != 3 {
		t.Errorf("expected 3 documents, got %v", names)
	}
}

func TestFileBackendOverwriteIsComplete(t *testing.T) {
	fb, err := NewFileBackend(t.TempDir())
	if err != nil {
		t.Fatalf("new backend: %v", err)
	}
	if err := fb.Save("quotes", []byte(`[1,2,3,4,5]`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := fb.Save("quotes", []byte(`[1]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	data, err := fb.Load("quotes")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(data) != `[1]` {
		t.Errorf("stale bytes after overwrite: %s", data)
	}
}
