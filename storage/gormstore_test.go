package storage

import (
	"errors"
	"fmt"
	"testing"
)

func setupGormBackend(t *testing.T) *GormBackend {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	g, err := NewGormBackend(dsn)
	if err != nil {
		t.Fatalf("open backend: %v", err)
	}
	return g
}

func TestGormBackendRoundTrip(t *testing.T) {
	g := setupGormBackend(t)

	if _, err := g.Load("vendors"); !errors.Is(err, ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}

	if err := g.Save("vendors", []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := g.Load("vendors")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(data) != `[{"id":1}]` {
		t.Errorf("unexpected contents: %s", data)
	}
}

func TestGormBackendUpsert(t *testing.T) {
	g := setupGormBackend(t)

	if err := g.Save("vendors", []byte(`[]`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := g.Save("vendors", []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	data, err := g.Load("vendors")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(data) != `[{"id":1}]` {
		t.Errorf("unexpected contents after upsert: %s", data)
	}

	names, err := g.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(names) != 1 || names[0] != "vendors" {
		t.Errorf("expected single vendors document, got %v", names)
	}
}
