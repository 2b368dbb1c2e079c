package storage

import (
	"errors"
	"testing"
	"time"
)

func fixedClock(t *testing.T) func() time.Time {
	t.Helper()
	at := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func TestBackupWrittenBeforeOverwrite(t *testing.T) {
	inner := NewMemoryBackend()
	b := WithBackups(inner, fixedClock(t))

	if err := b.Save("customers", []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("first save: %v", err)
	}
	// First save of a document has nothing to snapshot
	if _, err := inner.Load("customers.backup.20240615_103000"); !errors.Is(err, ErrNotExist) {
		t.Fatalf("expected no backup after first save, got err=%v", err)
	}

	if err := b.Save("customers", []byte(`[{"id":1},{"id":2}]`)); err != nil {
		t.Fatalf("second save: %v", err)
	}

	backup, err := inner.Load("customers.backup.20240615_103000")
	if err != nil {
		t.Fatalf("load backup: %v", err)
	}
	if string(backup) != `[{"id":1}]` {
		t.Errorf("backup should hold pre-write contents, got %s", backup)
	}

	current, err := b.Load("customers")
	if err != nil {
		t.Fatalf("load current: %v", err)
	}
	if string(current) != `[{"id":1},{"id":2}]` {
		t.Errorf("unexpected current contents: %s", current)
	}
}

// failingBackend rejects saves of backup documents.
type failingBackend struct {
	*MemoryBackend
	failBackups bool
}

func (f *failingBackend) Save(name string, data []byte) error {
	if f.failBackups && len(name) > len("customers") {
		return errors.New("disk full")
	}
	return f.MemoryBackend.Save(name, data)
}

func TestFailedBackupAbortsSave(t *testing.T) {
	inner := &failingBackend{MemoryBackend: NewMemoryBackend()}
	b := WithBackups(inner, fixedClock(t))

	if err := b.Save("customers", []byte(`[1]`)); err != nil {
		t.Fatalf("first save: %v", err)
	}

	inner.failBackups = true
	if err := b.Save("customers", []byte(`[1,2]`)); err == nil {
		t.Fatal("expected save to fail when the backup cannot be written")
	}

	current, err := b.Load("customers")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(current) != `[1]` {
		t.Errorf("document should be untouched after aborted save, got %s", current)
	}
}

func TestBackupsAreNotSnapshotted(t *testing.T) {
	inner := NewMemoryBackend()
	b := WithBackups(inner, fixedClock(t))

	if err := b.Save("quotes.backup.20240101_000000", []byte(`[]`)); err != nil {
		t.Fatalf("save backup doc: %v", err)
	}
	if err := b.Save("quotes.backup.20240101_000000", []byte(`[1]`)); err != nil {
		t.Fatalf("overwrite backup doc: %v", err)
	}

	names, err := inner.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(names) != 1 {
		t.Errorf("expected no backup-of-backup, got %v", names)
	}
}
