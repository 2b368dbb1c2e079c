package storage

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const backupTimestampLayout = "20060102_150405"

// backupBackend snapshots the current document before every overwrite. The
// snapshot is written as a sibling document named
// {name}.backup.{YYYYMMDD_HHMMSS}; if the snapshot cannot be written the
// overwrite is aborted.
type backupBackend struct {
	inner Backend
	now   func() time.Time
}

// WithBackups wraps a backend so every Save of an existing document is
// preceded by a timestamped backup of its prior contents. The clock is
// injectable for tests; pass nil for time.Now.
func WithBackups(inner Backend, now func() time.Time) Backend {
	if now == nil {
		now = time.Now
	}
	return &backupBackend{inner: inner, now: now}
}

func (b *backupBackend) Load(name string) ([]byte, error) {
	return b.inner.Load(name)
}

func (b *backupBackend) Save(name string, data []byte) error {
	// Backups themselves are written through inner and never re-snapshotted.
	if !strings.Contains(name, ".backup.") {
		prev, err := b.inner.Load(name)
		if err != nil && !errors.Is(err, ErrNotExist) {
			return fmt.Errorf("reading %s before backup: %w", name, err)
		}
		if err == nil {
			backupName := fmt.Sprintf("%s.backup.%s", name, b.now().Format(backupTimestampLayout))
			if err := b.inner.Save(backupName, prev); err != nil {
				return fmt.Errorf("writing backup %s: %w", backupName, err)
			}
		}
	}
	return b.inner.Save(name, data)
}

func (b *backupBackend) List() ([]string, error) {
	return b.inner.List()
}
