package services

import (
	"errors"
	"testing"
	"time"

	"github.com/Micah-Glenz/hierarchical-data-explorer/database"
	"github.com/Micah-Glenz/hierarchical-data-explorer/errs"
	"github.com/Micah-Glenz/hierarchical-data-explorer/storage"
)

// faultyBackend fails every save of the named collections; everything else
// passes through to the in-memory backend.
type faultyBackend struct {
	*storage.MemoryBackend
	failing map[string]bool
}

func (b *faultyBackend) Save(name string, data []byte) error {
	if b.failing[name] {
		return errors.New("disk full")
	}
	return b.MemoryBackend.Save(name, data)
}

func TestCascadePartialFailureReportsAndRollsBack(t *testing.T) {
	backend := &faultyBackend{
		MemoryBackend: storage.NewMemoryBackend(),
		failing:       map[string]bool{},
	}
	db, err := database.New(backend, func() time.Time { return testClock })
	if err != nil {
		t.Fatalf("new database: %v", err)
	}
	customerID := seedHierarchy(t, db, 2, 2, 2)

	backend.failing[database.QuotesCollection] = true

	svc := NewCustomerService(db)
	summary, err := svc.Delete(customerID)
	if !errs.IsPartialCascade(err) {
		t.Fatalf("expected partial cascade error, got %v", err)
	}
	var pcErr *errs.PartialCascadeError
	if !errors.As(err, &pcErr) {
		t.Fatalf("expected *errs.PartialCascadeError, got %T", err)
	}

	if summary.Projects != 2 || summary.Quotes != 0 || summary.VendorQuotes != 8 {
		t.Errorf("unexpected summary: %+v", summary)
	}
	if pcErr.Succeeded[database.ProjectsCollection] != 2 ||
		pcErr.Succeeded[database.QuotesCollection] != 0 ||
		pcErr.Succeeded[database.VendorQuotesCollection] != 8 {
		t.Errorf("unexpected succeeded counts: %v", pcErr.Succeeded)
	}
	if len(pcErr.Failed) != 4 {
		t.Errorf("expected 4 failed quote deletions, got %v", pcErr.Failed)
	}

	// The customer and projects stay deleted; the quote store rolls back, so
	// every quote is still active and a retry has only quotes left to do.
	if _, err := svc.Get(customerID); !errs.IsNotFound(err) {
		t.Errorf("customer should stay deleted, got %v", err)
	}
	if active := db.ProjectStore().FindAll(false); len(active) != 0 {
		t.Errorf("expected no active projects, got %d", len(active))
	}
	if active := db.QuoteStore().FindAll(false); len(active) != 4 {
		t.Errorf("expected all 4 quotes still active after rollback, got %d", len(active))
	}
	if active := db.VendorQuoteStore().FindAll(false); len(active) != 0 {
		t.Errorf("expected no active vendor quotes, got %d", len(active))
	}

	backend.failing[database.QuotesCollection] = false
	quotes := NewQuoteService(db)
	for _, q := range db.QuoteStore().FindAll(false) {
		if _, err := quotes.Delete(q.ID); err != nil {
			t.Fatalf("retry delete quote %d: %v", q.ID, err)
		}
	}
	if active := db.QuoteStore().FindAll(false); len(active) != 0 {
		t.Errorf("expected no active quotes after retry, got %d", len(active))
	}
}
