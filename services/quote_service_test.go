package services

import (
	"testing"

	"github.com/Micah-Glenz/hierarchical-data-explorer/errs"
)

func TestQuoteValidation(t *testing.T) {
	db := setupTestDB(t)
	seedHierarchy(t, db, 1, 0, 0)
	quotes := NewQuoteService(db)
	projects, err := NewProjectService(db).ListByCustomer(1)
	if err != nil {
		t.Fatalf("list projects: %v", err)
	}

	in := quoteInput(projects[0].ID, "Freight")
	in.Amount = 0
	if _, err := quotes.Create(in); !errs.IsValidation(err) {
		t.Errorf("expected validation error for zero amount, got %v", err)
	}

	in = quoteInput(projects[0].ID, "Freight")
	in.Amount = 1000000000
	if _, err := quotes.Create(in); !errs.IsValidation(err) {
		t.Errorf("expected validation error for oversized amount, got %v", err)
	}

	in = quoteInput(projects[0].ID, "Freight")
	in.ValidUntil = "12/31/2024"
	if _, err := quotes.Create(in); !errs.IsValidation(err) {
		t.Errorf("expected validation error for bad date, got %v", err)
	}
}

func TestQuoteDeleteCascadesToVendorQuotes(t *testing.T) {
	db := setupTestDB(t)
	seedHierarchy(t, db, 1, 1, 3)
	quotes := NewQuoteService(db)
	projects, err := NewProjectService(db).ListByCustomer(1)
	if err != nil {
		t.Fatalf("list projects: %v", err)
	}
	list, err := quotes.ListByProject(projects[0].ID)
	if err != nil || len(list) != 1 {
		t.Fatalf("list quotes: len=%d err=%v", len(list), err)
	}

	summary, err := quotes.Delete(list[0].ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if summary.VendorQuotes != 3 || summary.Quotes != 0 {
		t.Errorf("unexpected cascade counts: %+v", summary)
	}
	if got := db.VendorQuoteStore().FindAll(false); len(got) != 0 {
		t.Errorf("expected no active vendor quotes, got %d", len(got))
	}
}

func TestQuoteUpdateUniquenessScopedToProject(t *testing.T) {
	db := setupTestDB(t)
	seedHierarchy(t, db, 1, 2, 0)
	quotes := NewQuoteService(db)
	projects, err := NewProjectService(db).ListByCustomer(1)
	if err != nil {
		t.Fatalf("list projects: %v", err)
	}
	list, err := quotes.ListByProject(projects[0].ID)
	if err != nil || len(list) != 2 {
		t.Fatalf("list quotes: len=%d err=%v", len(list), err)
	}

	name := list[0].Name
	if _, err := quotes.Update(list[1].ID, QuotePatch{Name: &name}); !errs.IsConflict(err) {
		t.Errorf("expected conflict renaming onto sibling quote, got %v", err)
	}
}
