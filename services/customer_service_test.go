package services

import (
	"errors"
	"testing"

	"github.com/Micah-Glenz/hierarchical-data-explorer/errs"
)

func TestCustomerRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCustomerService(db)

	in := customerInput("Acme Logistics")
	created, err := svc.Create(in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 1 || created.IsDeleted || created.DeletedAt != nil {
		t.Errorf("unexpected meta on create: %+v", created.RecordMeta)
	}

	got, err := svc.Get(created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != in.Name || got.Zip != in.Zip || got.SalesRepEmail != in.SalesRepEmail {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if !got.UpdatedAt.Equal(got.CreatedAt) {
		t.Error("expected updated_at == created_at after create")
	}
}

func TestCustomerValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCustomerService(db)

	in := customerInput("Acme")
	in.Zip = "123"
	in.SalesRepEmail = "not-an-email"
	in.Status = "archived"

	_, err := svc.Create(in)
	if !errs.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	var valErr *errs.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	for _, field := range []string{"zip", "sales_rep_email", "status"} {
		if _, ok := valErr.Fields[field]; !ok {
			t.Errorf("expected violation for %s, got %v", field, valErr.Fields)
		}
	}

	// Nothing was stored
	if got := svc.List(); len(got) != 0 {
		t.Errorf("store should be unchanged after validation failure, got %d records", len(got))
	}
}

func TestCustomerNameUniqueness(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCustomerService(db)

	if _, err := svc.Create(customerInput("Acme Logistics")); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := svc.Create(customerInput("acme logistics"))
	if !errs.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if got := svc.List(); len(got) != 1 {
		t.Errorf("conflict must leave the store unchanged, got %d records", len(got))
	}

	// A deleted customer frees its name
	if _, err := svc.Delete(1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Create(customerInput("Acme Logistics")); err != nil {
		t.Errorf("name of deleted customer should be reusable: %v", err)
	}
}

func TestCustomerUpdatePatchesFields(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCustomerService(db)

	created, err := svc.Create(customerInput("Acme Logistics"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	city := "Dallas"
	updated, err := svc.Update(created.ID, CustomerPatch{City: &city})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.City != "Dallas" || updated.Name != "Acme Logistics" {
		t.Errorf("patch should only change provided fields: %+v", updated)
	}

	badStatus := "archived"
	if _, err := svc.Update(created.ID, CustomerPatch{Status: &badStatus}); !errs.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestCustomerDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	customerID := seedHierarchy(t, db, 2, 2, 2)

	svc := NewCustomerService(db)
	summary, err := svc.Delete(customerID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if summary.Projects != 2 || summary.Quotes != 4 || summary.VendorQuotes != 8 {
		t.Errorf("unexpected cascade counts: %+v", summary)
	}
	if summary.Total() != 14 {
		t.Errorf("expected 14 cascaded records, got %d", summary.Total())
	}

	if _, err := svc.Get(customerID); !errs.IsNotFound(err) {
		t.Errorf("deleted customer should be gone, got %v", err)
	}
	if got := db.ProjectStore().FindAll(false); len(got) != 0 {
		t.Errorf("expected no active projects, got %d", len(got))
	}
	if got := db.VendorQuoteStore().FindAll(true); len(got) != 8 {
		t.Errorf("soft delete must retain records, got %d", len(got))
	}

	// Vendors are not part of the hierarchy
	if got := db.VendorStore().FindAll(false); len(got) != 8 {
		t.Errorf("cascade must not touch vendors, got %d active", len(got))
	}

	// Second delete reports not found
	if _, err := svc.Delete(customerID); !errs.IsNotFound(err) {
		t.Errorf("second delete should report not found, got %v", err)
	}
}

func TestCustomerStats(t *testing.T) {
	db := setupTestDB(t)
	customerID := seedHierarchy(t, db, 2, 3, 1)

	svc := NewCustomerService(db)
	stats, err := svc.Stats(customerID)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.ProjectCount != 2 || stats.QuoteCount != 6 || stats.VendorQuoteCount != 6 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.TotalHierarchyItems != 15 {
		t.Errorf("expected 15 total items, got %d", stats.TotalHierarchyItems)
	}

	if _, err := svc.Stats(99); !errs.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}
