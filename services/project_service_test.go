package services

import (
	"testing"

	"github.com/Micah-Glenz/hierarchical-data-explorer/errs"
)

func TestProjectRequiresActiveCustomer(t *testing.T) {
	db := setupTestDB(t)
	customers := NewCustomerService(db)
	projects := NewProjectService(db)

	if _, err := projects.Create(projectInput(42, "Retrofit")); !errs.IsReference(err) {
		t.Fatalf("expected reference error, got %v", err)
	}

	customer, err := customers.Create(customerInput("Acme Logistics"))
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
	if _, err := projects.Create(projectInput(customer.ID, "Retrofit")); err != nil {
		t.Fatalf("create project: %v", err)
	}

	// A soft-deleted customer no longer accepts projects
	if _, err := customers.Delete(customer.ID); err != nil {
		t.Fatalf("delete customer: %v", err)
	}
	if _, err := projects.Create(projectInput(customer.ID, "Second")); !errs.IsReference(err) {
		t.Errorf("expected reference error for deleted customer, got %v", err)
	}
}

func TestProjectNameUniquePerCustomer(t *testing.T) {
	db := setupTestDB(t)
	customers := NewCustomerService(db)
	projects := NewProjectService(db)

	first, err := customers.Create(customerInput("Acme Logistics"))
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
	second, err := customers.Create(customerInput("Globex"))
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}

	if _, err := projects.Create(projectInput(first.ID, "Warehouse Retrofit")); err != nil {
		t.Fatalf("create project: %v", err)
	}
	if _, err := projects.Create(projectInput(first.ID, "Warehouse Retrofit")); !errs.IsConflict(err) {
		t.Errorf("expected conflict within the same customer, got %v", err)
	}
	// The same name under another customer is fine
	if _, err := projects.Create(projectInput(second.ID, "Warehouse Retrofit")); err != nil {
		t.Errorf("name should be scoped to the customer: %v", err)
	}
}

func TestProjectDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	seedHierarchy(t, db, 1, 2, 2)

	projects := NewProjectService(db)
	list, err := projects.ListByCustomer(1)
	if err != nil || len(list) != 1 {
		t.Fatalf("list: len=%d err=%v", len(list), err)
	}

	summary, err := projects.Delete(list[0].ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if summary.Projects != 0 || summary.Quotes != 2 || summary.VendorQuotes != 4 {
		t.Errorf("unexpected cascade counts: %+v", summary)
	}

	// The customer itself is untouched
	if _, err := NewCustomerService(db).Get(1); err != nil {
		t.Errorf("customer should survive project delete: %v", err)
	}
}

func TestProjectListIncludesQuoteCounts(t *testing.T) {
	db := setupTestDB(t)
	customerID := seedHierarchy(t, db, 2, 3, 0)

	list, err := NewProjectService(db).ListByCustomer(customerID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(list))
	}
	for _, p := range list {
		if p.QuoteCount != 3 {
			t.Errorf("expected quote count 3 for project %d, got %d", p.ID, p.QuoteCount)
		}
	}
}
