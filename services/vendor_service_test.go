package services

import (
	"errors"
	"testing"
	"time"

	"github.com/Micah-Glenz/hierarchical-data-explorer/errs"
)

func TestVendorPhoneOptional(t *testing.T) {
	db := setupTestDB(t)
	svc := NewVendorService(db)

	in := vendorInput("No Phone Hauling")
	in.Phone = ""
	if _, err := svc.Create(in); err != nil {
		t.Fatalf("create without phone: %v", err)
	}

	in = vendorInput("Bad Phone Hauling")
	in.Phone = "12-34"
	_, err := svc.Create(in)
	if !errs.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	var verr *errs.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *errs.ValidationError, got %T", err)
	}
	if _, ok := verr.Fields["phone"]; !ok {
		t.Errorf("expected phone violation, got %v", verr.Fields)
	}
}

func TestVendorNameConflict(t *testing.T) {
	db := setupTestDB(t)
	svc := NewVendorService(db)

	if _, err := svc.Create(vendorInput("Coastal Carriers")); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := svc.Create(vendorInput("  coastal carriers  "))
	if !errs.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestVendorDeleteDoesNotCascade(t *testing.T) {
	db := setupTestDB(t)
	seedHierarchy(t, db, 1, 1, 2)
	vendorSvc := NewVendorService(db)
	vqSvc := NewVendorQuoteService(db, func() time.Time { return testClock })

	vendors := vendorSvc.List()
	if len(vendors) != 2 {
		t.Fatalf("expected 2 seeded vendors, got %d", len(vendors))
	}

	if err := vendorSvc.Delete(vendors[0].ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := vendorSvc.Delete(vendors[0].ID); !errs.IsNotFound(err) {
		t.Errorf("second delete should be not found, got %v", err)
	}

	// Vendor quotes survive; the deleted vendor's name falls back.
	views := vqSvc.List()
	if len(views) != 2 {
		t.Fatalf("expected 2 active vendor quotes, got %d", len(views))
	}
	sawUnknown := false
	for _, view := range views {
		if view.VendorName == UnknownVendorName {
			sawUnknown = true
		}
	}
	if !sawUnknown {
		t.Error("expected one vendor quote enriched with the unknown vendor sentinel")
	}
}

func TestVendorUpdateRating(t *testing.T) {
	db := setupTestDB(t)
	svc := NewVendorService(db)

	created, err := svc.Create(vendorInput("Rated Freight"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	bad := 5.5
	if _, err := svc.Update(created.ID, VendorPatch{Rating: &bad}); !errs.IsValidation(err) {
		t.Fatalf("expected validation error for rating 5.5, got %v", err)
	}

	good := 3.0
	updated, err := svc.Update(created.ID, VendorPatch{Rating: &good})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Rating != 3.0 {
		t.Errorf("expected rating 3.0, got %v", updated.Rating)
	}
	if updated.Name != "Rated Freight" {
		t.Errorf("name should be unchanged, got %q", updated.Name)
	}
}
