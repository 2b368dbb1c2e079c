package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/Micah-Glenz/hierarchical-data-explorer/database"
	"github.com/Micah-Glenz/hierarchical-data-explorer/storage"
)

var testClock = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) database.Database {
	t.Helper()
	db, err := database.New(storage.NewMemoryBackend(), func() time.Time { return testClock })
	if err != nil {
		t.Fatalf("new database: %v", err)
	}
	return db
}

func customerInput(name string) CustomerInput {
	return CustomerInput{
		Name:          name,
		Address:       "100 Main St",
		City:          "Austin",
		State:         "TX",
		Zip:           "78701",
		SalesRepName:  "Pat Lee",
		SalesRepEmail: "pat.lee@example.com",
		Status:        "active",
		CreatedDate:   "2024-01-15",
	}
}

func projectInput(customerID int, name string) ProjectInput {
	return ProjectInput{
		CustomerID:  customerID,
		Name:        name,
		ProjectType: "installation",
		Status:      "planning",
		Budget:      25000,
		StartDate:   "2024-02-01",
	}
}

func quoteInput(projectID int, name string) QuoteInput {
	return QuoteInput{
		ProjectID: projectID,
		Name:      name,
		Status:    "draft",
		Amount:    5000,
	}
}

func vendorInput(name string) VendorInput {
	return VendorInput{
		Name:        name,
		ContactName: "Chris Park",
		Email:       "chris.park@example.com",
		Phone:       "555-123-4567",
		Specialty:   "flatbed",
		Rating:      4.5,
	}
}

func vendorQuoteInput(quoteID, vendorID int) VendorQuoteInput {
	return VendorQuoteInput{
		QuoteID:   quoteID,
		VendorID:  vendorID,
		ItemsText: "4 pallets, 2000 lbs",
		Priority:  "medium",
		Status:    "pending",
	}
}

// seedHierarchy builds one customer with projects*quotes*vendorQuotes
// children per level and returns the customer id.
func seedHierarchy(t *testing.T, db database.Database, projects, quotes, vendorQuotes int) int {
	t.Helper()
	customers := NewCustomerService(db)
	projectSvc := NewProjectService(db)
	quoteSvc := NewQuoteService(db)
	vendors := NewVendorService(db)
	vqSvc := NewVendorQuoteService(db, func() time.Time { return testClock })

	customer, err := customers.Create(customerInput("Acme Logistics"))
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
	for p := 0; p < projects; p++ {
		project, err := projectSvc.Create(projectInput(customer.ID, fmt.Sprintf("Project %d", p)))
		if err != nil {
			t.Fatalf("create project: %v", err)
		}
		for q := 0; q < quotes; q++ {
			quote, err := quoteSvc.Create(quoteInput(project.ID, fmt.Sprintf("Quote %d-%d", p, q)))
			if err != nil {
				t.Fatalf("create quote: %v", err)
			}
			for v := 0; v < vendorQuotes; v++ {
				vendor, err := vendors.Create(vendorInput(fmt.Sprintf("Vendor %d-%d-%d", p, q, v)))
				if err != nil {
					t.Fatalf("create vendor: %v", err)
				}
				if _, err := vqSvc.Create(vendorQuoteInput(quote.ID, vendor.ID)); err != nil {
					t.Fatalf("create vendor quote: %v", err)
				}
			}
		}
	}
	return customer.ID
}
