package database

import (
	"sync"
	"time"

	"github.com/Micah-Glenz/hierarchical-data-explorer/models"
	"github.com/Micah-Glenz/hierarchical-data-explorer/storage"
)

// Collection names, in hierarchy order. Operation locks are always acquired
// in this order so cross-collection operations cannot deadlock.
const (
	CustomersCollection    = "customers"
	ProjectsCollection     = "projects"
	QuotesCollection       = "quotes"
	VendorsCollection      = "vendors"
	VendorQuotesCollection = "vendor_quotes"
)

var collectionOrder = []string{
	CustomersCollection,
	ProjectsCollection,
	QuotesCollection,
	VendorsCollection,
	VendorQuotesCollection,
}

type Database struct {
	customerStore    *Store[models.Customer, *models.Customer]
	projectStore     *Store[models.Project, *models.Project]
	quoteStore       *Store[models.Quote, *models.Quote]
	vendorStore      *Store[models.Vendor, *models.Vendor]
	vendorQuoteStore *Store[models.VendorQuote, *models.VendorQuote]

	opLocks map[string]*sync.Mutex
}

// New initializes a Database with one store per collection, all persisting
// through the shared backend. The clock is injectable for tests; pass nil
// for time.Now.
func New(backend storage.Backend, now func() time.Time) (Database, error) {
	var d Database
	var err error
	if d.customerStore, err = NewStore[models.Customer](CustomersCollection, backend, now); err != nil {
		return Database{}, err
	}
	if d.projectStore, err = NewStore[models.Project](ProjectsCollection, backend, now); err != nil {
		return Database{}, err
	}
	if d.quoteStore, err = NewStore[models.Quote](QuotesCollection, backend, now); err != nil {
		return Database{}, err
	}
	if d.vendorStore, err = NewStore[models.Vendor](VendorsCollection, backend, now); err != nil {
		return Database{}, err
	}
	if d.vendorQuoteStore, err = NewStore[models.VendorQuote](VendorQuotesCollection, backend, now); err != nil {
		return Database{}, err
	}
	d.opLocks = make(map[string]*sync.Mutex, len(collectionOrder))
	for _, name := range collectionOrder {
		d.opLocks[name] = &sync.Mutex{}
	}
	return d, nil
}

// Accessor methods for each store

func (d Database) CustomerStore() *Store[models.Customer, *models.Customer] {
	return d.customerStore
}

func (d Database) ProjectStore() *Store[models.Project, *models.Project] {
	return d.projectStore
}

func (d Database) QuoteStore() *Store[models.Quote, *models.Quote] {
	return d.quoteStore
}

func (d Database) VendorStore() *Store[models.Vendor, *models.Vendor] {
	return d.vendorStore
}

func (d Database) VendorQuoteStore() *Store[models.VendorQuote, *models.VendorQuote] {
	return d.vendorQuoteStore
}

// Lock takes the operation locks for the named collections, in hierarchy
// order regardless of the order given, and returns the release function.
// Services hold these across a whole validate-then-write operation so
// uniqueness and reference checks stay accurate until the write lands.
func (d Database) Lock(collections ...string) func() {
	requested := make(map[string]bool, len(collections))
	for _, c := range collections {
		requested[c] = true
	}
	var held []*sync.Mutex
	for _, name := range collectionOrder {
		if requested[name] {
			mu := d.opLocks[name]
			mu.Lock()
			held = append(held, mu)
		}
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}
