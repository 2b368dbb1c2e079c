package services

import (
	"strings"

	"github.com/Micah-Glenz/hierarchical-data-explorer/database"
	"github.com/Micah-Glenz/hierarchical-data-explorer/errs"
	"github.com/Micah-Glenz/hierarchical-data-explorer/models"
	"github.com/Micah-Glenz/hierarchical-data-explorer/validation"
)

// CustomerInput carries the caller-supplied fields for creating a customer.
type CustomerInput struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Zip           string `json:"zip"`
	SalesRepName  string `json:"sales_rep_name"`
	SalesRepEmail string `json:"sales_rep_email"`
	Status        string `json:"status"`
	CreatedDate   string `json:"created_date"`
}

// CustomerPatch carries the fields of a partial update; nil means unchanged.
type CustomerPatch struct {
	Name          *string `json:"name"`
	Address       *string `json:"address"`
	City          *string `json:"city"`
	State         *string `json:"state"`
	Zip           *string `json:"zip"`
	SalesRepName  *string `json:"sales_rep_name"`
	SalesRepEmail *string `json:"sales_rep_email"`
	Status        *string `json:"status"`
}

// CustomerView is a customer enriched with its active project count.
type CustomerView struct {
	models.Customer
	ProjectCount int `json:"project_count"`
}

// CustomerStats summarizes the whole hierarchy under one customer.
type CustomerStats struct {
	Customer            models.Customer `json:"customer"`
	ProjectCount        int             `json:"project_count"`
	QuoteCount          int             `json:"quote_count"`
	VendorQuoteCount    int             `json:"vendor_quote_count"`
	TotalHierarchyItems int             `json:"total_hierarchy_items"`
}

type CustomerService struct {
	db database.Database
}

func NewCustomerService(db database.Database) *CustomerService {
	return &CustomerService{db: db}
}

func validateCustomerInput(in CustomerInput) error {
	v := validation.Violations{}
	validation.Name("name", in.Name, v)
	validation.Required("address", in.Address, v)
	validation.MaxLen("address", in.Address, validation.MaxAddressLength, v)
	validation.Required("city", in.City, v)
	validation.MaxLen("city", in.City, validation.MaxCityLength, v)
	validation.Required("state", in.State, v)
	validation.MaxLen("state", in.State, validation.MaxStateLength, v)
	validation.ZipCode("zip", in.Zip, v)
	validation.Name("sales_rep_name", in.SalesRepName, v)
	validation.Email("sales_rep_email", in.SalesRepEmail, v)
	validation.Choice("status", in.Status, models.CustomerStatuses, v)
	validation.Date("created_date", in.CreatedDate, v)
	if !v.Empty() {
		return errs.NewValidationError(v)
	}
	return nil
}

// nameTaken reports whether another active customer already uses name.
// Comparison is case-insensitive on the trimmed name.
func (s *CustomerService) nameTaken(name string, excludeID int) bool {
	want := strings.ToLower(strings.TrimSpace(name))
	matches := s.db.CustomerStore().FilterBy(func(c models.Customer) bool {
		return c.ID != excludeID && strings.ToLower(strings.TrimSpace(c.Name)) == want
	}, false)
	return len(matches) > 0
}

func (s *CustomerService) projectCount(customerID int) int {
	return len(s.db.ProjectStore().FilterBy(func(p models.Project) bool {
		return p.CustomerID == customerID
	}, false))
}

func (s *CustomerService) Create(in CustomerInput) (CustomerView, error) {
	if err := validateCustomerInput(in); err != nil {
		return CustomerView{}, err
	}
	unlock := s.db.Lock(database.CustomersCollection)
	defer unlock()
	if s.nameTaken(in.Name, 0) {
		return CustomerView{}, errs.NewConflict("customer", "name", in.Name)
	}
	stored, err := s.db.CustomerStore().Append(models.Customer{
		Name:          strings.TrimSpace(in.Name),
		Address:       in.Address,
		City:          in.City,
		State:         in.State,
		Zip:           in.Zip,
		SalesRepName:  strings.TrimSpace(in.SalesRepName),
		SalesRepEmail: strings.TrimSpace(in.SalesRepEmail),
		Status:        in.Status,
		CreatedDate:   in.CreatedDate,
	})
	if err != nil {
		return CustomerView{}, err
	}
	return CustomerView{Customer: stored}, nil
}

func (s *CustomerService) Get(id int) (CustomerView, error) {
	c, ok := s.db.CustomerStore().FindByID(id, false)
	if !ok {
		return CustomerView{}, errs.NewNotFound("customer", id)
	}
	return CustomerView{Customer: c, ProjectCount: s.projectCount(id)}, nil
}

func (s *CustomerService) List() []CustomerView {
	customers := s.db.CustomerStore().FindAll(false)
	views := make([]CustomerView, 0, len(customers))
	for _, c := range customers {
		views = append(views, CustomerView{Customer: c, ProjectCount: s.projectCount(c.ID)})
	}
	return views
}

func (s *CustomerService) Update(id int, patch CustomerPatch) (CustomerView, error) {
	v := validation.Violations{}
	if patch.Name != nil {
		validation.Name("name", *patch.Name, v)
	}
	if patch.Address != nil {
		validation.Required("address", *patch.Address, v)
		validation.MaxLen("address", *patch.Address, validation.MaxAddressLength, v)
	}
	if patch.City != nil {
		validation.Required("city", *patch.City, v)
		validation.MaxLen("city", *patch.City, validation.MaxCityLength, v)
	}
	if patch.State != nil {
		validation.Required("state", *patch.State, v)
		validation.MaxLen("state", *patch.State, validation.MaxStateLength, v)
	}
	if patch.Zip != nil {
		validation.ZipCode("zip", *patch.Zip, v)
	}
	if patch.SalesRepName != nil {
		validation.Name("sales_rep_name", *patch.SalesRepName, v)
	}
	if patch.SalesRepEmail != nil {
		validation.Email("sales_rep_email", *patch.SalesRepEmail, v)
	}
	if patch.Status != nil {
		validation.Choice("status", *patch.Status, models.CustomerStatuses, v)
	}
	if !v.Empty() {
		return CustomerView{}, errs.NewValidationError(v)
	}

	unlock := s.db.Lock(database.CustomersCollection)
	defer unlock()
	if patch.Name != nil && s.nameTaken(*patch.Name, id) {
		return CustomerView{}, errs.NewConflict("customer", "name", *patch.Name)
	}
	updated, found, err := s.db.CustomerStore().UpdateByID(id, func(c *models.Customer) {
		if patch.Name != nil {
			c.Name = strings.TrimSpace(*patch.Name)
		}
		if patch.Address != nil {
			c.Address = *patch.Address
		}
		if patch.City != nil {
			c.City = *patch.City
		}
		if patch.State != nil {
			c.State = *patch.State
		}
		if patch.Zip != nil {
			c.Zip = *patch.Zip
		}
		if patch.SalesRepName != nil {
			c.SalesRepName = strings.TrimSpace(*patch.SalesRepName)
		}
		if patch.SalesRepEmail != nil {
			c.SalesRepEmail = strings.TrimSpace(*patch.SalesRepEmail)
		}
		if patch.Status != nil {
			c.Status = *patch.Status
		}
	})
	if err != nil {
		return CustomerView{}, err
	}
	if !found {
		return CustomerView{}, errs.NewNotFound("customer", id)
	}
	return CustomerView{Customer: updated, ProjectCount: s.projectCount(id)}, nil
}

// Delete soft-deletes the customer and everything beneath it, returning the
// per-level counts.
func (s *CustomerService) Delete(id int) (DeletionSummary, error) {
	unlock := s.db.Lock(
		database.CustomersCollection,
		database.ProjectsCollection,
		database.QuotesCollection,
		database.VendorQuotesCollection,
	)
	defer unlock()
	return cascadeDelete(s.db, "customer", database.CustomersCollection, id, func() (bool, error) {
		return s.db.CustomerStore().SoftDeleteByID(id)
	})
}

// Stats counts every active record in the hierarchy under the customer.
func (s *CustomerService) Stats(id int) (CustomerStats, error) {
	c, ok := s.db.CustomerStore().FindByID(id, false)
	if !ok {
		return CustomerStats{}, errs.NewNotFound("customer", id)
	}
	stats := CustomerStats{Customer: c}
	projects := s.db.ProjectStore().FilterBy(func(p models.Project) bool {
		return p.CustomerID == id
	}, false)
	stats.ProjectCount = len(projects)
	for _, p := range projects {
		quotes := s.db.QuoteStore().FilterBy(func(q models.Quote) bool {
			return q.ProjectID == p.ID
		}, false)
		stats.QuoteCount += len(quotes)
		for _, q := range quotes {
			stats.VendorQuoteCount += len(s.db.VendorQuoteStore().FilterBy(func(vq models.VendorQuote) bool {
				return vq.QuoteID == q.ID
			}, false))
		}
	}
	stats.TotalHierarchyItems = 1 + stats.ProjectCount + stats.QuoteCount + stats.VendorQuoteCount
	return stats, nil
}
