package services

import (
	"strings"

	"github.com/Micah-Glenz/hierarchical-data-explorer/database"
	"github.com/Micah-Glenz/hierarchical-data-explorer/errs"
	"github.com/Micah-Glenz/hierarchical-data-explorer/models"
	"github.com/Micah-Glenz/hierarchical-data-explorer/validation"
)

type ProjectInput struct {
	CustomerID         int     `json:"customer_id"`
	Name               string  `json:"name"`
	ProjectType        string  `json:"project_type"`
	Status             string  `json:"status"`
	Budget             float64 `json:"budget"`
	StartDate          string  `json:"start_date"`
	TargetDeliveryDate string  `json:"target_delivery_date"`
}

type ProjectPatch struct {
	Name               *string  `json:"name"`
	ProjectType        *string  `json:"project_type"`
	Status             *string  `json:"status"`
	Budget             *float64 `json:"budget"`
	StartDate          *string  `json:"start_date"`
	TargetDeliveryDate *string  `json:"target_delivery_date"`
}

// ProjectView is a project enriched with its active quote count.
type ProjectView struct {
	models.Project
	QuoteCount int `json:"quote_count"`
}

type ProjectService struct {
	db database.Database
}

func NewProjectService(db database.Database) *ProjectService {
	return &ProjectService{db: db}
}

func validateProjectInput(in ProjectInput) error {
	v := validation.Violations{}
	validation.Name("name", in.Name, v)
	validation.Choice("project_type", in.ProjectType, models.ProjectTypes, v)
	validation.Choice("status", in.Status, models.ProjectStatuses, v)
	validation.Currency("budget", in.Budget, v)
	validation.Date("start_date", in.StartDate, v)
	validation.OptionalDate("target_delivery_date", in.TargetDeliveryDate, v)
	if !v.Empty() {
		return errs.NewValidationError(v)
	}
	return nil
}

// nameTaken reports whether the customer already has an active project with
// this name. Uniqueness is scoped to the parent, so two customers can both
// have a "Warehouse Retrofit".
func (s *ProjectService) nameTaken(customerID int, name string, excludeID int) bool {
	want := strings.ToLower(strings.TrimSpace(name))
	matches := s.db.ProjectStore().FilterBy(func(p models.Project) bool {
		return p.CustomerID == customerID && p.ID != excludeID &&
			strings.ToLower(strings.TrimSpace(p.Name)) == want
	}, false)
	return len(matches) > 0
}

func (s *ProjectService) quoteCount(projectID int) int {
	return len(s.db.QuoteStore().FilterBy(func(q models.Quote) bool {
		return q.ProjectID == projectID
	}, false))
}

func (s *ProjectService) Create(in ProjectInput) (ProjectView, error) {
	if err := validateProjectInput(in); err != nil {
		return ProjectView{}, err
	}
	unlock := s.db.Lock(database.CustomersCollection, database.ProjectsCollection)
	defer unlock()
	if _, ok := s.db.CustomerStore().FindByID(in.CustomerID, false); !ok {
		return ProjectView{}, errs.NewReference("customer_id", "customer", in.CustomerID)
	}
	if s.nameTaken(in.CustomerID, in.Name, 0) {
		return ProjectView{}, errs.NewConflict("project", "name", in.Name)
	}
	stored, err := s.db.ProjectStore().Append(models.Project{
		CustomerID:         in.CustomerID,
		Name:               strings.TrimSpace(in.Name),
		ProjectType:        in.ProjectType,
		Status:             in.Status,
		Budget:             in.Budget,
		StartDate:          in.StartDate,
		TargetDeliveryDate: in.TargetDeliveryDate,
	})
	if err != nil {
		return ProjectView{}, err
	}
	return ProjectView{Project: stored}, nil
}

func (s *ProjectService) Get(id int) (ProjectView, error) {
	p, ok := s.db.ProjectStore().FindByID(id, false)
	if !ok {
		return ProjectView{}, errs.NewNotFound("project", id)
	}
	return ProjectView{Project: p, QuoteCount: s.quoteCount(id)}, nil
}

// ListByCustomer returns the customer's active projects. The customer has to
// exist and be active itself.
func (s *ProjectService) ListByCustomer(customerID int) ([]ProjectView, error) {
	if _, ok := s.db.CustomerStore().FindByID(customerID, false); !ok {
		return nil, errs.NewNotFound("customer", customerID)
	}
	projects := s.db.ProjectStore().FilterBy(func(p models.Project) bool {
		return p.CustomerID == customerID
	}, false)
	views := make([]ProjectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, ProjectView{Project: p, QuoteCount: s.quoteCount(p.ID)})
	}
	return views, nil
}

func (s *ProjectService) Update(id int, patch ProjectPatch) (ProjectView, error) {
	v := validation.Violations{}
	if patch.Name != nil {
		validation.Name("name", *patch.Name, v)
	}
	if patch.ProjectType != nil {
		validation.Choice("project_type", *patch.ProjectType, models.ProjectTypes, v)
	}
	if patch.Status != nil {
		validation.Choice("status", *patch.Status, models.ProjectStatuses, v)
	}
	if patch.Budget != nil {
		validation.Currency("budget", *patch.Budget, v)
	}
	if patch.StartDate != nil {
		validation.Date("start_date", *patch.StartDate, v)
	}
	if patch.TargetDeliveryDate != nil {
		validation.OptionalDate("target_delivery_date", *patch.TargetDeliveryDate, v)
	}
	if !v.Empty() {
		return ProjectView{}, errs.NewValidationError(v)
	}

	unlock := s.db.Lock(database.ProjectsCollection)
	defer unlock()
	existing, ok := s.db.ProjectStore().FindByID(id, false)
	if !ok {
		return ProjectView{}, errs.NewNotFound("project", id)
	}
	if patch.Name != nil && s.nameTaken(existing.CustomerID, *patch.Name, id) {
		return ProjectView{}, errs.NewConflict("project", "name", *patch.Name)
	}
	updated, found, err := s.db.ProjectStore().UpdateByID(id, func(p *models.Project) {
		if patch.Name != nil {
			p.Name = strings.TrimSpace(*patch.Name)
		}
		if patch.ProjectType != nil {
			p.ProjectType = *patch.ProjectType
		}
		if patch.Status != nil {
			p.Status = *patch.Status
		}
		if patch.Budget != nil {
			p.Budget = *patch.Budget
		}
		if patch.StartDate != nil {
			p.StartDate = *patch.StartDate
		}
		if patch.TargetDeliveryDate != nil {
			p.TargetDeliveryDate = *patch.TargetDeliveryDate
		}
	})
	if err != nil {
		return ProjectView{}, err
	}
	if !found {
		return ProjectView{}, errs.NewNotFound("project", id)
	}
	return ProjectView{Project: updated, QuoteCount: s.quoteCount(id)}, nil
}

// Delete soft-deletes the project and cascades to its quotes and their
// vendor quotes.
func (s *ProjectService) Delete(id int) (DeletionSummary, error) {
	unlock := s.db.Lock(
		database.ProjectsCollection,
		database.QuotesCollection,
		database.VendorQuotesCollection,
	)
	defer unlock()
	return cascadeDelete(s.db, "project", database.ProjectsCollection, id, func() (bool, error) {
		return s.db.ProjectStore().SoftDeleteByID(id)
	})
}
