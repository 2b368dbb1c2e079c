package services

import (
	"strings"

	"github.com/Micah-Glenz/hierarchical-data-explorer/database"
	"github.com/Micah-Glenz/hierarchical-data-explorer/errs"
	"github.com/Micah-Glenz/hierarchical-data-explorer/models"
	"github.com/Micah-Glenz/hierarchical-data-explorer/validation"
)

type QuoteInput struct {
	ProjectID   int     `json:"project_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Amount      float64 `json:"amount"`
	ValidUntil  string  `json:"valid_until"`
}

type QuotePatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Status      *string  `json:"status"`
	Amount      *float64 `json:"amount"`
	ValidUntil  *string  `json:"valid_until"`
}

// QuoteView is a quote enriched with its active vendor quote count.
type QuoteView struct {
	models.Quote
	VendorQuoteCount int `json:"vendor_quote_count"`
}

type QuoteService struct {
	db database.Database
}

func NewQuoteService(db database.Database) *QuoteService {
	return &QuoteService{db: db}
}

func validateQuoteInput(in QuoteInput) error {
	v := validation.Violations{}
	validation.Name("name", in.Name, v)
	validation.MaxLen("description", in.Description, validation.MaxDescriptionLength, v)
	validation.Choice("status", in.Status, models.QuoteStatuses, v)
	validation.Currency("amount", in.Amount, v)
	validation.OptionalDate("valid_until", in.ValidUntil, v)
	if !v.Empty() {
		return errs.NewValidationError(v)
	}
	return nil
}

func (s *QuoteService) nameTaken(projectID int, name string, excludeID int) bool {
	want := strings.ToLower(strings.TrimSpace(name))
	matches := s.db.QuoteStore().FilterBy(func(q models.Quote) bool {
		return q.ProjectID == projectID && q.ID != excludeID &&
			strings.ToLower(strings.TrimSpace(q.Name)) == want
	}, false)
	return len(matches) > 0
}

func (s *QuoteService) vendorQuoteCount(quoteID int) int {
	return len(s.db.VendorQuoteStore().FilterBy(func(vq models.VendorQuote) bool {
		return vq.QuoteID == quoteID
	}, false))
}

func (s *QuoteService) Create(in QuoteInput) (QuoteView, error) {
	if err := validateQuoteInput(in); err != nil {
		return QuoteView{}, err
	}
	unlock := s.db.Lock(database.ProjectsCollection, database.QuotesCollection)
	defer unlock()
	if _, ok := s.db.ProjectStore().FindByID(in.ProjectID, false); !ok {
		return QuoteView{}, errs.NewReference("project_id", "project", in.ProjectID)
	}
	if s.nameTaken(in.ProjectID, in.Name, 0) {
		return QuoteView{}, errs.NewConflict("quote", "name", in.Name)
	}
	stored, err := s.db.QuoteStore().Append(models.Quote{
		ProjectID:   in.ProjectID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Status:      in.Status,
		Amount:      in.Amount,
		ValidUntil:  in.ValidUntil,
	})
	if err != nil {
		return QuoteView{}, err
	}
	return QuoteView{Quote: stored}, nil
}

func (s *QuoteService) Get(id int) (QuoteView, error) {
	q, ok := s.db.QuoteStore().FindByID(id, false)
	if !ok {
		return QuoteView{}, errs.NewNotFound("quote", id)
	}
	return QuoteView{Quote: q, VendorQuoteCount: s.vendorQuoteCount(id)}, nil
}

// ListByProject returns the project's active quotes.
func (s *QuoteService) ListByProject(projectID int) ([]QuoteView, error) {
	if _, ok := s.db.ProjectStore().FindByID(projectID, false); !ok {
		return nil, errs.NewNotFound("project", projectID)
	}
	quotes := s.db.QuoteStore().FilterBy(func(q models.Quote) bool {
		return q.ProjectID == projectID
	}, false)
	views := make([]QuoteView, 0, len(quotes))
	for _, q := range quotes {
		views = append(views, QuoteView{Quote: q, VendorQuoteCount: s.vendorQuoteCount(q.ID)})
	}
	return views, nil
}

func (s *QuoteService) Update(id int, patch QuotePatch) (QuoteView, error) {
	v := validation.Violations{}
	if patch.Name != nil {
		validation.Name("name", *patch.Name, v)
	}
	if patch.Description != nil {
		validation.MaxLen("description", *patch.Description, validation.MaxDescriptionLength, v)
	}
	if patch.Status != nil {
		validation.Choice("status", *patch.Status, models.QuoteStatuses, v)
	}
	if patch.Amount != nil {
		validation.Currency("amount", *patch.Amount, v)
	}
	if patch.ValidUntil != nil {
		validation.OptionalDate("valid_until", *patch.ValidUntil, v)
	}
	if !v.Empty() {
		return QuoteView{}, errs.NewValidationError(v)
	}

	unlock := s.db.Lock(database.QuotesCollection)
	defer unlock()
	existing, ok := s.db.QuoteStore().FindByID(id, false)
	if !ok {
		return QuoteView{}, errs.NewNotFound("quote", id)
	}
	if patch.Name != nil && s.nameTaken(existing.ProjectID, *patch.Name, id) {
		return QuoteView{}, errs.NewConflict("quote", "name", *patch.Name)
	}
	updated, found, err := s.db.QuoteStore().UpdateByID(id, func(q *models.Quote) {
		if patch.Name != nil {
			q.Name = strings.TrimSpace(*patch.Name)
		}
		if patch.Description != nil {
			q.Description = *patch.Description
		}
		if patch.Status != nil {
			q.Status = *patch.Status
		}
		if patch.Amount != nil {
			q.Amount = *patch.Amount
		}
		if patch.ValidUntil != nil {
			q.ValidUntil = *patch.ValidUntil
		}
	})
	if err != nil {
		return QuoteView{}, err
	}
	if !found {
		return QuoteView{}, errs.NewNotFound("quote", id)
	}
	return QuoteView{Quote: updated, VendorQuoteCount: s.vendorQuoteCount(id)}, nil
}

// Delete soft-deletes the quote and cascades to its vendor quotes.
func (s *QuoteService) Delete(id int) (DeletionSummary, error) {
	unlock := s.db.Lock(database.QuotesCollection, database.VendorQuotesCollection)
	defer unlock()
	return cascadeDelete(s.db, "quote", database.QuotesCollection, id, func() (bool, error) {
		return s.db.QuoteStore().SoftDeleteByID(id)
	})
}
