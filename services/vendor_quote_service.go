package services

import (
	"time"

	"github.com/Micah-Glenz/hierarchical-data-explorer/database"
	"github.com/Micah-Glenz/hierarchical-data-explorer/errs"
	"github.com/Micah-Glenz/hierarchical-data-explorer/models"
	"github.com/Micah-Glenz/hierarchical-data-explorer/validation"
)

// Enrichment fallbacks for lookups against deleted or missing parents.
const (
	UnknownVendorName = "Unknown Vendor"
	UnknownQuoteName  = "Unknown Quote"
)

type VendorQuoteInput struct {
	QuoteID  int `json:"quote_id"`
	VendorID int `json:"vendor_id"`
	// TrackingID is optional; when empty the next VQYY-N id is assigned.
	TrackingID           string   `json:"tracking_id"`
	ItemsText            string   `json:"items_text"`
	DeliveryRequirements string   `json:"delivery_requirements"`
	IsRush               bool     `json:"is_rush"`
	Priority             string   `json:"priority"`
	Status               string   `json:"status"`
	QuotedAmount         *float64 `json:"quoted_amount"`
}

type VendorQuotePatch struct {
	VendorID             *int     `json:"vendor_id"`
	ItemsText            *string  `json:"items_text"`
	DeliveryRequirements *string  `json:"delivery_requirements"`
	IsRush               *bool    `json:"is_rush"`
	Priority             *string  `json:"priority"`
	Status               *string  `json:"status"`
	QuotedAmount         *float64 `json:"quoted_amount"`
}

// VendorQuoteView is a vendor quote enriched with its vendor and quote names.
type VendorQuoteView struct {
	models.VendorQuote
	VendorName string `json:"vendor_name"`
	QuoteName  string `json:"quote_name"`
}

type VendorQuoteService struct {
	db  database.Database
	now func() time.Time
}

// NewVendorQuoteService builds the service. The clock feeds tracking-ID year
// scoping and is injectable for tests; pass nil for time.Now.
func NewVendorQuoteService(db database.Database, now func() time.Time) *VendorQuoteService {
	if now == nil {
		now = time.Now
	}
	return &VendorQuoteService{db: db, now: now}
}

func validateVendorQuoteInput(in VendorQuoteInput) error {
	v := validation.Violations{}
	validation.Required("items_text", in.ItemsText, v)
	validation.MaxLen("items_text", in.ItemsText, validation.MaxItemsTextLength, v)
	validation.MaxLen("delivery_requirements", in.DeliveryRequirements, validation.MaxDeliveryRequirementsLength, v)
	validation.Choice("priority", in.Priority, models.FreightPriorities, v)
	validation.Choice("status", in.Status, models.VendorQuoteStatuses, v)
	if in.TrackingID != "" {
		validation.TrackingID("tracking_id", in.TrackingID, v)
	}
	if in.QuotedAmount != nil {
		validation.Currency("quoted_amount", *in.QuotedAmount, v)
	}
	if !v.Empty() {
		return errs.NewValidationError(v)
	}
	return nil
}

// pairTaken reports whether the quote already has an active vendor quote
// from this vendor.
func (s *VendorQuoteService) pairTaken(quoteID, vendorID, excludeID int) bool {
	matches := s.db.VendorQuoteStore().FilterBy(func(vq models.VendorQuote) bool {
		return vq.ID != excludeID && vq.QuoteID == quoteID && vq.VendorID == vendorID
	}, false)
	return len(matches) > 0
}

// trackingIDTaken checks every record ever stored; tracking ids are never
// reassigned, not even from deleted records.
func (s *VendorQuoteService) trackingIDTaken(trackingID string) bool {
	matches := s.db.VendorQuoteStore().FilterBy(func(vq models.VendorQuote) bool {
		return vq.TrackingID == trackingID
	}, true)
	return len(matches) > 0
}

func (s *VendorQuoteService) enrich(vq models.VendorQuote) VendorQuoteView {
	view := VendorQuoteView{VendorQuote: vq, VendorName: UnknownVendorName, QuoteName: UnknownQuoteName}
	if vendor, ok := s.db.VendorStore().FindByID(vq.VendorID, false); ok {
		view.VendorName = vendor.Name
	}
	if quote, ok := s.db.QuoteStore().FindByID(vq.QuoteID, false); ok {
		view.QuoteName = quote.Name
	}
	return view
}

func (s *VendorQuoteService) enrichAll(vqs []models.VendorQuote) []VendorQuoteView {
	views := make([]VendorQuoteView, 0, len(vqs))
	for _, vq := range vqs {
		views = append(views, s.enrich(vq))
	}
	return views
}

func (s *VendorQuoteService) Create(in VendorQuoteInput) (VendorQuoteView, error) {
	if err := validateVendorQuoteInput(in); err != nil {
		return VendorQuoteView{}, err
	}
	unlock := s.db.Lock(
		database.QuotesCollection,
		database.VendorsCollection,
		database.VendorQuotesCollection,
	)
	defer unlock()
	if _, ok := s.db.QuoteStore().FindByID(in.QuoteID, false); !ok {
		return VendorQuoteView{}, errs.NewReference("quote_id", "quote", in.QuoteID)
	}
	if _, ok := s.db.VendorStore().FindByID(in.VendorID, false); !ok {
		return VendorQuoteView{}, errs.NewReference("vendor_id", "vendor", in.VendorID)
	}
	if s.pairTaken(in.QuoteID, in.VendorID, 0) {
		return VendorQuoteView{}, errs.NewConflict("vendor_quote", "vendor_id", "already quoted for this quote")
	}

	trackingID := in.TrackingID
	if trackingID == "" {
		var err error
		if trackingID, err = NextTrackingID(s.db.VendorQuoteStore(), s.now); err != nil {
			return VendorQuoteView{}, err
		}
	} else if s.trackingIDTaken(trackingID) {
		return VendorQuoteView{}, errs.NewConflict("vendor_quote", "tracking_id", trackingID)
	}

	stored, err := s.db.VendorQuoteStore().Append(models.VendorQuote{
		QuoteID:              in.QuoteID,
		VendorID:             in.VendorID,
		TrackingID:           trackingID,
		ItemsText:            in.ItemsText,
		DeliveryRequirements: in.DeliveryRequirements,
		IsRush:               in.IsRush,
		Priority:             in.Priority,
		Status:               in.Status,
		QuotedAmount:         in.QuotedAmount,
	})
	if err != nil {
		return VendorQuoteView{}, err
	}
	return s.enrich(stored), nil
}

func (s *VendorQuoteService) Get(id int) (VendorQuoteView, error) {
	vq, ok := s.db.VendorQuoteStore().FindByID(id, false)
	if !ok {
		return VendorQuoteView{}, errs.NewNotFound("vendor_quote", id)
	}
	return s.enrich(vq), nil
}

func (s *VendorQuoteService) List() []VendorQuoteView {
	return s.enrichAll(s.db.VendorQuoteStore().FindAll(false))
}

// ListByQuote returns the active vendor quotes requested against one quote.
func (s *VendorQuoteService) ListByQuote(quoteID int) ([]VendorQuoteView, error) {
	if _, ok := s.db.QuoteStore().FindByID(quoteID, false); !ok {
		return nil, errs.NewNotFound("quote", quoteID)
	}
	return s.enrichAll(s.db.VendorQuoteStore().FilterBy(func(vq models.VendorQuote) bool {
		return vq.QuoteID == quoteID
	}, false)), nil
}

// ListByVendor returns the active vendor quotes a vendor has been asked for.
func (s *VendorQuoteService) ListByVendor(vendorID int) ([]VendorQuoteView, error) {
	if _, ok := s.db.VendorStore().FindByID(vendorID, false); !ok {
		return nil, errs.NewNotFound("vendor", vendorID)
	}
	return s.enrichAll(s.db.VendorQuoteStore().FilterBy(func(vq models.VendorQuote) bool {
		return vq.VendorID == vendorID
	}, false)), nil
}

// GetByTrackingID resolves a tracking id to its active vendor quote.
func (s *VendorQuoteService) GetByTrackingID(trackingID string) (VendorQuoteView, error) {
	if !validation.ValidTrackingID(trackingID) {
		v := validation.Violations{}
		validation.TrackingID("tracking_id", trackingID, v)
		return VendorQuoteView{}, errs.NewValidationError(v)
	}
	matches := s.db.VendorQuoteStore().FilterBy(func(vq models.VendorQuote) bool {
		return vq.TrackingID == trackingID
	}, false)
	if len(matches) == 0 {
		return VendorQuoteView{}, errs.NewNotFoundByField("vendor_quote", "tracking_id", trackingID)
	}
	return s.enrich(matches[0]), nil
}

func (s *VendorQuoteService) Update(id int, patch VendorQuotePatch) (VendorQuoteView, error) {
	v := validation.Violations{}
	if patch.ItemsText != nil {
		validation.Required("items_text", *patch.ItemsText, v)
		validation.MaxLen("items_text", *patch.ItemsText, validation.MaxItemsTextLength, v)
	}
	if patch.DeliveryRequirements != nil {
		validation.MaxLen("delivery_requirements", *patch.DeliveryRequirements, validation.MaxDeliveryRequirementsLength, v)
	}
	if patch.Priority != nil {
		validation.Choice("priority", *patch.Priority, models.FreightPriorities, v)
	}
	if patch.Status != nil {
		validation.Choice("status", *patch.Status, models.VendorQuoteStatuses, v)
	}
	if patch.QuotedAmount != nil {
		validation.Currency("quoted_amount", *patch.QuotedAmount, v)
	}
	if !v.Empty() {
		return VendorQuoteView{}, errs.NewValidationError(v)
	}

	unlock := s.db.Lock(database.VendorsCollection, database.VendorQuotesCollection)
	defer unlock()
	existing, ok := s.db.VendorQuoteStore().FindByID(id, false)
	if !ok {
		return VendorQuoteView{}, errs.NewNotFound("vendor_quote", id)
	}
	if patch.VendorID != nil && *patch.VendorID != existing.VendorID {
		if _, ok := s.db.VendorStore().FindByID(*patch.VendorID, false); !ok {
			return VendorQuoteView{}, errs.NewReference("vendor_id", "vendor", *patch.VendorID)
		}
		if s.pairTaken(existing.QuoteID, *patch.VendorID, id) {
			return VendorQuoteView{}, errs.NewConflict("vendor_quote", "vendor_id", "already quoted for this quote")
		}
	}
	updated, found, err := s.db.VendorQuoteStore().UpdateByID(id, func(vq *models.VendorQuote) {
		if patch.VendorID != nil {
			vq.VendorID = *patch.VendorID
		}
		if patch.ItemsText != nil {
			vq.ItemsText = *patch.ItemsText
		}
		if patch.DeliveryRequirements != nil {
			vq.DeliveryRequirements = *patch.DeliveryRequirements
		}
		if patch.IsRush != nil {
			vq.IsRush = *patch.IsRush
		}
		if patch.Priority != nil {
			vq.Priority = *patch.Priority
		}
		if patch.Status != nil {
			vq.Status = *patch.Status
		}
		if patch.QuotedAmount != nil {
			vq.QuotedAmount = patch.QuotedAmount
		}
	})
	if err != nil {
		return VendorQuoteView{}, err
	}
	if !found {
		return VendorQuoteView{}, errs.NewNotFound("vendor_quote", id)
	}
	return s.enrich(updated), nil
}

// Delete is a leaf-level soft delete; nothing cascades below a vendor quote.
func (s *VendorQuoteService) Delete(id int) error {
	unlock := s.db.Lock(database.VendorQuotesCollection)
	defer unlock()
	ok, err := s.db.VendorQuoteStore().SoftDeleteByID(id)
	if err != nil {
		return err
	}
	if !ok {
		return errs.NewNotFound("vendor_quote", id)
	}
	return nil
}
