package services

import (
	"strings"

	"github.com/Micah-Glenz/hierarchical-data-explorer/database"
	"github.com/Micah-Glenz/hierarchical-data-explorer/errs"
	"github.com/Micah-Glenz/hierarchical-data-explorer/models"
	"github.com/Micah-Glenz/hierarchical-data-explorer/validation"
)

type VendorInput struct {
	Name        string  `json:"name"`
	ContactName string  `json:"contact_name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Specialty   string  `json:"specialty"`
	Rating      float64 `json:"rating"`
}

type VendorPatch struct {
	Name        *string  `json:"name"`
	ContactName *string  `json:"contact_name"`
	Email       *string  `json:"email"`
	Phone       *string  `json:"phone"`
	Specialty   *string  `json:"specialty"`
	Rating      *float64 `json:"rating"`
}

type VendorService struct {
	db database.Database
}

func NewVendorService(db database.Database) *VendorService {
	return &VendorService{db: db}
}

func validateVendorInput(in VendorInput) error {
	v := validation.Violations{}
	validation.Name("name", in.Name, v)
	validation.Name("contact_name", in.ContactName, v)
	validation.Email("email", in.Email, v)
	if strings.TrimSpace(in.Phone) != "" {
		validation.Phone("phone", in.Phone, v)
	}
	validation.Required("specialty", in.Specialty, v)
	validation.MaxLen("specialty", in.Specialty, validation.MaxSpecialtyLength, v)
	validation.Rating("rating", in.Rating, v)
	if !v.Empty() {
		return errs.NewValidationError(v)
	}
	return nil
}

func (s *VendorService) nameTaken(name string, excludeID int) bool {
	want := strings.ToLower(strings.TrimSpace(name))
	matches := s.db.VendorStore().FilterBy(func(vn models.Vendor) bool {
		return vn.ID != excludeID && strings.ToLower(strings.TrimSpace(vn.Name)) == want
	}, false)
	return len(matches) > 0
}

func (s *VendorService) Create(in VendorInput) (models.Vendor, error) {
	if err := validateVendorInput(in); err != nil {
		return models.Vendor{}, err
	}
	unlock := s.db.Lock(database.VendorsCollection)
	defer unlock()
	if s.nameTaken(in.Name, 0) {
		return models.Vendor{}, errs.NewConflict("vendor", "name", in.Name)
	}
	return s.db.VendorStore().Append(models.Vendor{
		Name:        strings.TrimSpace(in.Name),
		ContactName: strings.TrimSpace(in.ContactName),
		Email:       strings.TrimSpace(in.Email),
		Phone:       strings.TrimSpace(in.Phone),
		Specialty:   in.Specialty,
		Rating:      in.Rating,
	})
}

func (s *VendorService) Get(id int) (models.Vendor, error) {
	vn, ok := s.db.VendorStore().FindByID(id, false)
	if !ok {
		return models.Vendor{}, errs.NewNotFound("vendor", id)
	}
	return vn, nil
}

func (s *VendorService) List() []models.Vendor {
	return s.db.VendorStore().FindAll(false)
}

func (s *VendorService) Update(id int, patch VendorPatch) (models.Vendor, error) {
	v := validation.Violations{}
	if patch.Name != nil {
		validation.Name("name", *patch.Name, v)
	}
	if patch.ContactName != nil {
		validation.Name("contact_name", *patch.ContactName, v)
	}
	if patch.Email != nil {
		validation.Email("email", *patch.Email, v)
	}
	if patch.Phone != nil && strings.TrimSpace(*patch.Phone) != "" {
		validation.Phone("phone", *patch.Phone, v)
	}
	if patch.Specialty != nil {
		validation.Required("specialty", *patch.Specialty, v)
		validation.MaxLen("specialty", *patch.Specialty, validation.MaxSpecialtyLength, v)
	}
	if patch.Rating != nil {
		validation.Rating("rating", *patch.Rating, v)
	}
	if !v.Empty() {
		return models.Vendor{}, errs.NewValidationError(v)
	}

	unlock := s.db.Lock(database.VendorsCollection)
	defer unlock()
	if patch.Name != nil && s.nameTaken(*patch.Name, id) {
		return models.Vendor{}, errs.NewConflict("vendor", "name", *patch.Name)
	}
	updated, found, err := s.db.VendorStore().UpdateByID(id, func(vn *models.Vendor) {
		if patch.Name != nil {
			vn.Name = strings.TrimSpace(*patch.Name)
		}
		if patch.ContactName != nil {
			vn.ContactName = strings.TrimSpace(*patch.ContactName)
		}
		if patch.Email != nil {
			vn.Email = strings.TrimSpace(*patch.Email)
		}
		if patch.Phone != nil {
			vn.Phone = strings.TrimSpace(*patch.Phone)
		}
		if patch.Specialty != nil {
			vn.Specialty = *patch.Specialty
		}
		if patch.Rating != nil {
			vn.Rating = *patch.Rating
		}
	})
	if err != nil {
		return models.Vendor{}, err
	}
	if !found {
		return models.Vendor{}, errs.NewNotFound("vendor", id)
	}
	return updated, nil
}

// Delete soft-deletes the vendor only. Vendor quotes referencing it stay
// active; their enrichment falls back to the unknown vendor sentinel.
func (s *VendorService) Delete(id int) error {
	unlock := s.db.Lock(database.VendorsCollection)
	defer unlock()
	ok, err := s.db.VendorStore().SoftDeleteByID(id)
	if err != nil {
		return err
	}
	if !ok {
		return errs.NewNotFound("vendor", id)
	}
	return nil
}
