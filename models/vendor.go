package models

// Vendor is a freight vendor. Vendors sit outside the customer hierarchy;
// deleting one never cascades to the vendor quotes that reference it.
type Vendor struct {
	RecordMeta
	Name        string  `json:"name"`
	ContactName string  `json:"contact_name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Specialty   string  `json:"specialty"`
	Rating      float64 `json:"rating"`
}
