package models

// Project belongs to a Customer. Its name is unique among the active
// projects of the same customer.
type Project struct {
	RecordMeta
	CustomerID         int     `json:"customer_id"`
	Name               string  `json:"name"`
	ProjectType        string  `json:"project_type"`
	Status             string  `json:"status"`
	Budget             float64 `json:"budget"`
	StartDate          string  `json:"start_date"`
	TargetDeliveryDate string  `json:"target_delivery_date"`
}
