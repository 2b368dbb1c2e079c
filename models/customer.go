package models

// Customer is the root of the business hierarchy. Name is globally unique
// among active customers.
type Customer struct {
	RecordMeta
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
