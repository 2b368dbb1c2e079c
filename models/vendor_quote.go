package models

// VendorQuote is a freight request sent to a vendor for a quote. Each
// (quote_id, vendor_id) pair may have at most one active vendor quote, and
// the tracking id is globally unique and never reused.
type VendorQuote struct {
	RecordMeta
	QuoteID              int      `json:"quote_id"`
	VendorID             int      `json:"vendor_id"`
	TrackingID           string   `json:"tracking_id"`
	ItemsText            string   `json:"items_text"`
	DeliveryRequirements string   `json:"delivery_requirements"`
	IsRush               bool     `json:"is_rush"`
	Priority             string   `json:"priority"`
	Status               string   `json:"status"`
	QuotedAmount         *float64 `json:"quoted_amount"`
}
