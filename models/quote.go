package models

// Quote belongs to a Project. Its name is unique among the active quotes of
// the same project.
type Quote struct {
	RecordMeta
	ProjectID   int     `json:"project_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Amount      float64 `json:"amount"`
	ValidUntil  string  `json:"valid_until"`
}
