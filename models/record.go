package models

import "time"

// RecordMeta carries the bookkeeping fields shared by every collection
// record: the sequential id, the lifecycle timestamps, and the soft-delete
// markers. Entities embed it so the store can manage them uniformly.
type RecordMeta struct {
	ID        int        `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	IsDeleted bool       `json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at"`
}

// Meta returns the embedded metadata. Promoted onto every entity via
// embedding, which is what lets the generic store reach the shared fields.
func (m *RecordMeta) Meta() *RecordMeta { return m }
