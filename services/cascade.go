package services

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Micah-Glenz/hierarchical-data-explorer/database"
	"github.com/Micah-Glenz/hierarchical-data-explorer/errs"
	"github.com/Micah-Glenz/hierarchical-data-explorer/models"
)

// DeletionSummary reports how many records each level of a cascade delete
// removed.
type DeletionSummary struct {
	Projects     int `json:"projects"`
	Quotes       int `json:"quotes"`
	VendorQuotes int `json:"vendor_quotes"`
}

func (s DeletionSummary) Total() int {
	return s.Projects + s.Quotes + s.VendorQuotes
}

func (s DeletionSummary) counts() map[string]int {
	return map[string]int{
		"projects":      s.Projects,
		"quotes":        s.Quotes,
		"vendor_quotes": s.VendorQuotes,
	}
}

// cascadeEdge links one collection to the collection that references it, so
// the cascade is a walk over an ordered edge list instead of per-level
// functions. Adding a fifth level means adding one edge here.
type cascadeEdge struct {
	parentLevel string
	childLevel  string
	childIDs    func(d database.Database, parentID int) []int
	softDelete  func(d database.Database, id int) (bool, error)
}

// hierarchy lists the parent-to-child edges in top-down order. Vendors are
// absent on purpose: deleting a vendor never cascades to its vendor quotes.
var hierarchy = []cascadeEdge{
	{
		parentLevel: database.CustomersCollection,
		childLevel:  database.ProjectsCollection,
		childIDs: func(d database.Database, customerID int) []int {
			return recordIDs(d.ProjectStore().FilterBy(func(p models.Project) bool {
				return p.CustomerID == customerID
			}, false), func(p models.Project) int { return p.ID })
		},
		softDelete: func(d database.Database, id int) (bool, error) {
			return d.ProjectStore().SoftDeleteByID(id)
		},
	},
	{
		parentLevel: database.ProjectsCollection,
		childLevel:  database.QuotesCollection,
		childIDs: func(d database.Database, projectID int) []int {
			return recordIDs(d.QuoteStore().FilterBy(func(q models.Quote) bool {
				return q.ProjectID == projectID
			}, false), func(q models.Quote) int { return q.ID })
		},
		softDelete: func(d database.Database, id int) (bool, error) {
			return d.QuoteStore().SoftDeleteByID(id)
		},
	},
	{
		parentLevel: database.QuotesCollection,
		childLevel:  database.VendorQuotesCollection,
		childIDs: func(d database.Database, quoteID int) []int {
			return recordIDs(d.VendorQuoteStore().FilterBy(func(vq models.VendorQuote) bool {
				return vq.QuoteID == quoteID
			}, false), func(vq models.VendorQuote) int { return vq.ID })
		},
		softDelete: func(d database.Database, id int) (bool, error) {
			return d.VendorQuoteStore().SoftDeleteByID(id)
		},
	},
}

func recordIDs[T any](records []T, id func(T) int) []int {
	ids := make([]int, 0, len(records))
	for _, r := range records {
		ids = append(ids, id(r))
	}
	return ids
}

// runCascade soft-deletes everything below an already-deleted record. The
// walk is top-down: each level's records are marked deleted before their own
// children are visited. Failed deletions are collected rather than rolled
// back; descendants of a failed record are still walked so a retry has less
// left to do.
func runCascade(d database.Database, parentLevel string, parentID int) (DeletionSummary, []string) {
	counts := map[string]int{}
	var failed []string
	frontier := []int{parentID}
	level := parentLevel
	for _, edge := range hierarchy {
		if edge.parentLevel != level {
			continue
		}
		var next []int
		for _, pid := range frontier {
			for _, childID := range edge.childIDs(d, pid) {
				next = append(next, childID)
				ok, err := edge.softDelete(d, childID)
				if err != nil || !ok {
					failed = append(failed, fmt.Sprintf("%s %d (parent %s %d)", edge.childLevel, childID, level, pid))
					continue
				}
				counts[edge.childLevel]++
			}
		}
		frontier = next
		level = edge.childLevel
	}
	summary := DeletionSummary{
		Projects:     counts[database.ProjectsCollection],
		Quotes:       counts[database.QuotesCollection],
		VendorQuotes: counts[database.VendorQuotesCollection],
	}
	return summary, failed
}

// cascadeDelete soft-deletes the record itself, then its descendants.
// deleteSelf must report whether an active record was actually deleted.
func cascadeDelete(d database.Database, entity, level string, id int, deleteSelf func() (bool, error)) (DeletionSummary, error) {
	ok, err := deleteSelf()
	if err != nil {
		return DeletionSummary{}, err
	}
	if !ok {
		return DeletionSummary{}, errs.NewNotFound(entity, id)
	}
	summary, failed := runCascade(d, level, id)
	if len(failed) > 0 {
		log.Error().
			Str("entity", entity).
			Int("id", id).
			Strs("failed", failed).
			Msg("cascade delete partially failed")
		return summary, &errs.PartialCascadeError{
			Entity:    entity,
			ID:        id,
			Succeeded: summary.counts(),
			Failed:    failed,
		}
	}
	return summary, nil
}
