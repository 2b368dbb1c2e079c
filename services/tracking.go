package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Micah-Glenz/hierarchical-data-explorer/database"
	"github.com/Micah-Glenz/hierarchical-data-explorer/errs"
	"github.com/Micah-Glenz/hierarchical-data-explorer/models"
)

// NextTrackingID allocates the next VQYY-N tracking ID for the current year.
// The sequence scans every vendor quote ever stored, soft-deleted ones
// included, so a number is never handed out twice. Callers must hold the
// vendor quote operation lock.
func NextTrackingID(store *database.Store[models.VendorQuote, *models.VendorQuote], now func() time.Time) (string, error) {
	if now == nil {
		now = time.Now
	}
	prefix := fmt.Sprintf("VQ%02d-", now().Year()%100)
	max := 0
	for _, vq := range store.FindAll(true) {
		if !strings.HasPrefix(vq.TrackingID, prefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(vq.TrackingID, prefix))
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	candidate := prefix + strconv.Itoa(max+1)
	for _, vq := range store.FindAll(true) {
		if vq.TrackingID == candidate {
			return "", errs.NewGenerationError(candidate)
		}
	}
	return candidate, nil
}
