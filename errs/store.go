package errs

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Store & constraint error sentinel values
var (
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("already exists")
	ErrReference      = errors.New("invalid reference")
	ErrStorage        = errors.New("storage operation failed")
	ErrGeneration     = errors.New("tracking id collision")
	ErrPartialCascade = errors.New("cascade partially failed")
)

// NewNotFound reports that no active record with the given id exists in the
// entity's collection.
func NewNotFound(entity string, id int) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%s with ID %d %w", entity, id, ErrNotFound),
	}
}

// NewNotFoundByField reports a missing record looked up by something other
// than its ID, such as a tracking id.
func NewNotFoundByField(entity, field, value string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%s with %s %q %w", entity, field, value, ErrNotFound),
	}
}

// NewConflict reports a uniqueness violation on entity.field.
func NewConflict(entity, field, value string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        fmt.Errorf("%s with %s '%s' %w", entity, field, value, ErrConflict),
		Field:      field,
	}
}

// NewReference reports a foreign key pointing at a missing or soft-deleted
// parent record.
func NewReference(field, parentEntity string, parentID int) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        fmt.Errorf("%s: %w: %s with ID %d not found", field, ErrReference, parentEntity, parentID),
		Field:      field,
	}
}

// NewStorageError reports a failed backup or physical write. The collection
// is left in its prior state.
func NewStorageError(operation, collection string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrStorage,
		Details:    fmt.Sprintf("failed to %s %s", operation, collection),
		Cause:      cause,
	}
}

// NewGenerationError reports a freshly generated tracking id that already
// exists. This is a defensive check; under the per-collection write lock it
// indicates corrupted data rather than a race.
func NewGenerationError(trackingID string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        fmt.Errorf("%w: generated id '%s' already in use", ErrGeneration, trackingID),
		Field:      "tracking_id",
	}
}

// PartialCascadeError reports a cascade delete that marked the parent (and
// possibly some descendants) deleted but failed partway down. Succeeded holds
// the per-level counts that did go through; Failed describes the records that
// did not. Soft deletes are idempotent, so retrying the delete is safe.
type PartialCascadeError struct {
	Entity    string
	ID        int
	Succeeded map[string]int
	Failed    []string
}

func (e *PartialCascadeError) Error() string {
	levels := make([]string, 0, len(e.Succeeded))
	for level, n := range e.Succeeded {
		levels = append(levels, fmt.Sprintf("%s=%d", level, n))
	}
	sort.Strings(levels)
	return fmt.Sprintf("cascade delete of %s %d partially failed: %d records not deleted (completed: %s)",
		e.Entity, e.ID, len(e.Failed), strings.Join(levels, ", "))
}

func (e *PartialCascadeError) Unwrap() error {
	return ErrPartialCascade
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

func IsReference(err error) bool {
	return errors.Is(err, ErrReference)
}

func IsStorage(err error) bool {
	return errors.Is(err, ErrStorage)
}

func IsGeneration(err error) bool {
	return errors.Is(err, ErrGeneration)
}

func IsPartialCascade(err error) bool {
	return errors.Is(err, ErrPartialCascade)
}
