// Package validation holds the pure field-format validators shared by every
// entity service. Validators never touch storage; they only accumulate
// field -> message violations so a payload is rejected as a whole.
package validation

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
)

// Field length caps.
const (
	MaxNameLength                 = 255
	MaxDescriptionLength          = 1000
	MaxEmailLength                = 254
	MaxPhoneLength                = 20
	MaxZipLength                  = 10
	MaxAddressLength              = 255
	MaxCityLength                 = 100
	MaxStateLength                = 50
	MaxSpecialtyLength            = 100
	MaxItemsTextLength            = 2000
	MaxDeliveryRequirementsLength = 1000
)

// Currency and rating bounds.
const (
	MinAmount = 0.01
	MaxAmount = 999999999.99
	MinRating = 0.0
	MaxRating = 5.0
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9](?:[a-zA-Z0-9._%+-]*[a-zA-Z0-9])?@[a-zA-Z0-9](?:[a-zA-Z0-9.-]*[a-zA-Z0-9])?\.[a-zA-Z]{2,}$`)

	// US ZIP code format: 12345 or 12345-6789
	zipPattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

	phonePattern = regexp.MustCompile(`^(?:\+1\s)?(?:\(\d{3}\)\s|\d{3}[-.])\d{3}[-.]?\d{4}$|^\+1\s?\d{10}$|^\d{10}$`)

	// VQYY-N format
	trackingIDPattern = regexp.MustCompile(`^VQ\d{2}-\d+$`)
)

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

func (v Violations) Add(field, message string) {
	if _, taken := v[field]; !taken {
		v[field] = message
	}
}

// Required rejects empty or whitespace-only strings.
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, field+" is required")
	}
}

// Name validates a required name field against the shared length cap.
func Name(field, value string, v Violations) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		v.Add(field, field+" is required")
		return
	}
	if len(trimmed) > MaxNameLength {
		v.Add(field, fmt.Sprintf("%s must be %d characters or less", field, MaxNameLength))
	}
}

// MaxLen rejects values longer than limit. Empty values pass; pair with
// Required for mandatory fields.
func MaxLen(field, value string, limit int, v Violations) {
	if len(value) > limit {
		v.Add(field, fmt.Sprintf("%s must be %d characters or less", field, limit))
	}
}

// Email validates the address format, rejecting consecutive dots and
// leading/trailing dots the regex alone would let through.
func Email(field, value string, v Violations) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || len(trimmed) > MaxEmailLength {
		v.Add(field, "invalid email format")
		return
	}
	if strings.Contains(trimmed, "..") || strings.HasPrefix(trimmed, ".") || strings.HasSuffix(trimmed, ".") {
		v.Add(field, "invalid email format")
		return
	}
	if !emailPattern.MatchString(trimmed) {
		v.Add(field, "invalid email format")
	}
}

// ZipCode validates the US 12345 / 12345-6789 formats.
func ZipCode(field, value string, v Violations) {
	if value == "" || len(value) > MaxZipLength || !zipPattern.MatchString(value) {
		v.Add(field, "invalid ZIP code format (use 12345 or 12345-6789)")
	}
}

// Phone validates the five accepted phone formats, e.g. (555) 123-4567,
// 555-123-4567, 555.123.4567, +1 5551234567, 5551234567.
func Phone(field, value string, v Violations) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || len(trimmed) > MaxPhoneLength || !phonePattern.MatchString(trimmed) {
		v.Add(field, "invalid phone number format")
	}
}

// Date validates a YYYY-MM-DD calendar date.
func Date(field, value string, v Violations) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		v.Add(field, field+" cannot be empty")
		return
	}
	if _, err := time.Parse("2006-01-02", trimmed); err != nil {
		v.Add(field, field+" must be in YYYY-MM-DD format")
	}
}

// OptionalDate validates a date only when one is provided.
func OptionalDate(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		return
	}
	Date(field, value, v)
}

// Currency validates a monetary amount: within [0.01, 999999999.99] and at
// most two decimal places.
func Currency(field string, value float64, v Violations) {
	if value < MinAmount {
		v.Add(field, fmt.Sprintf("%s must be at least $%.2f", field, MinAmount))
		return
	}
	if value > MaxAmount {
		v.Add(field, fmt.Sprintf("%s must be $%.2f or less", field, MaxAmount))
		return
	}
	cents := value * 100
	if math.Abs(cents-math.Round(cents)) > 1e-6 {
		v.Add(field, field+" must have at most two decimal places")
	}
}

// Rating validates a vendor rating in [0.0, 5.0].
func Rating(field string, value float64, v Violations) {
	if value < MinRating || value > MaxRating {
		v.Add(field, fmt.Sprintf("%s must be between %.1f and %.1f", field, MinRating, MaxRating))
	}
}

// Choice rejects values outside the allowed set.
func Choice(field, value string, choices []string, v Violations) {
	for _, c := range choices {
		if c == value {
			return
		}
	}
	v.Add(field, fmt.Sprintf("%s must be one of: %s", field, strings.Join(choices, ", ")))
}

// TrackingID validates the VQYY-N tracking id format.
func TrackingID(field, value string, v Violations) {
	if value == "" || !trackingIDPattern.MatchString(value) {
		v.Add(field, "invalid tracking ID format (use VQYY-N, e.g. VQ24-1)")
	}
}

// ValidTrackingID reports whether value matches the VQYY-N format.
func ValidTrackingID(value string) bool {
	return trackingIDPattern.MatchString(value)
}
