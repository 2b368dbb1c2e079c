package models

// Status and type choices for every entity. These mirror the dropdowns the
// browsing UI renders, so the lists are ordered the way they are displayed.

// Customer statuses.
const (
	CustomerStatusActive   = "active"
	CustomerStatusInactive = "inactive"
	CustomerStatusProspect = "prospect"
)

// Project types.
const (
	ProjectTypeInstallation = "installation"
	ProjectTypeRepair       = "repair"
	ProjectTypeMaintenance  = "maintenance"
	ProjectTypeConsulting   = "consulting"
	ProjectTypeOther        = "other"
)

// Project statuses.
const (
	ProjectStatusPlanning   = "planning"
	ProjectStatusInProgress = "in_progress"
	ProjectStatusOnHold     = "on_hold"
	ProjectStatusCompleted  = "completed"
	ProjectStatusCancelled  = "cancelled"
)

// Quote statuses.
const (
	QuoteStatusDraft          = "draft"
	QuoteStatusPendingFreight = "pending_freight"
	QuoteStatusReady          = "ready"
	QuoteStatusSent           = "sent"
	QuoteStatusApproved       = "approved"
	QuoteStatusDeclined       = "declined"
)

// Vendor quote statuses.
const (
	VendorQuoteStatusPending   = "pending"
	VendorQuoteStatusQuoted    = "quoted"
	VendorQuoteStatusApproved  = "approved"
	VendorQuoteStatusRejected  = "rejected"
	VendorQuoteStatusCompleted = "completed"
)

// Freight priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

var (
	CustomerStatuses = []string{
		CustomerStatusActive, CustomerStatusInactive, CustomerStatusProspect,
	}
	ProjectTypes = []string{
		ProjectTypeInstallation, ProjectTypeRepair, ProjectTypeMaintenance,
		ProjectTypeConsulting, ProjectTypeOther,
	}
	ProjectStatuses = []string{
		ProjectStatusPlanning, ProjectStatusInProgress, ProjectStatusOnHold,
		ProjectStatusCompleted, ProjectStatusCancelled,
	}
	QuoteStatuses = []string{
		QuoteStatusDraft, QuoteStatusPendingFreight, QuoteStatusReady,
		QuoteStatusSent, QuoteStatusApproved, QuoteStatusDeclined,
	}
	VendorQuoteStatuses = []string{
		VendorQuoteStatusPending, VendorQuoteStatusQuoted, VendorQuoteStatusApproved,
		VendorQuoteStatusRejected, VendorQuoteStatusCompleted,
	}
	FreightPriorities = []string{
		PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent,
	}
)
