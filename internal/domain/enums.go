package domain

// UserRole defines the role hierarchy within the firm.
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleDesigner UserRole = "designer"
	RoleAccounts UserRole = "accounts"
)

// LeadStatus represents the lifecycle of a sales lead.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusWon       LeadStatus = "won"
	LeadStatusLost      LeadStatus = "lost"
)

// ProjectStatus represents the lifecycle of a design project.
type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "planning"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusOnHold     ProjectStatus = "on_hold"
	ProjectStatusCompleted  ProjectStatus = "completed"
)

// InvoiceStatus represents the commercial lifecycle of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusIssued    InvoiceStatus = "issued"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// InvoiceDocType distinguishes registered-buyer invoices from consumer invoices.
type InvoiceDocType string

const (
	DocTypeB2B InvoiceDocType = "b2b"
	DocTypeB2C InvoiceDocType = "b2c"
)

// EInvoiceStatus is the IRN lifecycle state of an invoice.
// Transitions: none -> generated -> cancelled. There is no way back.
type EInvoiceStatus string

const (
	EInvoiceStatusNone      EInvoiceStatus = "none"
	EInvoiceStatusGenerated EInvoiceStatus = "generated"
	EInvoiceStatusCancelled EInvoiceStatus = "cancelled"
)

// IRNAuditAction identifies the lifecycle operation an audit entry records.
type IRNAuditAction string

const (
	IRNAuditActionGenerate IRNAuditAction = "generate"
	IRNAuditActionCancel   IRNAuditAction = "cancel"
)

// IRNAuditOutcome is the result recorded on an audit entry.
type IRNAuditOutcome string

const (
	IRNAuditOutcomeSuccess IRNAuditOutcome = "success"
	IRNAuditOutcomeFailure IRNAuditOutcome = "failure"
)

// CancelReasons maps the four authority-defined cancellation reason codes
// to their descriptions. No other codes are accepted.
var CancelReasons = map[string]string{
	"1": "Duplicate",
	"2": "Data entry mistake",
	"3": "Order cancelled",
	"4": "Others",
}
