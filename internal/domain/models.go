package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated member of the firm.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Lead represents an enquiry captured from the website or a referral.
type Lead struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	Name       string     `db:"name" json:"name"`
	Email      string     `db:"email" json:"email"`
	Phone      string     `db:"phone" json:"phone"`
	City       string     `db:"city" json:"city"`
	Source     string     `db:"source" json:"source"`
	Budget     float64    `db:"budget" json:"budget"`
	Notes      string     `db:"notes" json:"notes"`
	Status     LeadStatus `db:"status" json:"status"`
	AssignedTo *uuid.UUID `db:"assigned_to" json:"assigned_to"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
}

// Client represents a customer of the firm. GSTIN is optional; consumer
// clients have none, registered businesses do.
type Client struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	GSTIN     string    `db:"gstin" json:"gstin"`
	Address1  string    `db:"address1" json:"address1"`
	Address2  string    `db:"address2" json:"address2"`
	City      string    `db:"city" json:"city"`
	StateCode string    `db:"state_code" json:"state_code"`
	PinCode   string    `db:"pin_code" json:"pin_code"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// CompanyProfile is the firm's own registration identity used as the seller
// side of every invoice. Loaded from configuration at startup.
type CompanyProfile struct {
	LegalName string `json:"legal_name"`
	TradeName string `json:"trade_name"`
	GSTIN     string `json:"gstin"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2"`
	City      string `json:"city"`
	StateCode string `json:"state_code"`
	PinCode   string `json:"pin_code"`
}

// Project represents a design engagement for a client.
type Project struct {
	ID          uuid.UUID     `db:"id" json:"id"`
	ClientID    uuid.UUID     `db:"client_id" json:"client_id"`
	Name        string        `db:"name" json:"name"`
	Description string        `db:"description" json:"description"`
	SiteAddress string        `db:"site_address" json:"site_address"`
	Budget      float64       `db:"budget" json:"budget"`
	Status      ProjectStatus `db:"status" json:"status"`
	StartDate   *time.Time    `db:"start_date" json:"start_date"`
	EndDate     *time.Time    `db:"end_date" json:"end_date"`
	CreatedBy   uuid.UUID     `db:"created_by" json:"created_by"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at" json:"updated_at"`
}

// Invoice aggregates the commercial document, its computed totals and the
// e-invoice (IRN) lifecycle fields. Line items live in InvoiceLineItem.
type Invoice struct {
	ID            uuid.UUID      `db:"id" json:"id"`
	ProjectID     uuid.UUID      `db:"project_id" json:"project_id"`
	ClientID      uuid.UUID      `db:"client_id" json:"client_id"`
	InvoiceNumber string         `db:"invoice_number" json:"invoice_number"`
	InvoiceDate   time.Time      `db:"invoice_date" json:"invoice_date"`
	DueDate       *time.Time     `db:"due_date" json:"due_date"`
	DocType       InvoiceDocType `db:"doc_type" json:"doc_type"`
	Status        InvoiceStatus  `db:"status" json:"status"`
	Notes         string         `db:"notes" json:"notes"`

	// Computed totals, persisted after every recalculation.
	TaxableValue  float64 `db:"taxable_value" json:"taxable_value"`
	TotalDiscount float64 `db:"total_discount" json:"total_discount"`
	CGST          float64 `db:"cgst" json:"cgst"`
	SGST          float64 `db:"sgst" json:"sgst"`
	IGST          float64 `db:"igst" json:"igst"`
	RoundOff      float64 `db:"round_off" json:"round_off"`
	GrandTotal    float64 `db:"grand_total" json:"grand_total"`
	AmountInWords string  `db:"amount_in_words" json:"amount_in_words"`

	// IRN lifecycle. Written only by the e-invoice controller.
	EInvoiceStatus EInvoiceStatus `db:"einvoice_status" json:"einvoice_status"`
	IRN            *string        `db:"irn" json:"irn"`
	AckNumber      *string        `db:"ack_number" json:"ack_number"`
	AckDate        *time.Time     `db:"ack_date" json:"ack_date"`
	IRNGeneratedAt *time.Time     `db:"irn_generated_at" json:"irn_generated_at"`
	IRNCancelledAt *time.Time     `db:"irn_cancelled_at" json:"irn_cancelled_at"`
	CancelReason   *string        `db:"cancel_reason" json:"cancel_reason"`

	CreatedBy uuid.UUID `db:"created_by" json:"created_by"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// InvoiceLineItem is a single billed line. Derived tax fields are persisted
// alongside the inputs so the stored document is self-contained.
type InvoiceLineItem struct {
	ID          uuid.UUID `db:"id" json:"id"`
	InvoiceID   uuid.UUID `db:"invoice_id" json:"invoice_id"`
	SlNo        int       `db:"sl_no" json:"sl_no"`
	Description string    `db:"description" json:"description"`
	IsService   bool      `db:"is_service" json:"is_service"`
	ItemCode    string    `db:"item_code" json:"item_code"` // HSN or SAC
	Quantity    float64   `db:"quantity" json:"quantity"`
	Unit        string    `db:"unit" json:"unit"`
	UnitPrice   float64   `db:"unit_price" json:"unit_price"`
	DiscountPct float64   `db:"discount_pct" json:"discount_pct"`
	TaxRate     float64   `db:"tax_rate" json:"tax_rate"`

	TaxableValue float64 `db:"taxable_value" json:"taxable_value"`
	Discount     float64 `db:"discount" json:"discount"`
	CGST         float64 `db:"cgst" json:"cgst"`
	SGST         float64 `db:"sgst" json:"sgst"`
	IGST         float64 `db:"igst" json:"igst"`
	Total        float64 `db:"total" json:"total"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// IRNAuditEntry is an append-only record of a generate or cancel attempt.
// Exactly one entry is written per attempt, success or failure. Entries are
// never updated or deleted.
type IRNAuditEntry struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	InvoiceID   uuid.UUID       `db:"invoice_id" json:"invoice_id"`
	Action      IRNAuditAction  `db:"action" json:"action"`
	Request     json.RawMessage `db:"request" json:"request"`
	Response    json.RawMessage `db:"response" json:"response"`
	Outcome     IRNAuditOutcome `db:"outcome" json:"outcome"`
	ErrorDetail string          `db:"error_detail" json:"error_detail"`
	ActorID     uuid.UUID       `db:"actor_id" json:"actor_id"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}
