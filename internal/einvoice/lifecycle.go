package einvoice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"designdesk/internal/domain"
	"designdesk/internal/port"
)

// DefaultCancelWindow is the authority's cancellation deadline after IRN
// generation.
const DefaultCancelWindow = 24 * time.Hour

// SubmitResult is the authority's response to a successful IRN generation.
type SubmitResult struct {
	IRN           string          `json:"irn"`
	AckNumber     string          `json:"ack_number"`
	AckDate       time.Time       `json:"ack_date"`
	SignedInvoice json.RawMessage `json:"signed_invoice,omitempty"`
}

// CancelResult is the authority's response to a successful cancellation.
type CancelResult struct {
	CancelledAt time.Time `json:"cancelled_at"`
}

// AuthorityClient is the opaque e-invoicing authority collaborator. A
// transport failure or timeout is indistinguishable from a rejection for the
// caller: the controller audits it and leaves state unchanged either way.
type AuthorityClient interface {
	Submit(ctx context.Context, payload *Payload) (*SubmitResult, error)
	Cancel(ctx context.Context, irn, reasonCode, remark string) (*CancelResult, error)
}

// Controller drives the IRN state machine: none -> generated -> cancelled.
// Generate and cancel are serialized per invoice so concurrent calls cannot
// both reach the authority; the authority offers no idempotency guarantee
// the subsystem could lean on.
type Controller struct {
	invoices      port.InvoiceRepository
	clients       port.ClientRepository
	audit         port.IRNAuditRepository
	authority     AuthorityClient
	builder       *Builder
	seller        *domain.CompanyProfile
	archive       port.ObjectStorage
	archiveBucket string
	cancelWindow  time.Duration
	submitTimeout time.Duration
	now           func() time.Time

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

// NewController creates the lifecycle controller. cancelWindow and
// submitTimeout fall back to 24h and 30s when zero.
func NewController(
	invoices port.InvoiceRepository,
	clients port.ClientRepository,
	audit port.IRNAuditRepository,
	authority AuthorityClient,
	builder *Builder,
	seller *domain.CompanyProfile,
	cancelWindow time.Duration,
	submitTimeout time.Duration,
) *Controller {
	if cancelWindow <= 0 {
		cancelWindow = DefaultCancelWindow
	}
	if submitTimeout <= 0 {
		submitTimeout = 30 * time.Second
	}
	return &Controller{
		invoices:      invoices,
		clients:       clients,
		audit:         audit,
		authority:     authority,
		builder:       builder,
		seller:        seller,
		cancelWindow:  cancelWindow,
		submitTimeout: submitTimeout,
		now:           time.Now,
		locks:         make(map[uuid.UUID]*sync.Mutex),
	}
}

// SetArchive enables archival of the authority's signed invoice JSON.
func (c *Controller) SetArchive(storage port.ObjectStorage, bucket string) {
	c.archive = storage
	c.archiveBucket = bucket
}

func (c *Controller) lockFor(id uuid.UUID) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	if l, ok := c.locks[id]; ok {
		return l
	}
	l := &sync.Mutex{}
	c.locks[id] = l
	return l
}

// writeAudit records exactly one entry for a lifecycle attempt. Audit
// persistence failure is logged, never propagated; it must not change the
// outcome the caller sees.
func (c *Controller) writeAudit(ctx context.Context, invoiceID uuid.UUID, action domain.IRNAuditAction, request, response json.RawMessage, outcome domain.IRNAuditOutcome, detail string, actor uuid.UUID) {
	entry := &domain.IRNAuditEntry{
		ID:          uuid.New(),
		InvoiceID:   invoiceID,
		Action:      action,
		Request:     request,
		Response:    response,
		Outcome:     outcome,
		ErrorDetail: detail,
		ActorID:     actor,
		CreatedAt:   c.now().UTC(),
	}
	if err := c.audit.Append(ctx, entry); err != nil {
		log.Printf("einvoice.Controller: appending audit entry for invoice %s: %v", invoiceID, err)
	}
}

// GenerateIRN submits the invoice to the authority and persists the returned
// IRN. Every attempt, including precondition and validation failures,
// produces exactly one audit entry. On any failure the invoice is left
// untouched.
func (c *Controller) GenerateIRN(ctx context.Context, invoiceID, actor uuid.UUID) (*SubmitResult, error) {
	lock := c.lockFor(invoiceID)
	lock.Lock()
	defer lock.Unlock()

	inv, err := c.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("loading invoice: %w", err)
	}

	if perr := c.generatePrecondition(inv); perr != nil {
		c.writeAudit(ctx, invoiceID, domain.IRNAuditActionGenerate, nil, nil, domain.IRNAuditOutcomeFailure, perr.Error(), actor)
		return nil, perr
	}

	buyer, err := c.clients.GetByID(ctx, inv.ClientID)
	if err != nil {
		err = fmt.Errorf("loading client: %w", err)
		c.writeAudit(ctx, invoiceID, domain.IRNAuditActionGenerate, nil, nil, domain.IRNAuditOutcomeFailure, err.Error(), actor)
		return nil, err
	}
	items, err := c.invoices.ListItems(ctx, invoiceID)
	if err != nil {
		err = fmt.Errorf("loading line items: %w", err)
		c.writeAudit(ctx, invoiceID, domain.IRNAuditActionGenerate, nil, nil, domain.IRNAuditOutcomeFailure, err.Error(), actor)
		return nil, err
	}

	payload, err := c.builder.Build(inv, c.seller, buyer, items)
	if err != nil {
		c.writeAudit(ctx, invoiceID, domain.IRNAuditActionGenerate, nil, nil, domain.IRNAuditOutcomeFailure, err.Error(), actor)
		return nil, err
	}
	request, _ := json.Marshal(payload)

	callCtx, cancel := context.WithTimeout(ctx, c.submitTimeout)
	defer cancel()
	result, err := c.authority.Submit(callCtx, payload)
	if err != nil {
		authErr := &AuthorityError{Op: "submit", Detail: err.Error()}
		c.writeAudit(ctx, invoiceID, domain.IRNAuditActionGenerate, request, nil, domain.IRNAuditOutcomeFailure, authErr.Detail, actor)
		return nil, authErr
	}

	generatedAt := c.now().UTC()
	updated, err := c.invoices.MarkIRNGenerated(ctx, invoiceID, result.IRN, result.AckNumber, result.AckDate, generatedAt)
	if err != nil {
		c.writeAudit(ctx, invoiceID, domain.IRNAuditActionGenerate, request, nil, domain.IRNAuditOutcomeFailure, err.Error(), actor)
		return nil, fmt.Errorf("persisting IRN: %w", err)
	}
	if !updated {
		perr := &PreconditionError{Op: "generate", Reason: "invoice already carried an IRN when persisting"}
		c.writeAudit(ctx, invoiceID, domain.IRNAuditActionGenerate, request, nil, domain.IRNAuditOutcomeFailure, perr.Reason, actor)
		return nil, perr
	}

	if c.archive != nil && len(result.SignedInvoice) > 0 {
		key := fmt.Sprintf("einvoices/%s/%s.json", invoiceID, result.IRN)
		if _, aerr := c.archive.Upload(ctx, port.UploadInput{
			Bucket:      c.archiveBucket,
			Key:         key,
			Body:        bytes.NewReader(result.SignedInvoice),
			ContentType: "application/json",
		}); aerr != nil {
			log.Printf("einvoice.Controller: archiving signed invoice for %s: %v", invoiceID, aerr)
		}
	}

	response, _ := json.Marshal(result)
	c.writeAudit(ctx, invoiceID, domain.IRNAuditActionGenerate, request, response, domain.IRNAuditOutcomeSuccess, "", actor)
	return result, nil
}

func (c *Controller) generatePrecondition(inv *domain.Invoice) *PreconditionError {
	switch {
	case inv.Status == domain.InvoiceStatusDraft:
		return &PreconditionError{Op: "generate", Reason: "invoice is still a draft"}
	case inv.Status == domain.InvoiceStatusCancelled:
		return &PreconditionError{Op: "generate", Reason: "invoice is cancelled"}
	case inv.DocType != domain.DocTypeB2B:
		return &PreconditionError{Op: "generate", Reason: "e-invoicing applies to B2B invoices only"}
	case inv.EInvoiceStatus != domain.EInvoiceStatusNone || inv.IRN != nil:
		return &PreconditionError{Op: "generate", Reason: "an IRN already exists for this invoice"}
	}
	return nil
}

// CancelIRN cancels a generated IRN within the authority's window. Reason
// must be one of the four authority-defined codes. Every attempt produces
// exactly one audit entry.
func (c *Controller) CancelIRN(ctx context.Context, invoiceID uuid.UUID, reasonCode, remark string, actor uuid.UUID) (*CancelResult, error) {
	lock := c.lockFor(invoiceID)
	lock.Lock()
	defer lock.Unlock()

	inv, err := c.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("loading invoice: %w", err)
	}

	if perr := c.cancelPrecondition(inv, reasonCode); perr != nil {
		c.writeAudit(ctx, invoiceID, domain.IRNAuditActionCancel, nil, nil, domain.IRNAuditOutcomeFailure, perr.Error(), actor)
		return nil, perr
	}

	request, _ := json.Marshal(map[string]string{
		"irn":    *inv.IRN,
		"reason": reasonCode,
		"remark": remark,
	})

	callCtx, cancel := context.WithTimeout(ctx, c.submitTimeout)
	defer cancel()
	result, err := c.authority.Cancel(callCtx, *inv.IRN, reasonCode, remark)
	if err != nil {
		authErr := &AuthorityError{Op: "cancel", Detail: err.Error()}
		c.writeAudit(ctx, invoiceID, domain.IRNAuditActionCancel, request, nil, domain.IRNAuditOutcomeFailure, authErr.Detail, actor)
		return nil, authErr
	}

	updated, err := c.invoices.MarkIRNCancelled(ctx, invoiceID, reasonCode, result.CancelledAt)
	if err != nil {
		c.writeAudit(ctx, invoiceID, domain.IRNAuditActionCancel, request, nil, domain.IRNAuditOutcomeFailure, err.Error(), actor)
		return nil, fmt.Errorf("persisting cancellation: %w", err)
	}
	if !updated {
		perr := &PreconditionError{Op: "cancel", Reason: "IRN was no longer in generated state when persisting"}
		c.writeAudit(ctx, invoiceID, domain.IRNAuditActionCancel, request, nil, domain.IRNAuditOutcomeFailure, perr.Reason, actor)
		return nil, perr
	}

	response, _ := json.Marshal(result)
	c.writeAudit(ctx, invoiceID, domain.IRNAuditActionCancel, request, response, domain.IRNAuditOutcomeSuccess, "", actor)
	return result, nil
}

func (c *Controller) cancelPrecondition(inv *domain.Invoice, reasonCode string) *PreconditionError {
	switch {
	case inv.IRN == nil || inv.EInvoiceStatus == domain.EInvoiceStatusNone:
		return &PreconditionError{Op: "cancel", Reason: "no IRN has been generated for this invoice"}
	case inv.EInvoiceStatus == domain.EInvoiceStatusCancelled:
		return &PreconditionError{Op: "cancel", Reason: "the IRN is already cancelled"}
	case domain.CancelReasons[reasonCode] == "":
		return &PreconditionError{Op: "cancel", Reason: fmt.Sprintf("%q is not a valid cancellation reason code", reasonCode)}
	case inv.IRNGeneratedAt == nil:
		return &PreconditionError{Op: "cancel", Reason: "IRN generation timestamp is missing"}
	case c.now().Sub(*inv.IRNGeneratedAt) > c.cancelWindow:
		return &PreconditionError{Op: "cancel", Reason: "the cancellation window has elapsed"}
	}
	return nil
}
