package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"designdesk/internal/domain"
	"designdesk/internal/gst"
	"designdesk/internal/port"
)

// LineItemInput is the DTO for one invoice line.
type LineItemInput struct {
	Description string  `json:"description" binding:"required"`
	IsService   bool    `json:"is_service"`
	ItemCode    string  `json:"item_code" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required,gt=0"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unit_price" binding:"required,gte=0"`
	DiscountPct float64 `json:"discount_pct" binding:"gte=0,lte=100"`
	TaxRate     float64 `json:"tax_rate"`
}

// CreateInvoiceInput is the DTO for creating an invoice.
type CreateInvoiceInput struct {
	ProjectID     uuid.UUID       `json:"project_id" binding:"required"`
	ClientID      uuid.UUID       `json:"client_id" binding:"required"`
	InvoiceNumber string          `json:"invoice_number" binding:"required"`
	InvoiceDate   time.Time       `json:"invoice_date" binding:"required"`
	DueDate       *time.Time      `json:"due_date"`
	Notes         string          `json:"notes"`
	Items         []LineItemInput `json:"items" binding:"required,min=1,dive"`
	CreatedBy     uuid.UUID       `json:"-"`
}

// InvoiceWithItems pairs an invoice with its line items.
type InvoiceWithItems struct {
	Invoice domain.Invoice           `json:"invoice"`
	Items   []domain.InvoiceLineItem `json:"items"`
}

// InvoiceService defines the invoice management contract. Tax figures are
// always recomputed through the calculator; stored values are outputs, not
// inputs.
type InvoiceService interface {
	Create(ctx context.Context, input *CreateInvoiceInput) (*InvoiceWithItems, error)
	GetByID(ctx context.Context, id uuid.UUID) (*InvoiceWithItems, error)
	List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error)
	ListByProject(ctx context.Context, projectID uuid.UUID, offset, limit int) ([]domain.Invoice, int, error)
	UpdateItems(ctx context.Context, id uuid.UUID, items []LineItemInput) (*InvoiceWithItems, error)
	Issue(ctx context.Context, id uuid.UUID) error
	MarkPaid(ctx context.Context, id uuid.UUID) error
	SendToClient(ctx context.Context, id uuid.UUID) error
}

type invoiceService struct {
	invoiceRepo port.InvoiceRepository
	clientRepo  port.ClientRepository
	calculator  *gst.Calculator
	validator   *gst.Validator
	hsnLookup   *gst.HSNLookup
	email       port.EmailSender
	seller      *domain.CompanyProfile
}

// NewInvoiceService creates a new InvoiceService implementation. hsnLookup
// may be nil when the HSN master has not been seeded.
func NewInvoiceService(
	invoiceRepo port.InvoiceRepository,
	clientRepo port.ClientRepository,
	calculator *gst.Calculator,
	validator *gst.Validator,
	hsnLookup *gst.HSNLookup,
	email port.EmailSender,
	seller *domain.CompanyProfile,
) InvoiceService {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		calculator:  calculator,
		validator:   validator,
		hsnLookup:   hsnLookup,
		email:       email,
		seller:      seller,
	}
}

func (s *invoiceService) Create(ctx context.Context, input *CreateInvoiceInput) (*InvoiceWithItems, error) {
	if res := s.validator.ValidateInvoiceNumber(input.InvoiceNumber); !res.Valid {
		return nil, fmt.Errorf("invoice number: %s", res.Reason)
	}

	client, err := s.clientRepo.GetByID(ctx, input.ClientID)
	if err != nil {
		return nil, fmt.Errorf("invoice.Create: %w", err)
	}

	items, totals, err := s.computeItems(client, input.Items)
	if err != nil {
		return nil, err
	}

	docType := domain.DocTypeB2C
	if client.GSTIN != "" {
		if res := s.validator.ValidateGSTIN(client.GSTIN); !res.Valid {
			return nil, fmt.Errorf("client GSTIN: %s", res.Reason)
		}
		docType = domain.DocTypeB2B
	}

	inv := &domain.Invoice{
		ProjectID:      input.ProjectID,
		ClientID:       input.ClientID,
		InvoiceNumber:  input.InvoiceNumber,
		InvoiceDate:    input.InvoiceDate,
		DueDate:        input.DueDate,
		DocType:        docType,
		Status:         domain.InvoiceStatusDraft,
		Notes:          input.Notes,
		TaxableValue:   totals.TaxableValue,
		TotalDiscount:  totals.TotalDiscount,
		CGST:           totals.CGST,
		SGST:           totals.SGST,
		IGST:           totals.IGST,
		RoundOff:       totals.RoundOff,
		GrandTotal:     totals.GrandTotal,
		AmountInWords:  gst.AmountInWords(totals.GrandTotal),
		EInvoiceStatus: domain.EInvoiceStatusNone,
		CreatedBy:      input.CreatedBy,
	}

	if err := s.invoiceRepo.Create(ctx, inv, items); err != nil {
		return nil, err
	}
	return &InvoiceWithItems{Invoice: *inv, Items: items}, nil
}

// computeItems derives every tax figure from the inputs. Line splits are
// computed per item and the document totals aggregate the already-rounded
// results.
func (s *invoiceService) computeItems(client *domain.Client, inputs []LineItemInput) ([]domain.InvoiceLineItem, gst.DocumentTotals, error) {
	items := make([]domain.InvoiceLineItem, 0, len(inputs))
	results := make([]gst.LineItemResult, 0, len(inputs))

	for i, in := range inputs {
		if res := s.validator.ValidateItemCode(in.ItemCode, in.IsService); !res.Valid {
			return nil, gst.DocumentTotals{}, fmt.Errorf("item %d: %s", i+1, res.Reason)
		}

		result, err := s.calculator.LineItem(in.Quantity, in.UnitPrice, in.TaxRate,
			s.seller.StateCode, client.StateCode, in.DiscountPct)
		if err != nil {
			return nil, gst.DocumentTotals{}, fmt.Errorf("item %d: %w", i+1, err)
		}

		if s.hsnLookup != nil {
			if matched, _ := s.hsnLookup.RateMatches(in.ItemCode, in.TaxRate); !matched && s.hsnLookup.Exists(in.ItemCode) {
				log.Printf("invoice.Service: item %d rate %.2f%% does not match HSN master for code %s", i+1, in.TaxRate, in.ItemCode)
			}
		}

		results = append(results, result)
		items = append(items, domain.InvoiceLineItem{
			SlNo:         i + 1,
			Description:  in.Description,
			IsService:    in.IsService,
			ItemCode:     in.ItemCode,
			Quantity:     in.Quantity,
			Unit:         in.Unit,
			UnitPrice:    in.UnitPrice,
			DiscountPct:  in.DiscountPct,
			TaxRate:      in.TaxRate,
			TaxableValue: result.TaxableValue,
			Discount:     result.Discount,
			CGST:         result.CGST,
			SGST:         result.SGST,
			IGST:         result.IGST,
			Total:        result.Total,
		})
	}

	return items, s.calculator.AggregateDocument(results), nil
}

func (s *invoiceService) GetByID(ctx context.Context, id uuid.UUID) (*InvoiceWithItems, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.invoiceRepo.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}
	return &InvoiceWithItems{Invoice: *inv, Items: items}, nil
}

func (s *invoiceService) List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error) {
	return s.invoiceRepo.List(ctx, offset, limit)
}

func (s *invoiceService) ListByProject(ctx context.Context, projectID uuid.UUID, offset, limit int) ([]domain.Invoice, int, error) {
	return s.invoiceRepo.ListByProject(ctx, projectID, offset, limit)
}

// UpdateItems replaces the line items and recomputes all totals. Rejected
// once an IRN exists; the repository enforces the freeze.
func (s *invoiceService) UpdateItems(ctx context.Context, id uuid.UUID, inputs []LineItemInput) (*InvoiceWithItems, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv.IRN != nil {
		return nil, domain.ErrInvoiceFrozen
	}

	client, err := s.clientRepo.GetByID(ctx, inv.ClientID)
	if err != nil {
		return nil, err
	}

	items, totals, err := s.computeItems(client, inputs)
	if err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.ReplaceItems(ctx, id, items); err != nil {
		return nil, err
	}

	inv.TaxableValue = totals.TaxableValue
	inv.TotalDiscount = totals.TotalDiscount
	inv.CGST = totals.CGST
	inv.SGST = totals.SGST
	inv.IGST = totals.IGST
	inv.RoundOff = totals.RoundOff
	inv.GrandTotal = totals.GrandTotal
	inv.AmountInWords = gst.AmountInWords(totals.GrandTotal)
	if err := s.invoiceRepo.Update(ctx, inv); err != nil {
		return nil, err
	}

	return &InvoiceWithItems{Invoice: *inv, Items: items}, nil
}

func (s *invoiceService) Issue(ctx context.Context, id uuid.UUID) error {
	return s.invoiceRepo.UpdateStatus(ctx, id, domain.InvoiceStatusIssued)
}

func (s *invoiceService) MarkPaid(ctx context.Context, id uuid.UUID) error {
	return s.invoiceRepo.UpdateStatus(ctx, id, domain.InvoiceStatusPaid)
}

func (s *invoiceService) SendToClient(ctx context.Context, id uuid.UUID) error {
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	client, err := s.clientRepo.GetByID(ctx, inv.ClientID)
	if err != nil {
		return err
	}

	dueDate := ""
	if inv.DueDate != nil {
		dueDate = inv.DueDate.Format("02 Jan 2006")
	}
	return s.email.SendInvoiceEmail(ctx, &port.InvoiceEmail{
		ToEmail:       client.Email,
		ToName:        client.Name,
		InvoiceNumber: inv.InvoiceNumber,
		AmountDue:     inv.GrandTotal,
		DueDate:       dueDate,
	})
}
