package einvoice

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"designdesk/internal/domain"
	"designdesk/internal/gst"
)

// reconTolerance is the maximum drift allowed between the summed line totals
// and the document totals before the payload is rejected.
const reconTolerance = 0.01

var pinPattern = regexp.MustCompile(`^\d{6}$`)

// Builder maps an internal invoice into the authority schema. It is pure
// transformation plus validation; it never touches the network or storage.
type Builder struct {
	validator *gst.Validator
}

// NewBuilder creates a Builder using the given format validator.
func NewBuilder(validator *gst.Validator) *Builder {
	return &Builder{validator: validator}
}

// Build validates all preconditions and produces the INV-01 payload, or the
// full list of field-level validation errors. No field is mapped until every
// precondition has been checked.
func (b *Builder) Build(inv *domain.Invoice, seller *domain.CompanyProfile, buyer *domain.Client, items []domain.InvoiceLineItem) (*Payload, error) {
	var errs ValidationErrors

	sellerGSTIN := b.validator.ValidateGSTIN(seller.GSTIN)
	if !sellerGSTIN.Valid {
		errs = append(errs, FieldError{Field: "seller.gstin", Reason: sellerGSTIN.Reason})
	}

	buyerGstin := "URP"
	supTyp := "B2C"
	if inv.DocType == domain.DocTypeB2B {
		supTyp = "B2B"
		res := b.validator.ValidateGSTIN(buyer.GSTIN)
		if !res.Valid {
			errs = append(errs, FieldError{Field: "buyer.gstin", Reason: res.Reason})
		} else {
			buyerGstin = res.Normalized
		}
	}

	if res := b.validator.ValidateInvoiceNumber(inv.InvoiceNumber); !res.Valid {
		errs = append(errs, FieldError{Field: "invoice.invoice_number", Reason: res.Reason})
	}

	if res := b.validator.ValidateStateCode(seller.StateCode); !res.Valid {
		errs = append(errs, FieldError{Field: "seller.state_code", Reason: res.Reason})
	}
	if res := b.validator.ValidateStateCode(buyer.StateCode); !res.Valid {
		errs = append(errs, FieldError{Field: "buyer.state_code", Reason: res.Reason})
	}
	if !pinPattern.MatchString(seller.PinCode) {
		errs = append(errs, FieldError{Field: "seller.pin_code", Reason: "PIN code must be 6 digits"})
	}
	if !pinPattern.MatchString(buyer.PinCode) {
		errs = append(errs, FieldError{Field: "buyer.pin_code", Reason: "PIN code must be 6 digits"})
	}

	if len(items) == 0 {
		errs = append(errs, FieldError{Field: "items", Reason: "invoice has no line items"})
	}

	intraState := seller.StateCode == buyer.StateCode
	var sumTotal float64
	for i := range items {
		item := &items[i]
		field := fmt.Sprintf("items[%d]", i)

		if res := b.validator.ValidateItemCode(item.ItemCode, item.IsService); !res.Valid {
			errs = append(errs, FieldError{Field: field + ".item_code", Reason: res.Reason})
		}
		if res := b.validator.ValidateTaxRate(item.TaxRate); !res.Valid {
			errs = append(errs, FieldError{Field: field + ".tax_rate", Reason: res.Reason})
		}

		// Exactly one tax regime must be populated, and it must agree with
		// whether seller and buyer share a state. Mixing is a validation
		// error, never a silent correction.
		hasIntra := item.CGST != 0 || item.SGST != 0
		hasInter := item.IGST != 0
		switch {
		case hasIntra && hasInter:
			errs = append(errs, FieldError{Field: field, Reason: "both CGST/SGST and IGST are populated"})
		case item.TaxRate != 0 && intraState && hasInter:
			errs = append(errs, FieldError{Field: field, Reason: "IGST populated on an intra-state invoice"})
		case item.TaxRate != 0 && !intraState && hasIntra:
			errs = append(errs, FieldError{Field: field, Reason: "CGST/SGST populated on an inter-state invoice"})
		}

		sumTotal = gst.Round2(sumTotal + item.Total)
	}

	docTotal := gst.Round2(inv.TaxableValue + inv.CGST + inv.SGST + inv.IGST)
	if math.Abs(sumTotal-docTotal) > reconTolerance {
		errs = append(errs, FieldError{
			Field:  "totals",
			Reason: fmt.Sprintf("line item totals %.2f do not reconcile with document total %.2f", sumTotal, docTotal),
		})
	}

	if len(errs) > 0 {
		return nil, errs
	}

	payload := &Payload{
		Version: SchemaVersion,
		TranDtls: TranDtls{
			TaxSch: "GST",
			SupTyp: supTyp,
			RegRev: "N",
		},
		DocDtls: DocDtls{
			Typ: "INV",
			No:  inv.InvoiceNumber,
			Dt:  inv.InvoiceDate.Format(DocDateFormat),
		},
		SellerDtls: PartyDtls{
			Gstin: sellerGSTIN.Normalized,
			LglNm: seller.LegalName,
			TrdNm: seller.TradeName,
			Addr1: seller.Address1,
			Addr2: seller.Address2,
			Loc:   seller.City,
			Pin:   mustAtoi(seller.PinCode),
			Stcd:  seller.StateCode,
		},
		BuyerDtls: PartyDtls{
			Gstin: buyerGstin,
			LglNm: buyer.Name,
			Addr1: buyer.Address1,
			Addr2: buyer.Address2,
			Loc:   buyer.City,
			Pin:   mustAtoi(buyer.PinCode),
			Stcd:  buyer.StateCode,
			Pos:   buyer.StateCode,
		},
		ItemList: make([]Item, 0, len(items)),
		ValDtls: ValDtls{
			AssVal:    inv.TaxableValue,
			CgstVal:   inv.CGST,
			SgstVal:   inv.SGST,
			IgstVal:   inv.IGST,
			Discount:  inv.TotalDiscount,
			RndOffAmt: inv.RoundOff,
			TotInvVal: inv.GrandTotal,
		},
	}

	for i := range items {
		item := &items[i]
		isServc := "N"
		if item.IsService {
			isServc = "Y"
		}
		payload.ItemList = append(payload.ItemList, Item{
			SlNo:       strconv.Itoa(item.SlNo),
			PrdDesc:    item.Description,
			IsServc:    isServc,
			HsnCd:      item.ItemCode,
			Qty:        item.Quantity,
			Unit:       UnitCode(item.Unit),
			UnitPrice:  item.UnitPrice,
			TotAmt:     gst.Round2(item.TaxableValue + item.Discount),
			Discount:   item.Discount,
			AssAmt:     item.TaxableValue,
			GstRt:      item.TaxRate,
			IgstAmt:    item.IGST,
			CgstAmt:    item.CGST,
			SgstAmt:    item.SGST,
			TotItemVal: item.Total,
		})
	}

	return payload, nil
}

// mustAtoi converts a pre-validated numeric string. Validation above
// guarantees the input parses.
func mustAtoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
