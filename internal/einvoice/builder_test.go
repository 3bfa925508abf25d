package einvoice_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"designdesk/internal/domain"
	"designdesk/internal/einvoice"
	"designdesk/internal/gst"
)

func newBuilder() *einvoice.Builder {
	return einvoice.NewBuilder(gst.NewValidator(gst.NewStateRegistry()))
}

func testSeller() *domain.CompanyProfile {
	return &domain.CompanyProfile{
		LegalName: "DesignDesk Interiors Private Limited",
		TradeName: "DesignDesk",
		GSTIN:     "29ABCDE1234F1Z5",
		Address1:  "14 Residency Road",
		City:      "Bengaluru",
		StateCode: "29",
		PinCode:   "560001",
	}
}

func testBuyer() *domain.Client {
	return &domain.Client{
		Name:      "Sharma Retail LLP",
		GSTIN:     "27AAACB1234C1Z9",
		Address1:  "2 Marine Drive",
		City:      "Mumbai",
		StateCode: "27",
		PinCode:   "400001",
	}
}

func testInvoice() *domain.Invoice {
	return &domain.Invoice{
		InvoiceNumber:  "INV-2025/042",
		InvoiceDate:    time.Date(2025, 8, 14, 0, 0, 0, 0, time.UTC),
		DocType:        domain.DocTypeB2B,
		Status:         domain.InvoiceStatusIssued,
		EInvoiceStatus: domain.EInvoiceStatusNone,
		TaxableValue:   1000,
		IGST:           180,
		GrandTotal:     1180,
	}
}

func testItems() []domain.InvoiceLineItem {
	return []domain.InvoiceLineItem{{
		SlNo:         1,
		Description:  "Modular wardrobe",
		ItemCode:     "9403",
		Quantity:     2,
		Unit:         "nos",
		UnitPrice:    500,
		TaxRate:      18,
		TaxableValue: 1000,
		IGST:         180,
		Total:        1180,
	}}
}

func TestBuilder_Build_B2BInterState(t *testing.T) {
	b := newBuilder()

	payload, err := b.Build(testInvoice(), testSeller(), testBuyer(), testItems())
	assert.NoError(t, err)
	assert.NotNil(t, payload)

	assert.Equal(t, "1.1", payload.Version)
	assert.Equal(t, "GST", payload.TranDtls.TaxSch)
	assert.Equal(t, "B2B", payload.TranDtls.SupTyp)
	assert.Equal(t, "N", payload.TranDtls.RegRev)
	assert.Equal(t, "INV", payload.DocDtls.Typ)
	assert.Equal(t, "INV-2025/042", payload.DocDtls.No)
	assert.Equal(t, "14/08/2025", payload.DocDtls.Dt)

	assert.Equal(t, "29ABCDE1234F1Z5", payload.SellerDtls.Gstin)
	assert.Equal(t, 560001, payload.SellerDtls.Pin)
	assert.Equal(t, "29", payload.SellerDtls.Stcd)

	assert.Equal(t, "27AAACB1234C1Z9", payload.BuyerDtls.Gstin)
	assert.Equal(t, "27", payload.BuyerDtls.Stcd)
	assert.Equal(t, "27", payload.BuyerDtls.Pos)
	assert.Equal(t, 400001, payload.BuyerDtls.Pin)

	assert.Len(t, payload.ItemList, 1)
	item := payload.ItemList[0]
	assert.Equal(t, "1", item.SlNo)
	assert.Equal(t, "N", item.IsServc)
	assert.Equal(t, "9403", item.HsnCd)
	assert.Equal(t, "NOS", item.Unit)
	assert.Equal(t, 1000.0, item.AssAmt)
	assert.Equal(t, 180.0, item.IgstAmt)
	assert.Equal(t, 1180.0, item.TotItemVal)

	assert.Equal(t, 1000.0, payload.ValDtls.AssVal)
	assert.Equal(t, 180.0, payload.ValDtls.IgstVal)
	assert.Equal(t, 1180.0, payload.ValDtls.TotInvVal)
}

func TestBuilder_Build_B2CUsesURP(t *testing.T) {
	b := newBuilder()

	inv := testInvoice()
	inv.DocType = domain.DocTypeB2C
	buyer := testBuyer()
	buyer.GSTIN = ""

	payload, err := b.Build(inv, testSeller(), buyer, testItems())
	assert.NoError(t, err)
	assert.Equal(t, "B2C", payload.TranDtls.SupTyp)
	assert.Equal(t, "URP", payload.BuyerDtls.Gstin)
}

func TestBuilder_Build_ServiceLine(t *testing.T) {
	b := newBuilder()

	inv := testInvoice()
	items := testItems()
	items[0].IsService = true
	items[0].ItemCode = "998391"
	items[0].Unit = "job"

	payload, err := b.Build(inv, testSeller(), testBuyer(), items)
	assert.NoError(t, err)
	assert.Equal(t, "Y", payload.ItemList[0].IsServc)
	assert.Equal(t, "998391", payload.ItemList[0].HsnCd)
	assert.Equal(t, einvoice.UnitOther, payload.ItemList[0].Unit)
}

func TestBuilder_Build_AccumulatesAllValidationErrors(t *testing.T) {
	b := newBuilder()

	seller := testSeller()
	seller.GSTIN = "bogus"
	seller.PinCode = "12"
	buyer := testBuyer()
	buyer.GSTIN = "also-bogus"
	inv := testInvoice()
	inv.InvoiceNumber = ""

	_, err := b.Build(inv, seller, buyer, nil)
	assert.Error(t, err)

	var verrs einvoice.ValidationErrors
	assert.True(t, errors.As(err, &verrs))

	fields := make(map[string]bool)
	for _, fe := range verrs {
		fields[fe.Field] = true
	}
	assert.True(t, fields["seller.gstin"])
	assert.True(t, fields["seller.pin_code"])
	assert.True(t, fields["buyer.gstin"])
	assert.True(t, fields["invoice.invoice_number"])
	assert.True(t, fields["items"])
}

func TestBuilder_Build_RejectsMixedTaxRegime(t *testing.T) {
	b := newBuilder()

	items := testItems()
	items[0].CGST = 90
	items[0].SGST = 90

	_, err := b.Build(testInvoice(), testSeller(), testBuyer(), items)
	var verrs einvoice.ValidationErrors
	assert.True(t, errors.As(err, &verrs))
	assert.Contains(t, err.Error(), "both CGST/SGST and IGST")
}

func TestBuilder_Build_RejectsIGSTOnIntraState(t *testing.T) {
	b := newBuilder()

	// Buyer in the seller's state but the line carries IGST.
	buyer := testBuyer()
	buyer.GSTIN = "29AAACB1234C1Z9"
	buyer.StateCode = "29"

	_, err := b.Build(testInvoice(), testSeller(), buyer, testItems())
	var verrs einvoice.ValidationErrors
	assert.True(t, errors.As(err, &verrs))
	assert.Contains(t, err.Error(), "IGST populated on an intra-state invoice")
}

func TestBuilder_Build_RejectsUnreconciledTotals(t *testing.T) {
	b := newBuilder()

	inv := testInvoice()
	inv.TaxableValue = 900 // lines still sum to 1180

	_, err := b.Build(inv, testSeller(), testBuyer(), testItems())
	var verrs einvoice.ValidationErrors
	assert.True(t, errors.As(err, &verrs))
	assert.Contains(t, err.Error(), "do not reconcile")
}

func TestBuilder_Build_ToleratesOnePaisaDrift(t *testing.T) {
	b := newBuilder()

	inv := testInvoice()
	inv.TaxableValue = 1000.01 // within the reconciliation tolerance

	_, err := b.Build(inv, testSeller(), testBuyer(), testItems())
	assert.NoError(t, err)
}

func TestBuilder_Build_RejectsBadItemCode(t *testing.T) {
	b := newBuilder()

	items := testItems()
	items[0].ItemCode = "94032" // 5 digits, not a valid HSN length

	_, err := b.Build(testInvoice(), testSeller(), testBuyer(), items)
	var verrs einvoice.ValidationErrors
	assert.True(t, errors.As(err, &verrs))
	assert.Equal(t, "items[0].item_code", verrs[0].Field)
}

func TestUnitCode(t *testing.T) {
	assert.Equal(t, "SQF", einvoice.UnitCode("sqft"))
	assert.Equal(t, "SQF", einvoice.UnitCode("Sq Ft"))
	assert.Equal(t, "NOS", einvoice.UnitCode("Nos"))
	assert.Equal(t, "KGS", einvoice.UnitCode(" kg "))
	assert.Equal(t, einvoice.UnitOther, einvoice.UnitCode("cartload"))
	assert.Equal(t, einvoice.UnitOther, einvoice.UnitCode(""))
}
