package csvexport_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"designdesk/internal/csvexport"
	"designdesk/internal/domain"
)

func registerFixture() csvexport.RegisterRow {
	irn := strings.Repeat("a1", 32)
	generatedAt := time.Date(2025, 8, 14, 10, 30, 0, 0, time.UTC)
	return csvexport.RegisterRow{
		Invoice: domain.Invoice{
			InvoiceNumber:  "INV-2025/042",
			InvoiceDate:    time.Date(2025, 8, 14, 0, 0, 0, 0, time.UTC),
			DocType:        domain.DocTypeB2B,
			Status:         domain.InvoiceStatusIssued,
			TaxableValue:   1000,
			TotalDiscount:  50,
			IGST:           180,
			RoundOff:       0,
			GrandTotal:     1180,
			EInvoiceStatus: domain.EInvoiceStatusGenerated,
			IRN:            &irn,
			IRNGeneratedAt: &generatedAt,
		},
		Buyer: domain.Client{
			Name:      "Sharma Retail LLP",
			GSTIN:     "27AAACB1234C1Z9",
			StateCode: "27",
		},
	}
}

func TestWriter_HeaderAndRow(t *testing.T) {
	var buf bytes.Buffer
	w := csvexport.NewWriter(&buf)

	assert.NoError(t, w.WriteHeader())
	assert.NoError(t, w.WriteRows([]csvexport.RegisterRow{registerFixture()}))
	w.Flush()
	assert.NoError(t, w.Error())

	records, err := csv.NewReader(&buf).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 2)

	header := records[0]
	assert.Len(t, header, 18)
	assert.Equal(t, "Invoice Number", header[0])
	assert.Equal(t, "IRN Generated At", header[17])

	row := records[1]
	assert.Equal(t, "INV-2025/042", row[0])
	assert.Equal(t, "14/08/2025", row[1])
	assert.Equal(t, "B2B", row[2])
	assert.Equal(t, "issued", row[3])
	assert.Equal(t, "Sharma Retail LLP", row[4])
	assert.Equal(t, "27AAACB1234C1Z9", row[5])
	assert.Equal(t, "27", row[6])
	assert.Equal(t, "27", row[7])
	assert.Equal(t, "1000.00", row[8])
	assert.Equal(t, "50.00", row[9])
	assert.Equal(t, "0.00", row[10])
	assert.Equal(t, "0.00", row[11])
	assert.Equal(t, "180.00", row[12])
	assert.Equal(t, "0.00", row[13])
	assert.Equal(t, "1180.00", row[14])
	assert.Equal(t, "generated", row[15])
	assert.Equal(t, strings.Repeat("a1", 32), row[16])
	assert.Equal(t, "2025-08-14T10:30:00Z", row[17])
}

func TestWriter_EmptyLifecycleFields(t *testing.T) {
	var buf bytes.Buffer
	w := csvexport.NewWriter(&buf)

	fixture := registerFixture()
	fixture.Invoice.EInvoiceStatus = domain.EInvoiceStatusNone
	fixture.Invoice.IRN = nil
	fixture.Invoice.IRNGeneratedAt = nil

	assert.NoError(t, w.WriteRows([]csvexport.RegisterRow{fixture}))
	w.Flush()

	records, err := csv.NewReader(&buf).ReadAll()
	assert.NoError(t, err)
	assert.Equal(t, "none", records[0][15])
	assert.Equal(t, "", records[0][16])
	assert.Equal(t, "", records[0][17])
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "invoice_register", csvexport.SanitizeFilename("invoice register"))
	assert.Equal(t, "a_b_c", csvexport.SanitizeFilename("a//b??c"))
	assert.Equal(t, "report", csvexport.SanitizeFilename("__report__"))
	assert.Len(t, csvexport.SanitizeFilename(strings.Repeat("x", 150)), 100)
}

func TestBuildFilename(t *testing.T) {
	from := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "invoice_register_2025-04-01_2026-03-31.csv", csvexport.BuildFilename(from, to))
}
