package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"designdesk/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the invoice register header row (18 columns).
var columns = []string{
	"Invoice Number",
	"Invoice Date",
	"Document Type",
	"Status",
	"Buyer Name",
	"Buyer GSTIN",
	"Buyer State Code",
	"Place of Supply",
	"Taxable Value",
	"Discount",
	"CGST",
	"SGST",
	"IGST",
	"Round Off",
	"Grand Total",
	"E-Invoice Status",
	"IRN",
	"IRN Generated At",
}

// RegisterRow pairs an invoice with its buyer for one CSV row.
type RegisterRow struct {
	Invoice domain.Invoice
	Buyer   domain.Client
}

// Writer wraps csv.Writer for exporting the invoice register as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the 18-column header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteRows converts a batch of register rows to CSV and writes them.
func (w *Writer) WriteRows(rows []RegisterRow) error {
	for i := range rows {
		if err := w.csv.Write(registerToRow(&rows[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// registerToRow converts a single register row to an 18-element string slice.
// The place of supply is the buyer's state code, matching the e-invoice
// payload's POS field.
func registerToRow(row *RegisterRow) []string {
	inv := &row.Invoice
	out := make([]string, len(columns))

	out[0] = inv.InvoiceNumber
	out[1] = inv.InvoiceDate.Format("02/01/2006")
	out[2] = strings.ToUpper(string(inv.DocType))
	out[3] = string(inv.Status)
	out[4] = row.Buyer.Name
	out[5] = row.Buyer.GSTIN
	out[6] = row.Buyer.StateCode
	out[7] = row.Buyer.StateCode
	out[8] = formatMoney(inv.TaxableValue)
	out[9] = formatMoney(inv.TotalDiscount)
	out[10] = formatMoney(inv.CGST)
	out[11] = formatMoney(inv.SGST)
	out[12] = formatMoney(inv.IGST)
	out[13] = formatMoney(inv.RoundOff)
	out[14] = formatMoney(inv.GrandTotal)
	out[15] = string(inv.EInvoiceStatus)
	if inv.IRN != nil {
		out[16] = *inv.IRN
	}
	if inv.IRNGeneratedAt != nil {
		out[17] = inv.IRNGeneratedAt.Format(time.RFC3339)
	}

	return out
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for the Content-Disposition
// header. Format: invoice_register_{from}_{to}.csv with dates as YYYY-MM-DD.
func BuildFilename(from, to time.Time) string {
	return fmt.Sprintf("invoice_register_%s_%s.csv",
		from.Format("2006-01-02"), to.Format("2006-01-02"))
}
