package port

import "context"

// HSNEntry is one row of the HSN/SAC master list with its notified rate.
type HSNEntry struct {
	Code          string  `db:"code"`
	Description   string  `db:"description"`
	GSTRate       float64 `db:"gst_rate"`
	ConditionDesc string  `db:"condition_desc"`
}

// HSNRepository loads the HSN/SAC master list seeded from the GST council's
// published workbook.
type HSNRepository interface {
	ListAll(ctx context.Context) ([]HSNEntry, error)
}
