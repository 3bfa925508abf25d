package einvoice

import "strings"

// UnitOther is the UQC fallback for units the table does not cover. Units are
// cosmetic, so an unmapped unit falls back rather than failing the document;
// in contrast to the strict handling of tax-bearing fields.
const UnitOther = "OTH"

// unitCodes translates the units used on quotations into the authority's
// controlled UQC vocabulary.
var unitCodes = map[string]string{
	"nos":    "NOS",
	"no":     "NOS",
	"pcs":    "PCS",
	"piece":  "PCS",
	"pieces": "PCS",
	"set":    "SET",
	"sets":   "SET",
	"sqft":   "SQF",
	"sq ft":  "SQF",
	"sq.ft":  "SQF",
	"sqm":    "SQM",
	"sq m":   "SQM",
	"rft":    "MTR",
	"ft":     "FTS",
	"feet":   "FTS",
	"mtr":    "MTR",
	"m":      "MTR",
	"meter":  "MTR",
	"kg":     "KGS",
	"kgs":    "KGS",
	"ltr":    "LTR",
	"litre":  "LTR",
	"box":    "BOX",
	"boxes":  "BOX",
	"roll":   "ROL",
	"rolls":  "ROL",
	"pair":   "PRS",
	"pairs":  "PRS",
	"bundle": "BDL",
	"sheet":  "SHT",
	"sheets": "SHT",
	"day":    "DAY",
	"days":   "DAY",
	"lot":    "LOT",
	"job":    "OTH",
}

// UnitCode maps an internal unit string to its UQC code, falling back to OTH.
func UnitCode(unit string) string {
	if code, ok := unitCodes[strings.ToLower(strings.TrimSpace(unit))]; ok {
		return code
	}
	return UnitOther
}
