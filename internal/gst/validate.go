package gst

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	gstinPattern     = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	panPattern       = regexp.MustCompile(`^[A-Z]{5}\d{4}[A-Z]$`)
	hsnPattern       = regexp.MustCompile(`^(\d{4}|\d{6}|\d{8})$`)
	sacPattern       = regexp.MustCompile(`^\d{6}$`)
	stateCodePattern = regexp.MustCompile(`^\d{2}$`)
	irnPattern       = regexp.MustCompile(`^[0-9A-Za-z]{64}$`)
	invoiceNoPattern = regexp.MustCompile(`^[0-9A-Za-z/\-]{1,16}$`)
)

// MaxInvoiceNumberLen is the NIC limit on Doc No length.
const MaxInvoiceNumberLen = 16

// ValidationResult is the outcome of a format check. Malformed input is the
// expected case, not an error path: validators never return Go errors.
type ValidationResult struct {
	Valid      bool   `json:"valid"`
	Normalized string `json:"normalized,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

// GSTINParts are the structural components of a valid GSTIN.
type GSTINParts struct {
	StateCode string `json:"state_code"`
	PAN       string `json:"pan"`
	EntityNo  string `json:"entity_no"`
	CheckChar string `json:"check_char"`
}

// GSTINResult is a ValidationResult with the parsed GSTIN components.
type GSTINResult struct {
	ValidationResult
	Parts *GSTINParts `json:"parts,omitempty"`
}

func invalid(reason string) ValidationResult {
	return ValidationResult{Valid: false, Reason: reason}
}

func valid(normalized string) ValidationResult {
	return ValidationResult{Valid: true, Normalized: normalized}
}

// Validator bundles the format validators. The state registry is injected so
// jurisdiction-prefixed identifiers can be checked against known codes.
type Validator struct {
	states *StateRegistry
}

// NewValidator creates a Validator backed by the given state registry.
func NewValidator(states *StateRegistry) *Validator {
	return &Validator{states: states}
}

// ValidateGSTIN checks the 15-character GSTIN grammar: a known 2-digit state
// code, an embedded PAN, an entity number, the fixed literal 'Z' at position
// 13 and an alphanumeric check character. No fuzzy acceptance.
func (v *Validator) ValidateGSTIN(raw string) GSTINResult {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if len(s) != 15 {
		return GSTINResult{ValidationResult: invalid(fmt.Sprintf("GSTIN must be 15 characters, got %d", len(s)))}
	}
	if !gstinPattern.MatchString(s) {
		return GSTINResult{ValidationResult: invalid("GSTIN does not match the required grammar")}
	}
	stateCode := s[0:2]
	if !v.states.Exists(stateCode) {
		return GSTINResult{ValidationResult: invalid(fmt.Sprintf("unknown state code %q in GSTIN", stateCode))}
	}
	pan := s[2:12]
	if !panPattern.MatchString(pan) {
		return GSTINResult{ValidationResult: invalid("embedded PAN does not match the PAN grammar")}
	}
	return GSTINResult{
		ValidationResult: valid(s),
		Parts: &GSTINParts{
			StateCode: stateCode,
			PAN:       pan,
			EntityNo:  s[12:13],
			CheckChar: s[14:15],
		},
	}
}

// ValidatePAN checks the 10-character PAN grammar (5 letters, 4 digits, 1 letter).
func (v *Validator) ValidatePAN(raw string) ValidationResult {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if len(s) != 10 {
		return invalid(fmt.Sprintf("PAN must be 10 characters, got %d", len(s)))
	}
	if !panPattern.MatchString(s) {
		return invalid("PAN does not match the required grammar")
	}
	return valid(s)
}

// ValidateHSN accepts numeric codes of length 4, 6 or 8 only.
func (v *Validator) ValidateHSN(raw string) ValidationResult {
	s := strings.TrimSpace(raw)
	if !hsnPattern.MatchString(s) {
		return invalid("HSN must be a numeric code of 4, 6 or 8 digits")
	}
	return valid(s)
}

// ValidateSAC accepts numeric codes of exactly 6 digits.
func (v *Validator) ValidateSAC(raw string) ValidationResult {
	s := strings.TrimSpace(raw)
	if !sacPattern.MatchString(s) {
		return invalid("SAC must be a numeric code of exactly 6 digits")
	}
	return valid(s)
}

// ValidateItemCode validates a classification code against the declared
// goods/services flag. A 6-digit HSN and a SAC are textually identical, so
// the caller must say which one it means.
func (v *Validator) ValidateItemCode(raw string, isService bool) ValidationResult {
	if isService {
		return v.ValidateSAC(raw)
	}
	return v.ValidateHSN(raw)
}

// ClassifyItemCode resolves a bare code without a goods/services flag:
// SAC grammar first (6 digits), else HSN. Ambiguous 6-digit codes are
// reported as SAC. Kept only for legacy data without the flag; prefer
// ValidateItemCode.
func (v *Validator) ClassifyItemCode(raw string) (kind string, res ValidationResult) {
	if r := v.ValidateSAC(raw); r.Valid {
		return "sac", r
	}
	if r := v.ValidateHSN(raw); r.Valid {
		return "hsn", r
	}
	return "", invalid("code is neither a valid SAC nor a valid HSN")
}

// ValidateStateCode accepts exactly 2 digits that key into the registry.
func (v *Validator) ValidateStateCode(raw string) ValidationResult {
	s := strings.TrimSpace(raw)
	if !stateCodePattern.MatchString(s) {
		return invalid("state code must be exactly 2 digits")
	}
	if !v.states.Exists(s) {
		return invalid(fmt.Sprintf("state code %q is not a known GST state code", s))
	}
	return valid(s)
}

// ValidateInvoiceNumber enforces the NIC document number constraints:
// non-empty, at most 16 characters, alphanumeric plus '/' and '-'.
func (v *Validator) ValidateInvoiceNumber(raw string) ValidationResult {
	s := strings.TrimSpace(raw)
	if s == "" {
		return invalid("invoice number is required")
	}
	if len(s) > MaxInvoiceNumberLen {
		return invalid(fmt.Sprintf("invoice number exceeds %d characters", MaxInvoiceNumberLen))
	}
	if !invoiceNoPattern.MatchString(s) {
		return invalid("invoice number contains characters outside A-Z, 0-9, '/' and '-'")
	}
	return valid(s)
}

// ValidateIRN accepts exactly 64 alphanumeric characters.
func (v *Validator) ValidateIRN(raw string) ValidationResult {
	s := strings.TrimSpace(raw)
	if !irnPattern.MatchString(s) {
		return invalid("IRN must be exactly 64 alphanumeric characters")
	}
	return valid(strings.ToLower(s))
}

// ValidateTaxRate checks membership in the notified GST rate slabs. Any other
// value is invalid even if numerically plausible.
func (v *Validator) ValidateTaxRate(rate float64) ValidationResult {
	if !AllowedRate(rate) {
		return invalid(fmt.Sprintf("%.2f%% is not a notified GST rate", rate))
	}
	return ValidationResult{Valid: true, Normalized: fmt.Sprintf("%g", rate)}
}
