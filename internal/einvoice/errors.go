package einvoice

import (
	"fmt"
	"strings"
)

// FieldError is a single payload validation failure tied to a field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationErrors is the full list of validation failures for a build
// attempt. The caller gets every mismatch, not a single opaque failure.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fe.Field+": "+fe.Reason)
	}
	return "einvoice: payload validation failed: " + strings.Join(parts, "; ")
}

// PreconditionError reports a lifecycle transition attempted from an invalid
// state or outside the cancellation window. It is always raised before any
// call to the authority.
type PreconditionError struct {
	Op     string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("einvoice: %s precondition failed: %s", e.Op, e.Reason)
}

// AuthorityError reports a rejection, timeout or transport failure from the
// e-invoicing authority. Detail carries the authority's error text verbatim.
type AuthorityError struct {
	Op     string
	Detail string
}

func (e *AuthorityError) Error() string {
	return fmt.Sprintf("einvoice: authority %s failed: %s", e.Op, e.Detail)
}
