package letter

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/lettercraft/internal/errors"
)

// Known letter types. The field is free-form; these are the values the
// interactive form offers.
const (
	TypeCoverageDecision = "Coverage Decision"
	TypeDenial           = "Denial Letter"
	TypeInfoRequest      = "Request for Additional Information"
)

// LetterTypes lists the letter types offered by the interactive form.
var LetterTypes = []string{TypeCoverageDecision, TypeDenial, TypeInfoRequest}

// Defaults substituted for optional fields left blank.
const (
	defaultContactPhone = "N/A"
	defaultCustomNotes  = "None"
)

// Request carries the caller-supplied parameters for a single letter run.
// A normalized Request is immutable for the duration of the run.
type Request struct {
	LetterType           string
	CompanyName          string
	InsuredName          string
	PolicyNumber         string
	ClaimNumber          string
	ContactPhone         string
	ResponseDeadlineDays int
	CustomNotes          string
}

// Normalize returns a copy with every field trimmed and optional blank
// fields replaced by their documented defaults ("N/A" for the phone,
// "None" for the notes). A whitespace-only value counts as blank.
func (r Request) Normalize() Request {
	out := r
	out.LetterType = strings.TrimSpace(out.LetterType)
	out.CompanyName = strings.TrimSpace(out.CompanyName)
	out.InsuredName = strings.TrimSpace(out.InsuredName)
	out.PolicyNumber = strings.TrimSpace(out.PolicyNumber)
	out.ClaimNumber = strings.TrimSpace(out.ClaimNumber)
	out.ContactPhone = strings.TrimSpace(out.ContactPhone)
	out.CustomNotes = strings.TrimSpace(out.CustomNotes)

	if out.ContactPhone == "" {
		out.ContactPhone = defaultContactPhone
	}
	if out.CustomNotes == "" {
		out.CustomNotes = defaultCustomNotes
	}
	return out
}

// Validate checks required fields and the deadline range.
func (r Request) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"letter-type", r.LetterType},
		{"company", r.CompanyName},
		{"insured", r.InsuredName},
		{"policy", r.PolicyNumber},
		{"claim", r.ClaimNumber},
	}

	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return errors.NewInputFieldMissingError(f.name)
		}
	}

	if r.ResponseDeadlineDays < 1 || r.ResponseDeadlineDays > 90 {
		return errors.NewDeadlineInvalidError(r.ResponseDeadlineDays)
	}

	return nil
}

// renderInputs renders the request as the labeled list embedded in the
// generation prompt. Every field value appears verbatim.
func (r Request) renderInputs() string {
	return fmt.Sprintf(`- Letter Type: %s
- Company Name: %s
- Insured Name: %s
- Policy Number: %s
- Claim Number: %s
- Claims Dept Phone: %s
- Response Deadline (days): %d
- Additional Notes: %s`,
		r.LetterType,
		r.CompanyName,
		r.InsuredName,
		r.PolicyNumber,
		r.ClaimNumber,
		r.ContactPhone,
		r.ResponseDeadlineDays,
		r.CustomNotes,
	)
}
