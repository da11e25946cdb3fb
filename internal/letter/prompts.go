package letter

import "fmt"

// buildGeneratePrompt assembles the Stage 1 prompt: the directive, the
// literal canonical instructions, and the request fields as a labeled list.
func buildGeneratePrompt(instructions string, req Request) string {
	return fmt.Sprintf(`You MUST follow the canonical instruction set below.

CANONICAL INSTRUCTIONS:
%s

INPUTS:
%s

TASK:
Generate a complete insurance letter with required sections, placeholders resolved, and type-specific content. Include compliance/regulatory notice per canonical instructions.`,
		instructions, req.renderInputs())
}

// buildFormatPrompt assembles the Stage 2 prompt: the formatting checklist
// plus the Stage 1 draft as context.
func buildFormatPrompt(draft string) string {
	return fmt.Sprintf(`Take the draft below and format it professionally.
Requirements:
- Clear header block (company/address/date if required)
- Subject line
- Section headings and separators
- Consistent spacing
- Keep all content; do not remove compliance language.
Return the formatted letter only.

DRAFT:
%s`, draft)
}

// buildCompliancePrompt assembles the Stage 3 prompt: the compliance
// checklist plus the Stage 2 output as context. The deadline is rendered
// as the raw day count.
func buildCompliancePrompt(formatted string, req Request) string {
	return fmt.Sprintf(`Review the formatted letter below for compliance.
Checklist:
- Company name, policy number, claim number present
- Correct letter type cues present
- Compliance/regulatory notice present
- Appeal/reconsideration language present when applicable
- Mentions response deadline of %d days and contact phone %s

If anything is missing or weak, add/strengthen it while staying professional.
Return ONLY the final compliant letter.

FORMATTED LETTER:
%s`, req.ResponseDeadlineDays, req.ContactPhone, formatted)
}
