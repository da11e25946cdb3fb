package letter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildGeneratePromptStructure(t *testing.T) {
	req := testRequest()
	prompt := buildGeneratePrompt("RULE: always cite the claim number.", req)

	assert.Contains(t, prompt, "You MUST follow the canonical instruction set below.")
	assert.Contains(t, prompt, "CANONICAL INSTRUCTIONS:\nRULE: always cite the claim number.")
	assert.Contains(t, prompt, "INPUTS:\n- Letter Type: Denial Letter")
	assert.Contains(t, prompt, "TASK:")
	assert.Contains(t, prompt, "Include compliance/regulatory notice per canonical instructions.")
}

func TestBuildFormatPromptEmbedsDraft(t *testing.T) {
	prompt := buildFormatPrompt("Dear Ms. Brown, your claim...")

	assert.Contains(t, prompt, "format it professionally")
	assert.Contains(t, prompt, "do not remove compliance language")
	assert.Contains(t, prompt, "DRAFT:\nDear Ms. Brown, your claim...")
}

func TestBuildCompliancePromptRendersDeadlineAndPhone(t *testing.T) {
	req := testRequest()
	req.ResponseDeadlineDays = 45
	prompt := buildCompliancePrompt("THE FORMATTED LETTER", req)

	assert.Contains(t, prompt, "Mentions response deadline of 45 days and contact phone 1-800-555-1234")
	assert.Contains(t, prompt, "Return ONLY the final compliant letter.")
	assert.Contains(t, prompt, "FORMATTED LETTER:\nTHE FORMATTED LETTER")
	assert.NotContains(t, prompt, "{45}", "deadline renders as a plain number")
}
