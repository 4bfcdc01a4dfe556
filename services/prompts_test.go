package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"mentorhub/models"
)

func TestEvidenceDigest(t *testing.T) {
	items := []models.SearchItem{
		{Title: "bill-split", Snippet: "A bill splitting app", Link: "https://github.com/x/bill-split"},
		{Title: "splitwise-clone", Snippet: "Expense sharing", Link: "https://github.com/y/splitwise-clone"},
	}
	digest := evidenceDigest(items)
	assert.Equal(t, "- bill-split: A bill splitting app\n- splitwise-clone: Expense sharing", digest)
}

func TestEvidenceDigestTruncation(t *testing.T) {
	var items []models.SearchItem
	for i := 0; i < 10; i++ {
		items = append(items, models.SearchItem{Title: fmt.Sprintf("t%d", i), Snippet: "s"})
	}
	digest := evidenceDigest(items)
	assert.Len(t, strings.Split(digest, "\n"), maxDigestLines)
}

func TestEvidenceDigestEmpty(t *testing.T) {
	assert.Equal(t, "", evidenceDigest(nil))
}

func TestValidatePrompt(t *testing.T) {
	prompt := validatePrompt("A bill splitting app", "- bill-split: A bill splitting app")
	assert.Contains(t, prompt, `Analyze this project idea: "A bill splitting app"`)
	assert.Contains(t, prompt, "EVIDENCE FROM WEB:\n- bill-split: A bill splitting app")
	assert.Contains(t, prompt, `"novelty_score"`)
	assert.Contains(t, prompt, "ONLY the JSON output")
}

func TestRoadmapPromptStackInstruction(t *testing.T) {
	free := roadmapPrompt("An app", "3 Months", "")
	assert.Contains(t, free, "Suggest the best modern Tech Stack.")
	assert.Contains(t, free, "Timeline: 3 Months.")
	assert.Contains(t, free, "RETURN JSON ONLY")

	pinned := roadmapPrompt("An app", "6 Weeks", "Go, HTMX")
	assert.Contains(t, pinned, "Strictly use this Tech Stack: Go, HTMX")
	assert.NotContains(t, pinned, "Suggest the best modern Tech Stack.")
}

func TestSuggestPrompt(t *testing.T) {
	prompt := suggestPrompt("An app", "Beginner", "3 Months", "offline support")
	assert.Contains(t, prompt, "Constraints: Beginner, 3 Months, offline support")
	assert.Contains(t, prompt, "Generate 3 distinct Tech Stacks.")
	assert.Contains(t, prompt, "RETURN JSON ONLY")
}

func TestVivaPrompt(t *testing.T) {
	prompt := vivaPrompt("An app")
	assert.Contains(t, prompt, "Generate 5 TOUGH technical questions.")
	assert.Contains(t, prompt, "RETURN JSON ONLY")
}

func TestPromptsDeterministic(t *testing.T) {
	assert.Equal(t,
		validatePrompt("abstract", "evidence"),
		validatePrompt("abstract", "evidence"))
}
