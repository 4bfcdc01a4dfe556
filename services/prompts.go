package services

import (
	"fmt"
	"strings"

	"mentorhub/models"
)

// maxDigestLines caps how many evidence lines are interpolated into the
// validation prompt.
const maxDigestLines = 6

// evidenceDigest renders search results as "- title: snippet" lines for the
// model to judge novelty against.
func evidenceDigest(items []models.SearchItem) string {
	var lines []string
	for _, item := range items {
		if len(lines) == maxDigestLines {
			break
		}
		lines = append(lines, fmt.Sprintf("- %s: %s", item.Title, item.Snippet))
	}
	return strings.Join(lines, "\n")
}

func validatePrompt(abstract, evidence string) string {
	return fmt.Sprintf(`Act as a Senior CTO. Analyze this project idea: "%s"

EVIDENCE FROM WEB:
%s

TASK:
1. Score Complexity (0-100) based on technical difficulty.
2. Score Novelty (0-100) based on how unique it is compared to the evidence.
3. Determine Feasibility (0-100) for a small team.
4. Suggest 3 Unique Variants (Pivots) that make the idea stand out more.

STRICT JSON OUTPUT FORMAT:
{
    "original": {
        "novelty_score": (int),
        "complexity_score": (int),
        "feasibility_score": (int),
        "verdict": "Unique/Common",
        "reason": "A 2-sentence explanation of the analysis."
    },
    "variants": [
        { "title": "Variant Name", "desc": "Short description of the pivot.", "novelty": 90, "complexity": 80 }
    ]
}
Provide ONLY the JSON output without additional text or markdown formatting.`,
		abstract, evidence)
}

func roadmapPrompt(abstract, duration, techStack string) string {
	stackInstruction := "Suggest the best modern Tech Stack."
	if techStack != "" {
		stackInstruction = "Strictly use this Tech Stack: " + techStack
	}

	return fmt.Sprintf(`Act as a Technical PM. Create a roadmap for: "%s"
Timeline: %s.
%s

RETURN JSON ONLY:
{
    "stack": ["Tool 1", "Tool 2", "Tool 3"],
    "roadmap": [
        {"week": "Week 1", "phase": "Setup", "tasks": ["Task 1", "Task 2"]},
        {"week": "Week 2", "phase": "Backend", "tasks": ["Task 3", "Task 4"]}
    ]
}`,
		abstract, duration, stackInstruction)
}

func suggestPrompt(abstract, difficulty, duration, requirements string) string {
	return fmt.Sprintf(`Act as a Tech Architect.
Project: "%s"
Constraints: %s, %s, %s

Generate 3 distinct Tech Stacks.
KEEP IT CONCISE.
- "reason": Max 15 words.
- "pros": 2 bullet points (max 3 words each).

RETURN JSON ONLY:
{
    "suggestions": [
        {
            "name": "The Rapid Stack",
            "technologies": ["React", "Firebase", "Tailwind"],
            "reason": "Instant backend setup perfect for tight deadlines.",
            "pros": ["Fast Setup", "Real-time DB"],
            "cons": ["Vendor Lock-in"]
        }
    ]
}`,
		abstract, difficulty, duration, requirements)
}

func vivaPrompt(abstract string) string {
	return fmt.Sprintf(`Act as a strict External Examiner.
Project: "%s"

Generate 5 TOUGH technical questions.
Constraints:
1. Questions must be SHORT (Max 15 words).
2. Answers must be CONCISE (Max 2 sentences).

RETURN JSON ONLY:
{
    "questions": [
        { "q": "Why Firebase over MongoDB?", "a": "Built-in syncing." }
    ]
}`,
		abstract)
}
