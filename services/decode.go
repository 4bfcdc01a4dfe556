package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"mentorhub/models"
)

// stripCodeFence removes Markdown code-block delimiters around the model's
// output. Stripping an already fence-free string is a no-op.
func stripCodeFence(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```JSON")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

// validationOutput is the shape the validation prompt demands from the model.
type validationOutput struct {
	Original models.ValidationVerdict `json:"original"`
	Variants []models.Variant         `json:"variants"`
}

// fallbackValidation is substituted whenever the model fails or lies about
// the output format.
func fallbackValidation() validationOutput {
	return validationOutput{
		Original: models.ValidationVerdict{Verdict: "Error", Reason: "AI Failed"},
		Variants: []models.Variant{},
	}
}

func decodeValidation(raw string) (validationOutput, error) {
	var out validationOutput
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &out); err != nil {
		return validationOutput{}, fmt.Errorf("invalid validation format: %w", err)
	}
	if out.Variants == nil {
		out.Variants = []models.Variant{}
	}
	return out, nil
}

// roadmapOutput is the model's half of a roadmap response; tutorials are
// merged in afterwards from video search.
type roadmapOutput struct {
	Stack   []string             `json:"stack"`
	Roadmap []models.RoadmapWeek `json:"roadmap"`
}

func decodeRoadmap(raw string) (roadmapOutput, error) {
	var out roadmapOutput
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &out); err != nil {
		return roadmapOutput{}, fmt.Errorf("invalid roadmap format: %w", err)
	}
	if out.Stack == nil {
		out.Stack = []string{}
	}
	if out.Roadmap == nil {
		out.Roadmap = []models.RoadmapWeek{}
	}
	return out, nil
}

func decodeSuggestions(raw string) (models.SuggestResponse, error) {
	var out models.SuggestResponse
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &out); err != nil {
		return models.SuggestResponse{}, fmt.Errorf("invalid suggestion format: %w", err)
	}
	if out.Suggestions == nil {
		out.Suggestions = []models.StackSuggestion{}
	}
	return out, nil
}

func decodeViva(raw string) (models.VivaResponse, error) {
	var out models.VivaResponse
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &out); err != nil {
		return models.VivaResponse{}, fmt.Errorf("invalid viva format: %w", err)
	}
	if len(out.Questions) == 0 {
		return models.VivaResponse{}, errors.New("invalid viva format: missing questions")
	}
	return out, nil
}
