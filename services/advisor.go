package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"mentorhub/config"
	"mentorhub/models"
)

const (
	// maxEvidenceRefs caps the evidence list attached to /validate.
	maxEvidenceRefs = 4
	// maxTutorials caps the tutorial list attached to /roadmap.
	maxTutorials = 3
	// maxTutorialTerms caps how many stack terms get a video lookup.
	maxTutorialTerms = 2

	evidenceResults = 5
)

// Advisor holds the process-lifetime handles behind the four endpoints. All
// fields are established at startup and never mutated afterwards, so
// concurrent requests need no locking.
type Advisor struct {
	gen    textGenerator
	search evidenceSearcher
	videos tutorialSearcher
	logger *zap.Logger
}

func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) *Advisor {
	return &Advisor{
		gen:    newGeminiGenerator(ctx, cfg.Gemini.ApiKey, cfg.Gemini.Model, logger),
		search: newGoogleSearcher(ctx, cfg.Search.ApiKey, cfg.Search.EngineId, logger),
		videos: newYoutubeSearcher(ctx, cfg.Search.ApiKey, logger),
		logger: logger,
	}
}

// Validate scores the abstract against web evidence. It never fails: model or
// parse errors degrade to the zeroed "AI Failed" verdict, and missing
// evidence is a normal outcome.
func (a *Advisor) Validate(ctx context.Context, req models.AdvisorRequest) models.ValidateResponse {
	query := fmt.Sprintf("site:github.com OR site:arxiv.org %s project implementation", req.Abstract)
	evidence := a.search.Search(ctx, query, evidenceResults)

	out := fallbackValidation()
	raw, err := a.gen.Generate(ctx, validatePrompt(req.Abstract, evidenceDigest(evidence)))
	if err == nil {
		if decoded, derr := decodeValidation(raw); derr == nil {
			out = decoded
		} else {
			a.logger.Warn("validation response rejected", zap.Error(derr))
		}
	}

	refs := make([]models.EvidenceRef, 0, maxEvidenceRefs)
	for _, item := range evidence {
		if item.Title == "" || item.Link == "" {
			continue
		}
		refs = append(refs, models.EvidenceRef{Title: item.Title, Link: item.Link})
		if len(refs) == maxEvidenceRefs {
			break
		}
	}

	return models.ValidateResponse{
		Original: out.Original,
		Variants: out.Variants,
		Evidence: refs,
	}
}

// Roadmap plans the project week by week and attaches tutorial videos for the
// suggested stack. Unlike Validate, a model or parse failure here is
// surfaced to the handler.
func (a *Advisor) Roadmap(ctx context.Context, req models.AdvisorRequest) (models.RoadmapResponse, error) {
	raw, err := a.gen.Generate(ctx, roadmapPrompt(req.Abstract, req.Duration, req.TechStack))
	if err != nil {
		return models.RoadmapResponse{}, fmt.Errorf("roadmap generation failed: %w", err)
	}

	out, err := decodeRoadmap(raw)
	if err != nil {
		a.logger.Warn("roadmap response rejected", zap.Error(err))
		return models.RoadmapResponse{}, err
	}

	tutorials := make([]models.Tutorial, 0, maxTutorials)
	terms := out.Stack
	if len(terms) > maxTutorialTerms {
		terms = terms[:maxTutorialTerms]
	}
	for _, tech := range terms {
		tutorials = append(tutorials, a.videos.Search(ctx, tech)...)
	}
	if len(tutorials) > maxTutorials {
		tutorials = tutorials[:maxTutorials]
	}

	return models.RoadmapResponse{
		Stack:     out.Stack,
		Roadmap:   out.Roadmap,
		Tutorials: tutorials,
	}, nil
}

// Suggest proposes tech stacks within the caller's constraints. Failures
// degrade to an empty suggestion list.
func (a *Advisor) Suggest(ctx context.Context, req models.StackRequest) models.SuggestResponse {
	fallback := models.SuggestResponse{Suggestions: []models.StackSuggestion{}}

	raw, err := a.gen.Generate(ctx, suggestPrompt(req.Abstract, req.Difficulty, req.Duration, req.Requirements))
	if err != nil {
		return fallback
	}

	out, err := decodeSuggestions(raw)
	if err != nil {
		a.logger.Warn("suggestion response rejected", zap.Error(err))
		return fallback
	}
	return out
}

// Viva generates mock examiner questions. Model or parse failures are
// surfaced to the handler.
func (a *Advisor) Viva(ctx context.Context, req models.AdvisorRequest) (models.VivaResponse, error) {
	raw, err := a.gen.Generate(ctx, vivaPrompt(req.Abstract))
	if err != nil {
		return models.VivaResponse{}, fmt.Errorf("viva generation failed: %w", err)
	}

	out, err := decodeViva(raw)
	if err != nil {
		a.logger.Warn("viva response rejected", zap.Error(err))
		return models.VivaResponse{}, err
	}
	return out, nil
}
