package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// ErrModelDisabled is returned by every generation attempt while the service
// runs in degraded mode (missing GEMINI_API_KEY or failed client setup).
var ErrModelDisabled = errors.New("gemini model disabled")

const (
	modelCallTimeout  = 30 * time.Second
	modelProbeTimeout = 10 * time.Second
)

type textGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// geminiGenerator wraps the Gemini client with the model name chosen at
// startup and the process-lifetime degraded-mode flag.
type geminiGenerator struct {
	client    *genai.Client
	modelName string
	disabled  bool
	logger    *zap.Logger
}

func newGeminiGenerator(ctx context.Context, apiKey, defaultModel string, logger *zap.Logger) *geminiGenerator {
	if apiKey == "" {
		logger.Warn("GEMINI_API_KEY not set, switching to mock mode")
		return &geminiGenerator{disabled: true, logger: logger}
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		logger.Warn("gemini client setup failed, switching to mock mode", zap.Error(err))
		return &geminiGenerator{disabled: true, logger: logger}
	}

	name := pickModel(ctx, client, defaultModel)
	logger.Info("gemini connected", zap.String("model", name))
	return &geminiGenerator{client: client, modelName: name, logger: logger}
}

// pickModel probes the list-models endpoint and prefers a flash variant when
// one is available. Any probe failure keeps the configured default.
func pickModel(ctx context.Context, client *genai.Client, fallback string) string {
	ctx, cancel := context.WithTimeout(ctx, modelProbeTimeout)
	defer cancel()

	var available []string
	it := client.ListModels(ctx)
	for {
		m, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fallback
		}
		for _, method := range m.SupportedGenerationMethods {
			if method == "generateContent" {
				available = append(available, m.Name)
				break
			}
		}
	}

	for _, name := range available {
		if strings.Contains(name, "gemini-2.5-flash") {
			return "gemini-2.5-flash"
		}
	}
	for _, name := range available {
		if strings.Contains(name, "gemini-2.0-flash") {
			return "gemini-2.0-flash-exp"
		}
	}
	return fallback
}

// Generate runs one content generation and returns the model's text output.
// In mock mode it short-circuits without touching the network.
func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.disabled {
		return "", ErrModelDisabled
	}

	ctx, cancel := context.WithTimeout(ctx, modelCallTimeout)
	defer cancel()

	model := g.client.GenerativeModel(g.modelName)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		g.logger.Warn("ai generation failed", zap.Error(err))
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty model response")
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			return string(text), nil
		}
	}
	return "", errors.New("no text part in model response")
}
