package services

import (
	"context"
	"time"

	"go.uber.org/zap"
	customsearch "google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"

	"mentorhub/models"
)

const searchCallTimeout = 15 * time.Second

type evidenceSearcher interface {
	Search(ctx context.Context, query string, num int64) []models.SearchItem
}

// googleSearcher queries the Custom Search JSON API. "No evidence" is a
// normal outcome here: every failure path returns an empty list.
type googleSearcher struct {
	svc      *customsearch.Service
	engineId string
	disabled bool
	logger   *zap.Logger
}

func newGoogleSearcher(ctx context.Context, apiKey, engineId string, logger *zap.Logger) *googleSearcher {
	if apiKey == "" || engineId == "" {
		logger.Warn("search credentials not set, web evidence disabled")
		return &googleSearcher{disabled: true, logger: logger}
	}

	svc, err := customsearch.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		logger.Warn("custom search setup failed, web evidence disabled", zap.Error(err))
		return &googleSearcher{disabled: true, logger: logger}
	}
	return &googleSearcher{svc: svc, engineId: engineId, logger: logger}
}

func (s *googleSearcher) Search(ctx context.Context, query string, num int64) []models.SearchItem {
	if s.disabled {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, searchCallTimeout)
	defer cancel()

	resp, err := s.svc.Cse.List().Cx(s.engineId).Q(query).Num(num).Context(ctx).Do()
	if err != nil {
		s.logger.Warn("google search failed", zap.Error(err))
		return nil
	}

	items := make([]models.SearchItem, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, models.SearchItem{
			Title:   item.Title,
			Snippet: item.Snippet,
			Link:    item.Link,
		})
	}
	return items
}
