package services

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	youtube "google.golang.org/api/youtube/v3"

	"mentorhub/models"
)

// maxVideosPerTerm bounds how many tutorials one stack term may contribute.
const maxVideosPerTerm = 2

type tutorialSearcher interface {
	Search(ctx context.Context, tech string) []models.Tutorial
}

// youtubeSearcher finds crash-course videos for a stack term. Like the web
// searcher, it degrades to an empty list on any failure.
type youtubeSearcher struct {
	svc      *youtube.Service
	disabled bool
	logger   *zap.Logger
}

func newYoutubeSearcher(ctx context.Context, apiKey string, logger *zap.Logger) *youtubeSearcher {
	if apiKey == "" {
		logger.Warn("search credentials not set, tutorial lookup disabled")
		return &youtubeSearcher{disabled: true, logger: logger}
	}

	svc, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		logger.Warn("youtube setup failed, tutorial lookup disabled", zap.Error(err))
		return &youtubeSearcher{disabled: true, logger: logger}
	}
	return &youtubeSearcher{svc: svc, logger: logger}
}

func (y *youtubeSearcher) Search(ctx context.Context, tech string) []models.Tutorial {
	if y.disabled {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, searchCallTimeout)
	defer cancel()

	resp, err := y.svc.Search.List([]string{"snippet"}).
		Q(tech + " crash course tutorial").
		MaxResults(maxVideosPerTerm).
		Type("video").
		Context(ctx).
		Do()
	if err != nil {
		y.logger.Warn("youtube search failed", zap.Error(err))
		return nil
	}

	videos := make([]models.Tutorial, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}
		thumbnail := ""
		if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.Medium != nil {
			thumbnail = item.Snippet.Thumbnails.Medium.Url
		}
		videos = append(videos, models.Tutorial{
			Title:     item.Snippet.Title,
			Thumbnail: thumbnail,
			Link:      "https://www.youtube.com/watch?v=" + item.Id.VideoId,
			Channel:   item.Snippet.ChannelTitle,
		})
	}
	return videos
}
