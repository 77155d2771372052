package ports

import (
	"context"
	"time"

	"BrightFeed/internal/domain"
)

// FeedSource fetches and parses one feed endpoint into raw items.
type FeedSource interface {
	FetchItems(ctx context.Context, feedURL string) ([]domain.RawItem, error)
}

// SentimentAnalyzer scores text polarity in [-1, 1]. Implementations never
// fail: empty input and any underlying model error both yield 0 (neutral),
// so a broken scorer degrades the pipeline instead of losing articles.
type SentimentAnalyzer interface {
	Analyze(ctx context.Context, text string) float64
}

// ArticleStore persists admitted articles keyed by article id.
type ArticleStore interface {
	// Ensure creates the backing schema when it does not exist yet.
	Ensure(ctx context.Context) error
	// SaveArticles upserts-if-absent; rows whose id already exists are skipped.
	SaveArticles(ctx context.Context, articles []domain.Article) error
	// ListRecent returns verified-positive articles, newest publish date first.
	ListRecent(ctx context.Context, limit int) ([]domain.Article, error)
}

// Scheduler controls when refresh cycles execute.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
