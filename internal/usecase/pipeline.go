package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"BrightFeed/internal/classifier"
	"BrightFeed/internal/domain"
	"BrightFeed/internal/infrastructure/feed"
	"BrightFeed/internal/ports"
	"BrightFeed/internal/positivity"
)

// PipelineDeps wires the collaborators into the aggregation pipeline.
type PipelineDeps struct {
	Feeds    ports.FeedSource
	Analyzer ports.SentimentAnalyzer
	Store    ports.ArticleStore
	Filter   *positivity.Filter
	Sources  []domain.Source
	Logger   *slog.Logger
}

// Pipeline implements the fetch -> parse -> classify -> score -> filter
// workflow across all configured sources.
type Pipeline struct {
	feeds    ports.FeedSource
	analyzer ports.SentimentAnalyzer
	store    ports.ArticleStore
	filter   *positivity.Filter
	sources  []domain.Source
	logger   *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		feeds:    deps.Feeds,
		analyzer: deps.Analyzer,
		store:    deps.Store,
		filter:   deps.Filter,
		sources:  deps.Sources,
		logger:   deps.Logger,
	}
}

// FetchAll fans out one task per enabled source, fans the results back in,
// sorts them newest first, and returns only the articles the positivity
// gate admits. A failing source contributes zero articles and never aborts
// the round; the call returns once every task has finished.
func (p *Pipeline) FetchAll(ctx context.Context, sources []domain.Source) []domain.Article {
	results := make(chan []domain.Article)

	var wg sync.WaitGroup
	for _, source := range sources {
		if !source.Enabled {
			continue
		}
		wg.Add(1)
		go func(src domain.Source) {
			defer wg.Done()
			results <- p.fetchSource(ctx, src)
		}(source)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var candidates []domain.Article
	for batch := range results {
		candidates = append(candidates, batch...)
	}

	// Newest first; ties keep task-completion order, which callers must
	// not depend on.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].PublishedAt.After(candidates[j].PublishedAt)
	})

	admitted := p.filter.Filter(candidates)
	p.debug("fetch round complete",
		"sources", len(sources), "candidates", len(candidates), "admitted", len(admitted))
	return admitted
}

// Refresh runs one full aggregation cycle over the configured sources and
// hands the admitted articles to the store. An empty round is a no-content
// condition for the presentation side, not an error.
func (p *Pipeline) Refresh(ctx context.Context) error {
	admitted := p.FetchAll(ctx, p.sources)
	if len(admitted) == 0 {
		p.info("no content this cycle")
		return nil
	}

	if p.store == nil {
		return nil
	}
	if err := p.store.SaveArticles(ctx, admitted); err != nil {
		return fmt.Errorf("persist articles: %w", err)
	}
	return nil
}

func (p *Pipeline) fetchSource(ctx context.Context, source domain.Source) []domain.Article {
	items, err := p.feeds.FetchItems(ctx, source.FeedURL)
	if err != nil {
		p.warn("source fetch failed", "source", source.Name, "error", err)
		return nil
	}

	articles := make([]domain.Article, 0, len(items))
	for _, item := range items {
		articles = append(articles, p.assemble(ctx, item, source))
	}
	p.debug("source fetched", "source", source.Name, "articles", len(articles))
	return articles
}

// assemble turns a raw item plus its source descriptor into a candidate:
// stable id from the link, keyword-based category, extracted keywords, and
// the sentiment of "title. description". The verified flag stays false
// here; only the filter sets it.
func (p *Pipeline) assemble(ctx context.Context, item domain.RawItem, source domain.Source) domain.Article {
	category := classifier.Classify(item.Title, item.Description, source.DefaultCategory)
	sentiment := p.analyzer.Analyze(ctx, item.Title+". "+item.Description)

	return domain.Article{
		ID:             domain.ArticleID(item.Link),
		Title:          item.Title,
		Description:    item.Description,
		Content:        item.Content,
		Author:         item.Author,
		SourceName:     source.Name,
		SourceIcon:     source.Icon,
		ImageURL:       item.ImageURL,
		ArticleURL:     item.Link,
		PublishedAt:    feed.ParseDate(item.PubDate),
		FetchedAt:      time.Now(),
		Category:       category,
		Keywords:       classifier.ExtractKeywords(item.Title + " " + item.Description),
		SentimentScore: sentiment,
	}
}

func (p *Pipeline) debug(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}

func (p *Pipeline) info(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Pipeline) warn(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}
