package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"BrightFeed/internal/domain"
	"BrightFeed/internal/ports"
)

const schema = `CREATE TABLE IF NOT EXISTS articles (
    id                   TEXT PRIMARY KEY,
    title                TEXT NOT NULL,
    description          TEXT NOT NULL DEFAULT '',
    content              TEXT NOT NULL DEFAULT '',
    author               TEXT NOT NULL DEFAULT '',
    source_name          TEXT NOT NULL,
    source_icon          TEXT NOT NULL DEFAULT '',
    image_url            TEXT NOT NULL DEFAULT '',
    article_url          TEXT NOT NULL,
    published_at         TIMESTAMPTZ NOT NULL,
    fetched_at           TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    category             TEXT NOT NULL,
    keywords             TEXT[] NOT NULL DEFAULT '{}',
    sentiment_score      DOUBLE PRECISION NOT NULL,
    positivity_score     INTEGER NOT NULL,
    is_verified_positive BOOLEAN NOT NULL
);
CREATE INDEX IF NOT EXISTS articles_published_at_idx ON articles (published_at DESC)`

// PostgresRepository persists admitted articles into Postgres.
type PostgresRepository struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

var _ ports.ArticleStore = (*PostgresRepository)(nil)

// NewPostgresRepository wires a sql.DB implementation.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Ensure creates the articles table when it does not exist yet.
func (r *PostgresRepository) Ensure(ctx context.Context) error {
	if r.db == nil {
		return nil
	}
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// SaveArticles inserts each article, skipping ids that already exist. The
// pipeline re-fetches everything each cycle, so insert-if-absent keeps the
// table idempotent without the core tracking what it has seen before.
func (r *PostgresRepository) SaveArticles(ctx context.Context, articles []domain.Article) error {
	if r.db == nil || len(articles) == 0 {
		return nil
	}

	for _, a := range articles {
		query, args, err := r.builder.
			Insert("articles").
			Columns("id", "title", "description", "content", "author",
				"source_name", "source_icon", "image_url", "article_url",
				"published_at", "fetched_at", "category", "keywords",
				"sentiment_score", "positivity_score", "is_verified_positive").
			Values(a.ID, a.Title, a.Description, a.Content, a.Author,
				a.SourceName, a.SourceIcon, a.ImageURL, a.ArticleURL,
				a.PublishedAt, a.FetchedAt, string(a.Category), pq.StringArray(a.Keywords),
				a.SentimentScore, a.PositivityScore, a.IsVerifiedPositive).
			Suffix("ON CONFLICT (id) DO NOTHING").
			ToSql()
		if err != nil {
			return fmt.Errorf("build insert: %w", err)
		}

		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert article %s: %w", a.ID, err)
		}
	}

	return nil
}

// ListRecent returns verified-positive articles, newest publish date first.
func (r *PostgresRepository) ListRecent(ctx context.Context, limit int) ([]domain.Article, error) {
	if r.db == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 50
	}

	query, args, err := r.builder.
		Select("id", "title", "description", "content", "author",
			"source_name", "source_icon", "image_url", "article_url",
			"published_at", "fetched_at", "category", "keywords",
			"sentiment_score", "positivity_score", "is_verified_positive").
		From("articles").
		Where(sq.Eq{"is_verified_positive": true}).
		OrderBy("published_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	var articles []domain.Article
	for rows.Next() {
		var (
			a        domain.Article
			category string
			keywords pq.StringArray
		)
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.Content, &a.Author,
			&a.SourceName, &a.SourceIcon, &a.ImageURL, &a.ArticleURL,
			&a.PublishedAt, &a.FetchedAt, &category, &keywords,
			&a.SentimentScore, &a.PositivityScore, &a.IsVerifiedPositive); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		a.Category = domain.Category(category)
		a.Keywords = keywords
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return articles, nil
}
