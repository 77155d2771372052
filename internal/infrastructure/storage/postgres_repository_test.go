package storage

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"BrightFeed/internal/domain"
)

func testArticle() domain.Article {
	return domain.Article{
		ID:                 domain.ArticleID("https://example.org/story"),
		Title:              "Heartwarming rescue",
		Description:        "a community effort",
		SourceName:         "Good News Network",
		ArticleURL:         "https://example.org/story",
		PublishedAt:        time.Date(2025, time.June, 2, 10, 0, 0, 0, time.UTC),
		FetchedAt:          time.Date(2025, time.June, 2, 10, 5, 0, 0, time.UTC),
		Category:           domain.CategoryGoodNews,
		Keywords:           []string{"rescue", "community"},
		SentimentScore:     0.8,
		PositivityScore:    83,
		IsVerifiedPositive: true,
	}
}

func TestEnsureCreatesSchema(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS articles").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewPostgresRepository(db)
	require.NoError(t, repo.Ensure(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveArticlesSkipsExistingIDs(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	a := testArticle()

	mock.ExpectExec(`INSERT INTO articles .* ON CONFLICT \(id\) DO NOTHING`).
		WithArgs(a.ID, a.Title, a.Description, a.Content, a.Author,
			a.SourceName, a.SourceIcon, a.ImageURL, a.ArticleURL,
			a.PublishedAt, a.FetchedAt, string(a.Category), pq.StringArray(a.Keywords),
			a.SentimentScore, a.PositivityScore, a.IsVerifiedPositive).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewPostgresRepository(db)
	require.NoError(t, repo.SaveArticles(context.Background(), []domain.Article{a}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListRecentOrdersByPublishDate(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	a := testArticle()

	columns := []string{"id", "title", "description", "content", "author",
		"source_name", "source_icon", "image_url", "article_url",
		"published_at", "fetched_at", "category", "keywords",
		"sentiment_score", "positivity_score", "is_verified_positive"}

	mock.ExpectQuery(`SELECT .* FROM articles WHERE is_verified_positive = \$1 ORDER BY published_at DESC LIMIT 10`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(
			a.ID, a.Title, a.Description, a.Content, a.Author,
			a.SourceName, a.SourceIcon, a.ImageURL, a.ArticleURL,
			a.PublishedAt, a.FetchedAt, string(a.Category), "{rescue,community}",
			a.SentimentScore, a.PositivityScore, a.IsVerifiedPositive))

	repo := NewPostgresRepository(db)
	got, err := repo.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, a.ID, got[0].ID)
	require.Equal(t, a.Keywords, got[0].Keywords)
	require.Equal(t, domain.CategoryGoodNews, got[0].Category)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveArticlesNoRowsIsNoop(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresRepository(db)
	require.NoError(t, repo.SaveArticles(context.Background(), nil))
	require.NoError(t, mock.ExpectationsWereMet())
}
