package domain

import (
	"crypto/sha1"
	"encoding/hex"
	"time"
)

// Source is an immutable descriptor of one configured feed endpoint.
type Source struct {
	ID              string
	Name            string
	FeedURL         string
	Icon            string
	DefaultCategory Category
	Enabled         bool
}

// RawItem is one parsed feed entry before classification and scoring.
// PubDate keeps the raw wire string; parsing it is the aggregator's job.
type RawItem struct {
	Title       string
	Description string
	Link        string
	PubDate     string
	ImageURL    string
	Author      string
	Content     string
}

// Article is a fully assembled candidate: parsed, classified, and scored.
// IsVerifiedPositive is set only by the positivity filter; an article handed
// to the store always carries it as true.
type Article struct {
	ID          string
	Title       string
	Description string
	Content     string
	Author      string
	SourceName  string
	SourceIcon  string
	ImageURL    string
	ArticleURL  string
	PublishedAt time.Time
	FetchedAt   time.Time

	Category Category
	Keywords []string

	// SentimentScore lies in [-1, 1]. PositivityScore is the 0-100 composite
	// computed by the filter; it doubles as the display percentage.
	SentimentScore     float64
	PositivityScore    int
	IsVerifiedPositive bool
}

// ArticleID derives the stable article identifier from the article URL.
// Same URL always yields the same id, which is what lets the store
// upsert-if-absent across refresh cycles.
func ArticleID(articleURL string) string {
	sum := sha1.Sum([]byte(articleURL))
	return hex.EncodeToString(sum[:])
}
