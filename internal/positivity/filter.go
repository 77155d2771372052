package positivity

import (
	"math"
	"regexp"
	"strings"

	"BrightFeed/internal/domain"
)

// Filter is the layered admission gate. Its keyword data is compiled once
// at construction and read-only afterwards, so a single instance is safe to
// share across concurrent pipeline runs.
type Filter struct {
	policy      Policy
	blockedExpr *regexp.Regexp
}

// NewFilter compiles the policy. The blocklist matches on word boundaries so
// blocked roots embedded in longer words ("therapist") stay clean.
func NewFilter(policy Policy) *Filter {
	return &Filter{
		policy:      policy,
		blockedExpr: compileBlocklist(policy.BlockedKeywords),
	}
}

func compileBlocklist(words []string) *regexp.Regexp {
	if len(words) == 0 {
		return nil
	}
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(strings.ToLower(w))
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

// Filter evaluates every article and returns the admitted ones with their
// verified flag and display score set.
func (f *Filter) Filter(articles []domain.Article) []domain.Article {
	admitted := make([]domain.Article, 0, len(articles))
	for _, article := range articles {
		passes, score := f.Evaluate(&article)
		if !passes {
			continue
		}
		article.IsVerifiedPositive = true
		article.PositivityScore = score
		admitted = append(admitted, article)
	}
	return admitted
}

// Evaluate runs the four layers in order; any failing layer short-circuits
// with (false, 0). The returned score is the 0-100 composite, which is also
// the user-facing positivity percentage.
func (f *Filter) Evaluate(article *domain.Article) (bool, int) {
	text := strings.ToLower(article.Title + " " + article.Description + " " + article.Content)

	if f.blockedExpr != nil && f.blockedExpr.MatchString(text) {
		return false, 0
	}

	if article.SentimentScore < f.policy.SentimentFloor {
		return false, 0
	}

	positives := f.countPositives(text)
	if positives == 0 {
		return false, 0
	}

	score := f.calculateScore(article.SentimentScore, positives, f.hasStrongSignal(text))
	if score < f.policy.AdmissionThreshold {
		return false, 0
	}
	return true, score
}

// calculateScore composes: sentiment normalized to 0-40, 5 points per
// distinct positive keyword capped at 30, a 20-point no-blocked-content
// term, and 10 points for a strong signal.
func (f *Filter) calculateScore(sentiment float64, positives int, strong bool) int {
	score := ((clamp(sentiment) + 1) / 2) * 40

	signal := float64(positives * 5)
	if signal > 30 {
		signal = 30
	}
	score += signal

	score += 20

	if strong {
		score += 10
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return int(math.Round(score))
}

func (f *Filter) countPositives(text string) int {
	count := 0
	for _, keyword := range f.policy.PositiveKeywords {
		if strings.Contains(text, strings.ToLower(keyword)) {
			count++
		}
	}
	return count
}

func (f *Filter) hasStrongSignal(text string) bool {
	for _, keyword := range f.policy.StrongKeywords {
		if strings.Contains(text, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}

func clamp(sentiment float64) float64 {
	if sentiment < -1 {
		return -1
	}
	if sentiment > 1 {
		return 1
	}
	return sentiment
}
