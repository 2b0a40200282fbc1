// Package report builds the aggregated sentiment report for a company and
// renders its localized summary.
package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shrishail07/newsense/internal/analysis/sentiment"
	"github.com/shrishail07/newsense/internal/analysis/topics"
	"github.com/shrishail07/newsense/internal/feed"
	"github.com/shrishail07/newsense/pkg/models"
)

// ErrNoArticles signals that the fetch succeeded but returned zero articles.
// It is the absent-report sentinel: callers get no Report at all, not a
// Report full of zeros. Distinct from fetch errors, which carry their own
// wrapped cause.
var ErrNoArticles = errors.New("no articles found")

// Generator runs the fetch, classify, and aggregate pipeline. Each run is
// independent and holds no state across invocations.
type Generator struct {
	fetcher *feed.Fetcher
}

// NewGenerator creates a report generator on top of the given fetcher.
func NewGenerator(f *feed.Fetcher) *Generator {
	return &Generator{fetcher: f}
}

// Generate fetches recent news for the company and aggregates it into a
// Report. Returns ErrNoArticles when the feed had nothing for the query.
func (g *Generator) Generate(ctx context.Context, company string) (*models.Report, error) {
	articles, err := g.fetcher.Fetch(ctx, company)
	if err != nil {
		return nil, err
	}
	slog.Debug("fetched articles", "company", company, "count", len(articles))

	return Aggregate(company, articles)
}

// Aggregate classifies and tags each article and combines the results into
// one Report. Sentiment is scored on the title only (headlines are
// sentiment-dense); topics are tagged on title plus summary (summaries add
// topical context). An empty article list yields ErrNoArticles.
func Aggregate(company string, articles []models.Article) (*models.Report, error) {
	if len(articles) == 0 {
		return nil, fmt.Errorf("aggregate report for %q: %w", company, ErrNoArticles)
	}

	distribution := make(map[models.Sentiment]int)
	classified := make([]models.ClassifiedArticle, 0, len(articles))

	for _, a := range articles {
		class := sentiment.Classify(a.Title)
		distribution[class]++

		classified = append(classified, models.ClassifiedArticle{
			Article:   a,
			Sentiment: class,
			Topics:    topics.Extract(a.Title + " " + a.Summary),
		})
	}

	total := len(articles)
	return &models.Report{
		Company:       company,
		Articles:      classified,
		Distribution:  distribution,
		PositiveRatio: positiveRatio(distribution[models.SentimentPositive], total),
		TotalArticles: total,
	}, nil
}

// positiveRatio formats positive/total as a one-decimal percentage.
// The zero-total guard returns the literal "0%".
func positiveRatio(positive, total int) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", float64(positive)/float64(total)*100)
}
