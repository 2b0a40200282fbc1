// Package feed fetches recent news headlines for a company from the
// Google News RSS search feed.
package feed

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed/rss"

	"github.com/shrishail07/newsense/internal/infra"
	"github.com/shrishail07/newsense/pkg/models"
)

const (
	// DefaultURLTemplate is the Google News RSS search endpoint. The single
	// %s verb receives the URL-escaped company query.
	DefaultURLTemplate = "https://news.google.com/rss/search?q=%s&hl=en-US&gl=US&ceid=US:en"

	// DefaultTimeout bounds the whole fetch+parse round trip.
	DefaultTimeout = 10 * time.Second

	// DefaultMaxArticles is the number of feed items kept per query.
	DefaultMaxArticles = 5
)

// Placeholders substituted for missing feed sub-elements. Absence of a
// sub-element is expected feed behaviour, not an error.
const (
	placeholderTitle   = "No title"
	placeholderLink    = "#"
	placeholderSummary = "No summary available"
	placeholderSource  = "Unknown"
)

var feedHeaders = map[string]string{
	"Accept": "application/rss+xml, application/xml, text/xml, */*",
}

// Fetcher retrieves a bounded list of news items for a query string.
// It is stateless apart from its configuration; calls are independent.
type Fetcher struct {
	urlTemplate string
	timeout     time.Duration
	maxArticles int
	parser      *rss.Parser
}

// NewFetcher creates a fetcher with the default Google News configuration.
func NewFetcher() *Fetcher {
	return NewFetcherWithOptions(DefaultURLTemplate, DefaultTimeout, DefaultMaxArticles)
}

// NewFetcherWithOptions creates a fetcher with a custom feed URL template,
// timeout, and article cap. maxArticles must be >= 0; zero keeps no items.
func NewFetcherWithOptions(urlTemplate string, timeout time.Duration, maxArticles int) *Fetcher {
	if urlTemplate == "" {
		urlTemplate = DefaultURLTemplate
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if maxArticles < 0 {
		maxArticles = DefaultMaxArticles
	}
	return &Fetcher{
		urlTemplate: urlTemplate,
		timeout:     timeout,
		maxArticles: maxArticles,
		parser:      &rss.Parser{},
	}
}

// Fetch issues one GET to the feed endpoint and returns up to the configured
// number of articles in feed order, without local re-sorting. On network,
// status, or parse failure the whole call fails with a wrapped error and no
// articles. No retries.
func (f *Fetcher) Fetch(ctx context.Context, query string) ([]models.Article, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("fetch news: empty query")
	}

	feedURL := fmt.Sprintf(f.urlTemplate, url.QueryEscape(query))

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	body, _, err := infra.DoGet(ctx, feedURL, feedHeaders)
	if err != nil {
		return nil, fmt.Errorf("fetch news for %q: %w", query, err)
	}
	defer body.Close()

	parsed, err := f.parser.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse news feed for %q: %w", query, err)
	}

	items := parsed.Items
	if len(items) > f.maxArticles {
		items = items[:f.maxArticles]
	}

	articles := make([]models.Article, 0, len(items))
	for _, item := range items {
		articles = append(articles, articleFromItem(item))
	}
	return articles, nil
}

// articleFromItem maps one RSS item to an Article, substituting placeholders
// for missing sub-elements.
func articleFromItem(item *rss.Item) models.Article {
	a := models.Article{
		Title:   placeholderTitle,
		Link:    placeholderLink,
		Summary: placeholderSummary,
		Source:  placeholderSource,
	}
	if item == nil {
		return a
	}

	if item.Title != "" {
		a.Title = strings.TrimSpace(item.Title)
	}
	if item.Link != "" {
		a.Link = item.Link
	}
	if summary := cleanHTML(item.Description); summary != "" {
		a.Summary = summary
	}
	if item.Source != nil && item.Source.Title != "" {
		a.Source = strings.TrimSpace(item.Source.Title)
	}
	return a
}

// cleanHTML strips HTML tags from a string using goquery. Google News
// descriptions arrive as HTML fragments.
func cleanHTML(s string) string {
	if s == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<body>" + s + "</body>"))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(doc.Text())
}
