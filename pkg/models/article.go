// Package models defines the core data structures used throughout newsense.
package models

// Sentiment is a three-class polarity bucket assigned to a headline.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
)

// Article is a single news item as delivered by the feed.
// It is created by the fetcher and read-only afterwards.
type Article struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Summary string `json:"summary"`
	Source  string `json:"source"`
}

// ClassifiedArticle is an Article enriched with sentiment and topic labels.
// Topics is never empty; unmatched articles carry the default label.
type ClassifiedArticle struct {
	Article
	Sentiment Sentiment `json:"sentiment"`
	Topics    []string  `json:"topics"`
}
