package models

// Report is the aggregated sentiment analysis for one company query.
// Invariant: sum of Distribution values == TotalArticles == len(Articles).
// A run that found no articles yields no Report at all (a sentinel error),
// never a Report with zero counts.
type Report struct {
	Company       string              `json:"company"`
	Articles      []ClassifiedArticle `json:"articles"`
	Distribution  map[Sentiment]int   `json:"sentiment_distribution"`
	PositiveRatio string              `json:"positive_ratio"` // e.g. "66.7%", "0%" when empty
	TotalArticles int                 `json:"total_articles"`
}
