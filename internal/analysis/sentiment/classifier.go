// Package sentiment classifies text into three polarity buckets using the
// VADER lexical scorer. Classification is deterministic and never fails
// visibly: text with no usable signal comes back Neutral.
package sentiment

import (
	"strings"

	"github.com/jonreiter/govader"

	"github.com/shrishail07/newsense/pkg/models"
)

// Fixed bucketing thresholds. The comparisons are strict, so a score of
// exactly +0.1 or -0.1 is Neutral.
const (
	positiveThreshold = 0.1
	negativeThreshold = -0.1
)

var analyzer = govader.NewSentimentIntensityAnalyzer()

// Score returns the compound polarity score in [-1, 1] for the given text.
// Empty or whitespace-only text scores 0 without consulting the analyzer.
func Score(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	return analyzer.PolarityScores(text).Compound
}

// FromScore buckets a polarity score into one of the three classes.
func FromScore(score float64) models.Sentiment {
	switch {
	case score > positiveThreshold:
		return models.SentimentPositive
	case score < negativeThreshold:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

// Classify scores the text and buckets the result.
func Classify(text string) models.Sentiment {
	return FromScore(Score(text))
}
