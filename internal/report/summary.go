package report

import (
	"fmt"
	"strings"

	"github.com/shrishail07/newsense/pkg/models"
)

// summaryArticleCap limits the per-article breakdown in the summary.
const summaryArticleCap = 3

// NoReportMessage is the fixed fallback when there is no report to
// summarize ("no report available").
const NoReportMessage = "कोई रिपोर्ट उपलब्ध नहीं है"

// sentimentLabels is the fixed Hindi translation of sentiment classes.
// Initialized once, never mutated.
var sentimentLabels = map[models.Sentiment]string{
	models.SentimentPositive: "सकारात्मक",
	models.SentimentNegative: "नकारात्मक",
	models.SentimentNeutral:  "तटस्थ",
}

// Summarize renders a Report as Hindi prose: total article count, per-class
// counts, then the first few articles with translated sentiment labels.
// A nil report degrades to the fixed fallback message. Output is plain text
// with line breaks and is deterministic for a given report.
func Summarize(r *models.Report) string {
	if r == nil {
		return NoReportMessage
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s के लिए समाचार विश्लेषण:\n", r.Company)
	fmt.Fprintf(&b, "कुल लेख: %d\n", r.TotalArticles)
	fmt.Fprintf(&b, "सकारात्मक: %d\n", r.Distribution[models.SentimentPositive])
	fmt.Fprintf(&b, "नकारात्मक: %d\n", r.Distribution[models.SentimentNegative])
	fmt.Fprintf(&b, "तटस्थ: %d\n", r.Distribution[models.SentimentNeutral])
	b.WriteString("\nप्रमुख समाचार:\n")

	for i, article := range r.Articles {
		if i == summaryArticleCap {
			break
		}
		label, ok := sentimentLabels[article.Sentiment]
		if !ok {
			label = string(article.Sentiment)
		}
		fmt.Fprintf(&b, "%d. %s\nभावना: %s\n", i+1, article.Title, label)
	}

	return b.String()
}
