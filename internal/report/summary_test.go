package report

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shrishail07/newsense/pkg/models"
)

func sampleReport(articleCount int) *models.Report {
	articles := make([]models.ClassifiedArticle, 0, articleCount)
	dist := map[models.Sentiment]int{}
	for i := 0; i < articleCount; i++ {
		class := models.SentimentNeutral
		switch i % 3 {
		case 0:
			class = models.SentimentPositive
		case 1:
			class = models.SentimentNegative
		}
		dist[class]++
		articles = append(articles, models.ClassifiedArticle{
			Article: models.Article{
				Title:   fmt.Sprintf("Headline %d", i+1),
				Link:    "#",
				Summary: "No summary available",
				Source:  "Unknown",
			},
			Sentiment: class,
			Topics:    []string{"General"},
		})
	}
	return &models.Report{
		Company:       "Tesla",
		Articles:      articles,
		Distribution:  dist,
		PositiveRatio: "0%",
		TotalArticles: articleCount,
	}
}

func TestSummarizeNilReport(t *testing.T) {
	if got := Summarize(nil); got != NoReportMessage {
		t.Errorf("got %q, want the fixed fallback message", got)
	}
}

func TestSummarizeCounts(t *testing.T) {
	r := sampleReport(5) // 2 positive, 2 negative, 1 neutral
	got := Summarize(r)

	for _, want := range []string{
		"Tesla के लिए समाचार विश्लेषण:",
		"कुल लेख: 5",
		"सकारात्मक: 2",
		"नकारात्मक: 2",
		"तटस्थ: 1",
		"प्रमुख समाचार:",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
}

func TestSummarizeCapsArticleBreakdown(t *testing.T) {
	got := Summarize(sampleReport(5))

	if !strings.Contains(got, "3. Headline 3") {
		t.Errorf("summary should list the third article:\n%s", got)
	}
	if strings.Contains(got, "Headline 4") {
		t.Errorf("summary must cap the breakdown at %d articles:\n%s", summaryArticleCap, got)
	}
}

func TestSummarizeTranslatesSentimentLabels(t *testing.T) {
	r := sampleReport(3)
	got := Summarize(r)

	// First article is Positive, second Negative, third Neutral.
	if !strings.Contains(got, "1. Headline 1\nभावना: सकारात्मक") {
		t.Errorf("missing translated positive label:\n%s", got)
	}
	if !strings.Contains(got, "2. Headline 2\nभावना: नकारात्मक") {
		t.Errorf("missing translated negative label:\n%s", got)
	}
	if !strings.Contains(got, "3. Headline 3\nभावना: तटस्थ") {
		t.Errorf("missing translated neutral label:\n%s", got)
	}
}

func TestSummarizeDeterministic(t *testing.T) {
	r := sampleReport(4)
	if Summarize(r) != Summarize(r) {
		t.Error("summary output differs across calls for the same report")
	}
}

func TestSummarizeFewerArticlesThanCap(t *testing.T) {
	got := Summarize(sampleReport(1))
	if !strings.Contains(got, "1. Headline 1") {
		t.Errorf("single article should still appear:\n%s", got)
	}
	if strings.Contains(got, "2. ") {
		t.Errorf("no second entry expected:\n%s", got)
	}
}
