package sentiment

import (
	"testing"

	"github.com/shrishail07/newsense/pkg/models"
)

func TestFromScoreThresholds(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  models.Sentiment
	}{
		{"clearly positive", 0.4, models.SentimentPositive},
		{"clearly negative", -0.4, models.SentimentNegative},
		{"zero", 0, models.SentimentNeutral},
		{"just above positive threshold", 0.1001, models.SentimentPositive},
		{"just below negative threshold", -0.1001, models.SentimentNegative},
		// Boundary values are Neutral: the comparisons are strict.
		{"exactly positive threshold", 0.1, models.SentimentNeutral},
		{"exactly negative threshold", -0.1, models.SentimentNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromScore(tt.score); got != tt.want {
				t.Errorf("FromScore(%v): got %s, want %s", tt.score, got, tt.want)
			}
		})
	}
}

func TestScoreRange(t *testing.T) {
	texts := []string{
		"Tesla stock soars on EV breakthrough",
		"Company faces fraud investigation after terrible losses",
		"Quarterly report released",
		"",
	}
	for _, text := range texts {
		score := Score(text)
		if score < -1 || score > 1 {
			t.Errorf("Score(%q) = %v, outside [-1, 1]", text, score)
		}
	}
}

func TestScoreEmptyText(t *testing.T) {
	if got := Score("   "); got != 0 {
		t.Errorf("Score of whitespace: got %v, want 0", got)
	}
}

func TestClassifyPositive(t *testing.T) {
	got := Classify("Excellent results: wonderful growth and great success")
	if got != models.SentimentPositive {
		t.Errorf("expected Positive, got %s", got)
	}
}

func TestClassifyNegative(t *testing.T) {
	got := Classify("Horrible crash: terrible losses and an awful outlook")
	if got != models.SentimentNegative {
		t.Errorf("expected Negative, got %s", got)
	}
}

func TestClassifyEmptyIsNeutral(t *testing.T) {
	if got := Classify(""); got != models.SentimentNeutral {
		t.Errorf("expected Neutral for empty text, got %s", got)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	const text = "Tesla battery plant opens"
	first := Classify(text)
	for i := 0; i < 5; i++ {
		if got := Classify(text); got != first {
			t.Fatalf("classification changed between calls: %s then %s", first, got)
		}
	}
}
