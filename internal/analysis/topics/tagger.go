// Package topics tags text with topical labels via keyword matching.
package topics

import "strings"

// DefaultLabel is assigned when no topic keyword matches, or when the
// text is empty.
const DefaultLabel = "General"

// Topic pairs a label with the keyword substrings that select it.
type Topic struct {
	Label    string   `json:"label"`
	Keywords []string `json:"keywords"`
}

// table is the fixed topic table, matched in definition order. Keywords are
// lowercase; matching is case-insensitive substring containment, not
// word-boundary-aware. Initialized once, never mutated.
var table = []Topic{
	{"Electric Vehicles", []string{"ev", "electric vehicle", "battery", "charging"}},
	{"Stock Market", []string{"stock", "share", "investment", "market cap"}},
	{"Innovation", []string{"innovation", "breakthrough", "new tech", "invention"}},
	{"Regulations", []string{"regulation", "law", "legal", "compliance"}},
	{"Autonomous Vehicles", []string{"self-driving", "autonomous", "fsd", "autopilot"}},
}

// Extract returns the labels of every topic whose keyword set matches the
// text, in table order. A text may match several topics at once. No match
// (or empty text) yields exactly the default label.
func Extract(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{DefaultLabel}
	}

	lower := strings.ToLower(text)
	var matched []string
	for _, topic := range table {
		for _, kw := range topic.Keywords {
			if strings.Contains(lower, kw) {
				matched = append(matched, topic.Label)
				break
			}
		}
	}

	if len(matched) == 0 {
		return []string{DefaultLabel}
	}
	return matched
}

// Table returns a copy of the topic table for read-only display.
func Table() []Topic {
	out := make([]Topic, len(table))
	for i, topic := range table {
		out[i] = Topic{
			Label:    topic.Label,
			Keywords: append([]string(nil), topic.Keywords...),
		}
	}
	return out
}
