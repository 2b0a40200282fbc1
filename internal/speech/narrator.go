// Package speech converts summary text to spoken audio.
package speech

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	htgotts "github.com/hegedustibor/htgo-tts"
)

// DefaultLanguage is the narration language tag (Hindi).
const DefaultLanguage = "hi"

// Narrator synthesizes speech audio for summary text in one fixed language.
type Narrator struct {
	language string
}

// NewNarrator creates a narrator for the given language tag.
func NewNarrator(language string) *Narrator {
	if language == "" {
		language = DefaultLanguage
	}
	return &Narrator{language: language}
}

// Language returns the narration language tag.
func (n *Narrator) Language() string { return n.language }

// Synthesize converts the text to MP3 bytes. The whole text goes out as a
// single synthesis request with no chunking, caching, or retries; the
// temporary file is removed before returning, so the returned buffer is the
// only artifact of the run.
func (n *Narrator) Synthesize(text string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("synthesize speech: empty text")
	}

	dir, err := os.MkdirTemp("", "newsense-tts-")
	if err != nil {
		return nil, fmt.Errorf("synthesize speech: %w", err)
	}
	defer os.RemoveAll(dir)

	tts := htgotts.Speech{Folder: dir, Language: n.language}
	path, err := tts.CreateSpeechFile(text, "summary")
	if err != nil {
		return nil, fmt.Errorf("synthesize speech (%s): %w", n.language, err)
	}

	audio, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read synthesized audio: %w", err)
	}
	return audio, nil
}

var unsafeFileChars = regexp.MustCompile(`[^a-z0-9._-]+`)

// AudioFileName derives the download filename for a company's audio summary,
// e.g. "Tesla" becomes "tesla_summary.mp3".
func AudioFileName(company string) string {
	base := strings.ToLower(strings.TrimSpace(company))
	base = strings.ReplaceAll(base, " ", "_")
	base = unsafeFileChars.ReplaceAllString(base, "")
	base = strings.Trim(base, "._-")
	if base == "" {
		base = "report"
	}
	return base + "_summary.mp3"
}
