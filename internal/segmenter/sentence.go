// Package segmenter splits raw text into sentences.
package segmenter

import (
	"fmt"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// Segmenter splits text into passages on newlines and each passage into
// sentences with a Punkt tokenizer trained on English, so abbreviations,
// initialisms and decimals do not end a sentence.
type Segmenter struct {
	punkt *sentences.DefaultSentenceTokenizer
}

// NewSegmenter creates a Segmenter backed by the bundled English Punkt model.
func NewSegmenter() (*Segmenter, error) {
	punkt, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("load english sentence model: %w", err)
	}
	return &Segmenter{punkt: punkt}, nil
}

// Segment returns the sentences of text in order. A trailing fragment
// without a terminator is kept as its own sentence.
func (s *Segmenter) Segment(text string) []string {
	var out []string
	for _, passage := range strings.Split(text, "\n") {
		out = append(out, s.passage(passage)...)
	}
	return out
}

func (s *Segmenter) passage(p string) []string {
	if strings.TrimSpace(p) == "" {
		return nil
	}
	var out []string
	for _, sent := range s.punkt.Tokenize(p) {
		if text := strings.TrimSpace(sent.Text); text != "" && !onlyPunct(text) {
			out = append(out, text)
		}
	}
	return out
}

func onlyPunct(s string) bool {
	return strings.Trim(s, `.!?"'”’)] `) == ""
}
