// Package tokenizer turns raw text into normalized tokens: lowercase words
// with punctuation and English stopwords removed.
package tokenizer

import (
	"regexp"
	"strings"
)

// Tokenizer splits text into word tokens and filters stopwords.
type Tokenizer struct {
	tokenPattern *regexp.Regexp
	stopwords    map[string]struct{}
}

// NewTokenizer creates a tokenizer using the default English stopword list
// plus any extra words given.
func NewTokenizer(extra ...string) *Tokenizer {
	stop := defaultStopwords()
	for _, w := range extra {
		w = normalize(strings.TrimSpace(w))
		if w != "" {
			stop[w] = struct{}{}
		}
	}
	return &Tokenizer{
		tokenPattern: regexp.MustCompile(`[\p{L}\p{N}]+(?:'[\p{L}\p{N}]+)*`),
		stopwords:    stop,
	}
}

// Tokenize returns the tokens of text in order.
func (t *Tokenizer) Tokenize(text string) []string {
	raw := t.tokenPattern.FindAllString(normalize(text), -1)
	if len(raw) == 0 {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, tok := range raw {
		if _, isStop := t.stopwords[tok]; isStop {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// IsStopword reports whether word is filtered by this tokenizer.
func (t *Tokenizer) IsStopword(word string) bool {
	_, ok := t.stopwords[normalize(word)]
	return ok
}

func normalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), "’", "'")
}

// defaultStopwords is the NLTK English stopword list.
func defaultStopwords() map[string]struct{} {
	words := []string{
		"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you", "you're", "you've", "you'll", "you'd",
		"your", "yours", "yourself", "yourselves", "he", "him", "his", "himself", "she", "she's", "her", "hers",
		"herself", "it", "it's", "its", "itself", "they", "them", "their", "theirs", "themselves", "what", "which",
		"who", "whom", "this", "that", "that'll", "these", "those", "am", "is", "are", "was", "were", "be", "been",
		"being", "have", "has", "had", "having", "do", "does", "did", "doing", "a", "an", "the", "and", "but", "if",
		"or", "because", "as", "until", "while", "of", "at", "by", "for", "with", "about", "against", "between",
		"into", "through", "during", "before", "after", "above", "below", "to", "from", "up", "down", "in", "out",
		"on", "off", "over", "under", "again", "further", "then", "once", "here", "there", "when", "where", "why",
		"how", "all", "any", "both", "each", "few", "more", "most", "other", "some", "such", "no", "nor", "not",
		"only", "own", "same", "so", "than", "too", "very", "s", "t", "can", "will", "just", "don", "don't",
		"should", "should've", "now", "d", "ll", "m", "o", "re", "ve", "y", "ain", "aren", "aren't", "couldn",
		"couldn't", "didn", "didn't", "doesn", "doesn't", "hadn", "hadn't", "hasn", "hasn't", "haven", "haven't",
		"isn", "isn't", "ma", "mightn", "mightn't", "mustn", "mustn't", "needn", "needn't", "shan", "shan't",
		"shouldn", "shouldn't", "wasn", "wasn't", "weren", "weren't", "won", "won't", "wouldn", "wouldn't",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
