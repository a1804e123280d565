package ranking

import (
	"fmt"
	"sort"
)

// SentenceMatch is a sentence scored against a query.
type SentenceMatch struct {
	Text    string
	Score   float64
	Density float64
}

// less orders by score descending, then density descending, then text
// ascending.
func (m SentenceMatch) less(o SentenceMatch) bool {
	if m.Score != o.Score {
		return m.Score > o.Score
	}
	if m.Density != o.Density {
		return m.Density > o.Density
	}
	return m.Text < o.Text
}

// RankSentences scores every sentence by the summed IDF of the query terms it
// contains at least once and returns the best n. Term frequency inside a
// sentence does not matter. Ties go to the sentence with the higher share of
// query terms among its tokens.
func RankSentences(query Query, sentences map[string][]string, idfs IDFTable, n int) ([]SentenceMatch, error) {
	n, err := limit(n, len(sentences))
	if err != nil {
		return nil, err
	}
	terms := query.Terms()
	matches := make([]SentenceMatch, 0, len(sentences))
	for text, tokens := range sentences {
		if len(tokens) == 0 {
			return nil, fmt.Errorf("rank sentences: %q has no tokens: %w", text, ErrInvalidInput)
		}
		present := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			present[tok] = struct{}{}
		}
		var score float64
		var found int
		for _, t := range terms {
			if _, ok := present[t]; !ok {
				continue
			}
			found++
			if idf, ok := idfs.Lookup(t); ok {
				score += idf
			}
		}
		matches = append(matches, SentenceMatch{
			Text:    text,
			Score:   score,
			Density: float64(found) / float64(len(tokens)),
		})
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].less(matches[j]) })
	return matches[:n], nil
}

// TopSentences returns the n sentences that best match query.
func TopSentences(query Query, sentences map[string][]string, idfs IDFTable, n int) ([]string, error) {
	matches, err := RankSentences(query, sentences, idfs, n)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Text
	}
	return out, nil
}

// limit caps n at size and rejects negative counts.
func limit(n, size int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("result count %d: %w", n, ErrInvalidInput)
	}
	if n > size {
		n = size
	}
	return n, nil
}
