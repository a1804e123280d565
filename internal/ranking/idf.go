// Package ranking scores documents and sentences against a query.
//
// Documents are ranked by TF-IDF. Sentences are ranked by the summed IDF of
// the query terms they contain, with query term density breaking ties. Both
// rankers take an IDFTable built over the same universe they rank.
package ranking

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrInvalidInput is returned for inputs no ranking can be computed from.
var ErrInvalidInput = errors.New("invalid input")

// IDFTable maps tokens to their inverse document frequency within one
// document universe. It is never modified after ComputeIDFs returns it.
type IDFTable struct {
	docs   int
	values map[string]float64
}

// ComputeIDFs returns ln(N/df) for every token found in documents, where N is
// the number of documents and df the number of documents containing the
// token at least once.
func ComputeIDFs(documents map[string][]string) (IDFTable, error) {
	if len(documents) == 0 {
		return IDFTable{}, fmt.Errorf("compute idfs: no documents: %w", ErrInvalidInput)
	}
	df := make(map[string]int)
	for _, tokens := range documents {
		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}
	N := float64(len(documents))
	values := make(map[string]float64, len(df))
	for tok, count := range df {
		values[tok] = math.Log(N / float64(count))
	}
	return IDFTable{docs: len(documents), values: values}, nil
}

// Lookup returns the IDF of tok and whether tok was seen in the universe.
func (t IDFTable) Lookup(tok string) (float64, bool) {
	v, ok := t.values[tok]
	return v, ok
}

// Documents returns the size of the universe the table was built over.
func (t IDFTable) Documents() int { return t.docs }

// Len returns the number of distinct tokens in the table.
func (t IDFTable) Len() int { return len(t.values) }

// Tokens returns every token in the table in ascending order.
func (t IDFTable) Tokens() []string {
	out := make([]string, 0, len(t.values))
	for tok := range t.values {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}
