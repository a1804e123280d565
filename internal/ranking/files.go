package ranking

import "sort"

// FileMatch is a document scored against a query.
type FileMatch struct {
	ID    string
	Score float64
}

// less orders by score descending, then identifier ascending.
func (m FileMatch) less(o FileMatch) bool {
	if m.Score != o.Score {
		return m.Score > o.Score
	}
	return m.ID < o.ID
}

// RankFiles scores every file by the TF-IDF sum of the query terms and
// returns the best n. Query terms missing from idfs score zero.
func RankFiles(query Query, files map[string][]string, idfs IDFTable, n int) ([]FileMatch, error) {
	n, err := limit(n, len(files))
	if err != nil {
		return nil, err
	}
	terms := query.Terms()
	matches := make([]FileMatch, 0, len(files))
	for id, tokens := range files {
		matches = append(matches, FileMatch{ID: id, Score: tfidf(terms, tokens, idfs)})
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].less(matches[j]) })
	return matches[:n], nil
}

// TopFiles returns the identifiers of the n files that best match query.
func TopFiles(query Query, files map[string][]string, idfs IDFTable, n int) ([]string, error) {
	matches, err := RankFiles(query, files, idfs, n)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(matches))
	for i, m := range matches {
		ids[i] = m.ID
	}
	return ids, nil
}

func tfidf(terms []string, tokens []string, idfs IDFTable) float64 {
	tf := make(map[string]int, len(terms))
	for _, tok := range tokens {
		tf[tok]++
	}
	score := 0.0
	for _, t := range terms {
		idf, ok := idfs.Lookup(t)
		if !ok {
			continue
		}
		score += idf * float64(tf[t])
	}
	return score
}
