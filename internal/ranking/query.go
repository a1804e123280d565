package ranking

import "sort"

// Query is a set of normalized tokens.
type Query map[string]struct{}

// NewQuery builds a Query from tokens, collapsing duplicates.
func NewQuery(tokens ...string) Query {
	q := make(Query, len(tokens))
	for _, t := range tokens {
		q[t] = struct{}{}
	}
	return q
}

// Contains reports whether tok is a query term.
func (q Query) Contains(tok string) bool {
	_, ok := q[tok]
	return ok
}

// Terms returns the query terms in ascending order.
func (q Query) Terms() []string {
	out := make([]string, 0, len(q))
	for t := range q {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
