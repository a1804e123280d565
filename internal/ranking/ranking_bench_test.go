package ranking

import (
	"fmt"
	"testing"
)

func benchCorpus(docs, tokensPerDoc int) map[string][]string {
	vocab := []string{
		"search", "index", "query", "shard", "token", "corpus", "rank",
		"score", "term", "frequency", "document", "sentence", "weight",
	}
	out := make(map[string][]string, docs)
	for d := 0; d < docs; d++ {
		tokens := make([]string, tokensPerDoc)
		for i := range tokens {
			tokens[i] = vocab[(d*7+i*3)%len(vocab)]
		}
		out[fmt.Sprintf("doc-%04d", d)] = tokens
	}
	return out
}

func BenchmarkComputeIDFs(b *testing.B) {
	corpus := benchCorpus(500, 200)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := ComputeIDFs(corpus); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRankers(b *testing.B) {
	corpus := benchCorpus(500, 200)
	idfs, err := ComputeIDFs(corpus)
	if err != nil {
		b.Fatal(err)
	}
	q := NewQuery("query", "shard", "weight")
	b.Run("files", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = TopFiles(q, corpus, idfs, 5)
		}
	})
	b.Run("sentences", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = TopSentences(q, corpus, idfs, 5)
		}
	})
}
