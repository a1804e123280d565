package domain

// Document is a corpus file with its normalized tokens.
type Document struct {
	ID      string
	Content string
	Tokens  []string
}

// Answer is a sentence selected as a response to a question.
type Answer struct {
	Sentence string
	Source   string
	Score    float64
	Density  float64
}

// Summary describes an ingested corpus.
type Summary struct {
	Directory  string
	Documents  int
	Vocabulary int
}

// Loader reads raw documents from a corpus location.
type Loader interface {
	Load(location string) (map[string]string, error)
}

// Tokenizer turns raw text into normalized tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}

// Segmenter splits raw text into sentences.
type Segmenter interface {
	Segment(text string) []string
}
