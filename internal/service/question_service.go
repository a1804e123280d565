package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"questions/internal/domain"
	"questions/internal/logger"
	"questions/internal/ranking"
)

// ErrNotIngested is returned by Answer before a corpus has been ingested.
var ErrNotIngested = errors.New("no corpus ingested")

// Options sets result sizes and ingest parallelism.
type Options struct {
	FileMatches     int
	SentenceMatches int
	Workers         int
}

// QuestionService answers questions from an ingested corpus. It is safe for
// concurrent use; Ingest replaces the corpus atomically.
type QuestionService struct {
	loader    domain.Loader
	tokenizer domain.Tokenizer
	segmenter domain.Segmenter
	opts      Options
	log       *slog.Logger

	mu        sync.RWMutex
	documents map[string]domain.Document
	tokens    map[string][]string
	idfs      ranking.IDFTable
}

// NewQuestionService creates a service over the given collaborators.
func NewQuestionService(loader domain.Loader, tokenizer domain.Tokenizer, segmenter domain.Segmenter, opts Options) *QuestionService {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	return &QuestionService{
		loader:    loader,
		tokenizer: tokenizer,
		segmenter: segmenter,
		opts:      opts,
		log:       logger.WithComponent("question-service"),
	}
}

// Ingest loads and tokenizes the corpus at location and computes the
// corpus-wide IDF table.
func (s *QuestionService) Ingest(ctx context.Context, location string) (domain.Summary, error) {
	start := time.Now()
	raw, err := s.loader.Load(location)
	if err != nil {
		return domain.Summary{}, err
	}

	ids := make([]string, 0, len(raw))
	for id := range raw {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	tokenized := make([][]string, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			tokenized[i] = s.tokenizer.Tokenize(raw[id])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.Summary{}, fmt.Errorf("tokenize corpus: %w", err)
	}

	documents := make(map[string]domain.Document, len(ids))
	tokens := make(map[string][]string, len(ids))
	for i, id := range ids {
		documents[id] = domain.Document{ID: id, Content: raw[id], Tokens: tokenized[i]}
		tokens[id] = tokenized[i]
	}
	idfs, err := ranking.ComputeIDFs(tokens)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("corpus idfs: %w", err)
	}

	s.mu.Lock()
	s.documents = documents
	s.tokens = tokens
	s.idfs = idfs
	s.mu.Unlock()

	s.log.Debug("corpus ingested",
		"location", location,
		"documents", len(documents),
		"vocabulary", idfs.Len(),
		"elapsed", time.Since(start))
	return domain.Summary{Directory: location, Documents: len(documents), Vocabulary: idfs.Len()}, nil
}

// Answer ranks the corpus files against question, then ranks the sentences
// of the best files and returns the top sentences.
func (s *QuestionService) Answer(ctx context.Context, question string) ([]domain.Answer, error) {
	s.mu.RLock()
	documents, tokens, idfs := s.documents, s.tokens, s.idfs
	s.mu.RUnlock()
	if documents == nil {
		return nil, ErrNotIngested
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	query := ranking.NewQuery(s.tokenizer.Tokenize(question)...)
	files, err := ranking.TopFiles(query, tokens, idfs, s.opts.FileMatches)
	if err != nil {
		return nil, fmt.Errorf("rank files: %w", err)
	}
	s.log.Debug("files ranked", "query_terms", query.Terms(), "files", files)

	sentences := make(map[string][]string)
	source := make(map[string]string)
	for _, id := range files {
		for _, sent := range s.segmenter.Segment(documents[id].Content) {
			toks := s.tokenizer.Tokenize(sent)
			if len(toks) == 0 {
				continue
			}
			if _, dup := sentences[sent]; dup {
				continue
			}
			sentences[sent] = toks
			source[sent] = id
		}
	}
	if len(sentences) == 0 {
		return []domain.Answer{}, nil
	}

	sentenceIDFs, err := ranking.ComputeIDFs(sentences)
	if err != nil {
		return nil, fmt.Errorf("sentence idfs: %w", err)
	}
	matches, err := ranking.RankSentences(query, sentences, sentenceIDFs, s.opts.SentenceMatches)
	if err != nil {
		return nil, fmt.Errorf("rank sentences: %w", err)
	}

	answers := make([]domain.Answer, len(matches))
	for i, m := range matches {
		answers[i] = domain.Answer{
			Sentence: m.Text,
			Source:   source[m.Text],
			Score:    m.Score,
			Density:  m.Density,
		}
	}
	s.log.Debug("sentences ranked", "candidates", len(sentences), "answers", len(answers))
	return answers, nil
}
