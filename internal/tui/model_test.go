package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"questions/internal/domain"
	"questions/internal/tokenizer"
)

type fakePort struct {
	answers []domain.Answer
	err     error
	asked   []string
	ctxs    []context.Context
}

func (f *fakePort) Answer(ctx context.Context, q string) ([]domain.Answer, error) {
	f.asked = append(f.asked, q)
	f.ctxs = append(f.ctxs, ctx)
	return f.answers, f.err
}

func sized(m Model) Model {
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(Model)
}

func submit(m Model, q string) Model {
	m.input.SetValue(q)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model)
}

func TestModel_AskAndCycle(t *testing.T) {
	port := &fakePort{answers: []domain.Answer{
		{Sentence: "Guido created Python.", Source: "python.txt", Score: 1.1},
		{Sentence: "Python is popular.", Source: "python.txt"},
	}}
	m := sized(New(context.Background(), port, tokenizer.NewTokenizer(), domain.Summary{Directory: "corpus", Documents: 3, Vocabulary: 40}))
	assert.Contains(t, m.View(), "corpus: 3 documents, 40 terms")

	m = submit(m, "  who created python  ")
	require.Equal(t, []string{"who created python"}, port.asked)
	assert.Equal(t, `2 answer(s) for "who created python"`, m.status)
	assert.Contains(t, m.renderCurrentAnswer(), "Answer 1/2")
	assert.Contains(t, m.terms, "python")
	assert.NotContains(t, m.terms, "who")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	assert.Equal(t, 1, m.cursor)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	assert.Equal(t, 0, m.cursor)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(Model)
	assert.Equal(t, 1, m.cursor)
}

func TestModel_EmptyQueryIgnored(t *testing.T) {
	port := &fakePort{}
	m := sized(New(context.Background(), port, tokenizer.NewTokenizer(), domain.Summary{}))
	submit(m, "   ")
	assert.Empty(t, port.asked)
}

func TestModel_Error(t *testing.T) {
	port := &fakePort{err: errors.New("boom")}
	m := sized(New(context.Background(), port, tokenizer.NewTokenizer(), domain.Summary{}))
	m = submit(m, "anything")
	assert.Equal(t, "Error: boom", m.status)
	assert.Equal(t, "No answers yet.", m.renderCurrentAnswer())
}

func TestModel_Quit(t *testing.T) {
	m := New(context.Background(), &fakePort{}, tokenizer.NewTokenizer(), domain.Summary{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestHighlightTerms(t *testing.T) {
	out := highlightTerms("Guido created Python.", map[string]struct{}{"python": {}})
	assert.Contains(t, out, "Guido created")
	assert.Contains(t, out, "Python.")
	assert.Equal(t, "plain text", highlightTerms("plain text", nil))
}

type ctxKey struct{}

func TestModel_QueriesUseSessionContext(t *testing.T) {
	port := &fakePort{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "session")
	m := sized(New(ctx, port, tokenizer.NewTokenizer(), domain.Summary{}))
	submit(m, "anything")

	require.Len(t, port.ctxs, 1)
	assert.Equal(t, "session", port.ctxs[0].Value(ctxKey{}))
}
