package tui

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"questions/internal/domain"
)

// AnswerPort is the TUI-facing subset of the question service.
type AnswerPort interface {
	Answer(ctx context.Context, question string) ([]domain.Answer, error)
}

// Model is the Bubble Tea model for the interactive query loop.
type Model struct {
	ctx       context.Context
	service   AnswerPort
	tokenizer domain.Tokenizer
	input     textinput.Model
	viewport  viewport.Model
	answers   []domain.Answer
	terms     map[string]struct{}
	summary   string
	status    string
	cursor    int
	ready     bool
}

// New creates a new TUI model instance. Queries run under ctx.
func New(ctx context.Context, service AnswerPort, tokenizer domain.Tokenizer, summary domain.Summary) Model {
	ti := textinput.New()
	ti.Prompt = "Query: "
	ti.Placeholder = "Ask a question and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{
		ctx:       ctx,
		service:   service,
		tokenizer: tokenizer,
		input:     ti,
		viewport:  vp,
		summary:   fmt.Sprintf("%s: %d documents, %d terms", summary.Directory, summary.Documents, summary.Vocabulary),
		status:    "Loaded. Type a question.",
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 2 + 1 + qh + 1 // header+summary, status, spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderCurrentAnswer())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			q := strings.TrimSpace(m.input.Value())
			if q == "" {
				return m, nil
			}
			m = m.ask(q)
			m.viewport.SetContent(m.renderCurrentAnswer())
			return m, nil
		case "down":
			if len(m.answers) > 0 {
				m.cursor = (m.cursor + 1) % len(m.answers)
				m.viewport.SetContent(m.renderCurrentAnswer())
				return m, nil
			}
		case "up":
			if len(m.answers) > 0 {
				m.cursor = (m.cursor - 1 + len(m.answers)) % len(m.answers)
				m.viewport.SetContent(m.renderCurrentAnswer())
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) ask(q string) Model {
	answers, err := m.service.Answer(m.ctx, q)
	if err != nil {
		m.status = "Error: " + err.Error()
		m.answers = nil
		return m
	}
	m.answers = answers
	m.cursor = 0
	m.terms = make(map[string]struct{})
	for _, t := range m.tokenizer.Tokenize(q) {
		m.terms[t] = struct{}{}
	}
	if len(answers) == 0 {
		m.status = fmt.Sprintf("No answers for %q", q)
	} else {
		m.status = fmt.Sprintf("%d answer(s) for %q", len(answers), q)
	}
	return m
}

// View renders the TUI layout and current answer.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Questions")
	summary := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(m.summary)
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	results := resultBoxStyle.Render(m.viewport.View())
	return header + "\n" + summary + "\n" + results + "\n" + input + "\n" + status
}

func (m Model) renderCurrentAnswer() string {
	if len(m.answers) == 0 {
		return "No answers yet."
	}
	a := m.answers[m.cursor]
	title := fmt.Sprintf("Answer %d/%d  score=%.3f  density=%.3f  source=%s",
		m.cursor+1, len(m.answers), a.Score, a.Density, a.Source)
	return title + "\n\n" + highlightTerms(a.Sentence, m.terms)
}

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

// highlightTerms renders the words of sentence that are query terms.
func highlightTerms(sentence string, terms map[string]struct{}) string {
	if len(terms) == 0 {
		return sentence
	}
	words := strings.Fields(sentence)
	for i, w := range words {
		bare := strings.ToLower(strings.TrimFunc(w, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		}))
		if _, ok := terms[bare]; ok {
			words[i] = highlightStyle.Render(w)
		}
	}
	return strings.Join(words, " ")
}
