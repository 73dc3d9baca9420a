package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"kabaddibot/internal/domain"
	"kabaddibot/internal/matcher"
)

// MatchPort is the TUI-facing subset of the matcher service.
type MatchPort interface {
	Match(query string) (domain.MatchResult, error)
	Rank(query string, topK int) ([]domain.MatchResult, error)
}

type exchange struct {
	query  string
	answer string
	score  float64
	miss   bool
}

// Model is the Bubble Tea model for the chat application.
type Model struct {
	service  MatchPort
	input    textinput.Model
	viewport viewport.Model
	history  []exchange
	fallback string
	topK     int
	status   string
	ready    bool
	showAlts bool
	alts     []domain.MatchResult
}

// New creates a new TUI model. fallback is printed when the matcher reports
// no match; topK bounds the alternatives view toggled with tab.
func New(service MatchPort, fallback string, topK int, datasetSize int) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask about kabaddi and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{
		service:  service,
		input:    ti,
		viewport: vp,
		fallback: fallback,
		topK:     topK,
		status:   fmt.Sprintf("Loaded %d questions. Type to chat, tab for alternatives.", datasetSize),
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := transcriptBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 1 + 1 + qh + 1 // header, status, input frame, spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderTranscript())
		m.viewport.GotoBottom()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			q := strings.TrimSpace(m.input.Value())
			if q != "" {
				m = m.submit(q)
				return m, nil
			}
		case "tab":
			m.showAlts = !m.showAlts
			m.viewport.SetContent(m.renderTranscript())
			m.viewport.GotoBottom()
			return m, nil
		case "up":
			m.viewport.LineUp(1)
			return m, nil
		case "down":
			m.viewport.LineDown(1)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit(q string) Model {
	res, err := m.service.Match(q)
	switch {
	case errors.Is(err, matcher.ErrNoMatch):
		m.history = append(m.history, exchange{query: q, answer: m.fallback, miss: true})
		m.status = fmt.Sprintf("No confident match for %q", q)
		m.alts = nil
	case err != nil:
		m.status = "Error: " + err.Error()
	default:
		m.history = append(m.history, exchange{query: q, answer: res.Answer, score: res.Score})
		m.status = fmt.Sprintf("Matched %q  score=%.3f", res.Question, res.Score)
		if alts, err := m.service.Rank(q, m.topK); err == nil {
			m.alts = alts
		}
	}
	m.input.SetValue("")
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
	return m
}

// View renders the TUI layout and chat transcript.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Kabaddi Chatbot")
	transcript := transcriptBoxStyle.Render(m.viewport.View())
	input := queryBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + transcript + "\n" + input + "\n" + status
}

func (m Model) renderTranscript() string {
	if len(m.history) == 0 {
		return "No questions yet."
	}
	var b strings.Builder
	for i, ex := range m.history {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(youStyle.Render("You: ") + ex.query + "\n")
		if ex.miss {
			b.WriteString(botStyle.Render("Bot: ") + missStyle.Render(ex.answer))
		} else {
			b.WriteString(botStyle.Render("Bot: ") + ex.answer)
		}
	}
	if m.showAlts && len(m.alts) > 0 {
		b.WriteString("\n\n" + altHeaderStyle.Render("Alternatives for the last question:"))
		for _, alt := range m.alts {
			b.WriteString(fmt.Sprintf("\n  %.3f  %s", alt.Score, alt.Question))
		}
	}
	return b.String()
}

var (
	transcriptBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	youStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	botStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	missStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	altHeaderStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Bold(true)
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
