// Package tui is the interactive terminal front end of FacilitatorStyles:
// a bubbletea program with a top screen, one screen per question and a
// scrollable result report.
package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/HendryAvila/facilistyles/internal/catalog"
	"github.com/HendryAvila/facilistyles/internal/quiz"
	"github.com/HendryAvila/facilistyles/internal/report"
)

// Preferences remembers the last result type between runs.
type Preferences interface {
	LastResultType() (string, bool, error)
	SetLastResultType(id string) error
}

// Options configures the model.
type Options struct {
	Prefs    Preferences // may be nil
	Logger   *zap.Logger
	ShareURL string
	Dark     bool
}

// Model is the bubbletea model for one quiz run.
type Model struct {
	session *quiz.Session
	catalog *catalog.Catalog
	opts    Options
	logger  *zap.Logger
	styles  Styles

	width    int
	height   int
	progress progress.Model
	viewport viewport.Model

	lastResult string
	report     string
	err        error
	quitting   bool
}

// New returns a model on the top screen.
func New(sess *quiz.Session, cat *catalog.Catalog, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	theme := LightTheme()
	if opts.Dark {
		theme = DarkTheme()
	}
	m := Model{
		session:  sess,
		catalog:  cat,
		opts:     opts,
		logger:   logger,
		styles:   NewStyles(theme),
		width:    80,
		height:   24,
		progress: progress.New(progress.WithDefaultGradient()),
		viewport: viewport.New(80, 20),
	}
	m.progress.Width = m.width - 4
	m.lastResult = m.readLastResult()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		if m.session.Step() == quiz.StepResult {
			m.renderReport()
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.session.Step() {
		case quiz.StepTop:
			return m.updateTop(msg)
		case quiz.StepQuestions:
			return m.updateQuestions(msg)
		case quiz.StepResult:
			return m.updateResult(msg)
		}
	}
	return m, nil
}

func (m Model) updateTop(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", " ", "s":
		m.err = m.session.Start()
	}
	return m, nil
}

func (m Model) updateQuestions(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	m.err = nil

	if score, err := strconv.Atoi(key); err == nil {
		m.err = m.session.Answer(score)
		return m, nil
	}

	switch key {
	case "enter", "right", "l":
		m.err = m.session.Next()
		if m.err == nil && m.session.Step() == quiz.StepResult {
			m.onResult()
		}
	case "left", "h", "backspace":
		m.err = m.session.Prev()
	case "r":
		m.restart()
	}
	return m, nil
}

func (m Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r":
		m.restart()
		return m, nil
	case "k", "up":
		m.viewport.LineUp(1)
	case "j", "down":
		m.viewport.LineDown(1)
	case "pgup":
		m.viewport.HalfViewUp()
	case "pgdown":
		m.viewport.HalfViewDown()
	}
	return m, nil
}

func (m *Model) restart() {
	m.session.Restart()
	m.report = ""
	m.err = nil
	m.viewport.SetContent("")
	m.viewport.GotoTop()
}

// onResult saves the result type and renders the report.
func (m *Model) onResult() {
	res, ok := m.session.Result()
	if !ok {
		return
	}
	m.lastResult = res.Type.ID
	if m.opts.Prefs != nil {
		if err := m.opts.Prefs.SetLastResultType(res.Type.ID); err != nil {
			m.logger.Warn("saving last result failed", zap.String("type", res.Type.ID), zap.Error(err))
		}
	}
	m.renderReport()
}

func (m *Model) renderReport() {
	res, ok := m.session.Result()
	if !ok {
		return
	}
	md := report.Result(res, m.catalog, report.Options{ShareURL: m.opts.ShareURL})
	out, err := report.Render(md, m.viewport.Width, m.opts.Dark)
	if err != nil {
		m.logger.Warn("rendering report failed", zap.Error(err))
		out = md
	}
	m.report = out
	m.viewport.SetContent(out)
}

func (m *Model) setSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = h - 2
	m.progress.Width = w - 4
}

func (m Model) readLastResult() string {
	if m.opts.Prefs == nil {
		return ""
	}
	id, ok, err := m.opts.Prefs.LastResultType()
	if err != nil {
		m.logger.Warn("reading last result failed", zap.Error(err))
		return ""
	}
	if !ok {
		return ""
	}
	return id
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	switch m.session.Step() {
	case quiz.StepQuestions:
		return m.viewQuestion()
	case quiz.StepResult:
		return m.viewResult()
	}
	return m.viewTop()
}

func (m Model) viewTop() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("FacilitatorStyles"))
	b.WriteString("\n")
	b.WriteString(m.styles.Body.Render(fmt.Sprintf(
		"%d questions, four axes, sixteen facilitator types.", quiz.TotalQuestions)))
	b.WriteString("\n\n")

	for _, f := range m.catalog.Families() {
		b.WriteString(m.styles.Subtitle.Render(f.Name))
		b.WriteString("\n")
		for _, t := range m.catalog.Group(f) {
			line := "  " + t.Name
			if t.ID == m.lastResult {
				line = m.styles.Selected.Render(t.Name+" (your last result)")
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(m.styles.Error.Render(errorText(m.err)))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Muted.Render("[enter] start  [q] quit"))
	return b.String()
}

func (m Model) viewQuestion() string {
	q, ok := m.session.CurrentQuestion()
	if !ok {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("Question %d of %d", m.session.Index()+1, m.session.Total())))
	b.WriteString("\n")
	b.WriteString(m.progress.ViewAs(float64(m.session.Progress()) / 100))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Question.Render(q.Text))
	b.WriteString("\n")
	b.WriteString(m.styles.Option.Render(fmt.Sprintf("%d  %s", quiz.ScaleMin, q.OptionA)))
	b.WriteString("\n")
	b.WriteString(m.styles.Option.Render(fmt.Sprintf("%d  %s", quiz.ScaleMax, q.OptionB)))
	b.WriteString("\n\n")
	b.WriteString(m.scale())
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(m.styles.Error.Render(errorText(m.err)))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Muted.Render("[1-6] answer  [enter] next  [<-] back  [r] restart  [q] quit"))
	return m.styles.Card.Width(max(m.width-2, 20)).Render(b.String())
}

// scale renders the 1..6 picker with the current answer highlighted.
func (m Model) scale() string {
	current, _ := m.session.CurrentAnswer()
	cells := make([]string, 0, quiz.ScaleMax-quiz.ScaleMin+1)
	for v := quiz.ScaleMin; v <= quiz.ScaleMax; v++ {
		label := strconv.Itoa(v)
		if v == current {
			cells = append(cells, m.styles.Selected.Render("["+label+"]"))
			continue
		}
		cells = append(cells, m.styles.Scale.Render(" "+label+" "))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, cells...)
}

func (m Model) viewResult() string {
	return m.viewport.View() + "\n" +
		m.styles.Muted.Render("[up/down] scroll  [r] restart  [q] quit")
}

func errorText(err error) string {
	switch {
	case errors.Is(err, quiz.ErrNoAnswer):
		return "Pick a number from 1 to 6 first."
	case errors.Is(err, quiz.ErrAtFirstQuestion):
		return "This is the first question."
	case errors.Is(err, quiz.ErrScoreOutOfRange):
		return "Answers go from 1 to 6."
	}
	return err.Error()
}

// Report returns the rendered report, empty before a result exists.
func (m Model) Report() string { return m.report }

// Session exposes the underlying quiz session.
func (m Model) Session() *quiz.Session { return m.session }
