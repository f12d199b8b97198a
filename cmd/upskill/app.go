package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cakap/upskill/pkg/assistant"
	"github.com/cakap/upskill/pkg/genai/vertex"
	"github.com/cakap/upskill/pkg/syllabus"
)

// appState represents the result screen's state machine.
type appState int

const (
	stateGenerating appState = iota
	stateResult
)

// resultTab selects which pane the result screen shows.
type resultTab int

const (
	tabSyllabus resultTab = iota
	tabPrompt
)

type generateDoneMsg struct {
	text     string
	duration time.Duration
	err      error
}

type tickMsg time.Time

// appModel is the root bubbletea model for the result screen. The
// questionnaire has already run; this screen owns one request at a time and
// starts a new one only after the previous completed.
type appModel struct {
	ctx    context.Context
	ast    *assistant.Assistant
	model  *vertex.Model
	prompt string

	state    appState
	tab      resultTab
	frame    int
	result   string
	duration time.Duration
	err      error

	vp      viewport.Model
	width   int
	height  int
	ready   bool
	restart bool // set when the user asked for a new questionnaire
}

func newAppModel(ctx context.Context, ast *assistant.Assistant, m *vertex.Model, q syllabus.Questionnaire) appModel {
	return appModel{
		ctx:    ctx,
		ast:    ast,
		model:  m,
		prompt: q.Prompt(),
		state:  stateGenerating,
	}
}

// generateCmd runs the blocking generate-and-assemble call off the update
// loop. Only one is ever in flight.
func (m appModel) generateCmd() tea.Cmd {
	start := time.Now()
	return func() tea.Msg {
		text, err := m.ast.Generate(m.ctx, m.model, m.prompt)
		return generateDoneMsg{text: text, duration: time.Since(start), err: err}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.generateCmd(), tickCmd())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		initMarkdownRenderer(msg.Width - 2)

		chrome := chromeHeight()
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-chrome)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - chrome
		}
		m.setPaneContent()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "n":
			m.restart = true
			return m, tea.Quit
		case "tab":
			if m.tab == tabSyllabus {
				m.tab = tabPrompt
			} else {
				m.tab = tabSyllabus
			}
			m.setPaneContent()
			return m, nil
		case "r":
			if m.state == stateResult {
				m.state = stateGenerating
				m.err = nil
				return m, tea.Batch(m.generateCmd(), tickCmd())
			}
			return m, nil
		}

	case tickMsg:
		if m.state == stateGenerating {
			m.frame++
			return m, tickCmd()
		}
		return m, nil

	case generateDoneMsg:
		m.state = stateResult
		m.result = msg.text
		m.duration = msg.duration
		m.err = msg.err
		m.setPaneContent()
		return m, nil
	}

	if m.ready {
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}

	return m, nil
}

// setPaneContent fills the viewport for the active tab.
func (m *appModel) setPaneContent() {
	if !m.ready {
		return
	}

	switch m.tab {
	case tabPrompt:
		m.vp.SetContent(fmt.Sprintf("Parameters:\n- Temperature: %v\n\n%s",
			m.ast.Temperature(), m.prompt))
	default:
		switch {
		case m.err != nil:
			m.vp.SetContent(errorStyle.Render("error: " + m.err.Error()))
		case m.state == stateResult:
			m.vp.SetContent(renderMarkdown(m.result))
		default:
			m.vp.SetContent("")
		}
	}
	m.vp.GotoTop()
}

func (m appModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Cakap Virtual Assistant"))
	b.WriteString("\n")
	b.WriteString(renderTabs(m.tab))
	b.WriteString("\n")

	if m.state == stateGenerating {
		f := spinnerFrames[m.frame%len(spinnerFrames)]
		b.WriteString(fmt.Sprintf("\n %s Generating your syllabus using %s ...\n",
			f, m.model.DisplayName()))
	} else if m.ready {
		b.WriteString(m.vp.View())
		b.WriteString("\n")
	}

	b.WriteString(m.statusLine())

	return b.String()
}

// chromeHeight is the number of lines used around the viewport: title, tab
// row, spacer, and status line.
func chromeHeight() int { return 4 }

func renderTabs(active resultTab) string {
	tabs := []struct {
		label string
		tab   resultTab
	}{
		{"Syllabus", tabSyllabus},
		{"Prompt", tabPrompt},
	}

	rendered := make([]string, len(tabs))
	for i, t := range tabs {
		if t.tab == active {
			rendered[i] = activeTabStyle.Render(t.label)
		} else {
			rendered[i] = tabStyle.Render(t.label)
		}
	}

	return strings.Join(rendered, " ")
}

// statusLine renders the bottom help line, with the catalog link and last
// request duration when available.
func (m appModel) statusLine() string {
	parts := []string{"tab: switch", "r: regenerate", "n: new questionnaire", "q: quit"}

	if m.state == stateResult && m.err == nil && m.duration > 0 {
		parts = append(parts, fmt.Sprintf("%.1fs", m.duration.Seconds()))
	}

	if url, err := m.ast.CatalogURL(); err == nil && url != "" {
		parts = append(parts, "catalog: "+url)
	}

	line := " " + strings.Join(parts, " · ")
	if m.width > 0 {
		line = truncateWidth(line, m.width)
	}

	return statusStyle.Render(line)
}
