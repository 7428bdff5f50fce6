package chat

import (
	"strings"

	"cyberhub/internal/assistant"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	headerHeight = 3
	footerHeight = 2
	inputHeight  = 3
)

// Update routes incoming messages to the right handler.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case bootDoneMsg:
		return m.handleBootDone()

	case spinner.TickMsg:
		if m.isBooting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateComponents(msg)
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	vpHeight := m.height - headerHeight - footerHeight - inputHeight
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.viewport = viewport.New(m.width, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = vpHeight
	}

	inputWidth := m.width - 4
	if inputWidth < 10 {
		inputWidth = 10
	}
	m.textarea.SetWidth(inputWidth)
	m.refreshViewport()
	return m, nil
}

// handleBootDone ends the startup pause and greets the user, starting the
// dialogue in name capture.
func (m Model) handleBootDone() (tea.Model, tea.Cmd) {
	m.isBooting = false
	m.pushAssistant(welcomeBanner, assistant.KindAccent)
	m.pushAssistant("🔒 Welcome to Cyber Awareness Hub!", assistant.KindAccent)
	m.pushAssistant("Before we begin, what should I call you?", assistant.KindPrompt)
	m.refreshViewport()
	return m, textarea.Blink
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyEnter:
		if m.isBooting {
			return m, nil
		}
		return m.submit()

	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m.updateComponents(msg)
}

// submit hands the typed line to the dialogue router and appends every reply
// of the resulting turn to the transcript.
func (m Model) submit() (tea.Model, tea.Cmd) {
	raw := m.textarea.Value()
	m.textarea.Reset()

	if trimmed := strings.TrimSpace(raw); trimmed != "" {
		m.pushUser(trimmed)
	}

	turn := m.router.Handle(raw)
	for _, r := range turn.Replies {
		m.pushAssistant(r.Text, r.Kind)
	}
	m.refreshViewport()

	if turn.Exit {
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateComponents(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.textarea, cmd = m.textarea.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderHistory())
	m.viewport.GotoBottom()
}
