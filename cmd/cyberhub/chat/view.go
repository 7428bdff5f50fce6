package chat

import (
	"fmt"
	"strings"
	"time"

	"cyberhub/internal/assistant"

	"github.com/charmbracelet/lipgloss"
)

// View renders the whole chat window.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.isBooting {
		return m.renderBootScreen()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.styles.UserInput.Render(m.textarea.View()))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderBootScreen() string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		m.styles.Accent.Render(welcomeBanner),
		"",
		fmt.Sprintf("%s Initializing Cyber Awareness Hub...", m.spinner.View()),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderHeader() string {
	title := m.styles.Title.Render("🔒 Cyber Awareness Hub")

	badge := m.styles.Badge.Render("● Ready")
	if m.router.Quiz().Active() {
		badge = m.styles.Badge.Render("● Quiz")
	}

	gap := m.width - lipgloss.Width(title) - lipgloss.Width(badge)
	if gap < 1 {
		gap = 1
	}
	line := title + strings.Repeat(" ", gap) + badge
	return m.styles.Header.Width(m.width).Render(line)
}

func (m Model) renderFooter() string {
	left := fmt.Sprintf("mode: %s", m.modeLabel())
	right := fmt.Sprintf("%s · enter send · esc quit", time.Now().Format("15:04"))

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return m.styles.Footer.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

// modeLabel names the current dialogue state for the footer.
func (m Model) modeLabel() string {
	switch m.router.Mode().(type) {
	case assistant.ModeNameCapture:
		return "introductions"
	case assistant.ModeTaskDescription, assistant.ModeTaskReminderChoice, assistant.ModeTaskDueDate:
		return "adding task"
	case assistant.ModeCompleteTaskNumber:
		return "completing task"
	case assistant.ModeReminderSubject, assistant.ModeReminderDate:
		return "setting reminder"
	case assistant.ModeQuizAnswer:
		return "quiz"
	default:
		return "chat"
	}
}

// renderHistory lays out the transcript for the viewport.
func (m Model) renderHistory() string {
	var b strings.Builder
	userName := m.bot.UserName()
	if userName == "" {
		userName = "You"
	}

	for i, msg := range m.history {
		if i > 0 {
			b.WriteString("\n")
		}
		if msg.Role == "user" {
			b.WriteString(m.styles.Bold.Render(userName))
			b.WriteString("\n")
			b.WriteString(m.styles.Body.Render(msg.Content))
		} else {
			b.WriteString(m.renderAssistant(msg))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderAssistant(msg Message) string {
	if msg.Kind == assistant.KindAnswer {
		return m.renderMarkdown(msg.Content)
	}
	return m.kindStyle(msg.Kind).Render(msg.Content)
}

// kindStyle maps a reply tag to its style. Untagged kinds fall back to the
// body style.
func (m Model) kindStyle(k assistant.Kind) lipgloss.Style {
	switch k {
	case assistant.KindSuccess:
		return m.styles.Success
	case assistant.KindError:
		return m.styles.Error
	case assistant.KindPrompt:
		return m.styles.Prompt
	case assistant.KindWarn:
		return m.styles.Warning
	case assistant.KindMuted:
		return m.styles.Muted
	case assistant.KindAccent:
		return m.styles.Accent
	default:
		return m.styles.Body
	}
}

// renderMarkdown runs glamour over answer text. Glamour can panic on
// malformed input, so recover and fall back to plain text.
func (m Model) renderMarkdown(content string) (out string) {
	if m.renderer == nil {
		return m.styles.Body.Render(content)
	}
	defer func() {
		if r := recover(); r != nil {
			out = m.styles.Body.Render(content)
		}
	}()
	rendered, err := m.renderer.Render(content)
	if err != nil {
		return m.styles.Body.Render(content)
	}
	return strings.TrimRight(rendered, "\n")
}
