// Package chat provides the interactive terminal chat interface for the
// cyber awareness hub: a scrollable conversation transcript over a single
// text input box, driven by the dialogue router in internal/assistant.
package chat

import (
	"math/rand"
	"time"

	"cyberhub/cmd/cyberhub/ui"
	"cyberhub/internal/assistant"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"
)

// Config holds the knobs for the interactive session.
type Config struct {
	// Dark switches to the dark color theme.
	Dark bool
	// Seed pins the quiz shuffle order; zero means time-seeded.
	Seed int64
	// StartupDelay is the artificial boot pause before the name prompt.
	StartupDelay time.Duration
	// Logger receives structured activity events. Nil means no logging.
	Logger *zap.Logger
}

// Message is one entry in the conversation transcript.
type Message struct {
	Role    string // "user" or "assistant"
	Content string
	Kind    assistant.Kind // styling tag for assistant messages
	Time    time.Time
}

// bootDoneMsg ends the artificial startup delay.
type bootDoneMsg struct{}

// Model is the bubbletea model for the chat window.
type Model struct {
	// UI components
	textarea textarea.Model
	viewport viewport.Model
	spinner  spinner.Model
	styles   ui.Styles
	renderer *glamour.TermRenderer

	// Conversation state
	bot     *assistant.Assistant
	router  *assistant.Router
	history []Message

	// Window state
	width     int
	height    int
	ready     bool
	isBooting bool

	startupDelay time.Duration
}

// New builds the chat model. The assistant and router are created here and
// live for the whole session.
func New(cfg Config) Model {
	ta := textarea.New()
	ta.Placeholder = "Type a message..."
	ta.Prompt = "> "
	ta.SetHeight(1)
	ta.ShowLineNumbers = false
	ta.CharLimit = 512
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	theme := ui.LightTheme()
	if cfg.Dark {
		theme = ui.DarkTheme()
	}
	styles := ui.NewStyles(theme)
	sp.Style = styles.Accent

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		renderer = nil // plain text fallback in the view
	}

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	bot := assistant.New(logger)

	delay := cfg.StartupDelay
	if delay <= 0 {
		delay = time.Second
	}

	return Model{
		textarea:     ta,
		spinner:      sp,
		styles:       styles,
		renderer:     renderer,
		bot:          bot,
		router:       assistant.NewRouter(bot, rng),
		isBooting:    true,
		startupDelay: delay,
	}
}

// Init starts the spinner and the boot timer.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
		tea.Tick(m.startupDelay, func(time.Time) tea.Msg { return bootDoneMsg{} }),
	)
}

// pushAssistant appends an assistant message to the transcript.
func (m *Model) pushAssistant(content string, kind assistant.Kind) {
	m.history = append(m.history, Message{
		Role:    "assistant",
		Content: content,
		Kind:    kind,
		Time:    time.Now(),
	})
}

// pushUser appends a user message to the transcript.
func (m *Model) pushUser(content string) {
	m.history = append(m.history, Message{
		Role:    "user",
		Content: content,
		Time:    time.Now(),
	})
}
