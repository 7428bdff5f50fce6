package main

import (
	"fmt"
	"os"
	"strings"

	"cyberhub/cmd/cyberhub/chat"
	"cyberhub/internal/assistant"
	"cyberhub/internal/config"
	"cyberhub/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const version = "1.0.0"

var (
	// Global flags
	verbose    bool
	dark       bool
	quizSeed   int64
	configPath string

	logger *zap.Logger
)

// rootCmd launches the interactive chat when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "cyberhub",
	Short: "Cyber Awareness Hub - your cybersecurity awareness assistant",
	Long: `Cyber Awareness Hub is a chat-style assistant for everyday cybersecurity.

It answers questions on topics like phishing, passwords, and safe browsing,
runs a short awareness quiz, and keeps a list of security tasks and reminders.

Run without arguments to start the interactive chat interface.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The interactive chat owns the terminal; its logger is built in
		// runInteractiveChat so nothing is printed over the UI.
		if cmd == cmd.Root() {
			return nil
		}

		var err error
		logger, err = logging.NewCLILogger(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractiveChat()
	},
}

// askCmd answers a single question without starting the chat UI.
var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a one-off cybersecurity question",
	Long: `Looks the question up in the built-in knowledge base and prints the answer.

Example:
  cyberhub ask what is phishing`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bot := assistant.New(logger)
		r := bot.Respond(strings.Join(args, " "))
		fmt.Println(r.Text)
		return nil
	},
}

// menuCmd prints the topic menu.
var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Print the main menu of topics and commands",
	RunE: func(cmd *cobra.Command, args []string) error {
		bot := assistant.New(logger)
		fmt.Println(bot.MenuText())
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cyberhub %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default ~/.cyberhub/config.yaml)")
	rootCmd.Flags().BoolVar(&dark, "dark", false, "use the dark color theme")
	rootCmd.Flags().Int64Var(&quizSeed, "seed", 0, "fix the quiz shuffle seed (0 means random)")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runInteractiveChat loads the config, builds a file-backed logger, and runs
// the bubbletea program until the user exits.
func runInteractiveChat() error {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	chatLogger := zap.NewNop()
	if verbose {
		chatLogger, err = logging.NewFileLogger(cfg.LogFile, true)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer func() { _ = chatLogger.Sync() }()
	}

	useDark := cfg.Theme == "dark"
	if dark {
		useDark = true
	}
	seed := cfg.QuizSeed
	if quizSeed != 0 {
		seed = quizSeed
	}

	p := tea.NewProgram(
		chat.New(chat.Config{
			Dark:         useDark,
			Seed:         seed,
			StartupDelay: cfg.StartupDelayDuration(),
			Logger:       chatLogger,
		}),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
