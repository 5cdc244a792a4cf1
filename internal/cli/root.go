package cli

import (
	"io"
	"os"
	"strings"

	"todo-editor/internal/config"
	"todo-editor/internal/editor"
	"todo-editor/internal/logging"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

type App struct {
	ConfigPath string
	IDs        string
	LogFile    string
	LogLevel   string

	cfg      config.Config
	logger   *log.Logger
	closeLog func() error

	// interactive reports whether stdin and stdout are both terminals.
	interactive func() bool
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{interactive: stdioIsTerminal})
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "todo",
		Short:        "A small to-do list editor (TUI + scriptable)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive editor
  todo

  # Replay input events from a script
  todo run demo.todo
  printf 'add Buy milk\nedit 1\ntype Buy oat milk\nsubmit\n' | todo

  # Read the key reference
  todo docs keys
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI when attached to a terminal, script mode otherwise.
			if app.interactive != nil && app.interactive() {
				return runTUI(app)
			}
			return runScript(cmd, app, cmd.InOrStdin(), scriptOptions{format: envOr("TODO_FORMAT", "text")})
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup(cmd.ErrOrStderr())
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return app.teardown()
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("TODO_CONFIG", ""), "Path to a TOML config file (default: ./todo.toml, then the user config dir)")
	cmd.PersistentFlags().StringVar(&app.IDs, "ids", "", "Item id generator (counter|clock); overrides config")
	cmd.PersistentFlags().StringVar(&app.LogFile, "log-file", "", "Append logs to this file (the TUI only logs when set)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", "", "Log level (debug|info|warn|error)")

	cmd.AddCommand(newRunCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

// setup resolves the effective config (defaults < file < env < flags) and builds the logger.
func (app *App) setup(stderr io.Writer) error {
	cfg, err := config.Load(app.ConfigPath)
	if err != nil {
		return err
	}
	if v := strings.TrimSpace(app.IDs); v != "" {
		cfg.IDs = v
	}
	if v := strings.TrimSpace(app.LogFile); v != "" {
		cfg.LogFile = v
	}
	if v := strings.TrimSpace(app.LogLevel); v != "" {
		cfg.LogLevel = v
	}
	app.cfg = cfg

	logger, closeFn, err := logging.New(logging.Options{
		File:     cfg.LogFile,
		Fallback: stderr,
		Level:    cfg.LogLevel,
	})
	if err != nil {
		return err
	}
	app.logger = logger
	app.closeLog = closeFn
	if cfg.Path != "" {
		logger.Debug("config loaded", "path", cfg.Path)
	}
	return nil
}

func (app *App) teardown() error {
	if app.closeLog == nil {
		return nil
	}
	err := app.closeLog()
	app.closeLog = nil
	return err
}

func (app *App) newEditor() (*editor.Editor, error) {
	ids, err := editor.NewGenerator(app.cfg.IDs, app.cfg.IDSeed)
	if err != nil {
		return nil, err
	}
	return editor.New(ids, editor.WithLogger(app.logger)), nil
}

func stdioIsTerminal() bool {
	return isTerminal(os.Stdin.Fd()) && isTerminal(os.Stdout.Fd())
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
