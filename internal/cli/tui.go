package cli

import (
	"io"
	"strings"

	"todo-editor/internal/tui"

	"github.com/charmbracelet/log"
)

func runTUI(app *App) error {
	ed, err := app.newEditor()
	if err != nil {
		return err
	}
	logger := app.logger
	if strings.TrimSpace(app.cfg.LogFile) == "" {
		// The TUI owns the terminal; stderr writes would corrupt the screen.
		logger = log.New(io.Discard)
	}
	return tui.Run(tui.Options{
		Editor: ed,
		Logger: logger,
		Config: app.cfg.TUI,
	})
}
