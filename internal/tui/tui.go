// Package tui hosts the to-do editor in a bubbletea program.
package tui

import (
	"todo-editor/internal/config"
	"todo-editor/internal/editor"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

type Options struct {
	Editor *editor.Editor
	Logger *log.Logger
	Config config.TUIConfig
}

func Run(opts Options) error {
	applyColorProfilePreference()
	applyThemePreference(opts.Config.Theme)
	applyPalette(opts.Config)

	m := newAppModel(opts.Editor, opts.Logger, opts.Config)
	m.logger.Debug("tui start", "theme", opts.Config.Theme)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	if err != nil {
		m.logger.Error("tui exited", "err", err)
	}
	return err
}
