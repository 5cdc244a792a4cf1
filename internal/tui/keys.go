package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
)

type keyMap struct {
	Submit key.Binding
	Up     key.Binding
	Down   key.Binding
	Edit   key.Binding
	Delete key.Binding
	Clear  key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add/update")),
		// Emacs-style aliases alongside arrows (common muscle memory).
		Up:     key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑/ctrl+p", "prev")),
		Down:   key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓/ctrl+n", "next")),
		Edit:   key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "edit")),
		Delete: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete")),
		Clear:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear message")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Up, k.Down, k.Edit, k.Delete, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Edit, k.Delete},
		{k.Up, k.Down, k.Clear, k.Quit},
	}
}

// freeInputKeys drops textinput bindings that collide with row actions.
// ctrl+e (line end) and ctrl+d (delete forward) stay reachable via end/delete.
func freeInputKeys(in *textinput.Model) {
	in.KeyMap.LineEnd = key.NewBinding(key.WithKeys("end"))
	in.KeyMap.DeleteCharacterForward = key.NewBinding(key.WithKeys("delete"))
	in.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys())
	in.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys())
}
