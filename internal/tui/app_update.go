package tui

import (
	"todo-editor/internal/editor"
	"todo-editor/internal/model"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Init() tea.Cmd { return textinput.Blink }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(10, m.layout().inputW-3)
		m.help.Width = m.layout().contentW
		m.ensureSelectedVisible()
		return m, nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.handleClick(msg.X, msg.Y)
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		m.submit()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
			m.ensureSelectedVisible()
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.state().Items)-1 {
			m.selected++
			m.ensureSelectedVisible()
		}
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		if r, ok := m.selectedRow(); ok {
			m.beginEdit(r.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if r, ok := m.selectedRow(); ok {
			m.delete(r.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.showMinibuffer("")
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.state().Draft {
		m.dispatch(editor.TextChanged{Text: v})
	}
	return m, cmd
}

func (m *appModel) dispatch(ev editor.Event) model.EditorState {
	s := m.editor.Dispatch(ev)
	m.syncFromState()
	return s
}

func (m *appModel) submit() {
	before := m.state()
	after := m.dispatch(editor.Submitted{})
	switch {
	case before.Draft == after.Draft:
		// Blank draft: the reducer ignored it.
		m.showMinibuffer("Nothing to submit")
	case before.Mode() == model.ModeEditing:
		m.showMinibuffer("Updated")
	default:
		m.selected = len(after.Items) - 1
		m.ensureSelectedVisible()
		m.showMinibuffer("Added")
	}
}

func (m *appModel) beginEdit(id int64) {
	s := m.dispatch(editor.EditClicked{ID: id})
	if i := s.IndexOf(id); i >= 0 {
		m.selected = i
		m.ensureSelectedVisible()
		m.showMinibuffer("Editing #" + itoa(i+1))
	}
}

func (m *appModel) delete(id int64) {
	before := m.state()
	after := m.dispatch(editor.DeleteClicked{ID: id})
	if len(after.Items) == len(before.Items) {
		return
	}
	if before.EditingID != nil && *before.EditingID == id {
		m.showMinibuffer("Deleted (edit cancelled)")
		return
	}
	m.showMinibuffer("Deleted")
}

// handleClick maps a left click to the chip or row under it.
func (m *appModel) handleClick(x, y int) {
	lay := m.layout()
	if y == lay.inputY {
		if x >= lay.submitX && x < lay.submitX+lay.submitW {
			m.submit()
		}
		return
	}

	row := y - lay.rowsY
	if row < 0 || row >= lay.rowsShown {
		return
	}
	idx := m.rowOffset + row
	r, ok := m.editor.View().RowAt(idx + 1)
	if !ok {
		return
	}
	m.selected = idx
	switch {
	case x >= lay.editX && x < lay.editX+editChipW:
		m.beginEdit(r.ID)
	case x >= lay.deleteX && x < lay.deleteX+deleteChipW:
		m.delete(r.ID)
	}
}
