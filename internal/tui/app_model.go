package tui

import (
	"io"

	"todo-editor/internal/config"
	"todo-editor/internal/editor"
	"todo-editor/internal/model"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/log"
)

type appModel struct {
	editor *editor.Editor
	logger *log.Logger

	input textinput.Model
	keys  keyMap
	help  help.Model

	width  int
	height int

	// selected is the highlighted row index, -1 when the list is empty.
	selected int
	// rowOffset is the first visible row when the list is taller than the screen.
	rowOffset int

	minibufferText string
}

const (
	topPadLines  = 1
	leftPad      = 2
	maxContentW  = 96
	defaultWidth = 60
	// Title, gap, input, gap.
	headerLines = 4
	// Gap, minibuffer, help.
	footerLines = 3
)

func newAppModel(ed *editor.Editor, logger *log.Logger, cfg config.TUIConfig) appModel {
	if ed == nil {
		ed = editor.New(editor.NewCounter(0))
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := appModel{
		editor:   ed,
		logger:   logger,
		keys:     newKeyMap(),
		help:     help.New(),
		selected: -1,
	}

	m.input = textinput.New()
	m.input.Prompt = ""
	m.input.Placeholder = editor.PlaceholderAdd
	m.input.CharLimit = cfg.CharLimit
	if m.input.CharLimit <= 0 {
		m.input.CharLimit = config.DefaultCharLimit
	}
	m.input.Width = 40
	freeInputKeys(&m.input)
	m.input.Focus()

	m.syncFromState()
	return m
}

func (m appModel) state() model.EditorState { return m.editor.State() }

// syncFromState pushes editor state into the widgets after a dispatch. The text input is
// only rewritten when the draft changed underneath it (submit, edit, delete) so the cursor
// position survives ordinary typing.
func (m *appModel) syncFromState() {
	v := m.editor.View()
	if m.input.Value() != v.Input.Value {
		m.input.SetValue(v.Input.Value)
		m.input.CursorEnd()
	}
	m.input.Placeholder = v.Input.Placeholder
	m.clampSelection()
}

func (m *appModel) clampSelection() {
	n := len(m.state().Items)
	if n == 0 {
		m.selected = -1
		m.rowOffset = 0
		return
	}
	if m.selected < 0 {
		m.selected = 0
	}
	if m.selected >= n {
		m.selected = n - 1
	}
	m.ensureSelectedVisible()
}

func (m *appModel) ensureSelectedVisible() {
	visible := m.visibleRows()
	if visible <= 0 || m.selected < 0 {
		m.rowOffset = 0
		return
	}
	if m.selected < m.rowOffset {
		m.rowOffset = m.selected
	}
	if m.selected >= m.rowOffset+visible {
		m.rowOffset = m.selected - visible + 1
	}
	if maxOff := len(m.state().Items) - visible; m.rowOffset > maxOff {
		m.rowOffset = max(0, maxOff)
	}
}

// visibleRows is the number of list rows that fit; 0 means unbounded (size not known yet).
func (m appModel) visibleRows() int {
	if m.height <= 0 {
		return 0
	}
	return max(1, m.height-topPadLines-headerLines-footerLines)
}

func (m appModel) selectedRow() (editor.Row, bool) {
	if m.selected < 0 {
		return editor.Row{}, false
	}
	return m.editor.View().RowAt(m.selected + 1)
}

func (m *appModel) showMinibuffer(text string) {
	m.minibufferText = text
}
