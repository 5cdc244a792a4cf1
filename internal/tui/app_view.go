package tui

import (
	"strconv"
	"strings"

	"todo-editor/internal/editor"

	"github.com/charmbracelet/lipgloss"
)

var (
	editChipW   = len(editor.ActionEdit) + 2
	deleteChipW = len(editor.ActionDelete) + 2
	actionsW    = editChipW + 1 + deleteChipW
)

// screenLayout holds the column/line positions shared by View and mouse hit-testing.
type screenLayout struct {
	contentW int

	inputY  int
	inputW  int
	submitX int
	submitW int

	rowsY     int
	rowsShown int
	nameW     int
	editX     int
	deleteX   int
}

func (m appModel) layout() screenLayout {
	w := m.width
	if w <= 0 {
		w = defaultWidth + 2*leftPad
	}
	contentW := min(maxContentW, w-2*leftPad)
	contentW = max(contentW, actionsW+12)

	v := m.editor.View()
	lay := screenLayout{contentW: contentW}
	lay.inputY = topPadLines + 2
	lay.submitW = len(v.SubmitLabel) + 2
	lay.inputW = contentW - lay.submitW - 1
	lay.submitX = leftPad + lay.inputW + 1

	lay.rowsY = topPadLines + headerLines
	lay.nameW = contentW - actionsW - 1
	lay.editX = leftPad + lay.nameW + 1
	lay.deleteX = lay.editX + editChipW + 1

	n := len(v.Rows) - m.rowOffset
	if vis := m.visibleRows(); vis > 0 && n > vis {
		n = vis
	}
	lay.rowsShown = max(0, n)
	return lay
}

func (m appModel) View() string {
	v := m.editor.View()
	lay := m.layout()
	pad := strings.Repeat(" ", leftPad)

	var lines []string
	for i := 0; i < topPadLines; i++ {
		lines = append(lines, "")
	}
	lines = append(lines, pad+styleTitle().Render(v.Title), "")

	submitBg := colorAddBg
	if v.SubmitLabel == editor.LabelUpdate {
		submitBg = colorUpdateBg
	}
	lines = append(lines,
		pad+renderInputLine(lay.inputW, m.input.View())+" "+chipStyle(submitBg).Render(v.SubmitLabel),
		"",
	)

	if len(v.Rows) == 0 {
		lines = append(lines, pad+styleMuted().Render("No todos yet."))
	}
	for i := 0; i < lay.rowsShown; i++ {
		idx := m.rowOffset + i
		lines = append(lines, pad+m.renderRow(v.Rows[idx], idx == m.selected, lay))
	}
	// The gap above the minibuffer doubles as the overflow hint.
	gap := ""
	if hidden := len(v.Rows) - m.rowOffset - lay.rowsShown; hidden > 0 {
		gap = pad + styleMuted().Render("… "+strconv.Itoa(hidden)+" more")
	}

	lines = append(lines, gap, pad+styleMuted().Render(m.minibufferText), pad+m.help.View(m.keys))
	return strings.Join(lines, "\n")
}

func (m appModel) renderRow(r editor.Row, selected bool, lay screenLayout) string {
	name := strings.NewReplacer("\n", " ", "\r", " ").Replace(r.Name)
	label := fitWidth(strconv.Itoa(r.Position)+". "+name, lay.nameW)

	st := lipgloss.NewStyle()
	if r.Editing {
		st = st.Foreground(colorAccent).Bold(true)
	}
	if selected {
		st = st.Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
	}

	return st.Render(label) + " " +
		chipStyle(colorAccent).Render(editor.ActionEdit) + " " +
		chipStyle(colorDeleteBg).Render(editor.ActionDelete)
}

func itoa(n int) string { return strconv.Itoa(n) }
