package editor

import "todo-editor/internal/model"

const (
	Title = "Todo"

	LabelAdd    = "Add"
	LabelUpdate = "Update"

	PlaceholderAdd    = "Add a new Todo"
	PlaceholderUpdate = "Update your Todo"

	ActionEdit   = "Edit"
	ActionDelete = "Delete"
)

// View is the surface-independent rendering of an EditorState.
type View struct {
	Title       string `json:"title"`
	Rows        []Row  `json:"rows"`
	Input       Input  `json:"input"`
	SubmitLabel string `json:"submitLabel"`
	Mode        string `json:"mode"`
}

// Row is one list entry. Every row offers the Edit and Delete actions.
type Row struct {
	Position  int    `json:"position"`
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed,omitempty"`
	Editing   bool   `json:"editing,omitempty"`
}

type Input struct {
	Value       string `json:"value"`
	Placeholder string `json:"placeholder"`
}

func (Row) Actions() []string { return []string{ActionEdit, ActionDelete} }

func Render(s model.EditorState) View {
	v := View{
		Title: Title,
		Rows:  make([]Row, 0, len(s.Items)),
		Input: Input{Value: s.Draft, Placeholder: PlaceholderAdd},
		Mode:  string(s.Mode()),
	}
	v.SubmitLabel = LabelAdd
	if s.Mode() == model.ModeEditing {
		v.SubmitLabel = LabelUpdate
		v.Input.Placeholder = PlaceholderUpdate
	}
	for i, it := range s.Items {
		v.Rows = append(v.Rows, Row{
			Position:  i + 1,
			ID:        it.ID,
			Name:      it.Name,
			Completed: it.Completed,
			Editing:   s.EditingID != nil && *s.EditingID == it.ID,
		})
	}
	return v
}

// RowAt returns the row at a 1-based position.
func (v View) RowAt(pos int) (Row, bool) {
	if pos < 1 || pos > len(v.Rows) {
		return Row{}, false
	}
	return v.Rows[pos-1], true
}
