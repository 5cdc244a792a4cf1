package model

// Item is a single to-do entry.
type Item struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// Mode is derived from whether an item is currently targeted for rename.
type Mode string

const (
	ModeAdding  Mode = "adding"
	ModeEditing Mode = "editing"
)

// EditorState is the whole state of the editor.
//
// If EditingID is set, an item with that id exists in Items. Draft is either the pending
// name of a new item (ModeAdding) or the pending replacement name of the edited item.
type EditorState struct {
	Items     []Item `json:"items"`
	Draft     string `json:"draft"`
	EditingID *int64 `json:"editingId,omitempty"`
}

func (s EditorState) Mode() Mode {
	if s.EditingID != nil {
		return ModeEditing
	}
	return ModeAdding
}

// IndexOf returns the position of the item with id, or -1.
func (s EditorState) IndexOf(id int64) int {
	for i, it := range s.Items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func (s EditorState) Find(id int64) (Item, bool) {
	if i := s.IndexOf(id); i >= 0 {
		return s.Items[i], true
	}
	return Item{}, false
}
