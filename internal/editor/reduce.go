package editor

import (
	"strings"

	"todo-editor/internal/model"
)

// Reducers take the current state and return the next one. They never mutate the
// input's Items slice, so callers may keep old states around (tests, trace output).

// Submit commits the draft: it renames the edited item, or appends a new item when
// nothing is being edited. A blank draft is ignored and leaves the state untouched.
func Submit(s model.EditorState, ids IDGenerator) model.EditorState {
	if strings.TrimSpace(s.Draft) == "" {
		return s
	}

	next := s
	if s.EditingID != nil {
		items := cloneItems(s.Items)
		if i := s.IndexOf(*s.EditingID); i >= 0 {
			// Stored as typed; only the emptiness check trims.
			items[i].Name = s.Draft
		}
		next.Items = items
		next.EditingID = nil
	} else {
		items := make([]model.Item, 0, len(s.Items)+1)
		items = append(items, s.Items...)
		items = append(items, model.Item{ID: ids.Next(), Name: s.Draft, Completed: false})
		next.Items = items
	}
	next.Draft = ""
	return next
}

// Delete removes the item with id. Unknown ids are a no-op.
//
// Deleting the item under edit drops back to adding mode and discards the pending
// rename, so EditingID never points at a missing item.
func Delete(s model.EditorState, id int64) model.EditorState {
	i := s.IndexOf(id)
	if i < 0 {
		return s
	}

	next := s
	items := make([]model.Item, 0, len(s.Items)-1)
	items = append(items, s.Items[:i]...)
	items = append(items, s.Items[i+1:]...)
	next.Items = items

	if s.EditingID != nil && *s.EditingID == id {
		next.EditingID = nil
		next.Draft = ""
	}
	return next
}

// BeginEdit loads the item's name into the draft and targets it for rename.
// Unknown ids leave the state unchanged.
func BeginEdit(s model.EditorState, id int64) model.EditorState {
	it, ok := s.Find(id)
	if !ok {
		return s
	}
	next := s
	next.Draft = it.Name
	target := it.ID
	next.EditingID = &target
	return next
}

// UpdateDraft replaces the draft text. No validation happens here.
func UpdateDraft(s model.EditorState, text string) model.EditorState {
	s.Draft = text
	return s
}

func cloneItems(items []model.Item) []model.Item {
	out := make([]model.Item, len(items))
	copy(out, items)
	return out
}
