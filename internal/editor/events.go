package editor

import (
	"fmt"

	"todo-editor/internal/model"
)

// Event is an input event produced by a rendering surface.
type Event interface {
	isEvent()
	fmt.Stringer
}

// TextChanged fires on every edit of the input field.
type TextChanged struct{ Text string }

// Submitted fires when the form is submitted (enter / submit button).
type Submitted struct{}

// EditClicked fires when a row's Edit action is chosen.
type EditClicked struct{ ID int64 }

// DeleteClicked fires when a row's Delete action is chosen.
type DeleteClicked struct{ ID int64 }

func (TextChanged) isEvent()   {}
func (Submitted) isEvent()     {}
func (EditClicked) isEvent()   {}
func (DeleteClicked) isEvent() {}

func (e TextChanged) String() string   { return fmt.Sprintf("text-changed %q", e.Text) }
func (Submitted) String() string       { return "submit" }
func (e EditClicked) String() string   { return fmt.Sprintf("edit %d", e.ID) }
func (e DeleteClicked) String() string { return fmt.Sprintf("delete %d", e.ID) }

// Apply routes ev to its reducer.
func Apply(s model.EditorState, ids IDGenerator, ev Event) model.EditorState {
	switch e := ev.(type) {
	case TextChanged:
		return UpdateDraft(s, e.Text)
	case Submitted:
		return Submit(s, ids)
	case EditClicked:
		return BeginEdit(s, e.ID)
	case DeleteClicked:
		return Delete(s, e.ID)
	default:
		return s
	}
}
