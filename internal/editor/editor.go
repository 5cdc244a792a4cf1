// Package editor holds the to-do editor's state and the reducers that move it forward.
//
// Hosts (the terminal UI, the script runner) own the event loop; they translate input into
// Events and hand them to Editor.Dispatch one at a time.
package editor

import (
	"io"

	"todo-editor/internal/model"

	"github.com/charmbracelet/log"
)

// Editor pairs the current state with the id generator used for new items.
// It is not safe for concurrent use; hosts dispatch from a single goroutine.
type Editor struct {
	state  model.EditorState
	ids    IDGenerator
	logger *log.Logger
}

type Option func(*Editor)

func WithLogger(l *log.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithState seeds the editor, mostly for tests and demos.
func WithState(s model.EditorState) Option {
	return func(e *Editor) { e.state = s }
}

func New(ids IDGenerator, opts ...Option) *Editor {
	if ids == nil {
		ids = NewCounter(0)
	}
	e := &Editor{
		ids:    ids,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Editor) State() model.EditorState { return e.state }

func (e *Editor) View() View { return Render(e.state) }

// Dispatch applies ev and returns the resulting state.
func (e *Editor) Dispatch(ev Event) model.EditorState {
	before := e.state
	e.state = Apply(e.state, e.ids, ev)
	e.logger.Debug("dispatch",
		"event", ev.String(),
		"mode", e.state.Mode(),
		"items", len(e.state.Items),
		"noop", sameState(before, e.state),
	)
	return e.state
}

func sameState(a, b model.EditorState) bool {
	if a.Draft != b.Draft || len(a.Items) != len(b.Items) {
		return false
	}
	if (a.EditingID == nil) != (b.EditingID == nil) {
		return false
	}
	if a.EditingID != nil && *a.EditingID != *b.EditingID {
		return false
	}
	for i := range a.Items {
		if a.Items[i] != b.Items[i] {
			return false
		}
	}
	return true
}
