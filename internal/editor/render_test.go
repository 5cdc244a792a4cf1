package editor

import (
	"bytes"
	"testing"

	"todo-editor/internal/model"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_AddingMode(t *testing.T) {
	v := Render(model.EditorState{
		Items: []model.Item{{ID: 10, Name: "A"}, {ID: 20, Name: "B"}},
		Draft: "C",
	})
	assert.Equal(t, LabelAdd, v.SubmitLabel)
	assert.Equal(t, PlaceholderAdd, v.Input.Placeholder)
	assert.Equal(t, "C", v.Input.Value)
	assert.Equal(t, []Row{
		{Position: 1, ID: 10, Name: "A"},
		{Position: 2, ID: 20, Name: "B"},
	}, v.Rows)
	assert.Equal(t, []string{ActionEdit, ActionDelete}, v.Rows[0].Actions())
}

func TestRender_EditingMode(t *testing.T) {
	id := int64(20)
	v := Render(model.EditorState{
		Items:     []model.Item{{ID: 10, Name: "A"}, {ID: 20, Name: "B"}},
		Draft:     "B",
		EditingID: &id,
	})
	assert.Equal(t, LabelUpdate, v.SubmitLabel)
	assert.Equal(t, PlaceholderUpdate, v.Input.Placeholder)
	assert.Equal(t, string(model.ModeEditing), v.Mode)
	assert.False(t, v.Rows[0].Editing)
	assert.True(t, v.Rows[1].Editing)
}

func TestView_RowAt(t *testing.T) {
	v := Render(model.EditorState{Items: []model.Item{{ID: 3, Name: "x"}}})
	r, ok := v.RowAt(1)
	require.True(t, ok)
	assert.Equal(t, int64(3), r.ID)
	_, ok = v.RowAt(0)
	assert.False(t, ok)
	_, ok = v.RowAt(2)
	assert.False(t, ok)
}

func TestEditor_DispatchLogs(t *testing.T) {
	var buf bytes.Buffer
	l := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	e := New(NewCounter(0), WithLogger(l))
	e.Dispatch(TextChanged{Text: "A"})
	e.Dispatch(Submitted{})

	out := buf.String()
	assert.Contains(t, out, "dispatch")
	assert.Contains(t, out, "submit")
	assert.Contains(t, out, "items=1")
}

func TestEditor_WithState(t *testing.T) {
	seed := model.EditorState{Items: []model.Item{{ID: 1, Name: "seed"}}}
	e := New(NewCounter(1), WithState(seed))
	e.Dispatch(TextChanged{Text: "next"})
	s := e.Dispatch(Submitted{})
	require.Len(t, s.Items, 2)
	assert.Equal(t, int64(2), s.Items[1].ID)
	assert.Equal(t, "next", e.View().Rows[1].Name)
}
