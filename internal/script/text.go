package script

import (
	"fmt"
	"io"
	"strings"

	"todo-editor/internal/editor"
	"todo-editor/internal/publish"
)

// textView renders an editor.View as plain text or Markdown; JSON/EDN output uses the
// embedded View.
type textView struct {
	editor.View
}

func (v textView) WriteText(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", v.Title)
	if v.Input.Value == "" {
		fmt.Fprintf(&b, "> (%s)", v.Input.Placeholder)
	} else {
		fmt.Fprintf(&b, "> %s", v.Input.Value)
	}
	fmt.Fprintf(&b, " [%s]\n", v.SubmitLabel)
	for _, r := range v.Rows {
		marker := ""
		if r.Editing {
			marker = " *"
		}
		actions := make([]string, 0, 2)
		for _, a := range r.Actions() {
			actions = append(actions, "["+a+"]")
		}
		fmt.Fprintf(&b, "%d. %s%s  %s\n", r.Position, r.Name, marker, strings.Join(actions, " "))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (v textView) WriteMarkdown(w io.Writer) error {
	_, err := io.WriteString(w, publish.RenderMarkdown(v.View))
	return err
}
