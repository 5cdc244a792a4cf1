// Package publish renders the to-do list as a Markdown checklist.
package publish

import (
	"bytes"
	"strings"

	"todo-editor/internal/editor"
)

// RenderMarkdown writes v as a heading plus one task-list line per row, in list order.
// The pending draft is not part of the list and is left out.
func RenderMarkdown(v editor.View) string {
	var buf bytes.Buffer
	writeLn := func(s string) {
		buf.WriteString(s)
		buf.WriteString("\n")
	}

	writeLn("# " + strings.TrimSpace(v.Title))
	writeLn("")
	if len(v.Rows) == 0 {
		writeLn("_No todos._")
		return buf.String()
	}
	for _, r := range v.Rows {
		box := "[ ]"
		if r.Completed {
			box = "[x]"
		}
		writeLn("- " + box + " " + escapeInline(r.Name))
	}
	return buf.String()
}

var inlineEscaper = strings.NewReplacer(
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
)

func escapeInline(s string) string {
	return inlineEscaper.Replace(s)
}
