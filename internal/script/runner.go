// Package script replays editor input events from a line-oriented script and prints the result.
//
// Script lines:
//
//	type <text>      set the draft (text-change event)
//	submit           submit the form
//	add <text>       type + submit
//	edit <pos|#id>   click Edit on a row
//	delete <pos|#id> click Delete on a row
//	show             print the current view
//	# comment
package script

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"todo-editor/internal/editor"
	"todo-editor/internal/format"

	"github.com/charmbracelet/log"
)

// MaxLineBytes caps a single script line.
const MaxLineBytes = 1 << 20

type Runner struct {
	Editor *editor.Editor
	Out    io.Writer
	Logger *log.Logger

	// Format is text|markdown|json|edn.
	Format string
	Pretty bool
	// Trace prints the view after every command instead of once at the end.
	Trace bool
}

func (r *Runner) logger() *log.Logger {
	if r.Logger == nil {
		r.Logger = log.New(io.Discard)
	}
	return r.Logger
}

// Run executes every line of in, then prints the final view (unless Trace already did).
func (r *Runner) Run(in io.Reader) error {
	if r.Editor == nil {
		r.Editor = editor.New(editor.NewCounter(0), editor.WithLogger(r.logger()))
	}
	if !format.Valid(r.Format) {
		return fmt.Errorf("unknown format: %s (want text|markdown|json|edn)", r.Format)
	}

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)
	n := 0
	for sc.Scan() {
		n++
		cmd, ok, err := parseLine(n, sc.Text())
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if err := r.exec(cmd); err != nil {
			return err
		}
		if r.Trace {
			if _, err := fmt.Fprintf(r.Out, "$ %s\n", strings.TrimSpace(sc.Text())); err != nil {
				return err
			}
			if err := r.show(); err != nil {
				return err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	r.logger().Debug("script done", "lines", n, "items", len(r.Editor.State().Items))

	if r.Trace {
		return nil
	}
	return r.show()
}

func (r *Runner) exec(c command) error {
	switch c.verb {
	case verbType:
		r.Editor.Dispatch(editor.TextChanged{Text: c.text})
	case verbSubmit:
		r.Editor.Dispatch(editor.Submitted{})
	case verbAdd:
		r.Editor.Dispatch(editor.TextChanged{Text: c.text})
		r.Editor.Dispatch(editor.Submitted{})
	case verbEdit, verbDelete:
		id, ok := r.resolve(c.target)
		if !ok {
			r.logger().Debug("no row at position", "position", c.target.position, "command", c.verb)
			return nil
		}
		if c.verb == verbEdit {
			r.Editor.Dispatch(editor.EditClicked{ID: id})
		} else {
			r.Editor.Dispatch(editor.DeleteClicked{ID: id})
		}
	case verbShow:
		if !r.Trace {
			return r.show()
		}
	}
	return nil
}

func (r *Runner) resolve(t target) (int64, bool) {
	if t.byID {
		return t.id, true
	}
	row, ok := r.Editor.View().RowAt(t.position)
	return row.ID, ok
}

func (r *Runner) show() error {
	return format.Write(r.Out, textView{View: r.Editor.View()}, r.Format, r.Pretty)
}
