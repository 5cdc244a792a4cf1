// Package format writes command output as text, Markdown, JSON or EDN.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

const (
	Text     = "text"
	Markdown = "markdown"
	JSON     = "json"
	EDN      = "edn"
)

// TextWriter is implemented by values with a human-readable rendering.
type TextWriter interface {
	WriteText(w io.Writer) error
}

// MarkdownWriter is implemented by values with a Markdown rendering.
type MarkdownWriter interface {
	WriteMarkdown(w io.Writer) error
}

// Write writes v in the requested format. "text" and "markdown" require v to implement
// TextWriter and MarkdownWriter respectively.
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", Text:
		tw, ok := v.(TextWriter)
		if !ok {
			return fmt.Errorf("%T has no text rendering", v)
		}
		return tw.WriteText(w)
	case Markdown, "md":
		mw, ok := v.(MarkdownWriter)
		if !ok {
			return fmt.Errorf("%T has no markdown rendering", v)
		}
		return mw.WriteMarkdown(w)
	case JSON:
		return WriteJSON(w, v, pretty)
	case EDN:
		return WriteEDN(w, v, pretty)
	default:
		return fmt.Errorf("unknown format: %s (want text|markdown|json|edn)", format)
	}
}

// Valid reports whether format is one Write understands.
func Valid(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", Text, Markdown, "md", JSON, EDN:
		return true
	}
	return false
}

// WriteJSON writes strict JSON followed by a newline.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
