package format

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

type payload struct {
	ID          int64    `json:"id"`
	SubmitLabel string   `json:"submitLabel"`
	Tags        []string `json:"tags"`
	Done        bool     `json:"done"`
	Parent      *string  `json:"parent"`
}

type texty struct{}

func (texty) WriteText(w io.Writer) error {
	_, err := io.WriteString(w, "hello\n")
	return err
}

func TestWriteEDN(t *testing.T) {
	var buf bytes.Buffer
	v := payload{ID: 1734567890123, SubmitLabel: "Add", Tags: []string{"a", "b"}}
	if err := WriteEDN(&buf, v, false); err != nil {
		t.Fatalf("WriteEDN: %v", err)
	}
	want := `{:done false :id 1734567890123 :parent nil :submit-label "Add" :tags ["a" "b"]}` + "\n"
	if got := buf.String(); got != want {
		t.Fatalf("edn:\n got: %s\nwant: %s", got, want)
	}
}

func TestWriteEDN_StringEscapes(t *testing.T) {
	var buf bytes.Buffer
	v := map[string]any{"name": "a\x01b\x7f \"q\" \\ \t\n é"}
	if err := WriteEDN(&buf, v, false); err != nil {
		t.Fatalf("WriteEDN: %v", err)
	}
	want := `{:name "a\u0001b\u007f \"q\" \\ \t\n é"}` + "\n"
	if got := buf.String(); got != want {
		t.Fatalf("edn:\n got: %s\nwant: %s", got, want)
	}
}

func TestWriteEDN_Pretty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteEDN(&buf, map[string]any{"rows": []any{}, "n": 1}, true); err != nil {
		t.Fatalf("WriteEDN: %v", err)
	}
	want := "{\n  :n 1\n  :rows []\n}\n"
	if got := buf.String(); got != want {
		t.Fatalf("pretty edn:\n got: %q\nwant: %q", got, want)
	}
}

func TestWrite_Formats(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, texty{}, "text", false); err != nil || buf.String() != "hello\n" {
		t.Fatalf("text: err=%v out=%q", err, buf.String())
	}

	buf.Reset()
	if err := Write(&buf, map[string]string{"a": "<b>"}, "JSON", false); err != nil {
		t.Fatalf("json: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != `{"a":"<b>"}` {
		t.Fatalf("json: got %s", got)
	}

	if err := Write(&buf, 1, "text", false); err == nil {
		t.Fatalf("expected error for value without text rendering")
	}
	if err := Write(&buf, 1, "yaml", false); err == nil {
		t.Fatalf("expected unknown format error")
	}
	if Valid("yaml") || !Valid("edn") || !Valid("") || !Valid("md") {
		t.Fatalf("Valid mismatch")
	}
}
