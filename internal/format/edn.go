package format

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// WriteEDN writes the subset of EDN needed for our payloads: maps with keyword keys,
// vectors, strings, numbers, booleans and nil.
//
// Values are first round-tripped through encoding/json so struct tags decide key names.
// Numbers are kept as json.Number so large integer ids are not squeezed through float64.
func WriteEDN(w io.Writer, v any, pretty bool) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var x any
	if err := dec.Decode(&x); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	p := ednPrinter{w: bw, pretty: pretty}
	p.value(x, 0)
	bw.WriteByte('\n')
	return bw.Flush()
}

type ednPrinter struct {
	w      *bufio.Writer
	pretty bool
}

func (p ednPrinter) value(v any, depth int) {
	switch t := v.(type) {
	case nil:
		p.w.WriteString("nil")
	case bool:
		p.w.WriteString(strconv.FormatBool(t))
	case json.Number:
		p.w.WriteString(t.String())
	case string:
		writeEDNString(p.w, t)
	case []any:
		p.seq('[', ']', len(t), depth, func(i int) { p.value(t[i], depth+1) })
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		p.seq('{', '}', len(keys), depth, func(i int) {
			p.w.WriteString(ednKeyword(keys[i]))
			p.w.WriteByte(' ')
			p.value(t[keys[i]], depth+1)
		})
	}
}

func (p ednPrinter) seq(open, close byte, n, depth int, each func(i int)) {
	p.w.WriteByte(open)
	for i := 0; i < n; i++ {
		switch {
		case p.pretty:
			p.w.WriteByte('\n')
			p.w.WriteString(strings.Repeat("  ", depth+1))
		case i > 0:
			p.w.WriteByte(' ')
		}
		each(i)
	}
	if p.pretty && n > 0 {
		p.w.WriteByte('\n')
		p.w.WriteString(strings.Repeat("  ", depth))
	}
	p.w.WriteByte(close)
}

// ednKeyword turns a JSON key into a keyword: submitLabel -> :submit-label.
func ednKeyword(s string) string {
	var sb strings.Builder
	sb.WriteByte(':')
	for i, r := range strings.TrimSpace(s) {
		switch {
		case r == ' ' || r == '_':
			sb.WriteByte('-')
		case r >= 'A' && r <= 'Z':
			if i > 0 {
				sb.WriteByte('-')
			}
			sb.WriteRune(r + ('a' - 'A'))
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// writeEDNString quotes s using only the escapes EDN readers accept: \" \\ \n \r \t
// and \uXXXX for the remaining control characters. Other runes are written as-is.
func writeEDNString(w *bufio.Writer, s string) {
	w.WriteByte('"')
	for _, r := range s {
		switch {
		case r == '"':
			w.WriteString(`\"`)
		case r == '\\':
			w.WriteString(`\\`)
		case r == '\n':
			w.WriteString(`\n`)
		case r == '\r':
			w.WriteString(`\r`)
		case r == '\t':
			w.WriteString(`\t`)
		case r < 0x20 || r == 0x7f || (r >= 0x80 && r < 0xa0):
			fmt.Fprintf(w, `\u%04x`, r)
		default:
			w.WriteRune(r)
		}
	}
	w.WriteByte('"')
}
