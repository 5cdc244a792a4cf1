package script

import (
	"fmt"
	"strconv"
	"strings"
)

type verb string

const (
	verbType   verb = "type"
	verbSubmit verb = "submit"
	verbAdd    verb = "add"
	verbEdit   verb = "edit"
	verbDelete verb = "delete"
	verbShow   verb = "show"
)

// target addresses a row either by 1-based render position or, with a leading '#', by item id.
type target struct {
	position int
	id       int64
	byID     bool
}

type command struct {
	verb   verb
	text   string
	target target
}

// ParseError reports a malformed script line. Parsing stops at the first one.
type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// parseLine returns ok=false for blank lines and comments.
func parseLine(n int, raw string) (command, bool, error) {
	line := strings.TrimRight(raw, "\r\n")
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return command{}, false, nil
	}

	word, rest := splitVerb(strings.TrimLeft(line, " \t"))
	fail := func(reason string) (command, bool, error) {
		return command{}, false, &ParseError{Line: n, Text: raw, Reason: reason}
	}

	switch v := verb(strings.ToLower(word)); v {
	case verbType, verbAdd:
		// Text is taken verbatim after the single separating space.
		return command{verb: v, text: rest}, true, nil
	case verbSubmit, verbShow:
		if strings.TrimSpace(rest) != "" {
			return fail(fmt.Sprintf("%s takes no arguments", v))
		}
		return command{verb: v}, true, nil
	case verbEdit, verbDelete:
		tg, err := parseTarget(strings.TrimSpace(rest))
		if err != nil {
			return fail(err.Error())
		}
		return command{verb: v, target: tg}, true, nil
	default:
		return fail("unknown command")
	}
}

func parseTarget(s string) (target, error) {
	if s == "" {
		return target{}, fmt.Errorf("missing row position")
	}
	if idStr, ok := strings.CutPrefix(s, "#"); ok {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			return target{}, fmt.Errorf("invalid item id")
		}
		return target{id: id, byID: true}, nil
	}
	pos, err := strconv.Atoi(s)
	if err != nil || pos < 1 {
		return target{}, fmt.Errorf("row position must be a positive integer")
	}
	return target{position: pos}, nil
}

// splitVerb cuts at the first space or tab; the separator itself is dropped.
func splitVerb(s string) (string, string) {
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i+1:]
}
