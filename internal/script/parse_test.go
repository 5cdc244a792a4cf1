package script

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   command
		wantOK bool
	}{
		{name: "blank", in: "   "},
		{name: "comment", in: "  # note"},
		{name: "type keeps text verbatim", in: "type  two spaces ", want: command{verb: verbType, text: " two spaces "}, wantOK: true},
		{name: "type empty", in: "type", want: command{verb: verbType}, wantOK: true},
		{name: "add", in: "add Buy milk", want: command{verb: verbAdd, text: "Buy milk"}, wantOK: true},
		{name: "tab after verb", in: "add\tBuy milk", want: command{verb: verbAdd, text: "Buy milk"}, wantOK: true},
		{name: "tab before target", in: "delete\t2", want: command{verb: verbDelete, target: target{position: 2}}, wantOK: true},
		{name: "submit", in: "submit", want: command{verb: verbSubmit}, wantOK: true},
		{name: "case-insensitive verb", in: "SUBMIT", want: command{verb: verbSubmit}, wantOK: true},
		{name: "edit position", in: "edit 2", want: command{verb: verbEdit, target: target{position: 2}}, wantOK: true},
		{name: "delete id", in: "delete #1700000000000", want: command{verb: verbDelete, target: target{id: 1700000000000, byID: true}}, wantOK: true},
		{name: "crlf", in: "show\r", want: command{verb: verbShow}, wantOK: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := parseLine(1, tt.in)
			if err != nil {
				t.Fatalf("parseLine(%q): %v", tt.in, err)
			}
			if ok != tt.wantOK {
				t.Fatalf("ok: got %v want %v", ok, tt.wantOK)
			}
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(command{}, target{})); diff != "" {
				t.Fatalf("command mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseLine_Errors(t *testing.T) {
	tests := []struct {
		in     string
		reason string
	}{
		{"submit now", "submit takes no arguments"},
		{"edit", "missing row position"},
		{"edit 0", "row position must be a positive integer"},
		{"delete x", "row position must be a positive integer"},
		{"delete #x", "invalid item id"},
		{"rename 1", "unknown command"},
	}
	for _, tt := range tests {
		_, _, err := parseLine(7, tt.in)
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("%q: expected ParseError; got %v", tt.in, err)
		}
		if pe.Line != 7 || pe.Reason != tt.reason {
			t.Fatalf("%q: got %+v", tt.in, pe)
		}
	}
}
