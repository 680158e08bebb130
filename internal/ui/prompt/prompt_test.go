package prompt

import (
	"bytes"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "exact_match", input: "worm\n", want: true},
		{name: "surrounding_space", input: "  worm  \n", want: true},
		{name: "no_trailing_newline", input: "worm", want: true},
		{name: "mismatch", input: "other\n", want: false},
		{name: "case_differs", input: "WORM\n", want: false},
		{name: "empty_input", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewStandardPrompter(strings.NewReader(tt.input), &out)

			got, err := p.Confirm("About to lock bucket", "worm")
			if err != nil {
				t.Fatalf("Confirm: %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm = %v, want %v", got, tt.want)
			}
			if !strings.Contains(out.String(), "About to lock bucket") || !strings.Contains(out.String(), "'worm'") {
				t.Errorf("prompt output = %q", out.String())
			}
		})
	}
}

func TestConfirmRejectsEmptyExpectedValue(t *testing.T) {
	p := NewStandardPrompter(strings.NewReader("x\n"), &bytes.Buffer{})
	if _, err := p.Confirm("msg", ""); err == nil {
		t.Fatal("expected error for empty expected value")
	}
}
