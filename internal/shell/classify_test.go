package shell

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		r       rune
		windows Class
		linux   Class
	}{
		{"letter", 'a', Safe, Safe},
		{"digit", '7', Safe, Safe},
		{"space", ' ', Safe, Safe},
		{"slash", '/', Safe, Safe},
		{"tab", '\t', Safe, Safe},
		{"carriage return", '\r', Safe, Safe},
		{"newline", '\n', Meta, Meta},
		{"null", 0x00, Control, Control},
		{"bell", 0x07, Control, Control},
		{"escape", 0x1b, Control, Control},
		{"unit separator", 0x1f, Control, Control},
		{"delete", 0x7f, Safe, Safe},
		{"semicolon", ';', Meta, Meta},
		{"ampersand", '&', Meta, Meta},
		{"pipe", '|', Meta, Meta},
		{"caret", '^', Meta, Meta},
		{"percent", '%', Meta, Meta},
		{"bang", '!', Meta, Meta},
		{"double quote", '"', Meta, Meta},
		{"dollar", '$', Meta, Meta},
		{"backslash", '\\', Meta, Meta},
		{"backtick", '`', Meta, Meta},
		{"star", '*', Meta, Meta},
		{"parens", '(', Meta, Meta},
		{"redirect", '>', Meta, Meta},
		{"single quote", '\'', Safe, Meta},
		{"latin1", 'é', Safe, Safe},
		{"cjk", '日', Safe, Safe},
		{"emoji", '🙂', Safe, Safe},
		{"rune error", utf8.RuneError, Safe, Safe},
		{"negative", -1, Safe, Safe},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.r, Windows); got != tt.windows {
				t.Errorf("Classify(%q, Windows) = %v, want %v", tt.r, got, tt.windows)
			}
			if got := Classify(tt.r, Linux); got != tt.linux {
				t.Errorf("Classify(%q, Linux) = %v, want %v", tt.r, got, tt.linux)
			}
		})
	}
}

func TestClassifyIsStable(t *testing.T) {
	t.Parallel()

	for r := rune(0); r < 0x100; r++ {
		for _, p := range []Platform{Windows, Linux} {
			first := Classify(r, p)
			for i := 0; i < 3; i++ {
				if got := Classify(r, p); got != first {
					t.Fatalf("Classify(%q, %v) changed from %v to %v", r, p, first, got)
				}
			}
		}
	}
}

func TestClassMarshalText(t *testing.T) {
	t.Parallel()

	got, err := json.Marshal([]Class{Safe, Control, Meta})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if want := `["safe","control","meta"]`; string(got) != want {
		t.Errorf("Marshal = %s, want %s", got, want)
	}
}

func TestExplain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		platform Platform
		want     []Unit
	}{
		{
			name:     "empty",
			input:    "",
			platform: Linux,
			want:     nil,
		},
		{
			name:     "linux drops invalid byte",
			input:    "a;\xff",
			platform: Linux,
			want: []Unit{
				{Offset: 0, Raw: "a", Valid: true, Class: Safe, Output: "a"},
				{Offset: 1, Raw: ";", Valid: true, Class: Meta, Output: `\;`},
				{Offset: 2, Raw: "\xff", Valid: false, Class: Safe, Output: ""},
			},
		},
		{
			name:     "windows keeps invalid byte",
			input:    "a;\xff",
			platform: Windows,
			want: []Unit{
				{Offset: 0, Raw: "a", Valid: true, Class: Safe, Output: "a"},
				{Offset: 1, Raw: ";", Valid: true, Class: Meta, Output: "^;"},
				{Offset: 2, Raw: "\xff", Valid: false, Class: Safe, Output: "\xff"},
			},
		},
		{
			name:     "multibyte offsets",
			input:    "é\x01",
			platform: Linux,
			want: []Unit{
				{Offset: 0, Raw: "é", Valid: true, Class: Safe, Output: "é"},
				{Offset: 2, Raw: "\x01", Valid: true, Class: Control, Output: ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Explain(tt.input, tt.platform)
			if err != nil {
				t.Fatalf("Explain() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Explain() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExplainMatchesEscapeCommand(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"ls; rm -rf /",
		"echo `id` $HOME > out.txt",
		"line1\nline2\r\n\ttab",
		"\xed\xa0\x80 surrogate",
		"\x01\x02 control",
		"日本語 | grep é",
	}

	for _, p := range []Platform{Windows, Linux} {
		for _, in := range inputs {
			units, err := Explain(in, p)
			if err != nil {
				t.Fatalf("Explain(%q, %v) error: %v", in, p, err)
			}
			var b strings.Builder
			for _, u := range units {
				b.WriteString(u.Output)
			}
			want, err := EscapeCommand(in, p)
			if err != nil {
				t.Fatalf("EscapeCommand(%q, %v) error: %v", in, p, err)
			}
			if b.String() != want {
				t.Errorf("Explain(%q, %v) outputs = %q, EscapeCommand = %q", in, p, b.String(), want)
			}
		}
	}
}

func TestUnitHex(t *testing.T) {
	t.Parallel()

	u := Unit{Raw: "\xed\xa0\x80"}
	if got := u.Hex(); got != "ed a0 80" {
		t.Errorf("Hex() = %q, want %q", got, "ed a0 80")
	}
}
