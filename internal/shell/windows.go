package shell

import "strings"

// windowsEscaper implements the cmd.exe grammar: carets escape
// metacharacters on the command line, and arguments are double-quoted.
type windowsEscaper struct{}

func (windowsEscaper) Platform() Platform {
	return Windows
}

// Command prefixes every metacharacter, newline included, with a caret.
// Control characters and bytes that are not valid UTF-8 are kept as is.
func (windowsEscaper) Command(s string) (string, error) {
	if err := checkNullBytes("EscapeCommand", 1, "command", s); err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(s) + 10)
	for len(s) > 0 {
		u := decodeUnit(s)
		writeWindowsCommandUnit(&b, u)
		s = s[len(u.raw):]
	}
	return b.String(), nil
}

func writeWindowsCommandUnit(b *strings.Builder, u unit) {
	if Classify(u.r, Windows) == Meta {
		b.WriteByte('^')
	}
	b.WriteString(u.raw)
}

// Argument wraps s in double quotes. cmd.exe cannot reliably escape
// !, " and % inside quotes, so they become spaces. Backslashes are doubled.
func (windowsEscaper) Argument(s string) (string, error) {
	if err := checkNullBytes("EscapeArgument", 1, "arg", s); err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(s) + 10)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '!', '"', '%':
			b.WriteByte(' ')
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String(), nil
}
