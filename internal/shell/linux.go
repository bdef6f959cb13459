package shell

import "strings"

// linuxEscaper implements the POSIX sh grammar: backslashes escape
// metacharacters on the command line, and arguments are single-quoted.
type linuxEscaper struct{}

func (linuxEscaper) Platform() Platform {
	return Linux
}

// Command prefixes every metacharacter with a backslash, so a backslash
// doubles and a newline becomes a line continuation. Control characters
// and bytes that are not valid UTF-8 (encoded surrogates among them) are
// dropped; the Windows escaper keeps them.
func (linuxEscaper) Command(s string) (string, error) {
	if err := checkNullBytes("EscapeCommand", 1, "command", s); err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(s) + 10)
	for len(s) > 0 {
		u := decodeUnit(s)
		writeLinuxCommandUnit(&b, u)
		s = s[len(u.raw):]
	}
	return b.String(), nil
}

func writeLinuxCommandUnit(b *strings.Builder, u unit) {
	if !u.valid {
		return
	}
	switch Classify(u.r, Linux) {
	case Control:
		return
	case Meta:
		b.WriteByte('\\')
	}
	b.WriteString(u.raw)
}

// Argument wraps s in single quotes. Only the single quote itself needs
// handling: it closes the quote, emits an escaped quote and reopens.
func (linuxEscaper) Argument(s string) (string, error) {
	if err := checkNullBytes("EscapeArgument", 1, "arg", s); err != nil {
		return "", err
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'", nil
}

// commandWriterFor returns the per-unit command escaper for p.
func commandWriterFor(p Platform) func(*strings.Builder, unit) {
	if p == Windows {
		return writeWindowsCommandUnit
	}
	return writeLinuxCommandUnit
}
