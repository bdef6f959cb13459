package shell

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Class is the escaping category of a code point.
type Class int

const (
	// Safe characters pass through unchanged.
	Safe Class = iota
	// Control characters are C0 controls other than tab, newline and CR.
	Control
	// Meta characters have syntactic meaning to the target shell.
	Meta
)

func (c Class) String() string {
	switch c {
	case Control:
		return "control"
	case Meta:
		return "meta"
	default:
		return "safe"
	}
}

// MarshalText encodes the class by name.
func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a class name written by MarshalText.
func (c *Class) UnmarshalText(text []byte) error {
	switch string(text) {
	case "safe":
		*c = Safe
	case "control":
		*c = Control
	case "meta":
		*c = Meta
	default:
		return fmt.Errorf("unknown class %q", text)
	}
	return nil
}

// Characters with meaning to cmd.exe and to POSIX shells. Newline is
// meta on both: cmd.exe treats it as a command separator and sh as the
// end of a command.
const (
	windowsMeta = "!\"%&()*;<>^$\\`|\n"
	linuxMeta   = "!\"%&()*;<>^$\\`'|\n"
)

var classTables = [2][utf8.RuneSelf]Class{
	Linux:   buildClassTable(linuxMeta),
	Windows: buildClassTable(windowsMeta),
}

func buildClassTable(meta string) [utf8.RuneSelf]Class {
	var t [utf8.RuneSelf]Class
	for c := 0; c < 0x20; c++ {
		switch c {
		case '\t', '\n', '\r':
		default:
			t[c] = Control
		}
	}
	for i := 0; i < len(meta); i++ {
		t[meta[i]] = Meta
	}
	return t
}

// Classify returns the escaping class of r on platform p. Everything
// outside ASCII is Safe, including utf8.RuneError.
func Classify(r rune, p Platform) Class {
	if r < 0 || r >= utf8.RuneSelf {
		return Safe
	}
	if p != Windows {
		p = Linux
	}
	return classTables[p][r]
}

// unit is one decoding step over a string: a valid UTF-8 sequence or a
// single byte that does not start one.
type unit struct {
	raw   string
	r     rune
	valid bool
}

func decodeUnit(s string) unit {
	r, size := utf8.DecodeRuneInString(s)
	return unit{
		raw:   s[:size],
		r:     r,
		valid: r != utf8.RuneError || size > 1,
	}
}

// Unit describes how one decoding unit of an input is command-escaped.
type Unit struct {
	Offset int    `json:"offset"`
	Raw    string `json:"raw"`
	Valid  bool   `json:"valid"`
	Class  Class  `json:"class"`
	Output string `json:"output"`
}

// Hex returns the unit's bytes as space-separated hex pairs.
func (u Unit) Hex() string {
	parts := make([]string, len(u.Raw))
	for i := 0; i < len(u.Raw); i++ {
		parts[i] = fmt.Sprintf("%02x", u.Raw[i])
	}
	return strings.Join(parts, " ")
}

// Explain breaks s into decoding units and reports the class and the
// command-escaped output of each. Concatenating the outputs yields
// EscapeCommand(s, p).
func Explain(s string, p Platform) ([]Unit, error) {
	if err := checkNullBytes("Explain", 1, "command", s); err != nil {
		return nil, err
	}

	w := commandWriterFor(p)
	var units []Unit
	for off := 0; off < len(s); {
		u := decodeUnit(s[off:])

		var b strings.Builder
		w(&b, u)
		units = append(units, Unit{
			Offset: off,
			Raw:    u.raw,
			Valid:  u.valid,
			Class:  Classify(u.r, p),
			Output: b.String(),
		})
		off += len(u.raw)
	}
	return units, nil
}
