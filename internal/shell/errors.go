package shell

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNullByte is returned, wrapped in a *NullByteError, when an input
// contains a U+0000 byte. No escaping grammar can represent it.
var ErrNullByte = errors.New("argument must not contain null bytes")

// NullByteError identifies the argument that contained a null byte.
type NullByteError struct {
	Func     string // entry point that rejected the input
	Position int    // 1-based argument position
	Param    string // parameter name
	Offset   int    // byte offset of the first null byte
}

func (e *NullByteError) Error() string {
	return fmt.Sprintf("%s(): argument #%d (%s) must not contain null bytes", e.Func, e.Position, e.Param)
}

func (e *NullByteError) Unwrap() error {
	return ErrNullByte
}

func checkNullBytes(fn string, pos int, param, s string) error {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return &NullByteError{Func: fn, Position: pos, Param: param, Offset: i}
	}
	return nil
}
