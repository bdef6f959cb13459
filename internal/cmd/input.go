package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// readInput returns stdin verbatim when fromStdin is set, otherwise the
// arguments joined by single spaces.
func readInput(stdin io.Reader, args []string, fromStdin bool) (string, error) {
	if fromStdin {
		if len(args) > 0 {
			return "", errors.New("cannot combine --stdin with arguments")
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	if len(args) == 0 {
		return "", errors.New("no input: pass text as arguments or use --stdin")
	}
	return strings.Join(args, " "), nil
}
