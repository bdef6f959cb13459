package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/unrss/shellesc/internal/shell"
)

func newCommandCmd() *cobra.Command {
	var fromStdin bool

	cmd := &cobra.Command{
		Use:     "command [text...]",
		Aliases: []string{"cmd"},
		Short:   "Escape text for unquoted use on a command line",
		Long: `Escape shell metacharacters so the text can be placed, unquoted,
on a command line.

On windows every metacharacter is prefixed with a caret. On linux it is
prefixed with a backslash, and control characters and invalid UTF-8 are
dropped. Arguments are joined with single spaces; --stdin reads the text
verbatim instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd.InOrStdin(), args, fromStdin)
			if err != nil {
				return err
			}
			return runCommand(cmd.OutOrStdout(), input)
		},
	}

	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "read text from stdin")

	return cmd
}

func runCommand(w io.Writer, input string) error {
	p, err := targetPlatform()
	if err != nil {
		return err
	}

	logger.Debug("Escaping command", zap.Stringer("platform", p), zap.Int("bytes", len(input)))

	out, err := shell.EscapeCommand(input, p)
	if err != nil {
		logger.Warn("Rejected input", zap.Error(err))
		return fmt.Errorf("escape command: %w", err)
	}

	fmt.Fprintln(w, out)
	return nil
}
