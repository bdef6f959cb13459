package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/unrss/shellesc/internal/shell"
)

func newArgumentCmd() *cobra.Command {
	var fromStdin bool

	cmd := &cobra.Command{
		Use:     "argument [value...]",
		Aliases: []string{"arg"},
		Short:   "Quote values as single command-line arguments",
		Long: `Quote each value so the shell passes it through as exactly one
literal argument. Each quoted value is printed on its own line.

On windows values are double-quoted; !, " and % become spaces and
backslashes are doubled. On linux values are single-quoted and embedded
single quotes become '\''.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := args
			if fromStdin {
				input, err := readInput(cmd.InOrStdin(), args, true)
				if err != nil {
					return err
				}
				values = []string{input}
			}
			if len(values) == 0 {
				return errors.New("no input: pass values as arguments or use --stdin")
			}
			return runArgument(cmd.OutOrStdout(), values)
		},
	}

	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "read a single value from stdin")

	return cmd
}

func runArgument(w io.Writer, values []string) error {
	p, err := targetPlatform()
	if err != nil {
		return err
	}

	for i, v := range values {
		logger.Debug("Quoting argument",
			zap.Stringer("platform", p),
			zap.Int("index", i),
			zap.Int("bytes", len(v)))

		out, err := shell.EscapeArgument(v, p)
		if err != nil {
			logger.Warn("Rejected input", zap.Int("index", i), zap.Error(err))
			return fmt.Errorf("escape argument %d: %w", i+1, err)
		}
		fmt.Fprintln(w, out)
	}
	return nil
}
