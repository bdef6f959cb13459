package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/unrss/shellesc/internal/shell"
)

func newJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join <arg>...",
		Short: "Quote arguments and join them into one command line",
		Long: `Quote every argument for the target platform and join them with
spaces, producing a command line that reproduces the argument list.

Use -- to stop flag parsing when arguments start with a dash:

  shellesc join -- grep -e "it's" file.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJoin(cmd.OutOrStdout(), args)
		},
	}
}

func runJoin(w io.Writer, args []string) error {
	p, err := targetPlatform()
	if err != nil {
		return err
	}

	logger.Debug("Joining arguments", zap.Stringer("platform", p), zap.Int("count", len(args)))

	line, err := shell.Join(args, p)
	if err != nil {
		logger.Warn("Rejected input", zap.Error(err))
		return fmt.Errorf("join: %w", err)
	}

	fmt.Fprintln(w, line)
	return nil
}
