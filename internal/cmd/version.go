package cmd

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
)

func newVersionCmd(version string) *cobra.Command {
	var long bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print shellesc version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := strings.TrimSpace(version)
			if long {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s/%s, %s)\n", v, runtime.GOOS, runtime.GOARCH, runtime.Version())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&long, "long", "l", false, "include platform and Go version")

	return cmd
}
