// Package cmd implements the shellesc CLI commands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/unrss/shellesc/internal/config"
	"github.com/unrss/shellesc/internal/shell"
)

// Assets holds embedded files passed from main.
type Assets struct {
	Version string
}

var (
	// cfg holds the loaded configuration, available to all commands.
	cfg *config.Config

	// logger is replaced in PersistentPreRunE once the level is known.
	logger = zap.NewNop()
)

// Execute runs the root command with the provided assets.
func Execute(assets Assets) error {
	root := newRootCmd(assets)
	return root.Execute()
}

func newRootCmd(assets Assets) *cobra.Command {
	var (
		platform string
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "shellesc",
		Short: "Escape strings for Windows and POSIX command lines",
		Long: `shellesc escapes text for safe use on a cmd.exe or POSIX shell
command line, either as command-level text or as a single quoted argument.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(platform); err != nil {
				return err
			}
			return initLogger(cmd, verbose)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	cmd.PersistentFlags().StringVarP(&platform, "platform", "p", "", "target platform: auto, windows or linux (overrides config)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newCommandCmd(),
		newArgumentCmd(),
		newJoinCmd(),
		newClassifyCmd(),
		newConfigCmd(),
		newDoctorCmd(),
		newVersionCmd(assets.Version),
	)

	return cmd
}

func initConfig(platformFlag string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if platformFlag != "" {
		cfg.Platform = platformFlag
	}
	return nil
}

func initLogger(cmd *cobra.Command, verbose bool) error {
	l, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = l.With(zap.String("command", cmd.Name()))
	return nil
}

// targetPlatform resolves the platform for this invocation from the
// --platform flag, configuration or host detection.
func targetPlatform() (shell.Platform, error) {
	p, err := cfg.TargetPlatform()
	if err != nil {
		return p, err
	}
	logger.Debug("Resolved platform",
		zap.String("configured", cfg.Platform),
		zap.Stringer("platform", p))
	return p, nil
}
