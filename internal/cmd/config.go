package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/unrss/shellesc/internal/config"
)

// ConfigOutput is the JSON representation of shellesc configuration.
type ConfigOutput struct {
	ConfigFile       string `json:"config_file,omitempty"`
	Platform         string `json:"platform"`
	ResolvedPlatform string `json:"resolved_platform"`
	LogLevel         string `json:"log_level"`
	Color            bool   `json:"color"`
}

func newConfigCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show current configuration",
		Long: `Display the current shellesc configuration including values from
the config file, environment variables, flags, and defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(cmd.OutOrStdout(), jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runConfig(w io.Writer, jsonOutput bool) error {
	p, err := targetPlatform()
	if err != nil {
		return err
	}

	output := ConfigOutput{
		ConfigFile:       config.ConfigFile(),
		Platform:         cfg.Platform,
		ResolvedPlatform: p.String(),
		LogLevel:         cfg.LogLevel,
		Color:            cfg.Color,
	}

	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(output)
	}

	return outputConfigHuman(w, output)
}

func outputConfigHuman(w io.Writer, output ConfigOutput) error {
	c := newColorizer(w)

	fmt.Fprintf(w, "%s\n\n", c.bold("shellesc Configuration"))

	// Config file
	if output.ConfigFile != "" {
		fmt.Fprintf(w, "  %s %s\n", c.cyan("Config file:"), output.ConfigFile)
	} else {
		fmt.Fprintf(w, "  %s %s\n", c.cyan("Config file:"), c.dim("(none)"))
	}

	// Platform
	fmt.Fprintf(w, "  %s %s", c.cyan("Platform:"), output.ResolvedPlatform)
	if output.Platform != output.ResolvedPlatform {
		fmt.Fprintf(w, " %s", c.dim("("+output.Platform+")"))
	}
	fmt.Fprintln(w)

	// Log level
	fmt.Fprintf(w, "  %s %s\n", c.cyan("Log level:"), output.LogLevel)

	// Color
	fmt.Fprintf(w, "  %s", c.cyan("Color:"))
	if output.Color {
		fmt.Fprintf(w, " %s\n", c.green("true"))
	} else {
		fmt.Fprintf(w, " %s\n", c.yellow("false"))
	}

	return nil
}
