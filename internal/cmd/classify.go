package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/unrss/shellesc/internal/shell"
)

// ClassifyOutput is the JSON representation of a classification report.
type ClassifyOutput struct {
	Platform string       `json:"platform"`
	Input    string       `json:"input"`
	Output   string       `json:"output"`
	Units    []shell.Unit `json:"units"`
}

func newClassifyCmd() *cobra.Command {
	var (
		jsonOutput bool
		fromStdin  bool
	)

	cmd := &cobra.Command{
		Use:   "classify [text...]",
		Short: "Show how each character is escaped",
		Long: `Break text into characters (or single bytes, for invalid UTF-8) and
show the class of each on the target platform together with its
command-escaped form.

Classes: safe (passed through), meta (escaped), control (dropped on
linux, kept on windows).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd.InOrStdin(), args, fromStdin)
			if err != nil {
				return err
			}
			return runClassify(cmd.OutOrStdout(), input, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "read text from stdin")

	return cmd
}

func runClassify(w io.Writer, input string, jsonOutput bool) error {
	p, err := targetPlatform()
	if err != nil {
		return err
	}

	units, err := shell.Explain(input, p)
	if err != nil {
		return fmt.Errorf("classify: %w", err)
	}

	output := ClassifyOutput{
		Platform: p.String(),
		Input:    input,
		Units:    units,
	}
	for _, u := range units {
		output.Output += u.Output
	}
	if output.Units == nil {
		output.Units = []shell.Unit{}
	}

	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(output)
	}

	return outputClassifyHuman(w, output)
}

func outputClassifyHuman(w io.Writer, output ClassifyOutput) error {
	c := newColorizer(w)

	fmt.Fprintf(w, "%s %s\n\n", c.bold("Platform:"), output.Platform)
	fmt.Fprintf(w, "  %s\n", c.cyan(fmt.Sprintf("%-6s  %-11s  %-8s  %-8s  %s", "OFFSET", "BYTES", "CHAR", "CLASS", "OUTPUT")))

	for _, u := range output.Units {
		char := strconv.Quote(u.Raw)
		if !u.Valid {
			char = "invalid"
		}

		class := fmt.Sprintf("%-8s", u.Class)
		switch {
		case u.Class == shell.Meta:
			class = c.yellow(class)
		case u.Class == shell.Control || !u.Valid:
			class = c.red(class)
		default:
			class = c.green(class)
		}

		out := strconv.Quote(u.Output)
		if u.Output == "" {
			out = c.dim("(dropped)")
		}

		fmt.Fprintf(w, "  %-6d  %-11s  %-8s  %s  %s\n", u.Offset, u.Hex(), char, class, out)
	}

	fmt.Fprintf(w, "\n%s %s\n", c.bold("Result:"), strconv.Quote(output.Output))
	return nil
}
