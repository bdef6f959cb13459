package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/unrss/shellesc/internal/config"
	"github.com/unrss/shellesc/internal/shell"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check shellesc setup and escaping behavior",
		Long: `Run diagnostic checks to identify potential issues with your shellesc setup.

Checks performed:
  - Target platform resolution (flag, config, host detection)
  - Configuration file validity
  - Host shell availability (sh or cmd.exe)
  - Escaping self-test for windows and linux
  - Null byte rejection`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd.OutOrStdout())
		},
	}
}

type checkResult struct {
	name    string
	status  string // "ok", "warn", "error", "skip"
	message string
	detail  string // optional additional info
}

func runDoctor(stdout io.Writer) error {
	c := newColorizer(stdout)

	fmt.Fprintf(stdout, "%s\n\n", c.bold("shellesc Doctor"))

	var results []checkResult

	results = append(results, checkPlatform())
	results = append(results, checkConfigFile())
	results = append(results, checkHostShell())
	results = append(results, checkEscaping(shell.Windows))
	results = append(results, checkEscaping(shell.Linux))
	results = append(results, checkNullByteGuard())

	var warnings, errs int
	for _, r := range results {
		var icon string
		switch r.status {
		case "ok":
			icon = c.green("✓")
		case "warn":
			icon = c.yellow("!")
			warnings++
		case "error":
			icon = c.red("✗")
			errs++
		case "skip":
			icon = c.dim("○")
		}

		fmt.Fprintf(stdout, "  %s %s: %s\n", icon, r.name, r.message)
		if r.detail != "" {
			for _, line := range strings.Split(r.detail, "\n") {
				fmt.Fprintf(stdout, "      %s\n", c.dim(line))
			}
		}
	}

	fmt.Fprintln(stdout)

	if errs > 0 {
		fmt.Fprintf(stdout, "%s Found %d error(s) and %d warning(s)\n", c.red("✗"), errs, warnings)
		return fmt.Errorf("doctor found %d error(s)", errs)
	} else if warnings > 0 {
		fmt.Fprintf(stdout, "%s Found %d warning(s), but shellesc should work\n", c.yellow("!"), warnings)
	} else {
		fmt.Fprintf(stdout, "%s All checks passed\n", c.green("✓"))
	}

	return nil
}

func checkPlatform() checkResult {
	result := checkResult{name: "Target platform"}

	p, err := targetPlatform()
	if err != nil {
		result.status = "error"
		result.message = err.Error()
		result.detail = "Set platform to auto, windows or linux"
		return result
	}

	source := "(configured)"
	switch strings.ToLower(cfg.Platform) {
	case "", "auto":
		source = "(auto-detected)"
	}

	result.status = "ok"
	result.message = fmt.Sprintf("%s %s", p, source)
	return result
}

func checkConfigFile() checkResult {
	result := checkResult{name: "Config file"}

	configFile := config.ConfigFile()
	if configFile == "" {
		result.status = "ok"
		result.message = "no config file (using defaults)"
		return result
	}

	// Config was already loaded successfully if we're here (via PersistentPreRunE)
	result.status = "ok"
	result.message = configFile
	return result
}

func checkHostShell() checkResult {
	result := checkResult{name: "Host shell"}

	host := shell.HostPlatform()
	if p, err := cfg.TargetPlatform(); err == nil && p != host {
		result.status = "skip"
		result.message = fmt.Sprintf("target is %s, host is %s", p, host)
		return result
	}

	path, err := findHostShell(host)
	if err != nil {
		result.status = "warn"
		result.message = err.Error()
		result.detail = "Escaped output can still be generated, but not run on this host"
		return result
	}

	result.status = "ok"
	result.message = path
	return result
}

func findHostShell(p shell.Platform) (string, error) {
	if p == shell.Windows {
		if comspec := os.Getenv("COMSPEC"); comspec != "" {
			return comspec, nil
		}
		path, err := exec.LookPath("cmd.exe")
		if err != nil {
			return "", errors.New("cmd.exe not found (COMSPEC unset)")
		}
		return path, nil
	}

	path, err := exec.LookPath("sh")
	if err != nil {
		return "", errors.New("sh not found in PATH")
	}
	return path, nil
}

// selfTest is a known-good escaping result.
type selfTest struct {
	command bool // command escaping when true, argument quoting otherwise
	input   string
	want    string
}

var selfTests = map[shell.Platform][]selfTest{
	shell.Windows: {
		{command: true, input: "ls; rm -rf /", want: "ls^; rm -rf /"},
		{command: true, input: "a\nb", want: "a^\nb"},
		{command: true, input: "\xed\xa0\x80", want: "\xed\xa0\x80"},
		{input: `say "hi"`, want: `"say  hi "`},
		{input: `a\b`, want: `"a\\b"`},
		{input: "", want: `""`},
	},
	shell.Linux: {
		{command: true, input: "ls; rm -rf /", want: `ls\; rm -rf /`},
		{command: true, input: "a\nb", want: "a\\\nb"},
		{command: true, input: "\xed\xa0\x80", want: ""},
		{input: "it's", want: `'it'\''s'`},
		{input: "$HOME", want: `'$HOME'`},
		{input: "", want: "''"},
	},
}

func checkEscaping(p shell.Platform) checkResult {
	result := checkResult{name: fmt.Sprintf("Escaping (%s)", p)}

	var failures []string
	for _, tc := range selfTests[p] {
		op, fn := "argument", shell.EscapeArgument
		if tc.command {
			op, fn = "command", shell.EscapeCommand
		}

		got, err := fn(tc.input, p)
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s %q: %v", op, tc.input, err))
			continue
		}
		if got != tc.want {
			failures = append(failures, fmt.Sprintf("%s %q = %q, want %q", op, tc.input, got, tc.want))
		}
	}

	if len(failures) > 0 {
		result.status = "error"
		result.message = fmt.Sprintf("%d of %d cases failed", len(failures), len(selfTests[p]))
		result.detail = strings.Join(failures, "\n")
		return result
	}

	result.status = "ok"
	result.message = fmt.Sprintf("%d cases passed", len(selfTests[p]))
	return result
}

func checkNullByteGuard() checkResult {
	result := checkResult{name: "Null byte guard"}

	var leaked []string
	for _, p := range []shell.Platform{shell.Windows, shell.Linux} {
		if _, err := shell.EscapeCommand("a\x00b", p); !errors.Is(err, shell.ErrNullByte) {
			leaked = append(leaked, fmt.Sprintf("command (%s)", p))
		}
		if _, err := shell.EscapeArgument("a\x00b", p); !errors.Is(err, shell.ErrNullByte) {
			leaked = append(leaked, fmt.Sprintf("argument (%s)", p))
		}
	}

	if len(leaked) > 0 {
		result.status = "error"
		result.message = "null bytes accepted by " + strings.Join(leaked, ", ")
		return result
	}

	result.status = "ok"
	result.message = "null bytes rejected on all entry points"
	return result
}
