package cmd_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
)

// testBinary holds the path to the compiled shellesc binary.
// Built once, reused across all integration tests.
var (
	testBinary     string
	testBinaryOnce sync.Once
	testBinaryErr  error
)

// buildTestBinary compiles the shellesc binary for testing.
// Returns the path to the binary or an error.
func buildTestBinary(t *testing.T) string {
	t.Helper()

	testBinaryOnce.Do(func() {
		// Note: Can't use t.TempDir() here because this runs in sync.Once
		// and the directory must persist across all tests.
		tmpDir, err := os.MkdirTemp("", "shellesc-test-*") //nolint:usetesting // sync.Once requires persistent dir
		if err != nil {
			testBinaryErr = err
			return
		}

		testBinary = filepath.Join(tmpDir, "shellesc")
		if runtime.GOOS == "windows" {
			testBinary += ".exe"
		}

		cmd := exec.Command("go", "build", "-o", testBinary, "github.com/unrss/shellesc/cmd/shellesc")
		output, err := cmd.CombinedOutput()
		if err != nil {
			testBinaryErr = &buildError{output: output, err: err}
			return
		}
	})

	if testBinaryErr != nil {
		t.Fatalf("build shellesc binary: %v", testBinaryErr)
	}

	return testBinary
}

type buildError struct {
	output []byte
	err    error
}

func (e *buildError) Error() string {
	return string(e.output) + ": " + e.err.Error()
}

// testEnv holds the test environment configuration.
type testEnv struct {
	t       *testing.T
	binary  string
	homeDir string
	baseEnv []string
}

// setupTestEnv creates an isolated test environment with an empty home.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	binary := buildTestBinary(t)
	homeDir := t.TempDir()

	return &testEnv{
		t:       t,
		binary:  binary,
		homeDir: homeDir,
		baseEnv: []string{
			"HOME=" + homeDir,
			"PATH=" + os.Getenv("PATH"),
			"NO_COLOR=1",
		},
	}
}

// withEnv returns a copy of testEnv with additional environment variables.
func (e *testEnv) withEnv(extra ...string) *testEnv {
	cp := *e
	cp.baseEnv = append(append([]string{}, e.baseEnv...), extra...)
	return &cp
}

// run executes shellesc with the given stdin and arguments.
func (e *testEnv) run(stdin string, args ...string) (stdout, stderr string, err error) {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...) //nolint:gosec // intentional CLI test harness
	cmd.Dir = e.homeDir
	cmd.Env = e.baseEnv
	cmd.Stdin = strings.NewReader(stdin)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err = cmd.Run()
	return stdoutBuf.String(), stderrBuf.String(), err
}

func TestIntegration_Version(t *testing.T) {
	env := setupTestEnv(t)

	stdout, _, err := env.run("", "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if strings.TrimSpace(stdout) == "" {
		t.Error("version should print something")
	}
}

func TestIntegration_Command(t *testing.T) {
	env := setupTestEnv(t)

	stdout, _, err := env.run("", "command", "--platform", "linux", "ls; rm -rf /")
	if err != nil {
		t.Fatalf("command: %v", err)
	}
	if stdout != "ls\\; rm -rf /\n" {
		t.Errorf("linux = %q", stdout)
	}

	stdout, _, err = env.run("", "command", "--platform", "windows", "ls; rm -rf /")
	if err != nil {
		t.Fatalf("command: %v", err)
	}
	if stdout != "ls^; rm -rf /\n" {
		t.Errorf("windows = %q", stdout)
	}
}

func TestIntegration_NullByteExitCode(t *testing.T) {
	env := setupTestEnv(t)

	stdout, stderr, err := env.run("a\x00b", "argument", "--stdin")
	if err == nil {
		t.Fatal("expected non-zero exit")
	}
	if exitErr, ok := err.(*exec.ExitError); !ok || exitErr.ExitCode() != 1 {
		t.Errorf("err = %v, want exit code 1", err)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}
	if !strings.Contains(stderr, "argument #1 (arg) must not contain null bytes") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestIntegration_PlatformFromEnv(t *testing.T) {
	env := setupTestEnv(t).withEnv("SHELLESC_PLATFORM=windows")

	stdout, _, err := env.run("", "argument", `say "hi"`)
	if err != nil {
		t.Fatalf("argument: %v", err)
	}
	if stdout != "\"say  hi \"\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

// TestIntegration_PosixRoundTrip feeds escaped output to a real sh and
// checks that the original value comes back out.
func TestIntegration_PosixRoundTrip(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not found")
	}
	env := setupTestEnv(t)

	values := []string{
		"plain",
		"it's",
		`say "hi" $HOME ` + "`id`" + ` $(whoami)`,
		`back\slash; a | b && c > d < e`,
		"multi\nline\ttab",
		"glob * ? [a]",
		"日本語 héllo",
		"''",
	}

	for _, v := range values {
		line, stderr, err := env.run("", "join", "--platform", "linux", "--", "printf", "%s", v)
		if err != nil {
			t.Fatalf("join %q: %v (%s)", v, err, stderr)
		}

		out, err := exec.Command(sh, "-c", strings.TrimSuffix(line, "\n")).Output()
		if err != nil {
			t.Fatalf("sh -c %q: %v", line, err)
		}
		if string(out) != v {
			t.Errorf("round trip of %q through %q = %q", v, line, out)
		}
	}

	// Command-escaped text used as a single unquoted word.
	word := `a;b|c&d$e` + "`f`" + `(g)*h<i>j^k%l!m"n'o\p`
	escaped, stderr, err := env.run("", "command", "--platform", "linux", word)
	if err != nil {
		t.Fatalf("command %q: %v (%s)", word, err, stderr)
	}
	out, err := exec.Command(sh, "-c", "printf %s "+strings.TrimSuffix(escaped, "\n")).Output()
	if err != nil {
		t.Fatalf("sh -c with %q: %v", escaped, err)
	}
	if string(out) != word {
		t.Errorf("round trip of %q through %q = %q", word, escaped, out)
	}
}
