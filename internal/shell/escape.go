package shell

import "strings"

// EscapeCommand escapes s for unquoted use on a command line of platform p.
func EscapeCommand(s string, p Platform) (string, error) {
	return p.Escaper().Command(s)
}

// EscapeArgument quotes s as a single command-line argument for platform p.
func EscapeArgument(s string, p Platform) (string, error) {
	return p.Escaper().Argument(s)
}

// EscapeCommandAuto is EscapeCommand for the host platform.
func EscapeCommandAuto(s string) (string, error) {
	return EscapeCommand(s, HostPlatform())
}

// EscapeArgumentAuto is EscapeArgument for the host platform.
func EscapeArgumentAuto(s string) (string, error) {
	return EscapeArgument(s, HostPlatform())
}

// Join quotes each argument for platform p and joins them with spaces
// into one command line. An empty args yields an empty string.
func Join(args []string, p Platform) (string, error) {
	e := p.Escaper()
	quoted := make([]string, len(args))
	for i, arg := range args {
		if err := checkNullBytes("Join", i+1, "args", arg); err != nil {
			return "", err
		}
		q, err := e.Argument(arg)
		if err != nil {
			return "", err
		}
		quoted[i] = q
	}
	return strings.Join(quoted, " "), nil
}
