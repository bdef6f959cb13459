// Package shell escapes strings for Windows cmd.exe and POSIX shell
// command lines.
//
// Two operations are provided per platform: command escaping, which makes
// text safe to place unquoted on a command line, and argument quoting, which
// wraps a value so the shell sees it as exactly one literal argument.
// All functions are pure and safe for concurrent use.
package shell

import (
	"fmt"
	"runtime"
	"slices"
	"strings"
)

// Platform selects which shell grammar to escape for.
// The zero value is Linux, which covers every POSIX host.
type Platform int

const (
	Linux Platform = iota
	Windows
)

func (p Platform) String() string {
	if p == Windows {
		return "windows"
	}
	return "linux"
}

// Escaper escapes strings for a single platform.
type Escaper interface {
	// Platform returns the platform this escaper targets.
	Platform() Platform

	// Command escapes s for unquoted use on a command line.
	Command(s string) (string, error)

	// Argument quotes s as a single command-line argument.
	Argument(s string) (string, error)
}

// escapers is the registry of supported platform implementations.
var escapers = map[string]Escaper{
	"linux":   Linux.Escaper(),
	"windows": Windows.Escaper(),
}

// Escaper returns the implementation for p. Anything other than Windows
// gets the POSIX escaper.
func (p Platform) Escaper() Escaper {
	if p == Windows {
		return windowsEscaper{}
	}
	return linuxEscaper{}
}

// Get returns the Escaper registered under name.
// Returns nil if the platform is not supported.
func Get(name string) Escaper {
	return escapers[name]
}

// Supported returns the sorted list of platform names.
func Supported() []string {
	names := make([]string, 0, len(escapers))
	for name := range escapers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// HostPlatform reports the platform of the running process.
func HostPlatform() Platform {
	return platformForGOOS(runtime.GOOS)
}

func platformForGOOS(goos string) Platform {
	if goos == "windows" {
		return Windows
	}
	return Linux
}

// ParsePlatform resolves a platform name. Matching is case-insensitive.
// "auto" and the empty string resolve to the host platform.
func ParsePlatform(name string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return HostPlatform(), nil
	case "windows", "win", "cmd":
		return Windows, nil
	case "linux", "posix", "unix", "sh", "darwin":
		return Linux, nil
	default:
		return Linux, fmt.Errorf("unknown platform %q (supported: auto, %s)", name, strings.Join(Supported(), ", "))
	}
}
