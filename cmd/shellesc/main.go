// Package main is the entry point for the shellesc CLI.
package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/unrss/shellesc/internal/cmd"
)

//go:embed version.txt
var version string

func main() {
	if err := cmd.Execute(cmd.Assets{
		Version: version,
	}); err != nil {
		fmt.Fprintln(os.Stderr, "shellesc:", err)
		os.Exit(1)
	}
}
