// Package main is the entry point for the toado CLI.
package main

import (
	"fmt"
	"os"

	"github.com/toadoapp/toado/internal/cli"
)

func main() {
	rootCmd := cli.NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
