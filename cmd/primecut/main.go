// Command primecut classifies the shadows of polyhedral point sets under
// spread-parameterized rotations.
package main

import (
	"fmt"
	"os"

	"github.com/artexplorer/primecut/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
