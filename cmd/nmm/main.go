// Command nmm replays, checks and serves Nine Men's Morris games.
package main

import (
	"fmt"
	"os"

	"github.com/jaminalder/nine-mens-morris/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
