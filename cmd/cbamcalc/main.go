// Command cbamcalc compares the embedded emissions and CBAM cost of imported
// goods across supplier countries.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rshade/cbamcalc/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev" //nolint:gochecknoglobals // Set via ldflags.

func main() {
	os.Exit(exitCode(run()))
}

func run() error {
	return cli.Execute(context.Background(), cli.NewRootCmd(version))
}

// exitCode prints err and maps it to the process exit code.
func exitCode(err error) int {
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return cli.ExitCode(err)
}
