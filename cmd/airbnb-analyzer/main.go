// Command airbnb-analyzer scores Airbnb listings for completeness and
// appeal.
package main

import (
	"fmt"
	"os"

	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/adapters/driving/cli"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
