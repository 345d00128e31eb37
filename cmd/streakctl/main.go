// Command streakctl works on a local engagement ledger.
package main

import "github.com/limbo/engagement/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
