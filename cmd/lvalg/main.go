// Command lvalg evaluates matrix expressions over real or complex scalars
// from YAML documents, or runs the interactive matrix session.
package main

import (
	"os"

	"github.com/katalvlaran/lvalg/cmd/lvalg/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
