// Command inkstage-demo is a thin smoke-test CLI over the deck package:
// enough to build and render the spec's own "hello world" scenario end
// to end without a caller writing any Go, the same role the teacher's
// cmd/devcmd/main.go plays for its own core packages.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
