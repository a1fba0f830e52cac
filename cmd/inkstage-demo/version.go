package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped at build time via -ldflags "-X main.version=...";
// left as "dev" for a plain `go build`.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the inkstage-demo version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("inkstage-demo " + version)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
