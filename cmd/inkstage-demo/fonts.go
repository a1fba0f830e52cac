package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkstage/inkstage/resources"
)

var fontsDir string

var fontsCmd = &cobra.Command{
	Use:   "fonts",
	Short: "List the code syntax/theme names a deck would see (font families are not listed)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		res := resources.New()
		if fontsDir != "" {
			if err := res.LoadFontsDir(fontsDir); err != nil {
				return fmt.Errorf("loading fonts dir: %w", err)
			}
		}

		fmt.Println("syntaxes:")
		for _, name := range res.Syntaxes() {
			fmt.Printf("  %s\n", name)
		}
		fmt.Println("themes:")
		for _, name := range res.Themes() {
			fmt.Printf("  %s\n", name)
		}
		return nil
	},
}

func init() {
	fontsCmd.Flags().StringVar(&fontsDir, "dir", "", "directory of font files to load before listing")
	rootCmd.AddCommand(fontsCmd)
}
