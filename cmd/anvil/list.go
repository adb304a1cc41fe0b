package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aellingwood/anvil/internal/theme"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed themes",
	Long:  "List the themes found on the configured search paths.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		resolver := theme.NewResolver(".", cfg.SearchPaths)
		themes, err := resolver.List()
		if err != nil {
			return err
		}

		if len(themes) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No themes found.")
			return nil
		}

		printThemeList(cmd, themes)
		return nil
	},
}

// printThemeList prints a formatted table of themes with machine name,
// display name, and path.
func printThemeList(cmd *cobra.Command, themes []theme.Installed) {
	out := cmd.OutOrStdout()
	for _, t := range themes {
		name := t.Info.Name
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Fprintf(out, "%s  %s  %s\n", t.MachineName, name, t.Path)
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
