package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aellingwood/anvil/internal/archive"
	"github.com/aellingwood/anvil/internal/generator"
	"github.com/aellingwood/anvil/internal/scaffold"
	"github.com/aellingwood/anvil/internal/theme"
)

var generateCmd = &cobra.Command{
	Use:   "generate <label>",
	Short: "Scaffold a new custom theme from a starter template",
	Long: `Scaffold a new custom theme from a starter template.

The template is taken from --source (a URL or a local path), or from the
starterkit directory that ships with the base theme named by
--base-theme. Remote archives are downloaded and extracted; a single
wrapper directory at the archive root is skipped. The template tree is
copied into <themes-dir>/<machine name>/ and placeholder tokens inside
the copied files are rewritten with the new theme's name.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		label := args[0]

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		src, _ := cmd.Flags().GetString("source")
		if src == "" {
			src = cfg.Source
		}
		baseTheme, _ := cmd.Flags().GetString("base-theme")
		if baseTheme == "" {
			baseTheme = cfg.BaseTheme
		}
		themesDir, _ := cmd.Flags().GetString("themes-dir")
		if themesDir == "" {
			themesDir = cfg.ThemesDir
		}

		if src == "" {
			if baseTheme == "" {
				return errors.New("no starter template: set --source or --base-theme")
			}
			resolver := theme.NewResolver(".", cfg.SearchPaths)
			src, err = resolver.StarterDir(baseTheme)
			if err != nil {
				return err
			}
		}

		machineName := scaffold.Normalize(label)
		if machineName == "" {
			return fmt.Errorf("label %q yields an empty machine name", label)
		}

		req := scaffold.Request{
			Label:       label,
			MachineName: machineName,
			Source:      src,
			DestDir:     filepath.Join(themesDir, machineName),
		}
		if err := scaffold.Run(req, extractorFor, generator.New()); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Theme created: %s/\n", req.DestDir)
		return nil
	},
}

// extractorFor adapts the archive package to the pipeline's factory contract.
func extractorFor(path string) (scaffold.Extractor, error) {
	return archive.ForFile(path)
}

func init() {
	generateCmd.Flags().StringP("source", "s", "", "starter template URL or local path")
	generateCmd.Flags().StringP("base-theme", "b", "", "base theme whose starterkit is used as the template")
	generateCmd.Flags().String("themes-dir", "", "destination root for generated themes")

	rootCmd.AddCommand(generateCmd)
}
