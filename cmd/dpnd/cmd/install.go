package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/eZanmoto/dpnd/internal/installer"
	"github.com/eZanmoto/dpnd/internal/manifest"
	"github.com/spf13/cobra"
)

var installRecursive bool

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install dependencies defined in the project manifest",
	Long: `Locates the nearest manifest at or above the current directory and
reconciles the project's output directory against it: new or changed
dependencies are fetched at their pinned revisions, dependencies dropped
from the manifest are removed, and the ledger is kept consistent with disk
after every step.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolving current directory: %w", err)
		}

		settings, err := loadSettings(cwd)
		if err != nil {
			return err
		}

		name := effectiveManifestName(settings)
		recursive := installRecursive
		if !cmd.Flags().Changed("recursive") && settings.Recursive != nil {
			recursive = *settings.Recursive
		}

		inst := installer.New(name, newRegistry())

		detail("manifest: %s (ledger: %s)", inst.ManifestName, inst.LedgerName)

		if err := inst.Install(cmd.Context(), cwd, recursive); err != nil {
			if errors.Is(err, manifest.ErrNotFound) {
				return fmt.Errorf("couldn't find '%s' in the current directory or any of its ancestors", name)
			}
			return err
		}

		info("Dependencies installed.")
		return nil
	},
}

func init() {
	installCmd.Flags().BoolVarP(&installRecursive, "recursive", "r", false, "install dependencies found in dependencies")
	rootCmd.AddCommand(installCmd)
}
