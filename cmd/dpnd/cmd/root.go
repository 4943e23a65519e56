package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build-time variables set via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags.
var (
	manifestName string
	verbose      bool
	quiet        bool
)

var rootCmd = &cobra.Command{
	Use:   "dpnd",
	Short: "Fetch and reconcile pinned project dependencies",
	Long: `dpnd fetches named external source trees pinned to exact revisions into a
project's output directory, as declared by a plain-text manifest. Repeated
runs reconcile the local copy against the manifest: missing or changed
dependencies are fetched, dropped ones are removed, and a ledger file inside
the output directory records exactly what is installed after every step.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dpnd %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&manifestName, "manifest", "", "manifest filename (default \"dpnd.txt\")")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "detailed output")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "minimal output (errors only)")

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		errorf("%s", err)
		return err
	}
	return nil
}
