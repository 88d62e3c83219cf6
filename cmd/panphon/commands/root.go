package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/armendk/panphon"
)

var (
	// Global flags
	tablePath string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "panphon",
	Short: "Ternary phonological feature vectors for IPA segments",
	Long: `panphon - feature vectors, segmentation and distances for IPA.

Every command works against a feature table: the embedded IPA table by
default, or a CSV file given with --table (.zst and .lz4 compressed
tables are decompressed transparently).

Examples:
  # Show feature vectors
  panphon features p b t͡ʃ

  # Split words into segments
  panphon segments t͡ʃat

  # Compare two words
  panphon distance pat bat --metric norm-l1

  # Search the inventory by feature specification
  panphon search +voi+nas

  # Check a custom table
  panphon validate my_table.csv`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&tablePath, "table", "", "feature table CSV file (default: embedded IPA table)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadTable builds the feature table from the global flags.
func loadTable() (*panphon.FeatureTable, error) {
	var opts []panphon.Option
	if tablePath != "" {
		opts = append(opts, panphon.WithTablePath(tablePath))
	}
	if verbose {
		opts = append(opts, panphon.WithLogLevel(slog.LevelDebug))
	}
	return panphon.New(opts...)
}
