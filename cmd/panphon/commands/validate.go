package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/armendk/panphon"
)

var validateCmd = &cobra.Command{
	Use:   "validate <table.csv>",
	Short: "Check a feature table file for format errors",
	Long: `Load a feature table file and report its inventory and schema size,
or the first format error with its line number.

Compressed tables (.zst, .lz4) are decompressed transparently.

Examples:
  panphon validate my_table.csv
  panphon validate my_table.csv.zst`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	ft, err := panphon.New(panphon.WithTablePath(args[0]))
	if err != nil {
		var rowErr *panphon.RowError
		if errors.As(err, &rowErr) {
			return fmt.Errorf("%s: line %d: %s", args[0], rowErr.Line, rowErr.Reason)
		}
		return err
	}

	fmt.Printf("%s: ok (%d segments, %d features)\n", args[0], ft.Len(), ft.Schema().Len())
	if verbose {
		fmt.Println("features:")
		for name := range ft.Schema().All() {
			fmt.Printf("  %s\n", name)
		}
	}
	return nil
}
