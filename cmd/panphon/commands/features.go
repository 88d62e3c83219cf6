package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/armendk/panphon/segment"
)

var featuresCmd = &cobra.Command{
	Use:   "features <segment>...",
	Short: "Render the feature vectors of IPA segments",
	Long: `Render the feature vectors of one or more IPA segments as a table
with one row per feature and one column per segment.

Examples:
  panphon features p
  panphon features p b m ŋ`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFeatures,
}

func init() {
	rootCmd.AddCommand(featuresCmd)
}

func runFeatures(cmd *cobra.Command, args []string) error {
	ft, err := loadTable()
	if err != nil {
		return err
	}

	segs := make([]segmentColumn, 0, len(args))
	for _, symbol := range args {
		seg, ok := ft.Segment(symbol)
		if !ok {
			return fmt.Errorf("segment %q not in the inventory", symbol)
		}
		segs = append(segs, segmentColumn{symbol: symbol, values: seg.Numeric()})
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 0, 2, ' ', 0)

	fmt.Fprint(w, "feature")
	for _, col := range segs {
		fmt.Fprintf(w, "\t%s", styleSymbol.Render(col.symbol))
	}
	fmt.Fprintln(w)

	schema := ft.Schema()
	for i, name := range schema.Names() {
		fmt.Fprint(w, name)
		for _, col := range segs {
			fmt.Fprintf(w, "\t%s", renderValue(col.values[i]))
		}
		fmt.Fprintln(w)
	}

	return w.Flush()
}

type segmentColumn struct {
	symbol string
	values []segment.Value
}
