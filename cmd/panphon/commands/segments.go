package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var segmentsStrict bool

var segmentsCmd = &cobra.Command{
	Use:   "segments <word>...",
	Short: "Split words into IPA segments",
	Long: `Split words into IPA segments by greedy longest-prefix matching
against the inventory, so multi-rune symbols like affricates are kept
together.

Input the inventory cannot match is skipped; with --strict it is
reported as an error instead.

Examples:
  panphon segments t͡ʃat
  panphon segments --strict pat bat`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSegments,
}

func init() {
	segmentsCmd.Flags().BoolVar(&segmentsStrict, "strict", false, "fail on input no inventory symbol matches")
	rootCmd.AddCommand(segmentsCmd)
}

func runSegments(cmd *cobra.Command, args []string) error {
	ft, err := loadTable()
	if err != nil {
		return err
	}

	for _, word := range args {
		if segmentsStrict {
			if _, err := ft.SegmentsStrict(word); err != nil {
				return fmt.Errorf("word %q: %w", word, err)
			}
		}
		symbols := ft.Symbols(word)
		fmt.Printf("%s\t%s\n", word, strings.Join(symbols, " "))
		if verbose {
			for _, symbol := range symbols {
				seg, _ := ft.Segment(symbol)
				fmt.Printf("  %s\t%s\n", styleSymbol.Render(symbol), seg)
			}
		}
	}

	return nil
}
