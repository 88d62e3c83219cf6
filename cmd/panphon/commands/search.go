package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <notation>",
	Short: "Find inventory segments matching a feature notation",
	Long: `Find the inventory segments whose feature vectors carry every pair
of the given compact notation, e.g. "+voi+nas" for voiced nasals.

Examples:
  panphon search +voi+nas
  panphon search +syl-back+round`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	ft, err := loadTable()
	if err != nil {
		return err
	}

	symbols := ft.MatchingNotation(args[0])
	if len(symbols) == 0 {
		fmt.Println("no matches")
		return nil
	}

	for _, symbol := range symbols {
		if verbose {
			seg, _ := ft.Segment(symbol)
			fmt.Printf("%s\t%s\n", styleSymbol.Render(symbol), seg)
		} else {
			fmt.Println(symbol)
		}
	}
	return nil
}
