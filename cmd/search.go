package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "search the remote service for series",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		m, cleanup, err := setup(cmd)
		if err != nil {
			log.Fatalf("failed to set up: %v", err)
		}
		defer cleanup()

		results, err := m.SearchSeries(cmdContext(), strings.Join(args, " "))
		if err != nil {
			log.Fatalf("search failed: %v", err)
		}
		if len(results) == 0 {
			log.Fatal("no results")
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tEPISODES")
		for _, info := range results {
			fmt.Fprintf(w, "%d\t%s\t%d\n", info.ID, info.TitlePreferred, info.Episodes)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
