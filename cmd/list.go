package cmd

import (
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/Acizza/anup/pkg/series"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list tracked series",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		m, cleanup, err := setup(cmd)
		if err != nil {
			log.Fatalf("failed to set up: %v", err)
		}
		defer cleanup()

		all, err := m.ListSeries(cmdContext())
		if err != nil {
			log.Fatalf("failed to list series: %v", err)
		}
		if len(all) == 0 {
			log.Print("no series tracked; use add to start")
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NICKNAME\tTITLE\tPROGRESS\tSCORE\tSTATUS\tSTARTED\tSYNC")
		for _, sr := range all {
			fmt.Fprintf(w, "%s\t%s\t%d/%d\t%s\t%s\t%s\t%s\n",
				sr.Config.Nickname,
				sr.Info.TitlePreferred,
				sr.Entry.WatchedEpisodes, sr.Info.Episodes,
				formatScore(sr.Entry.Score),
				sr.Entry.Status,
				formatStart(&sr.Entry),
				syncMarker(&sr.Entry),
			)
		}
		w.Flush()
	},
}

func formatScore(score *int32) string {
	if score == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *score)
}

func formatStart(entry *series.Entry) string {
	if entry.StartDate == nil {
		return "-"
	}
	return humanize.Time(*entry.StartDate)
}

func syncMarker(entry *series.Entry) string {
	if entry.NeedsSync {
		return "*"
	}
	return ""
}

func init() {
	rootCmd.AddCommand(listCmd)
}
