package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/Acizza/anup/pkg/series"
)

var advanceBackward bool

// advanceCmd represents the advance command
var advanceCmd = &cobra.Command{
	Use:   "advance <nickname>",
	Short: "mark the next episode as watched",
	Long: `mark the next episode as watched

With --backward the last watched episode is unmarked instead, for when an
episode was recorded by mistake.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		m, cleanup, err := setup(cmd)
		if err != nil {
			log.Fatalf("failed to set up: %v", err)
		}
		defer cleanup()

		ctx := cmdContext()

		var sr *series.Series
		if advanceBackward {
			sr, err = m.RegressEpisode(ctx, args[0])
		} else {
			sr, err = m.AdvanceEpisode(ctx, args[0])
		}
		if err != nil {
			log.Fatalf("failed to update progress: %v", err)
		}

		log.Printf("%q is now at episode %d/%d, %s", sr.Config.Nickname,
			sr.Entry.WatchedEpisodes, sr.Info.Episodes, sr.Entry.Status)

		if err := m.Sync().Push(ctx, sr.Config.ID); err != nil {
			log.Printf("progress saved locally, push failed: %v", err)
		}
	},
}

func init() {
	advanceCmd.Flags().BoolVarP(&advanceBackward, "backward", "b", false, "unmark the last watched episode")

	rootCmd.AddCommand(advanceCmd)
}
