package cmd

import (
	"log"
	"strconv"

	"github.com/spf13/cobra"
)

// rateCmd represents the rate command
var rateCmd = &cobra.Command{
	Use:   "rate <nickname> <score>",
	Short: "rate a series from 0 to 100",
	Long: `rate a series from 0 to 100

Pass "none" as the score to remove the rating.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		m, cleanup, err := setup(cmd)
		if err != nil {
			log.Fatalf("failed to set up: %v", err)
		}
		defer cleanup()

		ctx := cmdContext()
		nickname := args[0]

		if args[1] == "none" {
			if _, err := m.ClearScore(ctx, nickname); err != nil {
				log.Fatalf("failed to clear score: %v", err)
			}
			log.Printf("removed the rating of %q", nickname)
		} else {
			score, err := strconv.ParseInt(args[1], 10, 32)
			if err != nil {
				log.Fatalf("invalid score %q", args[1])
			}

			sr, err := m.SetScore(ctx, nickname, int32(score))
			if err != nil {
				log.Fatalf("failed to set score: %v", err)
			}
			log.Printf("rated %q %d/100", nickname, *sr.Entry.Score)
		}

		sr, err := m.GetSeries(ctx, nickname)
		if err != nil {
			log.Fatalf("failed to load series: %v", err)
		}
		if err := m.Sync().Push(ctx, sr.Config.ID); err != nil {
			log.Printf("rating saved locally, push failed: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(rateCmd)
}
