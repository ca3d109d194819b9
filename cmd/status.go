package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/Acizza/anup/pkg/series"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status <nickname> <status>",
	Short: "force the watch status of a series",
	Long: `force the watch status of a series

Statuses: plan, watching, rewatching, completed, hold, dropped. Start and
finish dates are stamped the same way organic status changes stamp them.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		status, err := series.ParseStatus(args[1])
		if err != nil {
			log.Fatalf("unknown status %q", args[1])
		}

		m, cleanup, err := setup(cmd)
		if err != nil {
			log.Fatalf("failed to set up: %v", err)
		}
		defer cleanup()

		ctx := cmdContext()

		sr, err := m.SetStatus(ctx, args[0], status)
		if err != nil {
			log.Fatalf("failed to set status: %v", err)
		}

		log.Printf("%q is now %s", sr.Config.Nickname, sr.Entry.Status)

		if err := m.Sync().Push(ctx, sr.Config.ID); err != nil {
			log.Printf("status saved locally, push failed: %v", err)
		}
	},
}

// rewatchCmd represents the rewatch command
var rewatchCmd = &cobra.Command{
	Use:   "rewatch <nickname>",
	Short: "restart a completed series from episode zero",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		m, cleanup, err := setup(cmd)
		if err != nil {
			log.Fatalf("failed to set up: %v", err)
		}
		defer cleanup()

		ctx := cmdContext()

		sr, err := m.BeginRewatch(ctx, args[0])
		if err != nil {
			log.Fatalf("failed to begin rewatch: %v", err)
		}

		log.Printf("rewatching %q (seen %d times before)", sr.Config.Nickname, sr.Entry.TimesRewatched)

		if err := m.Sync().Push(ctx, sr.Config.ID); err != nil {
			log.Printf("change saved locally, push failed: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(rewatchCmd)
}
