package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

var syncPull bool

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync [nickname]",
	Short: "synchronize entries with the remote service",
	Long: `synchronize entries with the remote service

Without a nickname every entry with unsynced changes is pushed. With
--pull the remote entry overwrites the local one instead; unpushed local
changes are lost.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		m, cleanup, err := setup(cmd)
		if err != nil {
			log.Fatalf("failed to set up: %v", err)
		}
		defer cleanup()

		ctx := cmdContext()

		if len(args) == 0 {
			if syncPull {
				log.Fatal("--pull needs a nickname")
			}
			if err := m.Sync().PushAll(ctx); err != nil {
				log.Fatalf("sync finished with failures: %v", err)
			}
			log.Print("all changes pushed")
			return
		}

		sr, err := m.GetSeries(ctx, args[0])
		if err != nil {
			log.Fatalf("failed to load series: %v", err)
		}

		if syncPull {
			if err := m.Sync().Pull(ctx, sr.Config.ID); err != nil {
				log.Fatalf("failed to pull entry: %v", err)
			}
			log.Printf("pulled %q from the remote service", sr.Config.Nickname)
			return
		}

		if err := m.Sync().Push(ctx, sr.Config.ID); err != nil {
			log.Fatalf("failed to push entry: %v", err)
		}
		log.Printf("pushed %q to the remote service", sr.Config.Nickname)
	},
}

func init() {
	syncCmd.Flags().BoolVar(&syncPull, "pull", false, "overwrite the local entry with the remote one")

	rootCmd.AddCommand(syncCmd)
}
