package cmd

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch [nickname]",
	Short: "play the next episode of a series",
	Long: `play the next episode of a series

Without a nickname the last watched series is resumed. The episode counts
as watched once the player exits cleanly, and the change is pushed to the
remote service when possible.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		m, cleanup, err := setup(cmd)
		if err != nil {
			log.Fatalf("failed to set up: %v", err)
		}
		defer cleanup()

		nickname := ""
		if len(args) > 0 {
			nickname = args[0]
		} else if nickname = loadLastWatched(); nickname == "" {
			log.Fatal("no series given and nothing watched yet")
		}

		ctx := cmdContext()

		if _, err := m.BeginWatching(ctx, nickname); err != nil {
			log.Fatalf("failed to start watching: %v", err)
		}

		playCmd, episode, err := m.PlayEpisodeCmd(ctx, nickname)
		if err != nil {
			log.Fatalf("failed to prepare player: %v", err)
		}

		playCmd.Stdin = os.Stdin
		playCmd.Stdout = os.Stdout
		playCmd.Stderr = os.Stderr

		log.Printf("playing episode %d of %q", episode, nickname)
		if err := playCmd.Run(); err != nil {
			log.Fatalf("player failed: %v", err)
		}

		sr, err := m.AdvanceEpisode(ctx, nickname)
		if err != nil {
			log.Fatalf("failed to record progress: %v", err)
		}

		saveLastWatched(nickname)

		if err := m.Sync().Push(ctx, sr.Config.ID); err != nil {
			log.Printf("progress saved locally, push failed: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func lastWatchedPath() string {
	return filepath.Join(dataDir(), "last_watched")
}

func loadLastWatched() string {
	data, err := os.ReadFile(lastWatchedPath())
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func saveLastWatched(nickname string) {
	if err := os.WriteFile(lastWatchedPath(), []byte(nickname+"\n"), 0o644); err != nil {
		log.Printf("failed to save last watched marker: %v", err)
	}
}
