package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/Acizza/anup/pkg/manager"
)

var (
	addID      int32
	addPath    string
	addMatcher string
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <nickname>",
	Short: "start tracking a series",
	Long: `start tracking a series

The series directory is scanned for episode files and the series is looked
up on the remote service, by id when --id is given and by the detected title
otherwise. Existing list progress on the account seeds the local entry.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		m, cleanup, err := setup(cmd)
		if err != nil {
			log.Fatalf("failed to set up: %v", err)
		}
		defer cleanup()

		sr, err := m.AddSeries(cmdContext(), manager.AddParams{
			Nickname: args[0],
			ID:       addID,
			Path:     addPath,
			Matcher:  addMatcher,
		})
		if err != nil {
			log.Fatalf("failed to add series: %v", err)
		}

		log.Printf("tracking %q as %q (%d episodes)", sr.Info.TitlePreferred, sr.Config.Nickname, sr.Info.Episodes)
	},
}

func init() {
	addCmd.Flags().Int32Var(&addID, "id", 0, "remote id of the series")
	addCmd.Flags().StringVar(&addPath, "path", "", "episode directory (defaults to seriesDir/nickname)")
	addCmd.Flags().StringVar(&addMatcher, "matcher", "", "custom episode pattern, e.g. \"{title} - {episode}\"")

	rootCmd.AddCommand(addCmd)
}
