package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/Acizza/anup/pkg/manager"
)

var (
	setID         int32
	setPath       string
	setMatcher    string
	setPlayerArgs []string
)

// setCmd represents the set command
var setCmd = &cobra.Command{
	Use:   "set <nickname>",
	Short: "change settings of a tracked series",
	Long: `change settings of a tracked series

Changing the id refetches the series under its new identity and replaces
the old rows.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		m, cleanup, err := setup(cmd)
		if err != nil {
			log.Fatalf("failed to set up: %v", err)
		}
		defer cleanup()

		params := manager.SetParams{}
		if cmd.Flags().Changed("id") {
			params.ID = &setID
		}
		if cmd.Flags().Changed("path") {
			params.Path = &setPath
		}
		if cmd.Flags().Changed("matcher") {
			params.Matcher = &setMatcher
		}
		if cmd.Flags().Changed("player-args") {
			params.PlayerArgs = setPlayerArgs
		}

		sr, err := m.SetSeries(cmdContext(), args[0], params)
		if err != nil {
			log.Fatalf("failed to update series: %v", err)
		}

		log.Printf("updated %q (id %d)", sr.Config.Nickname, sr.Config.ID)
	},
}

func init() {
	setCmd.Flags().Int32Var(&setID, "id", 0, "remote id of the series")
	setCmd.Flags().StringVar(&setPath, "path", "", "episode directory")
	setCmd.Flags().StringVar(&setMatcher, "matcher", "", "custom episode pattern, empty to clear")
	setCmd.Flags().StringSliceVar(&setPlayerArgs, "player-args", nil, "extra player arguments for this series")

	rootCmd.AddCommand(setCmd)
}
