package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

// delCmd represents the del command
var delCmd = &cobra.Command{
	Use:   "del <nickname>",
	Short: "stop tracking a series",
	Long: `stop tracking a series

Only local rows are removed; the account list and the episode files are
untouched.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		m, cleanup, err := setup(cmd)
		if err != nil {
			log.Fatalf("failed to set up: %v", err)
		}
		defer cleanup()

		if err := m.DeleteSeries(cmdContext(), args[0]); err != nil {
			log.Fatalf("failed to delete series: %v", err)
		}

		log.Printf("no longer tracking %q", args[0])
	},
}

func init() {
	rootCmd.AddCommand(delCmd)
}
