package cmd

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Acizza/anup/pkg/manager"
	"github.com/Acizza/anup/pkg/series"
	"github.com/Acizza/anup/pkg/split"
)

var (
	splitDir    string
	splitID     int32
	splitOut    string
	splitFormat string
	splitYes    bool
)

// splitCmd represents the split command
var splitCmd = &cobra.Command{
	Use:   "split [nickname]",
	Short: "split a merged multi-season directory into per-season symlinks",
	Long: `split a merged multi-season directory into per-season symlinks

Season boundaries come from episode counts along the sequel chain of the
series. Each detected sequel is confirmed interactively before its count is
trusted; files past an unconfirmed or unknown season are left alone.
Original files are never moved.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		m, cleanup, err := setup(cmd)
		if err != nil {
			log.Fatalf("failed to set up: %v", err)
		}
		defer cleanup()

		params := manager.SplitParams{
			Dir:      splitDir,
			SeriesID: splitID,
			OutDir:   splitOut,
			Format:   splitFormat,
		}
		if len(args) > 0 {
			params.Nickname = args[0]
		} else if splitDir == "" {
			log.Fatal("pass a nickname or --dir")
		}

		if !splitYes {
			params.Confirm = promptSeason
		}

		res, err := m.SplitSeasons(cmdContext(), params)
		if err != nil {
			log.Fatalf("failed to split seasons: %v", err)
		}

		log.Printf("%d links across %d seasons", res.Links, len(res.Plan.Seasons))
		for _, file := range res.Plan.Unassigned {
			log.Printf("unassigned: %s", file.Filename)
		}
	},
}

// promptSeason asks on the terminal whether a detected sequel belongs to
// the directory being split.
func promptSeason(info series.Info) (bool, error) {
	fmt.Printf("include %q (%d episodes)? [y/N] ", info.TitlePreferred, info.Episodes)

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false, err
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

func init() {
	splitCmd.Flags().StringVar(&splitDir, "dir", "", "merged directory to split (defaults to the series path)")
	splitCmd.Flags().Int32Var(&splitID, "id", 0, "remote id of the first season")
	splitCmd.Flags().StringVar(&splitOut, "out", "", "directory for the season symlink dirs (defaults to the source)")
	splitCmd.Flags().StringVar(&splitFormat, "format", split.DefaultNameFormat, "symlink name format with {title} and {episode} tokens")
	splitCmd.Flags().BoolVarP(&splitYes, "yes", "y", false, "accept every detected sequel without asking")

	rootCmd.AddCommand(splitCmd)
}
