package cmd

import (
	"github.com/spf13/cobra"
)

var playSkipIntro bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the game",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, playSkipIntro)
	},
}

func init() {
	playCmd.Flags().BoolVar(&playSkipIntro, "skip-intro", false, "Skip the splash animation")
}
