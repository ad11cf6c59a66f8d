package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathmonsters/internal/mastery"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the player profile and per-skill progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		d := e.saves.Load(cmd.Context())
		if d == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "No saved game yet. Run `mathmonsters play` to start.")
			return nil
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Grade:     %d\n", d.Child.Grade)
		fmt.Fprintf(out, "Creature:  %s\n", d.Child.SelectedCreatureID)
		fmt.Fprintf(out, "Level:     %d (%d XP)\n", d.Level(), d.Progress.XP)
		fmt.Fprintf(out, "Battles:   %d\n", d.Progress.BattlesPlayed)
		if d.Flags.PracticeMode {
			fmt.Fprintln(out, "Practice mode is on")
		}
		fmt.Fprintln(out)

		fmt.Fprintf(out, "%-22s  %-10s  %8s  %8s  %8s\n", "Skill", "Difficulty", "Answered", "Accuracy", "Avg time")
		fmt.Fprintln(out, strings.Repeat("─", 64))
		for _, sk := range e.cat.Skills {
			st := d.Skill(sk.ID)
			fmt.Fprintf(out, "%-22s  %-10s  %8d  %7.0f%%  %8s\n",
				sk.ID, mastery.DifficultyMeter(st.Difficulty), st.TotalAnswered,
				st.Accuracy()*100, mastery.FormatResponseTime(st.AverageResponseMs))
		}
		return nil
	},
}
