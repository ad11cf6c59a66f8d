package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathmonsters/internal/catalog"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Browse the catalog skills",
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all skills with their operand ranges (optionally for one grade)",
	RunE: func(cmd *cobra.Command, args []string) error {
		grade, _ := cmd.Flags().GetInt("grade")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cat, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		grades := cat.Grades
		if grade != 0 {
			if cat.SanitizeGrade(grade) != grade {
				return fmt.Errorf("grade %d is not in the catalog", grade)
			}
			grades = []int{grade}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-22s  %-14s  %5s  %s\n", "ID", "Name", "Grade", "Ranges by difficulty")
		fmt.Fprintln(out, strings.Repeat("─", 90))

		for _, s := range cat.Skills {
			for _, g := range grades {
				var ranges []string
				for d := catalog.MinDifficulty; d <= catalog.MaxDifficulty; d++ {
					r := s.Range(g, d)
					ranges = append(ranges, fmt.Sprintf("%d-%d", r.Min(), r.Max()))
				}
				fmt.Fprintf(out, "%-22s  %-14s  %5d  %s\n", s.ID, s.Name, g, strings.Join(ranges, "  "))
			}
		}

		fmt.Fprintf(out, "\n%d skills\n", len(cat.Skills))
		return nil
	},
}

func init() {
	skillListCmd.Flags().Int("grade", 0, "Only show ranges for this grade")

	skillCmd.AddCommand(skillListCmd)
}
