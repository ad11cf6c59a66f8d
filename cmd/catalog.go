package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathmonsters/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Work with game catalogs",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a JSON or YAML catalog against the schema and structural rules",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d skills, %d creatures, %d enemies, grades %v)\n",
			args[0], len(cat.Skills), len(cat.Creatures), len(cat.Enemies), cat.Grades)
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogValidateCmd)
}
