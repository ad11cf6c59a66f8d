package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathmonsters/internal/save"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Export, import or inspect the saved game",
}

var saveExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the save as JSON to file or stdout",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		data, err := e.saves.Export(cmd.Context())
		if err != nil {
			return fmt.Errorf("export save: %w", err)
		}
		data = append(data, '\n')

		if len(args) == 0 {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(args[0], data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", args[0], err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Save written to %s\n", args[0])
		return nil
	},
}

var saveImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the save with a JSON file (version 1 or 2)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		d, err := e.saves.Import(cmd.Context(), raw)
		if err != nil {
			return err
		}
		e.log.Info("save imported", "file", args[0], "xp", d.Progress.XP)
		fmt.Fprintf(cmd.OutOrStdout(), "Imported save: grade %d, level %d, %d XP\n",
			d.Child.Grade, d.Level(), d.Progress.XP)
		return nil
	},
}

var saveHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List previous revisions of the save",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		entries, err := e.db.History(cmd.Context(), save.KeyCurrent, limit)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintln(out, "No previous revisions.")
			return nil
		}
		fmt.Fprintf(out, "%-8s  %-20s  %s\n", "Revision", "Replaced at", "Size")
		for _, h := range entries {
			fmt.Fprintf(out, "%-8d  %-20s  %d bytes\n",
				h.Revision, h.CreatedAt.Local().Format("2006-01-02 15:04:05"), len(h.Value))
		}
		return nil
	},
}

func init() {
	saveHistoryCmd.Flags().Int("limit", 10, "Maximum revisions to list (0 for all)")

	saveCmd.AddCommand(saveExportCmd)
	saveCmd.AddCommand(saveImportCmd)
	saveCmd.AddCommand(saveHistoryCmd)
}
