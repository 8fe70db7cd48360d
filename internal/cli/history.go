package cli

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"footprint/internal/store"
)

// newHistoryCmd creates the "history" command group: list (default),
// export, and delete.
func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past carbon calculations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeHistoryList(cmd, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Show at most N most recent entries (0 = all)")

	cmd.AddCommand(newHistoryExportCmd(), newHistoryDeleteCmd())
	return cmd
}

// executeHistoryList prints saved entries newest-first with a trend line.
func executeHistoryList(cmd *cobra.Command, limit int) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st, err := store.Open(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer st.Close()

	entries, err := st.GetAll(cmd.Context())
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		cmd.Println("No calculations saved yet. Run 'footprint calc --save' to start tracking.")
		return nil
	}

	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}

	cmd.Print(renderHistoryTable(entries))
	return nil
}

// newHistoryExportCmd creates the "history export" subcommand.
func newHistoryExportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export history to a CSV file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeHistoryExport(cmd, outPath)
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "footprint.csv", "Output CSV path")
	return cmd
}

// executeHistoryExport writes all entries as CSV. Records are written
// exactly as stored so an exported file round-trips the log schema.
func executeHistoryExport(cmd *cobra.Command, outPath string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st, err := store.Open(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer st.Close()

	entries, err := st.GetAll(cmd.Context())
	if err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"id", "category", "co2e_tonnes", "timestamp", "notes"}); err != nil {
		return err
	}
	for _, e := range entries {
		record := []string{
			e.ID,
			e.Category,
			strconv.FormatFloat(e.CO2eTonnes, 'f', -1, 64),
			e.Timestamp.UTC().Format(time.RFC3339),
			e.Notes,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}

	logger.Info().
		Str("operation", "export").
		Int("entries", len(entries)).
		Str("path", outPath).
		Msg("history exported")
	cmd.Printf("Exported %d entries to %s\n", len(entries), outPath)
	return nil
}

// newHistoryDeleteCmd creates the "history delete" subcommand. Deletion is
// the only way a saved entry ever changes, and it requires an explicit ID.
func newHistoryDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a history entry by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			st, err := store.Open(cfg.Database.Path)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			cmd.Printf("Deleted %s\n", args[0])
			return nil
		},
	}
}
