package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"perfcmp/internal/compare"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past comparison runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")

			store, err := newHistoryStore(viper.GetString("history_db"))
			if err != nil {
				return fmt.Errorf("failed to open history database: %w", err)
			}
			defer store.Close()

			entries, err := store.Recent(limit)
			if err != nil {
				return fmt.Errorf("failed to load history: %w", err)
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No recorded runs.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tWHEN\tORIG TOTAL (s)\tOPT TOTAL (s)\tSPEEDUP")
			for _, e := range entries {
				orig := e.Results.Original[compare.MetricTotalExecution]
				opt := e.Results.Optimized[compare.MetricTotalExecution]

				origStr, optStr, speedup := "N/A", "N/A", "N/A"
				if orig > 0 {
					origStr = fmt.Sprintf("%.3f", orig)
				}
				if opt > 0 {
					optStr = fmt.Sprintf("%.3f", opt)
				}
				if orig > 0 && opt > 0 {
					speedup = fmt.Sprintf("%.2fx", orig/opt)
				}

				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					e.ID, e.CreatedAt.Format("2006-01-02 15:04:05"), origStr, optStr, speedup)
			}
			return w.Flush()
		},
	}
	cmd.Flags().Int("limit", 10, "Maximum number of runs to show")
	return cmd
}
