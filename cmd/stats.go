package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recent generation attempts from the event log",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open event log: %w", err)
		}
		defer st.Close()

		events, err := st.EventRepo().RecentGenerations(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			fmt.Println("no generation events recorded")
			return nil
		}

		fmt.Printf("%-20s %-14s %-10s %-8s %8s %7s  %s\n",
			"TIME", "PURPOSE", "PROVIDER", "OK", "LATENCY", "TOKENS", "ERROR")
		for _, ev := range events {
			status := "yes"
			if !ev.Success {
				status = "no"
			}
			errMsg := ev.ErrorMessage
			if len(errMsg) > 60 {
				errMsg = errMsg[:57] + "..."
			}
			fmt.Printf("%-20s %-14s %-10s %-8s %6dms %7d  %s\n",
				ev.CreatedAt.Format("2006-01-02 15:04:05"),
				ev.Purpose, ev.Provider, status,
				ev.LatencyMs, ev.OutputTokens, errMsg)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("limit", 20, "Maximum number of events to show")
}
