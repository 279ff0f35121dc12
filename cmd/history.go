package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/orienta/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent completed attempts",
	Long: `Show recent completed attempts with their ranked areas.

With --attempt, print the recorded event log of one attempt instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		attemptID, _ := cmd.Flags().GetString("attempt")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if attemptID != "" {
			events, err := st.EventRepo().AttemptEvents(cmd.Context(), attemptID)
			if err != nil {
				return fmt.Errorf("query attempt: %w", err)
			}
			printEvents(cmd.OutOrStdout(), attemptID, events)
			return nil
		}

		attempts, err := st.EventRepo().RecentAttempts(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query history: %w", err)
		}
		printAttempts(cmd.OutOrStdout(), attempts)
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 10, "Maximum number of attempts to show (0 = all)")
	historyCmd.Flags().String("attempt", "", "Show the event log of one attempt")
}

func printAttempts(out io.Writer, attempts []store.AttemptRecord) {
	if len(attempts) == 0 {
		fmt.Fprintln(out, "No completed attempts yet.")
		return
	}
	for _, a := range attempts {
		fmt.Fprintln(out, attemptLine(a))
	}
	fmt.Fprintf(out, "\n%d attempts\n", len(attempts))
}

func printEvents(out io.Writer, attemptID string, events []store.QuizEventRecord) {
	if len(events) == 0 {
		fmt.Fprintf(out, "No events for attempt %s.\n", attemptID)
		return
	}
	fmt.Fprintf(out, "%6s  %-19s  %-8s  %8s  %6s\n", "Seq", "Time", "Action", "Question", "Option")
	fmt.Fprintln(out, strings.Repeat("─", 55))
	for _, e := range events {
		option := "-"
		if e.OptionIndex >= 0 {
			option = fmt.Sprintf("%d", e.OptionIndex+1)
		}
		fmt.Fprintf(out, "%6d  %-19s  %-8s  %8d  %6s\n",
			e.Sequence, e.Timestamp.Local().Format("2006-01-02 15:04:05"), e.Action, e.QuestionIndex+1, option)
	}
}

// attemptLine formats one recorded attempt for the history listing.
func attemptLine(a store.AttemptRecord) string {
	var parts []string
	for _, r := range a.Results {
		parts = append(parts, fmt.Sprintf("#%d %s %s %d/%d", r.Rank, r.Icon, r.AreaName, r.Score, a.TotalQuestions))
	}
	if len(parts) == 0 {
		parts = append(parts, "no results")
	}
	return fmt.Sprintf("%s  %s  %s", a.AttemptID, a.CompletedAt.Local().Format("2006-01-02 15:04"), strings.Join(parts, "  "))
}
