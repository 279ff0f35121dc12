package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all recorded quiz history",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		out := cmd.OutOrStdout()

		if !yes {
			fmt.Fprint(out, "Delete all quiz history? [y/N]: ")
			scanner := bufio.NewScanner(cmd.InOrStdin())
			if !scanner.Scan() || strings.ToLower(strings.TrimSpace(scanner.Text())) != "y" {
				fmt.Fprintln(out, "Aborted.")
				return nil
			}
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.EventRepo().Clear(cmd.Context()); err != nil {
			return fmt.Errorf("clear history: %w", err)
		}
		fmt.Fprintln(out, "History cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}
