package cmd

import (
	"log/slog"

	"github.com/abhisek/orienta/internal/app"
	"github.com/spf13/cobra"
)

// runApp loads content, opens the store and launches the TUI. A store that
// cannot be opened only disables history.
func runApp(cmd *cobra.Command) error {
	c, err := loadContent(cmd)
	if err != nil {
		return err
	}

	skipIntro, _ := cmd.Flags().GetBool("no-intro")
	opts := app.Options{Content: c, SkipIntro: skipIntro}

	st, err := openStore(cmd)
	if err != nil {
		slog.Warn("history disabled", "error", err)
	} else {
		defer st.Close()
		opts.EventRepo = st.EventRepo()
	}

	return app.Run(opts)
}
