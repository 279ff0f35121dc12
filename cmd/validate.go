package cmd

import (
	"fmt"

	"github.com/abhisek/orienta/internal/content"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a catalog YAML file",
	Long: `Check a catalog file against the schema and the catalog rules: every option
carries one or two tags and every tag maps to a declared area.

Without a file argument the built-in catalog is validated.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			c   *content.Content
			err error
		)
		if len(args) == 1 {
			c, err = content.LoadFile(args[0])
		} else {
			c, err = content.Default()
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "ok: %q %s, %d questions, %d areas\n",
			c.Title, c.Version, c.Catalog.Len(), len(c.Catalog.Areas()))
		return nil
	},
}
