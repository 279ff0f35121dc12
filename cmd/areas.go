package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var areasCmd = &cobra.Command{
	Use:   "areas",
	Short: "List the vocational areas of the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadContent(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		usage := c.Catalog.TagUsage()

		fmt.Fprintf(out, "%-16s  %-4s  %-32s  %s\n", "Tag", "", "Name", "Options")
		fmt.Fprintln(out, strings.Repeat("─", 68))
		for _, a := range c.Catalog.Areas() {
			fmt.Fprintf(out, "%-16s  %-4s  %-32s  %7d\n", a.Tag, a.Icon, a.Name, usage[a.Tag])
		}

		fmt.Fprintf(out, "\n%d areas\n", len(c.Catalog.Areas()))
		return nil
	},
}
