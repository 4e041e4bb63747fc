package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// itemsCmd lista os itens de coleta
var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Lista os itens de coleta",
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := newAPIClient().ListItems(cmd.Context())
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), items)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tIMAGE")
		for _, item := range items {
			fmt.Fprintf(w, "%d\t%s\t%s\n", item.ID, item.Title, item.ImageURL)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(itemsCmd)
}
