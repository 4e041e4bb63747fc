package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// localitiesCmd agrupa as consultas ao IBGE
var localitiesCmd = &cobra.Command{
	Use:   "localities",
	Short: "Lista UFs e cidades (IBGE)",
}

var localitiesUFsCmd = &cobra.Command{
	Use:   "ufs",
	Short: "Lista as UFs",
	RunE: func(cmd *cobra.Command, args []string) error {
		ufs, err := newLocalitiesClient().ListUFs(cmd.Context())
		if err != nil {
			return err
		}
		return printLines(cmd, ufs)
	},
}

var localitiesCitiesCmd = &cobra.Command{
	Use:   "cities <uf>",
	Short: "Lista as cidades de uma UF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cities, err := newLocalitiesClient().ListCities(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printLines(cmd, cities)
	},
}

func printLines(cmd *cobra.Command, lines []string) error {
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), lines)
	}
	for _, line := range lines {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}

func init() {
	localitiesCmd.AddCommand(localitiesUFsCmd, localitiesCitiesCmd)
	rootCmd.AddCommand(localitiesCmd)
}
