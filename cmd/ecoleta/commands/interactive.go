package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rafabene/ecoleta/internal/clients/discover"
	"github.com/rafabene/ecoleta/internal/clients/register"
	"github.com/rafabene/ecoleta/pkg/client"
)

var (
	// Discover flags
	discoverCity string
	discoverUF   string
	originLat    float64
	originLng    float64
	denyLocation bool
)

// registerCmd abre o cadastro interativo
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Cadastro interativo de ponto de coleta",
	RunE: func(cmd *cobra.Command, args []string) error {
		wizard := register.NewWizard(newAPIClient(), newLocalitiesClient())

		final, err := tea.NewProgram(register.NewModel(cmd.Context(), wizard), tea.WithAltScreen()).Run()
		if err != nil {
			return err
		}

		model := final.(register.Model)
		if err := model.Err(); err != nil {
			return err
		}
		if point := model.Created(); point != nil {
			// Cadastro concluído: mostra a listagem da cidade/UF do ponto
			fmt.Fprintf(cmd.OutOrStdout(), "ponto #%d criado. Veja: ecoleta points list --city %q --uf %s --items %s\n",
				point.ID, point.City, point.UF, client.JoinIDs(wizard.Draft.SelectedItems()))
		}
		return nil
	},
}

// discoverCmd abre a descoberta interativa
var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Descoberta interativa de pontos de coleta",
	RunE: func(cmd *cobra.Command, args []string) error {
		var location discover.LocationProvider = discover.FixedLocation{Latitude: originLat, Longitude: originLng}
		if denyLocation {
			location = discover.DeniedLocation{}
		}

		discovery := discover.New(newAPIClient(), location, discoverCity, discoverUF)
		_, err := tea.NewProgram(discover.NewModel(cmd.Context(), discovery), tea.WithAltScreen()).Run()
		return err
	},
}

func init() {
	discoverCmd.Flags().StringVar(&discoverCity, "city", "", "Cidade escolhida")
	discoverCmd.Flags().StringVar(&discoverUF, "uf", "", "UF escolhida")
	discoverCmd.Flags().Float64Var(&originLat, "lat", -23.5505, "Latitude do dispositivo")
	discoverCmd.Flags().Float64Var(&originLng, "lng", -46.6333, "Longitude do dispositivo")
	discoverCmd.Flags().BoolVar(&denyLocation, "deny-location", false, "Simula permissão de localização negada")
	_ = discoverCmd.MarkFlagRequired("city")
	_ = discoverCmd.MarkFlagRequired("uf")

	rootCmd.AddCommand(registerCmd, discoverCmd)
}
