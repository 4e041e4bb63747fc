package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rafabene/ecoleta/pkg/client"
	"github.com/rafabene/ecoleta/pkg/localities"
)

var (
	// Global flags
	apiURL        string
	localitiesURL string
	language      string
	jsonOutput    bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ecoleta",
	Short: "Ecoleta - cliente dos pontos de coleta",
	Long: `Cliente de linha de comando da API do Ecoleta.

Subcommands:
  items       - Lista os itens de coleta
  points      - Lista, mostra e cadastra pontos
  localities  - Lista UFs e cidades (IBGE)
  register    - Cadastro interativo de ponto
  discover    - Descoberta interativa de pontos`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", envOr("ECOLETA_API_URL", "http://localhost:3333"), "URL base da API")
	rootCmd.PersistentFlags().StringVar(&localitiesURL, "localities-url", localities.DefaultBaseURL, "URL da API de localidades do IBGE")
	rootCmd.PersistentFlags().StringVar(&language, "lang", "", "Idioma das mensagens de erro (en, pt-BR)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Saída em JSON")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newAPIClient() *client.Client {
	var opts []client.Option
	if language != "" {
		opts = append(opts, client.WithLanguage(language))
	}
	return client.New(apiURL, opts...)
}

func newLocalitiesClient() *localities.Client {
	return localities.New(localitiesURL, nil)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
