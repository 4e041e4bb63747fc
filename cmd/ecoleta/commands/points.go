package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rafabene/ecoleta/internal/domain/valueobjects"
	"github.com/rafabene/ecoleta/pkg/client"
)

var (
	// Points flags
	pointCity  string
	pointUF    string
	pointItems string

	createReq   client.CreatePointRequest
	createImage string
)

// pointsCmd agrupa os comandos de pontos
var pointsCmd = &cobra.Command{
	Use:   "points",
	Short: "Lista, mostra e cadastra pontos de coleta",
	Long: `Pontos de coleta.

Examples:
  ecoleta points list --city "São Paulo" --uf SP --items 1,2
  ecoleta points show 1
  ecoleta points create --name Mercado --email a@b.com --whatsapp 11999999999 \
    --lat -23.55 --lng -46.63 --city "São Paulo" --uf SP --items 1,2 --image foto.jpg`,
}

var pointsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lista pontos filtrados por cidade, UF e itens",
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := valueobjects.ParseItemIDs(pointItems)
		if err != nil {
			return err
		}

		points, err := newAPIClient().ListPoints(cmd.Context(), client.PointFilter{
			City:    pointCity,
			UF:      pointUF,
			ItemIDs: ids.Uints(),
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), points)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCITY\tUF\tLAT\tLNG")
		for _, p := range points {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.6f\t%.6f\n", p.ID, p.Name, p.City, p.UF, p.Latitude, p.Longitude)
		}
		return w.Flush()
	},
}

var pointsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Mostra um ponto e os itens que ele aceita",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 0)
		if err != nil {
			return fmt.Errorf("invalid point id %q", args[0])
		}

		detail, err := newAPIClient().GetPoint(cmd.Context(), uint(id))
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), detail)
		}

		out := cmd.OutOrStdout()
		p := detail.Point
		fmt.Fprintf(out, "#%d %s\n", p.ID, p.Name)
		fmt.Fprintf(out, "  %s, %s (%.6f, %.6f)\n", p.City, p.UF, p.Latitude, p.Longitude)
		fmt.Fprintf(out, "  e-mail: %s  whatsapp: %s\n", p.Email, p.Whatsapp)
		fmt.Fprintf(out, "  foto: %s\n", p.ImageURL)
		fmt.Fprintf(out, "  itens: %s\n", strings.Join(detail.ItemTitles(), ", "))
		return nil
	},
}

var pointsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Cadastra um ponto (envio único, sem retry)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if createImage == "" {
			return errors.New("--image is required")
		}

		file, err := os.Open(createImage)
		if err != nil {
			return err
		}
		defer file.Close()

		req := createReq
		req.Items = pointItems
		req.ImageName = filepath.Base(createImage)
		req.Image = file

		point, err := newAPIClient().CreatePoint(cmd.Context(), req)
		if err != nil {
			var apiErr *client.APIError
			if errors.As(err, &apiErr) {
				for _, fe := range apiErr.Errors {
					fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", fe.Field, fe.Message)
				}
			}
			return err
		}

		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), point)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ponto #%d criado: %s\n", point.ID, point.ImageURL)
		return nil
	},
}

func init() {
	pointsListCmd.Flags().StringVar(&pointCity, "city", "", "Cidade (igualdade exata)")
	pointsListCmd.Flags().StringVar(&pointUF, "uf", "", "UF (igualdade exata)")
	pointsListCmd.Flags().StringVar(&pointItems, "items", "", "Ids dos itens separados por vírgula")

	f := pointsCreateCmd.Flags()
	f.StringVar(&createReq.Name, "name", "", "Nome")
	f.StringVar(&createReq.Email, "email", "", "E-mail")
	f.StringVar(&createReq.Whatsapp, "whatsapp", "", "Whatsapp")
	f.Float64Var(&createReq.Latitude, "lat", 0, "Latitude")
	f.Float64Var(&createReq.Longitude, "lng", 0, "Longitude")
	f.StringVar(&createReq.City, "city", "", "Cidade")
	f.StringVar(&createReq.UF, "uf", "", "UF")
	f.StringVar(&pointItems, "items", "", "Ids dos itens separados por vírgula")
	f.StringVar(&createImage, "image", "", "Caminho da foto")

	pointsCmd.AddCommand(pointsListCmd, pointsShowCmd, pointsCreateCmd)
	rootCmd.AddCommand(pointsCmd)
}
