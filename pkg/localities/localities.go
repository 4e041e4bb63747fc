// Package localities consulta a API de localidades do IBGE (UFs e municípios).
package localities

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

// DefaultBaseURL é a API pública de localidades do IBGE
const DefaultBaseURL = "https://servicodados.ibge.gov.br/api/v1/localidades"

var ErrUFRequired = errors.New("uf is required")

// Client busca UFs e cidades
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New cria um cliente; baseURL vazio usa DefaultBaseURL
func New(baseURL string, hc *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: strings.TrimSuffix(baseURL, "/"), httpClient: hc}
}

// ListUFs retorna as siglas dos estados em ordem alfabética
func (c *Client) ListUFs(ctx context.Context) ([]string, error) {
	var states []struct {
		Sigla string `json:"sigla"`
	}
	if err := c.get(ctx, "/estados", &states); err != nil {
		return nil, err
	}

	ufs := make([]string, len(states))
	for i, s := range states {
		ufs[i] = s.Sigla
	}
	sort.Strings(ufs)
	return ufs, nil
}

// ListCities retorna os nomes dos municípios da UF
func (c *Client) ListCities(ctx context.Context, uf string) ([]string, error) {
	if strings.TrimSpace(uf) == "" {
		return nil, ErrUFRequired
	}

	var cities []struct {
		Nome string `json:"nome"`
	}
	if err := c.get(ctx, "/estados/"+url.PathEscape(uf)+"/municipios", &cities); err != nil {
		return nil, err
	}

	names := make([]string, len(cities))
	for i, city := range cities {
		names[i] = city.Nome
	}
	return names, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("localities request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("localities request failed: status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode localities response: %w", err)
	}
	return nil
}
