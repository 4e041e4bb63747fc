// Package client é o cliente HTTP tipado da API do Ecoleta.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Item é um item de coleta
type Item struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
}

// Point é um ponto de coleta
type Point struct {
	ID        uint    `json:"id"`
	Image     string  `json:"image"`
	ImageURL  string  `json:"image_url"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Whatsapp  string  `json:"whatsapp"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
	UF        string  `json:"uf"`
}

// PointDetail é a resposta de GET /points/:id
type PointDetail struct {
	Point Point `json:"point"`
	Items []struct {
		Title string `json:"title"`
	} `json:"items"`
}

// ItemTitles retorna só os títulos dos itens do ponto
func (d *PointDetail) ItemTitles() []string {
	titles := make([]string, len(d.Items))
	for i, item := range d.Items {
		titles[i] = item.Title
	}
	return titles
}

// PointFilter são os filtros de GET /points
type PointFilter struct {
	City    string
	UF      string
	ItemIDs []uint
}

// CreatePointRequest é o formulário multipart de POST /points
type CreatePointRequest struct {
	Name      string
	Email     string
	Whatsapp  string
	Latitude  float64
	Longitude float64
	City      string
	UF        string
	Items     string // ids separados por vírgula
	ImageName string
	Image     io.Reader
}

// FieldError é um erro de validação de campo devolvido pela API
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

// APIError representa uma resposta não-2xx
type APIError struct {
	StatusCode int
	Message    string       // {"message": ...}
	Title      string       // RFC 7807
	Detail     string       // RFC 7807
	Errors     []FieldError // erros de validação
}

func (e *APIError) Error() string {
	switch {
	case e.Message != "":
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	case e.Detail != "":
		return fmt.Sprintf("api error %d: %s: %s", e.StatusCode, e.Title, e.Detail)
	default:
		return fmt.Sprintf("api error %d", e.StatusCode)
	}
}

// Client chama a API REST
type Client struct {
	baseURL    string
	httpClient *http.Client
	language   string
}

// Option configura o Client
type Option func(*Client)

// WithHTTPClient substitui o http.Client padrão
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLanguage envia Accept-Language em todas as requisições
func WithLanguage(lang string) Option {
	return func(c *Client) { c.language = lang }
}

// New cria um cliente para baseURL (ex.: http://localhost:3333)
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListItems busca todos os itens
func (c *Client) ListItems(ctx context.Context) ([]Item, error) {
	var items []Item
	if err := c.getJSON(ctx, "/items", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ListPoints busca os pontos filtrados por cidade, UF e itens
func (c *Client) ListPoints(ctx context.Context, filter PointFilter) ([]Point, error) {
	query := url.Values{}
	query.Set("city", filter.City)
	query.Set("uf", filter.UF)
	query.Set("items", JoinIDs(filter.ItemIDs))

	var points []Point
	if err := c.getJSON(ctx, "/points?"+query.Encode(), &points); err != nil {
		return nil, err
	}
	return points, nil
}

// GetPoint busca um ponto e os títulos dos seus itens
func (c *Client) GetPoint(ctx context.Context, id uint) (*PointDetail, error) {
	var detail PointDetail
	if err := c.getJSON(ctx, "/points/"+strconv.FormatUint(uint64(id), 10), &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// CreatePoint envia o cadastro em uma única requisição multipart, sem retry
func (c *Client) CreatePoint(ctx context.Context, req CreatePointRequest) (*Point, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	fields := []struct{ name, value string }{
		{"name", req.Name},
		{"email", req.Email},
		{"whatsapp", req.Whatsapp},
		{"latitude", strconv.FormatFloat(req.Latitude, 'f', -1, 64)},
		{"longitude", strconv.FormatFloat(req.Longitude, 'f', -1, 64)},
		{"city", req.City},
		{"uf", req.UF},
		{"items", req.Items},
	}
	for _, f := range fields {
		if err := writer.WriteField(f.name, f.value); err != nil {
			return nil, err
		}
	}

	if req.Image != nil {
		part, err := writer.CreateFormFile("image", req.ImageName)
		if err != nil {
			return nil, err
		}
		if _, err := io.Copy(part, req.Image); err != nil {
			return nil, fmt.Errorf("failed to read image: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	httpReq, err := c.newRequest(ctx, http.MethodPost, "/points", &body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	var point Point
	if err := c.do(httpReq, &point); err != nil {
		return nil, err
	}
	return &point, nil
}

// JoinIDs formata ids como "1,2,3"
func JoinIDs(ids []uint) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return strings.Join(parts, ",")
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.language != "" {
		req.Header.Set("Accept-Language", c.language)
	}
	return req, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, data)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeError(status int, data []byte) error {
	var body struct {
		Message string       `json:"message"`
		Title   string       `json:"title"`
		Detail  string       `json:"detail"`
		Errors  []FieldError `json:"errors"`
	}
	_ = json.Unmarshal(data, &body)

	return &APIError{
		StatusCode: status,
		Message:    body.Message,
		Title:      body.Title,
		Detail:     body.Detail,
		Errors:     body.Errors,
	}
}
