// Package discover implementa a descoberta de pontos de coleta:
// localização do usuário, filtro por itens e navegação para o detalhe.
package discover

import (
	"context"
	"errors"
	"sync"

	"github.com/rafabene/ecoleta/pkg/client"
)

var ErrPermissionDenied = errors.New("location permission denied")

// Location é uma coordenada do dispositivo
type Location struct {
	Latitude  float64
	Longitude float64
}

// LocationProvider pede permissão e retorna a localização atual
type LocationProvider interface {
	CurrentLocation(ctx context.Context) (Location, error)
}

// FixedLocation é um provider com coordenada fixa
type FixedLocation Location

func (f FixedLocation) CurrentLocation(context.Context) (Location, error) {
	return Location(f), nil
}

// DeniedLocation simula a permissão negada
type DeniedLocation struct{}

func (DeniedLocation) CurrentLocation(context.Context) (Location, error) {
	return Location{}, ErrPermissionDenied
}

// API é o subconjunto da API usado na descoberta
type API interface {
	ListItems(ctx context.Context) ([]client.Item, error)
	ListPoints(ctx context.Context, filter client.PointFilter) ([]client.Point, error)
	GetPoint(ctx context.Context, id uint) (*client.PointDetail, error)
}

// Route é o destino de navegação ao tocar um marcador
type Route struct {
	Name    string
	PointID uint
}

// DetailRoute é o nome da tela de detalhe
const DetailRoute = "Detail"

// Discovery guarda o estado da tela de mapa
type Discovery struct {
	api      API
	location LocationProvider
	city     string
	uf       string

	mu       sync.Mutex
	origin   Location
	blocked  bool
	items    []client.Item
	selected []uint
	points   []client.Point
}

// New cria a descoberta para a cidade/UF escolhidas antes
func New(api API, location LocationProvider, city, uf string) *Discovery {
	return &Discovery{api: api, location: location, city: city, uf: uf}
}

// Start pede a localização e carrega itens e pontos de forma independente.
// Com permissão negada retorna ErrPermissionDenied e não carrega nada.
func (d *Discovery) Start(ctx context.Context) error {
	origin, err := d.location.CurrentLocation(ctx)
	if err != nil {
		if errors.Is(err, ErrPermissionDenied) {
			d.mu.Lock()
			d.blocked = true
			d.mu.Unlock()
		}
		return err
	}

	d.mu.Lock()
	d.origin = origin
	d.mu.Unlock()

	var (
		wg               sync.WaitGroup
		itemsErr, ptsErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		itemsErr = d.loadItems(ctx)
	}()
	go func() {
		defer wg.Done()
		_, ptsErr = d.Refresh(ctx)
	}()
	wg.Wait()

	return errors.Join(itemsErr, ptsErr)
}

func (d *Discovery) loadItems(ctx context.Context) error {
	items, err := d.api.ListItems(ctx)
	if err != nil {
		return err
	}

	d.mu.Lock()
	d.items = items
	d.mu.Unlock()
	return nil
}

// Refresh busca os pontos com a seleção atual de itens
func (d *Discovery) Refresh(ctx context.Context) ([]client.Point, error) {
	d.mu.Lock()
	filter := client.PointFilter{City: d.city, UF: d.uf, ItemIDs: append([]uint(nil), d.selected...)}
	d.mu.Unlock()

	points, err := d.api.ListPoints(ctx, filter)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	d.points = points
	d.mu.Unlock()
	return points, nil
}

// ToggleItem marca/desmarca o item e busca os pontos de novo imediatamente
func (d *Discovery) ToggleItem(ctx context.Context, id uint) ([]client.Point, error) {
	d.mu.Lock()
	removed := false
	for i, selected := range d.selected {
		if selected == id {
			d.selected = append(d.selected[:i], d.selected[i+1:]...)
			removed = true
			break
		}
	}
	if !removed {
		d.selected = append(d.selected, id)
	}
	d.mu.Unlock()

	return d.Refresh(ctx)
}

// Select gera a navegação para o detalhe levando apenas o id
func (d *Discovery) Select(pointID uint) Route {
	return Route{Name: DetailRoute, PointID: pointID}
}

// Detail busca o ponto e os títulos dos seus itens
func (d *Discovery) Detail(ctx context.Context, route Route) (*client.PointDetail, error) {
	return d.api.GetPoint(ctx, route.PointID)
}

// Blocked informa se a permissão de localização foi negada
func (d *Discovery) Blocked() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.blocked
}

// Origin retorna a localização inicial do mapa
func (d *Discovery) Origin() Location {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.origin
}

// Items retorna os itens carregados
func (d *Discovery) Items() []client.Item {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.items
}

// Points retorna os pontos da última busca
func (d *Discovery) Points() []client.Point {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.points
}

// IsSelected informa se o item está no filtro
func (d *Discovery) IsSelected(id uint) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, selected := range d.selected {
		if selected == id {
			return true
		}
	}
	return false
}
