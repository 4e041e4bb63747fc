package register

import (
	"context"
	"io"
	"sync"

	"github.com/rafabene/ecoleta/pkg/client"
)

type fakeAPI struct {
	mu        sync.Mutex
	items     []client.Item
	createErr error
	requests  []client.CreatePointRequest
	images    []string
}

func (f *fakeAPI) ListItems(context.Context) ([]client.Item, error) {
	return f.items, nil
}

func (f *fakeAPI) CreatePoint(_ context.Context, req client.CreatePointRequest) (*client.Point, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.requests = append(f.requests, req)
	if req.Image != nil {
		data, _ := io.ReadAll(req.Image)
		f.images = append(f.images, string(data))
	}
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &client.Point{ID: 10, Name: req.Name, City: req.City, UF: req.UF}, nil
}

type fakeLocalities struct {
	ufs         []string
	cities      map[string][]string
	citiesCalls int
}

func (f *fakeLocalities) ListUFs(context.Context) ([]string, error) {
	return f.ufs, nil
}

func (f *fakeLocalities) ListCities(_ context.Context, uf string) ([]string, error) {
	f.citiesCalls++
	return f.cities[uf], nil
}

func newFakes() (*fakeAPI, *fakeLocalities) {
	api := &fakeAPI{items: []client.Item{
		{ID: 1, Title: "Lâmpadas"},
		{ID: 2, Title: "Pilhas e Baterias"},
		{ID: 3, Title: "Papéis e Papelão"},
	}}
	localities := &fakeLocalities{
		ufs:    []string{"RJ", "SP"},
		cities: map[string][]string{"SP": {"Campinas", "São Paulo"}, "RJ": {"Niterói"}},
	}
	return api, localities
}
