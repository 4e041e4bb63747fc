package register

import (
	"context"
	"errors"
	"io"

	"github.com/rafabene/ecoleta/pkg/client"
)

var ErrUFNotSelected = errors.New("select a uf before loading cities")

// API é o subconjunto da API usado no cadastro
type API interface {
	ListItems(ctx context.Context) ([]client.Item, error)
	CreatePoint(ctx context.Context, req client.CreatePointRequest) (*client.Point, error)
}

// Localities fornece as listas de UFs e cidades
type Localities interface {
	ListUFs(ctx context.Context) ([]string, error)
	ListCities(ctx context.Context, uf string) ([]string, error)
}

// Wizard conduz o cadastro sobre um Draft
type Wizard struct {
	api        API
	localities Localities
	Draft      Draft
}

// NewWizard cria um wizard com rascunho vazio
func NewWizard(api API, localities Localities) *Wizard {
	return &Wizard{api: api, localities: localities}
}

// Items lista os itens que podem ser marcados
func (w *Wizard) Items(ctx context.Context) ([]client.Item, error) {
	return w.api.ListItems(ctx)
}

// UFs lista as UFs disponíveis
func (w *Wizard) UFs(ctx context.Context) ([]string, error) {
	return w.localities.ListUFs(ctx)
}

// Cities lista as cidades da UF escolhida; exige UF selecionada
func (w *Wizard) Cities(ctx context.Context) ([]string, error) {
	if w.Draft.UF == "" {
		return nil, ErrUFNotSelected
	}
	return w.localities.ListCities(ctx, w.Draft.UF)
}

// Submit envia o cadastro uma única vez, sem retry
func (w *Wizard) Submit(ctx context.Context, imageName string, image io.Reader) (*client.Point, error) {
	return w.api.CreatePoint(ctx, w.Draft.Payload(imageName, image))
}
