// Package register implementa o fluxo de cadastro de um ponto de coleta:
// campos de texto, posição no mapa, itens aceitos e envio único.
package register

import (
	"io"
	"strings"

	"github.com/rafabene/ecoleta/pkg/client"
)

// Position é a coordenada escolhida no mapa
type Position struct {
	Latitude  float64
	Longitude float64
}

// Draft guarda o estado do formulário antes do envio
type Draft struct {
	Name     string
	Email    string
	Whatsapp string
	UF       string
	City     string

	position Position
	items    []uint
}

// SelectPosition define a posição; o último clique vale
func (d *Draft) SelectPosition(lat, lng float64) {
	d.position = Position{Latitude: lat, Longitude: lng}
}

// Position retorna a posição escolhida (0,0 se nenhuma)
func (d *Draft) Position() Position {
	return d.position
}

// SelectUF troca a UF e limpa a cidade escolhida
func (d *Draft) SelectUF(uf string) {
	if uf != d.UF {
		d.City = ""
	}
	d.UF = uf
}

// ToggleItem adiciona o item ou remove se já estiver selecionado.
// Um item re-selecionado vai para o fim da lista.
func (d *Draft) ToggleItem(id uint) {
	for i, selected := range d.items {
		if selected == id {
			d.items = append(d.items[:i], d.items[i+1:]...)
			return
		}
	}
	d.items = append(d.items, id)
}

// IsSelected informa se o item está selecionado
func (d *Draft) IsSelected(id uint) bool {
	for _, selected := range d.items {
		if selected == id {
			return true
		}
	}
	return false
}

// SelectedItems retorna uma cópia dos itens selecionados
func (d *Draft) SelectedItems() []uint {
	return append([]uint(nil), d.items...)
}

// Payload monta a requisição multipart de cadastro
func (d *Draft) Payload(imageName string, image io.Reader) client.CreatePointRequest {
	return client.CreatePointRequest{
		Name:      strings.TrimSpace(d.Name),
		Email:     strings.TrimSpace(d.Email),
		Whatsapp:  strings.TrimSpace(d.Whatsapp),
		Latitude:  d.position.Latitude,
		Longitude: d.position.Longitude,
		City:      d.City,
		UF:        d.UF,
		Items:     client.JoinIDs(d.items),
		ImageName: imageName,
		Image:     image,
	}
}
