package register

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDraft_ToggleItem(t *testing.T) {
	var d Draft

	d.ToggleItem(1)
	d.ToggleItem(3)
	d.ToggleItem(2)
	assert.Equal(t, []uint{1, 3, 2}, d.SelectedItems())

	d.ToggleItem(3)
	assert.Equal(t, []uint{1, 2}, d.SelectedItems())
	assert.False(t, d.IsSelected(3))

	d.ToggleItem(3)
	assert.Equal(t, []uint{1, 2, 3}, d.SelectedItems(), "re-seleção vai para o fim")
}

func TestDraft_SelectPosition(t *testing.T) {
	var d Draft
	assert.Equal(t, Position{}, d.Position())

	d.SelectPosition(-23.55, -46.63)
	d.SelectPosition(-22.90, -47.06)

	assert.Equal(t, Position{Latitude: -22.90, Longitude: -47.06}, d.Position())
}

func TestDraft_SelectUF(t *testing.T) {
	d := Draft{UF: "SP", City: "Campinas"}

	d.SelectUF("SP")
	assert.Equal(t, "Campinas", d.City, "mesma UF mantém a cidade")

	d.SelectUF("RJ")
	assert.Equal(t, "RJ", d.UF)
	assert.Empty(t, d.City)
}

func TestDraft_Payload(t *testing.T) {
	d := Draft{Name: " Mercado ", Email: "contato@mercado.com", Whatsapp: "11999999999", UF: "SP", City: "São Paulo"}
	d.SelectPosition(-23.5505, -46.6333)
	d.ToggleItem(2)
	d.ToggleItem(1)

	req := d.Payload("foto.jpg", strings.NewReader("jpeg"))

	assert.Equal(t, "Mercado", req.Name)
	assert.Equal(t, "2,1", req.Items)
	assert.Equal(t, -23.5505, req.Latitude)
	assert.Equal(t, "SP", req.UF)
	assert.Equal(t, "foto.jpg", req.ImageName)
}
