package register

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWizard_Cities(t *testing.T) {
	api, localities := newFakes()
	w := NewWizard(api, localities)

	_, err := w.Cities(context.Background())
	assert.ErrorIs(t, err, ErrUFNotSelected)
	assert.Zero(t, localities.citiesCalls, "não busca cidades antes da UF")

	w.Draft.SelectUF("SP")
	cities, err := w.Cities(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Campinas", "São Paulo"}, cities)
}

func TestWizard_Submit(t *testing.T) {
	t.Run("envia uma única requisição", func(t *testing.T) {
		api, localities := newFakes()
		w := NewWizard(api, localities)
		w.Draft = Draft{Name: "Mercado", Email: "a@b.com", Whatsapp: "1199", UF: "SP", City: "São Paulo"}
		w.Draft.SelectPosition(1, 2)
		w.Draft.ToggleItem(1)
		w.Draft.ToggleItem(3)

		point, err := w.Submit(context.Background(), "foto.jpg", strings.NewReader("jpeg"))

		require.NoError(t, err)
		assert.Equal(t, uint(10), point.ID)
		require.Len(t, api.requests, 1)
		assert.Equal(t, "1,3", api.requests[0].Items)
		assert.Equal(t, []string{"jpeg"}, api.images)
	})

	t.Run("falha não é repetida", func(t *testing.T) {
		api, localities := newFakes()
		api.createErr = errors.New("boom")
		w := NewWizard(api, localities)

		_, err := w.Submit(context.Background(), "foto.jpg", strings.NewReader("jpeg"))

		assert.Error(t, err)
		assert.Len(t, api.requests, 1)
	})
}
