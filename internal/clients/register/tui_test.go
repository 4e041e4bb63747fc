package register

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send aplica a mensagem e executa o comando resultante uma vez
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func newTestModel(t *testing.T) (Model, *fakeAPI) {
	t.Helper()

	api, localities := newFakes()
	m := NewModel(context.Background(), NewWizard(api, localities))
	m.openImage = func(path string) (io.ReadCloser, error) {
		if path != "/tmp/foto.jpg" {
			return nil, errors.New("not found")
		}
		return io.NopCloser(strings.NewReader("jpeg")), nil
	}

	m, _ = send(t, m, itemsLoadedMsg{items: api.items})
	m, _ = send(t, m, ufsLoadedMsg{ufs: []string{"RJ", "SP"}})
	return m, api
}

func fillFields(t *testing.T, m Model, lat string) Model {
	t.Helper()

	for _, value := range []string{"Mercado", "contato@mercado.com", "11999999999", lat, "-46.6333", "/tmp/foto.jpg"} {
		m = typeText(t, m, value)
		m, _ = send(t, m, key("enter"))
	}
	return m
}

func TestModel_FullFlow(t *testing.T) {
	m, api := newTestModel(t)

	m = fillFields(t, m, "-23.5505")
	require.Equal(t, stepUF, m.step)
	assert.Equal(t, "Mercado", m.wizard.Draft.Name)
	assert.Equal(t, Position{Latitude: -23.5505, Longitude: -46.6333}, m.wizard.Draft.Position())

	// UF: RJ -> SP
	m, _ = send(t, m, key("down"))
	m, cmd := send(t, m, key("enter"))
	require.Equal(t, stepCity, m.step)
	assert.Equal(t, "SP", m.wizard.Draft.UF)
	require.NotNil(t, cmd)
	m, _ = send(t, m, cmd())
	assert.Equal(t, []string{"Campinas", "São Paulo"}, m.cities)

	m, _ = send(t, m, key("down"))
	m, _ = send(t, m, key("enter"))
	require.Equal(t, stepItems, m.step)
	assert.Equal(t, "São Paulo", m.wizard.Draft.City)

	// marca 1 e 3, marca e desmarca 2
	m, _ = send(t, m, key(" "))
	m, _ = send(t, m, key("down"))
	m, _ = send(t, m, key(" "))
	m, _ = send(t, m, key(" "))
	m, _ = send(t, m, key("down"))
	m, _ = send(t, m, key(" "))
	assert.Equal(t, []uint{1, 3}, m.wizard.Draft.SelectedItems())

	m, cmd = send(t, m, key("enter"))
	require.Equal(t, stepSubmitting, m.step)
	m, cmd = send(t, m, cmd())

	assert.Equal(t, stepDone, m.step)
	assert.NotNil(t, cmd, "sai após o sucesso")
	require.NotNil(t, m.Created())
	assert.Contains(t, m.View(), "Ponto #10 criado")

	require.Len(t, api.requests, 1)
	assert.Equal(t, "1,3", api.requests[0].Items)
	assert.Equal(t, "foto.jpg", api.requests[0].ImageName)
	assert.Equal(t, []string{"jpeg"}, api.images)
}

func TestModel_InvalidLatitude(t *testing.T) {
	m, _ := newTestModel(t)

	m = fillFields(t, m, "abc")

	assert.Equal(t, stepFields, m.step)
	assert.Contains(t, m.View(), "latitude inválida")
}

func TestModel_SubmitFailure(t *testing.T) {
	m, api := newTestModel(t)
	api.createErr = errors.New("api error 500")

	m = fillFields(t, m, "-23.5")
	m, cmd := send(t, m, key("enter")) // RJ
	m, _ = send(t, m, cmd())
	m, _ = send(t, m, key("enter")) // Niterói
	m, _ = send(t, m, key(" "))
	m, cmd = send(t, m, key("enter"))
	m, _ = send(t, m, cmd())

	assert.Equal(t, stepFailed, m.step)
	assert.Error(t, m.Err())
	assert.Contains(t, m.View(), "Não foi possível cadastrar o ponto.")
	assert.Len(t, api.requests, 1)
}
