package register

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rafabene/ecoleta/pkg/client"
)

type step int

const (
	stepFields step = iota
	stepUF
	stepCity
	stepItems
	stepSubmitting
	stepDone
	stepFailed
)

// Índices dos campos de texto
const (
	fieldName = iota
	fieldEmail
	fieldWhatsapp
	fieldLatitude
	fieldLongitude
	fieldImage
	fieldCount
)

var fieldLabels = [fieldCount]string{"Nome", "E-mail", "Whatsapp", "Latitude", "Longitude", "Foto (caminho)"}

// Messages
type itemsLoadedMsg struct {
	items []client.Item
	err   error
}

type ufsLoadedMsg struct {
	ufs []string
	err error
}

type citiesLoadedMsg struct {
	cities []string
	err    error
}

type submittedMsg struct {
	point *client.Point
	err   error
}

// Model é o formulário de cadastro no terminal
type Model struct {
	ctx       context.Context
	wizard    *Wizard
	openImage func(path string) (io.ReadCloser, error)

	step    step
	inputs  []textinput.Model
	focus   int
	ufs     []string
	cities  []string
	items   []client.Item
	cursor  int
	created *client.Point
	err     error
}

// NewModel cria o formulário sobre o wizard
func NewModel(ctx context.Context, wizard *Wizard) Model {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		input := textinput.New()
		input.Prompt = ""
		input.Placeholder = fieldLabels[i]
		inputs[i] = input
	}
	inputs[fieldName].Focus()

	return Model{
		ctx:    ctx,
		wizard: wizard,
		openImage: func(path string) (io.ReadCloser, error) {
			return os.Open(path) //nolint:gosec
		},
		inputs: inputs,
	}
}

// Created retorna o ponto criado, se o envio deu certo
func (m Model) Created() *client.Point {
	return m.created
}

// Err retorna o erro do envio, se houve
func (m Model) Err() error {
	if m.step == stepFailed {
		return m.err
	}
	return nil
}

// Init carrega itens e UFs em paralelo
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadItemsCmd(), m.loadUFsCmd())
}

// Commands
func (m Model) loadItemsCmd() tea.Cmd {
	return func() tea.Msg {
		items, err := m.wizard.Items(m.ctx)
		return itemsLoadedMsg{items: items, err: err}
	}
}

func (m Model) loadUFsCmd() tea.Cmd {
	return func() tea.Msg {
		ufs, err := m.wizard.UFs(m.ctx)
		return ufsLoadedMsg{ufs: ufs, err: err}
	}
}

func (m Model) loadCitiesCmd() tea.Cmd {
	return func() tea.Msg {
		cities, err := m.wizard.Cities(m.ctx)
		return citiesLoadedMsg{cities: cities, err: err}
	}
}

func (m Model) submitCmd() tea.Cmd {
	path := strings.TrimSpace(m.inputs[fieldImage].Value())

	return func() tea.Msg {
		file, err := m.openImage(path)
		if err != nil {
			return submittedMsg{err: err}
		}
		defer file.Close()

		point, err := m.wizard.Submit(m.ctx, filepath.Base(path), file)
		return submittedMsg{point: point, err: err}
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case itemsLoadedMsg:
		m.items, m.err = msg.items, msg.err
		return m, nil

	case ufsLoadedMsg:
		m.ufs, m.err = msg.ufs, msg.err
		return m, nil

	case citiesLoadedMsg:
		m.cities, m.err = msg.cities, msg.err
		return m, nil

	case submittedMsg:
		if msg.err != nil {
			m.step = stepFailed
			m.err = msg.err
			return m, nil
		}
		m.step = stepDone
		m.created = msg.point
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	if m.step == stepFields {
		return m.updateInputs(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.step {
	case stepFields:
		return m.handleFieldsKey(msg)

	case stepUF:
		switch msg.String() {
		case "up", "k":
			m.moveCursor(-1, len(m.ufs))
		case "down", "j":
			m.moveCursor(1, len(m.ufs))
		case "enter":
			if len(m.ufs) == 0 {
				return m, nil
			}
			m.wizard.Draft.SelectUF(m.ufs[m.cursor])
			m.step, m.cursor, m.cities = stepCity, 0, nil
			return m, m.loadCitiesCmd()
		}

	case stepCity:
		switch msg.String() {
		case "up", "k":
			m.moveCursor(-1, len(m.cities))
		case "down", "j":
			m.moveCursor(1, len(m.cities))
		case "esc":
			m.step, m.cursor = stepUF, 0
		case "enter":
			if len(m.cities) == 0 {
				return m, nil
			}
			m.wizard.Draft.City = m.cities[m.cursor]
			m.step, m.cursor = stepItems, 0
		}

	case stepItems:
		switch msg.String() {
		case "up", "k":
			m.moveCursor(-1, len(m.items))
		case "down", "j":
			m.moveCursor(1, len(m.items))
		case " ", "x":
			if len(m.items) > 0 {
				m.wizard.Draft.ToggleItem(m.items[m.cursor].ID)
			}
		case "esc":
			m.step, m.cursor = stepCity, 0
		case "enter":
			m.step, m.err = stepSubmitting, nil
			return m, m.submitCmd()
		}

	case stepFailed:
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleFieldsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.setFocus(m.focus + 1)
		return m, nil
	case "shift+tab", "up":
		m.setFocus(m.focus - 1)
		return m, nil
	case "enter":
		if m.focus < fieldImage {
			m.setFocus(m.focus + 1)
			return m, nil
		}
		if err := m.applyFields(); err != nil {
			m.err = err
			return m, nil
		}
		m.step, m.cursor, m.err = stepUF, 0, nil
		return m, nil
	}

	return m.updateInputs(msg)
}

// applyFields copia os campos para o rascunho
func (m *Model) applyFields() error {
	lat, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[fieldLatitude].Value()), 64)
	if err != nil {
		return errors.New("latitude inválida")
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[fieldLongitude].Value()), 64)
	if err != nil {
		return errors.New("longitude inválida")
	}
	if strings.TrimSpace(m.inputs[fieldImage].Value()) == "" {
		return errors.New("informe o caminho da foto")
	}

	draft := &m.wizard.Draft
	draft.Name = m.inputs[fieldName].Value()
	draft.Email = m.inputs[fieldEmail].Value()
	draft.Whatsapp = m.inputs[fieldWhatsapp].Value()
	draft.SelectPosition(lat, lng)
	return nil
}

func (m *Model) setFocus(i int) {
	if i < 0 {
		i = fieldCount - 1
	}
	m.focus = i % fieldCount
	for j := range m.inputs {
		if j == m.focus {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

func (m *Model) moveCursor(delta, size int) {
	if size == 0 {
		return
	}
	m.cursor = (m.cursor + delta + size) % size
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View renders the form
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Cadastro do ponto de coleta"))
	b.WriteString("\n")

	switch m.step {
	case stepFields:
		for i, input := range m.inputs {
			label := labelStyle.Render(fieldLabels[i] + ":")
			if i == m.focus {
				label = selectedStyle.Render("▸ " + fieldLabels[i] + ":")
			}
			fmt.Fprintf(&b, "%s %s\n", label, input.View())
		}
		b.WriteString(mutedStyle.Render("\ntab/↑↓ navegar • enter avançar • ctrl+c sair"))

	case stepUF:
		b.WriteString(labelStyle.Render("Selecione a UF") + "\n\n")
		b.WriteString(renderChoices(m.ufs, m.cursor, nil))
		b.WriteString(mutedStyle.Render("\n↑↓ navegar • enter escolher"))

	case stepCity:
		b.WriteString(labelStyle.Render("Selecione a cidade ("+m.wizard.Draft.UF+")") + "\n\n")
		if m.cities == nil && m.err == nil {
			b.WriteString(mutedStyle.Render("carregando cidades..."))
		}
		b.WriteString(renderChoices(m.cities, m.cursor, nil))
		b.WriteString(mutedStyle.Render("\n↑↓ navegar • enter escolher • esc voltar"))

	case stepItems:
		b.WriteString(labelStyle.Render("Itens de coleta") + "\n\n")
		titles := make([]string, len(m.items))
		for i, item := range m.items {
			titles[i] = item.Title
		}
		b.WriteString(renderChoices(titles, m.cursor, func(i int) bool {
			return m.wizard.Draft.IsSelected(m.items[i].ID)
		}))
		b.WriteString(mutedStyle.Render("\nespaço marcar • enter cadastrar • esc voltar"))

	case stepSubmitting:
		b.WriteString(mutedStyle.Render("enviando cadastro..."))

	case stepDone:
		b.WriteString(successStyle.Render(fmt.Sprintf("✔ Cadastro concluído! Ponto #%d criado.", m.created.ID)))

	case stepFailed:
		b.WriteString(errorStyle.Render("Não foi possível cadastrar o ponto."))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("pressione qualquer tecla para sair"))
	}

	if m.err != nil && m.step != stepFailed {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
	}

	return boxStyle.Render(b.String())
}

func renderChoices(options []string, cursor int, checked func(int) bool) string {
	var b strings.Builder
	for i, option := range options {
		mark := ""
		if checked != nil {
			mark = "[ ] "
			if checked(i) {
				mark = "[x] "
			}
		}

		line := "  " + mark + option
		if i == cursor {
			line = selectedStyle.Render("▸ " + mark + option)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
