package discover

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rafabene/ecoleta/pkg/client"
)

type screen int

const (
	screenLoading screen = iota
	screenBlocked
	screenMap
	screenDetail
)

type pane int

const (
	paneItems pane = iota
	panePoints
)

// Messages
type startedMsg struct {
	err error
}

type pointsLoadedMsg struct {
	points []client.Point
	err    error
}

type detailLoadedMsg struct {
	detail *client.PointDetail
	err    error
}

// Model é a tela de descoberta no terminal
type Model struct {
	ctx       context.Context
	discovery *Discovery

	screen     screen
	pane       pane
	itemCursor int
	ptCursor   int
	route      Route
	detail     *client.PointDetail
	err        error
}

// NewModel cria a tela sobre a descoberta
func NewModel(ctx context.Context, discovery *Discovery) Model {
	return Model{ctx: ctx, discovery: discovery}
}

// Init pede a localização e carrega os dados
func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		return startedMsg{err: m.discovery.Start(m.ctx)}
	}
}

func (m Model) toggleCmd(id uint) tea.Cmd {
	return func() tea.Msg {
		points, err := m.discovery.ToggleItem(m.ctx, id)
		return pointsLoadedMsg{points: points, err: err}
	}
}

func (m Model) detailCmd(route Route) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.discovery.Detail(m.ctx, route)
		return detailLoadedMsg{detail: detail, err: err}
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		if errors.Is(msg.err, ErrPermissionDenied) {
			m.screen = screenBlocked
			return m, nil
		}
		m.screen, m.err = screenMap, msg.err
		return m, nil

	case pointsLoadedMsg:
		m.err = msg.err
		m.ptCursor = 0
		return m, nil

	case detailLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.screen, m.detail, m.err = screenDetail, msg.detail, nil
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenDetail:
		if msg.String() == "esc" || msg.String() == "backspace" {
			m.screen, m.detail = screenMap, nil
		}
		return m, nil

	case screenMap:
		items := m.discovery.Items()
		points := m.discovery.Points()

		switch msg.String() {
		case "tab":
			if m.pane == paneItems {
				m.pane = panePoints
			} else {
				m.pane = paneItems
			}
		case "up", "k":
			m.move(-1, len(items), len(points))
		case "down", "j":
			m.move(1, len(items), len(points))
		case " ", "x":
			if m.pane == paneItems && len(items) > 0 {
				return m, m.toggleCmd(items[m.itemCursor].ID)
			}
		case "enter":
			if m.pane == panePoints && len(points) > 0 {
				m.route = m.discovery.Select(points[m.ptCursor].ID)
				return m, m.detailCmd(m.route)
			}
		}
	}

	return m, nil
}

func (m *Model) move(delta, items, points int) {
	if m.pane == paneItems && items > 0 {
		m.itemCursor = (m.itemCursor + delta + items) % items
	}
	if m.pane == panePoints && points > 0 {
		m.ptCursor = (m.ptCursor + delta + points) % points
	}
}

// View renders the screen
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Ecoleta - pontos de coleta"))
	b.WriteString("\n")

	switch m.screen {
	case screenLoading:
		b.WriteString(mutedStyle.Render("obtendo localização..."))

	case screenBlocked:
		b.WriteString(errorStyle.Render("Precisamos de sua permissão para obter a localização."))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("q sair"))

	case screenMap:
		origin := m.discovery.Origin()
		b.WriteString(mutedStyle.Render(fmt.Sprintf("origem do mapa: %.4f, %.4f", origin.Latitude, origin.Longitude)))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.itemsView(), "   ", m.pointsView()))
		b.WriteString(mutedStyle.Render("\n\ntab alternar • espaço filtrar item • enter detalhe • q sair"))

	case screenDetail:
		b.WriteString(m.detailView())
		b.WriteString(mutedStyle.Render("\n\nesc voltar • q sair"))
	}

	if m.err != nil {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
	}

	return boxStyle.Render(b.String())
}

func (m Model) itemsView() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Itens") + "\n")
	for i, item := range m.discovery.Items() {
		mark := "[ ] "
		if m.discovery.IsSelected(item.ID) {
			mark = "[x] "
		}
		line := "  " + mark + item.Title
		if m.pane == paneItems && i == m.itemCursor {
			line = selectedStyle.Render("▸ " + mark + item.Title)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) pointsView() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Pontos") + "\n")

	points := m.discovery.Points()
	if len(points) == 0 {
		b.WriteString(mutedStyle.Render("  nenhum ponto para os itens selecionados") + "\n")
	}
	for i, p := range points {
		line := fmt.Sprintf("%s (%.4f, %.4f)", p.Name, p.Latitude, p.Longitude)
		if m.pane == panePoints && i == m.ptCursor {
			b.WriteString(selectedStyle.Render("▸ "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	return b.String()
}

func (m Model) detailView() string {
	p := m.detail.Point

	var b strings.Builder
	b.WriteString(labelStyle.Render(p.Name) + "\n")
	b.WriteString(successStyle.Render(strings.Join(m.detail.ItemTitles(), ", ")) + "\n\n")
	b.WriteString(labelStyle.Render("Endereço") + "\n")
	b.WriteString(p.City + ", " + p.UF + "\n\n")
	b.WriteString(labelStyle.Render("Contato") + "\n")
	b.WriteString("whatsapp: " + p.Whatsapp + "\n")
	b.WriteString("e-mail: " + p.Email + "\n")
	b.WriteString(mutedStyle.Render(p.ImageURL))
	return b.String()
}
