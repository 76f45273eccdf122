// Package tui is the terminal rendition of the SENTINELA dashboard.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sentinela/gateway/internal/graphview"
	"github.com/sentinela/gateway/internal/models"
	"github.com/sentinela/gateway/internal/resource"
	"github.com/sentinela/gateway/internal/service"
	"github.com/sentinela/gateway/internal/session"
)

// Dashboard panel indices.
const (
	panelDaily = iota
	panelHourly
	panelTop
	panelAlerts
	panelNetwork
	panelCount
)

// Loader is the subset of the dashboard service the terminal view needs.
type Loader interface {
	Summary(ctx context.Context, s session.Session) service.Summary
	Network(ctx context.Context, s session.Session, hovered string) resource.Resource[service.NetworkPayload]
	DrillDown(ctx context.Context, s session.Session, node models.GraphNode) (service.DrillReport, error)
}

type Model struct {
	ctx     context.Context
	loader  Loader
	session session.Session

	activePanel int
	width       int
	height      int

	loading  bool
	summary  service.Summary
	network  resource.Resource[service.NetworkPayload]
	view     *graphview.View[service.DrillReport]
	contacts []models.GraphNode
	cursor   int
}

// dataLoadedMsg carries one refresh of the dashboard back to the model.
type dataLoadedMsg struct {
	token   resource.Token
	summary service.Summary
	network resource.Resource[service.NetworkPayload]
}

// drillDoneMsg carries a contact drill-down outcome, tagged with the
// generation it was started under.
type drillDoneMsg struct {
	token  resource.Token
	report service.DrillReport
	err    error
}

func New(ctx context.Context, loader Loader, s session.Session) Model {
	return Model{
		ctx:         ctx,
		loader:      loader,
		session:     s,
		activePanel: panelDaily,
		loading:     true,
		view:        &graphview.View[service.DrillReport]{},
	}
}

func (m Model) Init() tea.Cmd {
	return m.load()
}

func (m Model) load() tea.Cmd {
	tok, ctx := m.view.StartGraph(m.ctx)
	loader, s := m.loader, m.session
	return func() tea.Msg {
		return dataLoadedMsg{
			token:   tok,
			summary: loader.Summary(ctx, s),
			network: loader.Network(ctx, s, ""),
		}
	}
}

func (m Model) drill(sel graphview.Selection) tea.Cmd {
	loader, s := m.loader, m.session
	return func() tea.Msg {
		report, err := loader.DrillDown(sel.Ctx, s, sel.Node)
		return drillDoneMsg{token: sel.Token, report: report, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.activePanel = (m.activePanel + 1) % panelCount
			return m, nil
		case "shift+tab":
			m.activePanel = (m.activePanel - 1 + panelCount) % panelCount
			return m, nil
		case "r":
			m.loading = true
			m.contacts = nil
			m.cursor = 0
			return m, m.load()
		case "up", "k":
			return m.moveCursor(-1), nil
		case "down", "j":
			return m.moveCursor(1), nil
		case "enter":
			return m.selectContact()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case dataLoadedMsg:
		var current bool
		if msg.network.IsReady() {
			current = m.view.GraphLoaded(msg.token, msg.network.Data.Graph)
		} else {
			current = m.view.GraphFailed(msg.token, msg.network.Err)
		}
		if !current {
			return m, nil
		}
		m.loading = false
		m.summary = msg.summary
		m.network = msg.network
		m.contacts = nil
		if msg.network.IsReady() {
			m.contacts = graphview.Contacts(msg.network.Data.Graph)
		}
		m.cursor = 0
		m.hoverCursor()
		return m, nil

	case drillDoneMsg:
		if msg.err != nil {
			m.view.SummaryFailed(msg.token, msg.err)
		} else {
			m.view.SummaryLoaded(msg.token, msg.report)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) moveCursor(delta int) Model {
	if m.activePanel != panelNetwork || len(m.contacts) == 0 {
		return m
	}
	m.cursor = (m.cursor + delta + len(m.contacts)) % len(m.contacts)
	m.hoverCursor()
	return m
}

func (m Model) hoverCursor() {
	if m.cursor < len(m.contacts) {
		m.view.Hover(m.contacts[m.cursor].ID)
		return
	}
	m.view.Unhover()
}

func (m Model) selectContact() (tea.Model, tea.Cmd) {
	if m.activePanel != panelNetwork || m.cursor >= len(m.contacts) {
		return m, nil
	}
	sel, err := m.view.Click(m.ctx, m.contacts[m.cursor].ID)
	if err != nil || !sel.Drill {
		return m, nil
	}
	return m, m.drill(sel)
}
