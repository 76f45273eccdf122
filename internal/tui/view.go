package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sentinela/gateway/internal/graphview"
	"github.com/sentinela/gateway/internal/models"
	"github.com/sentinela/gateway/internal/resource"
	"github.com/sentinela/gateway/internal/service"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("24")).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	activePanelStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("39")).
				Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	badgeStyles = map[string]lipgloss.Style{
		"error":   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		"warning": lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		"info":    lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
		"light":   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	}

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

const (
	maxBarWidth  = 30
	maxDrillRows = 15
)

func (m Model) View() string {
	if m.width == 0 {
		return "Cargando..."
	}

	title := titleStyle.Render(fmt.Sprintf(" SENTINELA · PIN %s ", pinLabel(m.session.PIN)))
	help := helpStyle.Render("tab: panel | ↑/↓: contacto | enter: resumen | r: actualizar | q: salir")

	if m.loading {
		return fmt.Sprintf("%s\n\n  Cargando datos...\n\n%s", title, help)
	}

	panels := []string{
		m.renderDaily(),
		m.renderHourly(),
		m.renderTop(),
		m.renderAlerts(),
		m.renderNetwork(),
	}

	available := m.width - 2
	var body string
	if available > 120 {
		colWidth := available/2 - 4
		for i := range panels {
			panels[i] = m.applyPanelStyle(i, panels[i], colWidth)
		}
		left := lipgloss.JoinVertical(lipgloss.Left, panels[panelDaily], panels[panelHourly], panels[panelTop])
		right := lipgloss.JoinVertical(lipgloss.Left, panels[panelAlerts], panels[panelNetwork])
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	} else {
		width := available - 4
		if width < 20 {
			width = 20
		}
		for i := range panels {
			panels[i] = m.applyPanelStyle(i, panels[i], width)
		}
		body = lipgloss.JoinVertical(lipgloss.Left, panels...)
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s", title, body, help)
}

func pinLabel(pin string) string {
	if pin == "" {
		return "sin seleccionar"
	}
	return pin
}

func (m Model) applyPanelStyle(panel int, content string, width int) string {
	style := panelStyle
	if m.activePanel == panel {
		style = activePanelStyle
	}
	return style.Width(width).Render(content)
}

// renderResource renders the loading, failed and empty branches of r and
// delegates the ready branch to body.
func renderResource[T any](title string, r resource.Resource[T], empty string, body func(T) string) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")
	switch {
	case r.IsFailed():
		b.WriteString(errorStyle.Render("  " + r.Message()))
	case r.IsReady() && r.Empty:
		b.WriteString(dimStyle.Render("  " + empty))
	case r.IsReady():
		b.WriteString(body(r.Data))
	default:
		b.WriteString(dimStyle.Render("  Cargando..."))
	}
	return b.String()
}

func (m Model) renderDaily() string {
	return renderResource("Llamadas por día", m.summary.Daily, "No hay datos de llamadas para este PIN.", func(p service.DailyPayload) string {
		var b strings.Builder
		fmt.Fprintf(&b, "  Total: %d\n", p.Summary.Total)
		fmt.Fprintf(&b, "  Promedio diario: %.1f\n", p.Summary.Average)
		if p.Summary.Peak != nil {
			fmt.Fprintf(&b, "  Pico: %s (%d)\n", p.Summary.Peak.Fecha, p.Summary.Peak.Llamadas)
		}
		fmt.Fprintf(&b, "  Días sin llamadas: %d", p.Summary.ZeroDays)
		return b.String()
	})
}

func (m Model) renderHourly() string {
	return renderResource("Llamadas por hora", m.summary.Hourly, "No hay llamadas registradas.", func(p service.HourlyPayload) string {
		peak := 0
		for _, n := range p.Buckets {
			peak = max(peak, n)
		}
		var b strings.Builder
		for h, n := range p.Buckets {
			if n == 0 {
				continue
			}
			width := max(1, n*maxBarWidth/peak)
			fmt.Fprintf(&b, "  %5s %s %d\n", p.Labels[h], barStyle.Render(strings.Repeat("█", width)), n)
		}
		return strings.TrimRight(b.String(), "\n")
	})
}

func (m Model) renderTop() string {
	return renderResource("Números más marcados", m.summary.TopNumbers, "No hay números marcados.", func(top []service.PhoneCount) string {
		var b strings.Builder
		for i, pc := range top {
			fmt.Fprintf(&b, "  %2d. %-16s %d\n", i+1, pc.Telefono, pc.Count)
		}
		return strings.TrimRight(b.String(), "\n")
	})
}

func (m Model) renderAlerts() string {
	return renderResource("Alertas", m.summary.Alerts, "No hay alertas recientes.", func(alerts []service.AlertView) string {
		var b strings.Builder
		for _, a := range alerts {
			badge := badgeStyles[a.Badge].Render(fmt.Sprintf("[%s]", strings.ToUpper(string(a.Severity))))
			fmt.Fprintf(&b, "  %s %s %s\n", badge, a.Message, dimStyle.Render(a.Timestamp))
		}
		fmt.Fprintf(&b, "\n  Total: %d alerta(s)", len(alerts))
		return b.String()
	})
}

func (m Model) renderNetwork() string {
	return renderResource("Red de vínculos", m.network, "No hay información de red para este PIN.", func(p service.NetworkPayload) string {
		var b strings.Builder
		if len(m.contacts) == 0 {
			b.WriteString(dimStyle.Render("  Sin contactos."))
		}
		hovered := m.view.Hovered()
		neighbors := graphview.Neighbors(p.Graph, hovered)
		for i, c := range m.contacts {
			prefix := "   "
			label := c.Label
			if i == m.cursor {
				prefix = cursorStyle.Render(" ▸ ")
				label = cursorStyle.Render(label)
			}
			fmt.Fprintf(&b, "%s%s %s\n", prefix, label, dimStyle.Render(fmt.Sprintf("(%d números)", len(c.PhoneList()))))
		}
		if hovered != "" && len(neighbors) > 0 {
			fmt.Fprintf(&b, "  %s\n", dimStyle.Render(fmt.Sprintf("%d vínculos directos", len(neighbors))))
		}
		if !p.Issues.OK() {
			fmt.Fprintf(&b, "  %s\n", dimStyle.Render(fmt.Sprintf("Red inconsistente: %d ids duplicados, %d vínculos colgantes",
				len(p.Issues.DuplicateIDs), len(p.Issues.DanglingLinks))))
		}
		b.WriteString(m.renderSelection())
		return strings.TrimRight(b.String(), "\n")
	})
}

func (m Model) renderSelection() string {
	node, ident, ok := m.view.Selected()
	if !ok {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n")
	if node.Type != models.NodeContact {
		b.WriteString("  " + ident)
		return b.String()
	}
	b.WriteString(headerStyle.Render("  Resumen de llamadas: " + node.Label))
	b.WriteString("\n")
	b.WriteString(renderDrill(m.view.Summary()))
	return b.String()
}

func renderDrill(r resource.Resource[service.DrillReport]) string {
	switch {
	case r.IsFailed():
		return errorStyle.Render("  " + r.Message())
	case !r.IsReady():
		return dimStyle.Render("  Cargando...")
	}
	report := r.Data
	var b strings.Builder
	if len(report.Calls) == 0 {
		b.WriteString(dimStyle.Render("  No hay llamadas para este contacto."))
		b.WriteString("\n")
	}
	for i, c := range report.Calls {
		if i == maxDrillRows {
			fmt.Fprintf(&b, "  %s\n", dimStyle.Render(fmt.Sprintf("... %d más", len(report.Calls)-maxDrillRows)))
			break
		}
		fmt.Fprintf(&b, "  %-10s %-5s %-14s %s\n", c.Fecha, c.Hora, c.Number(), truncate(c.Resumen, 40))
	}
	if report.Partial {
		phones := make([]string, 0, len(report.Failed))
		for _, f := range report.Failed {
			phones = append(phones, f.Phone)
		}
		b.WriteString(dimStyle.Render("  Sin respuesta para: " + strings.Join(phones, ", ")))
	}
	return strings.TrimRight(b.String(), "\n")
}

func truncate(s string, n int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n-1]) + "…"
}
