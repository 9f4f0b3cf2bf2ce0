package tui

import (
	"fmt"
	"strings"

	"recipfit/internal/fit"
	"recipfit/internal/recipient"
)

func (m *Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	res := m.engine.Result()

	var b strings.Builder

	// Everything above the cell has a fixed height so it starts at cellTop.
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.editor.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderCell(res))
	b.WriteString("\n")

	if tip := m.renderTooltip(res); tip != "" {
		b.WriteString(tip)
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatus(res))
	b.WriteString("\n")
	b.WriteString(m.meter.ViewAs(shownRatio(res)))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Events"))
	b.WriteString("\n")
	b.WriteString(m.renderEvents())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m *Model) renderHeader() string {
	return headerStyle.Render("RECIPFIT") + subtitleStyle.Render("fit recipients into the cell")
}

func (m *Model) renderCell(res fit.Result) string {
	cols := m.cellColumns()
	style := cellStyle
	if m.focus == focusCell {
		style = focusedCellStyle
	}
	// A single recipient allowed to overflow is clipped at the cell edge.
	return style.Width(cols + 2).Render(truncate(res.Text, cols))
}

func (m *Model) renderTooltip(res fit.Result) string {
	if !m.hover.Visible() || !res.Truncated() {
		return ""
	}

	hidden := hiddenRecipients(m.engine.Source(), res)
	var b strings.Builder
	b.WriteString(labelStyle.Render(fmt.Sprintf("%d more", res.Hidden)))
	for _, item := range hidden {
		b.WriteString("\n")
		b.WriteString(item.String())
	}
	return tooltipStyle.Render(b.String())
}

func (m *Model) renderStatus(res fit.Result) string {
	var parts []string
	parts = append(parts, fmt.Sprintf("%d of %d shown", len(res.Visible), res.Total()))
	if res.Truncated() {
		parts = append(parts, warningStyle.Render(fmt.Sprintf("+%d hidden", res.Hidden)))
	}

	if m.override > 0 {
		parts = append(parts, fmt.Sprintf("width %d cols (fixed)", m.overrideColumns()))
	} else {
		parts = append(parts, fmt.Sprintf("width %d cols", m.cellColumns()))
	}
	parts = append(parts, "unit "+m.cfg.Unit)
	parts = append(parts, "overflow "+onOff(m.cfg.AllowSingleOverflow))

	return statusIcon(len(res.Visible), res.Hidden) + " " + strings.Join(parts, labelStyle.Render(" · "))
}

func (m *Model) renderEvents() string {
	content := m.events.View()
	if strings.TrimSpace(content) == "" {
		return logBoxStyle.Render(pendingStyle.Render("No events yet"))
	}
	return logBoxStyle.Render(content)
}

// hiddenRecipients returns the suffix of the parsed list that res leaves out.
func hiddenRecipients(source string, res fit.Result) recipient.List {
	items := recipient.Parse(source)
	if len(res.Visible) >= len(items) {
		return recipient.List{}
	}
	return items[len(res.Visible):]
}

func shownRatio(res fit.Result) float64 {
	if res.Total() == 0 {
		return 0
	}
	return float64(len(res.Visible)) / float64(res.Total())
}
