package tui

import (
	"fmt"
	"strings"

	"food-dashboard/internal/dashboard"
	"food-dashboard/internal/model"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#C72828")).
			Padding(0, 1)

	itemStyle     = lipgloss.NewStyle().PaddingLeft(2)
	selectedStyle = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("205")).Bold(true)
	descStyle     = lipgloss.NewStyle().PaddingLeft(4).Foreground(lipgloss.Color("241"))
	priceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#39B100"))

	availableBadge   = lipgloss.NewStyle().Foreground(lipgloss.Color("#39B100")).Render("● available")
	unavailableBadge = lipgloss.NewStyle().Foreground(lipgloss.Color("#C72828")).Render("○ unavailable")

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("205")).
			Padding(1, 2).
			MarginTop(1)

	labelStyle  = lipgloss.NewStyle().Width(12).Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
	helpStyle   = lipgloss.NewStyle().PaddingLeft(2).MarginTop(1)
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("GoFood dashboard"))
	b.WriteString("\n\n")

	if m.state.Modal != dashboard.ModalClosed {
		b.WriteString(m.formView())
	} else {
		b.WriteString(m.listView())
	}

	b.WriteString("\n")
	b.WriteString(m.statusView())

	if m.state.Modal != dashboard.ModalClosed {
		b.WriteString(helpStyle.Render(m.help.View(formKeys)))
	} else {
		b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	}
	return b.String()
}

func (m Model) listView() string {
	if len(m.state.Items) == 0 {
		if m.Loading() {
			return itemStyle.Render("Loading foods...")
		}
		return itemStyle.Render("No foods yet. Press a to add one.")
	}

	var b strings.Builder
	for i, food := range m.state.Items {
		b.WriteString(m.itemView(food, i == m.cursor))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) itemView(food model.Food, selected bool) string {
	badge := unavailableBadge
	if food.Available {
		badge = availableBadge
	}
	line := fmt.Sprintf("%s  %s  %s", food.Name, priceStyle.Render(formatPrice(food.Price)), badge)

	var row string
	if selected {
		row = selectedStyle.Render("> " + line)
	} else {
		row = itemStyle.Render(line)
	}
	if food.Description != "" {
		row += "\n" + descStyle.Render(food.Description)
	}
	return row
}

func (m Model) formView() string {
	title := "Add food"
	if m.state.EditModalOpen() {
		title = "Edit food"
		if m.state.Editing != nil {
			title += " " + m.state.Editing.Name
		}
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(title))
	b.WriteString("\n\n")
	for i, in := range m.form.inputs {
		b.WriteString(labelStyle.Render(fieldLabels[i]))
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	if m.state.EditModalOpen() {
		badge := unavailableBadge
		if m.form.available {
			badge = availableBadge
		}
		b.WriteString(labelStyle.Render("Available"))
		b.WriteString(badge)
		b.WriteString("\n")
	}
	if m.form.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.form.err))
	}
	return modalStyle.Render(b.String())
}

func (m Model) statusView() string {
	switch {
	case m.Loading():
		return statusStyle.Render(m.spinner.View() + " working...")
	case m.err != nil:
		return statusStyle.Render(errorStyle.Render("Error: " + m.err.Error()))
	case m.status != "":
		return statusStyle.Render(m.status)
	}
	return ""
}

func formatPrice(price float64) string {
	return fmt.Sprintf("R$ %.2f", price)
}
