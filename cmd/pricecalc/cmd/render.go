package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rezonia/price-engine/internal/price"
)

var (
	accent = lipgloss.Color("#D97706")
	dim    = lipgloss.Color("#6B7280")
	mixed  = lipgloss.Color("#F59E0B")

	priceStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2)

	labelStyle = lipgloss.NewStyle().Foreground(dim).Width(10)
	mixedStyle = lipgloss.NewStyle().Foreground(mixed)
)

// renderPrice draws a price card for terminals
func renderPrice(p price.Price) string {
	rate := fmt.Sprintf("%d%%", p.TaxRate())
	if !p.HasTaxRate() {
		rate = mixedStyle.Render(rate + " (derived)")
	}

	rows := []string{
		priceStyle.Render(p.String()),
		"",
		labelStyle.Render("nett") + p.Nett().StringFixed(2),
		labelStyle.Render("gross") + p.Gross().StringFixed(2),
		labelStyle.Render("tax") + rate,
		labelStyle.Render("tax diff") + p.TaxDiff().StringFixed(2),
	}
	return cardStyle.Render(strings.Join(rows, "\n"))
}
