// Package tui renders the sweep run summary for the terminal.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ordersweep/ordersweep/internal/domain"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	dim     = lipgloss.Color("#6B7280")
	success = lipgloss.Color("#22C55E")
	danger  = lipgloss.Color("#EF4444")
	warning = lipgloss.Color("#F59E0B")
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	dimStyle    = lipgloss.NewStyle().Foreground(dim)
	okStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle   = lipgloss.NewStyle().Foreground(danger)
	warnStyle   = lipgloss.NewStyle().Foreground(warning)
	storeStyle  = lipgloss.NewStyle().Bold(true)
)

// RenderRunReport renders a per-store summary of one sweep pass.
func RenderRunReport(report *domain.RunReport) string {
	var b strings.Builder

	title := "Sweep summary"
	if report.DryRun {
		title += " (dry run)"
	}
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("started %s, finished %s",
		report.StartedAt.Format("2006-01-02 15:04:05"),
		report.FinishedAt.Format("2006-01-02 15:04:05"))))
	b.WriteString("\n\n")

	for _, s := range report.Stores {
		b.WriteString(renderStore(s))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s orders updated across %d stores\n",
		okStyle.Render(fmt.Sprintf("%d", report.TotalUpdated())), len(report.Stores)))

	return b.String()
}

func renderStore(s domain.StoreReport) string {
	name := storeStyle.Render(s.Subdomain)
	switch {
	case s.Skipped:
		return fmt.Sprintf("%s  %s", name, failStyle.Render("skipped: missing configuration"))
	case s.FetchFailed:
		return fmt.Sprintf("%s  %s", name, failStyle.Render("fetch failed"))
	}

	parts := []string{
		fmt.Sprintf("fetched %d", s.Fetched),
		okStyle.Render(fmt.Sprintf("updated %d", s.Updated)),
	}
	if s.UpdateFailed > 0 {
		parts = append(parts, failStyle.Render(fmt.Sprintf("update failures %d", s.UpdateFailed)))
	}
	if s.Invalid > 0 {
		parts = append(parts, warnStyle.Render(fmt.Sprintf("invalid %d", s.Invalid)))
	}
	if s.Ineligible > 0 {
		parts = append(parts, dimStyle.Render(fmt.Sprintf("ineligible %d", s.Ineligible)))
	}
	return fmt.Sprintf("%s  %s", name, strings.Join(parts, ", "))
}
