// Package tui renders the interactive budget dashboard.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/worthit/worthit/internal/cli"
	"github.com/worthit/worthit/internal/model"
)

const barWidth = 40

// Dashboard is the bubbletea model for the budget overview screen.
type Dashboard struct {
	budget      *model.Budget
	streak      *model.SpendingStreak
	snapshot    model.LedgerSnapshot
	monthlyBar  progress.Model
	withinToday bool
	width       int
}

// NewDashboard creates a dashboard over a resolved ledger snapshot.
func NewDashboard(budget *model.Budget, streak *model.SpendingStreak, snapshot model.LedgerSnapshot, withinToday bool) Dashboard {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(barWidth), progress.WithoutPercentage())

	return Dashboard{
		budget:      budget,
		streak:      streak,
		snapshot:    snapshot,
		monthlyBar:  bar,
		withinToday: withinToday,
	}
}

// Init implements tea.Model.
func (d Dashboard) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (d Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return d, tea.Quit
		}
	case tea.WindowSizeMsg:
		d.width = msg.Width
	}
	return d, nil
}

// View implements tea.Model.
func (d Dashboard) View() string {
	var b strings.Builder

	b.WriteString(cli.TitleStyle.Render(fmt.Sprintf("worthit — %s %d", d.budget.CurrentMonth, d.budget.CurrentYear)))
	b.WriteString("\n\n")

	monthlyPct := 0.0
	if d.budget.MonthlyBudget > 0 {
		monthlyPct = d.snapshot.CurrentMonthlySpending / d.budget.MonthlyBudget
	}

	b.WriteString(fmt.Sprintf("Monthly   %s  %.2f / %.2f\n",
		d.monthlyBar.ViewAs(clampPct(monthlyPct)),
		d.snapshot.CurrentMonthlySpending, d.budget.MonthlyBudget))
	b.WriteString("\n")

	for _, cat := range model.AllCategories() {
		allocated := d.budget.CategoryBudget(cat)
		if allocated == 0 {
			continue
		}

		spent := allocated - d.snapshot.CategoryBudgetRemaining(cat)
		pct := spent / allocated

		label := fmt.Sprintf("%-14s", cat)
		if pct > 1 {
			label = cli.ErrorStyle.Render(label)
		}
		b.WriteString(fmt.Sprintf("%s %s  %.2f / %.2f\n",
			label, renderBar(clampPct(pct)), spent, allocated))
	}

	b.WriteString("\n")
	b.WriteString(cli.RenderStreak(d.streak, d.withinToday))
	b.WriteString("\n\n")
	b.WriteString(cli.SubtleStyle.Render(fmt.Sprintf("%d days left this month · q to quit", d.snapshot.DaysRemainingInMonth)))
	b.WriteString("\n")

	return b.String()
}

// renderBar draws a static category bar; per-category bars don't animate,
// so a plain string render beats carrying one progress.Model per row.
func renderBar(pct float64) string {
	filled := int(pct * barWidth)
	if filled > barWidth {
		filled = barWidth
	}

	color := cli.SuccessColor
	switch {
	case pct >= 0.9:
		color = cli.ErrorColor
	case pct >= 0.7:
		color = cli.WarningColor
	}

	style := lipgloss.NewStyle().Foreground(color)
	return style.Render(strings.Repeat("█", filled)) +
		cli.SubtleStyle.Render(strings.Repeat("░", barWidth-filled))
}

func clampPct(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}

// Run starts the dashboard program and blocks until quit.
func Run(d Dashboard) error {
	_, err := tea.NewProgram(d, tea.WithAltScreen()).Run()
	return err
}
