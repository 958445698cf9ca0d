package cli

import (
	"fmt"
	"strings"

	"github.com/worthit/worthit/internal/model"
)

// RenderResult renders an affordability result as a styled card.
func RenderResult(result *model.AffordabilityResult) string {
	var b strings.Builder

	verdict := ErrorStyle.Render("✗ Not affordable")
	if result.CanAfford {
		verdict = SuccessStyle.Render("✓ Affordable")
	}

	b.WriteString(fmt.Sprintf("%s  %s %s\n", verdict,
		BoldStyle.Render(fmt.Sprintf("%.2f", result.EstimatedPrice)),
		SubtleStyle.Render(fmt.Sprintf("(%s, typical %.0f–%.0f)",
			result.Category, result.PriceRange.Min, result.PriceRange.Max))))

	b.WriteString(result.Reasoning + "\n\n")

	impact := result.BudgetImpact
	util := impact.BudgetUtilization
	b.WriteString(fmt.Sprintf("  Monthly remaining after:   %.2f\n", impact.RemainingMonthlyBudget))
	b.WriteString(fmt.Sprintf("  Category remaining after:  %.2f\n", impact.CategoryBudgetRemaining))
	b.WriteString(fmt.Sprintf("  Daily budget impact:       %.2f\n", impact.DailyBudgetImpact))
	b.WriteString(fmt.Sprintf("  Monthly usage:             %.0f%% (%s)\n",
		util.MonthlyUsagePercentage*100, renderUtilization(util.Status)))
	b.WriteString(fmt.Sprintf("  Projected month-end:       %.2f", util.ProjectedMonthlySpending))
	if util.ProjectedOverage > 0 {
		b.WriteString(WarningStyle.Render(fmt.Sprintf("  (over by %.2f)", util.ProjectedOverage)))
	}
	b.WriteString(SubtleStyle.Render(fmt.Sprintf("  [confidence %.0f%%]\n", util.ProjectionConfidence*100)))
	b.WriteString(fmt.Sprintf("  Streak risk:               %s\n", renderRisk(impact.StreakRisk)))

	if len(result.Recommendations) > 0 {
		b.WriteString("\n" + TitleStyle.Render("Recommendations") + "\n")
		for _, rec := range result.Recommendations {
			b.WriteString(fmt.Sprintf("  %s %s — %s\n",
				renderPriority(rec.Priority), BoldStyle.Render(rec.Title), rec.Detail))
		}
	}

	if hints := result.TransactionPreview.AdjustmentHints; len(hints) > 0 {
		b.WriteString("\n")
		for _, hint := range hints {
			b.WriteString(SubtleStyle.Render("  · "+hint) + "\n")
		}
	}

	return BoxStyle.Render(b.String())
}

// RenderStreak renders the streak status line.
func RenderStreak(streak *model.SpendingStreak, withinToday bool) string {
	status := ErrorStyle.Render("over today's allowance")
	if withinToday {
		status = SuccessStyle.Render("within today's allowance")
	}

	return fmt.Sprintf("%s current streak: %s days (longest %d) — %s",
		TitleStyle.Render("Streak"),
		BoldStyle.Render(fmt.Sprintf("%d", streak.CurrentStreak)),
		streak.LongestStreak,
		status)
}

// RenderBudget renders the per-category utilization table.
func RenderBudget(budget *model.Budget, snapshot model.LedgerSnapshot) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(fmt.Sprintf("Budget %s %d", budget.CurrentMonth, budget.CurrentYear)) + "\n")
	b.WriteString(fmt.Sprintf("  Monthly: %.2f spent of %.2f (%.2f remaining)\n",
		snapshot.CurrentMonthlySpending, budget.MonthlyBudget, snapshot.MonthlyBudgetRemaining))

	for _, cat := range model.AllCategories() {
		allocated := budget.CategoryBudget(cat)
		if allocated == 0 {
			continue
		}
		remaining := snapshot.CategoryBudgetRemaining(cat)
		line := fmt.Sprintf("  %-14s %8.2f of %8.2f remaining", cat, remaining, allocated)
		if remaining < 0 {
			line = ErrorStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	return b.String()
}

func renderRisk(risk model.StreakRisk) string {
	switch risk {
	case model.StreakRiskHigh:
		return ErrorStyle.Render("HIGH")
	case model.StreakRiskMedium:
		return WarningStyle.Render("MEDIUM")
	case model.StreakRiskLow:
		return WarningStyle.Render("LOW")
	default:
		return SuccessStyle.Render("NONE")
	}
}

func renderUtilization(status model.UtilizationStatus) string {
	switch status {
	case model.UtilizationOver:
		return ErrorStyle.Render("over budget")
	case model.UtilizationNearLimit:
		return WarningStyle.Render("near limit")
	case model.UtilizationOnTrack:
		return SuccessStyle.Render("on track")
	default:
		return SuccessStyle.Render("under-utilized")
	}
}

func renderPriority(p model.Priority) string {
	switch p {
	case model.PriorityCritical, model.PriorityHigh:
		return ErrorStyle.Render("[" + string(p) + "]")
	case model.PriorityMedium:
		return WarningStyle.Render("[" + string(p) + "]")
	default:
		return SubtleStyle.Render("[" + string(p) + "]")
	}
}
