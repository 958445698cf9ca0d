package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/worthit/worthit/internal/cli"
	"github.com/worthit/worthit/internal/common"
	"github.com/worthit/worthit/internal/ledger"
	"github.com/worthit/worthit/internal/model"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage this month's budget",
	}

	cmd.AddCommand(budgetSetCmd())
	cmd.AddCommand(budgetShowCmd())

	return cmd
}

func budgetSetCmd() *cobra.Command {
	var categoryFlags []string

	cmd := &cobra.Command{
		Use:   "set <monthly-total>",
		Short: "Set the monthly budget and category allocations",
		Long: `Set the budget for the current month. Category allocations are given
as repeated --category flags, e.g.:

  worthit budget set 2000 --category Food=400 --category Transport=150`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			monthly, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid monthly total %q: %w", args[0], err)
			}

			categoryBudgets := make(map[model.Category]float64)
			for _, flag := range categoryFlags {
				name, amountStr, found := strings.Cut(flag, "=")
				if !found {
					return fmt.Errorf("invalid category allocation %q, want Name=amount", flag)
				}
				category, err := model.ParseCategory(name)
				if err != nil {
					return err
				}
				amount, err := strconv.ParseFloat(amountStr, 64)
				if err != nil {
					return fmt.Errorf("invalid amount in %q: %w", flag, err)
				}
				categoryBudgets[category] = amount
			}

			now := time.Now()
			budget := &model.Budget{
				MonthlyBudget:   monthly,
				CategoryBudgets: categoryBudgets,
				CurrentMonth:    now.Month(),
				CurrentYear:     now.Year(),
			}
			if err := budget.Validate(); err != nil {
				return err
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.SaveBudget(ctx, budget); err != nil {
				return fmt.Errorf("failed to save budget: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Budget for %s %d set to %.2f.", now.Month(), now.Year(), monthly)))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&categoryFlags, "category", nil, "category allocation as Name=amount (repeatable)")

	return cmd
}

func budgetShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show this month's budget and utilization",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			now := time.Now()
			budget, err := store.GetBudget(ctx, now.Month(), now.Year())
			if err != nil {
				return common.NewUserError("no budget set for this month; run 'worthit budget set'", err)
			}

			snapshot, err := ledger.NewResolver(store).Snapshot(ctx, now)
			if err != nil {
				return err
			}

			fmt.Print(cli.RenderBudget(budget, snapshot))
			return nil
		},
	}
}
