package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/worthit/worthit/internal/common"
	"github.com/worthit/worthit/internal/engine"
	"github.com/worthit/worthit/internal/ledger"
	"github.com/worthit/worthit/internal/tui"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Interactive budget overview",
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

			streak, err := store.GetStreak(ctx)
			if err != nil {
				return err
			}

			withinToday := engine.NewStreakTracker().IsWithinDailyBudget(snapshot)
			return tui.Run(tui.NewDashboard(budget, streak, snapshot, withinToday))
		},
	}
}
