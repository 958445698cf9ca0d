package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/worthit/worthit/internal/cli"
	"github.com/worthit/worthit/internal/engine"
	"github.com/worthit/worthit/internal/ledger"
)

func streakCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "streak",
		Short: "Show the days-within-budget streak",
		Long: `Show the current and longest streak. Accessing the streak advances the
day rollover if this is the first check today.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			now := time.Now()
			snapshot, err := ledger.NewResolver(store).Snapshot(ctx, now)
			if err != nil {
				return err
			}

			streak, err := store.GetStreak(ctx)
			if err != nil {
				return err
			}

			tracker := engine.NewStreakTracker()
			updated := tracker.Advance(*streak, now, snapshot)
			if err := store.SaveStreak(ctx, &updated); err != nil {
				return fmt.Errorf("failed to save streak: %w", err)
			}

			fmt.Println(cli.RenderStreak(&updated, tracker.IsWithinDailyBudget(snapshot)))
			return nil
		},
	}
}
