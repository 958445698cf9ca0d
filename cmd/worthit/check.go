package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/worthit/worthit/internal/cli"
	"github.com/worthit/worthit/internal/detect"
	"github.com/worthit/worthit/internal/engine"
	"github.com/worthit/worthit/internal/ledger"
	"github.com/worthit/worthit/internal/model"
)

func checkCmd() *cobra.Command {
	var (
		categoryOverride   string
		confidenceOverride float64
		commit             bool
	)

	cmd := &cobra.Command{
		Use:   "check <label> <price>",
		Short: "Evaluate whether a purchase is affordable",
		Long: `Evaluate a candidate purchase against this month's budget and your
current streak, and print the decision with ranked recommendations.

The category is guessed from the label; use --category to override.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			price, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid price %q: %w", args[1], err)
			}
			if price < 0 {
				return fmt.Errorf("price must be non-negative, got %.2f", price)
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			item := detect.NewDetector().Detect(args[0], price)
			if categoryOverride != "" {
				category, err := model.ParseCategory(categoryOverride)
				if err != nil {
					return err
				}
				item.Category = category
				item.Confidence = 1.0
			}
			if cmd.Flags().Changed("confidence") {
				item.Confidence = confidenceOverride
			}

			now := time.Now()
			resolver := ledger.NewResolver(store)
			snapshot, err := resolver.Snapshot(ctx, now)
			if err != nil {
				return err
			}

			streak, err := store.GetStreak(ctx)
			if err != nil {
				return err
			}

			facade := engine.New()
			result, err := facade.Check(item, snapshot, *streak)
			if err != nil {
				return err
			}

			fmt.Println(cli.RenderResult(result))

			if !commit {
				return nil
			}

			preview := result.TransactionPreview
			txn := model.Transaction{
				Date:     now,
				Amount:   preview.Amount,
				Category: preview.Category,
				Note:     preview.SuggestedNote,
			}
			if err := store.SaveTransaction(ctx, &txn); err != nil {
				return fmt.Errorf("failed to record transaction: %w", err)
			}

			// Re-resolve so the streak snapshot sees the committed spend.
			snapshot, err = resolver.Snapshot(ctx, now)
			if err != nil {
				return err
			}
			updated := facade.Tracker().Advance(*streak, now, snapshot)
			if err := store.SaveStreak(ctx, &updated); err != nil {
				return fmt.Errorf("failed to save streak: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Recorded %.2f under %s.", txn.Amount, txn.Category)))
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryOverride, "category", "", "override the detected category")
	cmd.Flags().Float64Var(&confidenceOverride, "confidence", 0, "override the detection confidence (0-1)")
	cmd.Flags().BoolVar(&commit, "commit", false, "record the purchase as a transaction if evaluated")

	return cmd
}
