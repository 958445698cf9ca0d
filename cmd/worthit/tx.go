package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/worthit/worthit/internal/cli"
	"github.com/worthit/worthit/internal/engine"
	"github.com/worthit/worthit/internal/ledger"
	"github.com/worthit/worthit/internal/model"
	"github.com/worthit/worthit/internal/service"
)

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Manage recorded transactions",
	}

	cmd.AddCommand(txAddCmd())
	cmd.AddCommand(txListCmd())
	cmd.AddCommand(txDeleteCmd())

	return cmd
}

func txAddCmd() *cobra.Command {
	var (
		income bool
		note   string
	)

	cmd := &cobra.Command{
		Use:   "add <category> <amount>",
		Short: "Record a transaction",
		Long: `Record an expense against a category, or an income entry with
--income (the first argument is then the income source).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}

			now := time.Now()
			txn := model.Transaction{
				Date:   now,
				Amount: amount,
				Note:   note,
			}
			if income {
				txn.IsIncome = true
				txn.IncomeCategory = args[0]
			} else {
				category, err := model.ParseCategory(args[0])
				if err != nil {
					return err
				}
				txn.Category = category
			}
			if err := txn.Validate(); err != nil {
				return err
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.SaveTransaction(ctx, &txn); err != nil {
				return fmt.Errorf("failed to record transaction: %w", err)
			}

			// Committing spend advances the streak machine.
			if snapshot, err := ledger.NewResolver(store).Snapshot(ctx, now); err == nil {
				if streak, err := store.GetStreak(ctx); err == nil {
					updated := engine.NewStreakTracker().Advance(*streak, now, snapshot)
					if err := store.SaveStreak(ctx, &updated); err != nil {
						return fmt.Errorf("failed to save streak: %w", err)
					}
				}
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Recorded %.2f (%s).", amount, args[0])))
			return nil
		},
	}

	cmd.Flags().BoolVar(&income, "income", false, "record an income entry instead of an expense")
	cmd.Flags().StringVar(&note, "note", "", "free-form note")

	return cmd
}

func txListCmd() *cobra.Command {
	var (
		categoryFilter string
		limit          int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List this month's transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			now := time.Now()
			start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
			end := start.AddDate(0, 1, 0)
			filter := service.TransactionFilter{StartDate: &start, EndDate: &end, Limit: limit}

			if categoryFilter != "" {
				category, err := model.ParseCategory(categoryFilter)
				if err != nil {
					return err
				}
				filter.Category = &category
			}

			txns, err := store.GetTransactions(ctx, filter)
			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}

			if len(txns) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No transactions recorded this month."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintln(w, "DATE\tAMOUNT\tCATEGORY\tNOTE\tID")
			for _, txn := range txns {
				label := string(txn.Category)
				if txn.IsIncome {
					label = "income:" + txn.IncomeCategory
				}
				fmt.Fprintf(w, "%s\t%.2f\t%s\t%s\t%s\n",
					txn.Date.Format("2006-01-02"), txn.Amount, label, txn.Note, txn.ID[:12])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryFilter, "category", "", "only show one category")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum rows to show")

	return cmd
}

func txDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Long:  `Delete a transaction by ID. Transactions are immutable; to edit one, delete it and add it again.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteTransaction(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete transaction: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render("Deleted."))
			return nil
		},
	}
}
