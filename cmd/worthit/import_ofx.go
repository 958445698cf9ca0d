package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/worthit/worthit/internal/cli"
	"github.com/worthit/worthit/internal/ofx"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.ofx>",
		Short: "Import transactions from an OFX/QFX bank statement",
		Long: `Parse an OFX or QFX statement export and record its transactions.
Debits become categorized expenses, credits become income entries.
Duplicates are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer func() { _ = file.Close() }()

			txns, err := ofx.NewParser().ParseFile(ctx, file)
			if err != nil {
				return err
			}

			if len(txns) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No transactions found in statement."))
				return nil
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			bar := progressbar.Default(int64(len(txns)), "importing")

			inserted := 0
			for i := range txns {
				n, err := store.SaveTransactions(ctx, txns[i:i+1])
				if err != nil {
					return fmt.Errorf("failed to import transaction %d: %w", i, err)
				}
				inserted += n
				_ = bar.Add(1)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Imported %d new transactions (%d duplicates skipped).",
				inserted, len(txns)-inserted)))
			return nil
		},
	}
}
