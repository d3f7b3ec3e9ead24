package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/martin-ueding/bank-statement-parser/internal/report"
	"github.com/martin-ueding/bank-statement-parser/internal/storage"
)

func newTableCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "table category|store|expense",
		Short:     "Render current state as a console table",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"category", "store", "expense"},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.open()
			if err != nil {
				return err
			}
			defer e.close()

			ctx := cmd.Context()
			categories, err := storage.NewCategoryRepo(e.db).List(ctx)
			if err != nil {
				return err
			}

			switch args[0] {
			case "category":
				report.CategoryTable(os.Stdout, categories)
			case "store":
				stores, err := storage.NewStoreRepo(e.db).List(ctx)
				if err != nil {
					return err
				}
				report.StoreTable(os.Stdout, stores, categories)
			case "expense":
				stores, err := storage.NewStoreRepo(e.db).List(ctx)
				if err != nil {
					return err
				}
				expenses, err := storage.NewExpenseRepo(e.db).List(ctx)
				if err != nil {
					return err
				}
				report.ExpenseTable(os.Stdout, expenses, stores, categories)
			default:
				return fmt.Errorf("unknown table %q", args[0])
			}
			return nil
		},
	}
}
