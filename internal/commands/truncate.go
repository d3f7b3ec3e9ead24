package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/martin-ueding/bank-statement-parser/internal/storage"
)

func newTruncateCommand(opts *rootOptions) *cobra.Command {
	truncateCmd := &cobra.Command{
		Use:   "truncate",
		Short: "Bulk-clear data",
	}
	truncateCmd.AddCommand(newTruncateExpenseCommand(opts))
	return truncateCmd
}

func newTruncateExpenseCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "expense",
		Short: "Delete all imported expenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.open()
			if err != nil {
				return err
			}
			defer e.close()

			ctx := cmd.Context()
			if err := storage.NewExpenseRepo(e.db).Truncate(ctx); err != nil {
				return err
			}

			fmt.Println("Cleared all expenses")
			e.log("truncate expense", "", "")
			return e.sync(ctx)
		},
	}
}
