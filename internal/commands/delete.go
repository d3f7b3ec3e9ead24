package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/martin-ueding/bank-statement-parser/internal/storage"
)

func newDeleteCommand(opts *rootOptions) *cobra.Command {
	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete stores",
	}
	deleteCmd.AddCommand(newDeleteStoreCommand(opts))
	return deleteCmd
}

func newDeleteStoreCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "store <id>",
		Short: "Delete a store; its expenses become unclassified again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid store id %q", args[0])
			}

			e, err := opts.open()
			if err != nil {
				return err
			}
			defer e.close()

			ctx := cmd.Context()
			if err := storage.NewStoreRepo(e.db).Delete(ctx, id); err != nil {
				return err
			}

			fmt.Printf("Deleted store %d\n", id)
			e.log("delete store", args[0], "")
			return e.sync(ctx)
		},
	}
}
