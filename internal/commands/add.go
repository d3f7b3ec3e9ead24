package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/martin-ueding/bank-statement-parser/internal/model"
	"github.com/martin-ueding/bank-statement-parser/internal/rules"
	"github.com/martin-ueding/bank-statement-parser/internal/storage"
)

func newAddCommand(opts *rootOptions) *cobra.Command {
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add categories and stores",
	}
	addCmd.AddCommand(newAddCategoryCommand(opts))
	addCmd.AddCommand(newAddStoreCommand(opts))
	return addCmd
}

func newAddCategoryCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "category <name>",
		Short: "Add a spending category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.open()
			if err != nil {
				return err
			}
			defer e.close()

			ctx := cmd.Context()
			c, err := storage.NewCategoryRepo(e.db).Create(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Added category %q (id %d)\n", c.Name, c.ID)
			e.log("add category", c.Name, "")
			return e.sync(ctx)
		},
	}
}

func newAddStoreCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "store <name> <category> <regex>",
		Short: "Add a store rule that classifies matching payees",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, categoryName, pattern := args[0], args[1], args[2]

			// Reject broken regexes before anything is persisted.
			if _, err := rules.Compile(pattern); err != nil {
				return err
			}

			e, err := opts.open()
			if err != nil {
				return err
			}
			defer e.close()

			ctx := cmd.Context()
			category, err := storage.NewCategoryRepo(e.db).FindOrCreate(ctx, categoryName)
			if err != nil {
				return err
			}

			s, err := storage.NewStoreRepo(e.db).Create(ctx, model.Store{
				Name:       name,
				Pattern:    pattern,
				CategoryID: category.ID,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Added store %q (id %d) in category %q\n", s.Name, s.ID, category.Name)
			e.log("add store", fmt.Sprintf("%s -> %s (%s)", s.Name, category.Name, s.Pattern), "")
			return e.sync(ctx)
		},
	}
}
