package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/martin-ueding/bank-statement-parser/internal/report"
	"github.com/martin-ueding/bank-statement-parser/internal/storage"
)

func newPlotCommand(opts *rootOptions) *cobra.Command {
	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "Render spending charts",
	}
	plotCmd.AddCommand(newPlotLinesCommand(opts))
	plotCmd.AddCommand(newPlotPieCommand(opts))
	return plotCmd
}

func newPlotLinesCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lines",
		Short: "Render a category-by-month spending line chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.open()
			if err != nil {
				return err
			}
			defer e.close()

			sum, err := loadSummary(cmd.Context(), e)
			if err != nil {
				return err
			}
			if err := report.LinesChart(e.cfg.Charts.LinesFile, sum); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", e.cfg.Charts.LinesFile)
			return nil
		},
	}
}

func newPlotPieCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pie",
		Short: "Render a category share pie chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.open()
			if err != nil {
				return err
			}
			defer e.close()

			sum, err := loadSummary(cmd.Context(), e)
			if err != nil {
				return err
			}
			if err := report.PieChart(e.cfg.Charts.PieFile, sum); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", e.cfg.Charts.PieFile)
			return nil
		},
	}
}

// loadSummary aggregates all stored outflows into month buckets.
func loadSummary(ctx context.Context, e *env) (report.Summary, error) {
	categories, err := storage.NewCategoryRepo(e.db).List(ctx)
	if err != nil {
		return report.Summary{}, err
	}
	stores, err := storage.NewStoreRepo(e.db).List(ctx)
	if err != nil {
		return report.Summary{}, err
	}
	expenses, err := storage.NewExpenseRepo(e.db).List(ctx)
	if err != nil {
		return report.Summary{}, err
	}
	return report.Aggregate(expenses, stores, categories, report.MonthBucket), nil
}
