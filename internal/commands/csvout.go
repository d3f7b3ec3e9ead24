package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/martin-ueding/bank-statement-parser/internal/report"
)

func newCSVCommand(opts *rootOptions) *cobra.Command {
	csvCmd := &cobra.Command{
		Use:   "csv",
		Short: "Emit report time series as files",
	}
	csvCmd.AddCommand(newCSVMonthsCommand(opts))
	return csvCmd
}

func newCSVMonthsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "months",
		Short: "Write one (month, total) series file per category",
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
			paths, err := report.WriteMonthlyCSV(e.cfg.ReportDir, sum)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Printf("Wrote %s\n", p)
			}
			return nil
		},
	}
}
