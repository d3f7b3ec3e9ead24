package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/martin-ueding/bank-statement-parser/internal/importer"
	"github.com/martin-ueding/bank-statement-parser/internal/model"
)

func newImportCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import [path-to-csv]",
		Short: "Import a statement export, or every CSV in the import directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.open()
			if err != nil {
				return err
			}
			defer e.close()

			ctx := cmd.Context()
			svc := importer.NewService(e.db)

			if len(args) == 1 {
				result, err := svc.ImportFile(ctx, args[0])
				if err != nil {
					return err
				}
				reportImport(e, result)
				return e.sync(ctx)
			}

			// No argument: consume the import directory.
			files, err := importer.Scan(e.cfg.ImportDir)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Printf("No statement files in %s\n", e.cfg.ImportDir)
				return nil
			}
			for _, f := range files {
				result, err := svc.ImportFile(ctx, f.Path)
				if err != nil {
					return err
				}
				reportImport(e, result)
				if err := importer.MarkProcessed(e.cfg.ImportDir, f.Name); err != nil {
					return err
				}
			}
			return e.sync(ctx)
		},
	}
}

func reportImport(e *env, result model.ImportResult) {
	fmt.Printf("%s: %d inserted, %d duplicates skipped, %d failed\n",
		result.File, result.Inserted, result.Duplicates, len(result.Failures))
	for _, f := range result.Failures {
		fmt.Printf("  %s\n", f)
	}
	e.log("import", fmt.Sprintf("%s: inserted=%d duplicates=%d failed=%d",
		result.File, result.Inserted, result.Duplicates, len(result.Failures)), result.BatchID)
}
