package cli

import (
	"github.com/spf13/cobra"

	"rowpilot/internal/table"
)

func newSheetsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sheets <file>",
		Short: "List the sheets of a table file with their columns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			src, err := table.SourceFor(path)
			if err != nil {
				return app.fail(err)
			}
			names, err := src.SheetNames(path)
			if err != nil {
				return app.fail(err)
			}

			for _, name := range names {
				tbl, err := src.Load(path, name)
				if err != nil {
					app.Printer.Warning(err.Error())
					continue
				}
				app.Printer.Sheet(name, tbl.RowCount(), tbl.Columns())
			}
			return nil
		},
	}
}
