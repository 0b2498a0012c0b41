package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"rowpilot/internal/i18n"
	"rowpilot/internal/table"
)

func newMapCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map",
		Short: "Bind variables to table columns",
	}

	cmd.AddCommand(
		newMapListCommand(app),
		newMapAddCommand(app),
		newMapRemoveCommand(app),
	)
	return cmd
}

func newMapListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List column mappings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.loadPreset()
			if err != nil {
				return app.fail(err)
			}
			app.Printer.Mappings(p.Mappings.Items())
			for _, v := range p.Mappings.Duplicates() {
				app.Printer.Warn(i18n.KeyDuplicateVariable, v)
			}
			return nil
		},
	}
}

func newMapAddCommand(app *App) *cobra.Command {
	var file, sheet string

	cmd := &cobra.Command{
		Use:   "add <variable> <column>",
		Short: "Bind a variable to a column of a table",
		Long: `Bind a variable to a column. The column must exist in the given table;
the first row's value is stored as a sample.

Example:
  rowpilot map add name "Full Name" --file people.xlsx`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return app.fail(usageErrorf("--file is required to check the column"))
			}
			tbl, _, err := table.Open(file, sheet)
			if err != nil {
				return app.fail(err)
			}

			p, err := app.loadPreset()
			if err != nil {
				return app.fail(err)
			}
			duplicate := p.Mappings.Has(strings.TrimSpace(args[0]))
			m, err := p.Mappings.Add(args[0], args[1], tbl)
			if err != nil {
				return app.fail(err)
			}
			if err := app.savePreset(p); err != nil {
				return app.fail(err)
			}

			app.Printer.Success(i18n.KeyMappingAdded, m.Variable, m.Column, m.Sample)
			if duplicate {
				app.Printer.Warn(i18n.KeyDuplicateVariable, m.Variable)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Excel or CSV file holding the column")
	cmd.Flags().StringVar(&sheet, "sheet", "", "sheet name (default: first sheet)")
	return cmd
}

func newMapRemoveCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <position>",
		Short: "Remove a column mapping",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parsePosition(args[0])
			if err != nil {
				return app.fail(err)
			}

			p, err := app.loadPreset()
			if err != nil {
				return app.fail(err)
			}
			if err := p.Mappings.Remove(index); err != nil {
				return app.fail(err)
			}
			if err := app.savePreset(p); err != nil {
				return app.fail(err)
			}

			app.Printer.Success(i18n.KeyMappingRemoved, index+1)
			return nil
		},
	}
}
