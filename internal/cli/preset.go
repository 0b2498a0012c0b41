package cli

import (
	"github.com/spf13/cobra"

	"rowpilot/internal/i18n"
	"rowpilot/internal/preset"
)

func newPresetCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Inspect, save and load preset files",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the working preset",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := app.loadPreset()
				if err != nil {
					return app.fail(err)
				}
				app.Printer.Text(app.presetPath())
				app.Printer.Steps(p.Sequence.Rows())
				app.Printer.Mappings(p.Mappings.Items())
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List presets in the presets folder",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				names, err := preset.List(app.Config.Presets.Dir)
				if err != nil {
					return app.fail(err)
				}
				if len(names) == 0 {
					app.Printer.Info(i18n.KeyPresetsEmpty, app.Config.Presets.Dir)
					return nil
				}
				app.Printer.List(names)
				return nil
			},
		},
		&cobra.Command{
			Use:   "save-as <path>",
			Short: "Write the working preset to another file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := app.loadPreset()
				if err != nil {
					return app.fail(err)
				}
				if err := preset.SavePreset(args[0], p); err != nil {
					return app.fail(err)
				}
				app.Printer.Success(i18n.KeyPresetSaved, args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "load <path>",
			Short: "Replace the working preset with a preset file",
			Long: `Replace the working preset with the contents of another preset file.
The file is fully validated first; on any error the working preset is
left unchanged.`,
			Args: cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := preset.Load(args[0])
				if err != nil {
					return app.fail(err)
				}
				if err := app.savePreset(p); err != nil {
					return app.fail(err)
				}
				app.Printer.Success(i18n.KeyPresetSaved, app.presetPath())
				return nil
			},
		},
	)
	return cmd
}
