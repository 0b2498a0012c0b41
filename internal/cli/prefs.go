package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"rowpilot/internal/config"
	"rowpilot/internal/i18n"
)

func newPrefsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change language and theme",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the current preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Printer.List([]string{
				"language: " + app.Prefs.Language,
				"theme: " + app.Prefs.Theme,
			})
			return nil
		},
	}

	set := &cobra.Command{
		Use:   "set language|theme <value>",
		Short: "Change a preference",
		Long: `Change a preference and save it.

Languages: ` + strings.Join(config.Languages, ", ") + `
Themes: ` + strings.Join(config.Themes, ", "),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value := strings.ToLower(strings.TrimSpace(args[1]))

			switch strings.ToLower(args[0]) {
			case "language", "lang":
				if !config.ValidLanguage(value) {
					return app.fail(usageErrorf("unsupported language %q", value))
				}
				app.Prefs.Language = value
				app.Printer.SetLanguage(value)
				config.SavePreferences(app.Config.Preferences.Path, app.Prefs)
				app.Printer.Success(i18n.KeyLanguageChanged)

			case "theme":
				if !config.ValidTheme(value) {
					return app.fail(usageErrorf("unsupported theme %q", value))
				}
				app.Prefs.Theme = value
				app.Printer.SetTheme(value)
				config.SavePreferences(app.Config.Preferences.Path, app.Prefs)
				app.Printer.Success(i18n.KeyThemeChanged, value)

			default:
				return app.fail(usageErrorf("unknown preference %q", args[0]))
			}
			return nil
		},
	}

	cmd.AddCommand(show, set)
	return cmd
}
