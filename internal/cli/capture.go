package cli

import (
	"github.com/spf13/cobra"

	"rowpilot/internal/capture"
	"rowpilot/internal/i18n"
)

func newCaptureCommand(app *App) *cobra.Command {
	var click, copyOut bool
	var countdown int

	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Read screen coordinates for a pointer step",
		Long: `Read the cursor position after a countdown, or at the next mouse click
with --click. With --copy the coordinates are put on the clipboard as "x,y".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				pt  capture.Point
				err error
			)
			if click {
				app.Printer.Info(i18n.KeyCaptureClick)
				pt, err = app.WaitClick(cmd.Context())
			} else {
				pt, err = capture.Countdown(cmd.Context(), app.Injector, countdown, func(x, y, remaining int) {
					app.Printer.Info(i18n.KeyCaptureCountdown, remaining, x, y)
				})
			}
			if err != nil {
				return app.fail(err)
			}

			app.Printer.Success(i18n.KeyCaptured, pt)
			if copyOut {
				if err := app.CopyText(pt.String()); err != nil {
					return app.fail(err)
				}
				app.Printer.Success(i18n.KeyCopied)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&click, "click", false, "capture at the next mouse click")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "copy x,y to the clipboard")
	cmd.Flags().IntVar(&countdown, "countdown", app.Config.Capture.CountdownSeconds, "countdown seconds")
	return cmd
}
