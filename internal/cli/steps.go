package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"rowpilot/internal/capture"
	"rowpilot/internal/i18n"
	"rowpilot/internal/sequencer"
	"rowpilot/internal/step"
	"rowpilot/internal/table"
)

func newStepsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "steps",
		Short: "Author the automation step sequence",
	}

	cmd.AddCommand(
		newStepsListCommand(app),
		newStepsAddCommand(app),
		newStepsMoveCommand(app),
		newStepsRemoveCommand(app),
		newStepsTestCommand(app),
	)
	return cmd
}

func newStepsListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the steps of the working preset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.loadPreset()
			if err != nil {
				return app.fail(err)
			}
			app.Printer.Steps(p.Sequence.Rows())
			return nil
		},
	}
}

type stepFlags struct {
	x, y      int
	text      string
	variable  string
	key       string
	seconds   float64
	delay     float64
	capture   bool
	countdown int
}

func newStepsAddCommand(app *App) *cobra.Command {
	var f stepFlags

	cmd := &cobra.Command{
		Use:   "add <kind>",
		Short: "Append a step",
		Long: `Append a step to the working preset.

Kinds: click, double-click, right-click, move, type, key, wait
(the canonical names such as "Double Click" are accepted too).

Examples:
  rowpilot steps add click --x 640 --y 300
  rowpilot steps add click --capture
  rowpilot steps add type --var name
  rowpilot steps add type --text "Hello"
  rowpilot steps add key --key ctrl+v
  rowpilot steps add wait --seconds 2.5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := step.ParseKind(args[0])
			if err != nil {
				return app.fail(usageErrorf("%v", err))
			}

			s, err := buildStep(cmd, app, kind, f)
			if err != nil {
				return app.fail(err)
			}

			p, err := app.loadPreset()
			if err != nil {
				return app.fail(err)
			}
			pos, err := p.Sequence.Add(s)
			if err != nil {
				return app.fail(err)
			}
			if err := app.savePreset(p); err != nil {
				return app.fail(err)
			}

			app.Printer.Success(i18n.KeyStepAdded, pos, step.Describe(s))
			return nil
		},
	}

	cmd.Flags().IntVar(&f.x, "x", 0, "x coordinate for pointer steps")
	cmd.Flags().IntVar(&f.y, "y", 0, "y coordinate for pointer steps")
	cmd.Flags().StringVar(&f.text, "text", "", "literal text for type steps")
	cmd.Flags().StringVar(&f.variable, "var", "", "mapped variable for type steps")
	cmd.Flags().StringVar(&f.key, "key", "", "key or chord for key steps (e.g. enter, ctrl+v)")
	cmd.Flags().Float64Var(&f.seconds, "seconds", 0, "duration for wait steps")
	cmd.Flags().Float64Var(&f.delay, "delay", app.Config.Run.DefaultDelay, "pause after the step, in seconds")
	cmd.Flags().BoolVar(&f.capture, "capture", false, "read x/y from the cursor after a countdown")
	cmd.Flags().IntVar(&f.countdown, "countdown", app.Config.Capture.CountdownSeconds, "countdown seconds for --capture")
	return cmd
}

func buildStep(cmd *cobra.Command, app *App, kind step.Kind, f stepFlags) (step.Step, error) {
	flags := cmd.Flags()

	switch {
	case kind.IsPointer():
		x, y := f.x, f.y
		if f.capture {
			pt, err := capture.Countdown(cmd.Context(), app.Injector, f.countdown, func(cx, cy, remaining int) {
				app.Printer.Info(i18n.KeyCaptureCountdown, remaining, cx, cy)
			})
			if err != nil {
				return step.Step{}, err
			}
			app.Printer.Success(i18n.KeyCaptured, pt)
			x, y = pt.X, pt.Y
		} else if !flags.Changed("x") || !flags.Changed("y") {
			return step.Step{}, usageErrorf("%s needs --x and --y, or --capture", kind)
		}
		switch kind {
		case step.KindDoubleClick:
			return step.DoubleClick(x, y, f.delay), nil
		case step.KindRightClick:
			return step.RightClick(x, y, f.delay), nil
		case step.KindMoveMouse:
			return step.MoveMouse(x, y, f.delay), nil
		}
		return step.Click(x, y, f.delay), nil

	case kind == step.KindTypeText:
		hasText, hasVar := flags.Changed("text"), flags.Changed("var")
		if hasText == hasVar {
			return step.Step{}, usageErrorf("%s needs exactly one of --text or --var", kind)
		}
		if hasVar {
			return step.TypeColumn(f.variable, f.delay), nil
		}
		return step.TypeFixed(f.text, f.delay), nil

	case kind == step.KindKeyPress:
		return step.KeyPress(f.key, f.delay), nil

	case kind == step.KindWait:
		if !flags.Changed("seconds") {
			return step.Step{}, usageErrorf("%s needs --seconds", kind)
		}
		return step.Wait(f.seconds, f.delay), nil
	}
	return step.Step{}, usageErrorf("unsupported kind %q", kind)
}

func newStepsMoveCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move <position> up|down",
		Short: "Swap a step with its neighbour",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parsePosition(args[0])
			if err != nil {
				return app.fail(err)
			}
			var dir step.Direction
			switch strings.ToLower(args[1]) {
			case "up":
				dir = step.Up
			case "down":
				dir = step.Down
			default:
				return app.fail(usageErrorf("direction must be up or down, got %q", args[1]))
			}

			p, err := app.loadPreset()
			if err != nil {
				return app.fail(err)
			}
			if err := p.Sequence.Move(index, dir); err != nil {
				return app.fail(err)
			}
			if err := app.savePreset(p); err != nil {
				return app.fail(err)
			}

			app.Printer.Success(i18n.KeyStepMoved, index+1, dir)
			return nil
		},
	}
}

func newStepsRemoveCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <position>",
		Short: "Remove a step",
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
			if err := p.Sequence.Remove(index); err != nil {
				return app.fail(err)
			}
			if err := app.savePreset(p); err != nil {
				return app.fail(err)
			}

			app.Printer.Success(i18n.KeyStepRemoved, index+1)
			return nil
		},
	}
}

func newStepsTestCommand(app *App) *cobra.Command {
	var file, sheet string

	cmd := &cobra.Command{
		Use:   "test <position>",
		Short: "Execute one step against the first table row",
		Long: `Execute a single step once, against the first row of the table when the
step types mapped data. The step's delay is not applied.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parsePosition(args[0])
			if err != nil {
				return app.fail(err)
			}

			p, err := app.loadPreset()
			if err != nil {
				return app.fail(err)
			}
			job := sequencer.Job{Steps: p.Sequence.Steps(), Mappings: p.Mappings}
			if file != "" {
				tbl, _, err := table.Open(file, sheet)
				if err != nil {
					return app.fail(err)
				}
				job.Table = tbl
			}

			if err := app.newExecutor(app.Injector).TestStep(job, index); err != nil {
				return app.fail(err)
			}
			app.Printer.Success(i18n.KeyStepTested, index+1)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Excel or CSV file for mapped steps")
	cmd.Flags().StringVar(&sheet, "sheet", "", "sheet name (default: first sheet)")
	return cmd
}

// parsePosition converts a 1-based CLI position into a 0-based index.
// Range checks are left to the collection being indexed.
func parsePosition(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, usageErrorf("position must be a number, got %q", arg)
	}
	return n - 1, nil
}
