package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"rowpilot/internal/i18n"
	"rowpilot/internal/injector"
	"rowpilot/internal/sequencer"
	"rowpilot/internal/table"
)

func newRunCommand(app *App) *cobra.Command {
	var (
		file     string
		sheet    string
		from, to int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Replay the step sequence once per table row",
		Long: `Replay the working preset's steps once for every row of a table.

Rows are numbered from 1. Without --from/--to every row is processed.
Press the stop key (esc by default) or Ctrl+C to stop after the current step.
When a row fails you are asked whether to continue with the next one.

Example:
  rowpilot run --file people.xlsx --sheet Sheet1 --from 2 --to 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.loadPreset()
			if err != nil {
				return app.fail(err)
			}
			if p.Sequence.Len() == 0 {
				app.Printer.Warn(i18n.KeyNoSteps)
				return NewExitError(1)
			}
			if file == "" {
				app.Printer.Warn(i18n.KeyNoTable)
				return NewExitError(1)
			}
			tbl, _, err := table.Open(file, sheet)
			if err != nil {
				return app.fail(err)
			}

			rng := sequencer.AllRows()
			if cmd.Flags().Changed("from") || cmd.Flags().Changed("to") {
				if !cmd.Flags().Changed("to") {
					to = tbl.RowCount()
				}
				rng = sequencer.Rows(from, to)
			}

			job := sequencer.Job{
				Steps:    p.Sequence.Steps(),
				Mappings: p.Mappings,
				Table:    tbl,
				Range:    rng,
			}
			res, err := app.runJob(cmd.Context(), job)
			if err != nil {
				return app.fail(err)
			}
			if res.RowsFailed > 0 {
				return NewExitError(1)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Excel or CSV file to read rows from")
	cmd.Flags().StringVar(&sheet, "sheet", "", "sheet name (default: first sheet)")
	cmd.Flags().IntVar(&from, "from", 1, "first row to process (1-based)")
	cmd.Flags().IntVar(&to, "to", 0, "last row to process (default: last row)")
	return cmd
}

func (app *App) newExecutor(inj injector.Injector) *sequencer.Executor {
	exec := sequencer.NewExecutor(inj)
	if app.Sleep != nil {
		exec.SetSleeper(app.Sleep)
	}
	return exec
}

// runJob starts job on the executor's worker and drives the interactive
// side from the calling goroutine: it prints every update, answers row
// failures from Input, and maps Ctrl+C and the stop key onto Stop. Stop-key
// events caused by the run's own key presses are ignored.
func (app *App) runJob(ctx context.Context, job sequencer.Job) (sequencer.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	guard := newStopKeyGuard(app.Injector, app.Config.Run.StopKey)
	exec := app.newExecutor(guard)
	bridge := sequencer.NewBridge()

	start, end := job.Range.Resolve(job.Table.RowCount())
	app.Printer.RunHeader(end-start, len(job.Steps), app.Config.Run.StopKey)

	var stopKey <-chan struct{}
	if app.WatchStopKey != nil {
		keys, stopWatch, err := app.WatchStopKey(app.Config.Run.StopKey)
		if err != nil {
			app.Printer.Warning(err.Error())
		} else {
			stopKey = keys
			defer stopWatch()
		}
	}

	done, err := exec.Start(job, bridge)
	if err != nil {
		return sequencer.Result{}, err
	}

	answers := bufio.NewReader(app.input())
	ctxDone := ctx.Done()
	ordinal := 0

	for {
		select {
		case u := <-bridge.Updates():
			switch u.Kind {
			case sequencer.UpdateRowStarted:
				ordinal++
				app.Printer.RowStarted(u.Row, ordinal, u.Total)
			case sequencer.UpdateStepDone:
				app.Printer.StepDone(u.Index, u.Step)
			case sequencer.UpdateRowFinished:
				app.Printer.RowDone(u.Row)
			case sequencer.UpdateRowFailed:
				app.Printer.RowFailed(u.Row, u.Err)
				app.Printer.ContinuePrompt()
				u.Answer(readYes(answers))
			}

		case <-stopKey:
			if guard.Injected() {
				continue
			}
			exec.Stop()
			stopKey = nil

		case <-ctxDone:
			exec.Stop()
			ctxDone = nil

		case res := <-done:
			app.Printer.RunSummary(res.State == sequencer.Stopped, res.RowsProcessed, res.RowsFailed, res.Duration)
			return res, nil
		}
	}
}

func (app *App) input() io.Reader {
	if app.Input == nil {
		return os.Stdin
	}
	return app.Input
}

// readYes reads one answer line. Anything but y/yes, including end of
// input, is a no.
func readYes(r *bufio.Reader) bool {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

