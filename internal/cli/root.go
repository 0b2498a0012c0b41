// Package cli provides the command-line interface for rowpilot.
//
// The CLI is built on Cobra. Every command works on the working preset (the
// --preset flag, or presets.dir/presets.default from config): mutating
// commands load it, apply one change and save it back, and leave it untouched
// when the change is rejected.
//
// Key types:
//   - [App] holds the dependencies commands run against
//   - [ExecuteResult] carries the exit code out of [RunWithConfig]
//   - [ExitError] signals a non-zero exit code from a command
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"rowpilot/internal/capture"
	"rowpilot/internal/config"
	"rowpilot/internal/injector"
	"rowpilot/internal/mapping"
	"rowpilot/internal/output"
	"rowpilot/internal/preset"
	"rowpilot/internal/sequencer"
	"rowpilot/internal/step"
)

// App holds the dependencies shared by all commands.
//
// Fields other than Config and Printer may be left nil; [NewApp] fills them
// with the real implementations and tests replace them with fakes.
type App struct {
	Config  *config.Config
	Prefs   config.Preferences
	Printer *output.Printer

	// Injector performs input actions for runs, step tests and capture.
	Injector injector.Injector

	// Input answers the continue prompt when a row fails.
	Input io.Reader

	// Sleep replaces time.Sleep for Wait steps and post-delays.
	Sleep func(time.Duration)

	// WatchStopKey starts the global stop-key watcher.
	WatchStopKey func(key string) (<-chan struct{}, func(), error)

	// WaitClick blocks until the next mouse press.
	WaitClick func(ctx context.Context) (capture.Point, error)

	// CopyText puts text on the clipboard.
	CopyText func(text string) error

	// PresetPath overrides the working preset path.
	PresetPath string
}

// NewApp creates an App with the real injector, hooks and clipboard.
func NewApp(cfg *config.Config, prefs config.Preferences) *App {
	printer := output.NewPrinter()
	printer.SetLanguage(prefs.Language)
	printer.SetTheme(prefs.Theme)

	return &App{
		Config:       cfg,
		Prefs:        prefs,
		Printer:      printer,
		Injector:     injector.NewRobot(cfg.Run.TypeIntervalMS),
		Input:        os.Stdin,
		WatchStopKey: capture.WatchKey,
		WaitClick:    capture.WaitClick,
		CopyText:     clipboard.WriteAll,
	}
}

// NewRootCommand creates the root command with every subcommand attached.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rowpilot",
		Short: "Replay recorded mouse and keyboard steps once per spreadsheet row",
		Long: `rowpilot replays a recorded sequence of mouse and keyboard actions once
for every row of an Excel or CSV table, typing cell values wherever a step
is bound to a column through a variable mapping.

Build the sequence with "steps add", bind variables with "map add",
then replay it with "run --file data.xlsx".`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&app.PresetPath, "preset", app.PresetPath,
		"working preset file (default: presets.dir/presets.default)")

	rootCmd.AddCommand(
		newStepsCommand(app),
		newMapCommand(app),
		newSheetsCommand(app),
		newRunCommand(app),
		newCaptureCommand(app),
		newPresetCommand(app),
		newPrefsCommand(app),
	)

	return rootCmd
}

// ExecuteResult is the outcome of running the CLI.
type ExecuteResult struct {
	ExitCode int
	Err      error
}

// RunWithConfig builds the App for cfg and runs the root command with the
// process arguments.
func RunWithConfig(cfg *config.Config) ExecuteResult {
	prefs := config.LoadPreferences(cfg.Preferences.Path)
	app := NewApp(cfg, prefs)
	rootCmd := NewRootCommand(app)

	if err := rootCmd.Execute(); err != nil {
		if code, ok := IsExitError(err); ok {
			return ExecuteResult{ExitCode: code, Err: err}
		}
		app.Printer.Error(err)
		return ExecuteResult{ExitCode: 1, Err: err}
	}
	return ExecuteResult{}
}

// Execute loads configuration, runs the CLI and exits the process with the
// resulting code.
func Execute() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	result := RunWithConfig(cfg)
	os.Exit(result.ExitCode)
}

func (app *App) presetPath() string {
	if app.PresetPath != "" {
		return app.PresetPath
	}
	return app.Config.PresetPath()
}

func (app *App) loadPreset() (*preset.Preset, error) {
	return preset.LoadOrEmpty(app.presetPath())
}

func (app *App) savePreset(p *preset.Preset) error {
	return preset.SavePreset(app.presetPath(), p)
}

// fail reports err and returns the exit error for the command. Authoring
// mistakes are shown as warnings; everything else gets an error box.
func (app *App) fail(err error) error {
	if isAuthoringError(err) {
		app.Printer.Warning(err.Error())
	} else {
		app.Printer.Error(err)
	}
	return NewExitError(1)
}

func isAuthoringError(err error) bool {
	for _, target := range []error{
		step.ErrValidation,
		step.ErrRange,
		mapping.ErrEmptyVariable,
		mapping.ErrUnknownColumn,
		mapping.ErrIndex,
		sequencer.ErrNoSteps,
		sequencer.ErrNoTable,
		sequencer.ErrRunning,
		errUsage,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	var unresolved *sequencer.UnresolvedVariableError
	return errors.As(err, &unresolved)
}

// errUsage marks malformed command input.
var errUsage = errors.New("invalid input")

func usageErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, args...))
}
