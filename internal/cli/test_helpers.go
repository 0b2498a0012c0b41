package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"rowpilot/internal/capture"
	"rowpilot/internal/config"
	"rowpilot/internal/injector"
	"rowpilot/internal/output"
)

// MockClipboard records text copied by the capture command.
type MockClipboard struct {
	// Copied records every copy in order.
	Copied []string
}

func (m *MockClipboard) WriteAll(text string) error {
	m.Copied = append(m.Copied, text)
	return nil
}

// MockClicker returns a fixed point for capture --click.
type MockClicker struct {
	Point capture.Point
	Calls int
}

func (m *MockClicker) WaitClick(ctx context.Context) (capture.Point, error) {
	m.Calls++
	return m.Point, nil
}

// testEnv is an App wired to fakes, with its preset, presets folder and
// preferences inside a temporary directory.
type testEnv struct {
	App       *App
	Injector  *injector.Mock
	Clipboard *MockClipboard
	Clicker   *MockClicker
	Out       *bytes.Buffer
	Dir       string
	Slept     []time.Duration
}

// newTestEnv creates a testEnv. answers is what the continue prompt reads.
func newTestEnv(t *testing.T, answers string) *testEnv {
	t.Helper()

	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Presets.Dir = filepath.Join(dir, "presets")
	cfg.Preferences.Path = filepath.Join(dir, "preferences.json")
	cfg.Capture.CountdownSeconds = 0

	env := &testEnv{
		Injector:  &injector.Mock{},
		Clipboard: &MockClipboard{},
		Clicker:   &MockClicker{},
		Out:       &bytes.Buffer{},
		Dir:       dir,
	}
	env.App = &App{
		Config:    cfg,
		Prefs:     config.DefaultPreferences(),
		Printer:   output.NewPrinterWithWriter(env.Out),
		Injector:  env.Injector,
		Input:     strings.NewReader(answers),
		Sleep:     func(d time.Duration) { env.Slept = append(env.Slept, d) },
		WaitClick: env.Clicker.WaitClick,
		CopyText:  env.Clipboard.WriteAll,
	}
	return env
}

// execute runs the root command with args.
func (e *testEnv) execute(args ...string) error {
	rootCmd := NewRootCommand(e.App)
	outBuf := &bytes.Buffer{}
	rootCmd.SetOut(outBuf)
	rootCmd.SetErr(outBuf)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// presetFile returns the working preset path.
func (e *testEnv) presetFile() string {
	return e.App.presetPath()
}

// writeFile creates name inside the environment's directory.
func (e *testEnv) writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(e.Dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}
