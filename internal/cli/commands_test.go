package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rowpilot/internal/config"
	"rowpilot/internal/mapping"
	"rowpilot/internal/preset"
	"rowpilot/internal/step"
)

const peopleCSV = "Name,Email\nAlice,alice@example.com\nBob,bob@example.com\nCarol,carol@example.com\n"

func requireExitCode(t *testing.T, err error, want int) {
	t.Helper()
	require.Error(t, err)
	code, ok := IsExitError(err)
	assert.True(t, ok, "error should be an ExitError")
	assert.Equal(t, want, code)
}

func loadSteps(t *testing.T, env *testEnv) []step.Step {
	t.Helper()
	p, err := preset.Load(env.presetFile())
	require.NoError(t, err)
	return p.Sequence.Steps()
}

func TestStepsCommand_AuthoringRoundTrip(t *testing.T) {
	env := newTestEnv(t, "")

	require.NoError(t, env.execute("steps", "add", "click", "--x", "10", "--y", "20"))
	require.NoError(t, env.execute("steps", "add", "type", "--var", "name", "--delay", "0"))
	require.NoError(t, env.execute("steps", "add", "key", "--key", "ctrl+v", "--delay", "1"))
	require.NoError(t, env.execute("steps", "add", "wait", "--seconds", "2.5", "--delay", "0"))

	assert.Equal(t, []step.Step{
		step.Click(10, 20, 0.5),
		step.TypeColumn("name", 0),
		step.KeyPress("ctrl+v", 1),
		step.Wait(2.5, 0),
	}, loadSteps(t, env))

	require.NoError(t, env.execute("steps", "move", "3", "up"))
	require.NoError(t, env.execute("steps", "remove", "1"))

	assert.Equal(t, []step.Step{
		step.KeyPress("ctrl+v", 1),
		step.TypeColumn("name", 0),
		step.Wait(2.5, 0),
	}, loadSteps(t, env))

	env.Out.Reset()
	require.NoError(t, env.execute("steps", "list"))
	assert.Contains(t, env.Out.String(), "key=ctrl+v")
	assert.Contains(t, env.Out.String(), "Excel:name")
	assert.Contains(t, env.Out.String(), "seconds=2.5")
}

func TestStepsCommand_AddRejected(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown kind", args: []string{"steps", "add", "scroll"}},
		{name: "click without coordinates", args: []string{"steps", "add", "click", "--x", "5"}},
		{name: "type with both sources", args: []string{"steps", "add", "type", "--text", "a", "--var", "b"}},
		{name: "type without source", args: []string{"steps", "add", "type"}},
		{name: "type with blank variable", args: []string{"steps", "add", "type", "--var", " "}},
		{name: "key without key", args: []string{"steps", "add", "key"}},
		{name: "wait without seconds", args: []string{"steps", "add", "wait"}},
		{name: "negative wait", args: []string{"steps", "add", "wait", "--seconds", "-1"}},
		{name: "negative delay", args: []string{"steps", "add", "click", "--x", "1", "--y", "1", "--delay", "-0.5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, "")

			err := env.execute(tt.args...)

			requireExitCode(t, err, 1)
			assert.Contains(t, env.Out.String(), "Warning")
			_, statErr := os.Stat(env.presetFile())
			assert.True(t, os.IsNotExist(statErr), "rejected add must not write the preset")
		})
	}
}

func TestStepsCommand_MoveOutOfRangeLeavesPreset(t *testing.T) {
	env := newTestEnv(t, "")
	require.NoError(t, env.execute("steps", "add", "click", "--x", "1", "--y", "2"))
	before, err := os.ReadFile(env.presetFile())
	require.NoError(t, err)

	requireExitCode(t, env.execute("steps", "move", "1", "up"), 1)
	requireExitCode(t, env.execute("steps", "move", "1", "sideways"), 1)
	requireExitCode(t, env.execute("steps", "remove", "7"), 1)
	requireExitCode(t, env.execute("steps", "remove", "first"), 1)

	after, err := os.ReadFile(env.presetFile())
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestStepsCommand_AddWithCapture(t *testing.T) {
	env := newTestEnv(t, "")
	env.Injector.X, env.Injector.Y = 300, 400

	require.NoError(t, env.execute("steps", "add", "right-click", "--capture", "--countdown", "0"))

	assert.Equal(t, []step.Step{step.RightClick(300, 400, 0.5)}, loadSteps(t, env))
	assert.Contains(t, env.Out.String(), "Captured coordinates: 300,400")
}

func TestStepsCommand_Test(t *testing.T) {
	env := newTestEnv(t, "")
	csvPath := env.writeFile(t, "people.csv", peopleCSV)
	require.NoError(t, env.execute("steps", "add", "click", "--x", "1", "--y", "2"))
	require.NoError(t, env.execute("steps", "add", "type", "--var", "name"))
	require.NoError(t, env.execute("map", "add", "name", "Name", "--file", csvPath))

	require.NoError(t, env.execute("steps", "test", "2", "--file", csvPath))

	assert.Equal(t, []string{`write("Alice")`}, env.Injector.Calls())
	assert.Empty(t, env.Slept)

	requireExitCode(t, env.execute("steps", "test", "2"), 1)
	requireExitCode(t, env.execute("steps", "test", "9", "--file", csvPath), 1)
}

func TestMapCommand(t *testing.T) {
	env := newTestEnv(t, "")
	csvPath := env.writeFile(t, "people.csv", peopleCSV)

	require.NoError(t, env.execute("map", "add", "name", "Name", "--file", csvPath))
	require.NoError(t, env.execute("map", "add", "name", "Email", "--file", csvPath))
	assert.Contains(t, env.Out.String(), `Variable "name" is mapped more than once`)

	requireExitCode(t, env.execute("map", "add", "email", "Phone", "--file", csvPath), 1)
	requireExitCode(t, env.execute("map", "add", "", "Name", "--file", csvPath), 1)
	requireExitCode(t, env.execute("map", "add", "email", "Email"), 1)

	p, err := preset.Load(env.presetFile())
	require.NoError(t, err)
	assert.Equal(t, []mapping.Mapping{
		{Variable: "name", Column: "Name", Sample: "Alice"},
		{Variable: "name", Column: "Email", Sample: "alice@example.com"},
	}, p.Mappings.Items())

	require.NoError(t, env.execute("map", "remove", "1"))
	requireExitCode(t, env.execute("map", "remove", "5"), 1)

	p, err = preset.Load(env.presetFile())
	require.NoError(t, err)
	assert.Equal(t, []string{"name"}, p.Mappings.Variables())
	column, ok := p.Mappings.Lookup("name")
	assert.True(t, ok)
	assert.Equal(t, "Email", column)
}

func TestSheetsCommand(t *testing.T) {
	env := newTestEnv(t, "")
	csvPath := env.writeFile(t, "people.csv", peopleCSV)

	require.NoError(t, env.execute("sheets", csvPath))

	assert.Contains(t, env.Out.String(), "Sheet people: 3 rows, columns: Name, Email")

	requireExitCode(t, env.execute("sheets", filepath.Join(env.Dir, "notes.txt")), 1)
}

func TestCaptureCommand(t *testing.T) {
	env := newTestEnv(t, "")
	env.Injector.X, env.Injector.Y = 5, 6

	require.NoError(t, env.execute("capture", "--copy"))
	assert.Equal(t, []string{"5,6"}, env.Clipboard.Copied)
	assert.Contains(t, env.Out.String(), "Copied to clipboard")

	env.Clicker.Point.X, env.Clicker.Point.Y = 70, 80
	require.NoError(t, env.execute("capture", "--click"))
	assert.Equal(t, 1, env.Clicker.Calls)
	assert.Contains(t, env.Out.String(), "Captured coordinates: 70,80")
	assert.Len(t, env.Clipboard.Copied, 1)
}

func TestPrefsCommand(t *testing.T) {
	env := newTestEnv(t, "")

	require.NoError(t, env.execute("prefs", "set", "language", "it"))
	assert.Contains(t, env.Out.String(), "Lingua cambiata con successo!")

	require.NoError(t, env.execute("prefs", "set", "theme", "dark"))
	assert.Equal(t, "dark", env.App.Printer.Theme())

	assert.Equal(t, config.Preferences{Language: "it", Theme: "dark"},
		config.LoadPreferences(env.App.Config.Preferences.Path))

	requireExitCode(t, env.execute("prefs", "set", "theme", "sepia"), 1)
	requireExitCode(t, env.execute("prefs", "set", "language", "pt"), 1)
	requireExitCode(t, env.execute("prefs", "set", "font", "mono"), 1)

	env.Out.Reset()
	require.NoError(t, env.execute("prefs", "show"))
	assert.Contains(t, env.Out.String(), "language: it")
	assert.Contains(t, env.Out.String(), "theme: dark")
}

func TestPresetCommand(t *testing.T) {
	env := newTestEnv(t, "")
	require.NoError(t, env.execute("steps", "add", "click", "--x", "1", "--y", "2"))

	copyPath := filepath.Join(env.App.Config.Presets.Dir, "copy.json")
	require.NoError(t, env.execute("preset", "save-as", copyPath))

	env.Out.Reset()
	require.NoError(t, env.execute("preset", "list"))
	assert.Contains(t, env.Out.String(), "copy.json")
	assert.Contains(t, env.Out.String(), "preset.json")

	// Loading a broken file leaves the working preset alone.
	broken := env.writeFile(t, "broken.json", `{"automation_steps": [{"action": "Click", "params": {"x": 1}, "delay": 0}]}`)
	requireExitCode(t, env.execute("preset", "load", broken), 1)
	assert.Len(t, loadSteps(t, env), 1)

	require.NoError(t, env.execute("steps", "remove", "1"))
	assert.Empty(t, loadSteps(t, env))

	require.NoError(t, env.execute("preset", "load", copyPath))
	assert.Equal(t, []step.Step{step.Click(1, 2, 0.5)}, loadSteps(t, env))

	env.Out.Reset()
	require.NoError(t, env.execute("preset", "show"))
	assert.Contains(t, env.Out.String(), "x=1, y=2")
}

func TestPresetFlag(t *testing.T) {
	env := newTestEnv(t, "")
	custom := filepath.Join(env.Dir, "custom.json")

	require.NoError(t, env.execute("--preset", custom, "steps", "add", "wait", "--seconds", "1"))

	p, err := preset.Load(custom)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Sequence.Len())
}
