package cli

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupRun authors a click+type sequence bound to the Name column and
// returns the CSV path.
func setupRun(t *testing.T, env *testEnv) string {
	t.Helper()
	csvPath := env.writeFile(t, "people.csv", peopleCSV)
	require.NoError(t, env.execute("steps", "add", "click", "--x", "10", "--y", "20", "--delay", "0"))
	require.NoError(t, env.execute("steps", "add", "type", "--var", "name", "--delay", "0.25"))
	require.NoError(t, env.execute("map", "add", "name", "Name", "--file", csvPath))
	env.Out.Reset()
	return csvPath
}

func TestRunCommand_AllRows(t *testing.T) {
	env := newTestEnv(t, "")
	csvPath := setupRun(t, env)

	require.NoError(t, env.execute("run", "--file", csvPath))

	assert.Equal(t, []string{
		"click(10,20)", `write("Alice")`,
		"click(10,20)", `write("Bob")`,
		"click(10,20)", `write("Carol")`,
	}, env.Injector.Calls())
	assert.Len(t, env.Slept, 3)

	out := env.Out.String()
	assert.Contains(t, out, "Starting automation: 3 rows, 2 steps")
	assert.Contains(t, out, "Processing row 1 (1 of 3)")
	assert.Contains(t, out, "Row 3 completed")
	assert.Contains(t, out, "Automation completed: 3 rows processed")
}

func TestRunCommand_RowRange(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		names []string
	}{
		{name: "from and to", args: []string{"--from", "2", "--to", "3"}, names: []string{"Bob", "Carol"}},
		{name: "from only", args: []string{"--from", "3"}, names: []string{"Carol"}},
		{name: "to only", args: []string{"--to", "1"}, names: []string{"Alice"}},
		{name: "to clamped", args: []string{"--from", "2", "--to", "99"}, names: []string{"Bob", "Carol"}},
		{name: "inverted", args: []string{"--from", "3", "--to", "2"}, names: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, "")
			csvPath := setupRun(t, env)

			require.NoError(t, env.execute(append([]string{"run", "--file", csvPath}, tt.args...)...))

			var want []string
			for _, n := range tt.names {
				want = append(want, "click(10,20)", `write("`+n+`")`)
			}
			assert.Equal(t, want, env.Injector.Calls())
		})
	}
}

func TestRunCommand_FailedRowContinue(t *testing.T) {
	env := newTestEnv(t, "y\n")
	csvPath := setupRun(t, env)
	env.Injector.FailOn = `write("Bob")`

	err := env.execute("run", "--file", csvPath)

	requireExitCode(t, err, 1)
	assert.Equal(t, []string{
		"click(10,20)", `write("Alice")`,
		"click(10,20)", `write("Bob")`,
		"click(10,20)", `write("Carol")`,
	}, env.Injector.Calls())
	out := env.Out.String()
	assert.Contains(t, out, "Error in row 2")
	assert.Contains(t, out, "Continue with the next row?")
	assert.Contains(t, out, "Automation completed: 2 rows processed")
	assert.Contains(t, out, "1 rows failed")
}

func TestRunCommand_FailedRowAbort(t *testing.T) {
	for _, answer := range []string{"n\n", ""} {
		env := newTestEnv(t, answer)
		csvPath := setupRun(t, env)
		env.Injector.FailOn = `write("Bob")`

		err := env.execute("run", "--file", csvPath)

		requireExitCode(t, err, 1)
		assert.Equal(t, []string{
			"click(10,20)", `write("Alice")`,
			"click(10,20)", `write("Bob")`,
		}, env.Injector.Calls())
		assert.Contains(t, env.Out.String(), "Automation stopped: 1 rows processed")
	}
}

func TestRunCommand_UnresolvedVariable(t *testing.T) {
	env := newTestEnv(t, "n\n")
	csvPath := env.writeFile(t, "people.csv", peopleCSV)
	require.NoError(t, env.execute("steps", "add", "type", "--var", "missing"))

	err := env.execute("run", "--file", csvPath)

	requireExitCode(t, err, 1)
	assert.Empty(t, env.Injector.Calls())
	assert.Contains(t, env.Out.String(), `no column mapping for variable "missing"`)
}

func TestRunCommand_Refuses(t *testing.T) {
	t.Run("empty sequence", func(t *testing.T) {
		env := newTestEnv(t, "")
		csvPath := env.writeFile(t, "people.csv", peopleCSV)

		requireExitCode(t, env.execute("run", "--file", csvPath), 1)
		assert.Contains(t, env.Out.String(), "Add at least one automation step first")
	})

	t.Run("no table", func(t *testing.T) {
		env := newTestEnv(t, "")
		require.NoError(t, env.execute("steps", "add", "key", "--key", "enter"))

		requireExitCode(t, env.execute("run"), 1)
		assert.Contains(t, env.Out.String(), "Load an Excel file first")
		assert.Empty(t, env.Injector.Calls())
	})

	t.Run("missing file", func(t *testing.T) {
		env := newTestEnv(t, "")
		require.NoError(t, env.execute("steps", "add", "key", "--key", "enter"))

		requireExitCode(t, env.execute("run", "--file", "/nonexistent/people.csv"), 1)
		assert.Empty(t, env.Injector.Calls())
	})
}

func TestRunCommand_StopKey(t *testing.T) {
	env := newTestEnv(t, "")
	csvPath := setupRun(t, env)

	keys := make(chan struct{})
	stopped := false
	env.App.WatchStopKey = func(key string) (<-chan struct{}, func(), error) {
		assert.Equal(t, "esc", key)
		return keys, func() { stopped = true }, nil
	}
	// Press the stop key during the first post-delay. The send completes
	// only once the run loop has received it.
	var once sync.Once
	env.App.Sleep = func(d time.Duration) {
		once.Do(func() {
			keys <- struct{}{}
			time.Sleep(10 * time.Millisecond)
		})
	}

	require.NoError(t, env.execute("run", "--file", csvPath))

	assert.True(t, stopped, "stop-key watcher should be shut down")
	assert.Equal(t, []string{"click(10,20)", `write("Alice")`}, env.Injector.Calls())
	assert.Contains(t, env.Out.String(), "Automation stopped: 1 rows processed")
}

func TestRunCommand_InjectedStopKeyIgnored(t *testing.T) {
	env := newTestEnv(t, "")
	csvPath := setupRun(t, env)
	require.NoError(t, env.execute("steps", "add", "key", "--key", "esc", "--delay", "0"))
	env.Out.Reset()

	// The global hook sees the run's own esc press while it is sent.
	keys := make(chan struct{})
	env.App.WatchStopKey = func(key string) (<-chan struct{}, func(), error) {
		return keys, func() {}, nil
	}
	env.Injector.OnCall = func(call string) {
		if call == "press(esc)" {
			keys <- struct{}{}
		}
	}

	require.NoError(t, env.execute("run", "--file", csvPath))

	assert.Equal(t, []string{
		"click(10,20)", `write("Alice")`, "press(esc)",
		"click(10,20)", `write("Bob")`, "press(esc)",
		"click(10,20)", `write("Carol")`, "press(esc)",
	}, env.Injector.Calls())
	assert.Contains(t, env.Out.String(), "Automation completed: 3 rows processed")
}

func TestRunCommand_PrintsStepProgress(t *testing.T) {
	env := newTestEnv(t, "")
	csvPath := setupRun(t, env)

	require.NoError(t, env.execute("run", "--file", csvPath, "--to", "1"))

	out := env.Out.String()
	assert.Contains(t, out, "1. Click x=10, y=20")
	assert.Contains(t, out, "2. Type Text Excel:name")
}
