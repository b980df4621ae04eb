package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/scalarops/internal/operators"
	"github.com/born-ml/scalarops/internal/seq"
)

// run executes the root command with args and returns trimmed stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "scalarops", cmd.Use)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"eval", "back", "grad", "reduce", "negate", "zip", "ops", "version"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	precisionFlag := cmd.PersistentFlags().Lookup("precision")
	require.NotNil(t, precisionFlag)
	assert.Equal(t, "-1", precisionFlag.DefValue)
}

func TestEval(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"eval", "sigmoid", "0"}, "0.5"},
		{[]string{"eval", "mul", "3", "-2.5"}, "-7.5"},
		{[]string{"eval", "max", "3", "3"}, "3"},
		{[]string{"eval", "is_close", "1", "1.0001"}, "1"},
		{[]string{"eval", "inv", "0"}, "+Inf"},
		{[]string{"eval", "relu", "-2"}, "0"},
		{[]string{"eval", "neg", "-2"}, "2"},
		{[]string{"--precision", "3", "eval", "exp", "1"}, "2.72"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestEval_Errors(t *testing.T) {
	_, err := run(t, "eval", "log", "-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, operators.ErrDomain)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	_, err = run(t, "eval", "tanh", "1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = run(t, "eval", "add", "1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = run(t, "eval", "exp", "abc")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestBack(t *testing.T) {
	out, err := run(t, "back", "log", "2", "1")
	require.NoError(t, err)
	assert.Equal(t, "0.5", out)

	out, err = run(t, "back", "inv", "2", "1")
	require.NoError(t, err)
	assert.Equal(t, "-0.25", out)

	out, err = run(t, "back", "relu", "0", "5")
	require.NoError(t, err)
	assert.Equal(t, "5", out)

	_, err = run(t, "back", "sigmoid", "0", "1")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestGrad(t *testing.T) {
	out, err := run(t, "grad", "sigmoid", "0")
	require.NoError(t, err)
	assert.Equal(t, "value=0.5 grad=0.25", out)

	out, err = run(t, "grad", "log", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "grad=0.5")

	_, err = run(t, "grad", "log", "0")
	assert.ErrorIs(t, err, operators.ErrDomain)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestReduce(t *testing.T) {
	out, err := run(t, "reduce", "sum", "1", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "6", out)

	out, err = run(t, "reduce", "sum")
	require.NoError(t, err)
	assert.Equal(t, "0", out)

	out, err = run(t, "reduce", "product", "1", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "6", out)

	_, err = run(t, "reduce", "product")
	assert.ErrorIs(t, err, seq.ErrEmptySequence)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	_, err = run(t, "reduce", "mean", "1")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestNegate(t *testing.T) {
	out, err := run(t, "negate", "--", "1", "-2", "0")
	require.NoError(t, err)
	assert.Equal(t, "[-1 2 -0]", out)
}

func TestZip(t *testing.T) {
	out, err := run(t, "zip", "1,2", "10,20")
	require.NoError(t, err)
	assert.Equal(t, "[11 22]", out)

	_, err = run(t, "zip", "1,2,3", "1")
	assert.ErrorIs(t, err, seq.ErrExhaustedInput)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestOpsAndVersion(t *testing.T) {
	out, err := run(t, "ops")
	require.NoError(t, err)
	assert.Contains(t, out, "forward:  add eq exp id inv is_close log lt max mul neg relu sigmoid")
	assert.Contains(t, out, "backward: inv log relu")

	out, err = run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "Born scalarops "+Version, out)
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad")))
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
}
