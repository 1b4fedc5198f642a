package exec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/cmdrun/exec"
	"github.com/jmgilman/go/cmdrun/exec/mocks"
)

func TestWrapperWithMock(t *testing.T) {
	mockExec := &mocks.ExecutorMock{
		RunFunc: func(cmd *exec.Command) (*exec.Result, error) {
			return &exec.Result{Stdout: []byte("mock output")}, nil
		},
	}

	git := exec.NewWrapper(mockExec, exec.New("git").WithDir("/repo").WithCapture())

	result, err := git.Run("status", "--short")
	require.NoError(t, err)
	assert.Equal(t, "mock output", result.StdoutString())

	calls := mockExec.RunCalls()
	require.Len(t, calls, 1)

	cmd := calls[0].Cmd
	assert.Equal(t, "git", cmd.Program)
	assert.Equal(t, []string{"status", "--short"}, cmd.Args)
	assert.Equal(t, "/repo", cmd.Dir)
	assert.True(t, cmd.Capture)
	assert.True(t, cmd.Check)
}

func TestWrapperWithMock_PropagatesErrors(t *testing.T) {
	failure := &exec.ExecError{
		Kind:    exec.KindExit,
		Command: exec.New("git", "push"),
		Result:  &exec.Result{Status: exec.ExitStatus{Code: 128}, Stderr: []byte("rejected")},
	}
	mockExec := &mocks.ExecutorMock{
		RunFunc: func(cmd *exec.Command) (*exec.Result, error) {
			return failure.Result, failure
		},
	}

	git := exec.NewWrapper(mockExec, exec.New("git"))
	result, err := git.Run("push")

	require.ErrorIs(t, err, failure)
	assert.Equal(t, "rejected", result.StderrString())
	assert.Len(t, mockExec.RunCalls(), 1)
}
