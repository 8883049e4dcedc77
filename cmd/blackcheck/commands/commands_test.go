package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/blackcheck/cmd/blackcheck/commands"
	"go.trai.ch/blackcheck/internal/app"
	"go.trai.ch/blackcheck/internal/build"
)

type mockApp struct {
	runFunc   func(ctx context.Context, paths []string, opts app.RunOptions) error
	watchFunc func(ctx context.Context, paths []string, opts app.RunOptions) error
	cleaned   bool
	logJSON   bool
}

func (m *mockApp) Run(ctx context.Context, paths []string, opts app.RunOptions) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, paths, opts)
	}
	return nil
}

func (m *mockApp) Watch(ctx context.Context, paths []string, opts app.RunOptions) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, paths, opts)
	}
	return nil
}

func (m *mockApp) Clean(_ context.Context) error {
	m.cleaned = true
	return nil
}

func (m *mockApp) SetLogJSON(enable bool) {
	m.logJSON = enable
}

func TestCommands_Run(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.RunOptions
		var capturedPaths []string
		called := false

		mock := &mockApp{
			runFunc: func(_ context.Context, paths []string, opts app.RunOptions) error {
				capturedOpts = opts
				capturedPaths = paths
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run", "src", "tests/test_a.py", "--black", "--no-cache", "--cache-clear", "-o", "dots"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, app.RunOptions{
			Black:      true,
			NoCache:    true,
			CacheClear: true,
			OutputMode: "dots",
		}, capturedOpts)
		assert.Equal(t, []string{"src", "tests/test_a.py"}, capturedPaths)
	})

	t.Run("defaults", func(t *testing.T) {
		var capturedOpts app.RunOptions
		var capturedPaths []string

		mock := &mockApp{
			runFunc: func(_ context.Context, paths []string, opts app.RunOptions) error {
				capturedOpts = opts
				capturedPaths = paths
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.False(t, capturedOpts.Black)
		assert.Equal(t, "auto", capturedOpts.OutputMode)
		assert.Empty(t, capturedPaths)
	})

	t.Run("ci flag forces verbose output", func(t *testing.T) {
		var capturedOpts app.RunOptions
		mock := &mockApp{
			runFunc: func(_ context.Context, _ []string, opts app.RunOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run", "--ci", "-o", "dots"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "verbose", capturedOpts.OutputMode)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ []string, _ app.RunOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run", "--black"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Watch(t *testing.T) {
	var capturedOpts app.RunOptions
	var capturedPaths []string
	mock := &mockApp{
		watchFunc: func(_ context.Context, paths []string, opts app.RunOptions) error {
			capturedOpts = opts
			capturedPaths = paths
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"watch", "pkg", "--black"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, capturedOpts.Black)
	assert.Equal(t, []string{"pkg"}, capturedPaths)
}

func TestCommands_Clean(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)
	cli.SetArgs([]string{"clean"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, mock.cleaned)
}

func TestCommands_LogJSON(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)
	cli.SetArgs([]string{"--log-json", "clean"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, mock.logJSON)
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
	assert.Contains(t, buf.String(), "blackcheck version")
}
