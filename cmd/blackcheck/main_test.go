package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/blackcheck/internal/adapters/cachedir"
	"go.trai.ch/blackcheck/internal/adapters/config"
	"go.trai.ch/blackcheck/internal/adapters/fs"
	"go.trai.ch/blackcheck/internal/app"
	"go.trai.ch/blackcheck/internal/core/domain"
	"go.trai.ch/blackcheck/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type harness struct {
	root      string
	formatter *mocks.MockFormatter
	logger    *mocks.MockLogger
	provider  ComponentProvider
}

func newHarness(t *testing.T, files map[string]string) *harness {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	root := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(content), 0o600))
	}

	ctrl := gomock.NewController(t)
	h := &harness{
		root:      root,
		formatter: mocks.NewMockFormatter(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}

	application := app.New(
		config.NewLoader(h.logger),
		fs.NewCollector(fs.NewWalker()),
		h.formatter,
		cachedir.NewStore(),
		h.logger,
	).WithOutput(io.Discard).WithWorkingDir(root)

	h.provider = func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: h.logger}, func() {}, nil
	}
	return h
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	h := newHarness(t, nil)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, h.provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_NothingCollected verifies that a session without --black exits 0.
func TestRun_NothingCollected(t *testing.T) {
	h := newHarness(t, map[string]string{"a.py": "x = 1\n"})

	exitCode := run(context.Background(), []string{"run"}, io.Discard, h.provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_CheckFailed verifies that a failing unit exits 1 without logging an error.
func TestRun_CheckFailed(t *testing.T) {
	h := newHarness(t, map[string]string{"bad.py": "print('x')\n"})

	h.formatter.EXPECT().Probe(gomock.Any(), domain.DefaultFormatterCommand).
		Return(domain.Probe{Capability: domain.CapabilityAvailable})
	h.formatter.EXPECT().Check(gomock.Any(), domain.DefaultFormatterCommand, filepath.Join(h.root, "bad.py")).
		Return(domain.FormatReport{ExitCode: 1, Stdout: "diff\n"}, nil)

	exitCode := run(context.Background(), []string{"run", "--black", "--ci"}, io.Discard, h.provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_ExecutionError verifies that run logs and returns 1 when the command execution fails.
func TestRun_ExecutionError(t *testing.T) {
	h := newHarness(t, nil)
	h.logger.EXPECT().Error(gomock.Any()).Times(1)

	exitCode := run(context.Background(), []string{"run", "--black", "missing.py"}, io.Discard, h.provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_Signal verifies that the context is canceled on signal.
func TestRun_Signal(t *testing.T) {
	h := newHarness(t, map[string]string{"slow.py": "x = 1\n"})
	h.logger.EXPECT().Error(gomock.Any()).AnyTimes()

	started := make(chan struct{})
	h.formatter.EXPECT().Probe(gomock.Any(), gomock.Any()).
		Return(domain.Probe{Capability: domain.CapabilityAvailable})
	h.formatter.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ []string, _ string) (domain.FormatReport, error) {
			close(started)
			<-ctx.Done()
			return domain.FormatReport{}, ctx.Err()
		})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan int)

	go func() {
		errCh <- run(ctx, []string{"run", "--black", "--ci"}, io.Discard, h.provider)
	}()

	<-started
	cancel()

	select {
	case ret := <-errCh:
		assert.NotEqual(t, 0, ret)
	case <-time.After(2 * time.Second):
		t.Fatal("TestRun_Signal timed out waiting for run() to return")
	}
}
