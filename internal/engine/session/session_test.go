package session_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/blackcheck/internal/adapters/telemetry"
	"go.trai.ch/blackcheck/internal/core/domain"
	"go.trai.ch/blackcheck/internal/core/ports"
	"go.trai.ch/blackcheck/internal/core/ports/mocks"
	"go.trai.ch/blackcheck/internal/engine/session"
	"go.uber.org/mock/gomock"
)

const diff = "--- a.py\n+++ a.py\n-print('Hello, world')\n+print(\"Hello, world\")\n"

var command = []string{"black"}

func fixedMtime(mtime int64) func(string) (int64, error) {
	return func(string) (int64, error) { return mtime, nil }
}

func newSession(formatter ports.Formatter) *session.Session {
	s := session.New(formatter, telemetry.NewNoOpTracer())
	s.SetMtime(fixedMtime(42))
	return s
}

func mustFilter(t *testing.T, cfg domain.FilterConfig) *domain.Filter {
	t.Helper()
	f, err := domain.NewFilter(cfg)
	require.NoError(t, err)
	return f
}

var available = domain.Probe{Capability: domain.CapabilityAvailable}

func TestSession_PassRecordsMtime(t *testing.T) {
	ctrl := gomock.NewController(t)
	formatter := mocks.NewMockFormatter(ctrl)
	cache := mocks.NewMockRecheckCache(ctrl)

	unit := domain.NewUnit("/src/a.py", "a.py")

	gomock.InOrder(
		cache.EXPECT().IsFresh("/src/a.py", int64(42)).Return(false),
		formatter.EXPECT().Check(gomock.Any(), command, "/src/a.py").Return(domain.FormatReport{ExitCode: 0}, nil),
		cache.EXPECT().Record("/src/a.py", int64(42)),
	)

	results, err := newSession(formatter).Run(context.Background(), []domain.Unit{unit}, session.Config{
		Command: command,
		Probe:   available,
		Cache:   cache,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, domain.OutcomePassed, results[0].Outcome)
	assert.Equal(t, int64(42), results[0].Mtime)
	assert.Empty(t, results[0].Reason)
}

func TestSession_FailureSurfacesDiffVerbatim(t *testing.T) {
	ctrl := gomock.NewController(t)
	formatter := mocks.NewMockFormatter(ctrl)
	cache := mocks.NewMockRecheckCache(ctrl)

	cache.EXPECT().IsFresh(gomock.Any(), gomock.Any()).Return(false)
	formatter.EXPECT().Check(gomock.Any(), command, "/src/a.py").Return(domain.FormatReport{ExitCode: 1, Stdout: diff}, nil)
	// No Record call is expected on failure.

	results, err := newSession(formatter).Run(context.Background(),
		[]domain.Unit{domain.NewUnit("/src/a.py", "a.py")},
		session.Config{Command: command, Probe: available, Cache: cache})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeFailed, results[0].Outcome)
	assert.Equal(t, diff, results[0].Detail)
}

func TestSession_FailureWithoutOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	formatter := mocks.NewMockFormatter(ctrl)

	formatter.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.FormatReport{ExitCode: 123}, nil)

	results, err := newSession(formatter).Run(context.Background(),
		[]domain.Unit{domain.NewUnit("/src/a.py", "a.py")},
		session.Config{Command: command, Probe: available})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeFailed, results[0].Outcome)
	assert.Contains(t, results[0].Detail, "exit code 123")
}

func TestSession_FreshIsSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	formatter := mocks.NewMockFormatter(ctrl)
	cache := mocks.NewMockRecheckCache(ctrl)

	cache.EXPECT().IsFresh("/src/a.py", int64(42)).Return(true)

	results, err := newSession(formatter).Run(context.Background(),
		[]domain.Unit{domain.NewUnit("/src/a.py", "a.py")},
		session.Config{Command: command, Probe: available, Cache: cache})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSkipped, results[0].Outcome)
	assert.Equal(t, domain.ReasonPreviouslyPassed, results[0].Reason)
}

func TestSession_FreshWinsOverFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	formatter := mocks.NewMockFormatter(ctrl)
	cache := mocks.NewMockRecheckCache(ctrl)

	cache.EXPECT().IsFresh(gomock.Any(), gomock.Any()).Return(true)

	results, err := newSession(formatter).Run(context.Background(),
		[]domain.Unit{domain.NewUnit("/src/build/a.py", "build/a.py")},
		session.Config{
			Command: command,
			Probe:   available,
			Cache:   cache,
			Filter:  mustFilter(t, domain.FilterConfig{Exclude: domain.Pattern("/build/")}),
		})
	require.NoError(t, err)
	assert.Equal(t, domain.ReasonPreviouslyPassed, results[0].Reason)
}

func TestSession_FilterSkips(t *testing.T) {
	tests := []struct {
		name   string
		filter domain.FilterConfig
		path   string
		skip   bool
	}{
		{"exclude matches", domain.FilterConfig{Exclude: domain.Pattern("/build/")}, "/src/build/a.py", true},
		{"exclude wins over include", domain.FilterConfig{Include: domain.Pattern(`\.py$`), Exclude: domain.Pattern("a")}, "/src/a.py", true},
		{"include does not match", domain.FilterConfig{Include: domain.Pattern("^/other/")}, "/src/a.py", true},
		{"include matches", domain.FilterConfig{Include: domain.Pattern("src")}, "/src/a.py", false},
		{"empty config", domain.FilterConfig{}, "/src/a.py", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			formatter := mocks.NewMockFormatter(ctrl)
			if !tt.skip {
				formatter.EXPECT().Check(gomock.Any(), gomock.Any(), tt.path).Return(domain.FormatReport{}, nil)
			}

			results, err := newSession(formatter).Run(context.Background(),
				[]domain.Unit{domain.NewUnit(tt.path, filepath.Base(tt.path))},
				session.Config{Command: command, Probe: available, Filter: mustFilter(t, tt.filter)})
			require.NoError(t, err)

			if tt.skip {
				assert.Equal(t, domain.OutcomeSkipped, results[0].Outcome)
				assert.Equal(t, domain.ReasonExcluded, results[0].Reason)
			} else {
				assert.Equal(t, domain.OutcomePassed, results[0].Outcome)
			}
		})
	}
}

func TestSession_MissingFormatterSkipsEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	formatter := mocks.NewMockFormatter(ctrl)
	cache := mocks.NewMockRecheckCache(ctrl)

	s := newSession(formatter)
	s.SetMtime(func(string) (int64, error) {
		t.Fatal("mtime must not be read when the formatter is missing")
		return 0, nil
	})

	units := []domain.Unit{
		domain.NewUnit("/src/a.py", "a.py"),
		domain.NewUnit("/src/b.py", "b.py"),
	}
	results, err := s.Run(context.Background(), units, session.Config{
		Command: command,
		Probe:   domain.Probe{Capability: domain.CapabilityUnavailable, Detail: `formatter executable not found: "black"`},
		Cache:   cache,
		Filter:  mustFilter(t, domain.FilterConfig{Exclude: domain.Pattern("a")}),
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, domain.OutcomeSkipped, r.Outcome)
		assert.Equal(t, `black is not available: formatter executable not found: "black"`, r.Reason)
	}
}

func TestSession_UnknownCapabilityStillChecks(t *testing.T) {
	ctrl := gomock.NewController(t)
	formatter := mocks.NewMockFormatter(ctrl)
	formatter.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.FormatReport{}, nil)

	results, err := newSession(formatter).Run(context.Background(),
		[]domain.Unit{domain.NewUnit("/src/a.py", "a.py")},
		session.Config{Command: command, Probe: domain.Probe{Capability: domain.CapabilityUnknown}})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomePassed, results[0].Outcome)
}

func TestSession_StartFailureFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	formatter := mocks.NewMockFormatter(ctrl)
	formatter.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.FormatReport{ExitCode: -1}, errors.New("exec: permission denied"))

	results, err := newSession(formatter).Run(context.Background(),
		[]domain.Unit{domain.NewUnit("/src/a.py", "a.py")},
		session.Config{Command: command, Probe: available})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeFailed, results[0].Outcome)
	assert.Contains(t, results[0].Detail, "permission denied")
}

func TestSession_StatFailureFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	formatter := mocks.NewMockFormatter(ctrl)

	s := session.New(formatter, telemetry.NewNoOpTracer())
	missing := filepath.Join(t.TempDir(), "gone.py")

	results, err := s.Run(context.Background(),
		[]domain.Unit{domain.NewUnit(missing, "gone.py")},
		session.Config{Command: command, Probe: available})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeFailed, results[0].Outcome)
	assert.Contains(t, results[0].Detail, domain.ErrStatFailed.Error())
}

func TestSession_RealMtimeChangesForceRecheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	formatter := mocks.NewMockFormatter(ctrl)
	formatter.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.FormatReport{}, nil).Times(2)

	path := filepath.Join(t.TempDir(), "a.py")
	require.NoError(t, os.WriteFile(path, []byte("x = 1\n"), 0o600))

	cache := &memoryCache{entries: map[string]int64{}}
	s := session.New(formatter, telemetry.NewNoOpTracer())
	cfg := session.Config{Command: command, Probe: available, Cache: cache}
	units := []domain.Unit{domain.NewUnit(path, "a.py")}

	first, err := s.Run(context.Background(), units, cfg)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomePassed, first[0].Outcome)

	second, err := s.Run(context.Background(), units, cfg)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSkipped, second[0].Outcome)

	touched := time.Unix(0, first[0].Mtime).Add(time.Second)
	require.NoError(t, os.Chtimes(path, touched, touched))

	third, err := s.Run(context.Background(), units, cfg)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomePassed, third[0].Outcome)
	assert.Equal(t, touched.UnixNano(), cache.entries[path])
}

func TestSession_CancelledContextStops(t *testing.T) {
	ctrl := gomock.NewController(t)
	formatter := mocks.NewMockFormatter(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	formatter.EXPECT().Check(gomock.Any(), gomock.Any(), "/src/a.py").
		DoAndReturn(func(context.Context, []string, string) (domain.FormatReport, error) {
			cancel()
			return domain.FormatReport{}, nil
		})

	units := []domain.Unit{
		domain.NewUnit("/src/a.py", "a.py"),
		domain.NewUnit("/src/b.py", "b.py"),
	}
	results, err := newSession(formatter).Run(ctx, units, session.Config{Command: command, Probe: available})
	require.ErrorIs(t, err, context.Canceled)
	assert.Len(t, results, 1)
}

func TestSession_TracesUnits(t *testing.T) {
	ctrl := gomock.NewController(t)
	formatter := mocks.NewMockFormatter(ctrl)
	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)

	ctx := context.Background()
	tracer.EXPECT().EmitPlan(ctx, []string{"a.py::BLACK"})
	tracer.EXPECT().Start(ctx, "a.py::BLACK", gomock.Any()).Return(ctx, span)
	span.EXPECT().SetAttribute(ports.AttrMtime, int64(42))
	span.EXPECT().SetAttribute(ports.AttrOutcome, string(domain.OutcomeSkipped))
	span.EXPECT().SetAttribute(ports.AttrReason, domain.ReasonExcluded)
	span.EXPECT().End()

	s := session.New(formatter, tracer)
	s.SetMtime(fixedMtime(42))

	_, err := s.Run(ctx, []domain.Unit{domain.NewUnit("/src/a.py", "a.py")}, session.Config{
		Command: command,
		Probe:   available,
		Filter:  mustFilter(t, domain.FilterConfig{Exclude: domain.Pattern("a")}),
	})
	require.NoError(t, err)
}

func TestSession_EmptyRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	results, err := newSession(mocks.NewMockFormatter(ctrl)).Run(context.Background(), nil, session.Config{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

// memoryCache is an in-memory ports.RecheckCache.
type memoryCache struct {
	entries map[string]int64
}

func (c *memoryCache) Load() error { return nil }

func (c *memoryCache) IsFresh(path string, mtime int64) bool {
	v, ok := c.entries[path]
	return ok && v == mtime
}

func (c *memoryCache) Record(path string, mtime int64) { c.entries[path] = mtime }

func (c *memoryCache) Save() error { return nil }

func TestSession_FailureDetailWrittenToSpan(t *testing.T) {
	ctrl := gomock.NewController(t)
	formatter := mocks.NewMockFormatter(ctrl)
	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)

	formatter.EXPECT().Check(gomock.Any(), command, "/src/a.py").Return(domain.FormatReport{ExitCode: 1, Stdout: diff}, nil)

	tracer.EXPECT().EmitPlan(gomock.Any(), []string{"a.py::BLACK"})
	tracer.EXPECT().Start(gomock.Any(), "a.py::BLACK", gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, span
		})
	span.EXPECT().SetAttribute(ports.AttrMtime, int64(42))
	span.EXPECT().SetAttribute(ports.AttrOutcome, "failed")
	span.EXPECT().Write([]byte(diff)).Return(len(diff), nil)
	span.EXPECT().End()

	s := session.New(formatter, tracer)
	s.SetMtime(fixedMtime(42))

	results, err := s.Run(context.Background(), []domain.Unit{domain.NewUnit("/src/a.py", "a.py")},
		session.Config{Command: command, Probe: available})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeFailed, results[0].Outcome)
}
