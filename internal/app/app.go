// Package app implements the application layer for blackcheck.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/blackcheck/internal/adapters/cachedir"
	"go.trai.ch/blackcheck/internal/adapters/detector"
	"go.trai.ch/blackcheck/internal/adapters/linear"
	"go.trai.ch/blackcheck/internal/adapters/recheck"
	"go.trai.ch/blackcheck/internal/adapters/telemetry"
	"go.trai.ch/blackcheck/internal/adapters/watcher"
	"go.trai.ch/blackcheck/internal/core/domain"
	"go.trai.ch/blackcheck/internal/core/ports"
	"go.trai.ch/blackcheck/internal/engine/session"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// tracerName is the OpenTelemetry instrumentation name.
const tracerName = "blackcheck"

// WatcherFactory creates a file watcher that skips the given directory globs.
type WatcherFactory func(skipDirs []string) (ports.Watcher, error)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	collector    ports.Collector
	formatter    ports.Formatter
	store        ports.CacheStore
	logger       ports.Logger

	stdout         io.Writer
	getwd          func() (string, error)
	newWatcher     WatcherFactory
	debounceWindow time.Duration
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	collector ports.Collector,
	formatter ports.Formatter,
	store ports.CacheStore,
	log ports.Logger,
) *App {
	a := &App{
		configLoader:   loader,
		collector:      collector,
		formatter:      formatter,
		store:          store,
		logger:         log,
		stdout:         os.Stdout,
		getwd:          os.Getwd,
		debounceWindow: watcher.DefaultDebounceWindow,
	}
	a.newWatcher = func(skipDirs []string) (ports.Watcher, error) {
		return watcher.NewWatcher(a.logger, skipDirs)
	}
	return a
}

// WithOutput sets the writer receiving the session report.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithWorkingDir makes the app resolve the root directory from dir instead of
// the process working directory.
func (a *App) WithWorkingDir(dir string) *App {
	a.getwd = func() (string, error) { return dir, nil }
	return a
}

// WithWatcherFactory replaces the file watcher used by Watch.
func (a *App) WithWatcherFactory(f WatcherFactory) *App {
	a.newWatcher = f
	return a
}

// WithDebounceWindow sets how long Watch waits for file events to settle.
func (a *App) WithDebounceWindow(d time.Duration) *App {
	a.debounceWindow = d
	return a
}

// SetLogJSON switches the logger to JSON output if it supports it.
func (a *App) SetLogJSON(enable bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(enable)
	}
}

// RunOptions configuration for the Run and Watch methods.
type RunOptions struct {
	// Black enables format checking. Without it no unit is collected.
	Black bool
	// NoCache disables the recheck cache for the session.
	NoCache bool
	// CacheClear removes the cache directory before the session starts.
	CacheClear bool
	// OutputMode is one of auto, verbose or dots.
	OutputMode string
}

// Run checks the files and directories in paths, the root directory if empty.
// It returns domain.ErrCheckFailed if any unit failed.
func (a *App) Run(ctx context.Context, paths []string, opts RunOptions) error {
	settings, err := a.loadSettings()
	if err != nil {
		return err
	}

	if opts.CacheClear {
		if err := cachedir.Clear(settings.CachePath()); err != nil {
			return err
		}
	}

	summary, err := a.runSession(ctx, settings, paths, opts)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return domain.ErrCheckFailed
	}
	return nil
}

// Watch runs a session, then re-runs it whenever an eligible file below the
// root directory changes, until ctx is cancelled.
func (a *App) Watch(ctx context.Context, paths []string, opts RunOptions) error {
	settings, err := a.loadSettings()
	if err != nil {
		return err
	}

	if opts.CacheClear {
		if err := cachedir.Clear(settings.CachePath()); err != nil {
			return err
		}
	}

	targets, err := absPaths(paths)
	if err != nil {
		return err
	}

	w, err := a.newWatcher(settings.NoRecurseDirs)
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatcherStartFailed.Error())
	}
	defer func() { _ = w.Stop() }()

	g, ctx := errgroup.WithContext(ctx)

	if err := w.Start(ctx, settings.RootDir); err != nil {
		return err
	}

	if _, err := a.runSession(ctx, settings, paths, opts); err != nil {
		return err
	}
	a.logger.Info("watching for changes, press Ctrl+C to stop")

	changed := make(chan string)
	batches := make(chan []string)

	// Event routine
	g.Go(func() error {
		defer close(changed)
		for ev := range w.Events() {
			if !settings.IsSourceFile(ev.Path) || !underAny(ev.Path, targets) {
				continue
			}
			select {
			case changed <- ev.Path:
			case <-ctx.Done():
				return nil
			}
		}
		return nil
	})

	// Debounce routine
	g.Go(func() error {
		defer close(batches)
		watcher.Debounce(ctx, a.debounceWindow, changed, batches)
		return nil
	})

	// Session routine
	g.Go(func() error {
		for batch := range batches {
			a.logger.Info(fmt.Sprintf("%d file(s) changed, re-running", len(batch)))
			if _, err := a.runSession(ctx, settings, paths, opts); err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return err
			}
		}
		return nil
	})

	return g.Wait()
}

// Clean removes the cache directory of the root directory.
func (a *App) Clean(_ context.Context) error {
	settings, err := a.loadSettings()
	if err != nil {
		return err
	}

	dir := settings.CachePath()
	a.logger.Info(fmt.Sprintf("removing %s...", dir))
	if err := cachedir.Clear(dir); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("removed %s", dir))
	return nil
}

func (a *App) loadSettings() (*domain.Settings, error) {
	cwd, err := a.getwd()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
	}

	root, err := a.configLoader.DiscoverRoot(cwd)
	if err != nil {
		return nil, err
	}

	settings, err := a.configLoader.LoadSettings(root)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return settings, nil
}

// runSession collects, checks and reports one session.
func (a *App) runSession(ctx context.Context, settings *domain.Settings, paths []string, opts RunOptions) (domain.Summary, error) {
	start := time.Now()

	units, err := a.collector.Collect(settings, paths, opts.Black)
	if err != nil {
		return domain.Summary{}, err
	}

	mode := detector.ResolveMode(detector.ModeAuto, opts.OutputMode)
	renderer := linear.ForMode(a.stdout, mode)

	// Unit spans drive the report, so the otel pipeline is only built when
	// there is something to check.
	var tracer ports.Tracer = telemetry.NewNoOpTracer().WithRenderer(renderer)
	if len(units) > 0 {
		tp := setupOTel(telemetry.NewBridge(renderer))
		defer func() { _ = tp.Shutdown(context.WithoutCancel(ctx)) }()
		tracer = telemetry.NewOTelTracerWithProvider(tp, tracerName).WithRenderer(renderer)
	}

	if err := renderer.Start(ctx); err != nil {
		return domain.Summary{}, err
	}
	defer func() { _ = renderer.Stop() }()

	renderer.OnSessionStart(settings.RootDir)

	cfg := session.Config{Command: settings.Formatter}
	var cache *recheck.Cache
	if len(units) > 0 {
		cfg.Probe = a.formatter.Probe(ctx, settings.Formatter)
		cfg.Filter = a.loadFilter(settings)
		cache = a.openCache(settings, opts.NoCache)
		cfg.Cache = cache
	}

	results, runErr := session.New(a.formatter, tracer).Run(ctx, units, cfg)

	if cache != nil {
		if err := cache.Save(); err != nil {
			a.logger.Warn(err.Error())
		}
	}

	summary := domain.Summarize(results, time.Since(start))
	renderer.OnSessionFinish(results, summary)

	return summary, runErr
}

// loadFilter compiles the include/exclude patterns. Invalid patterns are
// reported and ignored.
func (a *App) loadFilter(settings *domain.Settings) *domain.Filter {
	cfg := a.configLoader.LoadFilter(settings.PyprojectPath())
	filter, err := domain.NewFilter(cfg)
	if err != nil {
		a.logger.Warn(fmt.Sprintf("ignoring [tool.black] include/exclude: %v", err))
		return nil
	}
	return filter
}

// openCache loads the recheck cache. An unusable cache turns into a no-op.
func (a *App) openCache(settings *domain.Settings, disabled bool) *recheck.Cache {
	if disabled || a.store == nil {
		return recheck.New(nil, "")
	}

	cache := recheck.New(a.store, settings.CachePath())
	if err := cache.Load(); err != nil {
		a.logger.Warn(err.Error())
	}
	return cache
}

// setupOTel configures the OpenTelemetry SDK with the renderer bridge.
func setupOTel(bridge *telemetry.Bridge) *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(bridge),
	)
	otel.SetTracerProvider(tp)
	return tp
}

func absPaths(paths []string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrPathNotFound.Error()), "path", p)
		}
		out = append(out, abs)
	}
	return out, nil
}

// underAny reports whether path is one of targets or inside one of them.
// An empty targets list matches everything.
func underAny(path string, targets []string) bool {
	if len(targets) == 0 {
		return true
	}
	for _, t := range targets {
		if path == t || strings.HasPrefix(path, t+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
