// Package app wires configuration, logging, metrics, and the run modes of
// the rsacore tool together.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/agbru/rsacore/internal/config"
	apperrors "github.com/agbru/rsacore/internal/errors"
	"github.com/agbru/rsacore/internal/logging"
	"github.com/agbru/rsacore/internal/metrics"
	"github.com/agbru/rsacore/internal/ui"
)

// Application represents the rsacore tool instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Logger    logging.Logger
	Recorder  *metrics.Recorder
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets a custom logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
// args is the full argv including the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter, Recorder: metrics.NewRecorder()}
	for _, opt := range opts {
		opt(app)
	}

	var cmdArgs []string
	if len(args) > 0 {
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.Logger == nil {
		if cfg.JSONLog {
			app.Logger = logging.NewLogger(os.Stderr, "rsacore")
		} else {
			app.Logger = logging.NewDefaultLogger()
		}
	}
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(a.Config.Quiet)

	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if a.Config.MetricsAddr != "" {
		stopMetrics := a.serveMetrics()
		defer stopMetrics()
	}

	if a.Config.Bench {
		return a.runBench(ctx, out)
	}
	// Self-test is the default mode.
	return a.runSelfTest(ctx, out)
}

// serveMetrics exposes the recorder's registry over HTTP. The returned
// function shuts the server down and blocks until it has stopped.
func (a *Application) serveMetrics() func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", a.Recorder.Handler())
	srv := &http.Server{
		Addr:              a.Config.MetricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		a.Logger.Info("metrics server listening", logging.String("addr", a.Config.MetricsAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Logger.Error("metrics server failed", err)
		}
	}()

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		<-done
	}
}

// exitCodeForContext maps a context error to the tool's exit codes.
func exitCodeForContext(err error) int {
	if !apperrors.IsContextError(err) {
		return apperrors.ExitErrorGeneric
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.ExitErrorTimeout
	}
	return apperrors.ExitErrorCanceled
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
