package app

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/agbru/rsacore/internal/cli"
	apperrors "github.com/agbru/rsacore/internal/errors"
	"github.com/agbru/rsacore/internal/logging"
	"github.com/agbru/rsacore/internal/selftest"
)

// runSelfTest executes the built-in RSA test vector suites and presents
// the outcome.
func (a *Application) runSelfTest(ctx context.Context, out io.Writer) int {
	a.Logger.Debug("starting self-test",
		logging.Int("workers", a.Config.Workers))

	// Spinner while the suites run, unless quiet output is requested.
	var wg sync.WaitGroup
	done := make(chan struct{})
	if !a.Config.Quiet {
		wg.Add(1)
		go cli.DisplayProgress(&wg, done, "running RSA self-tests...", out)
	}

	start := time.Now()
	results := selftest.Run(ctx, a.Config.Workers)
	elapsed := time.Since(start)

	close(done)
	wg.Wait()

	for _, r := range results {
		a.Recorder.Observe("selftest_suite", r.Duration, r.Err)
	}

	if !a.Config.Quiet {
		cli.PresentSuiteTable(results, out)
		fmt.Fprintf(out, "\nTotal: %s\n", cli.FormatExecutionDuration(elapsed))
	}

	if err := ctx.Err(); err != nil {
		a.Logger.Error("self-test interrupted", err)
		return exitCodeForContext(err)
	}
	if !selftest.Passed(results) {
		a.Logger.Error("self-test failed", nil, logging.Int("suites", len(results)))
		return apperrors.ExitErrorSelfTest
	}

	a.Logger.Info("self-test passed",
		logging.Int("suites", len(results)),
		logging.String("elapsed", elapsed.String()))
	return apperrors.ExitSuccess
}
