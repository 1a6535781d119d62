package app

import (
	"context"
	"crypto/rand"
	"io"
	"sync"
	"time"

	"github.com/agbru/rsacore/internal/bigint"
	"github.com/agbru/rsacore/internal/cli"
	apperrors "github.com/agbru/rsacore/internal/errors"
	"github.com/agbru/rsacore/internal/logging"
	"github.com/agbru/rsacore/internal/metrics"
	"github.com/agbru/rsacore/internal/sysmon"
)

// runBench measures modular exponentiation latency on a random modulus of
// the configured width and presents a report.
func (a *Application) runBench(ctx context.Context, out io.Writer) int {
	width := a.Config.BenchBits / 64
	rounds := a.Config.BenchRounds

	a.Logger.Debug("starting benchmark",
		logging.Int("bits", a.Config.BenchBits),
		logging.Int("rounds", rounds))

	modulus, base, exponent, err := benchOperands(width)
	if err != nil {
		a.Logger.Error("benchmark setup failed", err)
		return apperrors.ExitErrorGeneric
	}

	var wg sync.WaitGroup
	done := make(chan struct{})
	if !a.Config.Quiet {
		wg.Add(1)
		go cli.DisplayProgress(&wg, done, "benchmarking modular exponentiation...", out)
	}

	collector := metrics.NewMemoryCollector()
	sysmon.Sample() // prime the CPU delta
	memBefore := collector.Snapshot()

	result := bigint.New(width)
	start := time.Now()
	completed := 0
	for ; completed < rounds; completed++ {
		if ctx.Err() != nil {
			break
		}
		opStart := time.Now()
		err = result.ModExp(base, exponent, modulus)
		a.Recorder.Observe("modexp", time.Since(opStart), err)
		if err != nil {
			break
		}
	}
	total := time.Since(start)

	memDelta := collector.Snapshot().Delta(memBefore)
	system := sysmon.Sample()

	close(done)
	wg.Wait()

	if err != nil {
		a.Logger.Error("benchmark operation failed", err)
		return apperrors.ExitErrorGeneric
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		a.Logger.Error("benchmark interrupted", ctxErr,
			logging.Int("completed", completed))
		return exitCodeForContext(ctxErr)
	}

	perOp := time.Duration(0)
	if completed > 0 {
		perOp = total / time.Duration(completed)
	}
	if !a.Config.Quiet {
		cli.PresentBenchReport(cli.BenchReport{
			Bits:   a.Config.BenchBits,
			Rounds: completed,
			Total:  total,
			PerOp:  perOp,
			Memory: memDelta,
			System: system,
		}, out)
	}

	a.Logger.Info("benchmark complete",
		logging.Int("rounds", completed),
		logging.String("per_op", perOp.String()))
	return apperrors.ExitSuccess
}

// benchOperands builds a random odd modulus of the given word width with
// its top bit set, a random base below it, and the common RSA public
// exponent 65537.
func benchOperands(width int) (modulus, base, exponent *bigint.Nat, err error) {
	buf := make([]byte, width*8)
	if _, err = rand.Read(buf); err != nil {
		return nil, nil, nil, err
	}
	buf[0] |= 0x80
	buf[len(buf)-1] |= 1

	modulus = bigint.New(width)
	if err = modulus.SetBytes(buf); err != nil {
		return nil, nil, nil, err
	}

	if _, err = rand.Read(buf); err != nil {
		return nil, nil, nil, err
	}
	buf[0] &= 0x7f // keep base below the modulus
	base = bigint.New(width)
	if err = base.SetBytes(buf); err != nil {
		return nil, nil, nil, err
	}

	exponent = bigint.New(width)
	exponent.SetUint64(65537)
	return modulus, base, exponent, nil
}
