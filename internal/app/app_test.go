package app

import (
	"bytes"
	"context"
	"flag"
	"io"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/rsacore/internal/errors"
	"github.com/agbru/rsacore/internal/logging"
)

func newTestApp(t *testing.T, args ...string) *Application {
	t.Helper()
	argv := append([]string{"rsacore"}, args...)
	a, err := New(argv, io.Discard, WithLogger(logging.NewLogger(io.Discard, "test")))
	if err != nil {
		t.Fatalf("New(%v) error = %v", args, err)
	}
	return a
}

func TestNewInvalidFlags(t *testing.T) {
	var buf bytes.Buffer
	if _, err := New([]string{"rsacore", "-rounds", "0"}, &buf); err == nil {
		t.Error("New() with zero rounds should fail")
	}
	if _, err := New([]string{"rsacore", "-nope"}, &buf); err == nil {
		t.Error("New() with unknown flag should fail")
	}
}

func TestRunSelfTestQuiet(t *testing.T) {
	a := newTestApp(t, "-q")

	var out bytes.Buffer
	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d, want %d, output:\n%s", code, apperrors.ExitSuccess, out.String())
	}
}

func TestRunSelfTestTable(t *testing.T) {
	a := newTestApp(t, "-selftest")

	var out bytes.Buffer
	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d, want success", code)
	}
	if !strings.Contains(out.String(), "Self-Test Summary") {
		t.Errorf("output missing summary table:\n%s", out.String())
	}
}

func TestRunBenchQuiet(t *testing.T) {
	a := newTestApp(t, "-bench", "-bits", "64", "-rounds", "3", "-q")

	var out bytes.Buffer
	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d, want success", code)
	}
}

func TestRunBenchReport(t *testing.T) {
	a := newTestApp(t, "-bench", "-bits", "64", "-rounds", "3")

	var out bytes.Buffer
	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d, want success", code)
	}
	if !strings.Contains(out.String(), "Benchmark: 64-bit") {
		t.Errorf("output missing bench report:\n%s", out.String())
	}
}

func TestRunCanceledContext(t *testing.T) {
	a := newTestApp(t, "-q")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code := a.Run(ctx, io.Discard)
	if code != apperrors.ExitErrorCanceled && code != apperrors.ExitErrorSelfTest {
		t.Errorf("Run() with canceled context = %d, want canceled or self-test failure", code)
	}
}

func TestRunTimeout(t *testing.T) {
	a := newTestApp(t, "-bench", "-bits", "2048", "-rounds", "1000000", "-timeout", "50ms", "-q")

	start := time.Now()
	code := a.Run(context.Background(), io.Discard)
	if code != apperrors.ExitErrorTimeout {
		t.Errorf("Run() = %d, want %d", code, apperrors.ExitErrorTimeout)
	}
	if elapsed := time.Since(start); elapsed > 10*time.Second {
		t.Errorf("timeout not honored, took %v", elapsed)
	}
}

func TestHasVersionFlag(t *testing.T) {
	t.Parallel()

	if !HasVersionFlag([]string{"-version"}) || !HasVersionFlag([]string{"-q", "--version"}) {
		t.Error("version flag not detected")
	}
	if HasVersionFlag([]string{"-q"}) || HasVersionFlag(nil) {
		t.Error("version flag falsely detected")
	}
}

func TestPrintVersion(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	PrintVersion(&buf)
	if !strings.Contains(buf.String(), "rsacore") {
		t.Errorf("PrintVersion output = %q", buf.String())
	}
}

func TestIsHelpError(t *testing.T) {
	t.Parallel()

	if !IsHelpError(flag.ErrHelp) {
		t.Error("flag.ErrHelp should be a help error")
	}
	if IsHelpError(context.Canceled) {
		t.Error("context.Canceled should not be a help error")
	}
}
