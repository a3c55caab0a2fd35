package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/kk-code-lab/lessr/internal/debuglog"
	"github.com/kk-code-lab/lessr/internal/fs"
	"github.com/kk-code-lab/lessr/internal/ui/pager"
)

const version = "0.1.0"

const (
	exitOK          = 0
	exitFailure     = 1
	exitUsage       = 2
	exitInterrupted = 130
)

var (
	loadLines    = fs.Load
	newScreen    = pager.NewScreen
	signalNotify = signal.Notify
)

// signalError records which signal ended the pager.
type signalError struct {
	sig os.Signal
}

func (e *signalError) Error() string {
	return fmt.Sprintf("received %v", e.sig)
}

// exitCode follows the shell convention of 128 plus the signal number.
func (e *signalError) exitCode() int {
	if n, ok := e.sig.(syscall.Signal); ok {
		return 128 + int(n)
	}
	return exitInterrupted
}

// trapSignals cancels the returned context with a *signalError when SIGINT
// or SIGTERM arrives. The release func stops delivery.
func trapSignals(parent context.Context) (context.Context, func()) {
	ctx, cancel := context.WithCancelCause(parent)
	ch := make(chan os.Signal, 1)
	signalNotify(ch, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-ch:
			cancel(&signalError{sig: sig})
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(ch)
		cancel(nil)
	}
}

func printHelp(w io.Writer) {
	fmt.Fprint(w, `lessr - page through a file one screen at a time

USAGE:
    lessr [OPTIONS] FILE
    lessr [OPTIONS] -          Read standard input

OPTIONS:
    -N, --LINE-NUMBERS        Prefix every line with its line number
    -p, --pattern PATTERN     Start at pattern (accepted, currently ignored)
    -h, --help                Show this help message and exit
    -V, --version             Show version and exit

KEYS:
    space, down arrow         Next page
    up arrow                  Previous page
    q                         Quit

ENVIRONMENT:
    LESSR_BACKEND             Screen backend: ansi or tcell
    LESSR_POLL_MS             Input poll interval in milliseconds (default 500)
    LESSR_DEBUG=1             Append diagnostics to LESSR_DEBUG_FILE (default lessr-debug.log)
`)
}

// Main runs one invocation and returns the process exit code. Errors from
// every layer are reported here and nowhere else.
func Main(args []string, getenv func(string) string, stdout, stderr io.Writer) int {
	cfg, err := ParseArgs(args)
	if err == nil {
		err = cfg.ApplyEnv(getenv)
	}
	if err != nil {
		fmt.Fprintf(stderr, "lessr: %v\n", err)
		fmt.Fprintln(stderr, "Try 'lessr --help' for more information.")
		return exitUsage
	}

	switch {
	case cfg.ShowHelp:
		printHelp(stdout)
		return exitOK
	case cfg.ShowVersion:
		fmt.Fprintf(stdout, "lessr %s\n", version)
		return exitOK
	case cfg.File == "":
		fmt.Fprintln(stdout, "--help Display help (from command line)")
		return exitOK
	}

	debuglog.Configure(cfg.Debug, cfg.DebugFile)
	if cfg.Pattern != "" {
		debuglog.Printf("app", "start pattern %q is not supported, ignoring", cfg.Pattern)
	}

	if debuglog.Enabled() {
		debuglog.Printf("app", "config: file=%q numbered=%v backend=%s poll=%s", cfg.File, cfg.NumberLines, cfg.Backend, cfg.PollTimeout)
	}

	if err := run(context.Background(), cfg); err != nil {
		debuglog.Printf("app", "exit with error: %v", err)
		var sigErr *signalError
		switch {
		case errors.As(err, &sigErr):
			return sigErr.exitCode()
		case errors.Is(err, pager.ErrInterrupted) || errors.Is(err, context.Canceled):
			return exitInterrupted
		}
		fmt.Fprintf(stderr, "lessr: %v\n", err)
		return exitFailure
	}
	return exitOK
}

// run loads the whole source before touching the terminal, so a source that
// cannot be read never enters the alternate screen. Signals are trapped only
// once the pager owns the terminal; while loading they keep their default
// effect, so a stalled stdin can still be interrupted.
func run(ctx context.Context, cfg Config) error {
	lines, err := loadLines(cfg.File, fs.LoadOptions{NumberLines: cfg.NumberLines})
	if err != nil {
		return err
	}

	screen, err := newScreen(cfg.Backend)
	if err != nil {
		return &pager.TerminalError{Op: "create screen", Err: err}
	}

	ctx, release := trapSignals(ctx)
	defer release()
	err = pager.Run(ctx, screen, lines, pager.Options{PollTimeout: cfg.PollTimeout})
	if err != nil && ctx.Err() != nil {
		if cause := context.Cause(ctx); cause != nil && !errors.Is(cause, context.Canceled) {
			return cause
		}
	}
	return err
}
